package sanitizers

import (
	"strings"
)

// tagToken is a tag recognized by scanTag.
type tagToken struct {
	name    string // lower-cased; empty for declarations and unusable names
	isClose bool
	end     int // index just past the closing '>'
}

// stripResult is the outcome of one stripTags call.
type stripResult struct {
	out     string
	dropped int
}

// stripTags removes every tag from value except those allowed by safe,
// drops all attributes of the tags it keeps, balances the kept tags and
// normalizes the text between them. It makes a single left to right pass.
func stripTags(value string, safe *TagWhitelist, spacesOK bool) stripResult {
	table := normalizeHTMLTable
	if !spacesOK {
		table = normalizeHTMLNospaceTable
	}

	var (
		b       strings.Builder
		open    []string // whitelisted tags open in the output, innermost last
		pos     int      // value[:pos] has been written
		dropped int
	)
	b.Grow(len(value))

	for i := 0; i < len(value); {
		j := strings.IndexByte(value[i:], '<')
		if j < 0 {
			break
		}
		start := i + j
		tok, ok := scanTag(value, start)
		if !ok {
			// Literal '<'. It is escaped along with the rest of the run.
			i = start + 1
			continue
		}
		writeText(&b, value[pos:start], table)
		pos, i = tok.end, tok.end

		if !safe.Allows(tok.name) {
			dropped++
			continue
		}
		switch {
		case tok.isClose:
			k := lastIndex(open, tok.name)
			if k < 0 {
				// Closes nothing we emitted.
				dropped++
				continue
			}
			for n := len(open) - 1; n >= k; n-- {
				writeCloseTag(&b, open[n])
			}
			open = open[:k]
		default:
			b.WriteByte('<')
			b.WriteString(tok.name)
			b.WriteByte('>')
			if !safe.IsVoid(tok.name) {
				open = append(open, tok.name)
			}
		}
	}
	writeText(&b, value[pos:], table)

	for n := len(open) - 1; n >= 0; n-- {
		writeCloseTag(&b, open[n])
	}
	return stripResult{out: b.String(), dropped: dropped}
}

// scanTag reports whether a tag starts at value[start], which must be '<'.
// A tag is '<' followed by a letter, '/' and a letter, or '!', running up
// to the next '>' outside a quoted attribute value. A '<' outside quotes
// that could open another tag before that '>' means there is no tag at
// start.
func scanTag(value string, start int) (tagToken, bool) {
	var tok tagToken
	i := start + 1
	if i >= len(value) {
		return tok, false
	}
	declaration := false
	switch value[i] {
	case '!':
		declaration = true
		i++
	case '/':
		tok.isClose = true
		i++
	}
	nameStart := i
	if !declaration {
		if i >= len(value) || !isASCIILetter(value[i]) {
			return tok, false
		}
		for i < len(value) && isASCIIAlnum(value[i]) {
			i++
		}
	}
	name := value[nameStart:i]

	var quote byte
	for ; i < len(value); i++ {
		c := value[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '<':
			if opensTag(value, i) {
				return tok, false
			}
		case c == '"' || c == '\'':
			quote = c
		case c == '>':
			tok.end = i + 1
			if !declaration && endsName(value[nameStart+len(name)]) {
				tok.name = strings.ToLower(name)
			}
			return tok, true
		}
	}
	return tok, false
}

// opensTag reports whether the '<' at value[i] is followed by a letter,
// '/' or '!'.
func opensTag(value string, i int) bool {
	if i+1 >= len(value) {
		return false
	}
	c := value[i+1]
	return isASCIILetter(c) || c == '/' || c == '!'
}

// endsName reports whether c may directly follow a tag name. Anything
// else, such as "<b-x>", leaves the name unusable and the tag is dropped.
func endsName(c byte) bool {
	switch c {
	case '>', '/', ' ', '\t', '\n', '\f', '\r':
		return true
	}
	return false
}

// writeText writes a run of text found between tags. Character references
// that are complete inside the run are kept as they are; an '&' that does
// not start one is escaped so it cannot combine with text from the other
// side of a removed tag.
func writeText(b *strings.Builder, text string, table *escapeTable) {
	for {
		k := strings.IndexByte(text, '&')
		if k < 0 {
			break
		}
		b.WriteString(table.escape(text[:k]))
		if n := charRefLen(text[k:]); n > 0 {
			b.WriteString(text[k : k+n])
			text = text[k+n:]
			continue
		}
		b.WriteString("&amp;")
		text = text[k+1:]
	}
	b.WriteString(table.escape(text))
}

// charRefLen returns the length of the semicolon terminated character
// reference at the start of s, or 0 if there is none.
func charRefLen(s string) int {
	i := 1
	switch {
	case i < len(s) && s[i] == '#':
		i++
		digit := isDecimal
		if i < len(s) && (s[i] == 'x' || s[i] == 'X') {
			i++
			digit = isHex
		}
		from := i
		for i < len(s) && digit(s[i]) {
			i++
		}
		if i == from {
			return 0
		}
	case i < len(s) && isASCIILetter(s[i]):
		for i < len(s) && isASCIIAlnum(s[i]) {
			i++
		}
	default:
		return 0
	}
	if i < len(s) && s[i] == ';' {
		return i + 1
	}
	return 0
}

func writeCloseTag(b *strings.Builder, name string) {
	b.WriteString("</")
	b.WriteString(name)
	b.WriteByte('>')
}

func lastIndex(s []string, v string) int {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == v {
			return i
		}
	}
	return -1
}

func isDecimal(c byte) bool { return '0' <= c && c <= '9' }

func isHex(c byte) bool {
	return isDecimal(c) || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}
