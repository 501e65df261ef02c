package sanitizers

import (
	"strconv"
	"strings"
)

const upperHex = "0123456789ABCDEF"

// Characters that are whitespace to some user agents but not to others.
const (
	nextLine           = '\u0085'
	noBreakSpace       = '\u00a0'
	lineSeparator      = '\u2028'
	paragraphSeparator = '\u2029'
)

var (
	jsStringTable = newEscapeTable(jsEscape,
		0, '\b', '\t', '\n', '\v', '\f', '\r',
		'"', '&', '\'', '/', '<', '=', '>', '\\',
		nextLine, lineSeparator, paragraphSeparator)

	jsRegexTable = jsStringTable.with(jsEscape,
		'$', '(', ')', '*', '+', ',', '-', '.', ':', '?', '[', ']', '^', '{', '|', '}')

	cssStringTable = newEscapeTable(cssEscape,
		0, '\b', '\t', '\n', '\v', '\f', '\r',
		'"', '&', '\'', '(', ')', '*', '/', ':', ';', '<', '=', '>', '@', '\\', '{', '}',
		nextLine, noBreakSpace, lineSeparator, paragraphSeparator)

	htmlTable = newEscapeTable(htmlEscape, 0, '"', '&', '\'', '<', '>')

	// U+0085 stays raw: HTML decodes &#133; as U+2026.
	htmlNospaceTable = htmlTable.with(htmlEscape,
		'\t', '\n', '\v', '\f', '\r', ' ', '-', '/', '=', '`',
		noBreakSpace, lineSeparator, paragraphSeparator)

	normalizeHTMLTable        = htmlTable.without('&')
	normalizeHTMLNospaceTable = htmlNospaceTable.without('&')

	uriComponentTable = newURITable(func(c byte) bool {
		return !isASCIIAlnum(c) && c != '-' && c != '.' && c != '_' && c != '*'
	})

	normalizeURITable = newURITable(func(c byte) bool {
		switch c {
		case '"', '\'', '(', ')', '<', '>', '\\', '{', '}', 0x7f:
			return true
		}
		return c <= ' '
	})
)

func jsEscape(r rune) string {
	switch r {
	case '\t':
		return `\t`
	case '\n':
		return `\n`
	case '\f':
		return `\f`
	case '\r':
		return `\r`
	case '\\':
		return `\\`
	case '/':
		return `\/`
	}
	if r < 0x100 {
		return `\x` + lowerHexPad(r, 2)
	}
	return `\u` + lowerHexPad(r, 4)
}

// cssEscape always appends a space so a following hex digit or space
// cannot be read as part of the escape.
func cssEscape(r rune) string {
	return `\` + strconv.FormatInt(int64(r), 16) + " "
}

func htmlEscape(r rune) string {
	switch r {
	case '"':
		return "&quot;"
	case '&':
		return "&amp;"
	case '\'':
		return "&#39;"
	case '<':
		return "&lt;"
	case '>':
		return "&gt;"
	}
	return "&#" + strconv.Itoa(int(r)) + ";"
}

func lowerHexPad(r rune, width int) string {
	s := strconv.FormatInt(int64(r), 16)
	if len(s) < width {
		s = strings.Repeat("0", width-len(s)) + s
	}
	return s
}

// newURITable percent-encodes every ASCII byte for which escaped reports
// true and every byte of every non-ASCII code point.
func newURITable(escaped func(c byte) bool) *escapeTable {
	t := &escapeTable{runes: map[rune]string{}, nonASCII: percentEncode}
	for c := 0; c < len(t.ascii); c++ {
		if escaped(byte(c)) {
			t.ascii[c] = percentByte(byte(c))
		}
	}
	return t
}

func percentEncode(b *strings.Builder, raw string) {
	for i := 0; i < len(raw); i++ {
		b.WriteString(percentByte(raw[i]))
	}
}

func percentByte(c byte) string {
	return string([]byte{'%', upperHex[c>>4], upperHex[c&0xf]})
}

func isASCIIAlnum(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9'
}

func isASCIILetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}
