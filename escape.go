package sanitizers

import (
	"strings"
	"unicode/utf8"
)

// escapeTable maps code points to replacement strings. A code point with
// no entry is copied to the output unchanged. Tables are built during
// package initialization and never modified afterwards.
type escapeTable struct {
	ascii [utf8.RuneSelf]string
	runes map[rune]string

	// nonASCII, when set, encodes every raw sequence of a code point at or
	// above utf8.RuneSelf that has no entry in runes.
	nonASCII func(b *strings.Builder, raw string)
}

// newEscapeTable builds a table holding enc(r) for every r in runes.
func newEscapeTable(enc func(r rune) string, runes ...rune) *escapeTable {
	t := &escapeTable{runes: make(map[rune]string)}
	for _, r := range runes {
		t.set(r, enc(r))
	}
	return t
}

// without returns a copy of t with no entry for any of runes.
func (t *escapeTable) without(runes ...rune) *escapeTable {
	c := t.clone()
	for _, r := range runes {
		if r < utf8.RuneSelf {
			c.ascii[r] = ""
		} else {
			delete(c.runes, r)
		}
	}
	return c
}

// with returns a copy of t that additionally holds enc(r) for every r in
// runes.
func (t *escapeTable) with(enc func(r rune) string, runes ...rune) *escapeTable {
	c := t.clone()
	for _, r := range runes {
		c.set(r, enc(r))
	}
	return c
}

func (t *escapeTable) clone() *escapeTable {
	c := &escapeTable{ascii: t.ascii, runes: make(map[rune]string, len(t.runes)), nonASCII: t.nonASCII}
	for r, s := range t.runes {
		c.runes[r] = s
	}
	return c
}

func (t *escapeTable) set(r rune, repl string) {
	if r < utf8.RuneSelf {
		t.ascii[r] = repl
	} else {
		t.runes[r] = repl
	}
}

// escape applies t to s one code point at a time. It never looks at
// neighbouring characters, so escape(a+b) == escape(a)+escape(b).
func (t *escapeTable) escape(s string) string {
	var b strings.Builder
	last := 0
	for i := 0; i < len(s); {
		c := s[i]
		if c < utf8.RuneSelf {
			if repl := t.ascii[c]; repl != "" {
				if b.Len() == 0 {
					b.Grow(len(s) + len(repl))
				}
				b.WriteString(s[last:i])
				b.WriteString(repl)
				last = i + 1
			}
			i++
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		if repl, ok := t.runes[r]; ok && (r != utf8.RuneError || size > 1) {
			b.WriteString(s[last:i])
			b.WriteString(repl)
			last = i + size
		} else if t.nonASCII != nil {
			b.WriteString(s[last:i])
			t.nonASCII(&b, s[i:i+size])
			last = i + size
		}
		i += size
	}
	if last == 0 {
		return s
	}
	b.WriteString(s[last:])
	return b.String()
}
