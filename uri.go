package sanitizers

import (
	"strings"
	"unicode"

	"golang.org/x/net/html"
	"golang.org/x/text/width"
)

// safeSchemes are the only URI schemes FilterNormalizeURI lets through.
// Everything else, javascript, vbscript, livescript, data and file
// included, is rejected.
var safeSchemes = map[string]bool{
	"http":   true,
	"https":  true,
	"mailto": true,
}

// escapeURIString percent-encodes s for use as a single URI component.
func escapeURIString(s string) string {
	return uriComponentTable.escape(s)
}

// normalizeURIString encodes only the characters that are unsafe anywhere
// in a URI placed inside an HTML attribute. URI structure survives.
func normalizeURIString(s string) string {
	return normalizeURITable.escape(s)
}

// filterNormalizeURIString returns the normalized form of s, or "#zSoyz"
// when s carries a scheme that is not known to be safe.
func filterNormalizeURIString(s string) (string, bool) {
	if !schemeAllowed(s) {
		return "#" + InnocuousOutput, false
	}
	return normalizeURIString(s), true
}

// schemeAllowed reports whether raw has no scheme or a safe one. The check
// runs on a canonical copy of raw that undoes the obfuscations user agents
// tolerate: embedded whitespace and controls, character references and
// full-width punctuation.
func schemeAllowed(raw string) bool {
	canon := stripIgnorable(raw)
	if strings.IndexByte(canon, '&') >= 0 {
		canon = stripIgnorable(html.UnescapeString(canon))
	}
	canon = strings.ToLower(width.Fold.String(canon))

	prefix := canon
	if i := strings.IndexAny(canon, "/?#"); i >= 0 {
		prefix = canon[:i]
	}
	colon := strings.IndexByte(prefix, ':')
	if colon < 0 {
		// A reference left over after decoding, such as an unknown named
		// one, may still be decoded into a colon downstream.
		return strings.IndexByte(prefix, '&') < 0
	}
	return safeSchemes[prefix[:colon]]
}

// stripIgnorable removes every character a user agent skips while reading
// a scheme.
func stripIgnorable(s string) string {
	return strings.Map(func(r rune) rune {
		if r <= ' ' || r == 0x7f || unicode.IsSpace(r) || unicode.Is(unicode.Cf, r) {
			return -1
		}
		return r
	}, s)
}
