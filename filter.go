package sanitizers

import (
	"regexp"
	"strings"
)

// InnocuousOutput replaces values rejected by a filter. It cannot be
// produced by escaping legitimate input, so rejections stay visible in the
// rendered output.
const InnocuousOutput = "zSoyz"

var (
	// ASCII classes only; (?i) would also match U+017F and U+212A.
	cssToken      = `(?:[.#]?-?[_A-Za-z0-9-]+|-?(?:[0-9]+(?:\.[0-9]*)?|\.[0-9]+)(?:[A-Za-z]{1,2}|%)?|![Ii][Mm][Pp][Oo][Rr][Tt][Aa][Nn][Tt])`
	cssValueRegex = regexp.MustCompile(`^(?:` + cssToken + `(?:[\t\n\f\r ,]+` + cssToken + `)*)?$`)

	attributeNameRegex = regexp.MustCompile(`^[A-Za-z0-9_$:-]+$`)
	elementNameRegex   = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_:-]*$`)
)

// cssDenied are substrings that give a CSS value script or binding
// semantics in some user agent.
var cssDenied = []string{"expression", "binding"}

// deniedAttributePrefixes start the names of attributes that run script,
// load resources or carry URLs.
var deniedAttributePrefixes = []string{
	"on", "style", "href", "src", "action", "archive", "background", "cite",
	"classid", "codebase", "data", "dsync", "dynsrc", "formaction", "icon",
	"longdesc", "lowsrc", "manifest", "ping", "poster", "profile", "usemap",
}

// deniedElements have raw text or RCDATA content models, so their bodies
// are not parsed as ordinary markup.
var deniedElements = map[string]bool{
	"script":    true,
	"style":     true,
	"title":     true,
	"textarea":  true,
	"xmp":       true,
	"iframe":    true,
	"noembed":   true,
	"noframes":  true,
	"noscript":  true,
	"plaintext": true,
}

func cssValueAllowed(s string) bool {
	if !cssValueRegex.MatchString(s) {
		return false
	}
	lower := strings.ToLower(s)
	for _, d := range cssDenied {
		if strings.Contains(lower, d) {
			return false
		}
	}
	return true
}

func attributeNameAllowed(name string) bool {
	if !attributeNameRegex.MatchString(name) {
		return false
	}
	name = strings.ToLower(name)
	if deniedAttributePrefix(name) {
		return false
	}
	// xlink:href and friends.
	if i := strings.LastIndexByte(name, ':'); i >= 0 && deniedAttributePrefix(name[i+1:]) {
		return false
	}
	return true
}

func deniedAttributePrefix(name string) bool {
	for _, p := range deniedAttributePrefixes {
		if strings.HasPrefix(name, p) {
			return true
		}
	}
	return false
}

func elementNameAllowed(name string) bool {
	return elementNameRegex.MatchString(name) && !deniedElements[strings.ToLower(name)]
}

// padAttributes appends a space to a run of attributes so that whatever
// follows it in the tag starts a new attribute. Runs that already end in
// whitespace or a closing quote are left alone.
func padAttributes(s string) string {
	if s == "" {
		return s
	}
	switch s[len(s)-1] {
	case ' ', '\t', '\n', '\f', '\r', '"', '\'':
		return s
	}
	return s + " "
}
