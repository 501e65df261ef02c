package sanitizers

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Kind identifies the output context a piece of content was already made
// safe for.
type Kind int

// Content kinds. The zero Kind is not valid.
const (
	HTML Kind = iota + 1
	JS
	JSStrChars
	URI
	Attributes
	CSS
	// Text marks content produced without any escaping. No transform ever
	// trusts it.
	Text
)

var kindNames = map[Kind]string{
	HTML:       "html",
	JS:         "js",
	JSStrChars: "js_str_chars",
	URI:        "uri",
	Attributes: "attributes",
	CSS:        "css",
	Text:       "text",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

func (k Kind) valid() bool {
	_, ok := kindNames[k]
	return ok
}

// ParseKind returns the Kind named s, case-insensitively.
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown content kind %q", s)
}

// Value is a dynamic value handed to a transform. The set of
// implementations is closed: Null, Bool, Int, Float, String and Content.
type Value interface {
	text() string
}

// Null is the null value. It renders as "null".
type Null struct{}

// Bool is a plain boolean.
type Bool bool

// Int is a plain integer.
type Int int64

// Float is a plain floating point number. It always renders with a
// fractional part, so 4 renders as "4.0".
type Float float64

// String is plain, untrusted string data.
type String string

// Content is a string already made safe for the context named by Kind.
// Build it with Ordain.
type Content struct {
	Text string
	Kind Kind
}

// Ordain tags text as safe for kind. It panics if kind is not a known Kind.
func Ordain(text string, kind Kind) Content {
	if !kind.valid() {
		panic(fmt.Sprintf("sanitizers: invalid content kind %d", int(kind)))
	}
	return Content{Text: text, Kind: kind}
}

func (Null) text() string { return "null" }

func (b Bool) text() string { return strconv.FormatBool(bool(b)) }

func (i Int) text() string { return strconv.FormatInt(int64(i), 10) }

func (f Float) text() string { return formatFloat(float64(f)) }

func (s String) text() string { return string(s) }

func (c Content) text() string { return c.Text }

// Stringify renders v the way it would be printed without escaping.
func Stringify(v Value) string {
	if v == nil {
		return Null{}.text()
	}
	return v.text()
}

// formatFloat renders f so that integral values keep a ".0" suffix and
// non-finite values use their JavaScript spelling.
func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	format := byte('f')
	if abs := math.Abs(f); abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		format = 'g'
	}
	s := strconv.FormatFloat(f, format, -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
