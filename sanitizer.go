package sanitizers

import (
	"fmt"
	"sort"
	"strconv"

	"go.uber.org/zap"
)

// Sanitizer applies the transforms and reports what it rejects. The zero
// value is not usable; build one with New. A Sanitizer is safe for
// concurrent use.
type Sanitizer struct {
	logger     *zap.Logger
	metrics    *Metrics
	directives map[string]func(Value) string
}

// Option configures a Sanitizer.
type Option func(*Sanitizer)

// WithLogger logs every rejection at debug level.
func WithLogger(l *zap.Logger) Option {
	return func(s *Sanitizer) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMetrics counts rejections and dropped tags in m.
func WithMetrics(m *Metrics) Option {
	return func(s *Sanitizer) {
		s.metrics = m
	}
}

// New returns a Sanitizer configured by opts.
func New(opts ...Option) *Sanitizer {
	s := &Sanitizer{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	s.directives = map[string]func(Value) string{
		"escapeHtml":                 s.EscapeHTML,
		"escapeHtmlRcdata":           s.EscapeHTMLRCDATA,
		"escapeHtmlAttribute":        s.EscapeHTMLAttribute,
		"escapeHtmlAttributeNospace": s.EscapeHTMLAttributeNospace,
		"normalizeHtml":              s.NormalizeHTML,
		"normalizeHtmlNospace":       s.NormalizeHTMLNospace,
		"filterHtmlAttributes":       s.FilterHTMLAttributes,
		"filterHtmlElementName":      s.FilterHTMLElementName,
		"escapeJsString":             s.EscapeJSString,
		"escapeJsRegex":              s.EscapeJSRegex,
		"escapeJsValue":              s.EscapeJSValue,
		"escapeCssString":            s.EscapeCSSString,
		"filterCssValue":             s.FilterCSSValue,
		"escapeUri":                  s.EscapeURI,
		"normalizeUri":               s.NormalizeURI,
		"filterNormalizeUri":         s.FilterNormalizeURI,
		"filterNoAutoescape":         s.FilterNoAutoescape,
	}
	return s
}

// rejectingDirectives are the directives that may return InnocuousOutput.
var rejectingDirectives = []string{
	"filterCssValue",
	"filterHtmlAttributes",
	"filterHtmlElementName",
	"filterNormalizeUri",
	"filterNoAutoescape",
}

// Lookup returns the transform registered under a print directive name
// such as "escapeHtml".
func (s *Sanitizer) Lookup(name string) (func(Value) string, bool) {
	f, ok := s.directives[name]
	return f, ok
}

// Directives returns every directive name in sorted order.
func (s *Sanitizer) Directives() []string {
	names := make([]string, 0, len(s.directives))
	for name := range s.directives {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// unpack returns the text of v and, for tagged content, its kind. Plain
// values have kind 0. It panics on values outside the closed Value set and
// on content with an invalid kind.
func unpack(v Value) (string, Kind) {
	switch v := v.(type) {
	case nil:
		return Null{}.text(), 0
	case Content:
		if !v.Kind.valid() {
			panic(fmt.Sprintf("sanitizers: content has invalid kind %d", int(v.Kind)))
		}
		return v.Text, v.Kind
	case Null, Bool, Int, Float, String:
		return v.text(), 0
	default:
		panic(fmt.Sprintf("sanitizers: unsupported value type %T", v))
	}
}

// reject records that transform replaced text and returns the placeholder.
func (s *Sanitizer) reject(transform, text string, kind Kind, placeholder string) string {
	if ce := s.logger.Check(zap.DebugLevel, "value rejected"); ce != nil {
		kindName := "plain"
		if kind != 0 {
			kindName = kind.String()
		}
		ce.Write(
			zap.String("transform", transform),
			zap.String("kind", kindName),
			zap.String("value", truncate(text, 64)),
		)
	}
	if s.metrics != nil {
		s.metrics.RecordRejection(transform)
	}
	return placeholder
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return strconv.Quote(s)
	}
	return strconv.Quote(s[:n]) + "..."
}

// EscapeHTML escapes v for HTML text or a quoted attribute value. HTML
// content is returned as is.
func (s *Sanitizer) EscapeHTML(v Value) string {
	text, kind := unpack(v)
	if kind == HTML {
		return text
	}
	return htmlTable.escape(text)
}

// EscapeHTMLRCDATA escapes v for the body of a textarea or title element.
// HTML content is normalized so its existing entities survive.
func (s *Sanitizer) EscapeHTMLRCDATA(v Value) string {
	text, kind := unpack(v)
	if kind == HTML {
		return normalizeHTMLTable.escape(text)
	}
	return htmlTable.escape(text)
}

// EscapeHTMLAttribute escapes v for a quoted attribute value. HTML content
// loses all of its tags.
func (s *Sanitizer) EscapeHTMLAttribute(v Value) string {
	text, kind := unpack(v)
	if kind == HTML {
		return s.StripHTMLTags(text, nil, true)
	}
	return htmlTable.escape(text)
}

// EscapeHTMLAttributeNospace escapes v for an unquoted attribute value.
func (s *Sanitizer) EscapeHTMLAttributeNospace(v Value) string {
	text, kind := unpack(v)
	if kind == HTML {
		return s.StripHTMLTags(text, nil, false)
	}
	return htmlNospaceTable.escape(text)
}

// NormalizeHTML escapes v like EscapeHTML but leaves ampersands alone, for
// input that is already markup.
func (s *Sanitizer) NormalizeHTML(v Value) string {
	text, _ := unpack(v)
	return normalizeHTMLTable.escape(text)
}

// NormalizeHTMLNospace is NormalizeHTML for unquoted attribute values.
func (s *Sanitizer) NormalizeHTMLNospace(v Value) string {
	text, _ := unpack(v)
	return normalizeHTMLNospaceTable.escape(text)
}

// FilterHTMLAttributes returns v if it is a harmless attribute name.
// Attributes content is passed through, padded with a trailing space when
// needed so the next attribute stays separate.
func (s *Sanitizer) FilterHTMLAttributes(v Value) string {
	text, kind := unpack(v)
	if kind == Attributes {
		return padAttributes(text)
	}
	if !attributeNameAllowed(text) {
		return s.reject("filterHtmlAttributes", text, kind, InnocuousOutput)
	}
	return text
}

// FilterHTMLElementName returns v if it is an element name whose body is
// parsed as ordinary markup.
func (s *Sanitizer) FilterHTMLElementName(v Value) string {
	text, kind := unpack(v)
	if !elementNameAllowed(text) {
		return s.reject("filterHtmlElementName", text, kind, InnocuousOutput)
	}
	return text
}

// EscapeJSString escapes v for the inside of a quoted JavaScript string.
func (s *Sanitizer) EscapeJSString(v Value) string {
	text, kind := unpack(v)
	if kind == JSStrChars {
		return text
	}
	return jsStringTable.escape(text)
}

// EscapeJSRegex escapes v for the inside of a JavaScript regular
// expression literal.
func (s *Sanitizer) EscapeJSRegex(v Value) string {
	text, _ := unpack(v)
	return jsRegexTable.escape(text)
}

// EscapeJSValue renders v as a complete JavaScript expression. Numbers,
// booleans and null are surrounded by spaces so they cannot merge with
// neighbouring tokens; everything else becomes a single quoted string
// unless it is JS content.
func (s *Sanitizer) EscapeJSValue(v Value) string {
	text, kind := unpack(v)
	switch v := v.(type) {
	case nil, Null, Bool, Float:
		return " " + text + " "
	case Int:
		return " " + formatFloat(float64(v)) + " "
	}
	if kind == JS {
		return text
	}
	return "'" + jsStringTable.escape(text) + "'"
}

// EscapeCSSString escapes v for the inside of a quoted CSS string.
func (s *Sanitizer) EscapeCSSString(v Value) string {
	text, _ := unpack(v)
	return cssStringTable.escape(text)
}

// FilterCSSValue returns v if it is a simple CSS value: numbers with units,
// keywords, hex colours and simple selectors.
func (s *Sanitizer) FilterCSSValue(v Value) string {
	text, kind := unpack(v)
	if kind == CSS {
		return text
	}
	if !cssValueAllowed(text) {
		return s.reject("filterCssValue", text, kind, InnocuousOutput)
	}
	return text
}

// EscapeURI percent-encodes v for use as one URI component. URI content is
// only normalized, so its structure survives.
func (s *Sanitizer) EscapeURI(v Value) string {
	text, kind := unpack(v)
	if kind == URI {
		return normalizeURIString(text)
	}
	return escapeURIString(text)
}

// NormalizeURI encodes the characters of v that are unsafe anywhere in a
// URI inside an HTML attribute.
func (s *Sanitizer) NormalizeURI(v Value) string {
	text, _ := unpack(v)
	return normalizeURIString(text)
}

// FilterNormalizeURI normalizes v and rejects it with "#zSoyz" if it names
// a scheme other than http, https or mailto. URI content is trusted to
// have a safe scheme and is only normalized.
func (s *Sanitizer) FilterNormalizeURI(v Value) string {
	text, kind := unpack(v)
	if kind == URI {
		return normalizeURIString(text)
	}
	out, ok := filterNormalizeURIString(text)
	if !ok {
		return s.reject("filterNormalizeUri", text, kind, out)
	}
	return out
}

// FilterNoAutoescape returns v unescaped unless it is Text content, which
// was produced without escaping and is never forwarded.
func (s *Sanitizer) FilterNoAutoescape(v Value) string {
	text, kind := unpack(v)
	if kind == Text {
		return s.reject("filterNoAutoescape", text, kind, InnocuousOutput)
	}
	return text
}

// StripHTMLTags removes all tags from value except those in safe, strips
// every attribute from the tags it keeps and closes them properly. Text is
// normalized for HTML; when spacesOK is false whitespace is encoded too, so
// the result can go in an unquoted attribute value.
func (s *Sanitizer) StripHTMLTags(value string, safe *TagWhitelist, spacesOK bool) string {
	res := stripTags(value, safe, spacesOK)
	if res.dropped > 0 {
		if ce := s.logger.Check(zap.DebugLevel, "tags dropped"); ce != nil {
			ce.Write(zap.Int("count", res.dropped))
		}
		if s.metrics != nil {
			s.metrics.RecordTagsDropped(res.dropped)
		}
	}
	return res.out
}
