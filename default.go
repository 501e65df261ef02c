package sanitizers

// std backs the package-level functions. It has no logger or metrics.
var std = New()

// EscapeHTML escapes v for HTML text using a Sanitizer with no hooks.
func EscapeHTML(v Value) string { return std.EscapeHTML(v) }

// EscapeHTMLRCDATA escapes v for RCDATA element bodies.
func EscapeHTMLRCDATA(v Value) string { return std.EscapeHTMLRCDATA(v) }

// EscapeHTMLAttribute escapes v for a quoted attribute value.
func EscapeHTMLAttribute(v Value) string { return std.EscapeHTMLAttribute(v) }

// EscapeHTMLAttributeNospace escapes v for an unquoted attribute value.
func EscapeHTMLAttributeNospace(v Value) string { return std.EscapeHTMLAttributeNospace(v) }

// NormalizeHTML escapes v for HTML text, keeping existing entities.
func NormalizeHTML(v Value) string { return std.NormalizeHTML(v) }

// NormalizeHTMLNospace is NormalizeHTML for unquoted attribute values.
func NormalizeHTMLNospace(v Value) string { return std.NormalizeHTMLNospace(v) }

// FilterHTMLAttributes filters an attribute name or run of attributes.
func FilterHTMLAttributes(v Value) string { return std.FilterHTMLAttributes(v) }

// FilterHTMLElementName filters an element name.
func FilterHTMLElementName(v Value) string { return std.FilterHTMLElementName(v) }

// EscapeJSString escapes v for a quoted JavaScript string.
func EscapeJSString(v Value) string { return std.EscapeJSString(v) }

// EscapeJSRegex escapes v for a JavaScript regular expression literal.
func EscapeJSRegex(v Value) string { return std.EscapeJSRegex(v) }

// EscapeJSValue renders v as a JavaScript expression.
func EscapeJSValue(v Value) string { return std.EscapeJSValue(v) }

// EscapeCSSString escapes v for a quoted CSS string.
func EscapeCSSString(v Value) string { return std.EscapeCSSString(v) }

// FilterCSSValue filters a CSS property value.
func FilterCSSValue(v Value) string { return std.FilterCSSValue(v) }

// EscapeURI percent-encodes v as a URI component.
func EscapeURI(v Value) string { return std.EscapeURI(v) }

// NormalizeURI normalizes v for a URI attribute.
func NormalizeURI(v Value) string { return std.NormalizeURI(v) }

// FilterNormalizeURI normalizes v and rejects unsafe schemes.
func FilterNormalizeURI(v Value) string { return std.FilterNormalizeURI(v) }

// FilterNoAutoescape passes v through unless it is Text content.
func FilterNoAutoescape(v Value) string { return std.FilterNoAutoescape(v) }

// StripHTMLTags removes every tag not in safe from value.
func StripHTMLTags(value string, safe *TagWhitelist, spacesOK bool) string {
	return std.StripHTMLTags(value, safe, spacesOK)
}

// Lookup returns the transform for a print directive name.
func Lookup(name string) (func(Value) string, bool) { return std.Lookup(name) }

// Directives lists every print directive name.
func Directives() []string { return std.Directives() }
