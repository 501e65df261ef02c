// Package sanitizers makes untrusted values safe to embed verbatim in
// HTML, JavaScript, CSS and URI output.
//
// # Overview
//
// Each transform targets one output context. It accepts a [Value], which is
// either plain data ([Null], [Bool], [Int], [Float], [String]) or
// [Content] that was already made safe for some [Kind]. Plain data is
// always fully escaped or filtered. Content is passed through untouched
// only by the transforms for its own kind; for every other context it is
// treated as untrusted text. [Text] content is never trusted.
//
// # Transforms
//
// Escapers never fail:
//   - [EscapeHTML], [EscapeHTMLRCDATA], [EscapeHTMLAttribute],
//     [EscapeHTMLAttributeNospace], [NormalizeHTML], [NormalizeHTMLNospace]
//   - [EscapeJSString], [EscapeJSRegex], [EscapeJSValue]
//   - [EscapeCSSString]
//   - [EscapeURI], [NormalizeURI]
//
// Filters replace anything they do not accept with [InnocuousOutput]:
//   - [FilterCSSValue], [FilterHTMLAttributes], [FilterHTMLElementName]
//   - [FilterNormalizeURI], which renders "#zSoyz" so the link stays a
//     harmless fragment
//   - [FilterNoAutoescape]
//
// [StripHTMLTags] reduces markup to the tags of a [TagWhitelist], drops all
// of their attributes and closes whatever was left open.
//
// # Security
//
// No escaped output contains "</script", "</style", "<!--", "-->",
// "<![CDATA[" or "]]>" unless it was already present in trusted content.
// FilterNormalizeURI sees through character references, embedded
// whitespace and full-width punctuation when looking for a scheme.
//
// # Thread Safety
//
// All functions are safe for concurrent use. Escape tables and whitelists
// are immutable after construction.
//
// # Example
//
//	href := sanitizers.FilterNormalizeURI(sanitizers.String(link))
//	body := sanitizers.StripHTMLTags(comment, sanitizers.StrictTags(), true)
package sanitizers
