package sanitizers

import (
	"fmt"
	"sort"
	"strings"
)

// TagWhitelist is an immutable set of tag names that StripHTMLTags keeps.
// A nil *TagWhitelist allows no tags at all.
type TagWhitelist struct {
	tags map[string]bool
	void map[string]bool
}

// FormattingTags allows basic inline formatting only.
var FormattingTags = NewTagWhitelist("b", "br", "em", "i", "s", "sub", "sup", "u")

// NewTagWhitelist returns a whitelist holding the lower-cased names. Void
// elements among them are recognized automatically.
//
// It panics if a name is not a plain element name or names an element with
// a raw text or RCDATA body such as script or textarea; whitelisting those
// could never be safe.
func NewTagWhitelist(names ...string) *TagWhitelist {
	w := &TagWhitelist{tags: sliceToSet(names), void: make(map[string]bool)}
	for tag := range w.tags {
		if !elementNameAllowed(tag) {
			panic(fmt.Sprintf("sanitizers: tag %q cannot be whitelisted", tag))
		}
		if isVoidElement(tag) {
			w.void[tag] = true
		}
	}
	return w
}

// StrictTags returns a whitelist of minimal formatting and list markup,
// suitable for comment sections.
func StrictTags() *TagWhitelist {
	return NewTagWhitelist("b", "i", "em", "strong", "br", "p", "ul", "ol", "li")
}

// ContentTags returns a whitelist covering the markup commonly found in
// articles and blog posts: headings, paragraphs, formatting, lists,
// tables, code and quotations.
func ContentTags() *TagWhitelist {
	return NewTagWhitelist(
		"h1", "h2", "h3", "h4", "h5", "h6",
		"p", "br", "hr",
		"b", "i", "em", "strong", "u", "s", "strike", "del", "ins",
		"ul", "ol", "li",
		"table", "thead", "tbody", "tfoot", "tr", "th", "td",
		"code", "pre", "kbd", "samp",
		"blockquote", "cite", "q",
		"figure", "figcaption",
		"div", "span", "section", "article", "header", "footer",
		"details", "summary",
		"abbr", "acronym", "address",
		"sup", "sub",
	)
}

// Allows reports whether the lower-cased tag name is whitelisted.
func (w *TagWhitelist) Allows(name string) bool {
	return w != nil && w.tags[name]
}

// IsVoid reports whether name is whitelisted and never takes a close tag.
func (w *TagWhitelist) IsVoid(name string) bool {
	return w != nil && w.void[name]
}

// Tags returns the whitelisted names in sorted order.
func (w *TagWhitelist) Tags() []string {
	if w == nil {
		return nil
	}
	out := make([]string, 0, len(w.tags))
	for tag := range w.tags {
		out = append(out, tag)
	}
	sort.Strings(out)
	return out
}

func sliceToSet(s []string) map[string]bool {
	m := make(map[string]bool, len(s))
	for _, v := range s {
		m[strings.ToLower(v)] = true
	}
	return m
}

func isVoidElement(tag string) bool {
	switch tag {
	case "area", "base", "br", "col", "embed", "hr", "img", "input",
		"link", "meta", "param", "source", "track", "wbr":
		return true
	}
	return false
}
