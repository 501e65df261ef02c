package sanitizers_test

import (
	"strings"
	"testing"

	"github.com/njchilds90/sanitizers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testWhitelist = sanitizers.NewTagWhitelist("b", "br", "ul", "li", "table", "tr", "td")

func cleanHTML(s string) string {
	return sanitizers.StripHTMLTags(s, testWhitelist, true)
}

func TestStripHTMLTags_NoWhitelist(t *testing.T) {
	tests := []struct {
		in       string
		spacesOK bool
		want     string
	}{
		{"", true, ""},
		{"Hello, World!", true, "Hello, World!"},
		{"Hello, World!", false, "Hello,&#32;World!"},
		{"<b>Hello, World!</b>", true, "Hello, World!"},
		{`<b>Hello, "World!"</b>`, true, "Hello, &quot;World!&quot;"},
		{`<b>Hello, "World!"</b>`, false, "Hello,&#32;&quot;World!&quot;"},
		{"42", true, "42"},
		{"&<hr>amp;", true, "&amp;amp;"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, sanitizers.StripHTMLTags(tt.in, nil, tt.spacesOK), tt.in)
	}
}

func TestStripHTMLTags_Whitelist(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"kept", "<b>Hello, World!</b>", "<b>Hello, World!</b>"},
		{"attributes stripped", "<b onclick='evil()'>Hello, World!</b>", "<b>Hello, World!</b>"},
		{"quoted angle bracket", `<b title="a>b">x</b>`, "<b>x</b>"},
		{"self-closing void", "<b>Hello, <br/> World!</b>", "<b>Hello, <br> World!</b>"},
		{"no end tag for void", "<b>Hello, <br/> World!", "<b>Hello, <br> World!</b>"},
		{"unclosed", "<b>Hello, <br> World!", "<b>Hello, <br> World!</b>"},
		{"missing open tag", "Hello, <br/> World!", "Hello, <br> World!"},
		{"upper case", "<B>x</B>", "<b>x</b>"},
		{"truncated tag", "Hello, <br", "Hello, &lt;br"},
		{"lone angle", "Hello, <", "Hello, &lt;"},
		{"lone close", "Hello, </", "Hello, &lt;/"},
		{"angle and space", "Hello, < World", "Hello, &lt; World"},
		{"empty close", "a</>b", "a&lt;/&gt;b"},
		{"attribute glued to name", "<img/onload=alert(1337)>", ""},
		{"attribute glued to dropped tag", "<i/onmouseover=alert(1337)>foo</i>", "foo"},
		{"text around dropped tag", "A<img/onload=alert(1337)>B", "AB"},
		{"no tag from separated parts",
			"<<img/onload=alert(1337)>img onload=alert(1337)", "&lt;img onload=alert(1337)"},
		{"close contained tags", "<ul><li>Foo</ul>", "<ul><li>Foo</li></ul>"},
		{"close innermost first", "<ul><li>1<li>2</ul>", "<ul><li>1<li>2</li></li></ul>"},
		{"close at end", "<table><tr><td>", "<table><tr><td></td></tr></table>"},
		{"stray close", "</table>x</b>", "x"},
		{"misnested", "<b><ul>x</b>y</ul>", "<b><ul>x</ul></b>y"},
		{"no entity across tags", "&<hr>amp;", "&amp;amp;"},
		{"no partial entity across tags", "&am<hr>p;", "&amp;amp;"},
		{"entity kept", "&amp; &#39; &#x27;<b>x</b>", "&amp; &#39; &#x27;<b>x</b>"},
		{"comment dropped", "a<!-- x -->b", "ab"},
		{"comment holding a tag", "a<!-- <b> -->b", "a&lt;!-- <b> --&gt;b</b>"},
		{"doctype dropped", "<!DOCTYPE html>x", "x"},
		{"unknown name suffix", "<b-x>y</b-x>", "y"},
		{"tag interrupted", "<b <br>x", "&lt;b <br>x"},
		{"angle in single quoted value", "<b title='a<3'>hi</b>", "<b>hi</b>"},
		{"angle in double quoted value", `<b title="a < b">x</b>`, "<b>x</b>"},
		{"comparison in handler", `<b onclick="if(a < b)x()">hi</b>`, "<b>hi</b>"},
		{"tag markup in quoted value", `<b title="<i>x</i>">y</b>`, "<b>y</b>"},
		{"angle and digit", "<b a=1<2>x</b>", "<b>x</b>"},
		{"unterminated quote", "<b title='x>y", "&lt;b title=&#39;x&gt;y"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cleanHTML(tt.in))
		})
	}
}

func TestStripHTMLTags_ScriptNeverSurvives(t *testing.T) {
	inputs := []string{
		"<script>alert(1)</script>",
		"<scr<script>ipt>alert(1)</script>",
		"<<script>script>alert(1)<</script>/script>",
		"<ScRiPt src=//evil.example></ScRiPt>",
	}
	for _, in := range inputs {
		got := sanitizers.StripHTMLTags(in, sanitizers.ContentTags(), true)
		assert.NotContains(t, strings.ToLower(got), "<script", in)
	}
}

func TestStripHTMLTags_OutputIsBalanced(t *testing.T) {
	inputs := []string{
		"<b><b><b>",
		"</b></b><b>",
		"<ul><li><b>x</ul></li></b>",
		"<table><tr></table><td>",
	}
	for _, in := range inputs {
		got := cleanHTML(in)
		for _, tag := range []string{"b", "ul", "li", "table", "tr", "td"} {
			opens := strings.Count(got, "<"+tag+">")
			closes := strings.Count(got, "</"+tag+">")
			assert.Equal(t, opens, closes, "%s in %q -> %q", tag, in, got)
		}
	}
}

func TestTagWhitelist(t *testing.T) {
	w := sanitizers.NewTagWhitelist("B", "br", "Ul")
	assert.True(t, w.Allows("b"))
	assert.True(t, w.Allows("ul"))
	assert.False(t, w.Allows("B"), "lookups use lower-cased names")
	assert.False(t, w.Allows("i"))
	assert.True(t, w.IsVoid("br"))
	assert.False(t, w.IsVoid("b"))
	assert.False(t, w.IsVoid("img"), "void but not whitelisted")
	assert.Equal(t, []string{"b", "br", "ul"}, w.Tags())

	var none *sanitizers.TagWhitelist
	assert.False(t, none.Allows("b"))
	assert.Nil(t, none.Tags())
}

func TestTagWhitelist_RejectsUnsafeNames(t *testing.T) {
	for _, name := range []string{"script", "STYLE", "textarea", "b>", ""} {
		assert.Panics(t, func() { sanitizers.NewTagWhitelist("b", name) }, name)
	}
}

func TestTagWhitelist_Predefined(t *testing.T) {
	require.NotNil(t, sanitizers.FormattingTags)
	assert.Equal(t, []string{"b", "br", "em", "i", "s", "sub", "sup", "u"}, sanitizers.FormattingTags.Tags())
	assert.True(t, sanitizers.StrictTags().Allows("li"))
	assert.False(t, sanitizers.StrictTags().Allows("div"))
	assert.True(t, sanitizers.ContentTags().Allows("blockquote"))
	assert.True(t, sanitizers.ContentTags().IsVoid("hr"))
}

func BenchmarkStripHTMLTags(b *testing.B) {
	input := strings.Repeat(`<p>Hello <b>world</b> <script>bad()</script> <a href="http://x.com">link</a></p>`, 100)
	w := sanitizers.ContentTags()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = sanitizers.StripHTMLTags(input, w, true)
	}
}
