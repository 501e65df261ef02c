package sanitizers_test

import (
	"fmt"

	"github.com/njchilds90/sanitizers"
	"go.uber.org/zap"
)

func ExampleEscapeHTML() {
	input := `<a href='x'>Tom & Jerry</a>`
	fmt.Println(sanitizers.EscapeHTML(sanitizers.String(input)))
	// Output: &lt;a href=&#39;x&#39;&gt;Tom &amp; Jerry&lt;/a&gt;
}

func ExampleEscapeHTML_content() {
	trusted := sanitizers.Ordain("<b>already safe</b>", sanitizers.HTML)
	fmt.Println(sanitizers.EscapeHTML(trusted))
	fmt.Println(sanitizers.EscapeJSString(trusted))
	// Output:
	// <b>already safe</b>
	// \x3cb\x3ealready safe\x3c\/b\x3e
}

func ExampleFilterNormalizeURI() {
	fmt.Println(sanitizers.FilterNormalizeURI(sanitizers.String("https://example.com/a b")))
	fmt.Println(sanitizers.FilterNormalizeURI(sanitizers.String("javascript:alert(1)")))
	// Output:
	// https://example.com/a%20b
	// #zSoyz
}

func ExampleEscapeJSValue() {
	fmt.Printf("[%s]\n", sanitizers.EscapeJSValue(sanitizers.Int(4)))
	fmt.Printf("[%s]\n", sanitizers.EscapeJSValue(sanitizers.String("it's")))
	// Output:
	// [ 4.0 ]
	// ['it\x27s']
}

func ExampleStripHTMLTags() {
	input := `<b onclick="evil()">bold</b> <div>plain</div> <i>open`
	fmt.Println(sanitizers.StripHTMLTags(input, sanitizers.FormattingTags, true))
	// Output: <b>bold</b> plain <i>open</i>
}

func ExampleNew() {
	s := sanitizers.New(sanitizers.WithLogger(zap.NewExample()))
	fmt.Println(s.FilterCSSValue(sanitizers.String("expression(alert(1))")))
	// Output:
	// {"level":"debug","msg":"value rejected","transform":"filterCssValue","kind":"plain","value":"\"expression(alert(1))\""}
	// zSoyz
}

func ExampleLookup() {
	escape, ok := sanitizers.Lookup("escapeCssString")
	if !ok {
		return
	}
	fmt.Println(escape(sanitizers.String("a'b")))
	// Output: a\27 b
}
