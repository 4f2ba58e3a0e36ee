package xmlwriter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelfClosingEmptyElement(t *testing.T) {
	var b strings.Builder
	w := New(&b, Options{EnableSelfClosing: true})

	require.NoError(t, w.StartElement("rect"))
	require.NoError(t, w.Attribute("width", "10"))
	require.NoError(t, w.EndElement("rect"))
	require.NoError(t, w.Close())

	assert.Equal(t, `<rect width="10"/>`, b.String())
}

func TestExplicitClosingWhenSelfClosingDisabled(t *testing.T) {
	var b strings.Builder
	w := New(&b, Options{})

	require.NoError(t, w.StartElement("g"))
	require.NoError(t, w.EndElement("g"))

	assert.Equal(t, `<g></g>`, b.String())
}

func TestNestedElementsAndText(t *testing.T) {
	var b strings.Builder
	w := New(&b, Options{EnableSelfClosing: true})

	require.NoError(t, w.StartElement("svg"))
	require.NoError(t, w.StartElement("text"))
	require.NoError(t, w.Text("a < b & c"))
	require.NoError(t, w.EndElement("text"))
	require.NoError(t, w.EndElement("svg"))

	assert.Equal(t, `<svg><text>a &lt; b &amp; c</text></svg>`, b.String())
}

func TestAttributeEscapingDoubleQuote(t *testing.T) {
	var b strings.Builder
	w := New(&b, Options{EnableSelfClosing: true})

	require.NoError(t, w.StartElement("path"))
	require.NoError(t, w.Attribute("d", `M0 0"quote"`))
	require.NoError(t, w.EndElement("path"))

	assert.Equal(t, `<path d="M0 0&quot;quote&quot;"/>`, b.String())
}

func TestAttributeSingleQuoteOption(t *testing.T) {
	var b strings.Builder
	w := New(&b, Options{EnableSelfClosing: true, UseSingleQuote: true})

	require.NoError(t, w.StartElement("rect"))
	require.NoError(t, w.Attribute("fill", "red"))
	require.NoError(t, w.EndElement("rect"))

	assert.Equal(t, `<rect fill='red'/>`, b.String())
}

func TestIndentedNesting(t *testing.T) {
	var b strings.Builder
	w := New(&b, Options{Indent: "  ", EnableSelfClosing: true})

	require.NoError(t, w.StartElement("svg"))
	require.NoError(t, w.StartElement("rect"))
	require.NoError(t, w.EndElement("rect"))
	require.NoError(t, w.EndElement("svg"))

	assert.Equal(t, "<svg>\n  <rect/>\n</svg>", b.String())
}

func TestMinifySuppressesIndentEvenWhenSet(t *testing.T) {
	var b strings.Builder
	w := New(&b, Options{Indent: "  ", Minify: true, EnableSelfClosing: true})

	require.NoError(t, w.StartElement("svg"))
	require.NoError(t, w.StartElement("rect"))
	require.NoError(t, w.EndElement("rect"))
	require.NoError(t, w.EndElement("svg"))

	assert.Equal(t, "<svg><rect/></svg>", b.String())
}

func TestTrimWhitespaceDropsBlankText(t *testing.T) {
	var b strings.Builder
	w := New(&b, Options{TrimWhitespace: TrimAlways, EnableSelfClosing: true})

	require.NoError(t, w.StartElement("g"))
	require.NoError(t, w.Text("   \n\t  "))
	require.NoError(t, w.EndElement("g"))

	assert.Equal(t, `<g/>`, b.String())
}

func TestTrimExceptTextContentLeavesTextContentWhitespaceAlone(t *testing.T) {
	var b strings.Builder
	w := New(&b, Options{TrimWhitespace: TrimExceptTextContent, Indent: "  ", EnableSelfClosing: true})

	require.NoError(t, w.StartElement("text"))
	w.EnterTextContent()
	require.NoError(t, w.StartElement("tspan"))
	require.NoError(t, w.Text("  a  "))
	require.NoError(t, w.EndElement("tspan"))
	w.ExitTextContent()
	require.NoError(t, w.EndElement("text"))

	assert.Equal(t, `<text><tspan>  a  </tspan></text>`, b.String())
}

func TestTrimExceptTextContentTrimsOutsideTextContent(t *testing.T) {
	var b strings.Builder
	w := New(&b, Options{TrimWhitespace: TrimExceptTextContent, EnableSelfClosing: true})

	require.NoError(t, w.StartElement("g"))
	require.NoError(t, w.Text("   \n\t  "))
	require.NoError(t, w.EndElement("g"))

	assert.Equal(t, `<g/>`, b.String())
}

func TestCDATARejectsEmbeddedEndMarker(t *testing.T) {
	var b strings.Builder
	w := New(&b, Options{})

	require.NoError(t, w.StartElement("style"))
	err := w.CDATA("a ]]> b")
	assert.ErrorIs(t, err, errCDATAViolation)
}

func TestCommentAndPI(t *testing.T) {
	var b strings.Builder
	w := New(&b, Options{})

	require.NoError(t, w.PI("xml-stylesheet", `type="text/css" href="a.css"`))
	require.NoError(t, w.Comment(" note "))
	require.NoError(t, w.StartElement("svg"))
	require.NoError(t, w.EndElement("svg"))

	assert.Equal(t, `<?xml-stylesheet type="text/css" href="a.css"?><!-- note --><svg></svg>`, b.String())
}

func TestDeclaration(t *testing.T) {
	var b strings.Builder
	w := New(&b, Options{})
	require.NoError(t, w.Declaration("1.0", "UTF-8", ""))
	assert.Equal(t, `<?xml version="1.0" encoding="UTF-8"?>`, b.String())
}

func TestDeclarationWithStandalone(t *testing.T) {
	var b strings.Builder
	w := New(&b, Options{})
	require.NoError(t, w.Declaration("1.0", "", "yes"))
	assert.Equal(t, `<?xml version="1.0" standalone="yes"?>`, b.String())
}

func TestDeclarationTwiceErrors(t *testing.T) {
	var b strings.Builder
	w := New(&b, Options{})
	require.NoError(t, w.Declaration("1.0", "", ""))
	err := w.Declaration("1.0", "", "")
	assert.ErrorIs(t, err, errDeclarationTwice)
}

func TestDeclarationAfterNodeErrors(t *testing.T) {
	var b strings.Builder
	w := New(&b, Options{})
	require.NoError(t, w.StartElement("svg"))
	err := w.Declaration("1.0", "", "")
	assert.ErrorIs(t, err, errDeclarationTwice)
}

func TestUnbalancedEndElementErrors(t *testing.T) {
	var b strings.Builder
	w := New(&b, Options{})
	require.NoError(t, w.StartElement("svg"))
	err := w.EndElement("g")
	assert.ErrorIs(t, err, errUnbalanced)
}

func TestCloseReportsUnclosedElements(t *testing.T) {
	var b strings.Builder
	w := New(&b, Options{})
	require.NoError(t, w.StartElement("svg"))
	assert.Error(t, w.Close())
}

func TestAttributeAfterContentErrors(t *testing.T) {
	var b strings.Builder
	w := New(&b, Options{})
	require.NoError(t, w.StartElement("svg"))
	require.NoError(t, w.Text("x"))
	err := w.Attribute("id", "a")
	assert.ErrorIs(t, err, errNoOpenTag)
}

func TestElementWithAttributeAndChildNeverSelfCloses(t *testing.T) {
	var b strings.Builder
	w := New(&b, Options{EnableSelfClosing: true})

	require.NoError(t, w.StartElement("g"))
	require.NoError(t, w.Attribute("id", "box"))
	require.NoError(t, w.StartElement("rect"))
	require.NoError(t, w.EndElement("rect"))
	require.NoError(t, w.EndElement("g"))

	assert.Equal(t, `<g id="box"><rect/></g>`, b.String())
}
