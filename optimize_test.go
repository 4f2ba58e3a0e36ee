package svg

import (
	"strings"
	"testing"

	"github.com/pgavlin/svgo/atom"
	"github.com/pgavlin/svgo/attr"
	"github.com/pgavlin/svgo/dom"
	"github.com/pgavlin/svgo/optimize"
	"github.com/pgavlin/svgo/xmlwriter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildDoc() (*dom.Document, *dom.Node) {
	d := dom.NewDocument()
	root := d.Arena.CreateElement(atom.Local("svg"))
	d.Root.AppendChild(root)
	return d, root
}

func TestWriteRoundTripsSimpleElement(t *testing.T) {
	d, svg := buildDoc()
	rect := d.Arena.CreateElement(atom.Local("rect"))
	rect.Attrs.SetNamedItem(attr.ParseAttr("fill", "red"))
	svg.AppendChild(rect)

	var b strings.Builder
	require.NoError(t, Write(&b, d, xmlwriter.Options{EnableSelfClosing: true}))

	out := b.String()
	assert.Contains(t, out, "<svg>")
	assert.Contains(t, out, `<rect fill="red"/>`)
	assert.Contains(t, out, "</svg>")
}

func TestWriteSerializesFragmentHref(t *testing.T) {
	d, svg := buildDoc()
	use := d.Arena.CreateElement(atom.Local("use"))
	use.Attrs.SetNamedItem(attr.ParseAttr("xlink:href", "#box"))
	svg.AppendChild(use)

	var b strings.Builder
	require.NoError(t, Write(&b, d, xmlwriter.Options{EnableSelfClosing: true}))

	assert.Contains(t, b.String(), `xlink:href="#box"`)
}

func TestOptimizeRunsDefaultPipelineThenWriteShrinksDoc(t *testing.T) {
	d, svg := buildDoc()
	g := d.Arena.CreateElement(atom.Local("g"))
	rect := d.Arena.CreateElement(atom.Local("rect"))
	rect.Attrs.SetNamedItem(attr.ParseAttr("fill-rule", "nonzero"))
	g.AppendChild(rect)
	svg.AppendChild(g)

	require.NoError(t, Optimize(d, Options{}))

	var b strings.Builder
	require.NoError(t, Write(&b, d, xmlwriter.Options{EnableSelfClosing: true}))

	out := b.String()
	assert.NotContains(t, out, "fill-rule", "default value dropped by RemoveUnknownsAndDefaults")
	assert.NotContains(t, out, "<g>", "single-child group collapsed by CollapseGroups")
}

func TestWritePreservesInputXMLDeclaration(t *testing.T) {
	d, _ := buildDoc()
	d.Declaration = &dom.Declaration{Version: "1.0", Encoding: "UTF-8"}

	var b strings.Builder
	require.NoError(t, Write(&b, d, xmlwriter.Options{EnableSelfClosing: true}))

	out := b.String()
	require.True(t, strings.HasPrefix(out, `<?xml version="1.0" encoding="UTF-8"?>`))
}

func TestWriteOmitsDeclarationWhenDocHasNone(t *testing.T) {
	d, _ := buildDoc()

	var b strings.Builder
	require.NoError(t, Write(&b, d, xmlwriter.Options{EnableSelfClosing: true}))

	assert.False(t, strings.HasPrefix(b.String(), "<?xml"))
}

func TestWriteSuppressesIndentInsideTextContent(t *testing.T) {
	d, svg := buildDoc()
	text := d.Arena.CreateElement(atom.Local("text"))
	tspan := d.Arena.CreateElement(atom.Local("tspan"))
	tspan.AppendChild(d.Arena.CreateText(" hi "))
	text.AppendChild(tspan)
	svg.AppendChild(text)

	var b strings.Builder
	require.NoError(t, Write(&b, d, xmlwriter.Options{
		EnableSelfClosing: true,
		Indent:            "  ",
		TrimWhitespace:    xmlwriter.TrimExceptTextContent,
	}))

	out := b.String()
	assert.Contains(t, out, "<text><tspan> hi </tspan></text>",
		"text-content elements must not be re-indented or have their whitespace trimmed")
}

func TestOptimizeAcceptsCustomRegistry(t *testing.T) {
	d, svg := buildDoc()
	rect := d.Arena.CreateElement(atom.Local("rect"))
	rect.Attrs.SetNamedItem(attr.ParseAttr("id", "box"))
	svg.AppendChild(rect)

	reg := optimize.NewRegistry().Add(optimize.NewPrefixIds(optimize.PrefixIdsOptions{Prefix: "x"}))
	require.NoError(t, Optimize(d, Options{Registry: reg}))

	idAttr := d.Root.FirstElementChild().FirstElementChild().Attrs.GetNamedItemLocal("id")
	require.NotNil(t, idAttr)
	assert.Equal(t, "x_box", idAttr.Value.String())
}
