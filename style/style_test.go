package style

import (
	"testing"

	"github.com/pgavlin/svgo/atom"
	"github.com/pgavlin/svgo/attr"
	"github.com/pgavlin/svgo/dom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setAttr(n *dom.Node, name, raw string) {
	n.Attrs.SetNamedItem(attr.ParseAttr(name, raw))
}

func TestResolveFromPresentationAttribute(t *testing.T) {
	d := dom.NewDocument()
	rect := d.Arena.CreateElement(atom.Name{LocalName: "rect"})
	setAttr(rect, "fill", "red")

	r := NewResolver(nil)
	c, ok := r.Resolve(rect, "fill")
	require.True(t, ok)
	assert.Equal(t, ModeStatic, c.Mode)
	assert.Equal(t, "red", c.Value)
}

func TestResolveFromStylesheetRule(t *testing.T) {
	sheet, err := Parse(`rect.box { fill: blue; }`)
	require.NoError(t, err)

	d := dom.NewDocument()
	rect := d.Arena.CreateElement(atom.Name{LocalName: "rect"})
	rect.ClassList().Add("box")

	r := NewResolver([]*Stylesheet{sheet})
	c, ok := r.Resolve(rect, "fill")
	require.True(t, ok)
	assert.Equal(t, ModeStatic, c.Mode)
	assert.Equal(t, "blue", c.Value)
}

func TestResolveDynamicSelector(t *testing.T) {
	sheet, err := Parse(`rect:hover { fill: green; }`)
	require.NoError(t, err)

	d := dom.NewDocument()
	rect := d.Arena.CreateElement(atom.Name{LocalName: "rect"})

	r := NewResolver([]*Stylesheet{sheet})
	_, ok := r.Resolve(rect, "fill")
	assert.False(t, ok, "pseudo-class selector never matches statically")
}

func TestResolveInheritsFromAncestor(t *testing.T) {
	d := dom.NewDocument()
	svg := d.Arena.CreateElement(atom.Name{LocalName: "svg"})
	d.Root.AppendChild(svg)
	setAttr(svg, "fill", "purple")
	g := d.Arena.CreateElement(atom.Name{LocalName: "g"})
	svg.AppendChild(g)
	rect := d.Arena.CreateElement(atom.Name{LocalName: "rect"})
	g.AppendChild(rect)

	r := NewResolver(nil)
	c, ok := r.Resolve(rect, "fill")
	require.True(t, ok)
	assert.Equal(t, ModeInherited, c.Mode)
	assert.Equal(t, "purple", c.Value)
}

func TestResolveStyleAttributeOverridesStylesheet(t *testing.T) {
	sheet, err := Parse(`rect { fill: blue; }`)
	require.NoError(t, err)

	d := dom.NewDocument()
	rect := d.Arena.CreateElement(atom.Name{LocalName: "rect"})
	setAttr(rect, "style", "fill: yellow")

	r := NewResolver([]*Stylesheet{sheet})
	c, ok := r.Resolve(rect, "fill")
	require.True(t, ok)
	assert.Equal(t, "yellow", c.Value)
}

func TestSelectorMatchesDescendantCombinator(t *testing.T) {
	d := dom.NewDocument()
	svg := d.Arena.CreateElement(atom.Name{LocalName: "svg"})
	d.Root.AppendChild(svg)
	g := d.Arena.CreateElement(atom.Name{LocalName: "g"})
	g.ClassList().Add("layer")
	svg.AppendChild(g)
	rect := d.Arena.CreateElement(atom.Name{LocalName: "rect"})
	g.AppendChild(rect)

	assert.True(t, selectorMatches("g.layer rect", domElement{rect}))
	assert.False(t, selectorMatches("g.other rect", domElement{rect}))
}

func TestSelectorMatchesChildCombinator(t *testing.T) {
	d := dom.NewDocument()
	svg := d.Arena.CreateElement(atom.Name{LocalName: "svg"})
	d.Root.AppendChild(svg)
	rect := d.Arena.CreateElement(atom.Name{LocalName: "rect"})
	svg.AppendChild(rect)

	assert.True(t, selectorMatches("svg > rect", domElement{rect}))
}
