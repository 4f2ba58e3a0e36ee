package optimize

import (
	"testing"

	"github.com/pgavlin/svgo/atom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoveUnknownsAndDefaultsDropsDefaultValue(t *testing.T) {
	d, svg := newDoc()
	rect := child(d, svg, "rect")
	set(rect, "fill-rule", "nonzero")

	require.NoError(t, run(d, NewRemoveUnknownsAndDefaults(RemoveUnknownsAndDefaultsOptions{})))

	_, ok := attrString(rect, atom.AttrFillRule)
	assert.False(t, ok)
}

func TestRemoveUnknownsAndDefaultsKeepsAttrsOnIDedElement(t *testing.T) {
	d, svg := newDoc()
	rect := child(d, svg, "rect")
	set(rect, "id", "box", "fill-rule", "nonzero")

	require.NoError(t, run(d, NewRemoveUnknownsAndDefaults(RemoveUnknownsAndDefaultsOptions{})))

	_, ok := attrString(rect, atom.AttrFillRule)
	assert.True(t, ok)
}

func TestRemoveUnknownsAndDefaultsDropsUnrecognizedAttr(t *testing.T) {
	d, svg := newDoc()
	rect := child(d, svg, "rect")
	set(rect, "totally-made-up", "x")

	require.NoError(t, run(d, NewRemoveUnknownsAndDefaults(RemoveUnknownsAndDefaultsOptions{})))

	assert.Nil(t, rect.Attrs.GetNamedItemLocal("totally-made-up"))
}

func TestRemoveUnknownsAndDefaultsKeepsDataAttrWhenOptedIn(t *testing.T) {
	d, svg := newDoc()
	rect := child(d, svg, "rect")
	set(rect, "data-foo", "x")

	require.NoError(t, run(d, NewRemoveUnknownsAndDefaults(RemoveUnknownsAndDefaultsOptions{KeepDataAttrs: true})))

	assert.NotNil(t, rect.Attrs.GetNamedItemLocal("data-foo"))
}

func TestRemoveUnknownsAndDefaultsRemovesAttrNotPermittedOnElement(t *testing.T) {
	d, svg := newDoc()
	rect := child(d, svg, "rect")
	set(rect, "cx", "5", "cy", "5", "r", "5", "width", "10", "height", "10")

	require.NoError(t, run(d, NewRemoveUnknownsAndDefaults(RemoveUnknownsAndDefaultsOptions{})))

	_, hasCx := attrString(rect, atom.AttrCx)
	_, hasCy := attrString(rect, atom.AttrCy)
	_, hasR := attrString(rect, atom.AttrR)
	assert.False(t, hasCx, "cx is a circle/radialGradient geometry attribute, not permitted on rect")
	assert.False(t, hasCy, "cy is a circle/radialGradient geometry attribute, not permitted on rect")
	assert.False(t, hasR, "r is a circle/radialGradient geometry attribute, not permitted on rect")

	_, hasWidth := attrString(rect, atom.AttrWidth)
	assert.True(t, hasWidth, "width is permitted on rect and must survive")
}

func TestRemoveUnknownsAndDefaultsKeepsNotPermittedAttrOnIDedElement(t *testing.T) {
	d, svg := newDoc()
	rect := child(d, svg, "rect")
	set(rect, "id", "box", "cx", "5")

	require.NoError(t, run(d, NewRemoveUnknownsAndDefaults(RemoveUnknownsAndDefaultsOptions{})))

	_, ok := attrString(rect, atom.AttrCx)
	assert.True(t, ok, "id-bearing elements keep every attribute outright")
}

func TestRemoveUnknownsAndDefaultsRemovesDisallowedChild(t *testing.T) {
	d, svg := newDoc()
	clipPath := child(d, svg, "clipPath")
	g := child(d, clipPath, "g")

	require.NoError(t, run(d, NewRemoveUnknownsAndDefaults(RemoveUnknownsAndDefaultsOptions{})))

	assert.Nil(t, g.ParentElement(), "g is not a permitted child of clipPath in this pass's policed table")
}
