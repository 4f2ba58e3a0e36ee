package optimize

import (
	"testing"

	"github.com/pgavlin/svgo/atom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoveUselessStrokeDropsZeroWidthAttrs(t *testing.T) {
	d, svg := newDoc()
	rect := child(d, svg, "rect")
	set(rect, "stroke", "red", "stroke-width", "0", "stroke-dasharray", "1,2")

	require.NoError(t, run(d, NewRemoveUselessStrokeAndFill(RemoveUselessStrokeAndFillOptions{})))

	_, ok := attrString(rect, atom.AttrStroke)
	assert.False(t, ok)
	_, ok = attrString(rect, atom.AttrStrokeDasharray)
	assert.False(t, ok)
}

func TestRemoveUselessStrokeKeptWhenMarkerPresent(t *testing.T) {
	d, svg := newDoc()
	path := child(d, svg, "path")
	set(path, "d", "M0 0L10 0", "stroke", "none", "marker-end", "url(#arrow)")

	require.NoError(t, run(d, NewRemoveUselessStrokeAndFill(RemoveUselessStrokeAndFillOptions{})))

	_, ok := attrString(path, atom.AttrMarkerEnd)
	assert.True(t, ok)
	_, ok = attrString(path, atom.AttrStroke)
	assert.True(t, ok, "stroke attrs must survive when a marker is drawn")
}

func TestRemoveUselessFillDropsNoneFill(t *testing.T) {
	d, svg := newDoc()
	rect := child(d, svg, "rect")
	set(rect, "fill", "none", "fill-rule", "evenodd")

	require.NoError(t, run(d, NewRemoveUselessStrokeAndFill(RemoveUselessStrokeAndFillOptions{})))

	_, ok := attrString(rect, atom.AttrFillRule)
	assert.False(t, ok)
}

func TestRemoveUselessRemoveNoneDeletesElement(t *testing.T) {
	d, svg := newDoc()
	rect := child(d, svg, "rect")
	set(rect, "fill", "none", "stroke", "none")

	require.NoError(t, run(d, NewRemoveUselessStrokeAndFill(RemoveUselessStrokeAndFillOptions{RemoveNone: true})))

	assert.Nil(t, rect.ParentElement())
}
