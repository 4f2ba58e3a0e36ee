package optimize

import (
	"testing"

	"github.com/pgavlin/svgo/atom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertTransformRemovesEmptyList(t *testing.T) {
	d, svg := newDoc()
	rect := child(d, svg, "rect")
	set(rect, "transform", "translate(0,0)")

	require.NoError(t, run(d, NewConvertTransform(ConvertTransformOptions{})))

	_, ok := attrString(rect, atom.AttrTransform)
	assert.False(t, ok)
}

func TestConvertTransformCollapsesIntoMatrix(t *testing.T) {
	d, svg := newDoc()
	rect := child(d, svg, "rect")
	set(rect, "transform", "translate(10,20) scale(2)")

	require.NoError(t, run(d, NewConvertTransform(ConvertTransformOptions{CollapseIntoOne: true})))

	v, ok := attrString(rect, atom.AttrTransform)
	require.True(t, ok)
	assert.Contains(t, v, "matrix(")
}
