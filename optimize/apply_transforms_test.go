package optimize

import (
	"testing"

	"github.com/pgavlin/svgo/atom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyTransformsBakesTranslateIntoPath(t *testing.T) {
	d, svg := newDoc()
	path := child(d, svg, "path")
	set(path, "d", "M0 0L10 10", "transform", "translate(5,5)")

	require.NoError(t, run(d, NewApplyTransforms(ApplyTransformsOptions{})))

	dv, ok := attrString(path, atom.AttrD)
	require.True(t, ok)
	assert.Contains(t, dv, "5")
	assert.Contains(t, dv, "15")

	_, hasTransform := attrString(path, atom.AttrTransform)
	assert.False(t, hasTransform, "transform is removed once baked into d")
}

func TestApplyTransformsLeavesNonUniformScaleWithStroke(t *testing.T) {
	d, svg := newDoc()
	path := child(d, svg, "path")
	set(path, "d", "M0 0L10 10", "transform", "scale(2,3)", "stroke", "red", "stroke-width", "1")

	require.NoError(t, run(d, NewApplyTransforms(ApplyTransformsOptions{})))

	_, hasTransform := attrString(path, atom.AttrTransform)
	assert.True(t, hasTransform, "non-uniform scale can't fold into a scalar stroke-width")
}

func TestApplyTransformsRescalesStrokeWidthOnUniformScale(t *testing.T) {
	d, svg := newDoc()
	path := child(d, svg, "path")
	set(path, "d", "M0 0L10 10", "transform", "scale(2)", "stroke", "red", "stroke-width", "1")

	require.NoError(t, run(d, NewApplyTransforms(ApplyTransformsOptions{})))

	sw, ok := attrString(path, atom.AttrStrokeWidth)
	require.True(t, ok)
	assert.Equal(t, "2", sw)
}

func TestApplyTransformsPreservesSmoothCurveShape(t *testing.T) {
	d, svg := newDoc()
	path := child(d, svg, "path")
	// a cubic followed by a smooth continuation (S): baking the transform
	// must not collapse the S segment into a straight line.
	set(path, "d", "M0 0C1 1 2 2 3 3S5 5 6 6", "transform", "translate(1,1)")

	require.NoError(t, run(d, NewApplyTransforms(ApplyTransformsOptions{})))

	dv, ok := attrString(path, atom.AttrD)
	require.True(t, ok)
	assert.Contains(t, dv, "C", "the smooth segment must re-emit as a cubic curve, not a line")
}
