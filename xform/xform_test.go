package xform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTransformList(t *testing.T) {
	list, err := Parse("translate(10, 20) rotate(45) scale(2)")
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, OpTranslate, list[0].Op)
	assert.Equal(t, []float64{10, 20}, list[0].Args)
	assert.Equal(t, OpRotate, list[1].Op)
	assert.Equal(t, OpScale, list[2].Op)
}

func TestParseMatrix(t *testing.T) {
	list, err := Parse("matrix(1,0,0,1,5,6)")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, Matrix{A: 1, D: 1, E: 5, F: 6}, list[0].ToMatrix())
}

func TestParseRejectsUnknownFunction(t *testing.T) {
	_, err := Parse("frobnicate(1)")
	assert.Error(t, err)
}

func TestMatrixMulInverse(t *testing.T) {
	m := Translate2D(10, 20).Mul(Rotate2D(0.3)).Mul(Scale2D(2, 3))
	inv := m.Inverse()
	id := m.Mul(inv)
	assert.True(t, id.IsIdentity(1e-9))
}

func TestDecomposeRoundTrip(t *testing.T) {
	m := Translate2D(5, -3).Mul(Rotate2D(0.4)).Mul(Scale2D(2, 1.5))
	dab, ok := m.DecomposeAB()
	require.True(t, ok)
	assert.True(t, dab.ToMatrix().Equal(m, 1e-5))

	dcd, ok := m.DecomposeCD()
	require.True(t, ok)
	assert.True(t, dcd.ToMatrix().Equal(m, 1e-5))
}

func TestToTransformRoundTrip(t *testing.T) {
	m := Translate2D(12.3, 45.6).Mul(Rotate2D(0.7854)).Mul(Scale2D(2, 2))
	list := m.ToTransform(DefaultPrecision)
	require.False(t, list.IsEmpty())
	assert.True(t, list.ToMatrix().Equal(m, 1e-3))
}

func TestToTransformIdentityFolding(t *testing.T) {
	list := Identity().ToTransform(DefaultPrecision)
	// identity should fold to either an empty list or "matrix(1,0,0,1,0,0)";
	// either way it must re-multiply to identity.
	assert.True(t, list.ToMatrix().IsIdentity(1e-6))
}

func TestFuseTranslateRotate(t *testing.T) {
	list := TransformList{
		{Op: OpTranslate, Args: []float64{10, 10}},
		{Op: OpRotate, Args: []float64{90}},
	}
	before := list.ToMatrix()
	fused := FuseTranslateRotate(list)
	require.Len(t, fused, 1)
	assert.Equal(t, OpRotate, fused[0].Op)
	assert.Len(t, fused[0].Args, 3)
	assert.True(t, fused.ToMatrix().Equal(before, 1e-6))
}

func TestFormatNumberTransform(t *testing.T) {
	assert.Equal(t, "10", formatNumber(10))
	assert.Equal(t, ".5", formatNumber(0.5))
	assert.Equal(t, "-.5", formatNumber(-0.5))
}
