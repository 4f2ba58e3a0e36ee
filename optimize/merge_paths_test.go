package optimize

import (
	"testing"

	"github.com/pgavlin/svgo/atom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergePathsConcatenatesDisjointSiblings(t *testing.T) {
	d, svg := newDoc()
	a := child(d, svg, "path")
	b := child(d, svg, "path")
	set(a, "d", "M0 0L10 0")
	set(b, "d", "M100 100L110 100")

	require.NoError(t, run(d, NewMergePaths(MergePathsOptions{})))

	assert.Nil(t, b.ParentElement())
	merged, ok := attrString(a, atom.AttrD)
	require.True(t, ok)
	assert.Contains(t, merged, "M100 100")
}

func TestMergePathsSkipsDifferingFill(t *testing.T) {
	d, svg := newDoc()
	a := child(d, svg, "path")
	b := child(d, svg, "path")
	set(a, "d", "M0 0L10 0", "fill", "red")
	set(b, "d", "M100 100L110 100", "fill", "blue")

	require.NoError(t, run(d, NewMergePaths(MergePathsOptions{})))

	assert.NotNil(t, b.ParentElement())
}

func TestMergePathsSkipsIDedPath(t *testing.T) {
	d, svg := newDoc()
	a := child(d, svg, "path")
	b := child(d, svg, "path")
	set(a, "d", "M0 0L10 0", "id", "keep-me")
	set(b, "d", "M100 100L110 100")

	require.NoError(t, run(d, NewMergePaths(MergePathsOptions{})))

	assert.NotNil(t, b.ParentElement())
}
