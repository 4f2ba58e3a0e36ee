package optimize

import (
	"testing"

	"github.com/pgavlin/svgo/atom"
	"github.com/pgavlin/svgo/dom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReusePathsHoistsDuplicates(t *testing.T) {
	d, svg := newDoc()
	a := child(d, svg, "path")
	b := child(d, svg, "path")
	set(a, "d", "M0 0L10 10", "fill", "red", "transform", "translate(1,1)")
	set(b, "d", "M0 0L10 10", "fill", "red", "transform", "translate(2,2)")

	require.NoError(t, run(d, NewReusePaths(ReusePathsOptions{Prefix: "r"})))

	var uses []*dom.Node
	var defs, shared *dom.Node
	for _, n := range d.Root.BreadthFirst() {
		switch n.ID {
		case atom.ElUse:
			uses = append(uses, n)
		case atom.ElDefs:
			defs = n
		}
	}
	require.Len(t, uses, 2, "both original sites become <use>")
	require.NotNil(t, defs)
	shared = defs.FirstElementChild()
	require.NotNil(t, shared)
	assert.Equal(t, atom.ElPath, shared.ID)

	// the shared copy never carries a positional transform
	_, hasTransform := attrString(shared, atom.AttrTransform)
	assert.False(t, hasTransform)

	hostID, ok := attrString(shared, atom.AttrID)
	require.True(t, ok)

	gotTransforms := map[string]bool{}
	for _, use := range uses {
		href, ok := attrString(use, atom.AttrXlinkHref)
		require.True(t, ok)
		assert.Equal(t, "#"+hostID, href)

		xf, ok := attrString(use, atom.AttrTransform)
		require.True(t, ok)
		gotTransforms[xf] = true
	}
	assert.True(t, gotTransforms["translate(1,1)"])
	assert.True(t, gotTransforms["translate(2,2)"])
}

func TestReusePathsLeavesUniquePathsAlone(t *testing.T) {
	d, svg := newDoc()
	a := child(d, svg, "path")
	set(a, "d", "M0 0L10 10")

	require.NoError(t, run(d, NewReusePaths(ReusePathsOptions{Prefix: "r"})))

	assert.Equal(t, atom.ElPath, a.ID)
	assert.NotNil(t, a.ParentElement())
}
