package optimize

import (
	"testing"

	"github.com/pgavlin/svgo/atom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollapseGroupsHoistsOnlyChild(t *testing.T) {
	d, svg := newDoc()
	g := child(d, svg, "g")
	rect := child(d, g, "rect")
	set(g, "fill", "red")

	require.NoError(t, run(d, NewCollapseGroups(CollapseGroupsOptions{})))

	assert.Equal(t, svg, rect.ParentElement())
	fill, ok := attrString(rect, atom.AttrFill)
	assert.True(t, ok)
	assert.Equal(t, "red", fill)
}

func TestCollapseGroupsKeepsGroupWithMultipleChildren(t *testing.T) {
	d, svg := newDoc()
	g := child(d, svg, "g")
	child(d, g, "rect")
	child(d, g, "circle")

	require.NoError(t, run(d, NewCollapseGroups(CollapseGroupsOptions{})))

	assert.Equal(t, g, svg.FirstElementChild())
	assert.Equal(t, 2, len(g.ChildrenIter()))
}
