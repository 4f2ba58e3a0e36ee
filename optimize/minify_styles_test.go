package optimize

import (
	"testing"

	"github.com/pgavlin/svgo/atom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinifyStylesShrinksStyleElement(t *testing.T) {
	d, svg := newDoc()
	styleNode := d.Arena.CreateStyle(".a {\n  fill:   red;\n}\n")
	svg.AppendChild(styleNode)

	require.NoError(t, run(d, NewMinifyStyles(MinifyStylesOptions{})))

	assert.Less(t, len(styleNode.Data), len(".a {\n  fill:   red;\n}\n"))
	assert.Contains(t, styleNode.Data, ".a")
	assert.Contains(t, styleNode.Data, "fill:red")
}

func TestMinifyStylesShrinksStyleAttr(t *testing.T) {
	d, svg := newDoc()
	rect := child(d, svg, "rect")
	set(rect, "style", "fill:   red;  stroke : blue ")

	require.NoError(t, run(d, NewMinifyStyles(MinifyStylesOptions{})))

	v, ok := attrString(rect, atom.AttrStyle)
	require.True(t, ok)
	assert.Less(t, len(v), len("fill:   red;  stroke : blue "))
	assert.Contains(t, v, "fill:red")
	assert.Contains(t, v, "stroke:blue")
}

func TestMinifyStylesRemoveUnusedDropsAbsentClassSelector(t *testing.T) {
	d, svg := newDoc()
	styleNode := d.Arena.CreateStyle(".used{fill:red} .unused{fill:blue}")
	svg.AppendChild(styleNode)
	used := child(d, svg, "rect")
	used.ClassList().Add("used")

	require.NoError(t, run(d, NewMinifyStyles(MinifyStylesOptions{RemoveUnused: true})))

	assert.Contains(t, styleNode.Data, "used")
	assert.NotContains(t, styleNode.Data, "unused")
}
