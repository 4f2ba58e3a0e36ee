package optimize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoveHiddenElemsDropsDisplayNone(t *testing.T) {
	d, svg := newDoc()
	rect := child(d, svg, "rect")
	set(rect, "display", "none", "width", "10", "height", "10")

	require.NoError(t, run(d, NewRemoveHiddenElems(RemoveHiddenElemsOptions{})))

	assert.Nil(t, rect.ParentElement())
}

func TestRemoveHiddenElemsDropsZeroGeometry(t *testing.T) {
	d, svg := newDoc()
	circle := child(d, svg, "circle")
	set(circle, "r", "0")

	require.NoError(t, run(d, NewRemoveHiddenElems(RemoveHiddenElemsOptions{})))

	assert.Nil(t, circle.ParentElement())
}

func TestRemoveHiddenElemsKeepsReferencedHiddenElement(t *testing.T) {
	d, svg := newDoc()
	defs := child(d, svg, "defs")
	rect := child(d, defs, "rect")
	set(rect, "id", "box", "display", "none", "width", "10", "height", "10")
	use := child(d, svg, "use")
	set(use, "xlink:href", "#box")

	require.NoError(t, run(d, NewRemoveHiddenElems(RemoveHiddenElemsOptions{})))

	assert.NotNil(t, rect.ParentElement())
}

func TestRemoveHiddenElemsCascadesOrphanedUse(t *testing.T) {
	d, svg := newDoc()
	use := child(d, svg, "use")
	set(use, "xlink:href", "#missing")

	require.NoError(t, run(d, NewRemoveHiddenElems(RemoveHiddenElemsOptions{})))

	assert.Nil(t, use.ParentElement())
}
