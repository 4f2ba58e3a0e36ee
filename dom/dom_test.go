package dom

import (
	"testing"

	"github.com/pgavlin/svgo/atom"
	"github.com/pgavlin/svgo/attr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unknownAttr(name string) attr.Attr {
	return attr.Attr{ID: atom.AttrUnknown, Name: name, Value: &attr.Unknown{Raw: ""}}
}

func TestAppendChildAndChildren(t *testing.T) {
	d := NewDocument()
	svg := d.Arena.CreateElement(atom.Name{LocalName: "svg"})
	d.Root.AppendChild(svg)

	rect := d.Arena.CreateElement(atom.Name{LocalName: "rect"})
	circle := d.Arena.CreateElement(atom.Name{LocalName: "circle"})
	svg.AppendChild(rect)
	svg.AppendChild(circle)

	children := svg.ChildrenIter()
	require.Len(t, children, 2)
	assert.Equal(t, rect, children[0])
	assert.Equal(t, circle, children[1])
	assert.Equal(t, svg, rect.ParentElement())
	assert.Equal(t, circle, rect.NextElementSibling())
}

func TestRemoveUpdatesSiblings(t *testing.T) {
	d := NewDocument()
	svg := d.Arena.CreateElement(atom.Name{LocalName: "svg"})
	d.Root.AppendChild(svg)
	a := d.Arena.CreateElement(atom.Name{LocalName: "a"})
	b := d.Arena.CreateElement(atom.Name{LocalName: "b"})
	c := d.Arena.CreateElement(atom.Name{LocalName: "c"})
	svg.AppendChild(a)
	svg.AppendChild(b)
	svg.AppendChild(c)

	svg.Remove(b)

	assert.Equal(t, c, a.NextElementSibling())
	assert.Equal(t, a, c.PreviousElementSibling())
	assert.Nil(t, b.ParentElement())
}

func TestFlatten(t *testing.T) {
	d := NewDocument()
	svg := d.Arena.CreateElement(atom.Name{LocalName: "svg"})
	d.Root.AppendChild(svg)
	g := d.Arena.CreateElement(atom.Name{LocalName: "g"})
	rect := d.Arena.CreateElement(atom.Name{LocalName: "rect"})
	circle := d.Arena.CreateElement(atom.Name{LocalName: "circle"})
	svg.AppendChild(g)
	g.AppendChild(rect)
	g.AppendChild(circle)

	g.Flatten()

	children := svg.ChildrenIter()
	require.Len(t, children, 2)
	assert.Equal(t, rect, children[0])
	assert.Equal(t, circle, children[1])
	assert.Nil(t, g.ParentElement())
}

func TestBreadthFirst(t *testing.T) {
	d := NewDocument()
	svg := d.Arena.CreateElement(atom.Name{LocalName: "svg"})
	d.Root.AppendChild(svg)
	g := d.Arena.CreateElement(atom.Name{LocalName: "g"})
	rect := d.Arena.CreateElement(atom.Name{LocalName: "rect"})
	svg.AppendChild(g)
	g.AppendChild(rect)

	order := d.Root.BreadthFirst()
	require.Len(t, order, 3)
	assert.Equal(t, svg, order[0])
	assert.Equal(t, g, order[1])
	assert.Equal(t, rect, order[2])
}

func TestClassListAddRemove(t *testing.T) {
	d := NewDocument()
	rect := d.Arena.CreateElement(atom.Name{LocalName: "rect"})
	cl := rect.ClassList()
	cl.Add("foo")
	cl.Add("bar")
	assert.True(t, cl.Contains("foo"))
	cl.Remove("foo")
	assert.False(t, cl.Contains("foo"))
	assert.Equal(t, []string{"bar"}, cl.Iter())
}

func TestAttributeListSort(t *testing.T) {
	list := &AttributeList{}
	list.SetNamedItem(unknownAttr("z"))
	list.SetNamedItem(unknownAttr("xmlns:xlink"))
	list.SetNamedItem(unknownAttr("a"))

	list.Sort([]string{"a"}, true)
	names := make([]string, list.Len())
	for i, a := range list.All() {
		names[i] = itemName(a)
	}
	assert.Equal(t, []string{"xmlns:xlink", "a", "z"}, names)
}
