package visitor

import (
	"testing"

	"github.com/pgavlin/svgo/atom"
	"github.com/pgavlin/svgo/dom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTree() (*dom.Document, *dom.Node, *dom.Node, *dom.Node) {
	d := dom.NewDocument()
	svg := d.Arena.CreateElement(atom.Name{LocalName: "svg"})
	d.Root.AppendChild(svg)
	g := d.Arena.CreateElement(atom.Name{LocalName: "g"})
	rect := d.Arena.CreateElement(atom.Name{LocalName: "rect"})
	svg.AppendChild(g)
	g.AppendChild(rect)
	return d, svg, g, rect
}

type recorder struct {
	BaseVisitor
	entered, exited []*dom.Node
}

func (r *recorder) Element(n *dom.Node, ctx *Context)     { r.entered = append(r.entered, n) }
func (r *recorder) ExitElement(n *dom.Node, ctx *Context) { r.exited = append(r.exited, n) }

func TestTraversalOrder(t *testing.T) {
	d, svg, g, rect := buildTree()
	r := &recorder{}
	require.NoError(t, NewPipeline(r).Run(d, nil))

	assert.Equal(t, []*dom.Node{svg, g, rect}, r.entered)
	assert.Equal(t, []*dom.Node{rect, g, svg}, r.exited)
}

type skipper struct {
	BaseVisitor
	entered []*dom.Node
}

func (s *skipper) Element(n *dom.Node, ctx *Context) {
	s.entered = append(s.entered, n)
	if n.Name.LocalName == "g" {
		ctx.SkipSubtree()
	}
}

func TestVisitSkipPrunesDescendantsOnly(t *testing.T) {
	d, svg, g, _ := buildTree()
	s := &skipper{}
	require.NoError(t, NewPipeline(s).Run(d, nil))

	assert.Equal(t, []*dom.Node{svg, g}, s.entered)
}

type remover struct {
	BaseVisitor
	arena   *dom.Arena
	entered []string
}

func (r *remover) Element(n *dom.Node, ctx *Context) {
	r.entered = append(r.entered, n.Name.LocalName)
	if n.Name.LocalName == "b" {
		n.ParentElement().Remove(n)
	}
}

func TestRemovalDuringTraversalAdvances(t *testing.T) {
	d := dom.NewDocument()
	svg := d.Arena.CreateElement(atom.Name{LocalName: "svg"})
	d.Root.AppendChild(svg)
	a := d.Arena.CreateElement(atom.Name{LocalName: "a"})
	b := d.Arena.CreateElement(atom.Name{LocalName: "b"})
	c := d.Arena.CreateElement(atom.Name{LocalName: "c"})
	svg.AppendChild(a)
	svg.AppendChild(b)
	svg.AppendChild(c)

	r := &remover{arena: d.Arena}
	require.NoError(t, NewPipeline(r).Run(d, nil))

	assert.Equal(t, []string{"svg", "a", "b", "c"}, r.entered)
	assert.Nil(t, b.ParentElement())
}

type prepareSkipper struct {
	BaseVisitor
	ran bool
}

func (p *prepareSkipper) Prepare(doc *dom.Document, ctx *Context) PrepareOutcome {
	return PrepareOutcome{Skip: true}
}

func (p *prepareSkipper) Element(n *dom.Node, ctx *Context) { p.ran = true }

func TestPrepareSkipAbortsTraversal(t *testing.T) {
	d, _, _, _ := buildTree()
	p := &prepareSkipper{}
	require.NoError(t, NewPipeline(p).Run(d, nil))
	assert.False(t, p.ran)
}
