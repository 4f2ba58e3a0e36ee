package optimize

import (
	"github.com/pgavlin/svgo/atom"
	"github.com/pgavlin/svgo/attr"
	"github.com/pgavlin/svgo/dom"
	"github.com/pgavlin/svgo/visitor"
)

// newDoc returns an empty document with a root <svg> element attached.
func newDoc() (*dom.Document, *dom.Node) {
	d := dom.NewDocument()
	svg := d.Arena.CreateElement(atom.Local("svg"))
	d.Root.AppendChild(svg)
	return d, svg
}

// child creates and appends a new element named local under parent.
func child(d *dom.Document, parent *dom.Node, local string) *dom.Node {
	n := d.Arena.CreateElement(atom.Local(local))
	parent.AppendChild(n)
	return n
}

// run executes a single pass over doc via a one-visitor Pipeline.
func run(doc *dom.Document, p Pass) error {
	return visitor.NewPipeline(p).Run(doc, nil)
}

// set installs raw attribute values by name (e.g. "fill", "d", "id") on n.
func set(n *dom.Node, kvs ...string) {
	for i := 0; i+1 < len(kvs); i += 2 {
		n.Attrs.SetNamedItem(attr.ParseAttr(kvs[i], kvs[i+1]))
	}
}
