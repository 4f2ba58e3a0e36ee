// Package visitor implements the two-phase (enter/exit) document-order
// traversal that every optimizer pass runs under. It generalizes the
// teacher's single-callback walk.go into enter/exit pairs plus a Context
// that carries per-pass state (aggregated stylesheets, skip requests,
// diagnostics) across the whole traversal.
package visitor

import "github.com/pgavlin/svgo/dom"

// PrepareOutcome is returned once from Visitor.Prepare, before the
// traversal starts, and decides whether the pass runs at all.
type PrepareOutcome struct {
	// Skip, when true, aborts the traversal for this visitor entirely:
	// none of Document/Element/ExitElement/ExitDocument are called.
	Skip bool
}

// Visitor defines up to five hooks over a document-order traversal. Embed
// BaseVisitor to pick up no-op defaults and only override what's needed.
type Visitor interface {
	Prepare(doc *dom.Document, ctx *Context) PrepareOutcome
	Document(root *dom.Node, ctx *Context)
	Element(elem *dom.Node, ctx *Context)
	ExitElement(elem *dom.Node, ctx *Context)
	ProcessingInstruction(pi *dom.Node, ctx *Context)
	ExitDocument(root *dom.Node, ctx *Context)
}

// BaseVisitor supplies no-op implementations of every Visitor hook.
// Concrete passes embed it and override only the hooks they need.
type BaseVisitor struct{}

func (BaseVisitor) Prepare(*dom.Document, *Context) PrepareOutcome { return PrepareOutcome{} }
func (BaseVisitor) Document(*dom.Node, *Context)                  {}
func (BaseVisitor) Element(*dom.Node, *Context)                   {}
func (BaseVisitor) ExitElement(*dom.Node, *Context)                {}
func (BaseVisitor) ProcessingInstruction(*dom.Node, *Context)      {}
func (BaseVisitor) ExitDocument(*dom.Node, *Context)               {}
