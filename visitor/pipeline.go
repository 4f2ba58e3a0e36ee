package visitor

import (
	"fmt"

	"github.com/pgavlin/svgo/dom"
)

// PipelineError pairs a visitor's name with an error. Pipeline.Run does not
// produce one: visitor hooks have no error return, so no traversal can
// fail.
type PipelineError struct {
	Visitor string
	Err     error
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("visitor pipeline: %s: %v", e.Visitor, e.Err)
}

func (e *PipelineError) Unwrap() error { return e.Err }

// Pipeline runs a sequence of Visitors over a Document, one full traversal
// per visitor. Each traversal is single-threaded and cooperative, and runs
// to completion unless the visitor's Prepare asks to skip it; hooks return
// no error, so nothing cancels a traversal midway.
type Pipeline struct {
	visitors []Visitor
}

// NewPipeline returns a Pipeline that will run visitors in order.
func NewPipeline(visitors ...Visitor) *Pipeline {
	return &Pipeline{visitors: visitors}
}

// Run executes every registered visitor's traversal in turn. Since no
// traversal can fail, it always returns nil.
func (p *Pipeline) Run(doc *dom.Document, info any) error {
	for _, v := range p.visitors {
		if err := runOne(doc, v, info); err != nil {
			return err
		}
	}
	return nil
}

func runOne(doc *dom.Document, v Visitor, info any) error {
	ctx := NewContext(doc.Root, info)

	outcome := v.Prepare(doc, ctx)
	if outcome.Skip {
		return nil
	}

	v.Document(doc.Root, ctx)
	walk(doc.Root, v, ctx)
	v.ExitDocument(doc.Root, ctx)
	return nil
}

// walk performs one document-order enter/exit traversal of n's children.
// It re-reads sibling links at every step (rather than iterating a
// snapshot) so that a hook mutating the tree sees its own edits: removing
// the current element advances traversal to its former next sibling,
// insertions ahead of the traversal point are visited, insertions behind
// it are not.
func walk(n *dom.Node, v Visitor, ctx *Context) {
	child := n.FirstChild()
	for child != nil {
		formerNext := child.NextSibling()

		switch child.Kind {
		case dom.KindElement, dom.KindStyle:
			enterElement(child, v, ctx)
		case dom.KindPI:
			v.ProcessingInstruction(child, ctx)
		}

		// If child is still attached, re-read its live next sibling so
		// insertions made ahead of it during this step are visited.
		// Otherwise (child removed itself or an ancestor) fall back to
		// the sibling recorded before processing.
		if child.ParentElement() == n {
			child = child.NextSibling()
		} else {
			child = formerNext
		}
	}
}

func enterElement(elem *dom.Node, v Visitor, ctx *Context) {
	ctx.Flags.VisitSkip = false
	v.Element(elem, ctx)

	if !ctx.Flags.VisitSkip {
		walk(elem, v, ctx)
	}
	ctx.Flags.VisitSkip = false

	v.ExitElement(elem, ctx)
}
