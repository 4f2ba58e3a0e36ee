package optimize

import (
	"github.com/pgavlin/svgo/atom"
	"github.com/pgavlin/svgo/attr"
	"github.com/pgavlin/svgo/dom"
	"github.com/pgavlin/svgo/visitor"
	"github.com/pgavlin/svgo/xform"
)

// ConvertTransformOptions configures ConvertTransform.
type ConvertTransformOptions struct {
	// CollapseIntoOne, when true, replaces the whole transform list with
	// the single composed matrix(), printed as is. When false, the
	// composed matrix is re-derived into its shortest equivalent form with
	// Matrix.ToTransform.
	CollapseIntoOne bool              `json:"collapseIntoOne"`
	Precision       xform.Precision `json:"precision"`
}

// ConvertTransform reparses transform/gradientTransform/patternTransform
// and reprints it. Unless CollapseIntoOne is set, it goes through
// Matrix.ToTransform, picking whichever equivalent rendering (decomposed
// components, or a raw matrix()) is shortest.
type ConvertTransform struct {
	visitor.BaseVisitor
	opts ConvertTransformOptions
}

// NewConvertTransform returns a configured ConvertTransform pass.
func NewConvertTransform(opts ConvertTransformOptions) *ConvertTransform {
	if opts.Precision == (xform.Precision{}) {
		opts.Precision = xform.DefaultPrecision
	}
	return &ConvertTransform{opts: opts}
}

func (p *ConvertTransform) Name() string { return "convertTransform" }

var transformAttrs = []atom.AttrId{atom.AttrTransform, atom.AttrGradientTransform, atom.AttrPatternTransform}

func (p *ConvertTransform) Element(elem *dom.Node, ctx *visitor.Context) {
	for _, id := range transformAttrs {
		p.convert(elem, id)
	}
}

func (p *ConvertTransform) convert(elem *dom.Node, id atom.AttrId) {
	if elem.Attrs == nil {
		return
	}
	a := elem.Attrs.GetNamedItemLocal(id.Name())
	if a == nil {
		return
	}
	inh, ok := a.Value.(*attr.Inheritable[*attr.TransformValue])
	if !ok || inh.Inherited || inh.Value == nil {
		return
	}

	list := inh.Value.List
	if list.IsEmpty() {
		removeAttr(elem, id)
		return
	}

	m := list.ToMatrix()

	var rewritten xform.TransformList
	if p.opts.CollapseIntoOne {
		rewritten = xform.TransformList{{Op: xform.OpMatrix, Args: []float64{m.A, m.B, m.C, m.D, m.E, m.F}}}
	} else {
		rewritten = m.ToTransform(p.opts.Precision)
	}

	if rewritten.IsEmpty() {
		removeAttr(elem, id)
		return
	}

	setAttr(elem, id, rewritten.String())
}
