package optimize

import (
	"github.com/pgavlin/svgo/atom"
	"github.com/pgavlin/svgo/attr"
	"github.com/pgavlin/svgo/dom"
	"github.com/pgavlin/svgo/visitor"
)

// RemoveUselessStrokeAndFillOptions configures RemoveUselessStrokeAndFill.
type RemoveUselessStrokeAndFillOptions struct {
	// RemoveNone, when true, deletes an element outright once it carries
	// neither a visible stroke nor a visible fill.
	RemoveNone bool `json:"removeNone"`
}

var strokeRelatedAttrs = []atom.AttrId{
	atom.AttrStroke, atom.AttrStrokeWidth, atom.AttrStrokeOpacity,
	atom.AttrStrokeDasharray, atom.AttrStrokeDashoffset,
	atom.AttrStrokeLinecap, atom.AttrStrokeLinejoin, atom.AttrStrokeMiterlimit,
}

var fillRelatedAttrs = []atom.AttrId{atom.AttrFill, atom.AttrFillOpacity, atom.AttrFillRule}

var markerAttrs = []atom.AttrId{atom.AttrMarkerStart, atom.AttrMarkerMid, atom.AttrMarkerEnd}

// RemoveUselessStrokeAndFill strips stroke-related attributes when the
// effective stroke is none, zero-width, or zero-opacity and no marker is
// drawn, and fill-related attributes when the effective fill is none or
// zero-opacity. Shape elements only (CategoryShape, CategoryText): a
// useless stroke on a <g> says nothing about its renderable descendants.
type RemoveUselessStrokeAndFill struct {
	visitor.BaseVisitor
	opts RemoveUselessStrokeAndFillOptions
}

// NewRemoveUselessStrokeAndFill returns a configured pass.
func NewRemoveUselessStrokeAndFill(opts RemoveUselessStrokeAndFillOptions) *RemoveUselessStrokeAndFill {
	return &RemoveUselessStrokeAndFill{opts: opts}
}

func (p *RemoveUselessStrokeAndFill) Name() string { return "removeUselessStrokeAndFill" }

func (p *RemoveUselessStrokeAndFill) Element(elem *dom.Node, ctx *visitor.Context) {
	if elem.ID.Categories()&(atom.CategoryShape|atom.CategoryText) == 0 {
		return
	}

	strokeUseless := p.strokeUseless(elem)
	fillUseless := p.fillUseless(elem)

	if strokeUseless {
		for _, id := range strokeRelatedAttrs {
			removeAttr(elem, id)
		}
	}
	if fillUseless {
		for _, id := range fillRelatedAttrs {
			removeAttr(elem, id)
		}
	}

	if p.opts.RemoveNone && strokeUseless && fillUseless {
		if parent := elem.ParentElement(); parent != nil {
			parent.Remove(elem)
		}
	}
}

func (p *RemoveUselessStrokeAndFill) strokeUseless(elem *dom.Node) bool {
	paint, ok := effectivePaint(elem, atom.AttrStroke)
	useless := !ok || paint.IsNone
	if !useless {
		if width, ok := effectiveLengthPercentage(elem, atom.AttrStrokeWidth); ok && numeric(width) == 0 {
			useless = true
		} else if op, ok := effectiveLengthPercentage(elem, atom.AttrStrokeOpacity); ok && numeric(op) == 0 {
			useless = true
		}
	}
	return useless && !hasMarker(elem)
}

func (p *RemoveUselessStrokeAndFill) fillUseless(elem *dom.Node) bool {
	paint, ok := effectivePaint(elem, atom.AttrFill)
	if !ok || paint.IsNone {
		return true
	}
	if op, ok := effectiveLengthPercentage(elem, atom.AttrFillOpacity); ok && numeric(op) == 0 {
		return true
	}
	return false
}

// hasMarker reports whether elem references a marker, the one case where a
// zero-width/opacity stroke still draws something (the marker itself).
func hasMarker(elem *dom.Node) bool {
	if elem.Attrs == nil {
		return false
	}
	for _, id := range markerAttrs {
		a := elem.Attrs.GetNamedItemLocal(id.Name())
		if a == nil {
			continue
		}
		if u, ok := a.Value.(*attr.URLIdent); ok && !u.IsEmpty() {
			return true
		}
	}
	return false
}
