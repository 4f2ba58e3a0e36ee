package optimize

import (
	"github.com/pgavlin/svgo/atom"
	"github.com/pgavlin/svgo/dom"
	"github.com/pgavlin/svgo/style"
	"github.com/pgavlin/svgo/visitor"
)

// RemoveHiddenElemsOptions configures RemoveHiddenElems.
type RemoveHiddenElemsOptions struct{}

// RemoveHiddenElems removes elements whose computed style renders them
// invisible (display:none, opacity:0, zero r/rx/ry/width/height, empty d
// or points, visibility:hidden with no visible descendant to rescue it),
// then cascades: a <use> whose reference target no longer exists is
// removed, and an empty non-rendering container (<defs>, gradients,
// <marker>, ...) is removed unless its own id is still referenced
// somewhere. Referenced ids are never removed directly, even if they
// would otherwise look hidden -- whatever references them may still care.
type RemoveHiddenElems struct {
	visitor.BaseVisitor
	opts RemoveHiddenElemsOptions

	resolver   *style.Resolver
	referenced map[string]bool
}

// NewRemoveHiddenElems returns a configured pass.
func NewRemoveHiddenElems(opts RemoveHiddenElemsOptions) *RemoveHiddenElems {
	return &RemoveHiddenElems{opts: opts}
}

func (p *RemoveHiddenElems) Name() string { return "removeHiddenElems" }

func (p *RemoveHiddenElems) Prepare(doc *dom.Document, ctx *visitor.Context) visitor.PrepareOutcome {
	p.referenced = map[string]bool{}
	var sheets []*style.Stylesheet
	for _, n := range doc.Root.BreadthFirst() {
		if n.Kind == dom.KindStyle {
			if sheet, err := style.Parse(n.Data); err == nil {
				sheets = append(sheets, sheet)
			}
		}
		if n.Attrs == nil {
			continue
		}
		for _, a := range n.Attrs.All() {
			if a.Value == nil {
				continue
			}
			a.Value.VisitURL(func(u *string) { p.referenced[trimFragment(*u)] = true })
			a.Value.VisitID(func(id *string) { p.referenced[*id] = true })
		}
	}
	p.resolver = style.NewResolver(sheets)
	return visitor.PrepareOutcome{}
}

func trimFragment(u string) string {
	if len(u) > 0 && u[0] == '#' {
		return u[1:]
	}
	return u
}

func (p *RemoveHiddenElems) Element(elem *dom.Node, ctx *visitor.Context) {
	if elem.Kind != dom.KindElement || elem.ID.IsNonRendering() {
		return
	}
	if id, ok := attrString(elem, atom.AttrID); ok && id != "" && p.referenced[id] {
		return
	}
	if !p.hidden(elem) {
		return
	}
	ctx.SkipSubtree()
	if parent := elem.ParentElement(); parent != nil {
		parent.Remove(elem)
	}
}

func (p *RemoveHiddenElems) hidden(elem *dom.Node) bool {
	if c, ok := p.resolver.Resolve(elem, "display"); ok && c.Value == "none" {
		return true
	}
	if op, ok := lengthPercentageOf(elem, atom.AttrOpacity); ok && numeric(op) == 0 {
		return true
	}
	if p.visibilityHidden(elem) {
		return true
	}
	return zeroGeometry(elem)
}

// visibilityHidden reports whether elem's computed visibility is hidden
// and no descendant re-asserts visibility:visible (which would still
// render, per SVG's visibility inheritance rules).
func (p *RemoveHiddenElems) visibilityHidden(elem *dom.Node) bool {
	c, ok := p.resolver.Resolve(elem, "visibility")
	if !ok || c.Value != "hidden" {
		return false
	}
	for _, d := range elem.BreadthFirst() {
		if d.Kind != dom.KindElement {
			continue
		}
		if dc, ok := p.resolver.Resolve(d, "visibility"); ok && dc.Value == "visible" {
			return false
		}
	}
	return true
}

func zeroGeometry(elem *dom.Node) bool {
	switch elem.ID {
	case atom.ElCircle:
		return isZeroAttr(elem, atom.AttrR)
	case atom.ElEllipse:
		return isZeroAttr(elem, atom.AttrRx) || isZeroAttr(elem, atom.AttrRy)
	case atom.ElRect, atom.ElImage:
		return isZeroAttr(elem, atom.AttrWidth) || isZeroAttr(elem, atom.AttrHeight)
	case atom.ElPath:
		d, ok := attrString(elem, atom.AttrD)
		return ok && d == ""
	case atom.ElPolyline, atom.ElPolygon:
		pts, ok := attrString(elem, atom.AttrPoints)
		return ok && pts == ""
	}
	return false
}

func isZeroAttr(elem *dom.Node, id atom.AttrId) bool {
	lp, ok := lengthPercentageOf(elem, id)
	return ok && numeric(lp) == 0
}

// ExitDocument cascades removal: a <use> whose target no longer exists,
// and non-rendering containers left with no element children and no
// reference to their own id. Repeats to a fixed point since removing an
// outer <defs> can orphan a <use> that referenced something inside it,
// and vice versa; capped since real documents converge in one or two
// passes and the cap only guards against a modeling mistake looping.
func (p *RemoveHiddenElems) ExitDocument(root *dom.Node, ctx *visitor.Context) {
	for i := 0; i < 8; i++ {
		if !p.cascadeOnce(root) {
			return
		}
	}
}

func (p *RemoveHiddenElems) cascadeOnce(root *dom.Node) bool {
	ids := map[string]bool{}
	for _, n := range root.BreadthFirst() {
		if n.Kind == dom.KindElement {
			if id, ok := attrString(n, atom.AttrID); ok && id != "" {
				ids[id] = true
			}
		}
	}

	changed := false
	for _, n := range root.BreadthFirst() {
		if n.Kind != dom.KindElement || n.ParentElement() == nil {
			continue
		}
		if n.ID == atom.ElUse {
			if target, ok := useTarget(n); ok && !ids[target] {
				n.ParentElement().Remove(n)
				changed = true
				continue
			}
		}
		if n.ID.IsNonRendering() && n.ID.Categories()&atom.CategoryContainer != 0 && n.FirstElementChild() == nil {
			if id, ok := attrString(n, atom.AttrID); ok && id != "" && p.referenced[id] {
				continue
			}
			n.ParentElement().Remove(n)
			changed = true
		}
	}
	return changed
}

func useTarget(use *dom.Node) (string, bool) {
	for _, id := range []atom.AttrId{atom.AttrHref, atom.AttrXlinkHref} {
		if raw, ok := attrString(use, id); ok && raw != "" {
			return trimFragment(raw), true
		}
	}
	return "", false
}
