package optimize

import (
	"github.com/pgavlin/svgo/atom"
	"github.com/pgavlin/svgo/dom"
	"github.com/pgavlin/svgo/path"
	"github.com/pgavlin/svgo/visitor"
)

// MergePathsOptions configures MergePaths.
type MergePathsOptions struct {
	// Force bypasses the render-intersection safety check.
	Force bool `json:"force"`
}

// MergePaths concatenates adjacent <path> siblings that share identical
// inheritable presentation attributes, have no id/marker/clip/mask/url
// reference, and (unless Force) do not render-intersect, per §4.3's
// Path.Intersects.
type MergePaths struct {
	visitor.BaseVisitor
	opts MergePathsOptions
}

// NewMergePaths returns a configured MergePaths pass.
func NewMergePaths(opts MergePathsOptions) *MergePaths {
	return &MergePaths{opts: opts}
}

func (p *MergePaths) Name() string { return "mergePaths" }

var unmergeableAttrs = []atom.AttrId{
	atom.AttrID, atom.AttrMarkerStart, atom.AttrMarkerMid, atom.AttrMarkerEnd,
	atom.AttrClipPath, atom.AttrMask,
}

func (p *MergePaths) Element(elem *dom.Node, ctx *visitor.Context) {
	for child := elem.FirstElementChild(); child != nil; {
		next := child.NextElementSibling()
		if next == nil || child.ID != atom.ElPath || next.ID != atom.ElPath {
			child = next
			continue
		}
		if !p.mergeable(child, next) {
			child = next
			continue
		}

		merged, ok := p.merge(child, next)
		if !ok {
			child = next
			continue
		}

		setAttr(child, atom.AttrD, merged)
		elem.Remove(next)
		// Re-check the just-extended path against whatever now follows it.
	}
}

func (p *MergePaths) mergeable(a, b *dom.Node) bool {
	for _, id := range unmergeableAttrs {
		if _, ok := attrString(a, id); ok {
			return false
		}
		if _, ok := attrString(b, id); ok {
			return false
		}
	}
	if hasURLPaint(a) || hasURLPaint(b) {
		return false
	}
	return sameInheritableAttrs(a, b)
}

func hasURLPaint(elem *dom.Node) bool {
	for _, id := range []atom.AttrId{atom.AttrFill, atom.AttrStroke} {
		paint, _, ok := paintOf(elem, id)
		if ok && paint.URL != "" {
			return true
		}
	}
	return false
}

// sameInheritableAttrs reports whether a and b agree on every presentation
// attribute that cascades (per atom.AttrId.Inheritable), comparing printed
// form.
func sameInheritableAttrs(a, b *dom.Node) bool {
	seen := map[string]bool{}
	check := func(elem *dom.Node) map[string]string {
		out := map[string]string{}
		for _, attr := range elem.Attrs.All() {
			if attr.ID == atom.AttrUnknown || !attr.ID.Inheritable() {
				continue
			}
			out[attr.ID.Name()] = attr.Value.String()
			seen[attr.ID.Name()] = true
		}
		return out
	}
	av, bv := check(a), check(b)
	for name := range seen {
		if av[name] != bv[name] {
			return false
		}
	}
	return true
}

// merge concatenates b's path data onto a's, eliding a's trailing lone
// MoveTo (a no-op subpath-start with nothing drawn after it) and checking
// a does not render-intersect b first, unless Force is set.
func (p *MergePaths) merge(a, b *dom.Node) (string, bool) {
	araw, _ := attrString(a, atom.AttrD)
	braw, _ := attrString(b, atom.AttrD)

	pa, err := path.Parse(araw)
	if err != nil {
		return "", false
	}
	pb, err := path.Parse(braw)
	if err != nil {
		return "", false
	}

	if !p.opts.Force && pa.Intersects(pb) {
		return "", false
	}

	cmds := pa.Commands
	if n := len(cmds); n > 0 && cmds[n-1].Kind == path.KindMoveTo {
		cmds = cmds[:n-1]
	}

	merged := path.Path{Commands: append(append([]path.Command{}, cmds...), pb.Commands...)}
	return merged.String(), true
}
