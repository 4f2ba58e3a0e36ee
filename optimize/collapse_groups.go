package optimize

import (
	"github.com/pgavlin/svgo/atom"
	"github.com/pgavlin/svgo/dom"
	"github.com/pgavlin/svgo/visitor"
)

// CollapseGroupsOptions configures CollapseGroups. It carries no fields
// today but exists so callers can deserialize `{}` from a pass-configuration
// document without a special case, and so future knobs (e.g. a
// force-despite-id flag) have somewhere to land.
type CollapseGroupsOptions struct{}

// CollapseGroups folds a <g> with exactly one element child into that
// child: the child adopts the group's attributes it does not set itself (with
// transform concatenated rather than overwritten), and the group is
// removed. A <g> with no attributes and no children is simply flattened.
type CollapseGroups struct {
	visitor.BaseVisitor
	opts CollapseGroupsOptions
}

// NewCollapseGroups returns a configured CollapseGroups pass.
func NewCollapseGroups(opts CollapseGroupsOptions) *CollapseGroups {
	return &CollapseGroups{opts: opts}
}

func (p *CollapseGroups) Name() string { return "collapseGroups" }

var groupBlockingAttrs = []atom.AttrId{atom.AttrFilter, atom.AttrClipPath, atom.AttrMask}

func (p *CollapseGroups) Element(elem *dom.Node, ctx *visitor.Context) {
	if elem.ID != atom.ElG {
		return
	}

	children := elementChildren(elem)

	if len(children) == 0 && elem.Attrs.Len() == 0 {
		elem.Flatten()
		return
	}

	if len(children) != 1 {
		return
	}
	child := children[0]

	for _, id := range groupBlockingAttrs {
		if _, ok := attrString(elem, id); ok {
			return
		}
	}

	if _, hasID := attrString(elem, atom.AttrID); hasID {
		if !classedIdentically(elem, child) {
			return
		}
	}

	mergeInheritableAttrs(elem, child)
	elem.Flatten()
}

// elementChildren returns elem's element-kind children only.
func elementChildren(elem *dom.Node) []*dom.Node {
	var out []*dom.Node
	for c := elem.FirstChild(); c != nil; c = c.NextSibling() {
		if c.Kind == dom.KindElement {
			out = append(out, c)
		}
	}
	return out
}

// classedIdentically is a conservative proxy for "the child already carries
// the group's identity" -- true only when the child has no id of its own,
// so moving the group's id onto it does not shadow a separate reference.
func classedIdentically(group, child *dom.Node) bool {
	_, childHasID := attrString(child, atom.AttrID)
	return !childHasID
}

// mergeInheritableAttrs copies every attribute from group onto child (id,
// class and unrecognized attributes included), except transform (concatenated) and attributes child already sets
// explicitly (the child's own value wins, matching CSS specificity of a
// closer declaration).
func mergeInheritableAttrs(group, child *dom.Node) {
	for _, a := range group.Attrs.All() {
		name := a.ID.Name()
		if a.ID == atom.AttrUnknown {
			name = a.Name
		}
		if name == "transform" {
			continue
		}
		if child.Attrs.GetNamedItemLocal(name) != nil {
			continue
		}
		child.Attrs.SetNamedItem(a)
	}
	concatenateTransforms(group, child)
}

func concatenateTransforms(group, child *dom.Node) {
	groupRaw, hasGroup := attrString(group, atom.AttrTransform)
	if !hasGroup || groupRaw == "" {
		return
	}
	childRaw, hasChild := attrString(child, atom.AttrTransform)
	if !hasChild || childRaw == "" {
		setAttr(child, atom.AttrTransform, groupRaw)
		return
	}
	setAttr(child, atom.AttrTransform, groupRaw+" "+childRaw)
}
