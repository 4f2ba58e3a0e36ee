package optimize

import (
	"strings"

	"github.com/pgavlin/svgo/atom"
	"github.com/pgavlin/svgo/attr"
	"github.com/pgavlin/svgo/dom"
	"github.com/pgavlin/svgo/visitor"
)

// RemoveUnknownsAndDefaultsOptions configures RemoveUnknownsAndDefaults.
type RemoveUnknownsAndDefaultsOptions struct {
	KeepDataAttrs bool `json:"keepDataAttrs"`
	KeepAriaAttrs bool `json:"keepAriaAttrs"`
	KeepRoleAttr  bool `json:"keepRoleAttr"`
}

// RemoveUnknownsAndDefaults removes elements that are not permitted under
// their parent (per atom.ElementId.PermittedChild), attributes not
// permitted on their element (per atom.ElementId.PermittedAttribute, e.g.
// cx/cy/r surviving on a <rect>), unrecognized attributes (unless protected
// by the keep* options), and attributes whose value equals the attribute's
// spec default when no ancestor cascades a differing inheritable value.
// id-bearing elements keep every recognized attribute, since a referenced element's
// attributes may matter to whatever references it even when they print
// their default or aren't permitted on that element's own kind.
type RemoveUnknownsAndDefaults struct {
	visitor.BaseVisitor
	opts RemoveUnknownsAndDefaultsOptions
}

// NewRemoveUnknownsAndDefaults returns a configured pass.
func NewRemoveUnknownsAndDefaults(opts RemoveUnknownsAndDefaultsOptions) *RemoveUnknownsAndDefaults {
	return &RemoveUnknownsAndDefaults{opts: opts}
}

func (p *RemoveUnknownsAndDefaults) Name() string { return "removeUnknownsAndDefaults" }

func (p *RemoveUnknownsAndDefaults) Element(elem *dom.Node, ctx *visitor.Context) {
	if elem.Kind != dom.KindElement {
		return
	}

	if parent := elem.ParentElement(); parent != nil && parent.Kind == dom.KindElement {
		if parent.ID != atom.ElUnknown && elem.ID != atom.ElUnknown && !parent.ID.PermittedChild(elem.ID) {
			parent.Remove(elem)
			return
		}
	}

	if elem.Attrs == nil {
		return
	}

	_, hasID := attrString(elem, atom.AttrID)

	elem.Attrs.Retain(func(a attr.Attr) bool {
		if a.ID == atom.AttrID {
			return true
		}
		if a.ID == atom.AttrUnknown {
			return p.keepUnknown(a.Name)
		}
		if hasID {
			return true
		}
		if elem.ID != atom.ElUnknown && !elem.ID.PermittedAttribute(a.ID) {
			return false
		}
		return !p.isRedundantDefault(elem, a.ID)
	})
}

// keepUnknown reports whether an unrecognized attribute survives
// regardless: namespace declarations, and data-*/aria-*/role when the
// matching option is set.
func (p *RemoveUnknownsAndDefaults) keepUnknown(name string) bool {
	if name == "xmlns" || strings.HasPrefix(name, "xmlns:") {
		return true
	}
	if p.opts.KeepDataAttrs && strings.HasPrefix(name, "data-") {
		return true
	}
	if p.opts.KeepAriaAttrs && strings.HasPrefix(name, "aria-") {
		return true
	}
	if p.opts.KeepRoleAttr && name == "role" {
		return true
	}
	return false
}

// isRedundantDefault reports whether elem's own value for id is present
// and equal to id's spec default, and -- for inheritable properties -- no
// ancestor sets a differing value that this attribute would otherwise be
// overriding.
func (p *RemoveUnknownsAndDefaults) isRedundantDefault(elem *dom.Node, id atom.AttrId) bool {
	def, hasDefault := effectiveDefault(id)
	if !hasDefault {
		return false
	}
	def = attr.ParseAttr(id.Name(), def).Value.String()
	own, ok := attrString(elem, id)
	if !ok || own != def {
		return false
	}
	if !id.Inheritable() {
		return true
	}
	for anc := elem.ParentElement(); anc != nil && anc.Kind == dom.KindElement; anc = anc.ParentElement() {
		if ancestorVal, ok := attrString(anc, id); ok && ancestorVal != def {
			return false
		}
	}
	return true
}
