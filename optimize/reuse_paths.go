package optimize

import (
	"fmt"

	"github.com/pgavlin/svgo/atom"
	"github.com/pgavlin/svgo/dom"
	"github.com/pgavlin/svgo/visitor"
)

// ReusePathsOptions configures ReusePaths.
type ReusePathsOptions struct {
	// Prefix names generated ids, suffixed with an incrementing counter.
	Prefix string `json:"prefix"`
}

// ReusePaths groups <path> elements by equal (d, fill, stroke), and for
// every group of two or more, hoists one shared copy into a <defs> (one is
// created under the root <svg> if absent) and replaces every original
// site with a <use> referencing it. An existing id already carried by one
// of the group's members is reused for the shared copy when nothing else
// in the document already references it; otherwise a fresh id is
// allocated from Prefix.
type ReusePaths struct {
	visitor.BaseVisitor
	opts ReusePathsOptions

	arena      *dom.Arena
	referenced map[string]bool
	usedIDs    map[string]bool
	counter    int
}

// NewReusePaths returns a configured ReusePaths pass.
func NewReusePaths(opts ReusePathsOptions) *ReusePaths {
	if opts.Prefix == "" {
		opts.Prefix = "reuse"
	}
	return &ReusePaths{opts: opts}
}

func (p *ReusePaths) Name() string { return "reusePaths" }

func (p *ReusePaths) Prepare(doc *dom.Document, ctx *visitor.Context) visitor.PrepareOutcome {
	p.arena = doc.Arena
	p.referenced = map[string]bool{}
	p.usedIDs = map[string]bool{}
	for _, n := range doc.Root.BreadthFirst() {
		if n.Kind != dom.KindElement {
			continue
		}
		if id, ok := attrString(n, atom.AttrID); ok && id != "" {
			p.usedIDs[id] = true
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
	return visitor.PrepareOutcome{}
}

type pathGroupKey struct{ d, fill, stroke string }

func (p *ReusePaths) Document(root *dom.Node, ctx *visitor.Context) {
	groups := map[pathGroupKey][]*dom.Node{}
	var order []pathGroupKey

	for _, n := range root.BreadthFirst() {
		if n.Kind != dom.KindElement || n.ID != atom.ElPath || n.ParentElement() == nil {
			continue
		}
		d, ok := attrString(n, atom.AttrD)
		if !ok || d == "" {
			continue
		}
		fill, _ := attrString(n, atom.AttrFill)
		stroke, _ := attrString(n, atom.AttrStroke)
		key := pathGroupKey{d: d, fill: fill, stroke: stroke}
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], n)
	}

	for _, key := range order {
		members := groups[key]
		if len(members) < 2 {
			continue
		}
		p.hoist(root, members)
	}
}

func (p *ReusePaths) hoist(root *dom.Node, members []*dom.Node) {
	hostID := p.chooseHostID(members)

	shared := p.arena.CreateElement(atom.Local("path"))
	if d, ok := attrString(members[0], atom.AttrD); ok {
		setAttr(shared, atom.AttrD, d)
	}
	if fill, ok := attrString(members[0], atom.AttrFill); ok {
		setAttr(shared, atom.AttrFill, fill)
	}
	if stroke, ok := attrString(members[0], atom.AttrStroke); ok {
		setAttr(shared, atom.AttrStroke, stroke)
	}
	setAttr(shared, atom.AttrID, hostID)

	defs := p.findOrCreateDefs(root)
	defs.AppendChild(shared)

	for _, m := range members {
		p.replaceWithUse(m, hostID)
	}
}

// chooseHostID picks the shared copy's id: a member's own id, if one is
// unreferenced elsewhere in the document (so repurposing it is safe), else
// a freshly allocated one.
func (p *ReusePaths) chooseHostID(members []*dom.Node) string {
	for _, m := range members {
		if id, ok := attrString(m, atom.AttrID); ok && id != "" && !p.referenced[id] {
			return id
		}
	}
	return p.freshID()
}

func (p *ReusePaths) freshID() string {
	for {
		p.counter++
		id := fmt.Sprintf("%s%d", p.opts.Prefix, p.counter)
		if !p.usedIDs[id] {
			p.usedIDs[id] = true
			return id
		}
	}
}

func (p *ReusePaths) findOrCreateDefs(root *dom.Node) *dom.Node {
	svg := root.FirstElementChild()
	if svg == nil {
		svg = root
	}
	for c := svg.FirstElementChild(); c != nil; c = c.NextElementSibling() {
		if c.ID == atom.ElDefs {
			return c
		}
	}
	defs := p.arena.CreateElement(atom.Local("defs"))
	svg.InsertBefore(defs, svg.FirstChild())
	return defs
}

// replaceWithUse swaps member for a <use> at the same tree position,
// carrying over its own id (if it had a distinct one from the host) and
// transform (position/orientation is the one thing that legitimately
// varies between otherwise-identical path instances).
func (p *ReusePaths) replaceWithUse(member *dom.Node, hostID string) {
	use := p.arena.CreateElement(atom.Local("use"))
	setAttr(use, atom.AttrXlinkHref, "#"+hostID)

	if id, ok := attrString(member, atom.AttrID); ok && id != "" && id != hostID {
		setAttr(use, atom.AttrID, id)
	}
	if xf, ok := attrString(member, atom.AttrTransform); ok && xf != "" {
		setAttr(use, atom.AttrTransform, xf)
	}

	parent := member.ParentElement()
	parent.InsertBefore(use, member)
	parent.Remove(member)
}
