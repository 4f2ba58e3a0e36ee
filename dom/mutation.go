package dom

import "github.com/pgavlin/svgo/atom"

// AppendChild appends child to the end of n's children, unlinking it from
// any previous location first.
func (n *Node) AppendChild(child *Node) {
	n.unlinkFromParent(child)
	child.parent = n
	child.previousSibling = n.lastChild
	child.nextSibling = nil
	if n.lastChild != nil {
		n.lastChild.nextSibling = child
	} else {
		n.firstChild = child
	}
	n.lastChild = child
}

// InsertBefore inserts newChild immediately before refChild among n's
// children. If refChild is nil, newChild is appended.
func (n *Node) InsertBefore(newChild, refChild *Node) {
	if refChild == nil {
		n.AppendChild(newChild)
		return
	}
	n.unlinkFromParent(newChild)

	newChild.parent = n
	newChild.nextSibling = refChild
	newChild.previousSibling = refChild.previousSibling

	if refChild.previousSibling != nil {
		refChild.previousSibling.nextSibling = newChild
	} else {
		n.firstChild = newChild
	}
	refChild.previousSibling = newChild
}

// ReplaceChild replaces oldChild with newChild among n's children.
func (n *Node) ReplaceChild(newChild, oldChild *Node) {
	n.InsertBefore(newChild, oldChild)
	n.Remove(oldChild)
}

// Remove unlinks child from n, updating sibling and first/last pointers.
// It does not free the node; the node remains addressable (e.g. so a pass
// can re-insert it elsewhere) until the Arena itself is discarded.
func (n *Node) Remove(child *Node) {
	if child.parent != n {
		return
	}
	if child.previousSibling != nil {
		child.previousSibling.nextSibling = child.nextSibling
	} else {
		n.firstChild = child.nextSibling
	}
	if child.nextSibling != nil {
		child.nextSibling.previousSibling = child.previousSibling
	} else {
		n.lastChild = child.previousSibling
	}
	child.parent = nil
	child.previousSibling = nil
	child.nextSibling = nil
}

// unlinkFromParent removes child from wherever it currently lives, a
// precondition AppendChild/InsertBefore share before relinking it under a
// (possibly different) new parent.
func (n *Node) unlinkFromParent(child *Node) {
	if child.parent != nil {
		child.parent.Remove(child)
	}
}

// Flatten replaces n with its own children in place, preserving their
// relative order, then unlinks n. Each former child adopts n's parent and
// ends up exactly once among n's former surrounding siblings.
func (n *Node) Flatten() {
	parent := n.parent
	if parent == nil {
		return
	}
	for _, c := range n.ChildrenIter() {
		parent.InsertBefore(c, n)
	}
	parent.Remove(n)
}

// SetLocalName replaces n's element name, rebuilding its ElementId, by
// allocating a clone in the same arena and splicing it in where n was --
// the spec's "set_local_name by replacement-clone" contract, since the
// ElementId/category bitset is derived once at construction and is not
// otherwise mutable in place.
func (a *Arena) SetLocalName(n *Node, local string) *Node {
	clone := a.CreateElement(atom.Name{Prefix: n.Name.Prefix, LocalName: local})
	clone.Attrs = n.Attrs

	for _, c := range n.ChildrenIter() {
		clone.AppendChild(c)
	}

	if n.parent != nil {
		n.parent.InsertBefore(clone, n.nextSibling)
		n.parent.Remove(n)
	}
	return clone
}
