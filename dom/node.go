// Package dom implements the arena-backed document tree: a doubly-linked
// sibling tree of Node values (Document, Element, Text, Comment, PI,
// Style), allocated from an Arena that owns them for the lifetime of one
// optimization run. No Node is ever freed individually -- removal only
// unlinks it from the tree, the way the teacher's walk.go assumes a
// document stays fully addressable for the duration of a pass.
package dom

import "github.com/pgavlin/svgo/atom"

// Kind discriminates the Node union.
type Kind int

const (
	KindDocument Kind = iota
	KindElement
	KindText
	KindComment
	KindPI
	KindStyle
)

// Node is one entry in the document tree. Only the fields relevant to
// Kind are meaningful; e.g. Name/Attrs are populated only for KindElement.
type Node struct {
	Kind Kind

	// Element fields.
	Name  atom.Name
	ID    atom.ElementId
	Attrs *AttributeList

	// Text/Comment/PI data.
	Data string
	// PI target (only meaningful for KindPI).
	Target string

	// StyleRules is a slot for a parsed rule list of a KindStyle node.
	// Nothing in this module sets it: the style package parses the node's
	// Data text itself, so it stays nil.
	StyleRules any

	parent                            *Node
	previousSibling, nextSibling      *Node
	firstChild, lastChild             *Node
}

// ParentElement returns n's parent if it is a KindElement or KindDocument,
// else nil.
func (n *Node) ParentElement() *Node { return n.parent }

// NextSibling and PreviousSibling return sibling links directly (no kind
// filtering), mirroring the spec's raw sibling-pointer fields.
func (n *Node) NextSibling() *Node     { return n.nextSibling }
func (n *Node) PreviousSibling() *Node { return n.previousSibling }

// FirstChild returns n's first child of any Kind, or nil.
func (n *Node) FirstChild() *Node { return n.firstChild }

// LastChild returns n's last child of any Kind, or nil.
func (n *Node) LastChild() *Node { return n.lastChild }

// FirstElementChild returns the first child that is itself an element,
// skipping interleaved text/comment/PI nodes.
func (n *Node) FirstElementChild() *Node {
	for c := n.firstChild; c != nil; c = c.nextSibling {
		if c.Kind == KindElement {
			return c
		}
	}
	return nil
}

// LastElementChild mirrors FirstElementChild from the tail.
func (n *Node) LastElementChild() *Node {
	for c := n.lastChild; c != nil; c = c.previousSibling {
		if c.Kind == KindElement {
			return c
		}
	}
	return nil
}

// NextElementSibling returns the next sibling that is an element.
func (n *Node) NextElementSibling() *Node {
	for s := n.nextSibling; s != nil; s = s.nextSibling {
		if s.Kind == KindElement {
			return s
		}
	}
	return nil
}

// PreviousElementSibling mirrors NextElementSibling backwards.
func (n *Node) PreviousElementSibling() *Node {
	for s := n.previousSibling; s != nil; s = s.previousSibling {
		if s.Kind == KindElement {
			return s
		}
	}
	return nil
}

// ChildrenIter returns every child node (any Kind) in document order. It is
// a simple slice rather than a lazy double-ended iterator, since Go lacks
// the teacher's generator-style ergonomics; callers that need a reverse
// walk iterate the slice backwards.
func (n *Node) ChildrenIter() []*Node {
	var out []*Node
	for c := n.firstChild; c != nil; c = c.nextSibling {
		out = append(out, c)
	}
	return out
}

// PtrEqual compares two nodes by address only, matching the spec's
// ptr_eq contract.
func PtrEqual(a, b *Node) bool { return a == b }

// BreadthFirst returns every descendant of n in BFS order. The result is a
// finite snapshot (not a live iterator); passes that mutate the tree while
// traversing should re-snapshot.
func (n *Node) BreadthFirst() []*Node {
	var out []*Node
	queue := n.ChildrenIter()
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		out = append(out, cur)
		queue = append(queue, cur.ChildrenIter()...)
	}
	return out
}

// ClassList returns a ClassList view over this element's class attribute.
func (n *Node) ClassList() *ClassList {
	return &ClassList{node: n}
}
