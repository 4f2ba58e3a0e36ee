package dom

import "github.com/pgavlin/svgo/atom"

// Arena owns every Node allocated during one optimization run. Go's
// garbage collector, not the Arena, ultimately reclaims memory, but the
// Arena still enforces the spec's invariant in spirit: nodes are handed
// out through Create* and are never individually freed by the optimizer,
// only unlinked.
type Arena struct {
	nodes []*Node
}

// NewArena returns an empty Arena.
func NewArena() *Arena { return &Arena{} }

func (a *Arena) alloc(n *Node) *Node {
	a.nodes = append(a.nodes, n)
	return n
}

// CreateDocument allocates a new, childless Document node.
func (a *Arena) CreateDocument() *Node {
	return a.alloc(&Node{Kind: KindDocument})
}

// CreateElement allocates a new, childless element with the given
// qualified name.
func (a *Arena) CreateElement(name atom.Name) *Node {
	return a.alloc(&Node{
		Kind:  KindElement,
		Name:  name,
		ID:    atom.ElementIdByName(name.LocalName),
		Attrs: &AttributeList{},
	})
}

// CreateText allocates a new text node.
func (a *Arena) CreateText(data string) *Node {
	return a.alloc(&Node{Kind: KindText, Data: data})
}

// CreateComment allocates a new comment node.
func (a *Arena) CreateComment(data string) *Node {
	return a.alloc(&Node{Kind: KindComment, Data: data})
}

// CreatePI allocates a new processing-instruction node.
func (a *Arena) CreatePI(target, data string) *Node {
	return a.alloc(&Node{Kind: KindPI, Target: target, Data: data})
}

// CreateStyle allocates a new <style> node whose text content is data;
// the style package parses data itself and never sets StyleRules.
func (a *Arena) CreateStyle(data string) *Node {
	return a.alloc(&Node{
		Kind: KindStyle,
		Name: atom.Name{LocalName: "style"},
		ID:   atom.ElStyle,
		Data: data,
	})
}

// Len returns the number of nodes allocated from this arena.
func (a *Arena) Len() int { return len(a.nodes) }
