package dom

import (
	"github.com/pgavlin/svgo/atom"
	"github.com/pgavlin/svgo/attr"
)

// ClassList is a whitespace-separated token-list view over an element's
// class attribute. It memoizes the class attribute's *attr.TokenList after
// the first lookup so repeated Add/Remove/Contains calls on the same
// element don't re-scan the attribute list each time.
type ClassList struct {
	node    *Node
	cached  *attr.TokenList
	resolved bool
}

func (cl *ClassList) tokenList() *attr.TokenList {
	if cl.resolved {
		return cl.cached
	}
	cl.resolved = true
	if cl.node.Attrs == nil {
		return nil
	}
	a := cl.node.Attrs.GetNamedItemLocal("class")
	if a == nil {
		return nil
	}
	tl, ok := a.Value.(*attr.TokenList)
	if !ok {
		return nil
	}
	cl.cached = tl
	return tl
}

// Contains reports whether class is present.
func (cl *ClassList) Contains(class string) bool {
	tl := cl.tokenList()
	if tl == nil {
		return false
	}
	for _, t := range tl.Tokens {
		if t == class {
			return true
		}
	}
	return false
}

// Add appends class if not already present, creating the class attribute
// if the element has none.
func (cl *ClassList) Add(class string) {
	if cl.Contains(class) {
		return
	}
	tl := cl.tokenList()
	if tl == nil {
		tl = &attr.TokenList{}
		cl.node.Attrs.SetNamedItem(attr.Attr{ID: atom.AttrClass, Value: tl})
		cl.cached, cl.resolved = tl, true
	}
	tl.Tokens = append(tl.Tokens, class)
}

// Remove deletes class if present.
func (cl *ClassList) Remove(class string) {
	tl := cl.tokenList()
	if tl == nil {
		return
	}
	for i, t := range tl.Tokens {
		if t == class {
			tl.Tokens = append(tl.Tokens[:i], tl.Tokens[i+1:]...)
			return
		}
	}
}

// Replace swaps oldClass for newClass in place, preserving position.
func (cl *ClassList) Replace(oldClass, newClass string) {
	tl := cl.tokenList()
	if tl == nil {
		return
	}
	for i, t := range tl.Tokens {
		if t == oldClass {
			tl.Tokens[i] = newClass
			return
		}
	}
}

// Iter returns every class token.
func (cl *ClassList) Iter() []string {
	tl := cl.tokenList()
	if tl == nil {
		return nil
	}
	return tl.Tokens
}
