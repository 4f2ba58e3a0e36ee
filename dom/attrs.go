package dom

import (
	"github.com/pgavlin/svgo/atom"
	"github.com/pgavlin/svgo/attr"
)

// AttributeList is an ordered sequence of an element's attributes,
// preserving source order except where a caller explicitly reorders it
// with Sort.
type AttributeList struct {
	items []attr.Attr
}

// Len returns the number of attributes.
func (l *AttributeList) Len() int { return len(l.items) }

// All returns every attribute in current order.
func (l *AttributeList) All() []attr.Attr { return l.items }

// GetNamedItemLocal returns the attribute whose recognized name matches
// name (no namespace prefix considered), or nil.
func (l *AttributeList) GetNamedItemLocal(name string) *attr.Attr {
	for i := range l.items {
		if itemName(l.items[i]) == name {
			return &l.items[i]
		}
	}
	return nil
}

// itemName returns a's attribute name: its AttrId's canonical name if
// recognized, else the raw Name stored for Unknown attrs.
func itemName(a attr.Attr) string {
	if a.ID != atom.AttrUnknown {
		return a.ID.Name()
	}
	return a.Name
}

// SetNamedItem inserts or replaces the attribute named name.
func (l *AttributeList) SetNamedItem(a attr.Attr) {
	name := itemName(a)
	for i := range l.items {
		if itemName(l.items[i]) == name {
			l.items[i] = a
			return
		}
	}
	l.items = append(l.items, a)
}

// RemoveNamedItem removes the attribute named name, reporting whether one
// was found.
func (l *AttributeList) RemoveNamedItem(name string) bool {
	for i := range l.items {
		if itemName(l.items[i]) == name {
			l.items = append(l.items[:i], l.items[i+1:]...)
			return true
		}
	}
	return false
}

// Retain keeps only the attributes for which keep returns true, preserving
// relative order.
func (l *AttributeList) Retain(keep func(attr.Attr) bool) {
	out := l.items[:0]
	for _, a := range l.items {
		if keep(a) {
			out = append(out, a)
		}
	}
	l.items = out
}

// Sort reorders attributes according to order (attribute names listed
// earlier sort first; unlisted names keep their relative order after the
// listed ones). When xmlnsFirst is set, xmlns/xmlns:* declarations are
// moved to the front regardless of order.
func (l *AttributeList) Sort(order []string, xmlnsFirst bool) {
	rank := make(map[string]int, len(order))
	for i, name := range order {
		rank[name] = i
	}

	type indexed struct {
		a   attr.Attr
		idx int
	}
	tmp := make([]indexed, len(l.items))
	for i, a := range l.items {
		tmp[i] = indexed{a, i}
	}

	less := func(i, j int) bool {
		ai, aj := tmp[i], tmp[j]
		if xmlnsFirst {
			xi, xj := isXMLNS(ai.a), isXMLNS(aj.a)
			if xi != xj {
				return xi
			}
		}
		ri, riok := rank[itemName(ai.a)]
		rj, rjok := rank[itemName(aj.a)]
		if riok && rjok {
			return ri < rj
		}
		if riok != rjok {
			return riok
		}
		return ai.idx < aj.idx
	}

	// insertion sort: attribute lists are small.
	for i := 1; i < len(tmp); i++ {
		j := i
		for j > 0 && less(j, j-1) {
			tmp[j], tmp[j-1] = tmp[j-1], tmp[j]
			j--
		}
	}

	for i, t := range tmp {
		l.items[i] = t.a
	}
}

func isXMLNS(a attr.Attr) bool {
	name := itemName(a)
	return name == "xmlns" || (len(name) > 6 && name[:6] == "xmlns:")
}
