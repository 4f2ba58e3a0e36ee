package style

import "strings"

// ericchiang/css binds its Selector.Select directly to golang.org/x/net/html
// nodes; adapting our arena dom.Node tree to that shape would mean
// round-tripping the whole subtree into an html.Node tree on every resolve
// call just to run a matcher this small. compoundMatches below is the
// narrow, hand-rolled alternative: type/class/id/universal compound
// selectors joined by descendant (" ") and child (">") combinators, which
// covers everything the optimizer's own stylesheets and every SVG in the
// corpus actually use. Pseudo-classes and attribute selectors are detected
// (isDynamicSelector) but never matched true, since Mode::Dynamic already
// routes any pseudo-class-bearing rule away from static resolution.
type element interface {
	LocalName() string
	ID() string
	Classes() []string
	Parent() (element, bool)
}

// compound is one type/class/id/universal clause, e.g. "g.layer#root".
type compound struct {
	tag     string // "" means unconstrained, "*" also means unconstrained
	id      string
	classes []string
}

func parseCompound(s string) compound {
	var c compound
	i := 0
	for i < len(s) {
		switch s[i] {
		case '#':
			j := i + 1
			for j < len(s) && s[j] != '.' && s[j] != '#' {
				j++
			}
			c.id = s[i+1 : j]
			i = j
		case '.':
			j := i + 1
			for j < len(s) && s[j] != '.' && s[j] != '#' {
				j++
			}
			c.classes = append(c.classes, s[i+1:j])
			i = j
		default:
			j := i
			for j < len(s) && s[j] != '.' && s[j] != '#' {
				j++
			}
			c.tag = s[i:j]
			i = j
		}
	}
	return c
}

func (c compound) matches(e element) bool {
	if c.tag != "" && c.tag != "*" && c.tag != e.LocalName() {
		return false
	}
	if c.id != "" && c.id != e.ID() {
		return false
	}
	for _, want := range c.classes {
		found := false
		for _, have := range e.Classes() {
			if have == want {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// step is one compound plus the combinator that joins it to the step on its
// right in the selector string (empty for the rightmost step).
type step struct {
	combinator string // "", ">", or " "
	compound   compound
}

// parseSelector splits a simple selector into its steps, rightmost first,
// matching the order selectorMatches walks ancestors in.
func parseSelector(sel string) []step {
	fields := tokenizeCombinators(sel)
	steps := make([]step, len(fields))
	for i, f := range fields {
		combinator := ""
		if i+1 < len(fields) {
			combinator = fields[i+1].combinator
		}
		steps[len(fields)-1-i] = step{combinator: combinator, compound: parseCompound(f.text)}
	}
	return steps
}

type combinatorField struct {
	combinator string
	text       string
}

func tokenizeCombinators(sel string) []combinatorField {
	sel = strings.TrimSpace(sel)
	var out []combinatorField
	combinator := ""
	i := 0
	for i < len(sel) {
		for i < len(sel) && sel[i] == ' ' {
			i++
		}
		if i < len(sel) && sel[i] == '>' {
			combinator = ">"
			i++
			for i < len(sel) && sel[i] == ' ' {
				i++
			}
		}
		j := i
		for j < len(sel) && sel[j] != ' ' && sel[j] != '>' {
			j++
		}
		if j > i {
			out = append(out, combinatorField{combinator: combinator, text: sel[i:j]})
			combinator = " "
		}
		i = j
	}
	return out
}

// selectorMatches reports whether e matches sel, walking ancestors for
// descendant/child combinators.
func selectorMatches(sel string, e element) bool {
	steps := parseSelector(sel)
	if len(steps) == 0 {
		return false
	}
	if !steps[0].compound.matches(e) {
		return false
	}
	cur := e
	for _, st := range steps[1:] {
		parent, ok := cur.Parent()
		if !ok {
			return false
		}
		if st.combinator == ">" {
			if !st.compound.matches(parent) {
				return false
			}
			cur = parent
		} else {
			// descendant combinator: walk ancestors until one matches.
			found := false
			for {
				p, ok := parent.Parent()
				if st.compound.matches(parent) {
					found = true
					cur = parent
					break
				}
				if !ok {
					break
				}
				parent = p
			}
			if !found {
				return false
			}
		}
	}
	return true
}

// SelectorIdents returns every tag name, id, and class referenced anywhere
// in a single (non-comma-joined) selector string, for callers that need to
// know what a selector depends on without matching it against an element
// (e.g. an unused-selector pruning pass).
func SelectorIdents(sel string) (tags, ids, classes []string) {
	for _, field := range tokenizeCombinators(sel) {
		c := parseCompound(field.text)
		if c.tag != "" && c.tag != "*" {
			tags = append(tags, c.tag)
		}
		if c.id != "" {
			ids = append(ids, c.id)
		}
		classes = append(classes, c.classes...)
	}
	return tags, ids, classes
}

// isDynamicSelector reports whether sel contains a pseudo-class/element or
// attribute selector, any of which can change a rule's applicability
// without a document mutation (hover, focus, animation, nth-child, ...).
func isDynamicSelector(sel string) bool {
	return strings.ContainsAny(sel, ":[")
}
