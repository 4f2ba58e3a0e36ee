package style

import (
	"github.com/pgavlin/svgo/attr"
	"github.com/pgavlin/svgo/dom"
)

// Mode reports how a computed value was decided.
type Mode int

const (
	// ModeStatic means the value came from the style attribute, the
	// presentation attribute, or stylesheet rules none of which is
	// dynamic. When several rules match, the last one's value is used;
	// whether they agree is not checked.
	ModeStatic Mode = iota
	// ModeDynamic means at least one matching rule depends on dynamic CSS
	// (pseudo-classes, media queries, ...).
	ModeDynamic
	// ModeInherited means no rule or attribute applied directly; the
	// value (if any) came from an ancestor's inheritable attribute.
	ModeInherited
)

// Computed is the resolved value of one presentation property.
type Computed struct {
	Value string
	Mode  Mode
}

// Resolver answers ComputedStyles::with_all queries against one document's
// aggregated stylesheets.
type Resolver struct {
	rules []ruleMatch
	// Inheritable lists which presentation properties cascade through
	// ancestor elements when unset on the current one.
	Inheritable map[string]bool
}

// DefaultInheritable is the standard SVG presentation-property inheritance
// table: true for properties that cascade from ancestors, e.g. fill and
// font-size, false (by absence) for box-local properties like x/y/width.
var DefaultInheritable = map[string]bool{
	"fill":                  true,
	"fill-opacity":          true,
	"fill-rule":             true,
	"stroke":                true,
	"stroke-width":          true,
	"stroke-opacity":        true,
	"stroke-linecap":        true,
	"stroke-linejoin":       true,
	"stroke-miterlimit":     true,
	"stroke-dasharray":      true,
	"stroke-dashoffset":     true,
	"color":                 true,
	"font-family":           true,
	"font-size":             true,
	"font-style":            true,
	"font-weight":           true,
	"text-anchor":           true,
	"visibility":            true,
	"clip-rule":             true,
	"marker-start":          true,
	"marker-mid":            true,
	"marker-end":            true,
	"paint-order":           true,
}

// NewResolver builds a Resolver from the document's parsed <style> sheets.
func NewResolver(sheets []*Stylesheet) *Resolver {
	return &Resolver{rules: rules(sheets), Inheritable: DefaultInheritable}
}

// domElement adapts a *dom.Node (KindElement) to the style package's
// element matching interface.
type domElement struct{ n *dom.Node }

func (d domElement) LocalName() string { return d.n.Name.LocalName }

func (d domElement) ID() string {
	if d.n.Attrs == nil {
		return ""
	}
	a := d.n.Attrs.GetNamedItemLocal("id")
	if a == nil {
		return ""
	}
	if id, ok := a.Value.(*attr.IdentValue); ok {
		return id.Value
	}
	return ""
}

func (d domElement) Classes() []string {
	return d.n.ClassList().Iter()
}

func (d domElement) Parent() (element, bool) {
	p := d.n.ParentElement()
	if p == nil || p.Kind != dom.KindElement {
		return domElement{}, false
	}
	return domElement{p}, true
}

// matchingDeclarations returns the value of the last declaration of
// property, in rule order, whose rule's selector matches elem; selector
// specificity is not compared. It also reports whether any matching rule
// is dynamic and whether any rule matched at all.
func (r *Resolver) matchingDeclarations(elem *dom.Node, property string) (value string, dynamic bool, matched bool) {
	e := domElement{elem}
	for _, rm := range r.rules {
		for _, d := range rm.decls {
			if d.Property != property {
				continue
			}
			if !selectorMatches(rm.selector, e) {
				continue
			}
			value, matched = d.Value, true
			if rm.dynamic {
				dynamic = true
			}
		}
	}
	return value, dynamic, matched
}

// presentationAttr returns the raw string form of elem's own presentation
// attribute named property, if set directly (not via style= or a
// stylesheet rule).
func presentationAttr(elem *dom.Node, property string) (string, bool) {
	if elem.Attrs == nil {
		return "", false
	}
	a := elem.Attrs.GetNamedItemLocal(property)
	if a == nil || a.Value == nil {
		return "", false
	}
	return a.Value.String(), true
}

// styleAttrDeclarations returns elem's inline style="" declarations.
func styleAttrDeclarations(elem *dom.Node) []struct{ Property, Value string } {
	raw, ok := presentationAttr(elem, "style")
	if !ok || raw == "" {
		return nil
	}
	text := raw
	if text[len(text)-1] != ';' {
		text += ";"
	}
	decls, err := ParseDeclarations(text)
	if err != nil {
		return nil
	}
	out := make([]struct{ Property, Value string }, len(decls))
	for i, d := range decls {
		out[i] = struct{ Property, Value string }{d.Property, d.Value}
	}
	return out
}

// Resolve implements ComputedStyles::with_all for a single property,
// consulting (in CSS cascade precedence order, highest first): the style
// attribute, matching stylesheet rules, the element's own presentation
// attribute, then ancestor-inherited values.
func (r *Resolver) Resolve(elem *dom.Node, property string) (Computed, bool) {
	for _, d := range styleAttrDeclarations(elem) {
		if d.Property == property {
			return Computed{Value: d.Value, Mode: ModeStatic}, true
		}
	}

	if value, dynamic, matched := r.matchingDeclarations(elem, property); matched {
		mode := ModeStatic
		if dynamic {
			mode = ModeDynamic
		}
		return Computed{Value: value, Mode: mode}, true
	}

	if value, ok := presentationAttr(elem, property); ok {
		return Computed{Value: value, Mode: ModeStatic}, true
	}

	if r.Inheritable[property] {
		for p := elem.ParentElement(); p != nil && p.Kind == dom.KindElement; p = p.ParentElement() {
			if c, ok := r.Resolve(p, property); ok {
				c.Mode = ModeInherited
				return c, true
			}
		}
	}

	return Computed{}, false
}
