// Package style implements the computed-style resolver: given an element
// and the document's aggregated <style> rule-lists, it answers "what's the
// effective value of presentation property P, and was it decided
// statically or does it depend on dynamic CSS (hover, animation, media
// queries)". Parsing itself is delegated to aymerick/douceur, the way the
// teacher's cogentcore-core/css.go wraps douceur/parser.Parse into its own
// StyleSheet type.
package style

import (
	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
)

// Stylesheet wraps a parsed douceur stylesheet, the way cogentcore-core's
// StyleSheet.Sheet wraps *css.Stylesheet.
type Stylesheet struct {
	Sheet *css.Stylesheet
}

// Parse parses a <style> element's text content into a Stylesheet.
func Parse(text string) (*Stylesheet, error) {
	sheet, err := parser.Parse(text)
	if err != nil {
		return nil, err
	}
	return &Stylesheet{Sheet: sheet}, nil
}

// ParseDeclarations parses a style="..." attribute value into a flat
// declaration list, the way cogentcore-core's Context.Config handles
// inline style attributes.
func ParseDeclarations(text string) ([]*css.Declaration, error) {
	return parser.ParseDeclarations(text)
}

// ruleMatch is one (selector, declarations, dynamic) triple flattened out
// of a Stylesheet's rules -- one rule.Selectors entry in douceur covers
// every selector in a comma-separated group, so rules() expands each into
// its own ruleMatch for independent selector matching.
type ruleMatch struct {
	selector string
	decls    []*css.Declaration
	dynamic  bool
}

// rules flattens every qualified (non-at-rule) rule in every sheet into
// one ordered list of selector/declaration/dynamic triples, later rules
// overriding earlier ones of equal specificity per CSS cascade order.
func rules(sheets []*Stylesheet) []ruleMatch {
	var out []ruleMatch
	for _, sheet := range sheets {
		if sheet == nil || sheet.Sheet == nil {
			continue
		}
		for _, r := range sheet.Sheet.Rules {
			if r.Kind == css.AtRule {
				// @media, @supports, @keyframes and friends make every
				// declaration they wrap conditional -- treat their
				// nested rules (if any) as dynamic.
				for _, nested := range r.Rules {
					out = append(out, flattenRule(nested, true)...)
				}
				continue
			}
			out = append(out, flattenRule(r, false)...)
		}
	}
	return out
}

func flattenRule(r *css.Rule, forceDynamic bool) []ruleMatch {
	dyn := forceDynamic || isDynamicSelectorGroup(r.Selectors)
	out := make([]ruleMatch, 0, len(r.Selectors))
	for _, sel := range r.Selectors {
		out = append(out, ruleMatch{selector: sel, decls: r.Declarations, dynamic: dyn || isDynamicSelector(sel)})
	}
	return out
}

func isDynamicSelectorGroup(selectors []string) bool {
	for _, s := range selectors {
		if isDynamicSelector(s) {
			return true
		}
	}
	return false
}
