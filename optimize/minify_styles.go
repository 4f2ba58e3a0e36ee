package optimize

import (
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/pgavlin/svgo/atom"
	"github.com/pgavlin/svgo/dom"
	"github.com/pgavlin/svgo/style"
	"github.com/pgavlin/svgo/visitor"
	"github.com/tdewolff/minify/v2"
	minifycss "github.com/tdewolff/minify/v2/css"
)

// MinifyStylesOptions configures MinifyStyles.
type MinifyStylesOptions struct {
	// RemoveUnused drops selectors referencing a tag/id/class that does
	// not appear anywhere in the document, unless the document contains
	// a <script> or an event-handler (on*) attribute.
	RemoveUnused bool `json:"removeUnused"`
	// Force bypasses the <script>/on* safety check for RemoveUnused.
	Force bool `json:"force"`
}

// MinifyStyles minifies every <style> element's CSS text and every
// style="" attribute's declaration list via tdewolff/minify's CSS
// minifier, and optionally prunes selectors that reference idents absent
// from the document.
type MinifyStyles struct {
	visitor.BaseVisitor
	opts MinifyStylesOptions

	m          *minify.M
	docTags    map[string]bool
	docIDs     map[string]bool
	docClasses map[string]bool
	hasScript  bool
}

// NewMinifyStyles returns a configured MinifyStyles pass.
func NewMinifyStyles(opts MinifyStylesOptions) *MinifyStyles {
	m := minify.New()
	m.AddFunc("text/css", minifycss.Minify)
	return &MinifyStyles{opts: opts, m: m}
}

func (p *MinifyStyles) Name() string { return "minifyStyles" }

func (p *MinifyStyles) Prepare(doc *dom.Document, ctx *visitor.Context) visitor.PrepareOutcome {
	p.docTags = map[string]bool{}
	p.docIDs = map[string]bool{}
	p.docClasses = map[string]bool{}

	for _, n := range doc.Root.BreadthFirst() {
		if n.Kind != dom.KindElement && n.Kind != dom.KindStyle {
			continue
		}
		p.docTags[n.Name.LocalName] = true
		if id, ok := attrString(n, atom.AttrID); ok && id != "" {
			p.docIDs[id] = true
		}
		for _, c := range n.ClassList().Iter() {
			p.docClasses[c] = true
		}
		if n.Name.LocalName == "script" {
			p.hasScript = true
		}
		if n.Attrs == nil {
			continue
		}
		for _, a := range n.Attrs.All() {
			name := a.ID.Name()
			if a.ID == atom.AttrUnknown {
				name = a.Name
			}
			if strings.HasPrefix(name, "on") {
				p.hasScript = true
			}
		}
	}
	return visitor.PrepareOutcome{}
}

func (p *MinifyStyles) Element(elem *dom.Node, ctx *visitor.Context) {
	if elem.Kind == dom.KindStyle {
		p.minifyStyleElement(elem)
		return
	}
	p.minifyStyleAttr(elem)
}

func (p *MinifyStyles) minifyStyleElement(elem *dom.Node) {
	text := elem.Data
	if p.opts.RemoveUnused && (p.opts.Force || !p.hasScript) {
		if sheet, err := style.Parse(text); err == nil {
			text = p.pruneUnused(sheet)
		}
	}
	minified, err := p.m.String("text/css", text)
	if err != nil {
		return
	}
	elem.Data = minified
}

func (p *MinifyStyles) minifyStyleAttr(elem *dom.Node) {
	raw, ok := attrString(elem, atom.AttrStyle)
	if !ok || raw == "" {
		return
	}
	text := raw
	if !strings.HasSuffix(text, ";") {
		text += ";"
	}
	minified, err := p.m.String("text/css", text)
	if err != nil {
		return
	}
	setAttr(elem, atom.AttrStyle, strings.TrimSuffix(minified, ";"))
}

// pruneUnused rebuilds a CSS text, keeping only rules whose selector
// doesn't reference an absent tag/id/class.
func (p *MinifyStyles) pruneUnused(sheet *style.Stylesheet) string {
	var b strings.Builder
	for _, r := range sheet.Sheet.Rules {
		if r.Kind == css.AtRule {
			b.WriteString(r.String())
			continue
		}
		kept := make([]string, 0, len(r.Selectors))
		for _, sel := range r.Selectors {
			if p.selectorReferencesKnownIdent(sel) {
				kept = append(kept, sel)
			}
		}
		if len(kept) == 0 {
			continue
		}
		b.WriteString(strings.Join(kept, ","))
		b.WriteString("{")
		for _, d := range r.Declarations {
			b.WriteString(d.Property)
			b.WriteString(":")
			b.WriteString(d.Value)
			if d.Important {
				b.WriteString(" !important")
			}
			b.WriteString(";")
		}
		b.WriteString("}")
	}
	return b.String()
}

func (p *MinifyStyles) selectorReferencesKnownIdent(sel string) bool {
	tags, ids, classes := style.SelectorIdents(sel)
	for _, t := range tags {
		if !p.docTags[t] {
			return false
		}
	}
	for _, id := range ids {
		if !p.docIDs[id] {
			return false
		}
	}
	for _, c := range classes {
		if !p.docClasses[c] {
			return false
		}
	}
	return true
}
