package optimize

import (
	"strings"

	"github.com/pgavlin/svgo/atom"
	"github.com/pgavlin/svgo/attr"
	"github.com/pgavlin/svgo/dom"
	"github.com/pgavlin/svgo/visitor"
)

// PrefixIdsOptions configures PrefixIds.
type PrefixIdsOptions struct {
	// Prefix is prepended to every id/class. Defaults to "prefix" when
	// empty and FilePath is also empty.
	Prefix string `json:"prefix"`
	// FilePath, when set and Prefix is empty, derives the prefix from
	// the file's basename (without extension).
	FilePath string `json:"filePath"`
	// Delimiter separates prefix and original ident. Defaults to "_".
	Delimiter string `json:"delimiter"`
}

// PrefixIds prefixes every id, class, and URL-fragment reference (in
// attributes and inline/<style> CSS) with a generator-derived prefix.
// Idents already carrying the prefix are left alone.
type PrefixIds struct {
	visitor.BaseVisitor
	opts PrefixIdsOptions

	prefix string
}

// NewPrefixIds returns a configured PrefixIds pass.
func NewPrefixIds(opts PrefixIdsOptions) *PrefixIds {
	if opts.Delimiter == "" {
		opts.Delimiter = "_"
	}
	return &PrefixIds{opts: opts}
}

func (p *PrefixIds) Name() string { return "prefixIds" }

func (p *PrefixIds) Prepare(doc *dom.Document, ctx *visitor.Context) visitor.PrepareOutcome {
	switch {
	case p.opts.Prefix != "":
		p.prefix = p.opts.Prefix
	case p.opts.FilePath != "":
		p.prefix = basenameNoExt(p.opts.FilePath)
	default:
		p.prefix = "prefix"
	}
	return visitor.PrepareOutcome{}
}

func basenameNoExt(path string) string {
	base := path
	if i := strings.LastIndexByte(base, '/'); i >= 0 {
		base = base[i+1:]
	}
	if i := strings.LastIndexByte(base, '.'); i > 0 {
		base = base[:i]
	}
	return base
}

func (p *PrefixIds) qualify(ident string) string {
	if strings.HasPrefix(ident, p.prefix+p.opts.Delimiter) {
		return ident
	}
	return p.prefix + p.opts.Delimiter + ident
}

func (p *PrefixIds) Element(elem *dom.Node, ctx *visitor.Context) {
	if elem.Kind == dom.KindStyle {
		elem.Data = p.rewriteCSSIdents(elem.Data)
		return
	}
	if elem.Attrs == nil {
		return
	}

	if id, ok := attrString(elem, atom.AttrID); ok && id != "" {
		setAttr(elem, atom.AttrID, p.qualify(id))
	}

	if a := elem.Attrs.GetNamedItemLocal(atom.AttrClass.Name()); a != nil {
		if tl, ok := a.Value.(*attr.TokenList); ok {
			for i, c := range tl.Tokens {
				tl.Tokens[i] = p.qualify(c)
			}
		}
	}

	if a := elem.Attrs.GetNamedItemLocal(atom.AttrStyle.Name()); a != nil {
		setAttr(elem, atom.AttrStyle, p.rewriteCSSIdents(a.Value.String()))
	}

	for _, a := range elem.Attrs.All() {
		if a.ID == atom.AttrID || a.Value == nil {
			continue
		}
		a.Value.VisitURL(func(url *string) { *url = p.qualify(*url) })
		a.Value.VisitID(func(id *string) { *id = p.qualify(*id) })
	}
}

// rewriteCSSIdents prefixes every #id and .class token found in raw CSS
// text. It operates on the raw text rather than a parsed stylesheet so it
// can run uniformly over both <style> bodies and style="" attribute values
// without re-serializing declarations through the minifier.
func (p *PrefixIds) rewriteCSSIdents(css string) string {
	var b strings.Builder
	i := 0
	for i < len(css) {
		c := css[i]
		if (c == '#' || c == '.') && i+1 < len(css) && isIdentStart(css[i+1]) {
			j := i + 1
			for j < len(css) && isIdentChar(css[j]) {
				j++
			}
			b.WriteByte(c)
			b.WriteString(p.qualify(css[i+1 : j]))
			i = j
			continue
		}
		b.WriteByte(c)
		i++
	}
	return b.String()
}

func isIdentStart(b byte) bool {
	return b == '_' || b == '-' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isIdentChar(b byte) bool {
	return isIdentStart(b) || (b >= '0' && b <= '9')
}
