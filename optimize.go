package svg

import (
	"io"

	"github.com/pgavlin/svgo/atom"
	"github.com/pgavlin/svgo/attr"
	"github.com/pgavlin/svgo/dom"
	"github.com/pgavlin/svgo/optimize"
	"github.com/pgavlin/svgo/xmlwriter"
)

// Options configures the one-call Optimize/Write façade: the common case
// of running the default optimization pipeline over an already-parsed
// document and re-serializing it, the way image.go's Decode/Render used to
// be the one-call façade over the teacher's encoding/xml model.
type Options struct {
	// Registry is the pass pipeline to run. A nil Registry runs
	// optimize.DefaultPipeline().
	Registry *optimize.Registry
	// Write configures the re-serialization step. The zero value writes
	// compact, double-quoted XML with an explicit closing tag for every
	// element (EnableSelfClosing is false).
	Write xmlwriter.Options
}

// Optimize runs opts.Registry (or the default pipeline) over doc in place.
func Optimize(doc *dom.Document, opts Options) error {
	reg := opts.Registry
	if reg == nil {
		reg = optimize.DefaultPipeline()
	}
	return reg.Run(doc)
}

// Write serializes doc to w following opts.Write. It does not run any
// optimization pass; callers that want both call Optimize first. When doc
// was read with an XML declaration, exactly that declaration is re-emitted
// first, matching the "declaration present on input -> present on output"
// round-trip the serializer is required to preserve.
func Write(w io.Writer, doc *dom.Document, opts xmlwriter.Options) error {
	xw := xmlwriter.New(w, opts)
	if decl := doc.Declaration; decl != nil {
		standalone := ""
		if decl.HasStandalone {
			standalone = "no"
			if decl.Standalone {
				standalone = "yes"
			}
		}
		if err := xw.Declaration(decl.Version, decl.Encoding, standalone); err != nil {
			return err
		}
	}
	for _, n := range doc.Root.ChildrenIter() {
		writeNode(xw, n)
	}
	return xw.Err()
}

// OptimizeAndWrite runs Optimize then Write, the common single-call path.
func OptimizeAndWrite(w io.Writer, doc *dom.Document, opts Options) error {
	if err := Optimize(doc, opts); err != nil {
		return err
	}
	return Write(w, doc, opts.Write)
}

func writeNode(w *xmlwriter.Writer, n *dom.Node) {
	if w.Err() != nil {
		return
	}
	switch n.Kind {
	case dom.KindElement:
		name := n.Name.String()
		textContent := n.ID.IsTextContent()
		w.StartElement(name)
		for _, a := range n.Attrs.All() {
			w.Attribute(attrName(a), a.Value.String())
		}
		if textContent {
			w.EnterTextContent()
		}
		for _, c := range n.ChildrenIter() {
			writeNode(w, c)
		}
		if textContent {
			w.ExitTextContent()
		}
		w.EndElement(name)
	case dom.KindStyle:
		w.StartElement("style")
		if n.Attrs != nil {
			for _, a := range n.Attrs.All() {
				w.Attribute(attrName(a), a.Value.String())
			}
		}
		w.CDATA(n.Data)
		w.EndElement("style")
	case dom.KindText:
		w.Text(n.Data)
	case dom.KindComment:
		w.Comment(n.Data)
	case dom.KindPI:
		w.PI(n.Target, n.Data)
	}
}

func attrName(a attr.Attr) string {
	if a.ID != atom.AttrUnknown {
		return a.ID.Name()
	}
	return a.Name
}
