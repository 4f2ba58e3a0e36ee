package svg

import (
	"encoding/xml"
	"io"
	"strings"

	"github.com/pgavlin/svgo/atom"
	"github.com/pgavlin/svgo/attr"
	"github.com/pgavlin/svgo/dom"
)

// nsPrefixes maps the namespace URIs this package cares about back to the
// prefix the rest of the codebase keys attributes on (atom's attribute
// table stores "xlink:href", not a URI). Only the two namespaces the SVG
// spec itself defines are recognized; any other declared namespace keeps
// its raw URI as a literal prefix rather than being dropped.
var nsPrefixes = map[string]string{
	"http://www.w3.org/1999/xlink":         "xlink",
	"http://www.w3.org/XML/1998/namespace": "xml",
}

func qualifiedName(n xml.Name) string {
	switch {
	case n.Space == "":
		return n.Local
	case n.Space == "xmlns":
		return "xmlns:" + n.Local
	default:
		if p, ok := nsPrefixes[n.Space]; ok {
			return p + ":" + n.Local
		}
		return n.Space + ":" + n.Local
	}
}

// Read decodes r as an XML document into a *dom.Document, the inverse of
// Write. It is deliberately thin: a token-by-token bridge from the
// standard library's encoding/xml lexer into dom.Arena calls, not a
// validating SVG parser -- grounded on image.go's former
// xml.NewDecoder(r).Decode(&doc) call, adapted from struct-tag decoding
// (which depended on the teacher's now-removed encoding/xml struct model)
// to manual token handling, since dom's typed-attribute tree has no fixed
// Go struct shape for encoding/xml to target.
func Read(r io.Reader) (*dom.Document, error) {
	dec := xml.NewDecoder(r)
	doc := dom.NewDocument()
	stack := []*dom.Node{doc.Root}

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		top := stack[len(stack)-1]

		switch t := tok.(type) {
		case xml.StartElement:
			var n *dom.Node
			if t.Name.Local == "style" {
				n = doc.Arena.CreateStyle("")
				n.Attrs = &dom.AttributeList{}
			} else {
				n = doc.Arena.CreateElement(atom.Local(t.Name.Local))
			}
			for _, a := range t.Attr {
				n.Attrs.SetNamedItem(attr.ParseAttr(qualifiedName(a.Name), a.Value))
			}
			top.AppendChild(n)
			stack = append(stack, n)

		case xml.EndElement:
			if len(stack) > 1 {
				stack = stack[:len(stack)-1]
			}

		case xml.CharData:
			if top.Kind == dom.KindStyle {
				top.Data += string(t)
				continue
			}
			if strings.TrimSpace(string(t)) == "" {
				continue
			}
			top.AppendChild(doc.Arena.CreateText(string(t)))

		case xml.Comment:
			top.AppendChild(doc.Arena.CreateComment(string(t)))

		case xml.ProcInst:
			if t.Target == "xml" {
				doc.Declaration = parseDeclaration(t.Inst)
				continue
			}
			top.AppendChild(doc.Arena.CreatePI(t.Target, string(t.Inst)))
		}
	}

	return doc, nil
}

// parseDeclaration reads the pseudo-attributes of an XML declaration's
// instruction body ("version=\"1.0\" encoding=\"UTF-8\""). It reuses
// encoding/xml's own attribute-value tokenizer, by decoding inst as if it
// were a start tag's attribute list, rather than hand-rolling a second
// quoted-pair scanner for the same grammar encoding/xml already parses.
func parseDeclaration(inst []byte) *dom.Declaration {
	decl := &dom.Declaration{Version: "1.0"}

	sub := xml.NewDecoder(strings.NewReader("<d " + string(inst) + "/>"))
	tok, err := sub.Token()
	if err != nil {
		return decl
	}
	start, ok := tok.(xml.StartElement)
	if !ok {
		return decl
	}

	for _, a := range start.Attr {
		switch a.Name.Local {
		case "version":
			decl.Version = a.Value
		case "encoding":
			decl.Encoding = a.Value
		case "standalone":
			decl.Standalone = a.Value == "yes"
			decl.HasStandalone = true
		}
	}
	return decl
}
