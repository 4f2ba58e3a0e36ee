package dom

// Declaration is a parsed XML declaration (`<?xml version="1.0" ...?>`).
// Version is always present on a Declaration that exists at all; Encoding
// and Standalone are empty/false when the source declaration omitted them.
type Declaration struct {
	Version    string
	Encoding   string
	Standalone bool
	HasStandalone bool
}

// Document is the root of one parsed SVG tree: an Arena owning every node,
// plus the Document Node itself whose children are the top-of-document
// PIs/comments and the root <svg> element. Declaration is nil when the
// source document had no XML declaration of its own.
type Document struct {
	Arena       *Arena
	Root        *Node
	Declaration *Declaration
}

// NewDocument allocates an empty Document with a fresh Arena.
func NewDocument() *Document {
	a := NewArena()
	return &Document{Arena: a, Root: a.CreateDocument()}
}

// SVGElement returns the document's root <svg> element, the first element
// child of Root, or nil if none has been attached yet.
func (d *Document) SVGElement() *Node {
	return d.Root.FirstElementChild()
}
