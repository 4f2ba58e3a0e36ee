// Package xmlwriter is a small streaming XML writer: a stack of
// StartElement/EndElement calls with Attribute/Text/Comment/PI/CDATA in
// between, the inverse of the dom package's tree. It has no teacher
// counterpart -- the teacher only ever parses SVG, never re-serializes it
// -- so its escaping and self-closing discipline is grounded on the
// token-writing half of the tdewolff SVG minifier instead (CDATA
// passthrough, "/>"-collapse on an empty element, attribute-value
// escaping).
package xmlwriter

import (
	"io"
	"strings"
)

// Options controls the writer's output shape. The zero value writes
// double-quoted attributes with no indentation and an explicit closing tag
// for every element (EnableSelfClosing is false).
type Options struct {
	// UseSingleQuote wraps attribute values in ' instead of ".
	UseSingleQuote bool
	// Indent is the per-depth-level indentation string ("  ", "\t", ...).
	// Empty means no pretty-printing: elements are written back to back
	// with no inserted whitespace.
	Indent string
	// AttributesIndent puts each attribute of a StartElement on its own
	// indented line instead of all on the tag's line. Has no effect when
	// Indent is empty.
	AttributesIndent bool
	// TrimWhitespace controls leading/trailing whitespace trimming (and
	// dropping whitespace-only text nodes entirely) for Text content.
	// TrimExceptTextContent, the common case, leaves text untouched inside
	// an EnterTextContent/ExitTextContent span (<text>, <tspan>, ...),
	// where whitespace is significant.
	TrimWhitespace TrimWhitespace
	// EnableSelfClosing writes "<name/>" for an element that received no
	// children/text before its EndElement call (attributes do not prevent
	// it). When false,
	// every element always gets an explicit closing tag.
	EnableSelfClosing bool
	// Minify suppresses all pretty-printing regardless of Indent, the way
	// optimize.MinifyStyles does for CSS text.
	Minify bool
}

// TrimWhitespace selects when Text trims leading/trailing whitespace and
// drops whitespace-only text nodes.
type TrimWhitespace int

const (
	// TrimNever writes every Text call's content unmodified.
	TrimNever TrimWhitespace = iota
	// TrimExceptTextContent trims everywhere except inside an
	// EnterTextContent/ExitTextContent span.
	TrimExceptTextContent
	// TrimAlways trims unconditionally, even inside text-content elements.
	TrimAlways
)

func (o Options) quote() byte {
	if o.UseSingleQuote {
		return '\''
	}
	return '"'
}

func (o Options) pretty() bool {
	return !o.Minify && o.Indent != ""
}

// frame tracks one open element on the writer's stack.
type frame struct {
	name    string
	open    bool // true until the ">" (or "/>") has been written
	content bool // true once a child/text/comment/etc. has been written
	// textContent is set on the element that was innermost when
	// EnterTextContent was called; its closing tag is not indented.
	textContent bool
}

// Writer emits a well-formed XML document to an underlying io.Writer one
// call at a time. Nothing is buffered beyond the current open tag: once a
// method returns without error, everything up to that point has been
// written through to w.
type Writer struct {
	w     io.Writer
	opts  Options
	stack []frame
	err   error

	declared         bool
	wroteNode        bool
	wroteAnyOutput   bool
	textContentDepth int
}

// New returns a Writer over w configured by opts.
func New(w io.Writer, opts Options) *Writer {
	return &Writer{w: w, opts: opts}
}

func (w *Writer) write(s string) {
	if w.err != nil {
		return
	}
	if s != "" {
		w.wroteAnyOutput = true
	}
	_, w.err = io.WriteString(w.w, s)
}

func (w *Writer) writeIndent(depth int) {
	if !w.opts.pretty() || w.textContentDepth > 0 || !w.wroteAnyOutput {
		return
	}
	w.write("\n")
	w.write(strings.Repeat(w.opts.Indent, depth))
}

// EnterTextContent suppresses indentation and, under
// TrimExceptTextContent, whitespace trimming for everything written until
// the matching ExitTextContent -- the text-content elements (<text>,
// <tspan>, <textPath>, <a>, ...) whose inner whitespace is significant.
// Spans nest: indentation stays suppressed until every EnterTextContent has
// a matching ExitTextContent. The closing tag of the element that is
// innermost at the EnterTextContent call is not indented either, even when
// ExitTextContent comes before its EndElement.
func (w *Writer) EnterTextContent() {
	w.textContentDepth++
	if len(w.stack) > 0 {
		w.stack[len(w.stack)-1].textContent = true
	}
}

// ExitTextContent ends the innermost still-open EnterTextContent span.
func (w *Writer) ExitTextContent() {
	if w.textContentDepth > 0 {
		w.textContentDepth--
	}
}

// closeOpenTag finalizes the current top frame's start tag (writing ">"),
// marking it as having content. Calling this before writing any text,
// child element, comment, PI, or CDATA under the current element is what
// lets self-closing stay correct: an element whose tag is never closed
// this way, and that receives no Attribute calls after it, collapses to
// "/>" at EndElement.
func (w *Writer) closeOpenTag(hasContent bool) {
	if len(w.stack) == 0 {
		return
	}
	top := &w.stack[len(w.stack)-1]
	if !top.open {
		return
	}
	w.write(">")
	top.open = false
	top.content = top.content || hasContent
}

// Err returns the first error encountered by any write, or nil.
func (w *Writer) Err() error { return w.err }

// Declaration writes an XML declaration: <?xml version="..." encoding="..."
// standalone="..."?>. encoding and standalone may be empty to omit their
// pseudo-attribute. A document may have at most one declaration, and it
// must precede every other node; a second call, or a call after any node
// has already been written, sets and returns errDeclarationTwice rather
// than writing anything.
func (w *Writer) Declaration(version, encoding, standalone string) error {
	if w.err != nil {
		return w.err
	}
	if w.declared || w.wroteNode {
		w.err = errDeclarationTwice
		return w.err
	}
	w.declared = true
	w.write(`<?xml version="` + version + `"`)
	if encoding != "" {
		w.write(` encoding="` + encoding + `"`)
	}
	if standalone != "" {
		w.write(` standalone="` + standalone + `"`)
	}
	w.write("?>")
	return w.err
}

// StartElement opens a new element named name, pushing it onto the stack.
// Attribute calls for this element must come immediately after, before
// any Text/Comment/PI/CDATA/StartElement/EndElement call.
func (w *Writer) StartElement(name string) error {
	w.wroteNode = true
	w.closeOpenTag(true)
	w.writeIndent(len(w.stack))
	w.write("<" + name)
	w.stack = append(w.stack, frame{name: name, open: true})
	return w.err
}

// Attribute writes one name="value" pair on the currently open start tag.
// It is a no-op error (returns an error, writes nothing) if called outside
// an open start tag, i.e. after any Text/child/EndElement for this element.
func (w *Writer) Attribute(name, value string) error {
	if len(w.stack) == 0 || !w.stack[len(w.stack)-1].open {
		return errNoOpenTag
	}
	q := w.opts.quote()
	if w.opts.AttributesIndent && w.opts.pretty() {
		w.writeIndent(len(w.stack))
	} else {
		w.write(" ")
	}
	w.write(name + "=" + string(q) + escapeAttr(value, q) + string(q))
	return w.err
}

// Text writes escaped character data inside the current element.
func (w *Writer) Text(s string) error {
	w.wroteNode = true
	trim := w.opts.TrimWhitespace == TrimAlways ||
		(w.opts.TrimWhitespace == TrimExceptTextContent && w.textContentDepth == 0)
	if trim {
		s = strings.TrimSpace(s)
		if s == "" {
			return w.err
		}
	}
	w.closeOpenTag(true)
	w.write(escapeText(s))
	return w.err
}

// CDATA writes s wrapped in a <![CDATA[ ... ]]> section, unescaped. A
// payload containing the literal end-marker "]]>" cannot be represented in
// a single CDATA section; rather than silently splitting it across
// sections, CDATA sets and returns errCDATAViolation without writing
// anything.
func (w *Writer) CDATA(s string) error {
	w.wroteNode = true
	if w.err != nil {
		return w.err
	}
	if strings.Contains(s, "]]>") {
		w.err = errCDATAViolation
		return w.err
	}
	w.closeOpenTag(true)
	w.write("<![CDATA[")
	w.write(s)
	w.write("]]>")
	return w.err
}

// Comment writes s as an XML comment: <!-- s -->.
func (w *Writer) Comment(s string) error {
	w.wroteNode = true
	w.closeOpenTag(true)
	w.writeIndent(len(w.stack))
	w.write("<!--" + s + "-->")
	return w.err
}

// PI writes a processing instruction: <?target data?>.
func (w *Writer) PI(target, data string) error {
	w.wroteNode = true
	w.closeOpenTag(true)
	w.writeIndent(len(w.stack))
	w.write("<?" + target)
	if data != "" {
		w.write(" " + data)
	}
	w.write("?>")
	return w.err
}

// EndElement closes the innermost open element. name must match the name
// passed to the corresponding StartElement; a mismatch returns an error
// without writing anything, catching a stack-discipline bug in the caller.
func (w *Writer) EndElement(name string) error {
	if len(w.stack) == 0 {
		return errUnbalanced
	}
	top := w.stack[len(w.stack)-1]
	if top.name != name {
		return errUnbalanced
	}
	w.stack = w.stack[:len(w.stack)-1]

	if top.open && w.opts.EnableSelfClosing {
		w.write("/>")
		return w.err
	}
	if top.open {
		w.write(">")
	}
	if top.content && !top.textContent {
		w.writeIndent(len(w.stack))
	}
	w.write("</" + name + ">")
	return w.err
}

// Close reports whether every StartElement has a matching EndElement. It
// writes nothing; callers typically call it once after the root element's
// EndElement to catch an unbalanced document.
func (w *Writer) Close() error {
	if len(w.stack) != 0 {
		return errUnbalanced
	}
	return w.err
}
