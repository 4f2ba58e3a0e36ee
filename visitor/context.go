package visitor

import "github.com/pgavlin/svgo/dom"

// ContextFlags are the bits a pass reads or sets during traversal.
type ContextFlags struct {
	// WithinForeignObject is set for the subtree rooted at a
	// foreignObject element, where SVG presentation semantics no
	// longer apply.
	WithinForeignObject bool

	// QueryHasScriptResult caches whether the document contains a
	// <script> element or an event-handler attribute (computed lazily,
	// see Context.HasScript).
	QueryHasScriptResult *bool

	// QueryHasStylesheetResult caches the document's parsed <style>
	// rule lists (computed lazily, see Context.Stylesheets).
	QueryHasStylesheetResult []StyleSheetRef

	// VisitSkip requests that the current element's descendants be
	// skipped; it is consulted immediately after Element returns and
	// reset before the next element is entered. It never skips the
	// current element's own ExitElement call.
	VisitSkip bool
}

// StyleSheetRef is an opaque handle a Context hands to style.Resolver;
// visitor itself never parses CSS, it only aggregates <style> nodes for
// whoever does.
type StyleSheetRef struct {
	Node *dom.Node
}

// Diagnostic is a non-fatal note a pass can attach to a run (e.g. "typed
// value failed to parse, falling back to raw text").
type Diagnostic struct {
	Pass    string
	Message string
}

// Context is threaded through one visitor's traversal of one document.
type Context struct {
	Root  *dom.Node
	Info  any
	Flags ContextFlags

	Diagnostics []Diagnostic
}

// NewContext returns a fresh Context rooted at root.
func NewContext(root *dom.Node, info any) *Context {
	return &Context{Root: root, Info: info}
}

// SkipSubtree requests that the current element's descendants not be
// entered; takes effect only for the remainder of the current Element call.
func (c *Context) SkipSubtree() { c.Flags.VisitSkip = true }

// Diagnose appends a Diagnostic under pass's name.
func (c *Context) Diagnose(pass, message string) {
	c.Diagnostics = append(c.Diagnostics, Diagnostic{Pass: pass, Message: message})
}

// Stylesheets returns the document's aggregated <style> rule-list
// references, computing and caching them on first call.
func (c *Context) Stylesheets(compute func() []StyleSheetRef) []StyleSheetRef {
	if c.Flags.QueryHasStylesheetResult == nil {
		c.Flags.QueryHasStylesheetResult = compute()
	}
	return c.Flags.QueryHasStylesheetResult
}

// HasScript returns whether the document contains a script element or
// event-handler attribute, computing and caching the result on first call.
func (c *Context) HasScript(compute func() bool) bool {
	if c.Flags.QueryHasScriptResult == nil {
		v := compute()
		c.Flags.QueryHasScriptResult = &v
	}
	return *c.Flags.QueryHasScriptResult
}
