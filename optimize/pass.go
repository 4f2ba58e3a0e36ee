// Package optimize implements the reference-aware optimizer passes: each
// one is a visitor.Visitor that mutates the arena DOM in place during a
// single traversal. Passes are expected to be idempotent -- running the
// same pass twice should leave the tree unchanged the second time.
package optimize

import (
	"fmt"

	"github.com/pgavlin/svgo/visitor"
)

// Pass is the contract every optimizer pass satisfies: a Visitor plus a
// stable Name used in error messages and pipeline configuration.
type Pass interface {
	visitor.Visitor
	Name() string
}

// PassError wraps an error raised while running a named pass, the
// optimize-package half of the visitor/optimize sentinel-wrapped error
// pair the pipeline surfaces to callers.
type PassError struct {
	Pass string
	Err  error
}

func (e *PassError) Error() string { return fmt.Sprintf("pass %q: %v", e.Pass, e.Err) }
func (e *PassError) Unwrap() error { return e.Err }
