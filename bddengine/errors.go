package bddengine

import "errors"

// Sentinel errors for bddengine construction and variable management.
var (
	// ErrTooManyVariables is returned by New when the requested variable
	// count is not positive. A count the underlying BDD package itself
	// rejects is reported as ErrEngineExhausted.
	ErrTooManyVariables = errors.New("bddengine: too many variables requested")

	// ErrEngineExhausted wraps an out-of-memory or node-table overflow
	// reported by the underlying BDD engine. The spec (§7) treats this as
	// a resource-exhaustion error: no partial result is recoverable.
	ErrEngineExhausted = errors.New("bddengine: BDD engine exhausted its node table")

	// ErrMismatchedEngine is returned when a Func produced by one Engine
	// is passed to an operation on a different Engine.
	ErrMismatchedEngine = errors.New("bddengine: function belongs to a different engine")

	// ErrUnknownVariable is returned when a variable index is outside the
	// range declared at construction time.
	ErrUnknownVariable = errors.New("bddengine: unknown variable index")
)
