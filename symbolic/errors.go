package symbolic

import "errors"

// Sentinel errors for Arena construction and validation.
var (
	// ErrPlayerOverlap indicates player0_vertices and player1_vertices are
	// not disjoint (invariant 1).
	ErrPlayerOverlap = errors.New("symbolic: player0 and player1 vertex sets overlap")

	// ErrVarLengthMismatch indicates vars and vars_bis have different
	// lengths (invariant 4).
	ErrVarLengthMismatch = errors.New("symbolic: vars and vars_bis have different lengths")

	// ErrEmptyPriorities indicates a dimension has no priority entries at
	// all, which makes max-priority queries ill-defined.
	ErrEmptyPriorities = errors.New("symbolic: a priority dimension has no entries")

	// ErrPriorityPartitionOverlap indicates two distinct priorities in the
	// same dimension share a vertex (invariant 3).
	ErrPriorityPartitionOverlap = errors.New("symbolic: priority classes overlap within a dimension")

	// ErrNoDimensions indicates an arena was built with zero priority
	// functions, which is not a valid generalized parity game.
	ErrNoDimensions = errors.New("symbolic: arena has no priority dimensions")

	// ErrPriorityPartitionIncomplete indicates some vertex in a dimension
	// has no assigned priority class (invariant 3).
	ErrPriorityPartitionIncomplete = errors.New("symbolic: priority classes do not cover every vertex in a dimension")
)
