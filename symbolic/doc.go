// Package symbolic implements the BDD-backed game Arena described by the
// data model: two disjoint ordered variable lists (current-state and
// successor-state), the player-ownership functions, the edge relation, and
// one or more priority functions (dimensions).
//
// An Arena is built once, by a loader in package pgformat, and is treated as
// immutable afterwards. Sub-arenas produced by Subarena and
// RestrictToReachable are new Arena values that share the parent's variable
// lists and substitution tables (Mapping/InvMapping) — Boolean-function
// handles are immutable, so sharing them between parent and child is safe
// without copying.
//
// Note: sub-arena edges are restricted to the new vertex
// set by Subarena itself (both endpoints conjoined with the kept set); a
// caller that also needs forward-reachability pruning of edges calls
// RestrictToReachable explicitly. The two are independent operators and
// neither implies the other.
package symbolic
