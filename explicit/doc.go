// Package explicit implements a non-symbolic game representation and
// solvers ("-reg" driver mode): a vertex is a plain int, a vertex
// set is a *bitset.BitSet, and every fixed point is computed by iterating
// over adjacency lists rather than BDD operations.
//
// This backend exists for small arenas and for cross-checking the
// bddengine-based solvers in buchi, zielonka and gparity; it intentionally
// does not reimplement their partial-solver optimizations (see DESIGN.md).
// Grounded on regular/arena.py, regular/attractor.py and regular/recursive.py.
package explicit
