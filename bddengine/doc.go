// Package bddengine is a thin, deterministic adapter around the external
// BDD library github.com/dalzilio/rudd.
//
// What
//
//   - Owns variable declaration for the "current" and "successor" halves of
//     an arena's encoding, plus any extra atomic-proposition variables.
//   - Exposes the handful of Boolean-function operations the rest of this
//     module needs: And, Or, Not, Exist, AndExist (a fused and-then-exist,
//     mirroring BuDDy's relational product), Let (substitution), Ithvar,
//     True, False, and AnySat, which returns one satisfying assignment.
//   - Everything above this package manipulates Func values; nothing above
//     it imports github.com/dalzilio/rudd directly. If the underlying BDD
//     package's API ever shifts, this file is the only one that needs to
//     change.
//
// Why an adapter instead of using rudd.BDD everywhere
//
//   - rudd's node handles are bare integers scoped to one *rudd.BDD
//     instance; passing raw ints around invites mixing handles from two
//     different engines. Func pairs the handle with the engine it came
//     from so that accidental cross-engine use returns ErrMismatchedEngine
//     instead of silently returning nonsense.
//   - The fixed-point operators built on top of this package (attractor,
//     monotone attractor, generalized-Büchi solvers) are all expressed in
//     terms of and/or/not/
//     exist/let; keeping that vocabulary in one package makes every other
//     package in this module representation-agnostic in spirit, even
//     though only one symbolic engine is wired in.
//
// Concurrency
//
//	A *Engine owns a single *rudd.BDD node table. Per the BDD package's own
//	contract, concurrent calls into the same table from multiple goroutines
//	are not safe; callers must not share an *Engine across goroutines
//	unless they externally serialize access.
package bddengine
