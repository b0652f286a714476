// Package pgformat loads game arenas into *symbolic.Arena values from the
// PGSolver and generalized-PGSolver text formats, and from HOA-encoded
// product automata, grounded respectively on bdd/pg2bdd.py, bdd/gpg2bdd.py,
// and bdd/dpa2bdd.py / bdd/dpa2gpg.py.
//
// All loaders use a direct binary encoding of vertex indices onto BDD
// variables x0..xn / xb0..xbn (the same scheme as pg2bdd_direct_encoding),
// which is deterministic and avoids the random-assignment trick
// bdd/pg2bdd.py's default loader uses purely for its own engine's
// performance characteristics.
package pgformat
