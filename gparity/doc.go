// Package gparity implements the generalized-parity recursive algorithm,
// ported from bdd/generalizedRecursive.py: priority complementation to force every
// dimension's maximum to be odd, the disjunctive-parity-win recursion, and
// two partial-solver-accelerated variants.
package gparity
