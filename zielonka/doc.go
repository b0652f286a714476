// Package zielonka implements Zielonka's recursive algorithm for
// single-dimension parity games, ported from bdd/recursive.py, plus two
// partial-solver-accelerated variants that peel off easy vertices with the
// buchi package before recursing.
package zielonka
