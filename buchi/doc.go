// Package buchi implements (generalized) Büchi partial solvers, ported from
// bdd/buchiSolver.py and bdd/generalizedBuchiSolver.py.
//
// These solvers never claim to decide the whole arena: PartialSolver and
// GeneralizedPartialSolver peel off vertices they can prove belong to one
// player's winning region using fatal attractors, and hand back whatever
// remains unsolved. zielonka and gparity call them as an optional
// accelerator before falling back to full recursion.
package buchi
