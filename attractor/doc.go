// Package attractor implements fixed-point operators over
// a *symbolic.Arena: the standard attractor, the monotone ("fatal")
// attractor used by the partial solvers, and the safe attractor, which no
// solver in this module calls.
//
// All three are monotone least fixed points over the finite Boolean lattice
// of vertex subsets; convergence is detected with Func.Equal against the
// previous iterate, never by a bounded loop count.
package attractor
