package bddengine

import (
	"fmt"

	"github.com/dalzilio/rudd"
)

// Engine owns one BDD node table and the variable numbering declared on it.
// Arenas built on top of an Engine share variable indices with it for their
// entire lifetime; see symbolic.Arena.
type Engine struct {
	mgr    *rudd.BDD
	varnum int
}

// Func is a handle to a Boolean function living inside one Engine. The zero
// Func is not valid; always obtain one from an Engine method.
type Func struct {
	e *Engine
	n int
}

// Pairing is a substitution table mapping variable indices to variable
// indices, used by Let to implement σ (mapping_bis) renaming.
type Pairing struct {
	e    *Engine
	pair *rudd.Pair
}

// New creates an Engine with varnum Boolean variables, numbered 0..varnum-1.
// Callers declare all variables they will ever reference before the first
// operation that uses them.
func New(varnum int, opts ...rudd.ConfigFunc) (*Engine, error) {
	if varnum <= 0 {
		return nil, ErrTooManyVariables
	}
	mgr, err := rudd.New(varnum, opts...)
	if err != nil {
		return nil, fmt.Errorf("bddengine: %w: %v", ErrEngineExhausted, err)
	}
	return &Engine{mgr: mgr, varnum: varnum}, nil
}

func (e *Engine) wrap(n int) Func { return Func{e: e, n: n} }

func (e *Engine) check(fs ...Func) error {
	for _, f := range fs {
		if f.e != e {
			return ErrMismatchedEngine
		}
	}
	return nil
}

// True returns the constant function ⊤.
func (e *Engine) True() Func { return e.wrap(e.mgr.True()) }

// False returns the constant function ⊥.
func (e *Engine) False() Func { return e.wrap(e.mgr.False()) }

// Ithvar returns the function that is true iff variable i holds.
func (e *Engine) Ithvar(i int) (Func, error) {
	if i < 0 || i >= e.varnum {
		return Func{}, ErrUnknownVariable
	}
	return e.wrap(e.mgr.Ithvar(i)), nil
}

// NIthvar returns the function that is true iff variable i does not hold.
func (e *Engine) NIthvar(i int) (Func, error) {
	if i < 0 || i >= e.varnum {
		return Func{}, ErrUnknownVariable
	}
	return e.wrap(e.mgr.NIthvar(i)), nil
}

// IsFalse reports whether f is exactly the ⊥ constant, using explicit
// equality against the engine's false node rather than any notion of Go
// truthiness.
func (f Func) IsFalse() bool { return f.n == f.e.mgr.False() }

// IsTrue reports whether f is exactly the ⊤ constant.
func (f Func) IsTrue() bool { return f.n == f.e.mgr.True() }

// Equal reports whether f and g denote the same Boolean function. Because
// the underlying engine maintains a unique node table, this is a node
// identity comparison, not a semantic equivalence search.
func (f Func) Equal(g Func) bool { return f.e == g.e && f.n == g.n }

// And returns the conjunction of f and g.
func (e *Engine) And(f, g Func) (Func, error) {
	if err := e.check(f, g); err != nil {
		return Func{}, err
	}
	return e.wrap(e.mgr.And(f.n, g.n)), nil
}

// Or returns the disjunction of f and g.
func (e *Engine) Or(f, g Func) (Func, error) {
	if err := e.check(f, g); err != nil {
		return Func{}, err
	}
	return e.wrap(e.mgr.Or(f.n, g.n)), nil
}

// Not returns the negation of f.
func (e *Engine) Not(f Func) (Func, error) {
	if err := e.check(f); err != nil {
		return Func{}, err
	}
	return e.wrap(e.mgr.Not(f.n)), nil
}

// Makeset builds the quantification set (a conjunction of the named
// variables) used by Exist and AndExist.
func (e *Engine) Makeset(vars []int) (Func, error) {
	for _, v := range vars {
		if v < 0 || v >= e.varnum {
			return Func{}, ErrUnknownVariable
		}
	}
	return e.wrap(e.mgr.Makeset(vars)), nil
}

// Exist returns ∃ varset. f, the existential projection of f over the
// variables named by the varset returned from Makeset.
func (e *Engine) Exist(varset, f Func) (Func, error) {
	if err := e.check(varset, f); err != nil {
		return Func{}, err
	}
	return e.wrap(e.mgr.Exist(varset.n, f.n)), nil
}

// AndExist returns ∃ varset. (f ∧ g) in one fused operation — the relational
// product used pervasively by the attractor kernel. Computing
// And then Exist separately is correct but typically builds a much larger
// intermediate BDD; engines implement this as a single traversal.
func (e *Engine) AndExist(f, g, varset Func) (Func, error) {
	if err := e.check(f, g, varset); err != nil {
		return Func{}, err
	}
	return e.wrap(e.mgr.Relprod(f.n, g.n, varset.n)), nil
}

// NewPairing builds a substitution table mapping each from[i] to to[i]. Used
// to realize the arena's mapping_bis/inv_mapping_bis renamings.
func (e *Engine) NewPairing(from, to []int) (Pairing, error) {
	if len(from) != len(to) {
		return Pairing{}, fmt.Errorf("bddengine: pairing length mismatch (%d vars, %d images)", len(from), len(to))
	}
	p, err := e.mgr.Makepair(from, to)
	if err != nil {
		return Pairing{}, fmt.Errorf("bddengine: %w", err)
	}
	return Pairing{e: e, pair: p}, nil
}

// Let applies a substitution to f, renaming every variable in the pairing's
// domain to its image. This realizes the σ(f) operator.
func (e *Engine) Let(p Pairing, f Func) (Func, error) {
	if p.e != e || f.e != e {
		return Func{}, ErrMismatchedEngine
	}
	return e.wrap(e.mgr.Replace(f.n, p.pair)), nil
}

// AnySat returns one satisfying assignment of f restricted to vars, or
// ok==false if f is ⊥. Used by loaders to recover a concrete vertex index
// from its symbolic encoding and by diagnostics.
func (e *Engine) AnySat(f Func, vars []int) (assignment []bool, ok bool, err error) {
	if err := e.check(f); err != nil {
		return nil, false, err
	}
	if f.IsFalse() {
		return nil, false, nil
	}
	bits, satErr := e.mgr.OneSat(f.n, vars)
	if satErr != nil {
		return nil, false, fmt.Errorf("bddengine: %w", satErr)
	}
	return bits, true, nil
}

// Reorder triggers the engine's own variable-reordering heuristic. Callers
// never need to mandate a specific algorithm; it only requires that
// stored Func handles remain valid afterwards, which rudd guarantees
// because reordering only changes internal levels, not external handles.
func (e *Engine) Reorder() {
	e.mgr.Reorder(rudd.ReorderWin2ite)
}

// Varnum returns the number of variables declared on this engine.
func (e *Engine) Varnum() int { return e.varnum }
