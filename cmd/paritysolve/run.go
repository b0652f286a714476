package main

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"

	"github.com/bits-and-blooms/bitset"
	"github.com/vparity/gpsolve/bddengine"
	"github.com/vparity/gpsolve/explicit"
	"github.com/vparity/gpsolve/gameconfig"
	"github.com/vparity/gpsolve/gparity"
	"github.com/vparity/gpsolve/pgformat"
	"github.com/vparity/gpsolve/symbolic"
	"github.com/vparity/gpsolve/vizexport"
	"github.com/vparity/gpsolve/zielonka"
)

// run loads the arena named by cfg, solves it and reports whether player 0
// realizes it from the arena's initial vertex.
func run(cfg *gameconfig.Config) (bool, error) {
	switch cfg.Input.Format {
	case gameconfig.FormatHOAProduct:
		return runHOA(cfg)
	default:
		return runPGSolver(cfg)
	}
}

func runPGSolver(cfg *gameconfig.Config) (bool, error) {
	f, err := os.Open(cfg.Input.Path)
	if err != nil {
		return false, fmt.Errorf("opening %s: %w", cfg.Input.Path, err)
	}
	defer f.Close()

	switch cfg.Backend {
	case gameconfig.BackendExplicit:
		if cfg.Input.Format != gameconfig.FormatPGSolver {
			return false, fmt.Errorf("the explicit backend only reads pgsolver-format input, not %s", cfg.Input.Format)
		}
		if cfg.Algorithm != gameconfig.AlgoZielonka {
			return false, fmt.Errorf("the explicit backend only implements plain zielonka recursion, not %s", cfg.Algorithm)
		}
		a, err := pgformat.LoadPGSolverExplicit(f)
		if err != nil {
			return false, err
		}
		win0, _ := explicit.Recursive(a)
		if cfg.Verbose {
			slog.Info("loaded explicit arena", "vertices", a.NumVertices)
		}
		if cfg.Visualization != nil {
			if err := exportExplicit(a, win0, cfg.Visualization); err != nil {
				return false, err
			}
		}
		return win0.Test(0), nil
	default:
		var a *symbolic.Arena
		if cfg.Input.Format == gameconfig.FormatGeneralPGS {
			a, err = pgformat.LoadGeneralizedPGSolver(f)
		} else {
			a, err = pgformat.LoadPGSolver(f)
		}
		if err != nil {
			return false, err
		}
		if err := a.Validate(); err != nil {
			return false, fmt.Errorf("loaded arena fails validation: %w", err)
		}
		init, err := zeroVertexCube(a)
		if err != nil {
			return false, err
		}
		return solveAndReport(cfg, a, init)
	}
}

// runHOA loads one or two HOA automata, optionally combines them with
// Product and compiles the result into a turn-based realizability game via
// BuildGame.
func runHOA(cfg *gameconfig.Config) (bool, error) {
	if cfg.Backend == gameconfig.BackendExplicit {
		return false, fmt.Errorf("the explicit backend does not support hoa-product input")
	}

	primary, err := os.ReadFile(cfg.Input.Path)
	if err != nil {
		return false, fmt.Errorf("reading %s: %w", cfg.Input.Path, err)
	}
	numStates1, apNames1, err := pgformat.PeekHOAHeader(bytes.NewReader(primary))
	if err != nil {
		return false, fmt.Errorf("reading HOA header from %s: %w", cfg.Input.Path, err)
	}

	var secondary []byte
	numStates2, apNames2 := 0, []string(nil)
	if cfg.Input.ProductWith != "" {
		secondary, err = os.ReadFile(cfg.Input.ProductWith)
		if err != nil {
			return false, fmt.Errorf("reading %s: %w", cfg.Input.ProductWith, err)
		}
		numStates2, apNames2, err = pgformat.PeekHOAHeader(bytes.NewReader(secondary))
		if err != nil {
			return false, fmt.Errorf("reading HOA header from %s: %w", cfg.Input.ProductWith, err)
		}
	}

	apIndex, nextVar := map[string]int{}, 0
	assignAP := func(names []string) {
		for _, n := range names {
			if _, ok := apIndex[n]; !ok {
				apIndex[n] = nextVar
				nextVar++
			}
		}
	}

	digitsFor := func(n int) int {
		d := 0
		for (1 << d) < n {
			d++
		}
		if d == 0 {
			d = 1
		}
		return d
	}
	digits1 := digitsFor(numStates1)
	base1 := 0
	nextVar = 2 * digits1

	base2 := 0
	digits2 := 0
	if secondary != nil {
		digits2 = digitsFor(numStates2)
		base2 = nextVar
		nextVar += 2 * digits2
	}

	assignAP(apNames1)
	assignAP(apNames2)
	turnVar := nextVar
	turnVarBis := nextVar + 1

	engine, err := bddengine.New(turnVarBis + 1)
	if err != nil {
		return false, err
	}

	dpa1, err := pgformat.LoadHOA(bytes.NewReader(primary), engine, base1, apIndex)
	if err != nil {
		return false, fmt.Errorf("parsing %s: %w", cfg.Input.Path, err)
	}
	dpa := dpa1
	if secondary != nil {
		dpa2, err := pgformat.LoadHOA(bytes.NewReader(secondary), engine, base2, apIndex)
		if err != nil {
			return false, fmt.Errorf("parsing %s: %w", cfg.Input.ProductWith, err)
		}
		dpa, err = dpa1.Product(dpa2)
		if err != nil {
			return false, err
		}
	}

	arena, init, err := dpa.BuildGame(cfg.Input.InputProps, cfg.Input.OutputProps, turnVar, turnVarBis)
	if err != nil {
		return false, err
	}
	if err := arena.Validate(); err != nil {
		return false, fmt.Errorf("built game fails validation: %w", err)
	}
	restricted, err := arena.RestrictToReachable(init, true)
	if err != nil {
		return false, err
	}
	if cfg.Verbose {
		slog.Info("built game arena", "automaton_states", dpa.NumStates, "bdd_variables", engine.Varnum())
	}
	return solveAndReport(cfg, restricted, init)
}

// solveAndReport runs the configured algorithm on a (already validated)
// symbolic arena and decides realizability as init ⊆ win0.
func solveAndReport(cfg *gameconfig.Config, a *symbolic.Arena, init bddengine.Func) (bool, error) {
	if cfg.Verbose {
		slog.Info("solving", "algorithm", cfg.Algorithm, "backend", cfg.Backend)
	}
	win0, win1, err := solveSymbolic(cfg, a)
	if err != nil {
		return false, err
	}
	if cfg.Verbose {
		slog.Info("solved", "win0_empty", win0.IsFalse(), "win1_empty", win1.IsFalse())
	}
	if cfg.Visualization != nil {
		if err := exportSymbolic(a, win0, win1, cfg.Visualization); err != nil {
			return false, err
		}
	}
	overlapWin1, err := a.Engine.And(init, win1)
	if err != nil {
		return false, err
	}
	return overlapWin1.IsFalse(), nil
}

func solveSymbolic(cfg *gameconfig.Config, a *symbolic.Arena) (win0, win1 bddengine.Func, err error) {
	switch cfg.Algorithm {
	case gameconfig.AlgoZielonka:
		return zielonka.Recursive(a)
	case gameconfig.AlgoZielonkaPartial:
		return zielonka.ZielonkaWithPartialSolver(a)
	case gameconfig.AlgoGeneralizedParity:
		return gparity.GeneralizedRecursive(a)
	case gameconfig.AlgoGeneralizedPartial:
		return gparity.GeneralizedRecursiveWithPartialSolver(a)
	case gameconfig.AlgoGeneralizedPartialMultiple:
		return gparity.GeneralizedRecursiveWithPartialSolverMultipleCalls(a)
	default:
		return bddengine.Func{}, bddengine.Func{}, fmt.Errorf("unknown algorithm %q", cfg.Algorithm)
	}
}

func zeroVertexCube(a *symbolic.Arena) (bddengine.Func, error) {
	f := a.Engine.True()
	for _, v := range a.Vars {
		lit, err := a.Engine.NIthvar(v)
		if err != nil {
			return bddengine.Func{}, err
		}
		f, err = a.Engine.And(f, lit)
		if err != nil {
			return bddengine.Func{}, err
		}
	}
	return f, nil
}

func exportExplicit(a *explicit.Arena, win0 *bitset.BitSet, opts *gameconfig.VisualizationConfig) error {
	g := &vizexport.Graph{}
	for i, e := a.Alive.NextSet(0); e; i, e = a.Alive.NextSet(i + 1) {
		winner := vizexport.WinnerPlayer1
		if win0.Test(i) {
			winner = vizexport.WinnerPlayer0
		}
		g.Vertices = append(g.Vertices, vizexport.Vertex{
			ID:         int(i),
			Owner:      a.Owner[i],
			Priorities: a.Priority[i],
			Winner:     winner,
		})
		for _, s := range a.Succ[i] {
			if a.Alive.Test(uint(s)) {
				g.Edges = append(g.Edges, [2]int{int(i), s})
			}
		}
	}
	return vizexport.SaveToFile(g, opts.Path, vizOptions(opts))
}

func vizOptions(cfg *gameconfig.VisualizationConfig) vizexport.Options {
	opts := vizexport.DefaultOptions()
	if cfg.Width > 0 {
		opts.Width = cfg.Width
	}
	if cfg.Height > 0 {
		opts.Height = cfg.Height
	}
	opts.ShowLabels = cfg.ShowLabels
	return opts
}
