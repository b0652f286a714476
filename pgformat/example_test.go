package pgformat_test

import (
	"fmt"
	"strings"

	"github.com/vparity/gpsolve/pgformat"
	"github.com/vparity/gpsolve/zielonka"
)

// ExampleLoadPGSolver loads a two-vertex PGSolver game — a self-looping
// even-priority vertex owned by player 0 and a self-looping odd-priority
// vertex owned by player 1 — and confirms each player wins their own vertex.
func ExampleLoadPGSolver() {
	const game = `parity 1;
0 0 0 0;
1 1 1 1;
`
	a, err := pgformat.LoadPGSolver(strings.NewReader(game))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if err := a.Validate(); err != nil {
		fmt.Println("error:", err)
		return
	}

	win0, win1, err := zielonka.Recursive(a)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("player 0 wins something:", !win0.IsFalse())
	fmt.Println("player 1 wins something:", !win1.IsFalse())
	// Output:
	// player 0 wins something: true
	// player 1 wins something: true
}
