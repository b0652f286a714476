package zielonka

import (
	"github.com/vparity/gpsolve/attractor"
	"github.com/vparity/gpsolve/bddengine"
	"github.com/vparity/gpsolve/symbolic"
)

// Recursive solves the single-dimension parity game in a using Zielonka's
// algorithm: it attracts the player owning the maximal priority
// to the vertices of that priority, recurses on what remains, and if the
// opponent's share of that recursion is non-empty, attracts the opponent
// away and recurses once more.
func Recursive(a *symbolic.Arena) (win0, win1 bddengine.Func, err error) {
	e := a.Engine

	empty, err := a.IsEmpty()
	if err != nil {
		return bddengine.Func{}, bddengine.Func{}, err
	}
	if empty {
		return e.False(), e.False(), nil
	}

	maxPriority, _ := a.MaxPriority(0)
	player := maxPriority % 2
	opponent := 1 - player

	u := a.PriorityFunc(0, maxPriority)
	attr, err := attractor.Attractor(a, u, player)
	if err != nil {
		return bddengine.Func{}, bddengine.Func{}, err
	}

	notAttr, err := e.Not(attr)
	if err != nil {
		return bddengine.Func{}, bddengine.Func{}, err
	}
	subA, err := a.Subarena(notAttr)
	if err != nil {
		return bddengine.Func{}, bddengine.Func{}, err
	}

	w0A, w1A, err := Recursive(subA)
	if err != nil {
		return bddengine.Func{}, bddengine.Func{}, err
	}

	playerRegion, opponentRegion := regionsFor(player, w0A, w1A)

	win0, win1 = e.False(), e.False()
	if opponentRegion.IsFalse() {
		playerWin, err := e.Or(attr, playerRegion)
		if err != nil {
			return bddengine.Func{}, bddengine.Func{}, err
		}
		win0, win1 = setRegion(player, win0, win1, playerWin)
		return win0, win1, nil
	}

	b, err := attractor.Attractor(a, opponentRegion, opponent)
	if err != nil {
		return bddengine.Func{}, bddengine.Func{}, err
	}
	notB, err := e.Not(b)
	if err != nil {
		return bddengine.Func{}, bddengine.Func{}, err
	}
	subB, err := a.Subarena(notB)
	if err != nil {
		return bddengine.Func{}, bddengine.Func{}, err
	}

	w0B, w1B, err := Recursive(subB)
	if err != nil {
		return bddengine.Func{}, bddengine.Func{}, err
	}
	playerRegionB, opponentRegionB := regionsFor(player, w0B, w1B)

	win0, win1 = setRegion(player, win0, win1, playerRegionB)
	opponentWin, err := e.Or(opponentRegionB, b)
	if err != nil {
		return bddengine.Func{}, bddengine.Func{}, err
	}
	win0, win1 = setRegion(opponent, win0, win1, opponentWin)
	return win0, win1, nil
}

// regionsFor splits (w0, w1) into (player's region, opponent's region).
func regionsFor(player int, w0, w1 bddengine.Func) (playerRegion, opponentRegion bddengine.Func) {
	if player == 1 {
		return w1, w0
	}
	return w0, w1
}

// setRegion writes value into whichever of (win0, win1) belongs to player,
// returning the updated pair.
func setRegion(player int, win0, win1, value bddengine.Func) (bddengine.Func, bddengine.Func) {
	if player == 1 {
		return win0, value
	}
	return value, win1
}
