package explicit

import "github.com/bits-and-blooms/bitset"

// Recursive solves the single-dimension parity game in a using Zielonka's
// algorithm, the adjacency-list counterpart of zielonka.Recursive: it
// attracts the player owning the maximal priority to
// the vertices of that priority, recurses on what remains, and if the
// opponent's share of that recursion is non-empty, attracts the opponent
// away and recurses once more.
func Recursive(a *Arena) (win0, win1 *bitset.BitSet) {
	if a.Alive.None() {
		return bitset.New(uint(a.NumVertices)), bitset.New(uint(a.NumVertices))
	}

	maxPriority, _ := a.MaxPriority(0)
	player := maxPriority % 2
	opponent := 1 - player

	u := bitset.New(uint(a.NumVertices))
	for i, e := a.Alive.NextSet(0); e; i, e = a.Alive.NextSet(i + 1) {
		if a.Priority[i][0] == maxPriority {
			u.Set(i)
		}
	}

	attr := Attractor(a, u, player)
	subA := a.Subarena(attr)
	w0A, w1A := Recursive(subA)
	playerRegion, opponentRegion := regionsFor(player, w0A, w1A)

	win0 = bitset.New(uint(a.NumVertices))
	win1 = bitset.New(uint(a.NumVertices))

	if opponentRegion.None() {
		playerWin := attr.Union(playerRegion)
		win0, win1 = setRegion(player, win0, win1, playerWin)
		return win0, win1
	}

	b := Attractor(a, opponentRegion, opponent)
	subB := a.Subarena(b)
	w0B, w1B := Recursive(subB)
	playerRegionB, opponentRegionB := regionsFor(player, w0B, w1B)

	win0, win1 = setRegion(player, win0, win1, playerRegionB)
	opponentWin := opponentRegionB.Union(b)
	win0, win1 = setRegion(opponent, win0, win1, opponentWin)
	return win0, win1
}

func regionsFor(player int, w0, w1 *bitset.BitSet) (playerRegion, opponentRegion *bitset.BitSet) {
	if player == 1 {
		return w1, w0
	}
	return w0, w1
}

func setRegion(player int, win0, win1, value *bitset.BitSet) (*bitset.BitSet, *bitset.BitSet) {
	if player == 1 {
		return win0, value
	}
	return value, win1
}
