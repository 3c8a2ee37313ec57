package reduce

import "github.com/katalvlaran/parigo/pgame"

// SingleParity declares player p the winner of every enabled vertex when
// every enabled vertex's priority shares parity p. A p-owned vertex is
// solved with its first enabled out-edge as witness; the other player's
// vertices are solved with no witness. Returns true iff the shortcut
// applied (and the game was therefore fully solved by this call).
//
// Grounded on Oink::solveSingleParity: a single pass determines whether a
// parity is uniform, then a second pass solves every vertex against it.
func SingleParity(g *pgame.Game) bool {
	parity := -1
	for v := 0; v < g.N(); v++ {
		if g.Disabled[v] {
			continue
		}
		p := g.Priority[v] & 1
		if parity == -1 {
			parity = p
		} else if parity != p {
			return false
		}
	}
	if parity != 0 && parity != 1 {
		return false // every vertex already disabled
	}

	// Solve disables each vertex as it goes, so test enabledness against the
	// mask as it was before this pass.
	disabled := append([]bool(nil), g.Disabled...)
	for v := 0; v < g.N(); v++ {
		if disabled[v] {
			continue
		}
		if g.Owner[v] == parity {
			strategy := pgame.NoStrategy
			for _, w := range g.Out[v] {
				if !disabled[w] {
					strategy = w
					break
				}
			}
			g.Solve(v, parity, strategy)
		} else {
			g.Solve(v, parity, pgame.NoStrategy)
		}
	}
	g.Flush()
	return true
}
