package reduce

import "github.com/katalvlaran/parigo/pgame"

// SelfLoops scans every enabled vertex for a v->v edge. A winning self-loop
// (owner's parity matches the vertex's priority parity) solves v for its
// owner via that edge. A losing self-loop that is v's only out-edge solves
// v for the other player with no witness. A losing self-loop with other
// out-edges is simply deleted (both directions), and v is left for later
// reductions or the solver. Returns the number of self-loops handled
// (solved or deleted). Always flushes once, after the scan.
//
// Grounded on Oink::solveSelfloops, restyled to delete via a filtered
// rebuild of Out/In rather than in-place std::vector erase.
func SelfLoops(g *pgame.Game) int {
	count := 0
	for v := 0; v < g.N(); v++ {
		if g.Disabled[v] {
			continue
		}
		if !hasSelfLoop(g, v) {
			continue
		}
		count++

		if g.Owner[v] == g.Priority[v]&1 {
			g.Solve(v, g.Owner[v], v)
			continue
		}

		if len(g.Out[v]) == 1 {
			g.Solve(v, 1-g.Owner[v], pgame.NoStrategy)
			continue
		}

		removeSelfLoop(g, v)
	}
	g.Flush()
	return count
}

func hasSelfLoop(g *pgame.Game, v int) bool {
	for _, w := range g.Out[v] {
		if w == v {
			return true
		}
	}
	return false
}

func removeSelfLoop(g *pgame.Game, v int) {
	removed := 0
	out := g.Out[v][:0]
	for _, w := range g.Out[v] {
		if w == v {
			removed++
		} else {
			out = append(out, w)
		}
	}
	g.Out[v] = out

	in := g.In[v][:0]
	for _, w := range g.In[v] {
		if w != v {
			in = append(in, w)
		}
	}
	g.In[v] = in

	g.Outcount[v] -= removed
}
