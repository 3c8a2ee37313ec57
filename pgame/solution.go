package pgame

// Solve records vertex v as won by player win, with witness strategy edge
// strategy. strategy is only meaningful when win == Owner[v] (the winner
// actually owns the choice); otherwise the stored Strategy is NoStrategy,
// regardless of what the caller passed — matching spec.md §3's "meaningful
// iff solved[v] and owner[v] == winner[v]".
//
// Solve also disables v (removes it from the active subgame) so reductions
// and the driver never reconsider an already-solved vertex. Calling Solve
// twice on the same vertex is a broken invariant: the source asserts this
// (Oink::solve's "if (game->solved[node] or disabled[node]) LOGIC_ERROR"),
// so this panics with a *LogicError rather than silently overwriting.
func (g *Game) Solve(v, win, strategy int) {
	if g.Solved[v] || g.Disabled[v] {
		panicLogic("Game.Solve", "vertex %d solved twice", v)
	}
	g.Solved[v] = true
	g.Winner[v] = win
	if win == g.Owner[v] {
		g.Strategy[v] = strategy
	} else {
		g.Strategy[v] = NoStrategy
	}
	g.Disabled[v] = true
}

// SyncDisabled sets Disabled[v] = Solved[v] for every vertex, the mask
// invariant the driver restores at the top of every outer iteration
// (spec.md §8 invariant 5).
func (g *Game) SyncDisabled() {
	copy(g.Disabled, g.Solved)
}

// GameSolved reports whether every vertex has been solved.
func (g *Game) GameSolved() bool {
	for _, s := range g.Solved {
		if !s {
			return false
		}
	}
	return true
}

// CountUnsolved returns the number of vertices not yet solved.
func (g *Game) CountUnsolved() int {
	n := 0
	for _, s := range g.Solved {
		if !s {
			n++
		}
	}
	return n
}

// Flush propagates the consequences of every vertex solved since the last
// Flush call: a not-yet-solved predecessor owned by the winner is
// immediately solved toward the just-solved vertex (an attractor move of
// one step); a not-yet-solved predecessor owned by the loser is solved only
// once every one of its out-edges has been accounted for (Outcount[v]
// reaches zero) — it had no remaining escape.
//
// Grounded on Oink::flush (original_source/src/oink.cpp): a worklist seeded
// with every vertex newly marked Solved since the previous Flush, fed by
// In (the original, unfiltered predecessor list — flush never looks at
// Disabled to decide who to visit, only to decide whether to act on them).
func (g *Game) Flush() {
	queue := make([]int, 0, g.n)
	for v := 0; v < g.n; v++ {
		if g.Solved[v] && g.Outcount[v] != FlushedOutcount {
			queue = append(queue, v)
		}
	}

	for i := 0; i < len(queue); i++ {
		v := queue[i]
		if g.Outcount[v] == FlushedOutcount {
			continue
		}
		g.Outcount[v] = FlushedOutcount
		winner := g.Winner[v]

		for _, from := range g.In[v] {
			if g.Solved[from] {
				continue
			}
			if g.Owner[from] == winner {
				g.Strategy[from] = v
				g.Solved[from] = true
				g.Winner[from] = winner
				g.Disabled[from] = true
				queue = append(queue, from)
			} else {
				g.Outcount[from]--
				if g.Outcount[from] == 0 {
					g.Strategy[from] = NoStrategy
					g.Solved[from] = true
					g.Winner[from] = winner
					g.Disabled[from] = true
					queue = append(queue, from)
				}
			}
		}
	}
}

// Edgecount returns the total number of directed edges in the game.
func (g *Game) Edgecount() int {
	n := 0
	for _, out := range g.Out {
		n += len(out)
	}
	return n
}
