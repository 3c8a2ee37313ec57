package reduce

import "github.com/katalvlaran/parigo/pgame"

// Tarjan "done" sentinels, one per vertex, valid across the whole
// TrivialCycles call (not just one root's search).
const (
	doneSkip      = -2 // proven not winner-controlled at any priority; never revisit
	doneUnvisited = -1
)

// TrivialCycles finds every winner-controlled strongly-connected component
// eagerly solvable by a Tarjan-style search, for each candidate "root
// priority" in descending vertex-index order. Returns the number accepted.
//
// Grounded on Oink::solveTrivialCycles (original_source/src/oink.cpp),
// restyled with an explicit stack instead of recursion (the source is
// already iterative) in the style of dfs.DetectCycles and
// gridgraph.ConnectedComponents's dense queue/stack traversals.
func TrivialCycles(g *pgame.Game) int {
	n := g.N()
	done := make([]int, n)
	low := make([]int64, n)
	for v := 0; v < n; v++ {
		if g.Disabled[v] {
			done[v] = doneSkip
		} else {
			done[v] = doneUnvisited
		}
	}

	var res, scc, stack, queue []int
	var pre int64
	count := 0

	for i := n - 1; i >= 0; i-- {
		if g.Disabled[i] {
			continue
		}
		if done[i] == doneSkip {
			continue
		}

		pr := g.Priority[i]
		pl := pr & 1

		if g.Owner[i] != pl {
			done[i] = doneSkip
			continue
		}
		if done[i] == pr {
			continue
		}

		bot := pre
		stack = append(stack[:0], i)
		res = res[:0]

		for len(stack) > 0 {
			idx := stack[len(stack)-1]

			if low[idx] <= bot {
				pre++
				if pre < 0 {
					pgame.PanicLogic("reduce.TrivialCycles", "Tarjan pre-order counter overflowed")
				}
				low[idx] = pre
				res = append(res, idx)
			}

			min := low[idx]
			pushed := false
			for _, to := range g.Out[idx] {
				if g.Disabled[i] { // preserves the source's root-index test, not idx/to
					continue
				}
				if to > i || done[to] == doneSkip || done[to] == pr || g.Owner[to] != pl {
					continue
				}
				if low[to] <= bot {
					stack = append(stack, to)
					pushed = true
					break
				}
				if low[to] < min {
					min = low[to]
				}
			}
			if pushed {
				continue
			}

			if min < low[idx] {
				low[idx] = min
				stack = stack[:len(stack)-1]
				continue
			}

			// idx is the root of an SCC: pop it off res into scc.
			scc = scc[:0]
			maxPr, maxPrPl, maxPrN := -1, -1, -1
			for {
				v := res[len(res)-1]
				res = res[:len(res)-1]
				scc = append(scc, v)
				done[v] = pr
				if low[v] != min {
					low[v] = min
				}
				d := g.Priority[v]
				if d > maxPr {
					maxPr = d
				}
				if d&1 == pl && d > maxPrPl {
					maxPrPl = d
					maxPrN = v
				}
				if v == idx {
					break
				}
			}

			if len(scc) == 1 && !hasSelfLoop(g, idx) {
				done[idx] = doneSkip
				stack = stack[:len(stack)-1]
				continue
			}

			if maxPr&1 != pl {
				for _, v := range scc {
					if g.Priority[v] > maxPrPl {
						done[v] = doneSkip
					}
				}
				stack = stack[:len(stack)-1]
				continue
			}

			queue = append(queue[:0], maxPrN)
			for qi := 0; qi < len(queue); qi++ {
				cur := queue[qi]
				for _, from := range g.In[cur] {
					if low[from] != min || g.Disabled[from] {
						continue
					}
					g.Solve(from, pl, cur)
					queue = append(queue, from)
				}
			}
			g.Flush()

			stack = stack[:0]
			res = res[:0]
			scc = scc[:0]
			count++
		}
	}
	return count
}
