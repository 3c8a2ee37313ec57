package driver

import "github.com/katalvlaran/parigo/pgame"

// bottomSCC finds one terminal strongly-connected component of the
// subgraph induced by g's currently-enabled vertices (those with
// disabled[v] == false) and returns its members.
//
// Implemented as an iterative Tarjan SCC restricted to enabled vertices;
// Tarjan's algorithm emits SCCs in reverse topological order of the
// condensation graph, so the first SCC it completes has no edge leaving it
// to a different, not-yet-emitted SCC — exactly the "bottom" (sink) SCC
// spec.md §4.4 step 2b asks the driver to optionally restrict to.
//
// Restyled as an explicit-stack traversal in the idiom of
// reduce.TrivialCycles and gridgraph.ConnectedComponents rather than
// recursive, since the source's own SCC routines are iterative.
func bottomSCC(g *pgame.Game, disabled []bool) []int {
	n := g.N()
	index := make([]int, n)
	lowlink := make([]int, n)
	onStack := make([]bool, n)
	for i := range index {
		index[i] = -1
	}

	var tarjanStack []int
	var callStack []frame
	nextIndex := 0
	var found []int

	for start := 0; start < n; start++ {
		if disabled[start] || index[start] != -1 {
			continue
		}
		callStack = append(callStack, frame{v: start, i: 0})

		for len(callStack) > 0 && found == nil {
			top := &callStack[len(callStack)-1]
			v := top.v

			if top.i == 0 {
				index[v] = nextIndex
				lowlink[v] = nextIndex
				nextIndex++
				tarjanStack = append(tarjanStack, v)
				onStack[v] = true
			}

			recursed := false
			for ; top.i < len(g.Out[v]); top.i++ {
				w := g.Out[v][top.i]
				if disabled[w] {
					continue
				}
				if index[w] == -1 {
					top.i++
					callStack = append(callStack, frame{v: w, i: 0})
					recursed = true
					break
				}
				if onStack[w] && lowlink[w] < lowlink[v] {
					lowlink[v] = lowlink[w]
				}
			}
			if recursed {
				continue
			}

			callStack = callStack[:len(callStack)-1]
			if len(callStack) > 0 {
				parent := &callStack[len(callStack)-1]
				if lowlink[v] < lowlink[parent.v] {
					lowlink[parent.v] = lowlink[v]
				}
			}

			if lowlink[v] == index[v] {
				var scc []int
				for {
					w := tarjanStack[len(tarjanStack)-1]
					tarjanStack = tarjanStack[:len(tarjanStack)-1]
					onStack[w] = false
					scc = append(scc, w)
					if w == v {
						break
					}
				}
				found = scc
				break
			}
		}
		if found != nil {
			break
		}
	}

	return found
}

type frame struct {
	v int
	i int
}
