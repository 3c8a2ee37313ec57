package zielonka

// attractor finds, within the subgame vs, every vertex from which player
// whose can force play into the initial catYes set while staying inside
// vs, relabeling them catYes and recording a witness edge.
//
// Precondition: for every v in vs, vtype[v] is catNo or catYes; vtype is
// untouched outside vs.
// Postcondition: every v in vs reachable by whose into catYes without
// leaving vs is relabeled catYes, with strategy[v] set to a successor
// edge when owner[v] == whose, or losingMove otherwise.
//
// Algorithm: a residual-degree worklist. A vertex needs degree 1 (one good
// edge suffices) if it belongs to whose, else the number of its
// currently-in-vs successors (all of them must be proven). Seeding the
// worklist with the initial catYes vertices and draining predecessors as
// their residual degree reaches zero reproduces
// original_source/src/experimental.cpp's zsolver::attractor exactly,
// restyled after the BFS worklist idiom shared by gridgraph's
// ConnectedComponents and flow.Dinic's level-graph BFS (dense indices,
// explicit queue, no recursion).
func (s *Solver) attractor(vs []int, whose, catNo, catYes int) {
	queue := s.aqueue[:0]

	for _, v := range vs {
		switch {
		case s.vtype[v] == catYes:
			queue = append(queue, v)
		case s.g.Owner[v] == whose:
			s.degs[v] = 1
		default:
			d := 0
			for _, w := range s.g.Out[v] {
				if s.vtype[w] == catNo || s.vtype[w] == catYes {
					d++
				}
			}
			s.degs[v] = d
		}
	}

	for i := 0; i < len(queue); i++ {
		v := queue[i]
		for _, u := range s.g.In[v] {
			s.degs[u]--
			if s.degs[u] == 0 {
				s.vtype[u] = catYes
				if s.g.Owner[u] == whose {
					s.strategy[u] = toMove(v)
				} else {
					s.strategy[u] = losingMove
				}
				queue = append(queue, u)
			}
		}
	}

	s.aqueue = queue[:0]

	// Reset the residual-degree entries we touched back to the sentinel so
	// a later attractor() call over a disjoint vertex set can't be fooled
	// by a stale decremented value left over from this one. Entries for
	// vertices never passed as vs stay at -1 forever and a decrement only
	// ever pushes them further negative, so they can never spuriously hit
	// zero (original_source/src/experimental.cpp line 83's cleanup loop).
	for _, v := range vs {
		s.degs[v] = -1
	}
}
