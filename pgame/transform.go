package pgame

import "sort"

// Renumber remaps priorities to the smallest non-negative values that
// preserve, for every pair of vertices, their relative order and whether
// they share a priority, while keeping each new priority's parity equal to
// its original priority's parity (an even priority never becomes odd).
// Because parity is kept, the new values can have gaps (3, 7, 10 become
// 1, 3, 4). Returns the number of distinct priorities after remapping.
//
// The driver treats this transform as opaque (spec.md §6); its exact
// algorithm is a supplement since original_source/ ships oink.cpp and
// experimental.cpp but not game.cpp, where the real Renumber/Compress live.
func (g *Game) Renumber() int {
	distinct := g.distinctPriorities()
	if len(distinct) == 0 {
		return 0
	}

	mapping := make(map[int]int, len(distinct))
	next := distinct[0] % 2
	for i, p := range distinct {
		if i > 0 && p%2 != next%2 {
			next++
		}
		mapping[p] = next
		next++
	}

	for v, p := range g.Priority {
		g.Priority[v] = mapping[p]
	}
	return len(distinct)
}

// Compress is Renumber's cheaper cousin: consecutive distinct priorities of
// the same parity (no opposite-parity priority between them in sorted
// order) collapse onto a single output priority, since they are
// indistinguishable for the parity condition — only the highest priority
// seen infinitely often, and its parity, ever matters. Returns the number
// of distinct priorities after compression.
func (g *Game) Compress() int {
	distinct := g.distinctPriorities()
	if len(distinct) == 0 {
		return 0
	}

	mapping := make(map[int]int, len(distinct))
	out := distinct[0] % 2
	mapping[distinct[0]] = out
	for i := 1; i < len(distinct); i++ {
		p, prev := distinct[i], distinct[i-1]
		if p%2 != prev%2 {
			out++
		}
		mapping[p] = out
	}

	for v, p := range g.Priority {
		g.Priority[v] = mapping[p]
	}
	return out + 1 - distinct[0]%2
}

// Inflate is the dual of Compress: it spreads priorities out so that every
// distinct original priority level occupies two output slots, one even and
// one odd, ensuring a fresh vertex can always be given a priority of either
// parity strictly between two existing levels. Each vertex keeps its own
// parity's slot at its level. Returns the number of output slots, twice the
// number of distinct priorities; the number of distinct priorities itself
// is unchanged.
func (g *Game) Inflate() int {
	distinct := g.distinctPriorities()
	if len(distinct) == 0 {
		return 0
	}

	evenOf := make(map[int]int, len(distinct))
	oddOf := make(map[int]int, len(distinct))
	for i, p := range distinct {
		evenOf[p] = 2 * i
		oddOf[p] = 2*i + 1
	}

	for v, p := range g.Priority {
		if g.Priority[v]%2 == 0 {
			g.Priority[v] = evenOf[p]
		} else {
			g.Priority[v] = oddOf[p]
		}
	}
	return 2 * len(distinct)
}

// distinctPriorities returns the sorted, de-duplicated priorities present
// among the Game's vertices.
func (g *Game) distinctPriorities() []int {
	seen := make(map[int]struct{})
	for _, p := range g.Priority {
		seen[p] = struct{}{}
	}
	distinct := make([]int, 0, len(seen))
	for p := range seen {
		distinct = append(distinct, p)
	}
	sort.Ints(distinct)
	return distinct
}
