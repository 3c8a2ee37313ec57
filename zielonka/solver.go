package zielonka

import (
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/parigo/pgame"
)

// Solver is a Zielonka / bounded-precision solver. The driver calls Run on
// the same Solver once per outer iteration; every Run call starts with a
// fresh memo cache and fresh per-vertex state, while the category counter
// and Iters keep counting across calls.
type Solver struct {
	// Zielonka selects classical Zielonka recursion (precision treated as
	// infinite, mode 3 throughout) instead of bounded precision.
	Zielonka bool
	// QuickPriority makes every frame rescan its vertex set for the
	// current maximum priority instead of trusting a precomputed value
	// decremented by one per level (SPEC_FULL.md §4.2, §6.2).
	QuickPriority bool
	// Memoize enables the (precision, vertex-set) -> strategy cache.
	Memoize bool

	// Iters counts frame invocations (memo hits are free and do not
	// count — scenario F relies on this to show memoization shrinks the
	// count, never changes the answer).
	Iters int

	g        *pgame.Game
	vtype    []int
	strategy []move
	degs     []int
	aqueue   []int
	nextCat  int
	memo     map[cacheKey][]move
}

// New constructs a Solver with the given flag combination. zielonkaFlag,
// quickPriority and memoize mirror the registry bitmask
// (SPEC_FULL.md §6.2); autoReduce is accepted for signature symmetry with
// the registry's flag bits but is a documented no-op (spec.md §9 Open
// Questions: auto_reduce's semantics are never exhibited in the source).
func New(zielonkaFlag, quickPriority, memoize, autoReduce bool) *Solver {
	_ = autoReduce
	return &Solver{
		Zielonka:      zielonkaFlag,
		QuickPriority: quickPriority,
		Memoize:       memoize,
	}
}

// Run solves every currently-enabled vertex of g (g.Disabled == false) and
// returns, for each such vertex, the winner and witness edge to hand to
// pgame.Game.Solve. It never mutates g itself — the caller (driver.Driver)
// is responsible for absorbing the verdict.
//
// Grounded on ExperimentalSolver::run in original_source/src/experimental.cpp:
// build the active vertex set, pick an initial precision of
// ceil(log2 N) for both players, and recurse with mode 3 (pure Zielonka)
// or mode 0 (bounded precision).
func (s *Solver) Run(g *pgame.Game) map[int]Verdict {
	s.g = g
	n := g.N()
	s.vtype = make([]int, n)
	s.strategy = make([]move, n)
	s.degs = make([]int, n)
	s.aqueue = make([]int, 0, n)
	for i := range s.degs {
		s.degs[i] = -1
	}
	if s.Memoize {
		s.memo = make(map[cacheKey][]move)
	}

	vset := make([]int, 0, n)
	for v := 0; v < n; v++ {
		if !g.Disabled[v] {
			vset = append(vset, v)
		}
	}

	cat := s.newCategory()
	for _, v := range vset {
		s.vtype[v] = cat
	}

	prec := 0
	for (1 << uint(prec)) < len(vset) {
		prec++
	}

	maxPrio := 0
	for _, v := range vset {
		if g.Priority[v] > maxPrio {
			maxPrio = g.Priority[v]
		}
	}

	mode := 0
	if s.Zielonka {
		mode = 3
	}
	mprio := maxPrio
	if s.QuickPriority {
		mprio = -1
	}

	s.run(vset, cat, [2]int{prec, prec}, mode, mprio)

	verdicts := make(map[int]Verdict, len(vset))
	for _, v := range vset {
		verdicts[v] = s.resolve(v)
	}
	return verdicts
}

// Verdict is a solver's final answer for one vertex: who wins, and — if
// the vertex's own owner wins — the witness edge to move to.
type Verdict struct {
	Winner   int
	Strategy int // pgame.NoStrategy if the vertex's owner lost
}

// resolve converts the solver-local draft for v into a Verdict, realizing
// moveWinAny into a concrete out-edge so nothing downstream ever sees the
// "any edge will do" sentinel (see doc.go).
func (s *Solver) resolve(v int) Verdict {
	m := s.strategy[v]
	if !m.winning() {
		return Verdict{Winner: 1 - s.g.Owner[v], Strategy: pgame.NoStrategy}
	}
	target := m.target
	if m.kind == moveWinAny {
		target = s.anyOutEdge(v)
	}
	return Verdict{Winner: s.g.Owner[v], Strategy: target}
}

// anyOutEdge picks an arbitrary out-edge of v that is still part of the
// active subgame, falling back to the first out-edge if none qualifies
// (v's own out-degree is guaranteed >= 1 by pgame.Game.Validate).
func (s *Solver) anyOutEdge(v int) int {
	for _, w := range s.g.Out[v] {
		if !s.g.Disabled[w] {
			return w
		}
	}
	return s.g.Out[v][0]
}

// newCategory allocates a fresh vtype tag, scoped to this Solver instance
// (SPEC_FULL.md §9: instance-local, not the source's process-wide counter).
func (s *Solver) newCategory() int {
	s.nextCat++
	return s.nextCat
}

// run solves the subgame vs per SPEC_FULL.md §4.2 / spec.md §4.2, mutating
// s.strategy and s.vtype for v in vs only.
func (s *Solver) run(vs []int, catBase int, precision [2]int, mode, mprio int) {
	key := cacheKey{}
	if s.Memoize {
		key = makeCacheKey(precision, vs)
		if cached, ok := s.memo[key]; ok {
			for i, v := range vs {
				s.strategy[v] = cached[i]
			}
			return
		}
	}
	s.Iters++

	if len(vs) == 0 {
		return
	}

	maxPrio := mprio
	if mprio < 0 {
		maxPrio = -1
		for _, v := range vs {
			if s.g.Priority[v] > maxPrio {
				maxPrio = s.g.Priority[v]
			}
		}
	}

	us := maxPrio & 1
	opp := 1 - us

	if mode != 3 && precision[us] <= 0 {
		for _, v := range vs {
			if s.g.Owner[v] == us {
				s.strategy[v] = losingMove
			} else {
				s.strategy[v] = winAnyMove
			}
		}
		return
	}

	catHi := s.newCategory()
	for _, v := range vs {
		if s.g.Priority[v] == maxPrio {
			s.vtype[v] = catHi
			s.strategy[v] = unknownMove
		}
	}

	s.attractor(vs, us, catBase, catHi)

	subPrecision := precision
	if mode == 0 || mode == 2 {
		subPrecision[opp]--
	}

	subgame := make([]int, 0, len(vs))
	for _, v := range vs {
		if s.vtype[v] == catBase {
			subgame = append(subgame, v)
		}
	}

	if mode != 3 && subPrecision[opp] == 0 {
		for _, v := range vs {
			if s.g.Owner[v] == us {
				s.strategy[v] = winAnyMove
			} else {
				s.strategy[v] = losingMove
			}
		}
	} else {
		subMode := 0
		if mode == 3 {
			subMode = 3
		}
		s.run(subgame, catBase, subPrecision, subMode, mprio-1)
	}

	subgameWon := true
	catOppWins := s.newCategory()
	for _, v := range subgame {
		opponentWon := false
		if s.g.Owner[v] == us {
			opponentWon = s.strategy[v].kind == moveLosing
		} else {
			opponentWon = s.strategy[v].winning()
		}
		if opponentWon {
			s.vtype[v] = catOppWins
			subgameWon = false
		} else {
			s.vtype[v] = catHi
		}
	}

	if subgameWon {
		if mode == 0 {
			s.run(vs, catHi, precision, 1, mprio)
			return
		}

		for _, v := range vs {
			if s.g.Priority[v] != maxPrio {
				continue
			}
			if s.g.Owner[v] == us {
				for _, w := range s.g.Out[v] {
					if s.vtype[w] == catHi {
						s.strategy[v] = toMove(w)
					}
				}
			} else {
				s.strategy[v] = losingMove
			}
		}

		if s.Memoize {
			s.storeMemo(key, vs)
		}
		return
	}

	s.attractor(vs, opp, catHi, catOppWins)

	vDoublePrime := make([]int, 0, len(vs))
	for _, v := range vs {
		if s.vtype[v] == catHi {
			vDoublePrime = append(vDoublePrime, v)
		}
	}

	nextMode := mode
	if mode == 1 {
		nextMode = 2
	}
	s.run(vDoublePrime, catHi, precision, nextMode, mprio)

	if s.Memoize {
		s.storeMemo(key, vs)
	}
}

// storeMemo records the just-computed strategies for vs under key.
func (s *Solver) storeMemo(key cacheKey, vs []int) {
	snapshot := make([]move, len(vs))
	for i, v := range vs {
		snapshot[i] = s.strategy[v]
	}
	s.memo[key] = snapshot
}

// cacheKey is the memo key: (precision pair, canonical vertex set). The
// vertex set must be canonicalized (sorted) before hashing or equivalent
// subgames reached via different worklist orders would miss the cache
// (spec.md §9).
type cacheKey struct {
	precision [2]int
	verts     string
}

func makeCacheKey(precision [2]int, vs []int) cacheKey {
	sorted := append([]int(nil), vs...)
	sort.Ints(sorted)
	var b strings.Builder
	for i, v := range sorted {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(v))
	}
	return cacheKey{precision: precision, verts: b.String()}
}
