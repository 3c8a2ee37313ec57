package pgame

// NoStrategy is the ⊥ sentinel for Solution.Strategy: "this vertex's owner
// lost, there is no witness move". It is never a valid vertex id since
// vertex ids start at 0.
const NoStrategy = -1

// FlushedOutcount marks a vertex already absorbed by the attractor-closure
// flush in Outcount, distinguishing "already handled" from "zero edges
// remaining, about to be handled".
const FlushedOutcount = -1

// Game is a finite directed graph for a parity game: every vertex has a
// dense id in [0, N), an owner in {0, 1}, a non-negative priority, and at
// least one outgoing edge once Validate succeeds. Out and In are ordered
// slices, not sets — the attractor worklist and the SCC reduction rely on
// iteration order being deterministic.
//
// Game also carries the mutable Solution: Solved, Winner, Strategy grow
// monotonically as the driver and reductions solve vertices, plus the
// Disabled subgame mask and the Outcount degree cursor the attractor-closure
// flush consumes.
type Game struct {
	n int

	Owner    []int
	Priority []int
	Out      [][]int
	In       [][]int

	Solved   []bool
	Winner   []int
	Strategy []int

	Disabled []bool
	Outcount []int
}

// NewGame allocates a Game for n vertices. Owners default to 0, priorities
// to 0, and every vertex starts with no edges and no solution. Callers must
// add edges (AddEdge or WithEdges) and set owners/priorities (WithOwners,
// WithPriorities), then call Validate before handing the Game to a driver.
func NewGame(n int, opts ...GameOption) (*Game, error) {
	g := &Game{
		n:        n,
		Owner:    make([]int, n),
		Priority: make([]int, n),
		Out:      make([][]int, n),
		In:       make([][]int, n),
		Solved:   make([]bool, n),
		Winner:   make([]int, n),
		Strategy: make([]int, n),
		Disabled: make([]bool, n),
		Outcount: make([]int, n),
	}
	for i := range g.Strategy {
		g.Strategy[i] = NoStrategy
	}
	for _, opt := range opts {
		if err := opt(g); err != nil {
			return nil, err
		}
	}
	for v := 0; v < n; v++ {
		g.Outcount[v] = len(g.Out[v])
	}
	return g, nil
}

// N returns the number of vertices in the game.
func (g *Game) N() int { return g.n }

// GameOption configures a Game during NewGame.
type GameOption func(*Game) error

// WithOwners sets Owner[i] = owners[i] for every i. len(owners) must equal
// the Game's vertex count.
func WithOwners(owners []int) GameOption {
	return func(g *Game) error {
		if len(owners) != g.n {
			return ErrUnknownVertex
		}
		for v, o := range owners {
			if o != 0 && o != 1 {
				return ErrInvalidOwner
			}
			g.Owner[v] = o
		}
		return nil
	}
}

// WithPriorities sets Priority[i] = priorities[i] for every i. len(priorities)
// must equal the Game's vertex count.
func WithPriorities(priorities []int) GameOption {
	return func(g *Game) error {
		if len(priorities) != g.n {
			return ErrUnknownVertex
		}
		for v, p := range priorities {
			if p < 0 {
				return ErrNegativePriority
			}
			g.Priority[v] = p
		}
		return nil
	}
}

// WithEdges adds every (from, to) pair as a directed edge, in order.
func WithEdges(edges [][2]int) GameOption {
	return func(g *Game) error {
		for _, e := range edges {
			if err := g.AddEdge(e[0], e[1]); err != nil {
				return err
			}
		}
		return nil
	}
}

// AddEdge adds a directed edge from -> to. Both endpoints must be valid
// vertex ids. Parallel edges are permitted (the source models a multigraph
// implicitly: nothing in the solver requires edge uniqueness).
func (g *Game) AddEdge(from, to int) error {
	if from < 0 || from >= g.n || to < 0 || to >= g.n {
		return ErrUnknownVertex
	}
	g.Out[from] = append(g.Out[from], to)
	g.In[to] = append(g.In[to], from)
	g.Outcount[from]++
	return nil
}

// Validate checks the invariants a parity game must satisfy before solving:
// every owner in {0,1}, every priority >= 0, and — the one checked last,
// since it is the "input rejection" spec.md §7 singles out — every vertex
// has at least one outgoing edge.
func (g *Game) Validate() error {
	for v := 0; v < g.n; v++ {
		if g.Owner[v] != 0 && g.Owner[v] != 1 {
			return ErrInvalidOwner
		}
		if g.Priority[v] < 0 {
			return ErrNegativePriority
		}
	}
	for v := 0; v < g.n; v++ {
		if len(g.Out[v]) == 0 {
			return ErrNoOutgoingEdges
		}
	}
	return nil
}
