package reduce_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/parigo/pgame"
	"github.com/katalvlaran/parigo/reduce"
)

func newGame(t *testing.T, owners, priorities []int, edges [][2]int) *pgame.Game {
	t.Helper()
	g, err := pgame.NewGame(len(owners), pgame.WithOwners(owners), pgame.WithPriorities(priorities), pgame.WithEdges(edges))
	require.NoError(t, err)
	require.NoError(t, g.Validate())
	return g
}

func TestSingleParity_AllEven(t *testing.T) {
	g := newGame(t, []int{0, 1, 0}, []int{2, 4, 0}, [][2]int{{0, 1}, {1, 2}, {2, 0}})
	applied := reduce.SingleParity(g)
	require.True(t, applied)
	require.True(t, g.GameSolved())
	require.Equal(t, 0, g.Winner[0])
	require.Equal(t, 0, g.Winner[1])
	require.Equal(t, 1, g.Strategy[0])
	require.Equal(t, pgame.NoStrategy, g.Strategy[1])
}

func TestSingleParity_MixedParityNotApplied(t *testing.T) {
	g := newGame(t, []int{0, 1}, []int{2, 1}, [][2]int{{0, 1}, {1, 0}})
	applied := reduce.SingleParity(g)
	require.False(t, applied)
	require.False(t, g.Solved[0])
	require.False(t, g.Solved[1])
}

func TestSelfLoops_WinningLoop(t *testing.T) {
	g := newGame(t, []int{0}, []int{0}, [][2]int{{0, 0}})
	count := reduce.SelfLoops(g)
	require.Equal(t, 1, count)
	require.True(t, g.Solved[0])
	require.Equal(t, 0, g.Winner[0])
	require.Equal(t, 0, g.Strategy[0])
}

func TestSelfLoops_LosingSoleEdge(t *testing.T) {
	g := newGame(t, []int{0}, []int{1}, [][2]int{{0, 0}})
	count := reduce.SelfLoops(g)
	require.Equal(t, 1, count)
	require.True(t, g.Solved[0])
	require.Equal(t, 1, g.Winner[0])
	require.Equal(t, pgame.NoStrategy, g.Strategy[0])
}

func TestSelfLoops_LosingEdgeWithEscapeGetsDeletedThenClosedByFlush(t *testing.T) {
	// Vertex 0 (owner 0, prio 1) has a losing self-loop plus an escape edge
	// to vertex 1, which has its own winning self-loop for player 1. The
	// self-loop on 0 is deleted rather than solved directly, but 0's only
	// remaining move leads into 1's closed winning region, so the
	// subsequent Flush still closes 0 out for player 1.
	g := newGame(t, []int{0, 1}, []int{1, 1}, [][2]int{{0, 0}, {0, 1}, {1, 1}})
	count := reduce.SelfLoops(g)
	require.Equal(t, 2, count) // vertex 0's self-loop and vertex 1's winning self-loop
	for _, w := range g.Out[0] {
		require.NotEqual(t, 0, w)
	}
	require.True(t, g.Solved[0])
	require.Equal(t, 1, g.Winner[0])
}

func TestTrivialCycles_WinnerControlledCycle(t *testing.T) {
	// A 3-cycle, all priority 0, all owned by player 0: player 0 wins.
	g := newGame(t, []int{0, 0, 0}, []int{0, 0, 0}, [][2]int{{0, 1}, {1, 2}, {2, 0}})
	count := reduce.TrivialCycles(g)
	require.Equal(t, 1, count)
	require.True(t, g.GameSolved())
	for v := 0; v < 3; v++ {
		require.Equal(t, 0, g.Winner[v])
	}
}

func TestTrivialCycles_OwnerMismatchFindsNothing(t *testing.T) {
	// A 2-cycle with even priority (pl=0) but both vertices owned by
	// player 1: no vertex ever qualifies as a search root, so nothing is
	// ever found or solved.
	g := newGame(t, []int{1, 1}, []int{0, 0}, [][2]int{{0, 1}, {1, 0}})
	count := reduce.TrivialCycles(g)
	require.Equal(t, 0, count)
	require.False(t, g.Solved[0])
	require.False(t, g.Solved[1])
}

func TestTrivialCycles_SelfLoopCascadesViaFlush(t *testing.T) {
	// Scenario D from the end-to-end suite: a losing self-loop at vertex 2
	// is itself a trivial winner-controlled cycle for player 1, and the
	// subsequent Flush closes vertices 1 and 0 out too.
	g := newGame(t, []int{0, 0, 1}, []int{2, 1, 3}, [][2]int{{0, 1}, {1, 2}, {2, 2}})
	count := reduce.TrivialCycles(g)
	require.Equal(t, 1, count)
	require.True(t, g.GameSolved())
	for v := 0; v < 3; v++ {
		require.Equal(t, 1, g.Winner[v])
	}
}
