package pgame_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/parigo/pgame"
)

func TestFlush_WinnerPredecessorGetsDirectStrategy(t *testing.T) {
	g, err := pgame.NewGame(2, pgame.WithOwners([]int{0, 1}), pgame.WithPriorities([]int{0, 0}),
		pgame.WithEdges([][2]int{{0, 1}, {1, 1}}))
	require.NoError(t, err)

	g.Solve(1, 0, pgame.NoStrategy)
	g.Flush()

	require.True(t, g.Solved[0])
	require.Equal(t, 0, g.Winner[0])
	require.Equal(t, 1, g.Strategy[0])
}

func TestFlush_LoserPredecessorWaitsForAllOutEdges(t *testing.T) {
	// Vertex 0 (owner 1) has two out-edges, to 1 and 2. Only 1 is solved
	// for the opponent (winner 0); 0 must stay unsolved until 2 is too.
	g, err := pgame.NewGame(3, pgame.WithOwners([]int{1, 0, 0}), pgame.WithPriorities([]int{0, 0, 0}),
		pgame.WithEdges([][2]int{{0, 1}, {0, 2}, {1, 1}, {2, 2}}))
	require.NoError(t, err)

	g.Solve(1, 0, 1)
	g.Flush()
	require.False(t, g.Solved[0])

	g.Solve(2, 0, 2)
	g.Flush()
	require.True(t, g.Solved[0])
	require.Equal(t, 0, g.Winner[0])
	require.Equal(t, pgame.NoStrategy, g.Strategy[0])
}

func TestFlush_IsIdempotentOnceOutcountFlushed(t *testing.T) {
	g, err := pgame.NewGame(2, pgame.WithOwners([]int{0, 1}), pgame.WithPriorities([]int{0, 0}),
		pgame.WithEdges([][2]int{{0, 1}, {1, 1}}))
	require.NoError(t, err)

	g.Solve(1, 0, pgame.NoStrategy)
	g.Flush()
	first := append([]int(nil), g.Strategy...)

	g.Flush()
	require.Equal(t, first, g.Strategy)
}
