package pgame_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/parigo/pgame"
)

func TestNewGame_Basic(t *testing.T) {
	g, err := pgame.NewGame(3,
		pgame.WithOwners([]int{0, 1, 0}),
		pgame.WithPriorities([]int{2, 1, 3}),
		pgame.WithEdges([][2]int{{0, 1}, {1, 2}, {2, 2}}),
	)
	require.NoError(t, err)
	require.Equal(t, 3, g.N())
	require.Equal(t, []int{1}, g.Out[0])
	require.Equal(t, []int{2}, g.Out[1])
	require.ElementsMatch(t, []int{2}, g.Out[2])
	require.NoError(t, g.Validate())
}

func TestNewGame_RejectsBadOwner(t *testing.T) {
	_, err := pgame.NewGame(1, pgame.WithOwners([]int{2}))
	require.ErrorIs(t, err, pgame.ErrInvalidOwner)
}

func TestNewGame_RejectsNegativePriority(t *testing.T) {
	_, err := pgame.NewGame(1, pgame.WithPriorities([]int{-1}))
	require.ErrorIs(t, err, pgame.ErrNegativePriority)
}

func TestNewGame_RejectsBadEdgeEndpoint(t *testing.T) {
	_, err := pgame.NewGame(2, pgame.WithEdges([][2]int{{0, 5}}))
	require.ErrorIs(t, err, pgame.ErrUnknownVertex)
}

func TestValidate_RejectsMissingOutEdges(t *testing.T) {
	g, err := pgame.NewGame(2, pgame.WithEdges([][2]int{{0, 1}}))
	require.NoError(t, err)
	require.ErrorIs(t, g.Validate(), pgame.ErrNoOutgoingEdges)
}

func TestAddEdge_ParallelEdgesAllowed(t *testing.T) {
	g, err := pgame.NewGame(2)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(0, 1))
	require.Len(t, g.Out[0], 2)
	require.Len(t, g.In[1], 2)
}

func TestSolve_StoresWitnessOnlyForWinnerOwner(t *testing.T) {
	g, err := pgame.NewGame(2, pgame.WithOwners([]int{0, 1}), pgame.WithEdges([][2]int{{0, 1}, {1, 0}}))
	require.NoError(t, err)

	g.Solve(0, 0, 1) // owner 0 wins: witness kept
	require.Equal(t, 1, g.Strategy[0])

	g.Solve(1, 0, 0) // owner 1, winner 0: loser, no witness
	require.Equal(t, pgame.NoStrategy, g.Strategy[1])

	require.True(t, g.GameSolved())
	require.Equal(t, 0, g.CountUnsolved())
}

func TestSolve_PanicsOnDoubleSolve(t *testing.T) {
	g, err := pgame.NewGame(1, pgame.WithEdges([][2]int{{0, 0}}))
	require.NoError(t, err)
	g.Solve(0, 0, 0)
	require.Panics(t, func() { g.Solve(0, 0, 0) })
}

func TestEdgecount(t *testing.T) {
	g, err := pgame.NewGame(3, pgame.WithEdges([][2]int{{0, 1}, {1, 2}, {2, 0}, {0, 2}}))
	require.NoError(t, err)
	require.Equal(t, 4, g.Edgecount())
}

func TestSyncDisabled_MatchesSolved(t *testing.T) {
	g, err := pgame.NewGame(2, pgame.WithEdges([][2]int{{0, 1}, {1, 0}}))
	require.NoError(t, err)
	g.Solve(0, 0, 1)
	g.SyncDisabled()
	require.Equal(t, g.Solved, g.Disabled)
}
