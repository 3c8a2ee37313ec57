package registry_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/parigo/registry"
)

func TestAll_HasEightEntries(t *testing.T) {
	require.Len(t, registry.All, 8)
	labels := make([]string, len(registry.All))
	for i, e := range registry.All {
		labels[i] = e.Label
	}
	require.ElementsMatch(t, []string{"ez", "ezm", "ep", "epq", "epqm", "epm", "epqa", "epqma"}, labels)
}

func TestLookup_KnownLabel(t *testing.T) {
	e, ok := registry.Lookup("epqm")
	require.True(t, ok)
	require.Equal(t, "Experimental: precision/quick/memo", e.Description)
	require.NotNil(t, e.New())
}

func TestLookup_UnknownLabel(t *testing.T) {
	_, ok := registry.Lookup("nonexistent")
	require.False(t, ok)
}

func TestEntryNew_ConfiguresExpectedFlags(t *testing.T) {
	e, ok := registry.Lookup("ez")
	require.True(t, ok)
	s := e.New()
	require.True(t, s.Zielonka)
	require.True(t, s.QuickPriority)
	require.False(t, s.Memoize)
}
