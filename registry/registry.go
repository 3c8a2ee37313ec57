package registry

import "github.com/katalvlaran/parigo/zielonka"

// Flag bits, exactly solvers.cpp's zielonka / memoize / quick_priority /
// auto_reduce combination used to build each ExperimentalSolver variant.
const (
	Zielonka      = 1 << 0
	Memoize       = 1 << 1
	QuickPriority = 1 << 2
	AutoReduce    = 1 << 3
)

// Entry describes one named solver configuration.
type Entry struct {
	Label       string
	Description string
	Parallel    bool
	New         func() *zielonka.Solver
}

// newFor builds the zielonka.New constructor call for a given flag mask.
func newFor(flags int) func() *zielonka.Solver {
	return func() *zielonka.Solver {
		return zielonka.New(
			flags&Zielonka != 0,
			flags&QuickPriority != 0,
			flags&Memoize != 0,
			flags&AutoReduce != 0,
		)
	}
}

// All lists every registered entry, in solvers.cpp's registration order.
var All = []Entry{
	{Label: "ez", Description: "Experimental: ZLK", Parallel: true, New: newFor(Zielonka | QuickPriority)},
	{Label: "ezm", Description: "Experimental: ZLK/memo", Parallel: true, New: newFor(Zielonka | QuickPriority | Memoize)},
	{Label: "ep", Description: "Experimental: precision", Parallel: true, New: newFor(0)},
	{Label: "epq", Description: "Experimental: precision/quick", Parallel: true, New: newFor(QuickPriority)},
	{Label: "epqm", Description: "Experimental: precision/quick/memo", Parallel: true, New: newFor(QuickPriority | Memoize)},
	{Label: "epm", Description: "Experimental: precision/memo", Parallel: true, New: newFor(Memoize)},
	{Label: "epqa", Description: "Experimental: precision/quick/auto", Parallel: true, New: newFor(QuickPriority | AutoReduce)},
	{Label: "epqma", Description: "Experimental: precision/quick/memo/auto", Parallel: true, New: newFor(QuickPriority | AutoReduce | Memoize)},
}

// Lookup returns the entry with the given label, or false if none matches.
func Lookup(label string) (Entry, bool) {
	for _, e := range All {
		if e.Label == label {
			return e, true
		}
	}
	return Entry{}, false
}
