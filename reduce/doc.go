// Package reduce implements the three one-shot preprocessing reductions
// that settle easy vertices before the recursive solver runs: a
// single-parity shortcut, self-loop resolution, and winner-controlled SCC
// ("trivial cycle") extraction.
//
// Each reduction only ever calls pgame.Game.Solve on vertices it can prove
// a winner for, then pgame.Game.Flush to propagate the attractor closure
// of what it just solved. None of them touch vtype/strategy — those are
// zielonka.Solver-local.
//
// Grounded on original_source/src/oink.cpp's solveSingleParity,
// solveSelfloops, and solveTrivialCycles.
package reduce
