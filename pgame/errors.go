package pgame

import (
	"errors"
	"fmt"
)

// Sentinel errors returned while building or validating a Game.
var (
	// ErrNoOutgoingEdges indicates a vertex has out-degree zero. Parity
	// games require every vertex to have at least one outgoing edge.
	ErrNoOutgoingEdges = errors.New("pgame: vertex has no outgoing edges")

	// ErrNegativePriority indicates a priority below zero was supplied.
	ErrNegativePriority = errors.New("pgame: priority must be non-negative")

	// ErrInvalidOwner indicates an owner outside {0, 1}.
	ErrInvalidOwner = errors.New("pgame: owner must be 0 or 1")

	// ErrUnknownVertex indicates a vertex index outside [0, N).
	ErrUnknownVertex = errors.New("pgame: vertex index out of range")
)

// LogicError marks an invariant broken inside the engine itself — e.g.
// solving an already-solved vertex, or a Tarjan pre-order counter overflow.
// It is raised via panic at the exact point the invariant is discovered;
// callers are not expected to recover from it. This mirrors the source's
// LOGIC_ERROR: a fatal, unrecoverable condition rather than normal control
// flow (SPEC_FULL.md §7).
type LogicError struct {
	Where string
	Info  string
}

func (e *LogicError) Error() string {
	return fmt.Sprintf("pgame: logic error in %s: %s", e.Where, e.Info)
}

// panicLogic raises a LogicError. It exists so every call site reads as a
// one-line invariant check rather than an inline panic() with a format string.
func panicLogic(where, format string, args ...any) {
	panic(&LogicError{Where: where, Info: fmt.Sprintf(format, args...)})
}

// PanicLogic raises a LogicError from outside this package (reduce's Tarjan
// pre-counter overflow check) — the same mechanism panicLogic gives this
// package's own call sites.
func PanicLogic(where, format string, args ...any) {
	panicLogic(where, format, args...)
}
