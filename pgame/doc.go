// Package pgame defines the Game data model that every parity-game solver
// in this module operates on: a finite directed graph with dense integer
// vertex ids, per-vertex owner and priority, and a mutable Solution
// (winner, strategy, solved flag) that only ever grows.
//
// What:
//
//   - Game wraps parallel slices (Owner, Priority, Out, In) indexed by a
//     dense vertex id in [0, N).
//   - Solution holds Solved/Winner/Strategy, set once per vertex and never
//     rolled back.
//   - Disabled is the subgame mask the driver and reductions narrow before
//     calling into a solver; Outcount is the live out-degree used by the
//     attractor-closure flush.
//   - Inflate/Renumber/Compress are priority-remapping transforms, treated
//     as opaque by callers (see SPEC_FULL.md §6.1 for their semantics).
//
// Why:
//
//   - Every vertex needs an owner (which player picks the outgoing edge)
//     and a priority (the parity condition ranks infinite plays by the
//     highest priority seen infinitely often).
//   - Keeping Out and In as ordered slices, not sets, matters: several
//     algorithms (the attractor worklist, the SCC reduction) rely on
//     iteration order being deterministic.
//
// Errors:
//
//   - ErrNoOutgoingEdges: a vertex was left with zero out-edges; parity
//     games require total out-degree >= 1 for every vertex.
//   - ErrNegativePriority, ErrInvalidOwner, ErrUnknownVertex: malformed
//     input caught at construction time, before any solver runs.
package pgame
