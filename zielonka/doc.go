// Package zielonka implements the recursive, attractor-based core solver:
// classical Zielonka recursion and its bounded-precision variant, with
// optional memoization of sub-solutions.
//
// What:
//
//   - attractor computes, for a player and a target category, every vertex
//     in a subgame from which that player can force play into the target
//     while staying inside the subgame (SPEC_FULL.md §4.1).
//   - Solver.Run recurses on a subgame, peeling off the highest-priority
//     layer each frame, attracting it for the player it favors, recursing
//     on the remainder, and either conceding or pushing the opponent's
//     foothold back up (SPEC_FULL.md §4.2).
//   - A per-invocation memo cache, keyed by (precision, canonical vertex
//     set), short-circuits frames already solved earlier in the same
//     top-level Run call.
//
// Why a sum type for the solver-local draft: the source overloads a single
// int with four meanings (-2 placeholder, -1 losing, 999 winning-anywhere,
// >=0 winning-to-vertex). SPEC_FULL.md §9 calls this out as a class of bug
// waiting to happen; this package instead uses an explicit moveKind enum
// (see types.go), and resolves moveWinAny to a concrete out-edge exactly
// once, at the point a frame's verdict is handed back to a caller outside
// this package — nothing downstream ever has to recognize the sentinel.
//
// Grounded on original_source/src/experimental.cpp's zsolver::attractor and
// zsolver::run; restyled as named steps with Go slices instead of
// std::vector<int>, and an explicit per-Solver allocator for categories and
// the memo map instead of the source's process-wide globals (SPEC_FULL.md
// §9: "make these solver-instance-local").
package zielonka
