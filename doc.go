// Package parigo solves parity games: finite directed graphs where every
// vertex is owned by one of two players and carries an integer priority,
// and the winner of an infinite play is the player whose parity matches
// the highest priority visited infinitely often.
//
// Under the hood:
//
//	pgame/    — the Game data model: vertices, edges, the mutable solution,
//	            priority transforms (Inflate/Compress/Renumber).
//	zielonka/ — the recursive core solver: classical Zielonka recursion
//	            and its bounded-precision variant, with memoization.
//	reduce/   — one-shot preprocessing: single-parity shortcut, self-loop
//	            resolution, winner-controlled SCC extraction.
//	driver/   — the outer loop tying reductions and a solver together
//	            until every vertex is solved.
//	registry/ — the fixed table of named solver configurations this
//	            repository implements (ez, ezm, ep, epq, epqm, epm, epqa,
//	            epqma).
//
// A typical caller builds a Game with pgame.NewGame, picks a configuration
// from registry, and hands both to a driver.Driver:
//
//	g, err := pgame.NewGame(n, pgame.WithOwners(owners), pgame.WithPriorities(priorities), pgame.WithEdges(edges))
//	entry, _ := registry.Lookup("epqm")
//	d, err := driver.New(driver.WithSolver(entry.New()))
//	err = d.Run(g)
//	// g.Winner[v], g.Strategy[v] now hold the solved game.
//
// Grounded on original_source/src/{oink.cpp,experimental.cpp,solvers.cpp},
// restyled throughout in the idiom of github.com/katalvlaran/lvlath: dense
// int-indexed adjacency (gridgraph), functional options returning error
// (pgame.GameOption), sentinel errors plus a panic-on-invariant-violation
// LogicError type (core, gridgraph), and the Verbose/fmt.Printf-turned-
// interface logging idiom (flow.Dinic).
package parigo
