// Package driver ties reductions and a core solver into the outer loop
// that drives an input game to a full solution: one-time reductions, then
// repeatedly mask-sync, optionally restrict to a bottom SCC, invoke the
// configured solver, absorb its verdict, and flush the attractor closure,
// until every vertex is solved.
//
// Grounded on Oink::run / Oink::solveLoop (original_source/src/oink.cpp).
package driver
