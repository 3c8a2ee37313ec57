// Package registry lists the core solver's flag combinations as a fixed
// table of named entries, the shape an external collaborator (a CLI, a
// benchmark harness) would index by label to construct a solver.
//
// Grounded on Solvers::Solvers' static registration table
// (original_source/src/solvers.cpp), restricted to the bounded-precision /
// Zielonka family this repository implements — the general pluggable
// registry (pp, psi, spm, ...) is out of scope (SPEC_FULL.md §6.2).
package registry
