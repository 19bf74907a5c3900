// Package numberlink is the root of a Numberlink (Flow Free) solver built
// around a reduction to propositional satisfiability.
//
// A puzzle is a rectangular grid whose cells are either flow endpoints
// (each label appearing exactly twice) or free. Solving means assigning a
// label to every free cell so that each label's two endpoints are joined by
// a simple, non-crossing path and the paths together cover the grid with no
// cycles and no forks.
//
// The work is organized under focused subpackages:
//
//	grid/       — immutable puzzle grid: cells, labels, dimensions
//	geometry/   — neighbor enumeration, direction bits/types, pairwise clauses
//	varalloc/   — stable 1-based numbering for value and direction variables
//	cnf/        — clause/model types and an incremental SAT solver (gini)
//	encode/     — reduction of a grid to CNF clauses
//	decode/     — reading a model back into a grid, detecting residual cycles
//	refine/     — the solve → decode → check → repair loop
//	puzzlefile/ — text puzzle format parsing
//	render/     — box-drawing and ANSI terminal rendering of a solution
//	cmd/numberlink/ — command-line entry point
//
// The hard part, and the reason for most of the above, is that degree
// constraints alone do not rule out a disjoint cycle of free cells that
// never touches an endpoint. refine closes that gap by iteratively
// detecting cycles in a candidate solution and adding a clause that forbids
// the exact combination of direction choices that produced it.
package numberlink
