// Package refine implements the refinement driver: the state machine that
// owns an incremental SAT session and repeatedly solves, decodes, checks
// for cycles, and — if any are found — adds blocking clauses and re-solves.
//
// States:
//
//	INIT   — encoder's initial clauses are loaded into the session.
//	SOLVE  — the solver is invoked; UNSAT terminates with Unsolvable.
//	DECODE — a satisfying model is decoded into a (label, dirtype) grid.
//	CHECK  — the decoded grid is walked for cycles; none means Solved,
//	         otherwise the blocking clauses are added and the driver
//	         returns to SOLVE.
//
// Configuration (an optional repair budget, an Observer for progress
// reporting) is supplied through functional Options, following the same
// pattern bfs.Option and dfs.Option use elsewhere in this module's lineage.
// The Solver the driver is given is a scoped resource: Run always calls
// Close on it exactly once, on every exit path, solved, unsolvable, or
// erroring.
package refine
