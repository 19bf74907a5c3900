package refine

import (
	"context"
	"fmt"
	"time"

	"github.com/flowsat/numberlink/decode"
	"github.com/flowsat/numberlink/encode"
	"github.com/flowsat/numberlink/grid"
	"github.com/flowsat/numberlink/varalloc"
)

// Run drives a single puzzle through INIT, SOLVE, DECODE, and CHECK until
// it reaches a terminal Kind. It owns the Solver its SolverFactory option
// produces for the whole call and always closes it before returning,
// whichever state it terminates in.
func Run(ctx context.Context, g *grid.Grid, opts ...Option) (*Result, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	encodeStart := time.Now()
	alloc := varalloc.Allocate(g)
	clauses := encode.Encode(g, alloc)
	stats := Stats{EncodeDuration: time.Since(encodeStart)}

	solver := o.solverFactory(alloc.Total())
	defer solver.Close()

	for _, c := range clauses {
		if err := solver.AddClause(c); err != nil {
			return nil, fmt.Errorf("refine: loading initial clauses: %w", err)
		}
	}

	solveStart := time.Now()
	var lastGrid *decode.Grid

	for round := 0; ; round++ {
		sat, err := solver.Solve(ctx)
		if err != nil {
			return nil, fmt.Errorf("refine: solve: %w", err)
		}

		if !sat {
			stats.SolveDuration = time.Since(solveStart)
			stats.Rounds = round + 1
			o.observer.Round(RoundInfo{Round: round, Repairs: stats.Repairs, ClauseCount: len(clauses)})

			return &Result{Kind: Unsolvable, Grid: lastGrid, Stats: stats}, nil
		}

		model := solver.Model()
		decoded, err := decode.Decode(g, alloc, model)
		if err != nil {
			stats.SolveDuration = time.Since(solveStart)
			stats.Rounds = round + 1

			return &Result{Kind: EncoderInvariant, Grid: lastGrid, Cause: err, Stats: stats}, nil
		}
		lastGrid = decoded

		cycleClauses, err := decode.DetectCycles(decoded, alloc)
		if err != nil {
			stats.SolveDuration = time.Since(solveStart)
			stats.Rounds = round + 1

			return &Result{Kind: CycleDetectorInvariant, Grid: decoded, Cause: err, Stats: stats}, nil
		}

		stats.Rounds = round + 1
		o.observer.Round(RoundInfo{Round: round, Repairs: stats.Repairs, ClauseCount: len(clauses)})

		if len(cycleClauses) == 0 {
			stats.SolveDuration = time.Since(solveStart)

			return &Result{Kind: Solved, Grid: decoded, Stats: stats}, nil
		}

		if o.repairBudget > 0 && stats.Repairs+1 > o.repairBudget {
			stats.SolveDuration = time.Since(solveStart)

			return &Result{Kind: BudgetExceeded, Grid: decoded, Stats: stats}, nil
		}

		for _, c := range cycleClauses {
			if err := solver.AddClause(c); err != nil {
				return nil, fmt.Errorf("refine: adding blocking clause: %w", err)
			}
		}
		clauses = append(clauses, cycleClauses...)
		stats.Repairs++
	}
}
