package refine

import (
	"time"

	"github.com/flowsat/numberlink/cnf"
	"github.com/flowsat/numberlink/decode"
)

// Kind identifies why Run returned: a successfully solved puzzle, a proven
// unsolvable one, a caller-imposed repair budget running out, or one of
// the two fatal invariant violations that indicate an encoder or cycle
// detector bug rather than a puzzle property.
type Kind int

const (
	// Solved: the decoded grid has no cycles; it is a complete solution.
	Solved Kind = iota
	// Unsolvable: the solver proved UNSAT; no solution exists under this
	// encoding.
	Unsolvable
	// EncoderInvariant: a purportedly satisfying model did not decode to
	// exactly one true value/direction variable per cell.
	EncoderInvariant
	// CycleDetectorInvariant: a walk from an endpoint did not reach its
	// pair, or found a fork.
	CycleDetectorInvariant
	// BudgetExceeded: the caller-supplied repair budget was reached before
	// a cycle-free model was found.
	BudgetExceeded
)

// String renders Kind for logging and test failure messages.
func (k Kind) String() string {
	switch k {
	case Solved:
		return "solved"
	case Unsolvable:
		return "unsolvable"
	case EncoderInvariant:
		return "encoder_invariant"
	case CycleDetectorInvariant:
		return "cycle_detector_invariant"
	case BudgetExceeded:
		return "budget_exceeded"
	default:
		return "unknown"
	}
}

// Stats carries the timing and repair counters the original solver printed
// alongside its solution (reduce_time, solve_time, repairs).
type Stats struct {
	EncodeDuration time.Duration
	SolveDuration  time.Duration
	Repairs        int
	Rounds         int
}

// Result is the single return value Run produces for every outcome: the
// Kind it terminated with, the last successfully decoded grid (nil if the
// solver never produced a model), the Cause for a fatal Kind, and Stats.
type Result struct {
	Kind  Kind
	Grid  *decode.Grid
	Cause error
	Stats Stats
}

// RoundInfo is reported to an Observer once per refinement round.
type RoundInfo struct {
	Round       int
	Repairs     int
	ClauseCount int
}

// Observer receives progress notifications from Run. Implementations must
// not retain or mutate the RoundInfo they are given.
type Observer interface {
	Round(info RoundInfo)
}

// noopObserver is the default Observer: it does nothing.
type noopObserver struct{}

func (noopObserver) Round(RoundInfo) {}

// SolverFactory builds a fresh cnf.Solver with numVars variables
// pre-allocated. Run owns the returned Solver for the lifetime of a single
// call and always closes it before returning.
type SolverFactory func(numVars int) cnf.Solver

// Option configures Run via functional arguments.
type Option func(*options)

type options struct {
	repairBudget  int
	observer      Observer
	solverFactory SolverFactory
}

func defaultOptions() options {
	return options{
		repairBudget:  0,
		observer:      noopObserver{},
		solverFactory: cnf.NewGiniSolver,
	}
}

// WithRepairBudget caps the number of cycle-repair rounds Run will attempt
// before giving up with BudgetExceeded. A budget of 0 (the default) means
// unbounded, matching the original solver's behavior.
func WithRepairBudget(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.repairBudget = n
		}
	}
}

// WithObserver registers an Observer to receive per-round progress
// notifications.
func WithObserver(obs Observer) Option {
	return func(o *options) {
		if obs != nil {
			o.observer = obs
		}
	}
}

// WithSolverFactory overrides the Solver implementation Run constructs.
// Primarily useful for tests that want to inject a solver double.
func WithSolverFactory(f SolverFactory) Option {
	return func(o *options) {
		if f != nil {
			o.solverFactory = f
		}
	}
}
