package cnf

import (
	"context"
	"errors"
	"fmt"
)

// Clause is a disjunction of literals: nonzero signed variable
// identifiers, negative for a negated literal.
type Clause []int

// ErrZeroLiteral is returned by AddClause when a clause contains a zero
// entry, which has no valid polarity.
var ErrZeroLiteral = errors.New("cnf: clause literal must be nonzero")

// ErrVariableOutOfRange is returned by AddClause when a clause references
// a variable beyond the solver's allocated range.
var ErrVariableOutOfRange = errors.New("cnf: clause references an unallocated variable")

// Model is a satisfying assignment: True(v) reports the truth value the
// solver assigned to 1-based variable v.
type Model struct {
	assignment []bool // assignment[v-1]
}

// True reports the truth value assigned to variable v. v must be within
// the range the solver was constructed with.
func (m Model) True(v int) bool {
	return m.assignment[v-1]
}

// Solver is the incremental CNF SAT oracle the encoder and refinement
// driver program against. Implementations must accept clauses added after
// a prior Solve call and include them in the next one.
type Solver interface {
	// AddClause accumulates clause into the solver's clause database.
	AddClause(clause Clause) error
	// Solve runs the solver to completion, returning false if the
	// accumulated clauses are unsatisfiable. Returns ctx.Err() if ctx is
	// already done.
	Solve(ctx context.Context) (bool, error)
	// Model returns the satisfying assignment from the most recent
	// successful Solve. Its result is undefined if the last Solve did not
	// return true.
	Model() Model
	// Close releases any native state held by the solver. Safe to call
	// more than once.
	Close()
}

func literalOutOfRange(lit, numVars int) error {
	v := lit
	if v < 0 {
		v = -v
	}

	return fmt.Errorf("%w: variable %d (have %d)", ErrVariableOutOfRange, v, numVars)
}
