package cnf

import (
	"context"

	"github.com/go-air/gini"
	"github.com/go-air/gini/z"
)

// giniSolver adapts github.com/go-air/gini to the Solver interface. Its
// literal table is built once, up front: NewGiniSolver(n) allocates n
// variables via repeated (*gini.Gini).Lit() calls, so that the caller's
// 1-based variable numbering (varalloc.Allocation) maps directly onto the
// z.Lit gini assigned for that variable, exactly as OLM's litMapping builds
// its variables/lits tables in a first pass before any constraint is
// applied (lit_mapping.go).
type giniSolver struct {
	g      *gini.Gini
	lits   []z.Lit // lits[v-1] is the positive literal for variable v
	model  Model
	closed bool
}

// NewGiniSolver returns a Solver with numVars variables pre-allocated.
// Clauses passed to AddClause must reference only variables in
// [1, numVars].
func NewGiniSolver(numVars int) Solver {
	g := gini.New()
	lits := make([]z.Lit, numVars)
	for i := 0; i < numVars; i++ {
		lits[i] = g.Lit()
	}

	return &giniSolver{g: g, lits: lits}
}

func (s *giniSolver) literal(signed int) (z.Lit, error) {
	if signed == 0 {
		return z.LitNull, ErrZeroLiteral
	}
	v := signed
	if v < 0 {
		v = -v
	}
	if v > len(s.lits) {
		return z.LitNull, literalOutOfRange(signed, len(s.lits))
	}
	m := s.lits[v-1]
	if signed < 0 {
		m = m.Not()
	}

	return m, nil
}

func (s *giniSolver) AddClause(clause Clause) error {
	for _, lit := range clause {
		m, err := s.literal(lit)
		if err != nil {
			return err
		}
		s.g.Add(m)
	}
	s.g.Add(0)

	return nil
}

func (s *giniSolver) Solve(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	return s.g.Solve() == 1, nil
}

func (s *giniSolver) Model() Model {
	assignment := make([]bool, len(s.lits))
	for i, m := range s.lits {
		assignment[i] = s.g.Value(m)
	}

	return Model{assignment: assignment}
}

func (s *giniSolver) Close() {
	s.closed = true
}
