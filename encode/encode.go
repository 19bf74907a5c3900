package encode

import (
	"github.com/flowsat/numberlink/cnf"
	"github.com/flowsat/numberlink/geometry"
	"github.com/flowsat/numberlink/grid"
	"github.com/flowsat/numberlink/varalloc"
)

// Encode reduces g to its initial CNF clause set using the variable
// numbering in a. The returned clauses are the complete value and
// direction encoding; no cycle-elimination clauses are included (those are
// added later, per round, by the refinement driver).
func Encode(g *grid.Grid, a *varalloc.Allocation) []cnf.Clause {
	var clauses []cnf.Clause
	width, height, numLabels := g.Width(), g.Height(), g.NumLabels()

	for i := 0; i < height; i++ {
		for j := 0; j < width; j++ {
			cell := g.At(i, j)
			if cell.IsEndpoint {
				clauses = append(clauses, valueClausesEndpoint(g, a, i, j, cell.Label)...)
			} else {
				clauses = append(clauses, valueClausesFree(a, i, j, numLabels)...)
				clauses = append(clauses, directionClauses(g, a, i, j)...)
			}
		}
	}

	return clauses
}

// valueClausesEndpoint pins cell (i,j) to its endpoint label and asserts
// the endpoint-degree-one constraint: exactly one in-bounds neighbor
// carries the same label.
func valueClausesEndpoint(g *grid.Grid, a *varalloc.Allocation, i, j, label int) []cnf.Clause {
	width, height := g.Width(), g.Height()
	clauses := []cnf.Clause{
		{a.ValueVar(i, j, label)},
	}
	for l := 0; l < g.NumLabels(); l++ {
		if l != label {
			clauses = append(clauses, cnf.Clause{-a.ValueVar(i, j, l)})
		}
	}

	neighborVars := make([]int, 0, 4)
	for _, n := range geometry.ValidNeighbors(width, height, i, j) {
		neighborVars = append(neighborVars, a.ValueVar(n.Row, n.Col, label))
	}
	clauses = append(clauses, cnf.Clause(neighborVars))
	for _, pair := range geometry.NoTwo(neighborVars) {
		clauses = append(clauses, cnf.Clause(pair))
	}

	return clauses
}

// valueClausesFree asserts the one-hot encoding of a free cell's label:
// at least one of its L value variables is true, and no two are.
func valueClausesFree(a *varalloc.Allocation, i, j, numLabels int) []cnf.Clause {
	vars := make([]int, numLabels)
	for l := 0; l < numLabels; l++ {
		vars[l] = a.ValueVar(i, j, l)
	}
	clauses := []cnf.Clause{cnf.Clause(vars)}
	for _, pair := range geometry.NoTwo(vars) {
		clauses = append(clauses, cnf.Clause(pair))
	}

	return clauses
}

// directionClauses asserts the one-hot encoding of a free cell's direction
// type, and the biconditional between each direction type and the label
// (in)equality it implies with every in-principle neighbor.
func directionClauses(g *grid.Grid, a *varalloc.Allocation, i, j int) []cnf.Clause {
	width, height, numLabels := g.Width(), g.Height(), g.NumLabels()
	dv := a.DirVarsAt(i, j)
	dirVars := dv.IDs()

	clauses := []cnf.Clause{cnf.Clause(dirVars)}
	for _, pair := range geometry.NoTwo(dirVars) {
		clauses = append(clauses, cnf.Clause(pair))
	}

	for _, t := range geometry.DirTypes {
		dirVar, ok := dv.Get(t)
		if !ok {
			continue
		}
		for _, n := range geometry.AllNeighbors(i, j) {
			inBounds := geometry.ValidPos(width, height, n.Row, n.Col)
			connects := t.Has(n.Dir)

			for l := 0; l < numLabels; l++ {
				v1 := a.ValueVar(i, j, l)
				switch {
				case connects:
					// t implies the neighbor exists (eligibility guarantees
					// it) and carries the same label: biconditional v1<->v2.
					v2 := a.ValueVar(n.Row, n.Col, l)
					clauses = append(clauses, cnf.Clause{-dirVar, -v1, v2})
					clauses = append(clauses, cnf.Clause{-dirVar, v1, -v2})
				case inBounds:
					// t disconnects from this in-bounds neighbor: it must
					// not carry the same label.
					v2 := a.ValueVar(n.Row, n.Col, l)
					clauses = append(clauses, cnf.Clause{-dirVar, -v1, -v2})
				}
			}
		}
	}

	return clauses
}
