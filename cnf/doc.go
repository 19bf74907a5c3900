// Package cnf defines the CNF clause database and the incremental SAT
// solver interface the rest of the module programs against, plus a
// concrete solver backed by github.com/go-air/gini.
//
// A Clause is a slice of nonzero signed integers: a positive entry asserts
// the corresponding variable true, a negative entry asserts it false. The
// Solver interface is the minimal incremental CNF oracle the encoder and
// refinement driver need: AddClause accumulates, Solve runs to completion,
// and Model exposes the satisfying assignment. Implementations must be
// incremental — clauses added after a Solve are included in the next one
// without losing any learned state the underlying engine can retain.
//
// gini is used here the way OLM's resolver.solver package uses it beneath
// its circuit-builder layer (lit_mapping.go): variables are allocated once,
// up front, via repeated calls to (*gini.Gini).Lit(), in the same order the
// caller's own 1-based numbering expects, so a raw DIMACS-style literal
// int maps directly onto the z.Lit gini allocated for that variable.
package cnf
