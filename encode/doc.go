// Package encode reduces a parsed grid.Grid, together with its
// varalloc.Allocation, to the CNF clauses that constrain a satisfying
// assignment to a valid flow layout:
//
//   - value clauses: one label per cell (one-hot), endpoint pinning, and
//     the endpoint-degree-one neighbor constraint;
//   - direction clauses: one direction type per free cell (one-hot), and
//     the biconditional linking a chosen direction type to label equality
//     (or inequality) with each neighbor.
//
// Encode is a pure function of its inputs: the same grid and allocation
// always produce the same clause list, in the same order, because every
// loop here walks cells in row-major order, direction types in the fixed
// order LR,TB,TL,TR,BL,BR, and neighbors in the fixed order
// Left,Right,Top,Bottom.
package encode
