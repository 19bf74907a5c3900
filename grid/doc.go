// Package grid defines the immutable puzzle grid consumed by the rest of
// the solver: a rectangular array of cells that are either flow endpoints
// or free, plus the dense label alphabet derived from the endpoint
// characters.
//
// What:
//
//   - Grid wraps a rectangular []Cell grid addressed by (row, col).
//   - Cell is either an Endpoint carrying a dense label index, or Free.
//   - Alphabet maps puzzle characters to dense label indices 0..L-1.
//
// Why:
//
//   - The encoder and decoder only ever reason about label indices, never
//     about the original puzzle characters; Alphabet is the one place that
//     translation happens.
//   - Grid is immutable once built so it can be shared, without copying,
//     across every refinement round.
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOddEndpointCount: some label does not appear exactly twice.
package grid
