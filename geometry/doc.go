// Package geometry provides the grid neighbor and direction arithmetic
// shared by the encoder and the decoder: direction bits, the six legal
// direction types a free cell can take, neighbor enumeration, and the
// standard "at most one of these SAT variables" clause helper.
//
// What:
//
//   - DirBit: one of four single-bit flags (Left, Right, Top, Bottom).
//   - DirType: one of six bitmasks pairing two DirBits (LR, TB, TL, TR, BL, BR).
//   - AllNeighbors/ValidNeighbors: neighbor enumeration in a fixed order.
//   - NoTwo: pairwise "at most one" clauses over a set of SAT variables.
//
// Why a fixed order matters: the encoder emits clauses in the iteration
// order of cells, direction types, and neighbors, and the refinement loop
// depends on that order being identical across rounds and across runs.
// Every exported iteration in this package preserves row-major cell order,
// direction-type order LR,TB,TL,TR,BL,BR, and neighbor order
// Left,Right,Top,Bottom.
package geometry
