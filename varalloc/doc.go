// Package varalloc assigns dense, 1-based integer identifiers to the two
// families of Boolean variables the encoder emits: value variables
// v(i,j,l), true iff cell (i,j) carries label l, and direction variables
// d(i,j,tau), true iff free cell (i,j) has direction type tau.
//
// Numbering is fixed once at allocation time and never changes across
// refinement rounds: every clause added in a later round references
// variables this allocation already assigned. Value variables occupy the
// contiguous block [1, Height*Width*NumLabels]; direction variables are
// numbered afterward, in row-major cell order and, within a cell, in the
// fixed direction-type order geometry.DirTypes, skipping any direction
// type not eligible for that cell's in-bounds neighbors.
package varalloc
