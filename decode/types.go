package decode

import (
	"errors"

	"github.com/flowsat/numberlink/geometry"
)

// NoDirType is the direction-type value recorded for endpoint cells, which
// carry no direction.
const NoDirType geometry.DirType = -1

// ErrNotOneHot indicates a purportedly satisfying model left a cell
// without exactly one true value (or, for a free cell, direction)
// variable. This indicates an encoder bug, not a puzzle property; the
// driver surfaces it as EncoderInvariant.
var ErrNotOneHot = errors.New("decode: cell does not have exactly one true variable")

// Cell is a decoded grid cell: the label it carries and, for free cells,
// the direction type the model assigned it.
type Cell struct {
	Label   int
	DirType geometry.DirType // NoDirType for endpoint cells
	Free    bool
}

// Grid is a decoded solution: every cell's label and, for free cells, its
// direction type.
type Grid struct {
	Width, Height int
	cells         []Cell
}

// At returns the decoded cell at (row, col).
func (g *Grid) At(row, col int) Cell {
	return g.cells[row*g.Width+col]
}

func (g *Grid) set(row, col int, c Cell) {
	g.cells[row*g.Width+col] = c
}
