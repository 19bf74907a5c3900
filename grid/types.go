package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing widths.
	ErrNonRectangular = errors.New("grid: all rows must have the same width")
	// ErrOddEndpointCount indicates a label did not appear exactly twice.
	ErrOddEndpointCount = errors.New("grid: label does not have exactly two endpoints")
)

// Cell is either a flow endpoint carrying a dense label index, or free.
// Endpoints carry no direction; only free cells are later assigned one by
// the encoder.
type Cell struct {
	// IsEndpoint reports whether this cell is pre-labeled.
	IsEndpoint bool
	// Label is the dense label index, valid only when IsEndpoint is true.
	Label int
}

// Free reports whether the cell has no pre-assigned label.
func (c Cell) Free() bool {
	return !c.IsEndpoint
}

// Alphabet is the ordered mapping from a puzzle character to a dense label
// index 0..L-1, in first-seen order. The encoder and decoder work with the
// index; Alphabet is what lets callers translate back to the original
// character for rendering.
type Alphabet struct {
	chars []rune
	index map[rune]int
}

// NewAlphabet returns an empty Alphabet.
func NewAlphabet() *Alphabet {
	return &Alphabet{index: make(map[rune]int)}
}

// Intern returns the dense index for ch, allocating a new one the first
// time ch is seen.
func (a *Alphabet) Intern(ch rune) int {
	if idx, ok := a.index[ch]; ok {
		return idx
	}
	idx := len(a.chars)
	a.chars = append(a.chars, ch)
	a.index[ch] = idx

	return idx
}

// Len returns the number of distinct labels interned so far.
func (a *Alphabet) Len() int {
	return len(a.chars)
}

// Char returns the original puzzle character for a dense label index.
func (a *Alphabet) Char(label int) (rune, error) {
	if label < 0 || label >= len(a.chars) {
		return 0, fmt.Errorf("grid: label index %d out of range [0,%d)", label, len(a.chars))
	}

	return a.chars[label], nil
}

// Grid is a rectangular height x width array of cells, immutable once
// built. Width and Height are fixed at construction; Labels exposes the
// alphabet every endpoint was drawn from.
type Grid struct {
	width, height int
	cells         []Cell // row-major, len == width*height
	labels        *Alphabet
}

// New constructs a Grid from a rectangular row-major slice of cells and the
// Alphabet that produced their labels. It deep-copies cells to preserve
// immutability. Returns ErrEmptyGrid or ErrNonRectangular on malformed
// input, or ErrOddEndpointCount if some label does not appear in exactly
// two cells.
func New(rows [][]Cell, labels *Alphabet) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	height, width := len(rows), len(rows[0])
	for _, row := range rows {
		if len(row) != width {
			return nil, ErrNonRectangular
		}
	}

	counts := make([]int, labels.Len())
	cells := make([]Cell, 0, width*height)
	for _, row := range rows {
		for _, c := range row {
			if c.IsEndpoint {
				counts[c.Label]++
			}
			cells = append(cells, c)
		}
	}
	for label, n := range counts {
		if n != 2 {
			ch, _ := labels.Char(label)
			return nil, fmt.Errorf("%w: %q appears %d time(s)", ErrOddEndpointCount, ch, n)
		}
	}

	return &Grid{width: width, height: height, cells: cells, labels: labels}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// NumLabels returns the size of the label alphabet.
func (g *Grid) NumLabels() int { return g.labels.Len() }

// Labels returns the Alphabet this grid's labels were drawn from.
func (g *Grid) Labels() *Alphabet { return g.labels }

// At returns the cell at row i, column j. Panics if (i,j) is out of
// bounds; callers are expected to stay within Height()/Width(), exactly as
// geometry.ValidPos would confirm.
func (g *Grid) At(i, j int) Cell {
	return g.cells[i*g.width+j]
}
