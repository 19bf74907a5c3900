package varalloc

import (
	"github.com/flowsat/numberlink/geometry"
	"github.com/flowsat/numberlink/grid"
)

// DirVars is the per-cell map from direction type to its allocated
// variable ID. It is a fixed-size array rather than a map, since a cell has
// at most six eligible direction types (spec design note: "dynamic
// dictionaries -> typed fields").
type DirVars struct {
	present [6]bool
	id      [6]int
}

// Get returns the variable ID for direction type t in this cell, and
// whether t is eligible here at all.
func (d DirVars) Get(t geometry.DirType) (int, bool) {
	slot := t.Slot()

	return d.id[slot], d.present[slot]
}

// IDs returns the variable IDs of every direction type eligible in this
// cell, in the fixed order geometry.DirTypes.
func (d DirVars) IDs() []int {
	ids := make([]int, 0, 6)
	for _, t := range geometry.DirTypes {
		if id, ok := d.Get(t); ok {
			ids = append(ids, id)
		}
	}

	return ids
}

func (d *DirVars) set(t geometry.DirType, id int) {
	slot := t.Slot()
	d.present[slot] = true
	d.id[slot] = id
}

// Allocation holds the complete, stable variable numbering for a grid:
// value variables v(i,j,l) and, for every free cell, its DirVars.
type Allocation struct {
	width, height, numLabels int
	numValueVars             int
	dirVars                  []DirVars // indexed by row*width+col; zero value for endpoint cells
	total                    int
}

// Allocate computes the full variable numbering for g, following the fixed
// schema:
//
//	v(i,j,l) = (i*W + j)*L + l + 1
//	d(i,j,tau) = numValueVars + k
//
// where k counts, in row-major order over free cells and fixed
// direction-type order within each cell, how many direction variables have
// been issued so far, this one included. Direction types a cell is not
// eligible for are skipped and use up no number.
func Allocate(g *grid.Grid) *Allocation {
	width, height, numLabels := g.Width(), g.Height(), g.NumLabels()
	numValueVars := width * height * numLabels

	a := &Allocation{
		width:        width,
		height:       height,
		numLabels:    numLabels,
		numValueVars: numValueVars,
		dirVars:      make([]DirVars, width*height),
	}

	next := numValueVars + 1
	for i := 0; i < height; i++ {
		for j := 0; j < width; j++ {
			if g.At(i, j).IsEndpoint {
				continue
			}
			mask := geometry.NeighborMask(width, height, i, j)
			dv := DirVars{}
			for _, t := range geometry.DirTypes {
				if mask&t == t {
					dv.set(t, next)
					next++
				}
			}
			a.dirVars[i*width+j] = dv
		}
	}
	a.total = next - 1

	return a
}

// ValueVar returns the variable ID for v(i,j,l).
func (a *Allocation) ValueVar(i, j, label int) int {
	return (i*a.width+j)*a.numLabels + label + 1
}

// DirVarsAt returns the direction-variable map for free cell (i,j). The
// returned value is the zero DirVars for an endpoint cell (no direction
// types eligible).
func (a *Allocation) DirVarsAt(i, j int) DirVars {
	return a.dirVars[i*a.width+j]
}

// NumValueVars returns the size of the value-variable block.
func (a *Allocation) NumValueVars() int {
	return a.numValueVars
}

// Total returns the total number of variables allocated: value variables
// plus direction variables.
func (a *Allocation) Total() int {
	return a.total
}
