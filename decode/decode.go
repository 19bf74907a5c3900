package decode

import (
	"fmt"

	"github.com/flowsat/numberlink/cnf"
	"github.com/flowsat/numberlink/geometry"
	"github.com/flowsat/numberlink/grid"
	"github.com/flowsat/numberlink/varalloc"
)

// Decode reads model back into a per-cell (label, direction type) grid.
// Returns ErrNotOneHot if any cell does not have exactly one true value
// variable, or (for a free cell) exactly one true direction variable.
func Decode(g *grid.Grid, a *varalloc.Allocation, model cnf.Model) (*Grid, error) {
	width, height, numLabels := g.Width(), g.Height(), g.NumLabels()
	out := &Grid{Width: width, Height: height, cells: make([]Cell, width*height)}

	for i := 0; i < height; i++ {
		for j := 0; j < width; j++ {
			label, err := decodeLabel(a, model, i, j, numLabels)
			if err != nil {
				return nil, err
			}

			cell := g.At(i, j)
			if cell.IsEndpoint {
				out.set(i, j, Cell{Label: label, DirType: NoDirType, Free: false})

				continue
			}

			dirType, err := decodeDirType(a, model, i, j)
			if err != nil {
				return nil, err
			}
			out.set(i, j, Cell{Label: label, DirType: dirType, Free: true})
		}
	}

	return out, nil
}

func decodeLabel(a *varalloc.Allocation, model cnf.Model, i, j, numLabels int) (int, error) {
	found := -1
	for l := 0; l < numLabels; l++ {
		if model.True(a.ValueVar(i, j, l)) {
			if found != -1 {
				return 0, fmt.Errorf("%w: cell (%d,%d) has labels %d and %d both true", ErrNotOneHot, i, j, found, l)
			}
			found = l
		}
	}
	if found == -1 {
		return 0, fmt.Errorf("%w: cell (%d,%d) has no true label variable", ErrNotOneHot, i, j)
	}

	return found, nil
}

func decodeDirType(a *varalloc.Allocation, model cnf.Model, i, j int) (geometry.DirType, error) {
	dv := a.DirVarsAt(i, j)
	found := NoDirType
	for _, t := range geometry.DirTypes {
		id, ok := dv.Get(t)
		if !ok {
			continue
		}
		if model.True(id) {
			if found != NoDirType {
				return 0, fmt.Errorf("%w: free cell (%d,%d) has direction types %v and %v both true", ErrNotOneHot, i, j, found, t)
			}
			found = t
		}
	}
	if found == NoDirType {
		return 0, fmt.Errorf("%w: free cell (%d,%d) has no true direction variable", ErrNotOneHot, i, j)
	}

	return found, nil
}
