package varalloc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowsat/numberlink/geometry"
	"github.com/flowsat/numberlink/grid"
	"github.com/flowsat/numberlink/varalloc"
)

// build3x3SingleLabel builds a 3x3 grid with a single label A spanning
// opposite corners, at (0,0) and (2,2).
func build3x3SingleLabel(t *testing.T) *grid.Grid {
	t.Helper()

	labels := grid.NewAlphabet()
	a := labels.Intern('A')
	rows := [][]grid.Cell{
		{{IsEndpoint: true, Label: a}, {}, {}},
		{{}, {}, {}},
		{{}, {}, {IsEndpoint: true, Label: a}},
	}

	g, err := grid.New(rows, labels)
	require.NoError(t, err)

	return g
}

func TestAllocate_ValueVarFormula(t *testing.T) {
	g := build3x3SingleLabel(t)
	a := varalloc.Allocate(g)

	// v(i,j,l) = (i*W+j)*L + l + 1; W=3, L=1.
	assert.Equal(t, 1, a.ValueVar(0, 0, 0))
	assert.Equal(t, 4, a.ValueVar(1, 0, 0))
	assert.Equal(t, 9, a.ValueVar(2, 2, 0))
	assert.Equal(t, 9, a.NumValueVars())
}

func TestAllocate_DirVarsOnlyOnFreeCells(t *testing.T) {
	g := build3x3SingleLabel(t)
	a := varalloc.Allocate(g)

	endpointDirs := a.DirVarsAt(0, 0)
	assert.Empty(t, endpointDirs.IDs())

	centerDirs := a.DirVarsAt(1, 1)
	assert.Len(t, centerDirs.IDs(), 6, "center cell of 3x3 is eligible for all six direction types")
}

func TestAllocate_DirVarIDsAreDenseAndAboveValueVars(t *testing.T) {
	g := build3x3SingleLabel(t)
	a := varalloc.Allocate(g)

	numValueVars := a.NumValueVars()
	seen := make(map[int]bool)

	for i := 0; i < g.Height(); i++ {
		for j := 0; j < g.Width(); j++ {
			if g.At(i, j).IsEndpoint {
				continue
			}
			for _, id := range a.DirVarsAt(i, j).IDs() {
				assert.Greater(t, id, numValueVars)
				assert.False(t, seen[id], "direction variable id %d reused", id)
				seen[id] = true
			}
		}
	}
	assert.Equal(t, a.Total(), numValueVars+len(seen))
}

func TestAllocate_EdgeCellEligibilityMatchesNeighborMask(t *testing.T) {
	g := build3x3SingleLabel(t)
	a := varalloc.Allocate(g)

	// (0,1) is free and adjacent to the top-left endpoint; verify its
	// eligible direction set matches its neighbor mask.
	dv := a.DirVarsAt(0, 1)
	mask := geometry.NeighborMask(g.Width(), g.Height(), 0, 1)
	for _, dt := range geometry.DirTypes {
		_, eligible := dv.Get(dt)
		assert.Equal(t, mask&dt == dt, eligible, "direction type %v eligibility", dt)
	}
}
