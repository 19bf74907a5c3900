package geometry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/flowsat/numberlink/geometry"
)

func TestOpposite(t *testing.T) {
	assert.Equal(t, geometry.Right, geometry.Opposite(geometry.Left))
	assert.Equal(t, geometry.Left, geometry.Opposite(geometry.Right))
	assert.Equal(t, geometry.Bottom, geometry.Opposite(geometry.Top))
	assert.Equal(t, geometry.Top, geometry.Opposite(geometry.Bottom))
}

func TestDirType_Has(t *testing.T) {
	assert.True(t, geometry.LR.Has(geometry.Left))
	assert.True(t, geometry.LR.Has(geometry.Right))
	assert.False(t, geometry.LR.Has(geometry.Top))
	assert.True(t, geometry.TL.Has(geometry.Top))
	assert.True(t, geometry.TL.Has(geometry.Left))
}

func TestDirType_SlotIsDenseAndDistinct(t *testing.T) {
	seen := make(map[int]bool)
	for _, dt := range geometry.DirTypes {
		slot := dt.Slot()
		assert.False(t, seen[slot], "slot %d reused", slot)
		assert.GreaterOrEqual(t, slot, 0)
		assert.Less(t, slot, len(geometry.DirTypes))
		seen[slot] = true
	}
}

func TestValidPos(t *testing.T) {
	assert.True(t, geometry.ValidPos(3, 3, 0, 0))
	assert.True(t, geometry.ValidPos(3, 3, 2, 2))
	assert.False(t, geometry.ValidPos(3, 3, -1, 0))
	assert.False(t, geometry.ValidPos(3, 3, 0, 3))
	assert.False(t, geometry.ValidPos(3, 3, 3, 0))
}

func TestAllNeighbors_FourDirections(t *testing.T) {
	neighbors := geometry.AllNeighbors(1, 1)
	assert.Len(t, neighbors, 4)

	dirs := make(map[geometry.DirBit]bool)
	for _, n := range neighbors {
		dirs[n.Dir] = true
	}
	assert.True(t, dirs[geometry.Left])
	assert.True(t, dirs[geometry.Right])
	assert.True(t, dirs[geometry.Top])
	assert.True(t, dirs[geometry.Bottom])
}

func TestValidNeighbors_CornerCell(t *testing.T) {
	// Top-left corner of a 3x3 grid has only Right and Bottom neighbors.
	neighbors := geometry.ValidNeighbors(3, 3, 0, 0)
	assert.Len(t, neighbors, 2)

	dirs := make(map[geometry.DirBit]bool)
	for _, n := range neighbors {
		dirs[n.Dir] = true
	}
	assert.True(t, dirs[geometry.Right])
	assert.True(t, dirs[geometry.Bottom])
}

func TestNeighborMask_CenterCellHasAllSix(t *testing.T) {
	mask := geometry.NeighborMask(3, 3, 1, 1)
	for _, dt := range geometry.DirTypes {
		assert.True(t, mask&dt == dt, "center cell should be eligible for %v", dt)
	}
}

func TestNeighborMask_CornerCellExcludesMissingSides(t *testing.T) {
	// Top-left corner has no Left or Top side, so TL/TR/BL direction types
	// that require those sides are ineligible; only BR (Bottom+Right) is.
	mask := geometry.NeighborMask(3, 3, 0, 0)
	assert.True(t, mask&geometry.BR == geometry.BR)
	assert.False(t, mask&geometry.TL == geometry.TL)
	assert.False(t, mask&geometry.LR == geometry.LR)
	assert.False(t, mask&geometry.TB == geometry.TB)
}

func TestNoTwo_PairwiseClauses(t *testing.T) {
	clauses := geometry.NoTwo([]int{1, 2, 3})
	assert.Len(t, clauses, 3)
	for _, c := range clauses {
		assert.Len(t, c, 2)
		assert.Negative(t, c[0])
		assert.Negative(t, c[1])
	}
}

func TestNoTwo_SingleVariableHasNoClauses(t *testing.T) {
	assert.Empty(t, geometry.NoTwo([]int{1}))
}
