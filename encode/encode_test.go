package encode_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowsat/numberlink/cnf"
	"github.com/flowsat/numberlink/decode"
	"github.com/flowsat/numberlink/encode"
	"github.com/flowsat/numberlink/geometry"
	"github.com/flowsat/numberlink/grid"
	"github.com/flowsat/numberlink/varalloc"
)

// solveAll runs the encoder's clauses through a fresh solver with no
// cycle-elimination round, for tests that only need one satisfying model.
func solveAll(t *testing.T, g *grid.Grid, a *varalloc.Allocation) (cnf.Model, bool) {
	t.Helper()

	solver := cnf.NewGiniSolver(a.Total())
	t.Cleanup(solver.Close)

	for _, c := range encode.Encode(g, a) {
		require.NoError(t, solver.AddClause(c))
	}

	sat, err := solver.Solve(context.Background())
	require.NoError(t, err)

	return solver.Model(), sat
}

// build1x3Trivial constructs the simplest possible satisfiable puzzle: a
// single row with one free cell pinned between the two endpoints of its
// only label, giving that cell exactly one eligible direction type (LR).
//
// A single-label puzzle whose endpoint has two or more in-bounds neighbors
// is never satisfiable under this encoding: every other cell is forced to
// the same (only) label, so an endpoint's "exactly one same-label
// neighbor" constraint is violated the moment it has two neighbors. A 1xN
// strip is the one shape where a corner/end cell has just one neighbor.
func build1x3Trivial(t *testing.T) *grid.Grid {
	t.Helper()

	labels := grid.NewAlphabet()
	a := labels.Intern('A')
	rows := [][]grid.Cell{
		{{IsEndpoint: true, Label: a}, {}, {IsEndpoint: true, Label: a}},
	}
	g, err := grid.New(rows, labels)
	require.NoError(t, err)

	return g
}

func TestEncode_1x3TrivialIsSatisfiableAndDecodesCleanly(t *testing.T) {
	g := build1x3Trivial(t)
	a := varalloc.Allocate(g)

	model, sat := solveAll(t, g, a)
	require.True(t, sat)

	decoded, err := decode.Decode(g, a, model)
	require.NoError(t, err)

	// The middle cell must carry label A and connect to both its
	// neighbors, since it has only one possible direction type (LR).
	assert.Equal(t, 0, decoded.At(0, 1).Label)
	assert.True(t, decoded.At(0, 1).Free)
	assert.Equal(t, geometry.LR, decoded.At(0, 1).DirType)
}

// build4x7NonSquare constructs a non-square 4x7 grid: separate width and
// height to confirm the encoder and allocator never transpose them. Each
// row carries its own label (A..D) with endpoints at both ends of the row,
// so every row is a straight run and the puzzle is satisfiable.
func build4x7NonSquare(t *testing.T) *grid.Grid {
	t.Helper()

	labels := grid.NewAlphabet()
	rows := make([][]grid.Cell, 4)
	for i := range rows {
		rows[i] = make([]grid.Cell, 7)
		label := labels.Intern(rune('A' + i))
		rows[i][0] = grid.Cell{IsEndpoint: true, Label: label}
		rows[i][6] = grid.Cell{IsEndpoint: true, Label: label}
	}

	g, err := grid.New(rows, labels)
	require.NoError(t, err)

	return g
}

func TestEncode_NonSquareGridUsesWidthHeightCorrectly(t *testing.T) {
	g := build4x7NonSquare(t)
	require.Equal(t, 4, g.Height())
	require.Equal(t, 7, g.Width())

	a := varalloc.Allocate(g)
	// v(i,j,l) = (i*W+j)*L + l + 1; W=7, L=4. Row 1, col 0 must be 29, not
	// 17 (which a transposed W=4 would produce).
	assert.Equal(t, 29, a.ValueVar(1, 0, 0))

	model, sat := solveAll(t, g, a)
	require.True(t, sat)

	decoded, err := decode.Decode(g, a, model)
	require.NoError(t, err)
	assert.Equal(t, 4, decoded.Height)
	assert.Equal(t, 7, decoded.Width)
}

func TestEncode_ClauseCountIsStableAcrossRuns(t *testing.T) {
	g := build1x3Trivial(t)
	a := varalloc.Allocate(g)

	first := encode.Encode(g, a)
	second := encode.Encode(g, a)

	require.Len(t, second, len(first))
	for i := range first {
		assert.Equal(t, first[i], second[i], "clause %d differs between runs", i)
	}
}
