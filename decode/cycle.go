package decode

import (
	"errors"
	"fmt"

	"github.com/flowsat/numberlink/cnf"
	"github.com/flowsat/numberlink/geometry"
	"github.com/flowsat/numberlink/varalloc"
)

// ErrFork indicates a walk found a cell with more than one connected
// neighbor other than the one it arrived from. The SAT encoding's degree
// constraints should make this impossible; its occurrence indicates an
// encoder bug.
var ErrFork = errors.New("decode: cell has more than one connected neighbor")

// ErrUnterminatedWalk indicates a walk begun at one of a label's endpoints
// did not terminate at that label's other endpoint.
var ErrUnterminatedWalk = errors.New("decode: path from endpoint did not reach its pair")

const noPos = -1

// run is the sequence of (row, col) positions a walk visited, in order.
type run []pos

type pos struct{ row, col int }

// walk follows the implicit path starting at (row, col): at each step it
// marks the current cell visited, then looks for the one connected
// neighbor other than the one it just came from. It stops when no such
// neighbor exists (a terminal endpoint) or when the next neighbor was
// already visited (a cycle closing on itself).
func walk(g *Grid, visited []bool, startRow, startCol int) (run, bool, error) {
	var path run
	curRow, curCol := startRow, startCol
	prevRow, prevCol := noPos, noPos

	for {
		idx := curRow*g.Width + curCol
		visited[idx] = true
		path = append(path, pos{curRow, curCol})

		nextRow, nextCol, found, err := nextConnected(g, curRow, curCol, prevRow, prevCol)
		if err != nil {
			return path, false, err
		}
		if !found {
			return path, false, nil
		}
		if visited[nextRow*g.Width+nextCol] {
			return path, true, nil
		}

		prevRow, prevCol = curRow, curCol
		curRow, curCol = nextRow, nextCol
	}
}

// nextConnected examines the in-bounds neighbors of (row, col) in the
// fixed Left,Right,Top,Bottom order, skipping (prevRow, prevCol), and
// returns the first one connected to (row, col).
//
// A free cell's direction type carries exactly two bits, so a fresh walk
// starting at a free cell (prevRow, prevCol == noPos, as happens when
// DetectCycles finds an unvisited cycle cell) legitimately sees both of
// them connected at once; either is a valid way to start tracing that
// cycle, so the first one found in fixed order is taken. An endpoint,
// by contrast, must have exactly one connected neighbor — seeing a
// second is a genuine violation of the encoding's degree-one constraint,
// and is reported as ErrFork rather than silently picking one.
func nextConnected(g *Grid, row, col, prevRow, prevCol int) (nextRow, nextCol int, found bool, err error) {
	cell := g.At(row, col)

	for _, n := range geometry.ValidNeighbors(g.Width, g.Height, row, col) {
		if n.Row == prevRow && n.Col == prevCol {
			continue
		}

		neighbor := g.At(n.Row, n.Col)
		if !connectionTo(cell, neighbor, n.Dir) {
			continue
		}
		if cell.Label != neighbor.Label {
			return 0, 0, false, fmt.Errorf("%w: (%d,%d) connects to (%d,%d) with differing labels", ErrFork, row, col, n.Row, n.Col)
		}

		if !cell.Free {
			if found {
				return 0, 0, false, fmt.Errorf("%w: endpoint (%d,%d) has more than one connected neighbor", ErrFork, row, col)
			}
			nextRow, nextCol, found = n.Row, n.Col, true

			continue
		}

		return n.Row, n.Col, true, nil
	}

	return nextRow, nextCol, found, nil
}

// connectionTo reports whether cell is connected to its neighbor across
// the side identified by dir: either cell is free and its direction type
// includes dir, or cell is an endpoint and the neighbor is free with a
// direction type pointing back.
func connectionTo(cell, neighbor Cell, dir geometry.DirBit) bool {
	if cell.Free {
		return cell.DirType.Has(dir)
	}

	return neighbor.Free && neighbor.DirType.Has(geometry.Opposite(dir))
}

// DetectCycles walks the decoded path graph from each label's endpoints,
// then returns a blocking clause for every connected component left
// unvisited — each such component is a cycle that never touches an
// endpoint. Returns ErrUnterminatedWalk or ErrFork if the decoded grid does
// not have the shape the SAT encoding should guarantee.
func DetectCycles(g *Grid, a *varalloc.Allocation) ([]cnf.Clause, error) {
	visited := make([]bool, g.Width*g.Height)

	if err := walkFromEndpoints(g, visited); err != nil {
		return nil, err
	}

	var clauses []cnf.Clause
	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			if visited[row*g.Width+col] {
				continue
			}
			cyclePath, isCycle, err := walk(g, visited, row, col)
			if err != nil {
				return nil, err
			}
			if !isCycle {
				return nil, fmt.Errorf("%w: unvisited cell (%d,%d) did not close a cycle", ErrUnterminatedWalk, row, col)
			}
			clauses = append(clauses, blockingClause(g, a, cyclePath))
		}
	}

	return clauses, nil
}

// walkFromEndpoints walks once from one endpoint of each label, marking
// every cell on that label's path visited. Walking from one endpoint
// should trace the entire path to the other, since the encoding forbids
// forks and disconnected endpoint pairs.
func walkFromEndpoints(g *Grid, visited []bool) error {
	seen := make(map[int]bool)

	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			cell := g.At(row, col)
			if cell.Free || seen[cell.Label] {
				continue
			}
			seen[cell.Label] = true

			path, isCycle, err := walk(g, visited, row, col)
			if err != nil {
				return err
			}
			if isCycle {
				return fmt.Errorf("%w: endpoint (%d,%d) closed a cycle instead of reaching its pair", ErrUnterminatedWalk, row, col)
			}
			last := path[len(path)-1]
			if g.At(last.row, last.col).Free {
				return fmt.Errorf("%w: path from endpoint (%d,%d) ended on a free cell", ErrUnterminatedWalk, row, col)
			}
		}
	}

	return nil
}

// blockingClause builds the clause forbidding the exact combination of
// direction choices that produced cyclePath: the disjunction of the
// negations of each cycle cell's direction variable. Its length equals the
// cycle's cell count, and it references only direction variables of those
// cells.
func blockingClause(g *Grid, a *varalloc.Allocation, cyclePath run) cnf.Clause {
	clause := make(cnf.Clause, 0, len(cyclePath))
	for _, p := range cyclePath {
		cell := g.At(p.row, p.col)
		dv := a.DirVarsAt(p.row, p.col)
		dirVar, _ := dv.Get(cell.DirType)
		clause = append(clause, -dirVar)
	}

	return clause
}
