// Package board holds Life cell state behind interchangeable storage
// backends. A Board with fixed extents behaves as a torus; without extents it
// is unbounded.
package board

import (
	"fmt"
	"iter"
	"slices"
)

// moore lists the neighbour offsets in W, NW, N, NE, E, SE, S, SW order.
var moore = [8][2]int{
	{-1, 0}, {-1, -1}, {0, -1}, {1, -1},
	{1, 0}, {1, 1}, {0, 1}, {-1, 1},
}

// Board wraps a Storage with coordinate wrapping, neighbourhood
// pre-allocation and a cached population count.
type Board struct {
	cells      Storage
	population int
	cols, rows int
}

// New returns an empty board with a fresh backend of kind k. A zero extent
// leaves that axis unbounded.
func New(k Kind, cols, rows int) *Board {
	return NewWithStorage(NewStorage(k), cols, rows)
}

// NewWithStorage returns a board over an existing, empty backend.
func NewWithStorage(s Storage, cols, rows int) *Board {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	return &Board{cells: s, cols: cols, rows: rows}
}

// Wrap maps a coordinate onto the board's torus.
func (b *Board) Wrap(col, row int) (int, int) {
	return Wrap(col, b.cols), Wrap(row, b.rows)
}

func (b *Board) ensure(col, row int) {
	col, row = b.Wrap(col, row)
	b.cells.Ensure(col, row)
}

// BornAt makes the cell alive at generation 1.
func (b *Board) BornAt(col, row int) { b.BornAtGen(col, row, 1) }

// BornAtGen makes the cell alive at the given generation. It does nothing if
// the cell is already alive.
func (b *Board) BornAtGen(col, row int, gen uint64) {
	if gen == 0 {
		panic(fmt.Sprintf("board: birth at (%d, %d) with generation 0", col, row))
	}
	if b.IsAlive(col, row) {
		return
	}
	// Neighbours must exist so the next step visits every possible birth.
	b.ensure(col, row)
	for _, d := range moore {
		b.ensure(col+d[0], row+d[1])
	}
	col, row = b.Wrap(col, row)
	b.population++
	b.cells.Set(col, row, Occupied(gen))
}

// KillAt removes a live cell. It panics if the cell is not alive, since the
// population counter would otherwise drift.
func (b *Board) KillAt(col, row int) {
	col, row = b.Wrap(col, row)
	if !b.cells.Get(col, row).Alive() {
		panic(fmt.Sprintf("board: kill at (%d, %d) of a dead cell", col, row))
	}
	b.population--
	b.cells.Remove(col, row)
}

// Toggle flips the liveness of a cell and reports whether it is now alive.
func (b *Board) Toggle(col, row int) bool {
	if b.IsAlive(col, row) {
		b.KillAt(col, row)
		return false
	}
	b.BornAt(col, row)
	return true
}

// Cell returns the state at (col, row) after wrapping.
func (b *Board) Cell(col, row int) Cell {
	col, row = b.Wrap(col, row)
	return b.cells.Get(col, row)
}

// IsAlive reports whether the cell at (col, row) is occupied.
func (b *Board) IsAlive(col, row int) bool { return b.Cell(col, row).Alive() }

// Generation returns the generation of a live cell, or 0 for a dead one.
func (b *Board) Generation(col, row int) uint64 { return b.Cell(col, row).Gen }

// Vicinity returns the liveness of the 8 neighbours in W, NW, N, NE, E, SE,
// S, SW order.
func (b *Board) Vicinity(col, row int) [8]bool {
	var out [8]bool
	for i, d := range moore {
		out[i] = b.IsAlive(col+d[0], row+d[1])
	}
	return out
}

// LiveNeighbors counts the live cells in the Moore neighbourhood.
func (b *Board) LiveNeighbors(col, row int) int {
	n := 0
	for _, d := range moore {
		if b.IsAlive(col+d[0], row+d[1]) {
			n++
		}
	}
	return n
}

// All yields a descriptor for every allocated cell, alive or not.
func (b *Board) All() iter.Seq[CellDesc] {
	return func(yield func(CellDesc) bool) {
		for e := range b.cells.All() {
			d := CellDesc{Coord: e.Coord, Gen: e.Cell.Gen, Alive: e.Cell.Alive()}
			if !yield(d) {
				return
			}
		}
	}
}

// Alive returns descriptors of every live cell ordered by coordinate.
func (b *Board) Alive() []CellDesc {
	out := make([]CellDesc, 0, b.population)
	for d := range b.All() {
		if d.Alive {
			out = append(out, d)
		}
	}
	slices.SortFunc(out, func(x, y CellDesc) int { return x.Coord.Compare(y.Coord) })
	return out
}

// Seed brings every listed coordinate to life.
func (b *Board) Seed(coords []Coord) {
	for _, c := range coords {
		b.BornAt(c.Col, c.Row)
	}
}

// Population returns the number of live cells.
func (b *Board) Population() int { return b.population }

// Slots returns the number of cells allocated by the backend.
func (b *Board) Slots() int { return b.cells.Slots() }

// Cols returns the column extent and whether the axis is bounded.
func (b *Board) Cols() (int, bool) { return b.cols, b.cols > 0 }

// Rows returns the row extent and whether the axis is bounded.
func (b *Board) Rows() (int, bool) { return b.rows, b.rows > 0 }

// Finite reports whether both axes are bounded.
func (b *Board) Finite() bool { return b.cols > 0 && b.rows > 0 }

// Kind reports the active storage backend.
func (b *Board) Kind() Kind { return b.cells.Kind() }

// Rebuild returns a copy of b on a fresh backend of kind k, replaying every
// live cell with its generation. Dead allocated slots are not carried over.
func (b *Board) Rebuild(k Kind) *Board {
	nb := New(k, b.cols, b.rows)
	for d := range b.All() {
		if d.Alive {
			nb.BornAtGen(d.Coord.Col, d.Coord.Row, d.Gen)
		}
	}
	return nb
}
