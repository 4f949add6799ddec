package board

import "cmp"

// Coord identifies a board position by column and row.
type Coord struct {
	Col int
	Row int
}

// Compare orders coordinates row-major: by row, then by column.
func (c Coord) Compare(o Coord) int {
	if r := cmp.Compare(c.Row, o.Row); r != 0 {
		return r
	}
	return cmp.Compare(c.Col, o.Col)
}

// Cell is the occupancy state of a single position. The zero value is Empty;
// an occupied cell carries the generation at which it last became alive.
type Cell struct {
	Gen uint64
}

// Empty is the unoccupied cell.
var Empty = Cell{}

// Occupied returns a live cell born at generation gen.
func Occupied(gen uint64) Cell { return Cell{Gen: gen} }

// Alive reports whether the cell is occupied.
func (c Cell) Alive() bool { return c.Gen != 0 }

// CellDesc is a value snapshot of one cell yielded by board iteration.
type CellDesc struct {
	Coord Coord
	Gen   uint64
	Alive bool
}

// Entry is a raw storage slot as yielded by a backend.
type Entry struct {
	Coord Coord
	Cell  Cell
}
