package board

import "iter"

// Hashed is a map-backed Storage. Absent keys read as Empty.
type Hashed struct {
	cells map[Coord]Cell
}

// NewHashed returns an empty hashed backend.
func NewHashed() *Hashed {
	return &Hashed{cells: make(map[Coord]Cell)}
}

func (h *Hashed) Get(col, row int) Cell { return h.cells[Coord{Col: col, Row: row}] }

func (h *Hashed) Set(col, row int, c Cell) { h.cells[Coord{Col: col, Row: row}] = c }

func (h *Hashed) Ensure(col, row int) {
	k := Coord{Col: col, Row: row}
	if _, ok := h.cells[k]; !ok {
		h.cells[k] = Empty
	}
}

func (h *Hashed) Remove(col, row int) { delete(h.cells, Coord{Col: col, Row: row}) }

func (h *Hashed) All() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for k, c := range h.cells {
			if !yield(Entry{Coord: k, Cell: c}) {
				return
			}
		}
	}
}

func (h *Hashed) Slots() int { return len(h.cells) }

func (h *Hashed) Kind() Kind { return KindHashed }
