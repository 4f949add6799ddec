package board

import (
	"fmt"
	"iter"
)

// Dense is a Storage backed by a SymVec of rows, each a SymVec of cells.
// Slots are never freed; removed cells are reset to Empty.
type Dense struct {
	rows  SymVec[SymVec[Cell]]
	slots int
}

// NewDense returns an empty dense backend.
func NewDense() *Dense { return &Dense{} }

func (d *Dense) Get(col, row int) Cell {
	r, ok := d.rows.Get(row)
	if !ok {
		return Empty
	}
	c, _ := r.Get(col)
	return c
}

func (d *Dense) Set(col, row int, c Cell) {
	if !d.rows.Has(row) || !d.rows.At(row).Has(col) {
		panic(fmt.Sprintf("dense storage: set on unallocated slot (%d, %d)", col, row))
	}
	*d.rows.At(row).At(col) = c
}

func (d *Dense) Ensure(col, row int) {
	d.rows.Grow(row, func() SymVec[Cell] { return SymVec[Cell]{} })
	r := d.rows.At(row)
	before := r.Len()
	r.Grow(col, func() Cell { return Empty })
	d.slots += r.Len() - before
}

func (d *Dense) Remove(col, row int) {
	r, ok := d.rows.Get(row)
	if !ok || !r.Has(col) {
		return
	}
	*d.rows.At(row).At(col) = Empty
}

func (d *Dense) All() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for row, r := range d.rows.All() {
			for col, c := range r.All() {
				if !yield(Entry{Coord: Coord{Col: col, Row: row}, Cell: *c}) {
					return
				}
			}
		}
	}
}

func (d *Dense) Slots() int { return d.slots }

func (d *Dense) Kind() Kind { return KindDense }
