// Package render turns board state into pixels. Rasterizing is independent of
// any graphics backend; the ebiten painter is only built with the ebiten tag.
package render

import (
	"adaptive-life/internal/board"
	"adaptive-life/internal/core"
)

// Viewport maps a window of board coordinates onto a grid.
type Viewport struct {
	// Origin is the board coordinate drawn at grid position (0, 0).
	Origin board.Coord
	Size   core.Size
}

// CenteredOn returns a viewport of the given size whose middle cell is c.
func CenteredOn(c board.Coord, size core.Size) Viewport {
	return Viewport{
		Origin: board.Coord{Col: c.Col - size.W/2, Row: c.Row - size.H/2},
		Size:   size,
	}
}

// ToBoard converts a grid position into a board coordinate.
func (v Viewport) ToBoard(x, y int) board.Coord {
	return board.Coord{Col: v.Origin.Col + x, Row: v.Origin.Row + y}
}

// Rasterize clears grid and writes every live cell inside the viewport as a
// palette index derived from its generation, capped at levels-1. Dead cells
// stay 0. It returns the number of cells drawn.
func Rasterize(b *board.Board, v Viewport, grid *core.ByteGrid, levels int) int {
	grid.Clear()
	if levels < 2 {
		levels = 2
	}
	drawn := 0
	for d := range b.All() {
		if !d.Alive {
			continue
		}
		x := d.Coord.Col - v.Origin.Col
		y := d.Coord.Row - v.Origin.Row
		if x < 0 || y < 0 || x >= v.Size.W || y >= v.Size.H || !grid.In(x, y) {
			continue
		}
		grid.Set(x, y, uint8(min(d.Gen, uint64(levels-1))))
		drawn++
	}
	return drawn
}
