// Package life is a flat-array Game of Life on a torus. It trades the
// adaptive engine's flexibility for obviousness and serves as a reference
// when checking finite boards.
package life

import "adaptive-life/internal/core"

// Life implements Conway's Game of Life with toroidal wrapping.
type Life struct {
	w, h int
	cur  []uint8
	nxt  []uint8
}

// New returns an empty Life grid with the provided dimensions.
func New(w, h int) *Life {
	cells := make([]uint8, w*h)
	return &Life{w: w, h: h, cur: cells, nxt: make([]uint8, len(cells))}
}

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.w, H: l.h} }

// Cells exposes the current grid values.
func (l *Life) Cells() []uint8 { return l.cur }

func (l *Life) index(x, y int) int {
	x = (x%l.w + l.w) % l.w
	y = (y%l.h + l.h) % l.h
	return y*l.w + x
}

// Set marks (x, y) alive. Coordinates wrap.
func (l *Life) Set(x, y int) { l.cur[l.index(x, y)] = 1 }

// Alive reports whether (x, y) is alive. Coordinates wrap.
func (l *Life) Alive(x, y int) bool { return l.cur[l.index(x, y)] == 1 }

// Population counts live cells.
func (l *Life) Population() int {
	n := 0
	for _, c := range l.cur {
		n += int(c)
	}
	return n
}

// Step advances the simulation by one generation.
func (l *Life) Step() {
	w, h := l.w, l.h
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			neighbors := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					nx := (x + dx + w) % w
					ny := (y + dy + h) % h
					neighbors += int(l.cur[ny*w+nx])
				}
			}
			idx := y*w + x
			alive := l.cur[idx] == 1
			l.nxt[idx] = 0
			if (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3) {
				l.nxt[idx] = 1
			}
		}
	}
	l.cur, l.nxt = l.nxt, l.cur
}
