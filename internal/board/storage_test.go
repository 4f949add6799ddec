package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func backends() map[string]func() Storage {
	return map[string]func() Storage{
		"hashed": func() Storage { return NewHashed() },
		"dense":  func() Storage { return NewDense() },
	}
}

func TestStorageContract(t *testing.T) {
	for name, mk := range backends() {
		t.Run(name, func(t *testing.T) {
			s := mk()
			assert.Equal(t, Empty, s.Get(0, 0))
			assert.Equal(t, Empty, s.Get(-1000, 1000))

			s.Ensure(2, -3)
			assert.Equal(t, Empty, s.Get(2, -3))

			s.Set(2, -3, Occupied(4))
			assert.Equal(t, Occupied(4), s.Get(2, -3))

			s.Ensure(2, -3)
			assert.Equal(t, Occupied(4), s.Get(2, -3), "ensure must not reset a value")

			s.Remove(2, -3)
			assert.Equal(t, Empty, s.Get(2, -3))
		})
	}
}

func TestStorageIterateOnce(t *testing.T) {
	for name, mk := range backends() {
		t.Run(name, func(t *testing.T) {
			s := mk()
			for _, c := range []Coord{{0, 0}, {-2, 1}, {3, -1}} {
				s.Ensure(c.Col, c.Row)
				s.Set(c.Col, c.Row, Occupied(1))
			}

			seen := map[Coord]int{}
			live := 0
			for e := range s.All() {
				seen[e.Coord]++
				if e.Cell.Alive() {
					live++
				}
			}
			for c, n := range seen {
				require.Equal(t, 1, n, "coordinate %v yielded twice", c)
			}
			assert.Equal(t, 3, live)
			assert.Equal(t, len(seen), s.Slots())
		})
	}
}

func TestHashedRemoveDeletesEntry(t *testing.T) {
	s := NewHashed()
	s.Set(1, 1, Occupied(1))
	require.Equal(t, 1, s.Slots())
	s.Remove(1, 1)
	assert.Equal(t, 0, s.Slots())
}

func TestDenseKeepsSlotsAfterRemove(t *testing.T) {
	s := NewDense()
	s.Ensure(1, 1)
	s.Set(1, 1, Occupied(1))
	slots := s.Slots()
	s.Remove(1, 1)
	assert.Equal(t, slots, s.Slots())
	assert.Equal(t, Empty, s.Get(1, 1))
}

func TestDenseSetUnallocatedPanics(t *testing.T) {
	s := NewDense()
	assert.Panics(t, func() { s.Set(5, 5, Occupied(1)) })
}

func TestDenseRowMajorOrder(t *testing.T) {
	s := NewDense()
	s.Ensure(0, 1)
	s.Ensure(-1, -1)
	s.Ensure(1, 0)

	var got []Coord
	for e := range s.All() {
		got = append(got, e.Coord)
	}
	want := []Coord{
		{-1, -1},
		{0, 0}, {1, 0},
		{0, 1},
	}
	assert.Equal(t, want, got)
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("dense")
	require.NoError(t, err)
	assert.Equal(t, KindDense, k)
	assert.Equal(t, KindHashed, k.Other())

	_, err = ParseKind("quadtree")
	assert.Error(t, err)
}
