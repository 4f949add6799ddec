package board

import (
	"fmt"
	"iter"
)

// Kind names a storage backend variant.
type Kind uint8

const (
	// KindHashed stores only touched cells in a map; cheap for sparse boards.
	KindHashed Kind = iota
	// KindDense stores a contiguous signed-index grid; cheap for dense boards.
	KindDense
)

// String returns the backend name used in config files and logs.
func (k Kind) String() string {
	switch k {
	case KindHashed:
		return "hashed"
	case KindDense:
		return "dense"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Other returns the opposite backend kind.
func (k Kind) Other() Kind {
	if k == KindHashed {
		return KindDense
	}
	return KindHashed
}

// ParseKind converts a backend name into a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "hashed", "hash":
		return KindHashed, nil
	case "dense", "symvec":
		return KindDense, nil
	default:
		return KindHashed, fmt.Errorf("unknown storage backend %q", s)
	}
}

// Storage maps coordinates to cells. Coordinates are already wrapped by the
// caller.
type Storage interface {
	// Get returns the cell at (col, row), or Empty if it was never written.
	Get(col, row int) Cell
	// Set writes a cell. Dense storage requires a prior Ensure.
	Set(col, row int, c Cell)
	// Ensure allocates a slot for (col, row) without changing its value.
	Ensure(col, row int)
	// Remove clears the cell at (col, row).
	Remove(col, row int)
	// All yields every present slot exactly once.
	All() iter.Seq[Entry]
	// Slots returns the number of present slots.
	Slots() int
	// Kind identifies the backend.
	Kind() Kind
}

// NewStorage returns an empty backend of the given kind.
func NewStorage(k Kind) Storage {
	if k == KindDense {
		return NewDense()
	}
	return NewHashed()
}
