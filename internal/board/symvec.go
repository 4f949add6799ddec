package board

import (
	"fmt"
	"iter"
)

// SymVec is a growable sequence addressed by signed indices. Non-negative
// indices live in pos, negative index i lives in neg[-(1+i)], so both ends
// grow by appending without shifting existing elements.
type SymVec[T any] struct {
	neg []T
	pos []T
}

// LenPos returns the number of slots with a non-negative index.
func (v *SymVec[T]) LenPos() int { return len(v.pos) }

// LenNeg returns the number of slots with a negative index.
func (v *SymVec[T]) LenNeg() int { return len(v.neg) }

// Len returns the total number of slots.
func (v *SymVec[T]) Len() int { return len(v.pos) + len(v.neg) }

// PushPos appends e at index LenPos().
func (v *SymVec[T]) PushPos(e T) { v.pos = append(v.pos, e) }

// PushNeg appends e at index -(1+LenNeg()).
func (v *SymVec[T]) PushNeg(e T) { v.neg = append(v.neg, e) }

// NeedExtendPos reports whether idx lies past the positive end.
func (v *SymVec[T]) NeedExtendPos(idx int) bool { return idx >= len(v.pos) }

// NeedExtendNeg reports whether idx lies past the negative end.
func (v *SymVec[T]) NeedExtendNeg(idx int) bool { return -(1 + idx) >= len(v.neg) }

// Has reports whether idx addresses an allocated slot.
func (v *SymVec[T]) Has(idx int) bool {
	if idx < 0 {
		return -(1 + idx) < len(v.neg)
	}
	return idx < len(v.pos)
}

// Get returns the element at idx and whether the slot exists.
func (v *SymVec[T]) Get(idx int) (T, bool) {
	if !v.Has(idx) {
		var zero T
		return zero, false
	}
	return *v.slot(idx), true
}

// At returns a pointer to the element at idx. It panics if the slot was never
// allocated.
func (v *SymVec[T]) At(idx int) *T {
	if !v.Has(idx) {
		panic(fmt.Sprintf("symvec: no element with index %d (neg=%d pos=%d)", idx, len(v.neg), len(v.pos)))
	}
	return v.slot(idx)
}

func (v *SymVec[T]) slot(idx int) *T {
	if idx < 0 {
		return &v.neg[-(1 + idx)]
	}
	return &v.pos[idx]
}

// Grow allocates slots up to and including idx, filling new slots with
// values produced by fill.
func (v *SymVec[T]) Grow(idx int, fill func() T) {
	if idx >= 0 {
		for v.NeedExtendPos(idx) {
			v.PushPos(fill())
		}
		return
	}
	for v.NeedExtendNeg(idx) {
		v.PushNeg(fill())
	}
}

// All yields every slot in ascending index order.
func (v *SymVec[T]) All() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := len(v.neg) - 1; i >= 0; i-- {
			if !yield(-(1 + i), &v.neg[i]) {
				return
			}
		}
		for i := range v.pos {
			if !yield(i, &v.pos[i]) {
				return
			}
		}
	}
}
