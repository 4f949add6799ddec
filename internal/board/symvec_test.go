package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSymVecPushAndIndex(t *testing.T) {
	var v SymVec[int]
	v.PushPos(1)
	v.PushPos(2)
	v.PushNeg(-1)

	require.Equal(t, 3, v.Len())
	assert.Equal(t, -1, *v.At(-1))

	*v.At(-1) = 20
	assert.Equal(t, 20, *v.At(-1))
	assert.Equal(t, 2, *v.At(1))
}

func TestSymVecNeedExtend(t *testing.T) {
	var v SymVec[int]
	assert.True(t, v.NeedExtendPos(0))

	v.PushPos(1)
	assert.False(t, v.NeedExtendPos(0))
	assert.True(t, v.NeedExtendPos(1))
	assert.True(t, v.NeedExtendPos(5))
	assert.True(t, v.NeedExtendNeg(-1))

	v.PushNeg(-2)
	assert.False(t, v.NeedExtendNeg(-1))
	assert.True(t, v.NeedExtendNeg(-2))
}

func TestSymVecGetOutOfRange(t *testing.T) {
	var v SymVec[int]
	v.Grow(2, func() int { return 7 })

	got, ok := v.Get(2)
	assert.True(t, ok)
	assert.Equal(t, 7, got)

	_, ok = v.Get(3)
	assert.False(t, ok)
	_, ok = v.Get(-1)
	assert.False(t, ok)
	assert.Panics(t, func() { v.At(-4) })
}

func TestSymVecAllAscending(t *testing.T) {
	var v SymVec[int]
	v.Grow(-3, func() int { return 0 })
	v.Grow(1, func() int { return 0 })

	var idx []int
	for i, p := range v.All() {
		*p = i * 10
		idx = append(idx, i)
	}
	assert.Equal(t, []int{-3, -2, -1, 0, 1}, idx)
	assert.Equal(t, -30, *v.At(-3))
}
