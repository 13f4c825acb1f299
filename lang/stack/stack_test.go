package stack_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gofunge/lang/stack"
	"gofunge/lang/vector"
)

func TestStackNeverUnderflows(t *testing.T) {
	s := stack.New()
	assert.Equal(t, vector.Cell(0), s.Pop())
	assert.Equal(t, vector.Cell(0), s.Peek())
	assert.Equal(t, 0, s.Len())
}

func TestStackPushPop(t *testing.T) {
	s := stack.New()
	s.Push(1)
	s.Push(2)
	s.Push(3)
	require.Equal(t, 3, s.Len())
	assert.Equal(t, vector.Cell(3), s.Pop())
	assert.Equal(t, vector.Cell(2), s.Pop())
	assert.Equal(t, vector.Cell(1), s.Pop())
	assert.Equal(t, 0, s.Len())
}

func TestStackDupAndSwap(t *testing.T) {
	s := stack.New()
	s.Push(1)
	s.Push(2)
	s.Dup()
	assert.Equal(t, []vector.Cell{1, 2, 2}, s.Cells())

	s.Clear()
	s.Push(5)
	s.Push(9)
	s.Swap()
	assert.Equal(t, []vector.Cell{9, 5}, s.Cells())
}

func TestStackVectorRoundTrip(t *testing.T) {
	s := stack.New()
	v := vector.Vector{X: 7, Y: -3}
	s.PushVector(v)
	assert.Equal(t, v, s.PopVector())
}

func TestStackStringRoundTrip(t *testing.T) {
	s := stack.New()
	s.PushString("hi")
	assert.Equal(t, "hi", s.PopString())
}

func TestStackCloneIsIndependent(t *testing.T) {
	s := stack.New()
	s.Push(1)
	s.Push(2)

	clone := s.Clone()
	clone.Push(3)

	assert.Equal(t, []vector.Cell{1, 2}, s.Cells())
	assert.Equal(t, []vector.Cell{1, 2, 3}, clone.Cells())
}

func TestStackStackBeginEndRoundTrip(t *testing.T) {
	ss := stack.NewStackStack()
	ss.Top().Push(1)
	ss.Top().Push(2)
	ss.Top().Push(3)

	ss.Begin(2, vector.Vector{X: 4, Y: 5})
	require.Equal(t, 2, ss.Depth())
	// the top 2 cells (2,3) transferred, in order, to the new top.
	assert.Equal(t, []vector.Cell{2, 3}, ss.Top().Cells())

	offset, ok := ss.End(2)
	require.True(t, ok)
	assert.Equal(t, vector.Vector{X: 4, Y: 5}, offset)
	assert.Equal(t, 1, ss.Depth())
	// the transferred cells are moved back onto the original stack.
	assert.Equal(t, []vector.Cell{1, 2, 3}, ss.Top().Cells())
}

func TestStackStackEndReflectsOnSingleStack(t *testing.T) {
	ss := stack.NewStackStack()
	_, ok := ss.End(0)
	assert.False(t, ok)
}

func TestStackStackTransferUnderToOver(t *testing.T) {
	ss := stack.NewStackStack()
	ss.Top().Push(10)
	ss.Begin(0, vector.Vector{})
	ss.Top().Push(1)
	ss.Top().Push(2)

	ok := ss.TransferUnderToOver(1)
	require.True(t, ok)
	// the under stack's top cell moves onto the current top: that is the Y of
	// the storage offset Begin pushed above 10, which is 0 here.
	assert.Equal(t, []vector.Cell{1, 2, 0}, ss.Top().Cells())
}
