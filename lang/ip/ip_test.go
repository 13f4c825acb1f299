package ip_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gofunge/lang/ip"
	"gofunge/lang/space"
	"gofunge/lang/vector"
)

func TestNewIPStartsAtOriginMovingEast(t *testing.T) {
	p := ip.New()
	assert.Equal(t, vector.Zero, p.Position)
	assert.Equal(t, vector.East, p.Delta)
	assert.Equal(t, vector.Zero, p.Offset)
	assert.False(t, p.StringMode)
	assert.False(t, p.Dead)
	assert.Equal(t, 1, p.Stacks.Depth())
}

func TestTurnsAndReverse(t *testing.T) {
	p := ip.New()
	p.TurnLeft()
	assert.Equal(t, vector.Vector{X: 0, Y: -1}, p.Delta)
	p.TurnRight()
	assert.Equal(t, vector.East, p.Delta)
	p.Reverse()
	assert.Equal(t, vector.East.Neg(), p.Delta)
}

func TestCardinalSetters(t *testing.T) {
	p := ip.New()
	p.GoSouth()
	assert.Equal(t, vector.Vector{X: 0, Y: 1}, p.Delta)
	p.GoWest()
	assert.Equal(t, vector.Vector{X: -1, Y: 0}, p.Delta)
	p.GoNorth()
	assert.Equal(t, vector.Vector{X: 0, Y: -1}, p.Delta)
	p.GoEast()
	assert.Equal(t, vector.East, p.Delta)
}

func TestDuplicateDivergesAndClonesStack(t *testing.T) {
	p := ip.New()
	p.Stacks.Top().Push(42)

	dup := p.Duplicate()

	assert.NotEqual(t, p.ID, dup.ID)
	assert.Equal(t, p.Position, dup.Position)
	assert.Equal(t, p.Delta.Neg(), dup.Delta)
	assert.Equal(t, vector.Cell(42), dup.Stacks.Top().Pop())

	// mutating the original's stack after Duplicate must not affect the copy.
	p.Stacks.Top().Push(7)
	assert.Equal(t, 0, dup.Stacks.Top().Len())
}

func TestAdvanceSkipsSpacesAndSemicolonComments(t *testing.T) {
	sp := space.New()
	sp.Set(vector.Vector{X: 0, Y: 0}, '>')
	sp.Set(vector.Vector{X: 3, Y: 0}, ';')
	sp.Set(vector.Vector{X: 4, Y: 0}, 'X') // inside the comment, skipped
	sp.Set(vector.Vector{X: 5, Y: 0}, ';')
	sp.Set(vector.Vector{X: 6, Y: 0}, '.')

	p := ip.New()
	p.Advance(sp)
	assert.Equal(t, vector.Vector{X: 6, Y: 0}, p.Position)
}

func TestStepIsARawSingleMove(t *testing.T) {
	sp := space.New()
	sp.Set(vector.Vector{X: 0, Y: 0}, '>')
	sp.Set(vector.Vector{X: 2, Y: 0}, '.')

	p := ip.New()
	p.Step(sp)
	// Step lands on the space at (1,0) instead of skipping to (2,0).
	assert.Equal(t, vector.Vector{X: 1, Y: 0}, p.Position)
}

func TestForwardWraps(t *testing.T) {
	sp := space.New()
	sp.Set(vector.Vector{X: 0, Y: 0}, 'a')
	sp.Set(vector.Vector{X: 2, Y: 0}, 'b')

	p := ip.New()
	p.Forward(5, sp)
	// 5 steps east from (0,0) lands at (5,0), outside the [0,2] rect, so it
	// wraps back to the left edge.
	assert.Equal(t, vector.Vector{X: 0, Y: 0}, p.Position)
}

func TestListAppendIndexOfAndRemoveDead(t *testing.T) {
	first := ip.New()
	l := ip.NewList(first)
	require.Equal(t, 1, l.Len())

	second := ip.New()
	l.Append(second)
	assert.Equal(t, 2, l.Len())
	assert.Equal(t, 1, l.IndexOf(second.ID))
	assert.Equal(t, -1, l.IndexOf(uuidZero()))

	first.Dead = true
	l.RemoveDead()
	require.Equal(t, 1, l.Len())
	assert.Equal(t, second.ID, l.At(0).ID)
}

func TestListSnapshotIsStableAcrossMutation(t *testing.T) {
	first := ip.New()
	l := ip.NewList(first)
	snap := l.Snapshot()

	second := ip.New()
	l.Append(second)

	require.Len(t, snap, 1)
	assert.Same(t, first, snap[0])
}

func uuidZero() (z [16]byte) { return z }
