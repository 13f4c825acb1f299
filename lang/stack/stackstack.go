package stack

import "gofunge/lang/vector"

// StackStack is a non-empty ordered sequence of Stacks; the topmost is the
// IP's current working stack. The bottom stack always exists and can never
// be popped away by End.
type StackStack struct {
	stacks []*Stack
}

// NewStackStack returns a stack-of-stacks containing a single empty stack.
func NewStackStack() *StackStack {
	return &StackStack{stacks: []*Stack{New()}}
}

// Top returns the current (topmost) stack.
func (ss *StackStack) Top() *Stack { return ss.stacks[len(ss.stacks)-1] }

// Depth returns the number of layered stacks.
func (ss *StackStack) Depth() int { return len(ss.stacks) }

// Begin implements "{ n": push a new stack S', transferring cells from the
// old top per spec §4.C, and saves curOffset on the old top for End to
// return. It does not compute the IP's new storage offset; the caller sets
// that itself.
//
// If n >= 0, the top n cells of the old top are moved to S' in order
// (padding with zeros if the old top has fewer than n cells); if n < 0,
// instead |n| zeros are pushed onto the old top and nothing is transferred.
// The IP's current storage offset is then pushed as a vector onto the
// (post-transfer) old stack before it becomes the second-from-top stack.
func (ss *StackStack) Begin(n vector.Cell, curOffset vector.Vector) {
	old := ss.Top()
	next := New()

	if n >= 0 {
		cnt := int(n)
		transferred := make([]vector.Cell, cnt)
		for i := cnt - 1; i >= 0; i-- {
			transferred[i] = old.Pop()
		}
		next.SetCells(transferred)
	} else {
		for i := vector.Cell(0); i < -n; i++ {
			old.Push(0)
		}
	}

	old.PushVector(curOffset)
	ss.stacks = append(ss.stacks, next)
}

// End implements "}": it reverses Begin. It returns the storage offset the
// IP must restore and whether the operation succeeded — End reflects (per
// spec §4.C) when only one stack exists.
func (ss *StackStack) End(n vector.Cell) (restoredOffset vector.Vector, ok bool) {
	if len(ss.stacks) < 2 {
		return vector.Vector{}, false
	}
	top := ss.stacks[len(ss.stacks)-1]
	ss.stacks = ss.stacks[:len(ss.stacks)-1]
	under := ss.Top()

	restoredOffset = under.PopVector()

	if n >= 0 {
		cnt := int(n)
		transferred := make([]vector.Cell, cnt)
		for i := cnt - 1; i >= 0; i-- {
			transferred[i] = top.Pop()
		}
		for _, v := range transferred {
			under.Push(v)
		}
	} else {
		for i := vector.Cell(0); i < -n; i++ {
			under.Pop()
		}
	}
	return restoredOffset, true
}

// TransferUnderToOver implements "u": for n >= 0 it moves n cells one at a
// time from the second stack onto the top stack (so their order is
// reversed); for n < 0 it moves |n| cells the same way from the top stack
// onto the second. It returns false when only one stack exists.
func (ss *StackStack) TransferUnderToOver(n vector.Cell) bool {
	if len(ss.stacks) < 2 {
		return false
	}
	top := ss.Top()
	under := ss.stacks[len(ss.stacks)-2]
	if n >= 0 {
		for i := vector.Cell(0); i < n; i++ {
			top.Push(under.Pop())
		}
	} else {
		for i := vector.Cell(0); i < -n; i++ {
			under.Push(top.Pop())
		}
	}
	return true
}

// Clone returns a deep, independent copy of ss.
func (ss *StackStack) Clone() *StackStack {
	c := &StackStack{stacks: make([]*Stack, len(ss.stacks))}
	for i, s := range ss.stacks {
		c.stacks[i] = s.Clone()
	}
	return c
}
