// Package ip implements the Funge instruction pointer: its position, delta,
// storage offset and stack-of-stacks, plus the ordered list of live IPs
// used by concurrent ("t") execution.
package ip

import (
	"github.com/google/uuid"

	"gofunge/lang/stack"
	"gofunge/lang/vector"
)

// Handler is a fingerprint-supplied instruction handler. It is declared here
// (rather than in package fingerprint) so that IP can hold per-letter
// overlay stacks of it without an import cycle; package fingerprint defines
// the concrete handler values and the Manager that pushes/pops them.
type Handler func(*IP, Context) Result

// Result tells the machine driver what a fingerprint handler did, since
// handlers can trigger the same instructions as the static opcode table
// (notably "@" and "t") which need driver-level bookkeeping.
type Result struct {
	Reflect  bool
	Terminate bool
}

// IP is a single instruction pointer: position, delta (velocity), storage
// offset, stack-of-stacks, per-letter opcode-overlay stacks, string mode and
// liveness.
type IP struct {
	ID uuid.UUID

	Position vector.Vector
	Delta    vector.Vector
	Offset   vector.Vector

	Stacks *stack.StackStack

	// Overlay is the per-letter (A-Z, indices 0-25) LIFO of fingerprint
	// handlers currently loaded for this IP (spec §3 "opcode-overlay stack").
	Overlay [26][]Handler

	StringMode bool
	Dead       bool
}

// New returns a fresh IP at the origin moving east, the initial state of the
// single IP that exists at program start.
func New() *IP {
	return &IP{
		ID:       uuid.New(),
		Position: vector.Zero,
		Delta:    vector.East,
		Offset:   vector.Zero,
		Stacks:   stack.NewStackStack(),
	}
}

// Reverse negates the delta: the universal error-recovery action.
func (p *IP) Reverse() { p.Delta = p.Delta.Neg() }

// TurnLeft rotates delta by -90 degrees.
func (p *IP) TurnLeft() { p.Delta = p.Delta.TurnLeft() }

// TurnRight rotates delta by +90 degrees.
func (p *IP) TurnRight() { p.Delta = p.Delta.TurnRight() }

// GoNorth, GoSouth, GoEast, GoWest set delta to the named cardinal unit
// vector, as used by the "^ v > <" instructions.
func (p *IP) GoNorth() { p.Delta = vector.Vector{X: 0, Y: -1} }
func (p *IP) GoSouth() { p.Delta = vector.Vector{X: 0, Y: 1} }
func (p *IP) GoEast()  { p.Delta = vector.Vector{X: 1, Y: 0} }
func (p *IP) GoWest()  { p.Delta = vector.Vector{X: -1, Y: 0} }

// wrapper abstracts the Funge-space operations Forward/skip need, so this
// package does not import lang/space (which would create a cycle back
// through lang/machine); lang/machine supplies the concrete *space.Space.
type Wrapper interface {
	Wrap(p, delta vector.Vector) vector.Vector
}

// Forward advances the IP's position by n * delta, applying Wrap if that
// leaves the bounding rectangle.
func (p *IP) Forward(n vector.Cell, w Wrapper) {
	p.Position = p.Position.Add(p.Delta.Scale(n))
	p.Position = w.Wrap(p.Position, p.Delta)
}

// Duplicate deep-copies p's stacks and overlay stacks for "t" concurrent
// duplication, and reverses the copy's delta so the two IPs diverge.
func (p *IP) Duplicate() *IP {
	dup := &IP{
		ID:         uuid.New(),
		Position:   p.Position,
		Delta:      p.Delta.Neg(),
		Offset:     p.Offset,
		Stacks:     p.Stacks.Clone(),
		StringMode: p.StringMode,
	}
	for i := range p.Overlay {
		if len(p.Overlay[i]) > 0 {
			dup.Overlay[i] = append([]Handler(nil), p.Overlay[i]...)
		}
	}
	return dup
}
