// Package vector implements the 2-D coordinate arithmetic used by Funge-space
// and instruction pointers: positions, deltas and the bounding rectangles
// that track them.
package vector

// Cell is the configurable-width signed integer that every Funge-space
// location and stack slot holds. gofunge always stores and computes it as
// int64; the width chosen with -s (lang/machine.Machine.CellBits) is only
// reported by "y", and values are not narrowed or masked to 32 bits.
type Cell = int64

// Space is the literal value of an empty cell (ASCII space).
const Space Cell = 0x20

// Vector is an ordered (x, y) pair of cell-width signed integers.
type Vector struct {
	X, Y Cell
}

// Zero is the additive identity and the IP's initial position.
var Zero = Vector{}

// East is the IP's initial delta.
var East = Vector{X: 1, Y: 0}

func (v Vector) Add(o Vector) Vector { return Vector{X: v.X + o.X, Y: v.Y + o.Y} }
func (v Vector) Sub(o Vector) Vector { return Vector{X: v.X - o.X, Y: v.Y - o.Y} }
func (v Vector) Neg() Vector         { return Vector{X: -v.X, Y: -v.Y} }
func (v Vector) Scale(n Cell) Vector { return Vector{X: v.X * n, Y: v.Y * n} }
func (v Vector) Equal(o Vector) bool { return v.X == o.X && v.Y == o.Y }

// Cardinal reports whether v is one of the four unit directions: exactly one
// component is ±1 and the other is 0.
func (v Vector) Cardinal() bool {
	switch {
	case v.X == 0:
		return v.Y == 1 || v.Y == -1
	case v.Y == 0:
		return v.X == 1 || v.X == -1
	default:
		return false
	}
}

// TurnLeft rotates a cardinal (or any) delta by -90 degrees: (x,y) -> (y,-x).
func (v Vector) TurnLeft() Vector { return Vector{X: v.Y, Y: -v.X} }

// TurnRight rotates a delta by +90 degrees: (x,y) -> (-y,x).
func (v Vector) TurnRight() Vector { return Vector{X: -v.Y, Y: v.X} }

// Rect is an axis-aligned bounding rectangle, inclusive on both corners,
// with w = max.X - min.X and h = max.Y - min.Y (so a single-cell rect has
// w = h = 0).
type Rect struct {
	X, Y Cell // top-left corner (min)
	W, H Cell
}

// Max returns the bottom-right corner of r.
func (r Rect) Max() Vector { return Vector{X: r.X + r.W, Y: r.Y + r.H} }

// Min returns the top-left corner of r.
func (r Rect) Min() Vector { return Vector{X: r.X, Y: r.Y} }

// Contains reports whether p lies within r, inclusive.
func (r Rect) Contains(p Vector) bool {
	min, max := r.Min(), r.Max()
	return p.X >= min.X && p.X <= max.X && p.Y >= min.Y && p.Y <= max.Y
}
