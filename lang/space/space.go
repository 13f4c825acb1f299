// Package space implements Funge-space: the unbounded, sparse, mutable 2-D
// cell grid that a Funge program lives and self-modifies in.
//
// The storage is grounded on the same pattern nenuphar uses for its own
// generic Map value (lang/machine/map.go): a small struct wrapping a
// dolthub/swiss map, here keyed by vector.Vector instead of an interface
// value, which is both simpler (Vector is comparable) and cheaper (no
// per-key boxing).
package space

import (
	"github.com/dolthub/swiss"

	"gofunge/lang/vector"
)

// maxWrapSteps bounds the "back up along -delta" search in Wrap for
// non-cardinal deltas (see DESIGN.md, Open Question on Lahey wrap with an
// empty bounding rect: the reference implementation's loop can spin
// indefinitely on a degenerate rect/delta combination).
const maxWrapSteps = 1 << 20

// Space is a sparse 2-D cell store with bounding-rectangle tracking.
//
// A key is present in the underlying map iff its stored value is not
// vector.Space; the bounding rectangle only ever widens on Set, never
// narrows on a delete-by-setting-space, so it remains a monotone upper
// envelope of every coordinate ever set to a non-space value.
type Space struct {
	cells           *swiss.Map[vector.Vector, vector.Cell]
	min, max        vector.Vector
	touched         bool
}

// New creates an empty Funge-space.
func New() *Space {
	return &Space{cells: swiss.NewMap[vector.Vector, vector.Cell](1024)}
}

// Get returns the cell at p, or vector.Space if p was never set (or was last
// set to space).
func (s *Space) Get(p vector.Vector) vector.Cell {
	if v, ok := s.cells.Get(p); ok {
		return v
	}
	return vector.Space
}

// GetOff is equivalent to Get(p.Add(off)).
func (s *Space) GetOff(p, off vector.Vector) vector.Cell {
	return s.Get(p.Add(off))
}

// Set stores v at p. Storing vector.Space removes the key (freeing it)
// without ever shrinking the tracked bounding rectangle. Storing any other
// value widens the bounding rectangle to include p if necessary.
func (s *Space) Set(p vector.Vector, v vector.Cell) {
	if v == vector.Space {
		s.cells.Delete(p)
		return
	}
	s.cells.Put(p, v)
	s.widen(p)
}

// SetOff is equivalent to Set(p.Add(off), v).
func (s *Space) SetOff(p, off vector.Vector, v vector.Cell) {
	s.Set(p.Add(off), v)
}

func (s *Space) widen(p vector.Vector) {
	if !s.touched {
		s.min, s.max = p, p
		s.touched = true
		return
	}
	if p.X < s.min.X {
		s.min.X = p.X
	}
	if p.Y < s.min.Y {
		s.min.Y = p.Y
	}
	if p.X > s.max.X {
		s.max.X = p.X
	}
	if p.Y > s.max.Y {
		s.max.Y = p.Y
	}
}

// BoundingRect returns the current bounding rectangle: min and (max - min).
// An untouched Space reports a zero-area rect at the origin, matching the
// "program starts at (0,0)" convention.
func (s *Space) BoundingRect() vector.Rect {
	return vector.Rect{
		X: s.min.X, Y: s.min.Y,
		W: s.max.X - s.min.X, H: s.max.Y - s.min.Y,
	}
}

func (s *Space) inRange(p vector.Vector) bool {
	return s.BoundingRect().Contains(p)
}

// Wrap adjusts p, which the IP is leaving the bounding rect along delta, so
// it re-enters from the opposite side ("Lahey-space" wrapping).
//
// For a cardinal delta the offending axis snaps straight to the opposite
// boundary (the Funge-98-defined fast path). For any other delta, a p
// outside the rect is walked backwards by -delta across the rect until it
// falls out of the far side, then stepped once forward onto the last
// in-range cell; if the first backward step does not re-enter the rect, p
// is returned unchanged. maxWrapSteps bounds that walk: once it is exceeded
// Wrap returns the position reached so far, and no reflect takes place.
func (s *Space) Wrap(p vector.Vector, delta vector.Vector) vector.Vector {
	r := s.BoundingRect()
	if delta.Cardinal() {
		min, max := r.Min(), r.Max()
		if p.X < min.X {
			p.X = max.X
		} else if p.X > max.X {
			p.X = min.X
		}
		if p.Y < min.Y {
			p.Y = max.Y
		} else if p.Y > max.Y {
			p.Y = min.Y
		}
		return p
	}

	if s.inRange(p) {
		return p
	}
	// Walk backwards along delta, the same do-while cfunge runs: step once
	// unconditionally, then keep stepping as long as the result is still in
	// range. The walk overshoots the far boundary by exactly one step, so
	// stepping forward once afterward lands back on the last in-range cell.
	steps := 0
	for {
		p = p.Sub(delta)
		steps++
		if steps > maxWrapSteps {
			return p
		}
		if !s.inRange(p) {
			return p.Add(delta)
		}
	}
}

// Clone makes a deep, independent copy of s, so that later mutation of the
// original does not leak into the copy.
func (s *Space) Clone() *Space {
	c := &Space{
		cells:   swiss.NewMap[vector.Vector, vector.Cell](uint32(s.cells.Count())),
		min:     s.min,
		max:     s.max,
		touched: s.touched,
	}
	s.cells.Iter(func(k vector.Vector, v vector.Cell) bool {
		c.cells.Put(k, v)
		return false
	})
	return c
}
