package ip

import "gofunge/lang/vector"

// SpaceReader is the subset of *space.Space that IP movement needs: reading
// cells and wrapping a position back into the bounding rectangle. Declaring
// it here (instead of importing lang/space) keeps lang/ip free of a
// dependency on lang/space, which depends on lang/vector only, avoiding an
// import cycle since lang/machine wires ip and space together.
type SpaceReader interface {
	Wrapper
	Get(p vector.Vector) vector.Cell
}

// Advance performs the Funge-98 "fetch next executable instruction" walk
// used both by the main interpreter loop after executing an instruction and
// by the "k" iterate operator to find what it must repeat: step once by
// delta, then, while the cell under the IP is a space or part of a ";...;"
// comment pair, keep stepping until a real instruction is reached.
//
// Space skipping just walks forward through spaces. Semicolon skipping
// toggles a "jumping" mode on each ";" seen; while jumping, every cell
// (including spaces) is consumed until the next ";" flips jumping back off,
// at which point the walk resumes its normal space-skipping behavior. The
// walk honors Wrap at each step.
func (p *IP) Advance(sp SpaceReader) {
	p.step(sp)
	cell := sp.Get(p.Position)
	if cell != vector.Space && cell != ';' {
		return
	}

	injump := cell == ';'
	for {
		p.step(sp)
		cell = sp.Get(p.Position)
		switch {
		case cell == ';':
			injump = !injump
			continue
		case cell == vector.Space:
			continue
		case injump:
			continue
		default:
			return
		}
	}
}

func (p *IP) step(sp SpaceReader) {
	p.Position = p.Position.Add(p.Delta)
	p.Position = sp.Wrap(p.Position, p.Delta)
}

// Step advances the IP exactly one cell with wrap, with no space/comment
// skipping. It is exported for instructions like "#" (trampoline) that need
// a single raw step in addition to the loop's own end-of-tick Advance.
func (p *IP) Step(sp SpaceReader) { p.step(sp) }

