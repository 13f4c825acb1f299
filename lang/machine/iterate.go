package machine

import (
	"gofunge/lang/ip"
	"gofunge/lang/vector"
)

// "k" (iterate), ported close to line-for-line from original_source/src/
// instructions/iterate.c: find the next executable instruction without
// moving the IP there, then run it n times in place, with three special
// cases ("z" is a no-op and returns immediately, "k" reflects since nested
// iterate is unsupported, "@" runs at most once and marks the IP dead) and a
// Funge-109-only "move past" step once the loop is done.
func init() {
	registerOp('k', iterateOp)
}

func iterateOp(m *Machine, p *ip.IP) []*ip.IP {
	s := p.Stacks.Top()
	n := s.Pop()

	sp := m.Space()

	if n == 0 {
		p.Forward(1, sp)
		return nil
	}
	if n < 0 {
		p.Reverse()
		return nil
	}

	oldPos := p.Position
	oldDelta := p.Delta

	cell, posInstr := nextInstruction(p, sp)
	p.Position = oldPos

	switch cell {
	case 'z':
		return nil
	case 'k':
		p.Reverse()
		m.warnf("nested k is not supported")
		return nil
	case '@':
		return m.execCell(p, cell)
	}

	var spawned []*ip.IP
	for i := vector.Cell(0); i < n; i++ {
		spawned = append(spawned, m.execCell(p, cell)...)
		if p.Dead || m.exitPending {
			break
		}
	}

	if m.Standard == Funge109 && p.Position == oldPos && p.Delta == oldDelta {
		p.Position = posInstr
	}
	return spawned
}

// nextInstruction walks forward from p's current position the same way
// IP.Advance does (skipping spaces and ";"-delimited comment regions),
// without mutating p.Position permanently: it returns the instruction found
// and the position it was found at, leaving p.Position there as a side
// effect the caller must undo (iterateOp restores oldPos immediately after).
func nextInstruction(p *ip.IP, sp ip.SpaceReader) (vector.Cell, vector.Vector) {
	p.Step(sp)
	cell := sp.Get(p.Position)
	if cell != vector.Space && cell != ';' {
		return cell, p.Position
	}
	injump := cell == ';'
	for {
		p.Step(sp)
		cell = sp.Get(p.Position)
		switch {
		case cell == ';':
			injump = !injump
		case cell == vector.Space:
		case injump:
		default:
			return cell, p.Position
		}
	}
}
