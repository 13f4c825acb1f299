package machine

import "gofunge/lang/ip"

// Movement and flow-control opcodes: the four direction-setters, the two
// decision instructions, the bridge, reflect, turn-left/right, jump-forward
// and absolute-vector-set, and compare.
func init() {
	registerOp1('>', func(_ *Machine, p *ip.IP) { p.GoEast() })
	registerOp1('<', func(_ *Machine, p *ip.IP) { p.GoWest() })
	registerOp1('^', func(_ *Machine, p *ip.IP) { p.GoNorth() })
	registerOp1('v', func(_ *Machine, p *ip.IP) { p.GoSouth() })

	registerOp1('?', func(m *Machine, p *ip.IP) {
		switch m.Rand().Intn(4) {
		case 0:
			p.GoNorth()
		case 1:
			p.GoSouth()
		case 2:
			p.GoEast()
		default:
			p.GoWest()
		}
	})

	registerOp1('_', func(_ *Machine, p *ip.IP) {
		if p.Stacks.Top().Pop() == 0 {
			p.GoEast()
		} else {
			p.GoWest()
		}
	})
	registerOp1('|', func(_ *Machine, p *ip.IP) {
		if p.Stacks.Top().Pop() == 0 {
			p.GoSouth()
		} else {
			p.GoNorth()
		}
	})

	registerOp1('[', func(_ *Machine, p *ip.IP) { p.TurnLeft() })
	registerOp1(']', func(_ *Machine, p *ip.IP) { p.TurnRight() })
	registerOp1('r', func(_ *Machine, p *ip.IP) { p.Reverse() })

	registerOp1('#', func(m *Machine, p *ip.IP) { p.Forward(1, m.Space()) })

	registerOp1('j', func(m *Machine, p *ip.IP) {
		n := p.Stacks.Top().Pop()
		p.Forward(n, m.Space())
	})

	registerOp1('x', func(_ *Machine, p *ip.IP) {
		p.Delta = p.Stacks.Top().PopVector()
	})

	registerOp1('w', func(_ *Machine, p *ip.IP) {
		s := p.Stacks.Top()
		b, a := s.Pop(), s.Pop()
		switch {
		case a < b:
			p.TurnLeft()
		case a > b:
			p.TurnRight()
		}
	})

	registerOp1('z', func(_ *Machine, _ *ip.IP) {})

	// Turning string mode on is a static opcode like any other; turning it
	// back off happens inside execCell itself (the closing quote is read
	// while already in string mode, so it never reaches staticOps).
	registerOp1('"', func(_ *Machine, p *ip.IP) { p.StringMode = true })
}
