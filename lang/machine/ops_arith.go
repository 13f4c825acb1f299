package machine

import (
	"gofunge/lang/ip"
	"gofunge/lang/vector"
)

// Arithmetic and comparison opcodes, spec §4.G's static table: + - * / % `
// ! and the Funge-98 hexadecimal push extension a-f.
func init() {
	registerOp1('+', func(_ *Machine, p *ip.IP) {
		s := p.Stacks.Top()
		b, a := s.Pop(), s.Pop()
		s.Push(a + b)
	})
	registerOp1('-', func(_ *Machine, p *ip.IP) {
		s := p.Stacks.Top()
		b, a := s.Pop(), s.Pop()
		s.Push(a - b)
	})
	registerOp1('*', func(_ *Machine, p *ip.IP) {
		s := p.Stacks.Top()
		b, a := s.Pop(), s.Pop()
		s.Push(a * b)
	})
	registerOp1('/', func(_ *Machine, p *ip.IP) {
		s := p.Stacks.Top()
		b, a := s.Pop(), s.Pop()
		if b == 0 {
			s.Push(0)
			return
		}
		s.Push(a / b)
	})
	registerOp1('%', func(_ *Machine, p *ip.IP) {
		s := p.Stacks.Top()
		b, a := s.Pop(), s.Pop()
		if b == 0 {
			s.Push(0)
			return
		}
		s.Push(a % b)
	})
	registerOp1('`', func(_ *Machine, p *ip.IP) {
		s := p.Stacks.Top()
		b, a := s.Pop(), s.Pop()
		if a > b {
			s.Push(1)
		} else {
			s.Push(0)
		}
	})
	registerOp1('!', func(_ *Machine, p *ip.IP) {
		s := p.Stacks.Top()
		if s.Pop() == 0 {
			s.Push(1)
		} else {
			s.Push(0)
		}
	})

	for letter := byte('a'); letter <= 'f'; letter++ {
		v := vector.Cell(letter-'a') + 10
		letter := letter
		registerOp1(letter, func(_ *Machine, p *ip.IP) {
			p.Stacks.Top().Push(v)
		})
	}
}
