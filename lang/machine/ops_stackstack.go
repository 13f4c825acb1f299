package machine

import "gofunge/lang/ip"

// Stack-of-stacks opcodes: "{" / "}" / "u" (spec §4.C), all three routed
// through the StackStack methods that already implement the transfer and
// reflect rules; this file only wires the instruction-pointer-level
// bookkeeping (storage offset, reflect-on-failure).
func init() {
	registerOp1('{', func(m *Machine, p *ip.IP) {
		n := p.Stacks.Top().Pop()
		p.Stacks.Begin(n, p.Offset)
		p.Offset = m.Space().Wrap(p.Position.Add(p.Delta), p.Delta)
	})

	registerOp1('}', func(_ *Machine, p *ip.IP) {
		n := p.Stacks.Top().Pop()
		offset, ok := p.Stacks.End(n)
		if !ok {
			p.Reverse()
			return
		}
		p.Offset = offset
	})

	registerOp1('u', func(_ *Machine, p *ip.IP) {
		n := p.Stacks.Top().Pop()
		if !p.Stacks.TransferUnderToOver(n) {
			p.Reverse()
		}
	})
}
