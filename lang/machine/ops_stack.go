package machine

import "gofunge/lang/ip"

// Single-stack manipulation opcodes: : (dup) \ (swap) $ (pop/discard) and
// the Funge-98 n (clear stack).
func init() {
	registerOp1(':', func(_ *Machine, p *ip.IP) { p.Stacks.Top().Dup() })
	registerOp1('\\', func(_ *Machine, p *ip.IP) { p.Stacks.Top().Swap() })
	registerOp1('$', func(_ *Machine, p *ip.IP) { p.Stacks.Top().Pop() })
	registerOp1('n', func(_ *Machine, p *ip.IP) { p.Stacks.Top().Clear() })
}
