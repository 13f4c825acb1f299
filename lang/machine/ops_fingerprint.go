package machine

import (
	"gofunge/lang/fingerprint"
	"gofunge/lang/ip"
	"gofunge/lang/vector"
)

// popFingerprintID pops n (already popped by the caller) characters and
// reassembles the fingerprint id Pack would have computed from the source
// string. Characters are read onto the stack in left-to-right order as the
// IP walks over the quoted name, so the last character pushed (the name's
// last byte) is popped first: it belongs in the id's low byte.
func popFingerprintID(s interface {
	Pop() vector.Cell
}, n vector.Cell) fingerprint.ID {
	var id fingerprint.ID
	shift := uint(0)
	for i := vector.Cell(0); i < n; i++ {
		id |= fingerprint.ID(byte(s.Pop())) << shift
		shift += 8
	}
	return id
}

// Fingerprint load/unload and the two IP-lifecycle opcodes "@"/"q", plus
// "t" (concurrent split, spec §4.E): these touch machine-level state (the
// fingerprint Manager's gate, the IP list) rather than just a single IP's
// own fields, so they live alongside the dispatcher instead of in
// lang/ip or lang/fingerprint directly.
func init() {
	registerOp1('(', func(m *Machine, p *ip.IP) {
		s := p.Stacks.Top()
		n := s.Pop()
		id := popFingerprintID(s, n)
		if !m.Fingerprints.Load(p, id) {
			p.Reverse()
			return
		}
		// Success marker: the id, with a 1 above it, so a "(" that actually
		// loaded something is distinguishable from a no-op.
		s.Push(vector.Cell(id))
		s.Push(1)
	})

	registerOp1(')', func(m *Machine, p *ip.IP) {
		s := p.Stacks.Top()
		n := s.Pop()
		id := popFingerprintID(s, n)
		if !m.Fingerprints.Unload(p, id) {
			p.Reverse()
		}
	})

	registerOp1('@', func(m *Machine, p *ip.IP) {
		p.Dead = true
		if m.IPs.Len() <= 1 {
			m.requestExit(0)
		}
	})

	registerOp1('q', func(m *Machine, p *ip.IP) {
		code := p.Stacks.Top().Pop()
		p.Dead = true
		m.requestExit(int(code))
	})

	registerOp('t', func(m *Machine, p *ip.IP) []*ip.IP {
		// Returned, not inserted directly: spec §4.I runs IPs spawned by "t"
		// starting next tick, so the driver appends it only once this whole
		// tick's snapshot has finished (Machine.tick/Run). The clone must move
		// off the "t" cell itself here, since it never goes through step's
		// trailing Advance the way the original IP (which keeps executing
		// this same tick) does.
		dup := p.Duplicate()
		dup.Advance(m.Space())
		return []*ip.IP{dup}
	})
}
