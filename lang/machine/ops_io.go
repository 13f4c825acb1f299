package machine

import (
	"fmt"
	"os"

	"gofunge/lang/ip"
	"gofunge/lang/space"
	"gofunge/lang/vector"
)

// I/O and self-modification opcodes: output/input, fungespace get/put,
// file-into/out-of-fungespace, system info, and shell-execute (always
// unavailable here, see DESIGN.md).
func init() {
	registerOp1(',', func(m *Machine, p *ip.IP) {
		c := p.Stacks.Top().Pop()
		fmt.Fprintf(m.Stdout, "%c", rune(c))
	})
	registerOp1('.', func(m *Machine, p *ip.IP) {
		v := p.Stacks.Top().Pop()
		fmt.Fprintf(m.Stdout, "%d ", v)
	})
	registerOp1('&', func(m *Machine, p *ip.IP) {
		var n int64
		if _, err := fmt.Fscan(m.stdinReader(), &n); err != nil {
			p.Reverse()
			return
		}
		p.Stacks.Top().Push(vector.Cell(n))
	})
	registerOp1('~', func(m *Machine, p *ip.IP) {
		b, err := m.stdinReader().ReadByte()
		if err != nil {
			p.Reverse()
			return
		}
		p.Stacks.Top().Push(vector.Cell(b))
	})

	registerOp1('g', func(m *Machine, p *ip.IP) {
		v := p.Stacks.Top().PopVector()
		p.Stacks.Top().Push(m.Space().GetOff(v, p.Offset))
	})
	registerOp1('p', func(m *Machine, p *ip.IP) {
		v := p.Stacks.Top().PopVector()
		val := p.Stacks.Top().Pop()
		m.Space().SetOff(v, p.Offset, val)
	})

	registerOp1('\'', func(m *Machine, p *ip.IP) {
		sp := m.Space()
		ahead := sp.Wrap(p.Position.Add(p.Delta), p.Delta)
		p.Stacks.Top().Push(sp.Get(ahead))
		p.Forward(1, sp)
	})

	registerOp1('s', func(m *Machine, p *ip.IP) {
		val := p.Stacks.Top().Pop()
		sp := m.Space()
		ahead := sp.Wrap(p.Position.Add(p.Delta), p.Delta)
		sp.Set(ahead, val)
		p.Forward(1, sp)
	})

	registerOp1('i', func(m *Machine, p *ip.IP) {
		if m.Sandbox {
			p.Reverse()
			return
		}
		s := p.Stacks.Top()
		name := s.PopString()
		flags := s.Pop()
		offset := s.PopVector()
		rect, err := space.Load(m.Grid(), name, offset, flags&1 != 0)
		if err != nil {
			p.Reverse()
			return
		}
		s.PushVector(rect.Min())
		s.PushVector(vector.Vector{X: rect.W, Y: rect.H})
	})
	registerOp1('o', func(m *Machine, p *ip.IP) {
		if m.Sandbox {
			p.Reverse()
			return
		}
		s := p.Stacks.Top()
		name := s.PopString()
		flags := s.Pop()
		offset := s.PopVector()
		size := s.PopVector()
		text := flags&1 == 0
		rect := vector.Rect{X: offset.X, Y: offset.Y, W: size.X, H: size.Y}
		if err := space.Save(m.Grid(), name, offset, rect, text); err != nil {
			p.Reverse()
		}
	})

	registerOp1('y', func(m *Machine, p *ip.IP) { sysInfo(m, p) })

	registerOp1('=', func(_ *Machine, p *ip.IP) {
		// Always reflects: gofunge never shells out (DESIGN.md Open Question).
		p.Reverse()
	})
}

// sysInfo implements "y"'s well-known system-information payload (no ported
// C function backs this one: the kept reference sources cover fingerprints,
// not core instructions): a vector of cells describing the running engine,
// pushed in reverse on top of the argument and environment strings so that
// popping front-to-back gives the fields in order, followed by the strings;
// if a count n in range was given, only field n is pushed instead.
func sysInfo(m *Machine, p *ip.IP) {
	s := p.Stacks.Top()
	bounds := m.Grid().BoundingRect()

	fields := []vector.Cell{
		1,                       // flags: byte-oriented cell I/O only
		vector.Cell(m.CellBits), // cell size in bits, as set by -s
		vector.Cell(m.IPs.Len()),
		0, // current IP's team number: not implemented (DESIGN.md)
		p.Position.X, p.Position.Y,
		p.Delta.X, p.Delta.Y,
		p.Offset.X, p.Offset.Y,
		bounds.X, bounds.Y,
		bounds.W, bounds.H,
		vector.Cell(timeStamp(m)),
		vector.Cell(dateStamp(m)),
		vector.Cell(p.Stacks.Depth()),
	}

	n := s.Pop()
	if n > 0 && int(n) <= len(fields) {
		s.Push(fields[n-1])
		return
	}

	s.PushString(envString(m))
	s.Push(0)
	s.PushString(argString(m))
	for i := len(fields) - 1; i >= 0; i-- {
		s.Push(fields[i])
	}
}

func timeStamp(m *Machine) int64 {
	t := m.Clock()
	return int64(t.Hour())<<16 | int64(t.Minute())<<8 | int64(t.Second())
}

func dateStamp(m *Machine) int64 {
	t := m.Clock()
	return int64(t.Year()-1900)<<16 | int64(t.Month())<<8 | int64(t.Day())
}

func argString(m *Machine) string {
	out := ""
	for _, a := range m.Args {
		out += a + "\x00"
	}
	return out
}

func envString(m *Machine) string {
	out := ""
	env := m.Env
	if env == nil {
		env = os.Environ()
	}
	for _, e := range env {
		out += e + "\x00"
	}
	return out
}
