package fingerprint

import (
	"gofunge/lang/ip"
	"gofunge/lang/vector"
)

// TOYS is ported from original_source/src/fingerprints/TOYS/TOYS.c. Every
// opcode there turns out to be a pure stack/fungespace operation (plus one
// use of the external random-number collaborator, 'U') with no OS-process
// features, so this fingerprint is carried over in full rather than trimmed
// (see DESIGN.md).
func init() {
	register(&Descriptor{
		Name: "TOYS",
		Handlers: map[byte]ip.Handler{
			'A': toysGable,
			'B': toysPairOfShoes,
			'C': toysBracelet,
			'D': toysToiletSeat,
			'E': toysPitchforkHead,
			'F': toysCalipers,
			'G': toysCounterclockwise,
			'H': toysPairOfStilts,
			'I': toysDoricColumn,
			'J': toysFishhook,
			'K': toysScissors,
			'L': toysCorner,
			'M': toysKittycat,
			'N': toysLightningBolt,
			'O': toysBoulder,
			'P': toysMailbox,
			'Q': toysNecklace,
			'R': toysCanOpener,
			'S': toysChicane,
			'T': toysBarstool,
			'U': toysTumbler,
			'V': toysDixiecup,
			'W': toysTelevisionAntenna,
			'X': toysBuriedTreasure,
			'Y': toysSlingshot,
			'Z': toysBarnDoor,
		},
	})
}

func toysGable(p *ip.IP, _ ip.Context) ip.Result {
	s := p.Stacks.Top()
	n := s.Pop()
	c := s.Pop()
	if n < 0 {
		p.Reverse()
		return ip.Result{}
	}
	for ; n > 0; n-- {
		s.Push(c)
	}
	return ip.Result{}
}

func toysPairOfShoes(p *ip.IP, _ ip.Context) ip.Result {
	s := p.Stacks.Top()
	y := s.Pop()
	x := s.Pop()
	s.Push(x + y)
	s.Push(x - y)
	return ip.Result{}
}

func toysBracelet(p *ip.IP, ctx ip.Context) ip.Result {
	s := p.Stacks.Top()
	t := s.PopVector()
	d := s.PopVector()
	o := s.PopVector()
	if d.X == 0 || d.Y == 0 {
		return ip.Result{}
	}
	if d.X < 0 || d.Y < 0 {
		p.Reverse()
		return ip.Result{}
	}
	sp := ctx.Space()
	for x := vector.Cell(0); x < d.X; x++ {
		for y := vector.Cell(0); y < d.Y; y++ {
			off := vector.Vector{X: x, Y: y}
			sp.SetOff(off, t, sp.GetOff(off, o))
		}
	}
	return ip.Result{}
}

func toysToiletSeat(p *ip.IP, _ ip.Context) ip.Result {
	s := p.Stacks.Top()
	s.Push(s.Pop() - 1)
	return ip.Result{}
}

func toysPitchforkHead(p *ip.IP, _ ip.Context) ip.Result {
	s := p.Stacks.Top()
	var sum vector.Cell
	for _, c := range s.Cells() {
		sum += c
	}
	s.Clear()
	s.Push(sum)
	return ip.Result{}
}

func toysCalipers(p *ip.IP, ctx ip.Context) ip.Result {
	s := p.Stacks.Top()
	t := s.PopVector()
	j := s.Pop()
	i := s.Pop()
	sp := ctx.Space()
	for y := t.Y; y < t.Y+j; y++ {
		for x := t.X; x < t.X+i; x++ {
			sp.Set(vector.Vector{X: x, Y: y}, s.Pop())
		}
	}
	return ip.Result{}
}

func toysCounterclockwise(p *ip.IP, ctx ip.Context) ip.Result {
	s := p.Stacks.Top()
	o := s.PopVector()
	j := s.Pop()
	i := s.Pop()
	sp := ctx.Space()
	for y := o.Y + j - 1; y >= o.Y; y-- {
		for x := o.X + i - 1; x >= o.X; x-- {
			s.Push(sp.Get(vector.Vector{X: x, Y: y}))
		}
	}
	return ip.Result{}
}

func toysPairOfStilts(p *ip.IP, _ ip.Context) ip.Result {
	s := p.Stacks.Top()
	b := s.Pop()
	a := s.Pop()
	if b < 0 {
		s.Push(a >> uint(-b))
	} else {
		s.Push(a << uint(b))
	}
	return ip.Result{}
}

func toysDoricColumn(p *ip.IP, _ ip.Context) ip.Result {
	s := p.Stacks.Top()
	s.Push(s.Pop() + 1)
	return ip.Result{}
}

func toysFishhook(p *ip.IP, ctx ip.Context) ip.Result {
	s := p.Stacks.Top()
	n := s.Pop()
	sp := ctx.Space()
	bounds := sp.BoundingRect()
	x := p.Position.X
	switch {
	case n == 0:
	case n < 0:
		for y := bounds.Y; y <= bounds.Y+bounds.H; y++ {
			sp.Set(vector.Vector{X: x, Y: y + n}, sp.Get(vector.Vector{X: x, Y: y}))
		}
	default:
		for y := bounds.Y + bounds.H; y >= bounds.Y; y-- {
			sp.Set(vector.Vector{X: x, Y: y + n}, sp.Get(vector.Vector{X: x, Y: y}))
		}
	}
	return ip.Result{}
}

func toysScissors(p *ip.IP, ctx ip.Context) ip.Result {
	s := p.Stacks.Top()
	t := s.PopVector()
	d := s.PopVector()
	o := s.PopVector()
	if d.X == 0 || d.Y == 0 {
		return ip.Result{}
	}
	if d.X < 0 || d.Y < 0 {
		p.Reverse()
		return ip.Result{}
	}
	sp := ctx.Space()
	for x := d.X - 1; x >= 0; x-- {
		for y := d.Y - 1; y >= 0; y-- {
			off := vector.Vector{X: x, Y: y}
			sp.SetOff(off, t, sp.GetOff(off, o))
		}
	}
	return ip.Result{}
}

func toysCorner(p *ip.IP, ctx ip.Context) ip.Result {
	sp := ctx.Space()
	p.TurnLeft()
	p.Forward(1, sp)
	p.Stacks.Top().Push(sp.Get(p.Position))
	p.Forward(-1, sp)
	p.TurnRight()
	return ip.Result{}
}

func toysKittycat(p *ip.IP, ctx ip.Context) ip.Result {
	s := p.Stacks.Top()
	t := s.PopVector()
	d := s.PopVector()
	o := s.PopVector()
	if d.X == 0 || d.Y == 0 {
		return ip.Result{}
	}
	if d.X < 0 || d.Y < 0 {
		p.Reverse()
		return ip.Result{}
	}
	sp := ctx.Space()
	for x := vector.Cell(0); x < d.X; x++ {
		for y := vector.Cell(0); y < d.Y; y++ {
			off := vector.Vector{X: x, Y: y}
			sp.SetOff(off, t, sp.GetOff(off, o))
			sp.SetOff(off, o, vector.Space)
		}
	}
	return ip.Result{}
}

func toysLightningBolt(p *ip.IP, _ ip.Context) ip.Result {
	s := p.Stacks.Top()
	s.Push(-s.Pop())
	return ip.Result{}
}

func toysBoulder(p *ip.IP, ctx ip.Context) ip.Result {
	s := p.Stacks.Top()
	n := s.Pop()
	sp := ctx.Space()
	bounds := sp.BoundingRect()
	y := p.Position.Y
	switch {
	case n == 0:
	case n < 0:
		for x := bounds.X; x <= bounds.X+bounds.W; x++ {
			sp.Set(vector.Vector{X: x + n, Y: y}, sp.Get(vector.Vector{X: x, Y: y}))
		}
	default:
		for x := bounds.X + bounds.W; x >= bounds.X; x-- {
			sp.Set(vector.Vector{X: x + n, Y: y}, sp.Get(vector.Vector{X: x, Y: y}))
		}
	}
	return ip.Result{}
}

func toysMailbox(p *ip.IP, _ ip.Context) ip.Result {
	s := p.Stacks.Top()
	product := vector.Cell(1)
	for _, c := range s.Cells() {
		product *= c
	}
	s.Clear()
	s.Push(product)
	return ip.Result{}
}

func toysNecklace(p *ip.IP, ctx ip.Context) ip.Result {
	sp := ctx.Space()
	v := p.Stacks.Top().Pop()
	p.Forward(-1, sp)
	sp.Set(p.Position, v)
	p.Forward(1, sp)
	return ip.Result{}
}

func toysCanOpener(p *ip.IP, ctx ip.Context) ip.Result {
	sp := ctx.Space()
	p.TurnRight()
	p.Forward(1, sp)
	p.Stacks.Top().Push(sp.Get(p.Position))
	p.Forward(-1, sp)
	p.TurnLeft()
	return ip.Result{}
}

func toysChicane(p *ip.IP, ctx ip.Context) ip.Result {
	s := p.Stacks.Top()
	o := s.PopVector()
	d := s.PopVector()
	c := s.Pop()
	if d.X == 0 || d.Y == 0 {
		return ip.Result{}
	}
	if d.X < 0 || d.Y < 0 {
		p.Reverse()
		return ip.Result{}
	}
	sp := ctx.Space()
	for x := o.X; x < o.X+d.X; x++ {
		for y := o.Y; y < o.Y+d.Y; y++ {
			sp.Set(vector.Vector{X: x, Y: y}, c)
		}
	}
	return ip.Result{}
}

func toysBarstool(p *ip.IP, _ ip.Context) ip.Result {
	s := p.Stacks.Top()
	switch s.Pop() {
	case 0:
		if s.Pop() == 0 {
			p.GoEast()
		} else {
			p.GoWest()
		}
	case 1:
		if s.Pop() == 0 {
			p.GoSouth()
		} else {
			p.GoNorth()
		}
	default:
		p.Reverse()
	}
	return ip.Result{}
}

func toysTumbler(p *ip.IP, ctx ip.Context) ip.Result {
	sp := ctx.Space()
	switch ctx.Rand().Intn(4) {
	case 0:
		sp.Set(p.Position, '^')
		p.GoNorth()
	case 1:
		sp.Set(p.Position, '>')
		p.GoEast()
	case 2:
		sp.Set(p.Position, 'v')
		p.GoSouth()
	case 3:
		sp.Set(p.Position, '<')
		p.GoWest()
	}
	return ip.Result{}
}

func toysDixiecup(p *ip.IP, ctx ip.Context) ip.Result {
	s := p.Stacks.Top()
	t := s.PopVector()
	d := s.PopVector()
	o := s.PopVector()
	if d.X == 0 || d.Y == 0 {
		return ip.Result{}
	}
	if d.X < 0 || d.Y < 0 {
		p.Reverse()
		return ip.Result{}
	}
	sp := ctx.Space()
	for x := d.X - 1; x >= 0; x-- {
		for y := d.Y - 1; y >= 0; y-- {
			off := vector.Vector{X: x, Y: y}
			sp.SetOff(off, t, sp.GetOff(off, o))
			sp.SetOff(off, o, vector.Space)
		}
	}
	return ip.Result{}
}

func toysTelevisionAntenna(p *ip.IP, ctx ip.Context) ip.Result {
	sp := ctx.Space()
	s := p.Stacks.Top()
	vect := s.PopVector()
	v := s.Pop()
	c := sp.Get(vect)
	switch {
	case c < v:
		s.Push(v)
		s.PushVector(vect.Sub(p.Offset))
		p.Forward(-1, sp)
	case c > v:
		p.Reverse()
	}
	return ip.Result{}
}

func toysBuriedTreasure(p *ip.IP, _ ip.Context) ip.Result {
	p.Position.X++
	return ip.Result{}
}

func toysSlingshot(p *ip.IP, _ ip.Context) ip.Result {
	p.Position.Y++
	return ip.Result{}
}

func toysBarnDoor(p *ip.IP, _ ip.Context) ip.Result {
	// Requires trefunge (3-D) storage; out of scope per SPEC_FULL.md.
	p.Reverse()
	return ip.Result{}
}
