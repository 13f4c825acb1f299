// Package machine implements the Funge-98/109 interpreter loop: the
// per-tick walk over every live instruction pointer, instruction dispatch,
// and the process-wide collaborators (Funge-space, the random-number
// source, a clock, the fingerprint registry and its shared file handles)
// that spec-level instructions need beyond a single IP.
//
// The overall shape is grounded on nenuphar's Thread (its former
// lang/machine/thread.go): stdio fields, a Run-style entry point, a
// step/iteration guard. Funge has no bytecode or call stack, so the
// fetch-decode-execute loop here walks a live IP list over a 2-D grid
// instead of a program counter over a flat instruction array.
package machine

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math/rand"
	"time"

	"gofunge/lang/fingerprint"
	"gofunge/lang/ip"
	"gofunge/lang/space"
	"gofunge/lang/vector"
)

// Standard is which dialect's "move past an instruction just executed under
// k" rule to use for the iterate ("k") instruction (spec §4.H).
type Standard int

const (
	Funge93 Standard = iota
	Funge98
	Funge109
)

// Machine owns a single Funge program's entire running state: its
// Funge-space, the list of live IPs, and every external collaborator the
// 98-opcode table or a loaded fingerprint may call on. It implements
// ip.Context so it can be passed directly as the Context argument to
// fingerprint.Dispatch and to the static opcode handlers.
type Machine struct {
	Stdin          io.Reader
	Stdout, Stderr io.Writer

	randSrc *rand.Rand
	Clock   func() time.Time

	grid *space.Space
	IPs  *ip.List

	Fingerprints *fingerprint.Manager
	files        *fingerprint.FileTable

	Standard Standard
	CellBits int  // -s: 32 or 64, reported by "y" only; cells are always int64
	Sandbox  bool // -b: disable i/o/=, and the FILE fingerprint
	Strict   bool // -S: only the registered fingerprints understood as "standard"

	TraceLevel int
	Warnings   bool

	Args []string
	Env  []string

	exitCode    int
	exitPending bool

	bufStdin *bufio.Reader
}

// stdinReader lazily wraps m.Stdin in a single, reused *bufio.Reader so that
// successive "&"/"~" input instructions see a consistent stream instead of
// each buffering (and potentially discarding read-ahead) independently.
func (m *Machine) stdinReader() *bufio.Reader {
	if m.bufStdin == nil {
		m.bufStdin = bufio.NewReader(m.Stdin)
	}
	return m.bufStdin
}

// New returns a Machine with a fresh empty Funge-space and a single IP at
// the origin moving east, the state a program starts execution in.
func New() *Machine {
	m := &Machine{
		grid:         space.New(),
		IPs:          ip.NewList(ip.New()),
		Fingerprints: fingerprint.NewManager(),
		files:        fingerprint.NewFileTable(),
		randSrc:      rand.New(rand.NewSource(1)),
		Clock:        time.Now,
		Standard:     Funge98,
		CellBits:     32,
	}
	// -b disables the one fingerprint that can touch the filesystem; -S
	// would reject anything outside gofunge's idea of "standard", but every
	// fingerprint gofunge ships (ROMA, TOYS, FILE) is one of cfunge's own
	// standard set, so -S has no current target (spec's Non-goal: no
	// catalog beyond these three).
	m.Fingerprints.Gate = func(_ fingerprint.ID, name string) bool {
		if m.Sandbox && name == "FILE" {
			return false
		}
		return true
	}
	return m
}

// Grid returns the Funge-space this machine is executing over, for callers
// (loaders, tests, "y") that need direct access beyond the ip.Context view.
func (m *Machine) Grid() *space.Space { return m.grid }

// Space, Rand and Files implement ip.Context.
func (m *Machine) Space() ip.SpaceAccessor { return m.grid }
func (m *Machine) Rand() *rand.Rand        { return m.randSrc }
func (m *Machine) Files() ip.FileHandles   { return m.files }

// requestExit implements "@"/"q": the next Run iteration stops and reports
// code.
func (m *Machine) requestExit(code int) {
	m.exitCode = code
	m.exitPending = true
}

// Run executes the program until every IP has terminated (via "@" or "q",
// or running off the last live IP), returning the process exit code (spec
// §4.I, §7) and a fatal error, if any occurred. ctx is checked once per tick
// so a long-running program can be interrupted cleanly (e.g. by
// mainer.CancelOnSignal): on cancellation Run stops before the next tick and
// returns ctx.Err().
func (m *Machine) Run(ctx context.Context) (int, error) {
	for m.IPs.Len() > 0 {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		spawned := m.tick()
		for _, p := range spawned {
			m.IPs.Append(p)
		}
		m.IPs.RemoveDead()
		if m.exitPending {
			return m.exitCode, nil
		}
	}
	return 0, nil
}

// tick advances every IP currently in m.IPs by exactly one instruction, per
// spec §4.I's rule that IPs spawned mid-tick (by "t") run starting next
// tick, not the same one: it snapshots the live set before executing any of
// them.
func (m *Machine) tick() []*ip.IP {
	live := m.IPs.Snapshot()
	var spawned []*ip.IP
	for _, p := range live {
		if p.Dead {
			continue
		}
		spawned = append(spawned, m.step(p)...)
		if m.exitPending {
			break
		}
	}
	return spawned
}

// step executes the single instruction at p's current position, then
// advances p past it (spec §4.I). It returns any IPs p spawned via "t".
func (m *Machine) step(p *ip.IP) []*ip.IP {
	cell := m.grid.Get(p.Position)
	spawned := m.execCell(p, cell)
	if !p.Dead {
		// In string mode every cell, spaces and ";" included, is data to push,
		// so the IP moves one raw cell instead of skipping.
		if p.StringMode {
			p.Step(m.grid)
		} else {
			p.Advance(m.grid)
		}
	}
	return spawned
}

// execCell runs the instruction cell as if fetched at p's current position,
// without moving p. It is shared by step (the ordinary one-cell-per-tick
// path) and iterate.go's "k" (which must run an instruction some number of
// times without p's position changing between repetitions).
func (m *Machine) execCell(p *ip.IP, cell vector.Cell) []*ip.IP {
	if p.StringMode {
		if cell == '"' {
			p.StringMode = false
		} else {
			p.Stacks.Top().Push(cell)
		}
		return nil
	}

	if cell >= 'A' && cell <= 'Z' {
		res := fingerprint.Dispatch(p, m, byte(cell))
		if res.Reflect {
			p.Reverse()
		}
		if res.Terminate {
			p.Dead = true
		}
		return nil
	}

	switch {
	case cell >= '0' && cell <= '9':
		p.Stacks.Top().Push(cell - '0')
		return nil
	case cell == vector.Space:
		return nil
	default:
		if h, ok := staticOps[byte(cell)]; ok {
			return h(m, p)
		}
		p.Reverse()
		return nil
	}
}

// warnf reports a non-fatal condition (spec §7's "warning" channel) to
// Stderr when -w is active; safe to call regardless of m.Warnings.
func (m *Machine) warnf(format string, args ...interface{}) {
	if !m.Warnings {
		return
	}
	fmt.Fprintf(m.Stderr, "gofunge: warning: "+format+"\n", args...)
}
