// Package maincmd implements gofunge's CLI entry point: flag parsing,
// loading a program into Funge-space and running it to completion.
//
// The flag/dispatch shape (struct-tag-driven flags, mainer.Parser,
// mainer.Stdio, mainer.CancelOnSignal) is carried over from nenuphar's own
// internal/maincmd.go; this package has only one command (run a program)
// instead of nenuphar's parse/resolve/tokenize trio, so the reflection-based
// buildCmds dispatcher nenuphar used is unneeded here.
package maincmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mna/mainer"

	"gofunge/lang/machine"
	"gofunge/lang/space"
	"gofunge/lang/vector"
)

const binName = "gofunge"

var (
	shortUsage = fmt.Sprintf(`
usage: %s [<option>...] <program> [-- <arg>...]
Run '%[1]s --help' for details.
`, binName)

	longUsage = fmt.Sprintf(`usage: %s [<option>...] <program> [-- <arg>...]
       %[1]s -h|--help
       %[1]s -v|--version

A Funge-93/98/109 interpreter.

Valid flag options are:
       -h --help                 Show this help and exit.
       -v --version              Print version and exit.
       -b --sandbox              Disable "=", "i", "o" and file-opening
                                 fingerprints; they reflect instead.
       -S --strict               Only load fingerprints gofunge considers
                                 standard; reject everything else.
       -s --cell-bits <n>        Cell width in bits, 32 or 64 (default 32).
       -f --standard <std>       Dialect: 93, 98, or 109 (default 98).
       -w --warnings             Print non-fatal warnings to stderr.
       -t --trace <n>            Trace level, 0 (silent) to 9 (verbose).

More information on the gofunge repository:
       https://github.com/mna/gofunge
`, binName)
)

type Cmd struct {
	BuildVersion string
	BuildDate    string

	Help    bool `flag:"h,help"`
	Version bool `flag:"v,version"`

	Sandbox  bool   `flag:"b,sandbox"`
	Strict   bool   `flag:"S,strict"`
	CellBits int    `flag:"s,cell-bits"`
	Standard string `flag:"f,standard"`
	Warnings bool   `flag:"w,warnings"`
	Trace    int    `flag:"t,trace"`

	args []string
}

func (c *Cmd) SetArgs(args []string) { c.args = args }

func (c *Cmd) SetFlags(map[string]bool) {}

func (c *Cmd) Validate() error {
	if c.Help || c.Version {
		return nil
	}
	if len(c.args) == 0 {
		return fmt.Errorf("no program file specified")
	}
	switch c.CellBits {
	case 0:
		c.CellBits = 32
	case 32, 64:
	default:
		return fmt.Errorf("invalid -s cell width %d: must be 32 or 64", c.CellBits)
	}
	switch c.Standard {
	case "":
		c.Standard = "98"
	case "93", "98", "109":
	default:
		return fmt.Errorf("invalid -f standard %q: must be 93, 98, or 109", c.Standard)
	}
	if c.Trace < 0 || c.Trace > 9 {
		return fmt.Errorf("invalid -t trace level %d: must be 0-9", c.Trace)
	}
	return nil
}

func (c *Cmd) Main(args []string, stdio mainer.Stdio) mainer.ExitCode {
	p := mainer.Parser{
		EnvVars:   false,
		EnvPrefix: binName + "_",
	}
	if err := p.Parse(args, c); err != nil {
		fmt.Fprintf(stdio.Stderr, "invalid arguments: %s\n%s", err, shortUsage)
		return mainer.InvalidArgs
	}

	switch {
	case c.Help:
		fmt.Fprint(stdio.Stdout, longUsage)
		return mainer.Success
	case c.Version:
		fmt.Fprintf(stdio.Stdout, "%s %s %s\n", binName, c.BuildVersion, c.BuildDate)
		return mainer.Success
	}

	ctx := mainer.CancelOnSignal(context.Background(), os.Interrupt)

	programPath := c.args[0]
	progArgs := c.args[1:]

	m := machine.New()
	m.Stdin, m.Stdout, m.Stderr = stdio.Stdin, stdio.Stdout, stdio.Stderr
	m.Sandbox = c.Sandbox
	m.Strict = c.Strict
	m.Warnings = c.Warnings
	m.TraceLevel = c.Trace
	m.CellBits = c.CellBits
	m.Args = append([]string{programPath}, progArgs...)
	// 93 and 98 share the same engine, since Befunge-93 is a subset of
	// Funge-98; only 109 changes "k"'s move-past rule.
	if c.Standard == "109" {
		m.Standard = machine.Funge109
	}

	if _, err := space.Load(m.Grid(), programPath, vector.Zero, false); err != nil {
		fmt.Fprintf(stdio.Stderr, "%s: %s\n", binName, err)
		return mainer.Failure
	}

	code, err := m.Run(ctx)
	if err != nil {
		fmt.Fprintf(stdio.Stderr, "%s: %s\n", binName, err)
		return mainer.Failure
	}
	if code != 0 {
		return mainer.ExitCode(code)
	}
	return mainer.Success
}
