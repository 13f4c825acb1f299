package machine_test

import (
	"bytes"
	"context"
	"flag"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"gofunge/internal/filetest"
	"gofunge/lang/machine"
	"gofunge/lang/space"
	"gofunge/lang/vector"
)

var testUpdateMachineTests = flag.Bool("test.update-machine-tests", false, "If set, replace expected machine test results with actual results.")

// TestRun loads each program under testdata/in and runs it to completion,
// diffing its stdout and exit code against the golden files in testdata/out.
// These cover the core interpreter scenarios: plain output, the iterate
// instruction running a pushed instruction in place, a two-row program
// redirecting through a turn, a "t"-spawned concurrent IP, and loading a
// fingerprint and dispatching one of its letters.
func TestRun(t *testing.T) {
	srcDir, resultDir := filepath.Join("testdata", "in"), filepath.Join("testdata", "out")

	for _, fi := range filetest.SourceFiles(t, srcDir, ".fun") {
		t.Run(fi.Name(), func(t *testing.T) {
			m := machine.New()
			var out bytes.Buffer
			m.Stdin = strings.NewReader("")
			m.Stdout = &out
			m.Stderr = &out

			_, err := space.Load(m.Grid(), filepath.Join(srcDir, fi.Name()), vector.Zero, false)
			require.NoError(t, err)

			code, err := m.Run(context.Background())
			require.NoError(t, err)

			filetest.DiffOutput(t, fi, out.String(), resultDir, testUpdateMachineTests)
			filetest.DiffCustom(t, fi, "exit code", ".exit", strconv.Itoa(code), resultDir, testUpdateMachineTests)
		})
	}
}
