package ip

import (
	"math/rand"
	"os"

	"gofunge/lang/vector"
)

// SpaceAccessor is the subset of *space.Space that fingerprint handlers may
// need beyond simple movement (SpaceReader): direct and offset-relative
// read/write, and the bounding rectangle (spec §4.B). Declaring it here,
// rather than importing lang/space, keeps this package's only dependency
// direction lang/ip -> lang/vector/lang/stack; lang/machine supplies the
// concrete *space.Space, which satisfies this interface structurally.
type SpaceAccessor interface {
	SpaceReader
	Set(p vector.Vector, v vector.Cell)
	GetOff(p, off vector.Vector) vector.Cell
	SetOff(p, off vector.Vector, v vector.Cell)
	BoundingRect() vector.Rect
}

// FileHandles is the process-shared, fingerprint-owned file handle table
// the FILE fingerprint needs (spec §4.F: "own that state outside any IP...
// lowest free slot, growing as needed"). Declared here rather than in
// package fingerprint so handlers (of type Handler, declared here too) can
// close over it through Context without an import cycle.
type FileHandles interface {
	// Open allocates the lowest free handle for f with i/o buffer vector
	// buf, returning it, or ok=false if no handle could be allocated.
	Open(f *os.File, buf vector.Vector) (handle vector.Cell, ok bool)
	// Get returns the open file and current i/o buffer vector for handle,
	// or ok=false if handle is not currently valid.
	Get(handle vector.Cell) (f *os.File, buf vector.Vector, ok bool)
	// SetBuf updates the i/o buffer vector recorded for handle.
	SetBuf(handle vector.Cell, buf vector.Vector)
	// Close frees handle without closing its file (the caller does that),
	// returning false if it was not valid.
	Close(handle vector.Cell) bool
}

// Context is the set of process-wide collaborators a fingerprint handler
// may need beyond the IP it was invoked with: the shared Funge-space, the
// external random-number source (spec §1's "random-number source"
// collaborator, used by e.g. TOYS's 'U'), and the FILE fingerprint's shared
// handle table.
type Context interface {
	Space() SpaceAccessor
	Rand() *rand.Rand
	Files() FileHandles
}
