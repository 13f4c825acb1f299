package fingerprint

import (
	"io"
	"os"

	"gofunge/lang/ip"
	"gofunge/lang/vector"
)

// FileTable is the process-shared handle table the FILE fingerprint needs,
// ported from original_source/src/fingerprints/FILE/FILE.c's handles array:
// a lowest-free-slot allocator over a growing slice, rather than a realloc'd
// C array. It satisfies ip.FileHandles and is injected into the machine's
// Context once at construction (spec §4.F: the state belongs to the
// fingerprint, not to any single IP).
type FileTable struct {
	slots []*fileHandle
}

type fileHandle struct {
	file *os.File
	buf  vector.Vector
}

// NewFileTable returns an empty handle table.
func NewFileTable() *FileTable { return &FileTable{} }

func (t *FileTable) Open(f *os.File, buf vector.Vector) (vector.Cell, bool) {
	for i, s := range t.slots {
		if s == nil {
			t.slots[i] = &fileHandle{file: f, buf: buf}
			return vector.Cell(i), true
		}
	}
	t.slots = append(t.slots, &fileHandle{file: f, buf: buf})
	return vector.Cell(len(t.slots) - 1), true
}

func (t *FileTable) valid(h vector.Cell) bool {
	return h >= 0 && int(h) < len(t.slots) && t.slots[h] != nil
}

func (t *FileTable) Get(h vector.Cell) (*os.File, vector.Vector, bool) {
	if !t.valid(h) {
		return nil, vector.Vector{}, false
	}
	s := t.slots[h]
	return s.file, s.buf, true
}

func (t *FileTable) SetBuf(h vector.Cell, buf vector.Vector) {
	if t.valid(h) {
		t.slots[h].buf = buf
	}
}

func (t *FileTable) Close(h vector.Cell) bool {
	if !t.valid(h) {
		return false
	}
	t.slots[h] = nil
	return true
}

// fopenModes mirrors FILE.c's mode_table: the "Va" open mode argument is an
// index into this table, not an fopen() mode string itself.
var fopenModes = []struct {
	flag  int
	trunc bool
}{
	0: {os.O_RDONLY, false},
	1: {os.O_WRONLY | os.O_CREATE | os.O_TRUNC, false},
	2: {os.O_WRONLY | os.O_CREATE | os.O_APPEND, false},
	3: {os.O_RDWR, false},
	4: {os.O_RDWR | os.O_CREATE | os.O_TRUNC, false},
	5: {os.O_RDWR | os.O_CREATE | os.O_APPEND, false},
}

// FILE implements all nine of FILE.c's opcodes: open/close ('O'/'C'),
// delete ('D', via os.Remove, with no handle), line read/write ('G'/'P'),
// tell/seek ('L'/'S'), and byte transfer between an open file and the i/o
// buffer region of fungespace ('R'/'W').
func init() {
	register(&Descriptor{
		Name: "FILE",
		Handlers: map[byte]ip.Handler{
			'C': fileClose,
			'D': fileDelete,
			'G': fileGets,
			'L': fileTell,
			'O': fileOpen,
			'P': filePuts,
			'R': fileRead,
			'S': fileSeek,
			'W': fileWrite,
		},
	})
}

func fileClose(p *ip.IP, ctx ip.Context) ip.Result {
	s := p.Stacks.Top()
	h := s.Pop()
	f, _, ok := ctx.Files().Get(h)
	if !ok {
		p.Reverse()
		return ip.Result{}
	}
	if err := f.Close(); err != nil {
		p.Reverse()
	}
	ctx.Files().Close(h)
	return ip.Result{}
}

func fileDelete(p *ip.IP, _ ip.Context) ip.Result {
	s := p.Stacks.Top()
	name := s.PopString()
	if err := os.Remove(name); err != nil {
		p.Reverse()
	}
	return ip.Result{}
}

func fileGets(p *ip.IP, ctx ip.Context) ip.Result {
	s := p.Stacks.Top()
	h := s.Peek()
	f, _, ok := ctx.Files().Get(h)
	if !ok {
		p.Reverse()
		return ip.Result{}
	}
	// Read one byte at a time directly off f rather than through a buffered
	// reader: bufio.Reader would read ahead past the line and leave the
	// file's offset out of sync with what L (tell) and S (seek) report.
	var line []byte
	var b [1]byte
	for {
		n, err := f.Read(b[:])
		if n == 1 {
			line = append(line, b[0])
			if b[0] == '\n' {
				break
			}
		}
		if err != nil {
			if err != io.EOF {
				p.Reverse()
			}
			break
		}
	}
	s.PushString(string(line))
	s.Push(vector.Cell(len(line)))
	return ip.Result{}
}

func fileTell(p *ip.IP, ctx ip.Context) ip.Result {
	s := p.Stacks.Top()
	h := s.Peek()
	f, _, ok := ctx.Files().Get(h)
	if !ok {
		p.Reverse()
		return ip.Result{}
	}
	pos, err := f.Seek(0, io.SeekCurrent)
	if err != nil {
		p.Reverse()
		return ip.Result{}
	}
	s.Push(vector.Cell(pos))
	return ip.Result{}
}

func fileOpen(p *ip.IP, ctx ip.Context) ip.Result {
	s := p.Stacks.Top()
	name := s.PopString()
	mode := s.Pop()
	buf := s.PopVector()

	if mode < 0 || int(mode) >= len(fopenModes) {
		p.Reverse()
		return ip.Result{}
	}
	m := fopenModes[mode]
	f, err := os.OpenFile(name, m.flag, 0644)
	if err != nil {
		p.Reverse()
		return ip.Result{}
	}
	h, ok := ctx.Files().Open(f, buf)
	if !ok {
		f.Close()
		p.Reverse()
		return ip.Result{}
	}
	s.Push(h)
	return ip.Result{}
}

func filePuts(p *ip.IP, ctx ip.Context) ip.Result {
	s := p.Stacks.Top()
	str := s.PopString()
	h := s.Peek()
	f, _, ok := ctx.Files().Get(h)
	if !ok {
		p.Reverse()
		return ip.Result{}
	}
	if _, err := io.WriteString(f, str); err != nil {
		p.Reverse()
	}
	return ip.Result{}
}

func fileRead(p *ip.IP, ctx ip.Context) ip.Result {
	s := p.Stacks.Top()
	n := s.Pop()
	h := s.Peek()
	f, buf, ok := ctx.Files().Get(h)
	if !ok || n <= 0 {
		p.Reverse()
		return ip.Result{}
	}
	sp := ctx.Space()
	data := make([]byte, n)
	read, err := io.ReadFull(f, data)
	if err != nil && err != io.ErrUnexpectedEOF {
		p.Reverse()
	}
	v := buf
	for i := 0; i < read; i++ {
		sp.Set(v, vector.Cell(data[i]))
		v.X++
	}
	if vector.Cell(read) != n {
		p.Reverse()
	}
	return ip.Result{}
}

func fileSeek(p *ip.IP, ctx ip.Context) ip.Result {
	s := p.Stacks.Top()
	n := s.Pop()
	m := s.Pop()
	h := s.Peek()
	f, _, ok := ctx.Files().Get(h)
	if !ok {
		p.Reverse()
		return ip.Result{}
	}
	var whence int
	switch m {
	case 0:
		whence = io.SeekStart
	case 1:
		whence = io.SeekCurrent
	case 2:
		whence = io.SeekEnd
	default:
		p.Reverse()
		return ip.Result{}
	}
	if _, err := f.Seek(int64(n), whence); err != nil {
		p.Reverse()
	}
	return ip.Result{}
}

func fileWrite(p *ip.IP, ctx ip.Context) ip.Result {
	s := p.Stacks.Top()
	n := s.Pop()
	h := s.Peek()
	f, buf, ok := ctx.Files().Get(h)
	if !ok || n <= 0 {
		p.Reverse()
		return ip.Result{}
	}
	sp := ctx.Space()
	data := make([]byte, n)
	v := buf
	for i := range data {
		data[i] = byte(sp.Get(v))
		v.X++
	}
	if _, err := f.Write(data); err != nil {
		p.Reverse()
	}
	return ip.Result{}
}
