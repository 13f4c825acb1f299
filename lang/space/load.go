package space

import (
	"bufio"
	"io"
	"os"

	"gofunge/lang/vector"
)

// Load reads program text from path and installs it into s at offset,
// returning a Rect at offset whose W and H are the loaded region's width
// (longest row) and height (row count) in cells. Unlike vector.Rect's
// inclusive max-minus-min convention, these are counts.
//
// In text mode, "\r\n", "\n" and "\r" each terminate a row (a CRLF pair
// counts as one terminator) and advance y, resetting x to 0; non-space
// characters are written via SetOff, spaces are left absent (per spec
// §4.B, matching original_source's FungeSpaceLoadAtOffset). In binary mode
// every byte, including spaces and newlines, is written verbatim at
// sequential x positions within a single row (y stays 0).
func Load(s *Space, path string, offset vector.Vector, binary bool) (vector.Rect, error) {
	f, err := os.Open(path)
	if err != nil {
		return vector.Rect{}, err
	}
	defer f.Close()
	return loadFrom(s, f, offset, binary)
}

func loadFrom(s *Space, r io.Reader, offset vector.Vector, binary bool) (vector.Rect, error) {
	br := bufio.NewReader(r)
	var x, y vector.Cell
	var maxX, maxY vector.Cell

	for {
		b, err := br.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return vector.Rect{}, err
		}

		if binary {
			s.SetOff(vector.Vector{X: x, Y: y}, offset, vector.Cell(b))
			x++
			if x > maxX {
				maxX = x
			}
			continue
		}

		switch b {
		case '\r':
			if peek, err := br.Peek(1); err == nil && len(peek) == 1 && peek[0] == '\n' {
				br.ReadByte()
			}
			if x > maxX {
				maxX = x
			}
			x, y = 0, y+1
			continue
		case '\n':
			if x > maxX {
				maxX = x
			}
			x, y = 0, y+1
			continue
		case '\f':
			// form-feed: page separator in 3-D (trefunge) sources; the 2-D core
			// treats it as a row terminator like newline, since full trefunge
			// instruction semantics are out of SPEC_FULL's scope.
			if x > maxX {
				maxX = x
			}
			x, y = 0, y+1
			continue
		}

		if vector.Cell(b) != vector.Space {
			s.SetOff(vector.Vector{X: x, Y: y}, offset, vector.Cell(b))
		}
		x++
		if x > maxX {
			maxX = x
		}
	}
	if x > 0 {
		y++
	}
	if y > maxY {
		maxY = y
	}
	return vector.Rect{X: offset.X, Y: offset.Y, W: maxX, H: maxY}, nil
}

// Save writes the cells from offset to offset+(size.W, size.H) inclusive to
// path, following vector.Rect's convention: (size.W+1) x (size.H+1) cells.
//
// In text mode, trailing spaces on each row are trimmed and rows are
// terminated with "\n"; reading the file back with Load in text mode is an
// identity over the region modulo that trimming. In binary mode every cell,
// byte-truncated, is emitted with no separators.
func Save(s *Space, path string, offset vector.Vector, size vector.Rect, text bool) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := bufio.NewWriter(f)

	maxY := offset.Y + size.H
	maxX := offset.X + size.W
	for y := offset.Y; y <= maxY; y++ {
		row := make([]byte, 0, size.W+1)
		for x := offset.X; x <= maxX; x++ {
			row = append(row, byte(s.Get(vector.Vector{X: x, Y: y})))
		}
		if text {
			for len(row) > 0 && row[len(row)-1] == byte(vector.Space) {
				row = row[:len(row)-1]
			}
			row = append(row, '\n')
		}
		if _, err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Flush()
}
