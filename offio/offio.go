// SPDX-License-Identifier: MIT

package offio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvtopo/alpha"
	"github.com/katalvlaran/lvtopo/collapse"
	"github.com/katalvlaran/lvtopo/geometry"
	"github.com/katalvlaran/lvtopo/simplex"
	"github.com/katalvlaran/lvtopo/topoerr"
)

// ErrMalformed indicates input that does not follow the expected format.
var ErrMalformed = topoerr.New(topoerr.ErrInvalidArgument, "offio: malformed input")

// Mesh is the content of an OFF file.
type Mesh struct {
	Dimension int
	Points    []geometry.Point
	Faces     [][]int
}

// Triangulation returns the faces of m as an alpha.Mesh.
func (m *Mesh) Triangulation() (*alpha.Mesh, error) {
	cells := make([][]alpha.Key, len(m.Faces))
	for i, f := range m.Faces {
		cells[i] = make([]alpha.Key, len(f))
		for j, k := range f {
			cells[i][j] = alpha.Key(k)
		}
	}

	return alpha.NewMesh(m.Points, cells)
}

// lines yields the non-empty, comment-stripped lines of r as fields.
type lines struct {
	sc   *bufio.Scanner
	line int
}

func newLines(r io.Reader) *lines {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)

	return &lines{sc: sc}
}

// next returns the fields of the next meaningful line, or io.EOF.
func (l *lines) next() ([]string, error) {
	for l.sc.Scan() {
		l.line++
		text := l.sc.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		if f := strings.Fields(text); len(f) > 0 {
			return f, nil
		}
	}
	if err := l.sc.Err(); err != nil {
		return nil, err
	}

	return nil, io.EOF
}

func (l *lines) malformed(format string, args ...any) error {
	return fmt.Errorf("line %d: %s: %w", l.line, fmt.Sprintf(format, args...), ErrMalformed)
}

// ReadOFF parses an OFF or nOFF document.
func ReadOFF(r io.Reader) (*Mesh, error) {
	l := newLines(r)

	// 1. Header.
	head, err := l.next()
	if err != nil {
		return nil, fmt.Errorf("ReadOFF: header: %w", eofAsMalformed(err))
	}
	m := &Mesh{}
	switch head[0] {
	case "OFF":
		m.Dimension = 3
		head = head[1:]
	case "nOFF":
		head = head[1:]
		if len(head) == 0 {
			if head, err = l.next(); err != nil {
				return nil, fmt.Errorf("ReadOFF: dimension: %w", eofAsMalformed(err))
			}
		}
		if m.Dimension, err = strconv.Atoi(head[0]); err != nil || m.Dimension < 1 {
			return nil, fmt.Errorf("ReadOFF: %w", l.malformed("bad dimension %q", head[0]))
		}
		head = head[1:]
	default:
		return nil, fmt.Errorf("ReadOFF: %w", l.malformed("unknown header %q", head[0]))
	}

	// 2. Counts, possibly on the header line.
	if len(head) == 0 {
		if head, err = l.next(); err != nil {
			return nil, fmt.Errorf("ReadOFF: counts: %w", eofAsMalformed(err))
		}
	}
	counts, err := l.ints(head, 2, 3)
	if err != nil {
		return nil, fmt.Errorf("ReadOFF: counts: %w", err)
	}
	nv, nf := counts[0], counts[1]
	if nv < 0 || nf < 0 {
		return nil, fmt.Errorf("ReadOFF: %w", l.malformed("negative counts"))
	}

	// 3. Vertices.
	m.Points = make([]geometry.Point, 0, nv)
	for i := 0; i < nv; i++ {
		f, err := l.next()
		if err != nil {
			return nil, fmt.Errorf("ReadOFF: vertex %d: %w", i, eofAsMalformed(err))
		}
		if len(f) != m.Dimension {
			return nil, fmt.Errorf("ReadOFF: vertex %d: %w", i, l.malformed("%d coordinates, want %d", len(f), m.Dimension))
		}
		p := make(geometry.Point, len(f))
		for j, s := range f {
			if p[j], err = strconv.ParseFloat(s, 64); err != nil {
				return nil, fmt.Errorf("ReadOFF: vertex %d: %w", i, l.malformed("bad coordinate %q", s))
			}
		}
		m.Points = append(m.Points, p)
	}

	// 4. Faces; trailing color values are ignored.
	m.Faces = make([][]int, 0, nf)
	for i := 0; i < nf; i++ {
		f, err := l.next()
		if err != nil {
			return nil, fmt.Errorf("ReadOFF: face %d: %w", i, eofAsMalformed(err))
		}
		k, err := strconv.Atoi(f[0])
		if err != nil || k < 1 || len(f) < k+1 {
			return nil, fmt.Errorf("ReadOFF: face %d: %w", i, l.malformed("bad vertex count %q", f[0]))
		}
		face, err := l.ints(f[1:k+1], k, k)
		if err != nil {
			return nil, fmt.Errorf("ReadOFF: face %d: %w", i, err)
		}
		for _, v := range face {
			if v < 0 || v >= nv {
				return nil, fmt.Errorf("ReadOFF: face %d: %w", i, l.malformed("vertex %d out of range", v))
			}
		}
		m.Faces = append(m.Faces, face)
	}

	return m, nil
}

// ReadEdgeList parses "u v [w]" lines into edges.
func ReadEdgeList(r io.Reader) ([]collapse.Edge, error) {
	l := newLines(r)
	var out []collapse.Edge
	for {
		f, err := l.next()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("ReadEdgeList: %w", err)
		}
		if len(f) < 2 || len(f) > 3 {
			return nil, fmt.Errorf("ReadEdgeList: %w", l.malformed("%d fields", len(f)))
		}
		uv, err := l.ints(f[:2], 2, 2)
		if err != nil {
			return nil, fmt.Errorf("ReadEdgeList: %w", err)
		}
		if uv[0] < 0 || uv[1] < 0 {
			return nil, fmt.Errorf("ReadEdgeList: %w", l.malformed("negative vertex"))
		}
		e := collapse.Edge{U: simplex.Vertex(uv[0]), V: simplex.Vertex(uv[1])}
		if len(f) == 3 {
			if e.Weight, err = strconv.ParseFloat(f[2], 64); err != nil {
				return nil, fmt.Errorf("ReadEdgeList: %w", l.malformed("bad weight %q", f[2]))
			}
		}
		out = append(out, e)
	}
}

// ints parses between lo and hi integer fields.
func (l *lines) ints(f []string, lo, hi int) ([]int, error) {
	if len(f) < lo || len(f) > hi {
		return nil, l.malformed("%d integers, want %d..%d", len(f), lo, hi)
	}
	out := make([]int, len(f))
	for i, s := range f {
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, l.malformed("bad integer %q", s)
		}
		out[i] = n
	}

	return out, nil
}

func eofAsMalformed(err error) error {
	if err == io.EOF {
		return fmt.Errorf("unexpected end of input: %w", ErrMalformed)
	}

	return err
}
