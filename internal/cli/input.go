// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvtopo/collapse"
	"github.com/katalvlaran/lvtopo/geometry"
	"github.com/katalvlaran/lvtopo/offio"
	"github.com/katalvlaran/lvtopo/sample"
)

func readOFF(path string) (*offio.Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := offio.ReadOFF(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}

func readEdges(path string) ([]collapse.Edge, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	edges, err := offio.ReadEdgeList(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return edges, nil
}

// parseShape reads "4x4" or "3x3x3".
func parseShape(s string) ([]int, error) {
	parts := strings.Split(s, "x")
	shape := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("grid %q: %w", s, ErrUsage)
		}
		shape[i] = n
	}

	return shape, nil
}

// samplePoints reads "kind:N" or "kind:N:dim" with kind circle, sphere or cube.
func samplePoints(s string, seed int64) ([]geometry.Point, error) {
	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return nil, fmt.Errorf("sample %q: %w", s, ErrUsage)
	}
	n, err := strconv.Atoi(parts[1])
	if err != nil {
		return nil, fmt.Errorf("sample %q: %w", s, ErrUsage)
	}
	dim := 0
	if len(parts) == 3 {
		if dim, err = strconv.Atoi(parts[2]); err != nil {
			return nil, fmt.Errorf("sample %q: %w", s, ErrUsage)
		}
	}
	switch parts[0] {
	case "circle":
		return sample.Circle(n, sample.WithSeed(seed))
	case "sphere":
		return sample.Sphere(n, max(dim, 3), sample.WithSeed(seed))
	case "cube":
		return sample.UniformCube(n, max(dim, 2), sample.WithSeed(seed))
	}

	return nil, fmt.Errorf("sample kind %q: %w", parts[0], ErrUsage)
}

// ripsEdges turns the points of path into the edges of length at most r.
// Every point becomes a vertex, isolated or not.
func ripsEdges(path string, r float64) ([]collapse.Edge, error) {
	m, err := readOFF(path)
	if err != nil {
		return nil, err
	}
	if len(m.Points) == 0 {
		return nil, fmt.Errorf("%s: %w", path, geometry.ErrNoPoints)
	}
	rips, err := geometry.RipsEdges(m.Points, r)
	if err != nil {
		return nil, err
	}
	out := make([]collapse.Edge, 0, len(rips)+len(m.Points))
	for i := range m.Points {
		out = append(out, collapse.Edge{U: vertex(i), V: vertex(i)})
	}
	for _, e := range rips {
		out = append(out, collapse.Edge{U: vertex(e.I), V: vertex(e.J), Weight: e.Length})
	}

	return out, nil
}

// oneOf checks that exactly one of the named inputs is set.
func oneOf(inputs map[string]string) error {
	set := 0
	names := make([]string, 0, len(inputs))
	for name, v := range inputs {
		names = append(names, "--"+name)
		if v != "" {
			set++
		}
	}
	if set != 1 {
		slices.Sort(names)
		return fmt.Errorf("exactly one of %s is required: %w", strings.Join(names, ", "), ErrUsage)
	}

	return nil
}
