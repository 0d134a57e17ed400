// SPDX-License-Identifier: MIT

package collapse

import (
	"time"

	"github.com/katalvlaran/lvtopo/simplex"
	"github.com/katalvlaran/lvtopo/topoerr"
)

// Edge is an undirected, optionally weighted edge. U == V registers an
// isolated vertex.
type Edge struct {
	U, V   simplex.Vertex
	Weight float64
}

// Result summarizes one StrongCollapse run.
type Result struct {
	VerticesBefore int
	VerticesAfter  int
	EdgesBefore    int
	EdgesAfter     int
	Checks         int // neighborhood comparisons
	Duration       time.Duration
}

// Removed reports how many vertices the collapse eliminated.
func (r Result) Removed() int { return r.VerticesBefore - r.VerticesAfter }

// Sentinel errors for the collapse package.
var (
	// ErrNegativeVertex indicates a vertex id below zero.
	ErrNegativeVertex = topoerr.New(topoerr.ErrInvalidArgument, "collapse: negative vertex id")

	// ErrNilGraph indicates a nil gonum graph.
	ErrNilGraph = topoerr.New(topoerr.ErrInvalidArgument, "collapse: graph is nil")

	// ErrAlreadyCollapsed indicates a second StrongCollapse or an edit after it.
	ErrAlreadyCollapsed = topoerr.New(topoerr.ErrPrecondition, "collapse: complex already collapsed")

	// ErrUnknownVertex indicates a vertex that is absent or was eliminated.
	ErrUnknownVertex = topoerr.New(topoerr.ErrNotFound, "collapse: unknown vertex")
)
