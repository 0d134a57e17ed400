// SPDX-License-Identifier: MIT

package alpha

import (
	"io"
	"log/slog"
	"math"

	"github.com/katalvlaran/lvtopo/geometry"
)

// Option configures Build.
type Option func(*config)

type config struct {
	kernel   geometry.Kernel
	maxAlpha float64
	logger   *slog.Logger
}

func defaultConfig() config {
	return config{
		kernel:   geometry.NewEuclidean(),
		maxAlpha: math.Inf(1),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithKernel replaces the default Euclidean kernel. Panics on nil.
func WithKernel(k geometry.Kernel) Option {
	if k == nil {
		panic("alpha: WithKernel(nil)")
	}

	return func(c *config) { c.kernel = k }
}

// WithMaxAlphaSquare prunes simplices whose value exceeds limit (default
// +Inf). NaN or negative limits are rejected by Build.
func WithMaxAlphaSquare(limit float64) Option {
	return func(c *config) { c.maxAlpha = limit }
}

// WithLogger routes build diagnostics to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("alpha: WithLogger(nil)")
	}

	return func(c *config) { c.logger = l }
}
