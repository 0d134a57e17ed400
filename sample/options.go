// SPDX-License-Identifier: MIT

package sample

import (
	"math"
	"math/rand"
)

// DefaultSeed seeds the RNG when neither WithSeed nor WithRand is given.
const DefaultSeed int64 = 1

// Option customizes a generator.
type Option func(*config)

type config struct {
	rng    *rand.Rand
	noise  float64
	radius float64
}

func newConfig(opts []Option) config {
	c := config{radius: 1}
	for _, o := range opts {
		o(&c)
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewSource(DefaultSeed))
	}

	return c
}

// WithSeed seeds a fresh RNG.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand uses r as RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("sample: WithRand(nil)")
	}

	return func(c *config) { c.rng = r }
}

// WithNoise adds N(0, sigma²) to every coordinate. Panics when sigma is
// negative or not finite.
func WithNoise(sigma float64) Option {
	if !(sigma >= 0) || math.IsInf(sigma, 0) {
		panic("sample: WithNoise(sigma<0 or non-finite)")
	}

	return func(c *config) { c.noise = sigma }
}

// WithRadius sets the radius. Panics when r is not positive and finite.
func WithRadius(r float64) Option {
	if !(r > 0) || math.IsInf(r, 0) {
		panic("sample: WithRadius(r<=0 or non-finite)")
	}

	return func(c *config) { c.radius = r }
}

func (c *config) jitter(p []float64) {
	if c.noise == 0 {
		return
	}
	for i := range p {
		p[i] += c.rng.NormFloat64() * c.noise
	}
}
