// SPDX-License-Identifier: MIT

// Package sample generates deterministic point clouds and picks landmarks.
//
// Generators: Circle, Sphere, UniformCube and Grid. Landmark selection:
// RandomSubset and FarthestPoints (greedy max-min). Randomness flows only
// through the options; the same seed always yields the same output.
//
// Options:
//
//   - WithSeed(s) / WithRand(r)  RNG source (default seed 1)
//   - WithNoise(σ)               Gaussian jitter added to every coordinate (default 0)
//   - WithRadius(r)              circle and sphere radius, cube half-side (default 1)
//
// Option constructors panic on nonsensical values; generators return errors.
package sample
