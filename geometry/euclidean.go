// SPDX-License-Identifier: MIT

package geometry

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Option configures a Euclidean kernel.
type Option func(*Euclidean)

// WithEpsilon sets the relative tolerance of the open-sphere test: q is
// inside only when |q−c|² < r² − eps·max(1, r²). Panics on a negative or
// non-finite eps.
func WithEpsilon(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic(panicEpsilonInvalid)
	}

	return func(k *Euclidean) { k.eps = eps }
}

// Euclidean implements Kernel with float64 arithmetic.
type Euclidean struct {
	eps float64
}

// NewEuclidean returns a Euclidean kernel, DefaultEpsilon unless overridden.
func NewEuclidean(opts ...Option) *Euclidean {
	k := &Euclidean{eps: DefaultEpsilon}
	for _, o := range opts {
		o(k)
	}

	return k
}

// Epsilon reports the configured tolerance.
func (k *Euclidean) Epsilon() float64 { return k.eps }

// SquaredCircumradius implements Kernel.
// Complexity: O(k²·n + k³) for k+1 points in R^n.
func (k *Euclidean) SquaredCircumradius(points []Point) (float64, error) {
	_, r2, err := circumsphere(points)
	if err != nil {
		return math.NaN(), fmt.Errorf("SquaredCircumradius: %w", err)
	}

	return r2, nil
}

// InsideOpenSphere implements Kernel. Points on the sphere, within the
// tolerance, are not inside.
func (k *Euclidean) InsideOpenSphere(face []Point, q Point) (bool, error) {
	c, r2, err := circumsphere(face)
	if err != nil {
		return false, fmt.Errorf("InsideOpenSphere: %w", err)
	}
	if len(q) != len(c) {
		return false, fmt.Errorf("InsideOpenSphere: %w", ErrDimensionMismatch)
	}

	return squared(q, c) < r2-k.eps*math.Max(1, r2), nil
}

// Circumcenter returns the center of the smallest circumsphere of points.
func (k *Euclidean) Circumcenter(points []Point) (Point, error) {
	c, _, err := circumsphere(points)
	if err != nil {
		return nil, fmt.Errorf("Circumcenter: %w", err)
	}

	return c, nil
}

// circumsphere solves the Gram system described in the package doc.
func circumsphere(points []Point) (Point, float64, error) {
	if len(points) == 0 {
		return nil, 0, ErrNoPoints
	}
	p0 := points[0]
	n := len(p0)
	for _, p := range points[1:] {
		if len(p) != n {
			return nil, 0, ErrDimensionMismatch
		}
	}
	if len(points) == 1 {
		return Point(append([]float64(nil), p0...)), 0, nil
	}
	k := len(points) - 1
	if k > n {
		return nil, 0, ErrDegenerate
	}

	// Rows of V are the edge vectors from p0.
	v := mat.NewDense(k, n, nil)
	b := mat.NewVecDense(k, nil)
	row := make([]float64, n)
	for i, p := range points[1:] {
		floats.SubTo(row, p, p0)
		v.SetRow(i, row)
		b.SetVec(i, floats.Dot(row, row))
	}

	g := mat.NewSymDense(k, nil)
	g.SymOuterK(2, v)

	var ch mat.Cholesky
	if ok := ch.Factorize(g); !ok {
		return nil, 0, ErrDegenerate
	}
	var lambda mat.VecDense
	if err := ch.SolveVecTo(&lambda, b); err != nil {
		return nil, 0, ErrDegenerate
	}

	var off mat.VecDense
	off.MulVec(v.T(), &lambda)
	c := make(Point, n)
	for i := range c {
		c[i] = p0[i] + off.AtVec(i)
	}

	return c, mat.Dot(&off, &off), nil
}
