// SPDX-License-Identifier: MIT

package nnls

import (
	"fmt"
	"math"

	"github.com/katalvlaran/sigdiff/matrix"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// New returns the Solver for backend b configured with opts.
// Unknown backends yield ErrInvalidOption.
func New(b Backend, opts ...Option) (Solver, error) {
	o := gatherOptions(opts)
	switch b {
	case ActiveSet:
		return &activeSet{opts: o}, nil
	case QuadraticProgram:
		return &projGrad{opts: o}, nil
	case PositiveRegression:
		return &coordDesc{opts: o}, nil
	default:
		return nil, fmt.Errorf("New(%s): %w", b, ErrInvalidOption)
	}
}

// Solve is a convenience wrapper around New(b, opts...).Solve(a, rhs).
func Solve(b Backend, a matrix.Matrix, rhs []float64, opts ...Option) (Solution, error) {
	s, err := New(b, opts...)
	if err != nil {
		return Solution{}, err
	}

	return s.Solve(a, rhs)
}

// problem is a validated NNLS instance in gonum form.
type problem struct {
	m, n int
	a    *mat.Dense
	b    *mat.VecDense
	raw  []float64 // caller's b, read-only
}

// prepare validates (a, b) and converts them for gonum. When done is true
// the instance is degenerate and sol already holds the answer.
func prepare(op string, backend Backend, a matrix.Matrix, b []float64) (p problem, sol Solution, done bool, err error) {
	if err = matrix.ValidateNotNil(a); err != nil {
		return p, sol, false, fmt.Errorf("%s: %w", op, err)
	}
	p.m, p.n = a.Rows(), a.Cols()
	if err = matrix.ValidateVecLen(b, p.m); err != nil {
		return p, sol, false, fmt.Errorf("%s: b: %w", op, err)
	}
	if err = matrix.ValidateFinite(a); err != nil {
		return p, sol, false, fmt.Errorf("%s: A: %w", op, err)
	}
	if err = matrix.ValidateFiniteVec(b); err != nil {
		return p, sol, false, fmt.Errorf("%s: b: %w", op, err)
	}

	if p.m == 0 || p.n == 0 {
		sol = Solution{X: make([]float64, p.n), ResidualNorm: norm2(b), Backend: backend}

		return p, sol, true, nil
	}

	if p.a, err = matrix.ToGonum(a); err != nil {
		return p, sol, false, fmt.Errorf("%s: %w", op, err)
	}
	p.raw = b
	p.b = mat.NewVecDense(p.m, append([]float64(nil), b...))

	return p, sol, false, nil
}

// finish clamps x onto the orthant and fills the residual.
func (p problem) finish(backend Backend, x []float64, iters int) Solution {
	for i, v := range x {
		if v <= 0 {
			x[i] = 0 // also normalizes -0
		}
	}

	return Solution{X: x, ResidualNorm: p.residual(x), Iterations: iters, Backend: backend}
}

// residual returns ‖A·x − b‖₂.
func (p problem) residual(x []float64) float64 {
	var ax mat.VecDense
	ax.MulVec(p.a, mat.NewVecDense(p.n, x))
	r := ax.RawVector().Data
	floats.Sub(r, p.raw)

	return norm2(r)
}

// normalEquations returns G = AᵀA and c = Aᵀb.
func (p problem) normalEquations() (*mat.SymDense, []float64) {
	var g mat.SymDense
	g.SymOuterK(1, p.a.T())

	var c mat.VecDense
	c.MulVec(p.a.T(), p.b)

	return &g, c.RawVector().Data
}

func norm2(v []float64) float64 {
	if len(v) == 0 {
		return 0
	}

	return floats.Norm(v, 2)
}

// KKTViolation measures how far x is from satisfying the optimality
// conditions of min ‖A·x − b‖² s.t. x ≥ 0. With w = Aᵀ(b − A·x) it returns
// the largest of:
//
//	max(0, −x_j)            primal feasibility
//	max(0, w_j)  for x_j=0  dual feasibility
//	|w_j|        for x_j>0  complementary slackness
//
// A solution is optimal iff the result is 0; numerically, compare it with a
// tolerance scaled to ‖A‖·‖b‖.
func KKTViolation(a matrix.Matrix, b, x []float64) (float64, error) {
	p, _, done, err := prepare("KKTViolation", ActiveSet, a, b)
	if err != nil {
		return 0, err
	}
	if err = matrix.ValidateVecLen(x, a.Cols()); err != nil {
		return 0, fmt.Errorf("KKTViolation: x: %w", err)
	}
	if err = matrix.ValidateFiniteVec(x); err != nil {
		return 0, fmt.Errorf("KKTViolation: x: %w", err)
	}

	worst := 0.0
	for _, v := range x {
		worst = math.Max(worst, -v)
	}
	if done {
		return worst, nil
	}

	w := p.dual(x)
	for j, wj := range w {
		if x[j] > 0 {
			worst = math.Max(worst, math.Abs(wj))
		} else {
			worst = math.Max(worst, wj)
		}
	}

	return worst, nil
}

// dual returns w = Aᵀ(b − A·x).
func (p problem) dual(x []float64) []float64 {
	var ax mat.VecDense
	ax.MulVec(p.a, mat.NewVecDense(p.n, x))
	r := ax.RawVector().Data
	floats.SubTo(r, p.raw, r)

	var w mat.VecDense
	w.MulVec(p.a.T(), mat.NewVecDense(p.m, r))

	return w.RawVector().Data
}
