// SPDX-License-Identifier: MIT

package nnls

import (
	"fmt"
	"math"

	"github.com/katalvlaran/sigdiff/matrix"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// projGrad solves the quadratic program
//
//	minimize ½·xᵀGx − cᵀx   subject to x ≥ 0,   G = AᵀA, c = Aᵀb
//
// with FISTA (accelerated projected gradient) and gradient-based adaptive
// restart. The step is 1/L with L = λ_max(G) from a symmetric eigen
// decomposition. The method stops when the projected gradient
//
//	r(x) = x − max(0, x − (Gx − c))
//
// satisfies ‖r‖∞ ≤ tol·max(1, ‖c‖∞).
type projGrad struct {
	opts Options
}

// Backend reports QuadraticProgram.
func (s *projGrad) Backend() Backend { return QuadraticProgram }

// Solve runs FISTA. Iterations counts gradient steps.
func (s *projGrad) Solve(a matrix.Matrix, b []float64) (Solution, error) {
	p, sol, done, err := prepare("QuadraticProgram", QuadraticProgram, a, b)
	if err != nil || done {
		return sol, err
	}

	n := p.n
	g, c := p.normalEquations()

	var es mat.EigenSym
	if !es.Factorize(g, false) {
		return p.finish(QuadraticProgram, make([]float64, n), 0),
			fmt.Errorf("QuadraticProgram: eigen decomposition of AᵀA failed: %w", ErrNotConverged)
	}
	vals := es.Values(nil)
	lip := vals[len(vals)-1]
	if lip <= 0 {
		return p.finish(QuadraticProgram, make([]float64, n), 0), nil // A = 0
	}

	maxIter := s.opts.budget(defaultIterativeBudget)
	stop := s.opts.Tolerance * math.Max(1, floats.Norm(c, math.Inf(1)))

	x := make([]float64, n)    // current iterate
	prev := make([]float64, n) // previous iterate
	y := make([]float64, n)    // extrapolated point
	grad := make([]float64, n)
	t := 1.0

	gradAt := func(dst, v []float64) {
		var gv mat.VecDense
		gv.MulVec(g, mat.NewVecDense(n, v))
		floats.SubTo(dst, gv.RawVector().Data, c)
	}

	for k := 1; k <= maxIter; k++ {
		copy(prev, x)
		gradAt(grad, y)
		for i := range x {
			x[i] = math.Max(0, y[i]-grad[i]/lip)
		}

		gradAt(grad, x)
		if projectedGradNorm(x, grad) <= stop {
			return p.finish(QuadraticProgram, x, k), nil
		}

		// Restart when the momentum points uphill: (y − x)·(x − prev) > 0.
		uphill := 0.0
		for i := range x {
			uphill += (y[i] - x[i]) * (x[i] - prev[i])
		}
		if uphill > 0 {
			t = 1
			copy(y, x)

			continue
		}

		tn := (1 + math.Sqrt(1+4*t*t)) / 2
		beta := (t - 1) / tn
		for i := range y {
			y[i] = x[i] + beta*(x[i]-prev[i])
		}
		t = tn
	}

	return p.finish(QuadraticProgram, x, maxIter),
		fmt.Errorf("QuadraticProgram: %d iterations: %w", maxIter, ErrNotConverged)
}

// projectedGradNorm returns ‖x − max(0, x − grad)‖∞.
func projectedGradNorm(x, grad []float64) float64 {
	worst := 0.0
	for i, xi := range x {
		worst = math.Max(worst, math.Abs(xi-math.Max(0, xi-grad[i])))
	}

	return worst
}
