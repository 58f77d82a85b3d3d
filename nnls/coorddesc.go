// SPDX-License-Identifier: MIT

package nnls

import (
	"fmt"
	"math"

	"github.com/katalvlaran/sigdiff/matrix"
	"gonum.org/v1/gonum/floats"
)

// coordDesc fits b ≈ A·x with x ≥ 0 and no intercept by cyclic coordinate
// descent on the normal equations, the way positive linear regression is
// usually solved. Each coordinate update is the exact 1-D minimizer clamped
// at zero:
//
//	x_j ← max(0, x_j − g_j / G_jj),   g = Gx − c.
//
// The gradient g is kept current with a rank-one update per change.
// A sweep that moves no coordinate by more than tol·max(1, ‖x‖∞) ends the
// iteration. Columns of A that are identically zero get x_j = 0.
type coordDesc struct {
	opts Options
}

// Backend reports PositiveRegression.
func (s *coordDesc) Backend() Backend { return PositiveRegression }

// Solve runs coordinate descent. Iterations counts full sweeps.
func (s *coordDesc) Solve(a matrix.Matrix, b []float64) (Solution, error) {
	p, sol, done, err := prepare("PositiveRegression", PositiveRegression, a, b)
	if err != nil || done {
		return sol, err
	}

	n := p.n
	g, c := p.normalEquations()

	x := make([]float64, n)
	grad := make([]float64, n)
	floats.ScaleTo(grad, -1, c) // g = G·0 − c

	maxIter := s.opts.budget(defaultIterativeBudget)
	for sweep := 1; sweep <= maxIter; sweep++ {
		moved, scale := 0.0, 0.0
		for j := 0; j < n; j++ {
			gjj := g.At(j, j)
			if gjj <= 0 {
				continue
			}
			next := math.Max(0, x[j]-grad[j]/gjj)
			delta := next - x[j]
			if delta != 0 {
				x[j] = next
				for i := 0; i < n; i++ {
					grad[i] += delta * g.At(i, j)
				}
			}
			moved = math.Max(moved, math.Abs(delta))
			scale = math.Max(scale, x[j])
		}
		if moved <= s.opts.Tolerance*math.Max(1, scale) {
			return p.finish(PositiveRegression, x, sweep), nil
		}
	}

	return p.finish(PositiveRegression, x, maxIter),
		fmt.Errorf("PositiveRegression: %d sweeps: %w", maxIter, ErrNotConverged)
}
