// SPDX-License-Identifier: MIT

package nnls

import (
	"fmt"
	"math"

	"github.com/katalvlaran/sigdiff/matrix"
	"gonum.org/v1/gonum/mat"
)

// activeSet implements the Lawson–Hanson algorithm.
//
// State: a passive set P of free coordinates and the zero set Z = ¬P.
// Outer loop: compute the dual w = Aᵀ(b − A·x); if no w_j (j ∈ Z) exceeds
// the dual tolerance, x is optimal. Otherwise move the most positive w_j
// into P and solve the unconstrained least-squares problem on the columns
// of P (QR). Inner loop: while that solution z has non-positive entries,
// step from x toward z until the first coordinate hits zero and move such
// coordinates back into Z.
//
// A column whose addition makes the sub-problem rank deficient, or whose
// coefficient comes out non-positive, is rejected for the current outer
// iteration and the next-best candidate is tried.
type activeSet struct {
	opts Options
}

// Backend reports ActiveSet.
func (s *activeSet) Backend() Backend { return ActiveSet }

// Solve runs Lawson–Hanson. Iterations counts passive-set updates (one per
// entering column plus one per feasibility-restoring step); the default
// budget is 3·Cols(A).
func (s *activeSet) Solve(a matrix.Matrix, b []float64) (Solution, error) {
	p, sol, done, err := prepare("ActiveSet", ActiveSet, a, b)
	if err != nil || done {
		return sol, err
	}

	m, n := p.m, p.n
	maxIter := s.opts.budget(3 * n)

	// Dual tolerance as in lsqnonneg: 10·eps·‖A‖₁·max(m,n), floored by the
	// configured tolerance.
	dualTol := 10 * eps * mat.Norm(p.a, 1) * float64(max(m, n))
	dualTol = math.Max(dualTol, s.opts.Tolerance)

	x := make([]float64, n)
	passive := make([]bool, n)
	rejected := make([]bool, n)
	iter := 0

	for {
		if count(passive) >= m {
			break // no room for another independent column
		}

		w := p.dual(x)
		var z []float64
		for {
			j := pickEntering(w, passive, rejected, dualTol)
			if j < 0 {
				break
			}
			passive[j] = true
			cand, ok := p.solvePassive(passive)
			if ok && cand[j] > 0 {
				z = cand

				break
			}
			passive[j] = false
			rejected[j] = true
		}
		if z == nil {
			break // KKT satisfied on every admissible column
		}
		clear(rejected)

		iter++
		if iter > maxIter {
			return p.finish(ActiveSet, x, maxIter),
				fmt.Errorf("ActiveSet: %d iterations: %w", maxIter, ErrNotConverged)
		}

		// Inner loop: restore feasibility of z.
		for !allPositive(z, passive) {
			iter++
			if iter > maxIter {
				return p.finish(ActiveSet, x, maxIter),
					fmt.Errorf("ActiveSet: %d iterations: %w", maxIter, ErrNotConverged)
			}

			alpha, blocking := math.Inf(1), -1
			for i, in := range passive {
				if in && z[i] <= 0 {
					if r := x[i] / (x[i] - z[i]); r < alpha {
						alpha, blocking = r, i
					}
				}
			}
			scale := 0.0
			for i, in := range passive {
				if in {
					x[i] += alpha * (z[i] - x[i])
					scale = math.Max(scale, math.Abs(x[i]))
				}
			}
			for i, in := range passive {
				if in && (i == blocking || x[i] <= zeroTol*(1+scale)) {
					x[i] = 0
					passive[i] = false
				}
			}

			if count(passive) == 0 {
				z = make([]float64, n)

				break
			}
			var ok bool
			if z, ok = p.solvePassive(passive); !ok {
				return p.finish(ActiveSet, x, iter),
					fmt.Errorf("ActiveSet: passive sub-problem lost rank: %w", ErrNotConverged)
			}
		}
		copy(x, z)
	}

	return p.finish(ActiveSet, x, iter), nil
}

const (
	eps     = 0x1p-52
	zeroTol = 1e-14
)

// pickEntering returns the zero-set index with the largest dual value above
// tol, or -1. Ties go to the lowest index.
func pickEntering(w []float64, passive, rejected []bool, tol float64) int {
	best, bestW := -1, tol
	for j, wj := range w {
		if passive[j] || rejected[j] {
			continue
		}
		if wj > bestW {
			best, bestW = j, wj
		}
	}

	return best
}

// solvePassive solves min ‖A_P·z_P − b‖ by QR on the passive columns and
// returns z scattered to length n (zeros outside P). ok is false when the
// sub-problem is ill-conditioned or P is empty.
func (p problem) solvePassive(passive []bool) (z []float64, ok bool) {
	idx := make([]int, 0, p.n)
	for j, in := range passive {
		if in {
			idx = append(idx, j)
		}
	}
	if len(idx) == 0 || len(idx) > p.m {
		return nil, false
	}

	ap := mat.NewDense(p.m, len(idx), nil)
	col := make([]float64, p.m)
	for k, j := range idx {
		ap.SetCol(k, mat.Col(col, j, p.a))
	}

	var qr mat.QR
	qr.Factorize(ap)
	var zp mat.VecDense
	if err := qr.SolveVecTo(&zp, false, p.b); err != nil {
		return nil, false // mat.Condition: columns numerically dependent
	}

	z = make([]float64, p.n)
	for k, j := range idx {
		v := zp.AtVec(k)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, false
		}
		z[j] = v
	}

	return z, true
}

func allPositive(z []float64, passive []bool) bool {
	for i, in := range passive {
		if in && z[i] <= 0 {
			return false
		}
	}

	return true
}

func count(set []bool) int {
	c := 0
	for _, in := range set {
		if in {
			c++
		}
	}

	return c
}
