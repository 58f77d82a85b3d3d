// SPDX-License-Identifier: MIT

// Package matrix: read-only numeric helpers shared by the solvers and tests.
// Every helper takes the *Dense fast path when it can and falls back to the
// interface accessors otherwise; both paths produce bit-identical results.
package matrix

import (
	"fmt"
	"math"
)

// MatVec computes y = m·x.
// Implementation:
//   - Stage 1: validate m non-nil and len(x) == Cols().
//   - Stage 2: row-major accumulation, *Dense reads the flat slice directly.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Determinism: fixed i→j accumulation order.
// Complexity: Time O(r*c), Space O(r).
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("MatVec: %w", err)
	}
	if len(x) != m.Cols() {
		return nil, fmt.Errorf("MatVec: len(x)=%d, cols=%d: %w", len(x), m.Cols(), ErrDimensionMismatch)
	}

	var (
		r, c = m.Rows(), m.Cols()
		y    = make([]float64, r)
		i, j int
		sum  float64
	)
	if d, ok := m.(*Dense); ok {
		for i = 0; i < r; i++ {
			sum = 0
			row := d.data[i*c : (i+1)*c]
			for j = 0; j < c; j++ {
				sum += row[j] * x[j]
			}
			y[i] = sum
		}

		return y, nil
	}

	var v float64
	for i = 0; i < r; i++ {
		sum = 0
		for j = 0; j < c; j++ {
			v, _ = m.At(i, j)
			sum += v * x[j]
		}
		y[i] = sum
	}

	return y, nil
}

// Equal reports whether a and b have the same shape and bit-identical
// elements. Two nil matrices are equal; NaN never equals NaN.
// Complexity: O(r*c).
func Equal(a, b Matrix) bool {
	if ValidateNotNil(a) != nil || ValidateNotNil(b) != nil {
		return ValidateNotNil(a) != nil && ValidateNotNil(b) != nil
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false
	}

	var (
		i, j   int
		av, bv float64
	)
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < a.Cols(); j++ {
			av, _ = a.At(i, j)
			bv, _ = b.At(i, j)
			if av != bv {
				return false
			}
		}
	}

	return true
}

// AllClose reports whether |a[i,j] − b[i,j]| ≤ tol for every element.
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf (bad tol).
// Complexity: O(r*c).
func AllClose(a, b Matrix, tol float64) (bool, error) {
	if err := ValidateNotNil(a); err != nil {
		return false, fmt.Errorf("AllClose: %w", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, fmt.Errorf("AllClose: %w", err)
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false, fmt.Errorf("AllClose: %w", ErrDimensionMismatch)
	}
	if isNonFinite(tol) || tol < 0 {
		return false, fmt.Errorf("AllClose: tol=%v: %w", tol, ErrNaNInf)
	}

	var (
		i, j   int
		av, bv float64
	)
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < a.Cols(); j++ {
			av, _ = a.At(i, j)
			bv, _ = b.At(i, j)
			if math.Abs(av-bv) > tol {
				return false, nil
			}
		}
	}

	return true, nil
}
