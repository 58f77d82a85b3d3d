// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single source of truth for the validation checks shared by
//     half-vectorization, the solvers and the reconstruction pipeline.
//   - Return tagged sentinel errors so call sites can match with errors.Is.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing.
//   - Skew-symmetry check runs O(n²) over the upper triangle and the diagonal.
//
// Note:
//   - Composite validators follow a fixed sequence (NotNil → Square → Finite).

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil, including a typed nil *Dense.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
//
// Errors: ErrNilMatrix if nil, ErrNonSquare if not square.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquare", err)
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf(
			fmt.Sprintf("ValidateSquare: %dx%d", m.Rows(), m.Cols()), ErrNonSquare)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// A nil vector is accepted only when n == 0.
// Time: O(1). Space: O(1).
func ValidateVecLen(x []float64, n int) error {
	if x == nil && n != 0 {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix)
	}
	if len(x) != n {
		return validatorErrorf(
			fmt.Sprintf("ValidateVecLen: len %d, want %d", len(x), n), ErrDimensionMismatch)
	}

	return nil
}

// ValidateFinite rejects any NaN or ±Inf element of m.
//
// Errors: ErrNilMatrix, ErrNaNInf.
// Complexity: O(r*c). *Dense is scanned directly.
func ValidateFinite(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateFinite", err)
	}
	if d, ok := m.(*Dense); ok {
		for _, v := range d.data {
			if isNonFinite(v) {
				return validatorErrorf("ValidateFinite", ErrNaNInf)
			}
		}

		return nil
	}

	var (
		i, j int
		v    float64
	)
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			v, _ = m.At(i, j) // indices are in range by construction
			if isNonFinite(v) {
				return validatorErrorf("ValidateFinite", ErrNaNInf)
			}
		}
	}

	return nil
}

// ValidateFiniteVec rejects any NaN or ±Inf entry of x.
// Complexity: O(len(x)).
func ValidateFiniteVec(x []float64) error {
	for _, v := range x {
		if isNonFinite(v) {
			return validatorErrorf("ValidateFiniteVec", ErrNaNInf)
		}
	}

	return nil
}

// ValidateSkewSymmetric checks |A[i,j] + A[j,i]| ≤ tol for all i<j and
// |A[i,i]| ≤ tol for all i.
//
// Inputs: square Matrix m, tolerance tol ≥ 0 (a negative tol is flipped).
// Errors: ErrNilMatrix/ErrNonSquare on structure, ErrNaNInf on bad tol,
// ErrNotSkewSymmetric on violation.
// Complexity: O(n²). Space: O(1).
func ValidateSkewSymmetric(m Matrix, tol float64) error {
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSkewSymmetric", err)
	}
	if isNonFinite(tol) {
		return validatorErrorf("ValidateSkewSymmetric", ErrNaNInf)
	}
	tol = math.Abs(tol)

	var (
		n        = m.Rows()
		i, j     int
		aij, aji float64
	)
	for i = 0; i < n; i++ {
		aij, _ = m.At(i, i)
		if math.Abs(aij) > tol {
			return validatorErrorf(fmt.Sprintf("ValidateSkewSymmetric: diag %d", i), ErrNotSkewSymmetric)
		}
		for j = i + 1; j < n; j++ {
			aij, _ = m.At(i, j)
			aji, _ = m.At(j, i)
			if math.Abs(aij+aji) > tol {
				return validatorErrorf(fmt.Sprintf("ValidateSkewSymmetric: (%d,%d)", i, j), ErrNotSkewSymmetric)
			}
		}
	}

	return nil
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
