// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every exported routine of the package returns one of these sentinels,
// possibly wrapped with an operation tag via fmt.Errorf("Op: %w", ErrX).
// Callers and tests match them with errors.Is. Nothing in this package
// panics on user-triggered conditions.

package matrix

import "errors"

// ERROR PRIORITY (checked in this order by composite validators):
// nil -> shape -> dimension mismatch -> numeric policy (NaN/Inf) -> structure.

var (
	// ErrBadShape is returned when a requested shape is invalid (negative
	// rows or columns), or when an empty matrix is handed to a routine that
	// needs at least one element (e.g. ToGonum).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers (At/Set/Row) return this instead of panicking.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. MatVec with len(x) != Cols(), or a ragged [][]float64 source.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNotSkewSymmetric signals that |A[i,j] + A[j,i]| or |A[i,i]| exceeded
	// the configured tolerance.
	ErrNotSkewSymmetric = errors.New("matrix: matrix is not skew-symmetric within tol")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (or nil vector) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)
