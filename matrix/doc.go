// SPDX-License-Identifier: MIT

// Package matrix provides the small dense-matrix core the rest of sigdiff
// is built on.
//
// The matrix package provides:
//
//   - Matrix, a bounds-checked interface over two-dimensional float64 data.
//   - Dense, a row-major implementation that, unlike gonum's mat.Dense,
//     admits zero rows or zero columns (the design matrix of a vector with
//     fewer than two entries is empty).
//   - Validators (ValidateSquare, ValidateFinite, ValidateSkewSymmetric, ...)
//     that every public entry point of the module runs before computing.
//   - MatVec, Equal, AllClose and a ToGonum/FromGonum bridge to
//     gonum.org/v1/gonum/mat for factorizations.
//
// All errors are sentinels from errors.go, wrapped with an operation tag;
// match them with errors.Is.
package matrix
