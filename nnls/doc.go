// SPDX-License-Identifier: MIT

// Package nnls solves non-negative least squares,
//
//	minimize ‖A·x − b‖₂²   subject to x ≥ 0,
//
// behind one Solver interface with three interchangeable backends:
//
//	ActiveSet           Lawson–Hanson active set, QR sub-solves (gonum/mat)
//	QuadraticProgram    FISTA projected gradient on ½xᵀAᵀAx − (Aᵀb)ᵀx
//	PositiveRegression  cyclic coordinate descent with x_j clamped at 0
//
// All backends share one contract (see Solver): validated inputs, the zero
// vector for an empty design, nonnegative output with exact zeros at the
// bound, ResidualNorm = ‖A·x − b‖₂, and ErrNotConverged instead of a silent
// best effort when the iteration budget runs out.
//
// When A has a nontrivial null space that meets the orthant (the pairwise
// difference design satisfies A·1 = 0) the minimizer is not unique and the
// backends may return different points of the same optimal set. Callers
// that need one canonical point normalize afterwards; reconstruct subtracts
// min(x).
//
// KKTViolation checks any candidate against the optimality conditions.
package nnls
