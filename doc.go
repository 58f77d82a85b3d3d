// Package sigdiff recovers a nonnegative signal from its matrix of signed
// pairwise differences.
//
// Given a square matrix D with D[i][j] ≈ X[i] − X[j] (exactly, or with
// noise), sigdiff half-vectorizes D, builds the pairwise difference design
// matrix A and solves
//
//	minimize ‖A·x − b‖₂   subject to x ≥ 0
//
// with one of three interchangeable non-negative least-squares backends.
//
// Packages:
//
//	matrix/       — bounds-checked dense matrices, validators, gonum bridge
//	halfvec/      — strict-triangle and triangle-with-diagonal vectorization
//	diffmat/      — the forward model D = X·1ᵀ − 1·Xᵀ
//	design/       — the n(n−1)/2 × n design matrix and a concurrent cache
//	nnls/         — active set, projected-gradient QP, coordinate descent
//	reconstruct/  — the end-to-end pipeline with canonical shift
//	datagen/      — seeded signals and (noisy) difference matrices
//	report/       — fixed-precision text reports
//	cmd/sigdiff/  — the command-line interface
//
// Quick example (X = [1, 3, 2]):
//
//	    ⎡ 0 −2 −1 ⎤
//	D = ⎢ 2  0  1 ⎥   →   b = [−2, −1, 1]   →   x̂ = [0, 2, 1]
//	    ⎣ 1 −1  0 ⎦
//
// X is only determined up to a constant: x̂ is X − min(X).
//
//	sol, err := reconstruct.Reconstruct(diffmat.Diff([]float64{1, 3, 2}))
//	// sol.X ≈ [0 2 1], sol.ResidualNorm ≈ 0
package sigdiff
