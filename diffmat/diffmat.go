// Package diffmat builds the matrix of pairwise signed differences of a
// vector, D[i][j] = x[i] − x[j].
//
// D is skew-symmetric with a zero diagonal, and it is invariant under a
// constant shift of x: Diff(x) == Diff(Shift(x, c)) for any c, which is why
// a vector can only be recovered from D up to an additive constant.
//
// The reconstruction path never calls Diff; it is the forward model used by
// data generators and tests, and it fixes the sign convention the
// reconstruction inverts.
package diffmat

import "github.com/katalvlaran/sigdiff/matrix"

// Diff returns the n×n difference matrix of x, n = len(x).
// Each off-diagonal pair is computed once and mirrored, so D[j][i] is the
// exact negation of D[i][j]. A nil or empty x yields a 0×0 matrix.
// Complexity: O(n²).
func Diff(x []float64) *matrix.Dense {
	n := len(x)
	d, _ := matrix.NewDense(n, n) // n ≥ 0 never fails

	var (
		i, j int
		v    float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			v = x[i] - x[j]
			_ = d.Set(i, j, v)
			_ = d.Set(j, i, -v)
		}
	}

	return d
}

// Shift returns a new vector x + c·1.
func Shift(x []float64, c float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = v + c
	}

	return out
}
