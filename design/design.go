// Package design builds the design matrix of the signed-differences
// problem: the linear operator A with A·x = Vectorize(Diff(x), Upper).
//
// A has shape (n(n−1)/2, n). Row r corresponds to slot r of the upper
// half-vector, i.e. to the pair (j, k), j < k, that halfvec.Walk assigns to
// slot r; it holds +1 in column j, −1 in column k and zeros elsewhere.
//
// Properties:
//   - every row sums to 0, so the all-ones vector is in the null space of A
//     and x is only identifiable up to an additive constant;
//   - A depends on n alone; it is deterministic and safe to cache (see Cache).
package design

import (
	"github.com/katalvlaran/sigdiff/halfvec"
	"github.com/katalvlaran/sigdiff/matrix"
)

// Build returns the design matrix for vectors of length n.
//
// Algorithm (via halfvec.Walk, Upper, diagonal excluded):
//
//	count := 0
//	for j := 0; j < n-1; j++ {
//	    for i := 0; i < n-1-j; i++ {
//	        A[count+i][j]     = +1
//	        A[count+i][j+i+1] = −1
//	    }
//	    count += n-1-j
//	}
//
// For n < 2 there are no pairs and the result has zero rows (and max(n, 0)
// columns).
// Complexity: O(n³) time for the zero-filled allocation, O(n²) writes.
func Build(n int) *matrix.Dense {
	if n < 0 {
		n = 0
	}
	a, _ := matrix.NewDense(halfvec.Len(n, false), n) // non-negative shape never fails

	// Upper is a valid selector, so Walk cannot fail here.
	_ = halfvec.Walk(n, halfvec.Upper, false, func(row int, p halfvec.Pair) {
		_ = a.Set(row, p.I, 1)
		_ = a.Set(row, p.J, -1)
	})

	return a
}
