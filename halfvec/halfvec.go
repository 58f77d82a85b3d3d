package halfvec

import (
	"fmt"

	"github.com/katalvlaran/sigdiff/matrix"
)

// Vectorize flattens one triangular half of the square matrix m into a
// new slice, in the order defined by Walk.
//
// Validation happens before any allocation:
//  1. m must be non-nil and square, otherwise ErrShape (wrapping the
//     matrix sentinel);
//  2. tri must be Upper or Lower, otherwise ErrInvalidOption.
//
// Output length is Len(m.Rows(), diag).
//
// Example (m = diff([0, 1, 3])):
//
//	b, _ := halfvec.Vectorize(m, halfvec.Upper)
//	// b == [m[0][1], m[0][2], m[1][2]] == [-1, -3, -2]
func Vectorize(m matrix.Matrix, tri Triangle, opts ...Option) ([]float64, error) {
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, fmt.Errorf("Vectorize: %w: %w", ErrShape, err)
	}
	if !tri.Valid() {
		return nil, fmt.Errorf("Vectorize(%v): %w", tri, ErrInvalidOption)
	}
	o := gatherOptions(opts)

	var (
		n      = m.Rows()
		out    = make([]float64, Len(n, o.Diagonal))
		walkEr error
	)
	err := Walk(n, tri, o.Diagonal, func(k int, p Pair) {
		v, atErr := m.At(p.I, p.J)
		if atErr != nil && walkEr == nil {
			walkEr = atErr
		}
		out[k] = v
	})
	if err != nil {
		return nil, err
	}
	if walkEr != nil {
		return nil, fmt.Errorf("Vectorize: %w", walkEr)
	}

	return out, nil
}

// Unvectorize is the skew-symmetric inverse of Vectorize: it writes b[k]
// into the traversed entry (i, j) of a new n×n matrix and −b[k] into the
// mirrored entry (j, i). Diagonal slots (when included) are written as-is.
// Entries not covered by the traversal stay zero.
//
// Errors: ErrInvalidOption, ErrLength (len(b) != Len(n, diag)).
// Complexity: O(n²).
func Unvectorize(b []float64, n int, tri Triangle, opts ...Option) (*matrix.Dense, error) {
	if !tri.Valid() {
		return nil, fmt.Errorf("Unvectorize(%v): %w", tri, ErrInvalidOption)
	}
	if n < 0 {
		n = 0
	}
	o := gatherOptions(opts)
	if want := Len(n, o.Diagonal); len(b) != want {
		return nil, fmt.Errorf("Unvectorize: len(b)=%d, want %d: %w", len(b), want, ErrLength)
	}

	out, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("Unvectorize: %w", err)
	}
	err = Walk(n, tri, o.Diagonal, func(k int, p Pair) {
		_ = out.Set(p.I, p.J, b[k]) // in range by construction
		if p.I != p.J {
			_ = out.Set(p.J, p.I, -b[k])
		}
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}
