// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ToGonum copies m into a freshly allocated *mat.Dense.
//
// gonum cannot represent empty matrices, so a matrix with zero rows or zero
// columns returns ErrBadShape; callers are expected to short-circuit the
// degenerate case before crossing into gonum.
//
// Errors: ErrNilMatrix, ErrBadShape.
// Complexity: O(r*c) time and memory. *Dense is copied with one memmove.
func ToGonum(m Matrix) (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("ToGonum: %w", err)
	}
	r, c := m.Rows(), m.Cols()
	if r == 0 || c == 0 {
		return nil, fmt.Errorf("ToGonum: %dx%d: %w", r, c, ErrBadShape)
	}

	data := make([]float64, r*c)
	if d, ok := m.(*Dense); ok {
		copy(data, d.data)

		return mat.NewDense(r, c, data), nil
	}

	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			data[i*c+j], _ = m.At(i, j)
		}
	}

	return mat.NewDense(r, c, data), nil
}

// FromGonum copies any gonum mat.Matrix into a new *Dense.
// Complexity: O(r*c).
func FromGonum(g mat.Matrix) *Dense {
	r, c := g.Dims()
	out := &Dense{r: r, c: c, data: make([]float64, r*c)}

	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			out.data[i*c+j] = g.At(i, j)
		}
	}

	return out
}
