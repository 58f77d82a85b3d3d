// Package report renders solutions as plain text.
//
// All numbers use fixed six-decimal notation so output is stable across
// platforms and suitable for golden files.
package report

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/sigdiff/nnls"
)

// ErrLengthMismatch is returned when two vectors cannot be compared.
var ErrLengthMismatch = errors.New("report: vectors have different lengths")

// Results describes a solution: backend, vector and residual norm.
func Results(sol nnls.Solution) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "The %s-based solution is:\n", sol.Backend)
	sb.WriteString(Vector(sol.X))
	sb.WriteByte('\n')
	fmt.Fprintf(&sb, "The norm of the residual is: %.6f.\n", sol.ResidualNorm)

	return sb.String()
}

// Comparison shows the estimate next to the original vector and the
// max-norm of their difference.
func Comparison(xhat, x []float64, backend nnls.Backend) (string, error) {
	d, err := MaxNorm(xhat, x)
	if err != nil {
		return "", fmt.Errorf("Comparison: %w", err)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "The %s-based solution (X_hat) is:\n", backend)
	sb.WriteString(Vector(xhat))
	sb.WriteString("\nThe original vector (X) was:\n")
	sb.WriteString(Vector(x))
	fmt.Fprintf(&sb, "\nThe max-norm of their difference is: %.6f.\n", d)

	return sb.String(), nil
}

// MaxNorm returns max_i |a[i] − b[i]|, 0 for empty vectors.
func MaxNorm(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("MaxNorm: %d vs %d: %w", len(a), len(b), ErrLengthMismatch)
	}
	worst := 0.0
	for i := range a {
		worst = math.Max(worst, math.Abs(a[i]-b[i]))
	}

	return worst, nil
}

// Vector formats v as "[v0 v1 ...]" with six decimals. Negative zero
// prints as zero.
func Vector(v []float64) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, x := range v {
		if i > 0 {
			sb.WriteByte(' ')
		}
		if x == 0 {
			x = 0
		}
		fmt.Fprintf(&sb, "%.6f", x)
	}
	sb.WriteByte(']')

	return sb.String()
}
