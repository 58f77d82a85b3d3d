// Package halfvec defines the triangle selector, the pair type and the
// options shared by every traversal of a square matrix's half.
package halfvec

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors returned by the halfvec package.
var (
	// ErrShape indicates the input matrix is not square (or is nil). The
	// returned error also matches the underlying matrix sentinel
	// (matrix.ErrNonSquare or matrix.ErrNilMatrix).
	ErrShape = errors.New("halfvec: matrix must be square")

	// ErrInvalidOption indicates a Triangle value outside {Upper, Lower}.
	ErrInvalidOption = errors.New("halfvec: triangle must be upper or lower")

	// ErrLength indicates a half-vector whose length does not match Len(n, diag).
	ErrLength = errors.New("halfvec: half-vector length mismatch")
)

// Triangle selects which half of a square matrix is traversed.
//
//   - Upper: entries (i, j) with i < j (or i ≤ j with the diagonal).
//   - Lower: entries (i, j) with i > j (or i ≥ j with the diagonal).
type Triangle int

const (
	// Upper walks the upper triangle; this is the layout of the design matrix rows.
	Upper Triangle = iota

	// Lower walks the lower triangle.
	Lower
)

// String returns "upper" or "lower", or "Triangle(k)" for invalid values.
func (t Triangle) String() string {
	switch t {
	case Upper:
		return "upper"
	case Lower:
		return "lower"
	default:
		return fmt.Sprintf("Triangle(%d)", int(t))
	}
}

// Valid reports whether t is Upper or Lower.
func (t Triangle) Valid() bool { return t == Upper || t == Lower }

// ParseTriangle maps "upper"/"lower" (case-insensitive) to a Triangle.
// Any other string yields ErrInvalidOption.
func ParseTriangle(s string) (Triangle, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "upper":
		return Upper, nil
	case "lower":
		return Lower, nil
	default:
		return 0, fmt.Errorf("ParseTriangle(%q): %w", s, ErrInvalidOption)
	}
}

// Pair is one traversed entry (I, J) of a square matrix. For the
// diagonal-excluded Upper traversal it is an unordered pair {I, J}, I < J.
type Pair struct {
	I, J int
}

// Options holds the resolved traversal configuration.
type Options struct {
	// Diagonal includes the (i, i) entries when true. Default false.
	Diagonal bool
}

// Option mutates Options.
type Option func(*Options)

// WithDiagonal includes the diagonal entries in the traversal.
func WithDiagonal() Option {
	return func(o *Options) { o.Diagonal = true }
}

// WithDiagonalIncluded sets the diagonal flag explicitly; handy when the
// flag comes from user input.
func WithDiagonalIncluded(include bool) Option {
	return func(o *Options) { o.Diagonal = include }
}

// DefaultOptions returns the diagonal-excluded configuration.
func DefaultOptions() Options {
	return Options{Diagonal: false}
}

func gatherOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
