// SPDX-License-Identifier: MIT

package nnls

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/sigdiff/matrix"
)

// Sentinel errors returned by the nnls package. Input-shape errors come
// from the matrix package (matrix.ErrNilMatrix, matrix.ErrDimensionMismatch,
// matrix.ErrNaNInf) and are passed through wrapped.
var (
	// ErrInvalidOption indicates an unknown Backend value or backend name.
	// It is a configuration error, reported by New/ParseBackend before any
	// data is seen.
	ErrInvalidOption = errors.New("nnls: unknown backend")

	// ErrNotConverged indicates the backend exhausted its iteration budget
	// (or lost numerical rank) before meeting its optimality test. The
	// Solution returned alongside it holds the last feasible iterate.
	ErrNotConverged = errors.New("nnls: backend did not converge")
)

// Backend selects one of the interchangeable NNLS strategies.
type Backend int

const (
	// ActiveSet is the Lawson–Hanson active-set method: it grows a passive
	// set of free coordinates and solves an unconstrained least-squares
	// sub-problem on it by QR. Returns a basic solution.
	ActiveSet Backend = iota

	// QuadraticProgram minimizes the quadratic form ½xᵀAᵀAx − (Aᵀb)ᵀx over
	// the nonnegative orthant with accelerated projected gradient steps.
	QuadraticProgram

	// PositiveRegression fits the linear regression b ≈ A·x with
	// nonnegative coefficients by cyclic coordinate descent.
	PositiveRegression
)

var backendNames = [...]string{
	ActiveSet:          "active-set",
	QuadraticProgram:   "qp",
	PositiveRegression: "regression",
}

// backendAliases maps the library names accepted by ParseBackend to the
// strategy each library implements.
var backendAliases = map[string]Backend{
	"activeset":  ActiveSet,
	"lawson":     ActiveSet,
	"scipy":      ActiveSet,
	"quadratic":  QuadraticProgram,
	"cvxpy":      QuadraticProgram,
	"sklearn":    PositiveRegression,
	"linear":     PositiveRegression,
	"coordinate": PositiveRegression,
}

// Backends returns every valid Backend in declaration order.
func Backends() []Backend {
	return []Backend{ActiveSet, QuadraticProgram, PositiveRegression}
}

// Valid reports whether b names a known strategy.
func (b Backend) Valid() bool { return b >= ActiveSet && b <= PositiveRegression }

// String returns the canonical name ("active-set", "qp", "regression").
func (b Backend) String() string {
	if !b.Valid() {
		return fmt.Sprintf("Backend(%d)", int(b))
	}

	return backendNames[b]
}

// ParseBackend maps a canonical name or a library alias (case-insensitive)
// to a Backend. Unknown names yield ErrInvalidOption.
func ParseBackend(s string) (Backend, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for _, b := range Backends() {
		if key == backendNames[b] {
			return b, nil
		}
	}
	if b, ok := backendAliases[key]; ok {
		return b, nil
	}

	return 0, fmt.Errorf("ParseBackend(%q): %w", s, ErrInvalidOption)
}

// MarshalText implements encoding.TextMarshaler.
func (b Backend) MarshalText() ([]byte, error) {
	if !b.Valid() {
		return nil, fmt.Errorf("MarshalText(%d): %w", int(b), ErrInvalidOption)
	}

	return []byte(b.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler via ParseBackend.
func (b *Backend) UnmarshalText(text []byte) error {
	v, err := ParseBackend(string(text))
	if err != nil {
		return err
	}
	*b = v

	return nil
}

// Solution pairs the recovered vector with its residual.
type Solution struct {
	// X is the nonnegative minimizer, len(X) == Cols(A).
	X []float64

	// ResidualNorm is the Euclidean norm ‖A·X − b‖₂ (not squared) for every
	// backend.
	ResidualNorm float64

	// Iterations is the backend-specific iteration count (inner steps for
	// ActiveSet, gradient steps for QuadraticProgram, sweeps for
	// PositiveRegression). Zero for degenerate inputs.
	Iterations int

	// Backend records which strategy produced the solution.
	Backend Backend
}

// Solver minimizes ‖A·x − b‖² subject to x ≥ 0.
//
// Contract shared by every backend:
//   - input errors (nil A, len(b) != Rows(A), NaN/Inf) are reported before
//     any work, wrapped around the matrix sentinels;
//   - an A without rows or without columns is not an error: the result is the
//     zero vector of length Cols(A) with ResidualNorm = ‖b‖;
//   - X is componentwise ≥ 0 with exact zeros at the bound;
//   - failure to converge is reported with ErrNotConverged, never silently.
//
// Implementations are stateless after construction and safe for concurrent use.
type Solver interface {
	Solve(a matrix.Matrix, b []float64) (Solution, error)
	Backend() Backend
}
