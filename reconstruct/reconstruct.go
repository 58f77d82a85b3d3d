// SPDX-License-Identifier: MIT

// Package reconstruct recovers a nonnegative vector from its matrix of
// pairwise differences.
//
// Given D with D[i][j] ≈ X[i] − X[j], the pipeline
//
//	b  = halfvec.Vectorize(D, Upper)     n(n−1)/2 observations
//	A  = design.Build(n)                 cached per n
//	x̂  = argmin ‖A·x − b‖₂, x ≥ 0        nnls backend
//	x̂ ← x̂ − min(x̂)·1                     canonical shift (default)
//
// D only determines X up to a constant, and A·1 = 0, so every backend's
// minimizer lies on the same line x̂ + c·1 inside the orthant. The canonical
// shift picks the point with a zero entry, which makes the backends agree
// and leaves the residual unchanged.
//
// A Reconstructor is immutable after New and safe for concurrent use.
package reconstruct

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/sigdiff/design"
	"github.com/katalvlaran/sigdiff/halfvec"
	"github.com/katalvlaran/sigdiff/matrix"
	"github.com/katalvlaran/sigdiff/nnls"
	"gonum.org/v1/gonum/floats"
)

// Reconstructor runs the difference-matrix inversion pipeline.
type Reconstructor struct {
	opts   Options
	solver nnls.Solver
	cache  *design.Cache
	log    *slog.Logger
}

// New validates the configuration and returns a Reconstructor.
// An unknown backend yields an error wrapping nnls.ErrInvalidOption.
func New(opts ...Option) (*Reconstructor, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	s, err := nnls.New(o.Backend, o.SolverOptions...)
	if err != nil {
		return nil, fmt.Errorf("reconstruct.New: %w", err)
	}

	r := &Reconstructor{opts: o, solver: s, cache: o.Cache, log: o.Logger}
	if r.cache == nil {
		r.cache = design.NewCache()
	}
	if r.log == nil {
		r.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return r, nil
}

// Backend reports the configured solver backend.
func (r *Reconstructor) Backend() nnls.Backend { return r.solver.Backend() }

// Reconstruct estimates X from D.
//
// Errors, all reported before any solving:
//   - matrix.ErrNilMatrix for a nil D;
//   - halfvec.ErrShape (wrapping matrix.ErrNonSquare) for a non-square D;
//   - matrix.ErrNaNInf for non-finite entries;
//   - matrix.ErrNotSkewSymmetric when strict skew checking is on.
//
// A backend that runs out of iterations returns its partial solution
// together with an error wrapping nnls.ErrNotConverged.
// For n < 2 the result is the zero vector with zero residual.
func (r *Reconstructor) Reconstruct(d matrix.Matrix) (nnls.Solution, error) {
	if err := matrix.ValidateNotNil(d); err != nil {
		return nnls.Solution{}, fmt.Errorf("Reconstruct: %w", err)
	}
	if err := matrix.ValidateSquare(d); err != nil {
		return nnls.Solution{}, fmt.Errorf("Reconstruct: %w: %w", halfvec.ErrShape, err)
	}
	if err := matrix.ValidateFinite(d); err != nil {
		return nnls.Solution{}, fmt.Errorf("Reconstruct: %w", err)
	}
	if r.opts.StrictSkew {
		if err := matrix.ValidateSkewSymmetric(d, r.opts.SkewTolerance); err != nil {
			return nnls.Solution{}, fmt.Errorf("Reconstruct: %w", err)
		}
	}

	n := d.Rows()
	if n < 2 {
		r.log.Debug("reconstruct: trivial input", "n", n)

		return nnls.Solution{X: make([]float64, n), Backend: r.Backend()}, nil
	}

	b, err := halfvec.Vectorize(d, halfvec.Upper)
	if err != nil {
		return nnls.Solution{}, fmt.Errorf("Reconstruct: %w", err)
	}
	a := r.cache.Get(n)

	sol, err := r.solver.Solve(a, b)
	if err != nil {
		if errors.Is(err, nnls.ErrNotConverged) {
			r.log.Warn("reconstruct: backend did not converge",
				"n", n, "backend", r.Backend().String(),
				"iterations", sol.Iterations, "residual", sol.ResidualNorm)
		}

		return sol, fmt.Errorf("Reconstruct: %w", err)
	}

	if r.opts.Canonical {
		floats.AddConst(-floats.Min(sol.X), sol.X)
		if sol.ResidualNorm, err = residual(a, sol.X, b); err != nil {
			return sol, fmt.Errorf("Reconstruct: %w", err)
		}
	}

	r.log.Debug("reconstruct: solved",
		"n", n, "backend", r.Backend().String(),
		"iterations", sol.Iterations, "residual", sol.ResidualNorm,
		"canonical", r.opts.Canonical)

	return sol, nil
}

// Reconstruct is a one-shot convenience around New(opts...).Reconstruct(d).
func Reconstruct(d matrix.Matrix, opts ...Option) (nnls.Solution, error) {
	r, err := New(opts...)
	if err != nil {
		return nnls.Solution{}, err
	}

	return r.Reconstruct(d)
}

// residual returns ‖A·x − b‖₂.
func residual(a matrix.Matrix, x, b []float64) (float64, error) {
	ax, err := matrix.MatVec(a, x)
	if err != nil {
		return 0, err
	}
	floats.Sub(ax, b)

	return floats.Norm(ax, 2), nil
}
