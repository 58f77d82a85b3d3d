// SPDX-License-Identifier: MIT

package reconstruct

import (
	"log/slog"
	"math"

	"github.com/katalvlaran/sigdiff/design"
	"github.com/katalvlaran/sigdiff/nnls"
)

// Options is the resolved pipeline configuration.
type Options struct {
	// Backend selects the NNLS strategy (default nnls.ActiveSet).
	Backend nnls.Backend
	// SolverOptions are forwarded to nnls.New.
	SolverOptions []nnls.Option
	// Cache provides design matrices; nil means a private cache.
	Cache *design.Cache
	// Logger receives Debug/Warn records; nil discards.
	Logger *slog.Logger
	// StrictSkew rejects D unless it is skew-symmetric within SkewTolerance.
	StrictSkew    bool
	SkewTolerance float64
	// Canonical subtracts min(x̂) from the solution (default true).
	Canonical bool
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the pipeline defaults.
func DefaultOptions() Options {
	return Options{Backend: nnls.ActiveSet, Canonical: true}
}

// WithBackend selects the solver backend. Validity is checked by New.
func WithBackend(b nnls.Backend) Option { return func(o *Options) { o.Backend = b } }

// WithSolverOptions forwards tolerance and iteration settings to the backend.
func WithSolverOptions(opts ...nnls.Option) Option {
	return func(o *Options) { o.SolverOptions = append(o.SolverOptions, opts...) }
}

// WithCache shares a design-matrix cache between reconstructors.
func WithCache(c *design.Cache) Option { return func(o *Options) { o.Cache = c } }

// WithLogger attaches a structured logger.
func WithLogger(l *slog.Logger) Option { return func(o *Options) { o.Logger = l } }

// WithStrictSkew enables the skew-symmetry check with tolerance tol.
// Panics on a negative or non-finite tol.
func WithStrictSkew(tol float64) Option {
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		panic("reconstruct: WithStrictSkew: tol must be finite and >= 0")
	}

	return func(o *Options) {
		o.StrictSkew = true
		o.SkewTolerance = tol
	}
}

// WithoutCanonicalShift returns the backend's minimizer unchanged.
func WithoutCanonicalShift() Option { return func(o *Options) { o.Canonical = false } }
