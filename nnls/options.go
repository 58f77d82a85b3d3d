// SPDX-License-Identifier: MIT

package nnls

import "math"

// Defaults (single source of truth).
const (
	// DefaultTolerance is the optimality tolerance. ActiveSet uses it as a
	// floor on the dual-feasibility threshold; the iterative backends stop
	// when the scaled projected-gradient (or step) norm drops below it.
	DefaultTolerance = 1e-10

	// DefaultMaxIterations of 0 lets each backend pick its own budget:
	// 3·n for ActiveSet, defaultIterativeBudget for the others.
	DefaultMaxIterations = 0

	defaultIterativeBudget = 100000
)

const (
	panicToleranceInvalid = "nnls: WithTolerance: tol must be finite and > 0"
	panicMaxIterInvalid   = "nnls: WithMaxIterations: k must be >= 0"
)

// Options is the resolved solver configuration.
type Options struct {
	Tolerance     float64
	MaxIterations int
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{Tolerance: DefaultTolerance, MaxIterations: DefaultMaxIterations}
}

// WithTolerance sets the optimality tolerance.
// Panics when tol is not a finite positive number.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.Tolerance = tol }
}

// WithMaxIterations caps the backend's iteration count; 0 restores the
// backend default. Panics on negative k.
func WithMaxIterations(k int) Option {
	if k < 0 {
		panic(panicMaxIterInvalid)
	}

	return func(o *Options) { o.MaxIterations = k }
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

// budget returns MaxIterations or fallback when unset.
func (o Options) budget(fallback int) int {
	if o.MaxIterations > 0 {
		return o.MaxIterations
	}

	return fallback
}
