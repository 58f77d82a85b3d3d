package nnls_test

import (
	"math"
	"math/rand/v2"
	"sync"
	"testing"

	"github.com/katalvlaran/sigdiff/design"
	"github.com/katalvlaran/sigdiff/diffmat"
	"github.com/katalvlaran/sigdiff/halfvec"
	"github.com/katalvlaran/sigdiff/matrix"
	"github.com/katalvlaran/sigdiff/nnls"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// diffProblem returns the design matrix and the half-vectorized differences
// of x.
func diffProblem(t *testing.T, x []float64) (*matrix.Dense, []float64) {
	t.Helper()
	b, err := halfvec.Vectorize(diffmat.Diff(x), halfvec.Upper)
	require.NoError(t, err)

	return design.Build(len(x)), b
}

// shifted returns v − min(v)·1.
func shifted(v []float64) []float64 {
	if len(v) == 0 {
		return v
	}
	lo := v[0]
	for _, x := range v {
		lo = math.Min(lo, x)
	}

	return diffmat.Shift(v, -lo)
}

func mustSolver(t *testing.T, b nnls.Backend, opts ...nnls.Option) nnls.Solver {
	t.Helper()
	s, err := nnls.New(b, opts...)
	require.NoError(t, err)

	return s
}

func assertNonNegative(t *testing.T, x []float64) {
	t.Helper()
	for i, v := range x {
		assert.GreaterOrEqual(t, v, 0.0, "x[%d]", i)
		assert.False(t, math.Signbit(v), "x[%d] must not be -0", i)
	}
}

// TestSolve_Scenario recovers X = [1, 3, 2] up to the common shift.
func TestSolve_Scenario(t *testing.T) {
	t.Parallel()

	a, b := diffProblem(t, []float64{1, 3, 2})
	require.Equal(t, []float64{-2, -1, 1}, b)

	for _, backend := range nnls.Backends() {
		sol, err := mustSolver(t, backend).Solve(a, b)
		require.NoError(t, err, backend.String())
		assert.Equal(t, backend, sol.Backend)
		assert.Len(t, sol.X, 3)
		assert.Positive(t, sol.Iterations, backend.String())
		assertNonNegative(t, sol.X)
		assert.InDelta(t, 0, sol.ResidualNorm, 1e-6, backend.String())
		assert.InDeltaSlice(t, []float64{0, 2, 1}, shifted(sol.X), 1e-6, backend.String())
	}
}

// TestSolve_ActiveSetBasic checks the active-set method lands on the basic
// solution with the smallest entry at zero.
func TestSolve_ActiveSetBasic(t *testing.T) {
	t.Parallel()

	a, b := diffProblem(t, []float64{1, 3, 2})
	sol, err := mustSolver(t, nnls.ActiveSet).Solve(a, b)
	require.NoError(t, err)
	assert.Zero(t, sol.X[0])
	assert.InDeltaSlice(t, []float64{0, 2, 1}, sol.X, 1e-12)
}

// TestSolve_RoundTrip reconstructs random nonnegative vectors.
func TestSolve_RoundTrip(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(7, 11))
	for _, backend := range nnls.Backends() {
		s := mustSolver(t, backend)
		for n := 2; n <= 8; n++ {
			x := make([]float64, n)
			for i := range x {
				x[i] = rng.Float64()
			}
			a, b := diffProblem(t, x)

			sol, err := s.Solve(a, b)
			require.NoError(t, err, "%s n=%d", backend, n)
			assertNonNegative(t, sol.X)
			assert.InDelta(t, 0, sol.ResidualNorm, 1e-6, "%s n=%d", backend, n)
			assert.InDeltaSlice(t, shifted(x), shifted(sol.X), 1e-6, "%s n=%d", backend, n)
		}
	}
}

// TestSolve_KKT checks optimality on an inconsistent right-hand side.
func TestSolve_KKT(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(3, 5))
	a := design.Build(6)
	b := make([]float64, a.Rows())
	for i := range b {
		b[i] = rng.NormFloat64()
	}

	var residuals []float64
	for _, backend := range nnls.Backends() {
		sol, err := mustSolver(t, backend).Solve(a, b)
		require.NoError(t, err, backend.String())
		assertNonNegative(t, sol.X)

		viol, err := nnls.KKTViolation(a, b, sol.X)
		require.NoError(t, err)
		assert.Less(t, viol, 1e-6, backend.String())
		residuals = append(residuals, sol.ResidualNorm)
	}

	// Minimizers differ only along 1, so every backend reaches one optimum.
	for _, r := range residuals[1:] {
		assert.InDelta(t, residuals[0], r, 1e-6)
	}
}

// TestSolve_FullRankAgreement compares backends on a strictly convex
// problem whose minimizer is unique and has active bounds.
func TestSolve_FullRankAgreement(t *testing.T) {
	t.Parallel()

	a, err := matrix.NewDenseFrom([][]float64{
		{1, 0.5, 0.2},
		{0.3, 1, 0.1},
		{0.2, 0.4, 1},
		{1, 1, 1},
		{0.5, -0.2, 0.3},
	})
	require.NoError(t, err)
	b := []float64{1, -2, 0.5, 0.3, 1}

	ref, err := mustSolver(t, nnls.ActiveSet).Solve(a, b)
	require.NoError(t, err)
	assert.Contains(t, ref.X, 0.0, "some bound is active")

	for _, backend := range nnls.Backends()[1:] {
		sol, err := mustSolver(t, backend).Solve(a, b)
		require.NoError(t, err, backend.String())
		assert.InDeltaSlice(t, ref.X, sol.X, 1e-5, backend.String())
		assert.InDelta(t, ref.ResidualNorm, sol.ResidualNorm, 1e-6, backend.String())
	}
}

// TestSolve_Degenerate returns the zero vector for empty designs.
func TestSolve_Degenerate(t *testing.T) {
	t.Parallel()

	noCols, err := matrix.NewDense(2, 0)
	require.NoError(t, err)

	cases := []struct {
		name  string
		a     matrix.Matrix
		b     []float64
		x     []float64
		resid float64
	}{
		{"n=0", design.Build(0), nil, []float64{}, 0},
		{"n=1", design.Build(1), []float64{}, []float64{0}, 0},
		{"no columns", noCols, []float64{3, 4}, []float64{}, 5},
	}
	for _, backend := range nnls.Backends() {
		s := mustSolver(t, backend)
		for _, tc := range cases {
			sol, err := s.Solve(tc.a, tc.b)
			require.NoError(t, err, "%s %s", backend, tc.name)
			assert.Equal(t, tc.x, sol.X, "%s %s", backend, tc.name)
			assert.InDelta(t, tc.resid, sol.ResidualNorm, 1e-15)
			assert.Zero(t, sol.Iterations)
			assert.Equal(t, backend, sol.Backend)
		}
	}
}

// TestSolve_InputErrors checks validation precedes work.
func TestSolve_InputErrors(t *testing.T) {
	t.Parallel()

	a := design.Build(3)
	for _, backend := range nnls.Backends() {
		s := mustSolver(t, backend)

		_, err := s.Solve(nil, nil)
		assert.ErrorIs(t, err, matrix.ErrNilMatrix)

		_, err = s.Solve(a, []float64{1, 2})
		assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

		_, err = s.Solve(a, []float64{1, math.NaN(), 2})
		assert.ErrorIs(t, err, matrix.ErrNaNInf)

		bad := a.Clone()
		require.NoError(t, bad.Set(0, 0, math.Inf(1)))
		_, err = s.Solve(bad, []float64{1, 2, 3})
		assert.ErrorIs(t, err, matrix.ErrNaNInf)
	}
}

// TestSolve_NotConverged surfaces budget exhaustion with a feasible iterate.
func TestSolve_NotConverged(t *testing.T) {
	t.Parallel()

	a, b := diffProblem(t, []float64{0.5, 0.1, 0.9, 0.3, 0.7, 0.2})
	for _, backend := range nnls.Backends() {
		sol, err := mustSolver(t, backend, nnls.WithMaxIterations(1)).Solve(a, b)
		require.ErrorIs(t, err, nnls.ErrNotConverged, backend.String())
		assert.Len(t, sol.X, 6)
		assertNonNegative(t, sol.X)
		assert.Equal(t, 1, sol.Iterations)
		assert.Equal(t, backend, sol.Backend)
	}
}

// TestSolve_Concurrent shares one solver between goroutines.
func TestSolve_Concurrent(t *testing.T) {
	t.Parallel()

	x := []float64{4, 0, 2.5, 1, 3}
	a, b := diffProblem(t, x)
	for _, backend := range nnls.Backends() {
		s := mustSolver(t, backend)

		var wg sync.WaitGroup
		results := make([][]float64, 8)
		for w := range results {
			wg.Add(1)
			go func(w int) {
				defer wg.Done()
				sol, err := s.Solve(a, b)
				if err == nil {
					results[w] = sol.X
				}
			}(w)
		}
		wg.Wait()

		for _, got := range results {
			require.NotNil(t, got, backend.String())
			assert.Equal(t, results[0], got, "deterministic across goroutines")
		}
		assert.InDeltaSlice(t, shifted(x), shifted(results[0]), 1e-6)
	}
}

// TestKKTViolation flags infeasible and suboptimal points.
func TestKKTViolation(t *testing.T) {
	t.Parallel()

	a, b := diffProblem(t, []float64{1, 3, 2})

	v, err := nnls.KKTViolation(a, b, []float64{0, 2, 1})
	require.NoError(t, err)
	assert.InDelta(t, 0, v, 1e-12)

	v, err = nnls.KKTViolation(a, b, []float64{5, 7, 6})
	require.NoError(t, err)
	assert.InDelta(t, 0, v, 1e-12, "shifted optimum is optimal too")

	v, err = nnls.KKTViolation(a, b, []float64{-1, 1, 0})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, v, 1.0)

	v, err = nnls.KKTViolation(a, b, []float64{0, 0, 0})
	require.NoError(t, err)
	assert.InDelta(t, 3, v, 1e-12, "w = Aᵀb = [-3, 3, 0]")

	_, err = nnls.KKTViolation(a, b, []float64{0, 0})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	v, err = nnls.KKTViolation(design.Build(1), nil, []float64{-2})
	require.NoError(t, err)
	assert.Equal(t, 2.0, v)
}
