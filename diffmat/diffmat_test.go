package diffmat_test

import (
	"math/rand/v2"
	"testing"

	"github.com/katalvlaran/sigdiff/diffmat"
	"github.com/katalvlaran/sigdiff/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDiff_Scenario pins D for X = [0, 1, 3].
func TestDiff_Scenario(t *testing.T) {
	t.Parallel()

	d := diffmat.Diff([]float64{0, 1, 3})
	assert.Equal(t, [][]float64{{0, -1, -3}, {1, 0, -2}, {3, 2, 0}}, d.ToRows())
}

// TestDiff_SkewSymmetric checks exact skew-symmetry and a zero diagonal.
func TestDiff_SkewSymmetric(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(1, 2))
	for n := 0; n <= 12; n++ {
		x := make([]float64, n)
		for i := range x {
			x[i] = rng.NormFloat64() * 10
		}
		d := diffmat.Diff(x)
		require.Equal(t, n, d.Rows())
		require.Equal(t, n, d.Cols())
		require.NoError(t, matrix.ValidateSkewSymmetric(d, 0), "n=%d", n)
	}
}

// TestDiff_ShiftInvariance: on exactly representable data the shifted
// vector yields a bit-identical D; on random data it agrees to rounding.
func TestDiff_ShiftInvariance(t *testing.T) {
	t.Parallel()

	x := []float64{0.5, -2, 3.25, 8, 0}
	for _, c := range []float64{-3, 0, 1, 16.5} {
		assert.True(t, matrix.Equal(diffmat.Diff(x), diffmat.Diff(diffmat.Shift(x, c))), "c=%v", c)
	}

	rng := rand.New(rand.NewPCG(3, 4))
	y := make([]float64, 9)
	for i := range y {
		y[i] = rng.Float64()
	}
	ok, err := matrix.AllClose(diffmat.Diff(y), diffmat.Diff(diffmat.Shift(y, rng.NormFloat64())), 1e-12)
	require.NoError(t, err)
	assert.True(t, ok)
}

// TestDiff_Empty covers nil input.
func TestDiff_Empty(t *testing.T) {
	t.Parallel()

	d := diffmat.Diff(nil)
	assert.Equal(t, 0, d.Rows())
	assert.Equal(t, 0, d.Cols())
}

// TestShift does not alias its input.
func TestShift(t *testing.T) {
	t.Parallel()

	x := []float64{1, 2}
	y := diffmat.Shift(x, 0.5)
	assert.Equal(t, []float64{1.5, 2.5}, y)
	assert.Equal(t, []float64{1, 2}, x)
}
