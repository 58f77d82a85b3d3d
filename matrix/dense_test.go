// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/sigdiff/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewDense_Shapes covers legal zero-sized shapes and rejected negatives.
func TestNewDense_Shapes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		r, c    int
		wantErr error
	}{
		{"0x0", 0, 0, nil},
		{"0x3 empty design", 0, 3, nil},
		{"3x0", 3, 0, nil},
		{"2x3", 2, 3, nil},
		{"negative rows", -1, 2, matrix.ErrBadShape},
		{"negative cols", 2, -1, matrix.ErrBadShape},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			m, err := matrix.NewDense(tc.r, tc.c)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, m)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.r, m.Rows())
			assert.Equal(t, tc.c, m.Cols())
		})
	}
}

// TestDense_AtSetBounds verifies round-trip Set/At and out-of-range errors.
func TestDense_AtSetBounds(t *testing.T) {
	t.Parallel()
	m := MustDense(t, 2, 3)

	require.NoError(t, m.Set(1, 2, 4.5))
	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 4.5, v)

	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, -1)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(0, 3, 1), matrix.ErrOutOfRange)

	_, err = MustDense(t, 0, 3).At(0, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange, "empty matrix has no valid index")
}

// TestNewDenseFrom checks copying semantics and ragged rejection.
func TestNewDenseFrom(t *testing.T) {
	t.Parallel()

	src := skew3()
	m := MustFrom(t, src)
	src[0][1] = 99 // mutate the source; m must not observe it

	v, err := m.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, -1.0, v)
	assert.Equal(t, skew3(), m.ToRows())

	_, err = matrix.NewDenseFrom([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	empty, err := matrix.NewDenseFrom(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Rows())
	assert.Equal(t, 0, empty.Cols())
}

// TestDense_RowAndClone verifies Row copies and Clone independence.
func TestDense_RowAndClone(t *testing.T) {
	t.Parallel()
	m := MustFrom(t, skew3())

	row, err := m.Row(2)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 2, 0}, row)
	row[0] = -7
	v, _ := m.At(2, 0)
	assert.Equal(t, 3.0, v, "Row must return a copy")

	_, err = m.Row(3)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)

	c := m.Clone()
	require.NoError(t, c.Set(0, 0, 42))
	v, _ = m.At(0, 0)
	assert.Equal(t, 0.0, v, "Clone must be deep")
}

// TestDense_String checks the debugging representation.
func TestDense_String(t *testing.T) {
	t.Parallel()
	m := MustFrom(t, [][]float64{{1, -2}, {0.5, 0}})
	assert.Equal(t, "[1, -2]\n[0.5, 0]\n", m.String())
}
