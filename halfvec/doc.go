// Package halfvec half-vectorizes square matrices: it flattens the
// independent entries of one triangular half into an ordered vector.
//
// For a skew-symmetric difference matrix D (D[i][j] = −D[j][i]) the strict
// upper triangle already carries every observation; the lower half and the
// diagonal are redundant. Vectorize(D, Upper) is the observation vector b
// of the reconstruction problem min ‖A·x − b‖², x ≥ 0.
//
// Layout:
//
//	Upper, no diagonal (n = 4):          Lower, no diagonal (n = 4):
//	  ·  0  1  2                           ·  ·  ·  ·
//	  ·  ·  3  4                           0  ·  ·  ·
//	  ·  ·  ·  5                           1  2  ·  ·
//	  ·  ·  ·  ·                           3  4  5  ·
//
// The numbers are slot indices k of the resulting half-vector. Walk is the
// single definition of this ordering; the design package walks it too, so
// row r of the design matrix always describes slot r of b.
//
// Lengths: Len(n, false) = n(n−1)/2, Len(n, true) = n(n+1)/2.
//
// Errors:
//   - ErrShape         non-square (or nil) input, rejected before allocation.
//   - ErrInvalidOption Triangle outside {Upper, Lower}.
//   - ErrLength        Unvectorize input of the wrong length.
package halfvec
