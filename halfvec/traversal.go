package halfvec

import "fmt"

// Len returns the number of entries in one half of an n×n matrix:
// n(n−1)/2 without the diagonal, n(n+1)/2 with it, and 0 for n ≤ 0.
func Len(n int, diag bool) int {
	if n <= 0 {
		return 0
	}
	if diag {
		return n * (n + 1) / 2
	}

	return n * (n - 1) / 2
}

// Walk visits every entry of the selected half of an n×n matrix in the
// canonical order, calling fn(k, p) with the running slot index k.
//
// This is the only place where the half-vector layout is defined. Both
// Vectorize and the design matrix builder walk it, so their orders cannot
// drift apart.
//
// Order:
//   - Upper: rows i = 0, 1, …; row i is a block of consecutive slots holding
//     columns i+off … n−1, where off = 0 with the diagonal and 1 without.
//     The slot counter advances by the block size n−i−off after each row.
//     Without the diagonal this is the lexicographic order of (i, j), i < j.
//   - Lower: rows r = off, off+1, …, n−1; row r holds columns 0 … r−off in
//     increasing order, i.e. lexicographic order of (r, c), r > c.
//
// Errors: ErrInvalidOption for an unknown Triangle. n ≤ 0 visits nothing.
// Complexity: O(Len(n, diag)).
func Walk(n int, tri Triangle, diag bool, fn func(k int, p Pair)) error {
	if !tri.Valid() {
		return fmt.Errorf("Walk(%v): %w", tri, ErrInvalidOption)
	}
	if n <= 0 {
		return nil
	}

	off := 1
	if diag {
		off = 0
	}

	var (
		count int // first slot of the current row block
		i, j  int
	)
	switch tri {
	case Upper:
		for i = 0; i < n-off; i++ {
			block := n - i - off
			for j = 0; j < block; j++ {
				fn(count+j, Pair{I: i, J: i + j + off})
			}
			count += block
		}
	case Lower:
		for i = 0; i < n-off; i++ {
			block := i + 1
			for j = 0; j < block; j++ {
				fn(count+j, Pair{I: i + off, J: j})
			}
			count += block
		}
	}

	return nil
}

// Pairs materializes Walk into a slice: Pairs(n, …)[k] is the matrix entry
// stored at slot k of the half-vector.
func Pairs(n int, tri Triangle, diag bool) ([]Pair, error) {
	out := make([]Pair, Len(n, diag))
	if err := Walk(n, tri, diag, func(k int, p Pair) { out[k] = p }); err != nil {
		return nil, err
	}

	return out, nil
}
