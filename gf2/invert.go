// Copyright ©2024 The xoroshiro128jump Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gf2

// ErrSingular is panicked by Inverse when a column has no pivot
// candidate. For the 128×128 transition matrices this package exists to
// invert, the matrix is invertible by construction (xoroshiro128+ is a
// bijection on its state space), so this indicates corruption upstream,
// not a normal failure mode.
const ErrSingular = Error("gf2: matrix is singular")

// Inverse computes the multiplicative inverse of m by Gauss–Jordan
// elimination over GF(2). m must be square.
//
// The algorithm is division-free by construction: GF(2) elimination
// never scales a row (the only nonzero scalar is 1), it only swaps rows
// and xors one row into another: a forward sweep drives m to
// upper-triangular with a 1 on every diagonal entry while mirroring each
// operation into an accumulator that starts as the identity; a backward
// sweep then clears everything above the diagonal. The accumulator is
// the inverse.
func (m *Matrix) Inverse() *Matrix {
	rows, cols := m.Dims()
	if rows != cols {
		panic(ErrShape)
	}
	n := rows
	mat := m.Clone()
	res := Identity(n)

	pivot := 0
	for col := 0; col < n && pivot < n; col++ {
		found := false
		for row := pivot; row < n; row++ {
			if mat.At(row, col).IsZero() {
				continue
			}
			if !found {
				mat.swapRows(row, pivot)
				res.swapRows(row, pivot)
				found = true
			} else {
				mat.xorRowInto(row, pivot)
				res.xorRowInto(row, pivot)
			}
		}
		if found {
			pivot++
		}
	}
	if pivot != n {
		panic(ErrSingular)
	}

	for i := n - 1; i >= 1; i-- {
		for j := i - 1; j >= 0; j-- {
			if mat.At(j, i).IsOne() {
				mat.xorRowInto(j, i)
				res.xorRowInto(j, i)
			}
		}
	}
	return res
}
