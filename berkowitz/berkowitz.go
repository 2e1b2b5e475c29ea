// Copyright ©2024 The xoroshiro128jump Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package berkowitz computes the characteristic polynomial of a square
// GF(2) matrix without division, by recursion on leading principal
// submatrices. Division-free matters here specifically
// because GF(2) has no multiplicative inverse to fall back on.
package berkowitz

import "github.com/rngkit/xoroshiro128jump/gf2"

// CharPoly returns the coefficient vector of χ_A(x) = det(xI − A) for
// the n×n matrix a, leading coefficient first: entry i holds the
// coefficient of x^(n−i). Callers wanting ascending-degree order (as
// poly128.FromCoefficients expects) must reverse the result.
//
// a must be square; CharPoly panics with gf2.ErrShape otherwise.
func CharPoly(a *gf2.Matrix) []gf2.Scalar {
	if rows, cols := a.Dims(); rows != cols {
		panic(gf2.ErrShape)
	}
	return vector(a)
}

// vector implements the Berkowitz recursion itself.
func vector(a *gf2.Matrix) []gf2.Scalar {
	n, _ := a.Dims()
	if n == 0 {
		return []gf2.Scalar{gf2.One}
	}
	if n == 1 {
		return []gf2.Scalar{gf2.One, a.At(0, 0)}
	}

	sub, toep := toeplitz(a)
	bSub := vector(sub)
	return columnOf(toep.Mul(asColumn(bSub)), 0)
}

// toeplitz splits a = [[elem, row], [col, sub]] and builds:
//
//	d_0 = col,  d_{i+1} = sub·d_i   for i = 0 … n−3
//	D   = [1, elem, row·d_0, row·d_1, …, row·d_{n−2}]       (length n+1)
//
// then the lower-triangular Toeplitz matrix T of shape (n+1)×n with
// T[i][j] = D[i−j] for j ≤ i, else 0. It returns sub (for the recursive
// call) and T.
func toeplitz(a *gf2.Matrix) (*gf2.Matrix, *gf2.Matrix) {
	n, _ := a.Dims()
	elem := a.At(0, 0)
	row := a.Rows(0, 1).Cols(1, n)
	col := a.Rows(1, n).Cols(0, 1)
	sub := a.Rows(1, n).Cols(1, n)

	diagVecs := []*gf2.Matrix{col}
	for i := 0; i < n-2; i++ {
		diagVecs = append(diagVecs, sub.Mul(diagVecs[i]))
	}

	d := make([]gf2.Scalar, 0, n+1)
	d = append(d, gf2.One, elem)
	for _, v := range diagVecs {
		d = append(d, row.Mul(v).At(0, 0))
	}

	t := gf2.NewMatrix(n+1, n)
	for i := 0; i < n+1; i++ {
		for j := 0; j <= i && j < n; j++ {
			t.Set(i, j, d[i-j])
		}
	}
	return sub, t
}

func asColumn(v []gf2.Scalar) *gf2.Matrix {
	m := gf2.NewMatrix(len(v), 1)
	for i, s := range v {
		m.Set(i, 0, s)
	}
	return m
}

// columnOf extracts column j of m as a plain slice: gf2.Matrix has no
// public column extractor, since berkowitz is the only caller that wants
// one.
func columnOf(m *gf2.Matrix, j int) []gf2.Scalar {
	rows, _ := m.Dims()
	out := make([]gf2.Scalar, rows)
	for i := range out {
		out[i] = m.At(i, j)
	}
	return out
}
