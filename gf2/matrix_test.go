// Copyright ©2024 The xoroshiro128jump Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gf2_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rngkit/xoroshiro128jump/gf2"
)

func TestIdentityIsMultiplicativeUnit(t *testing.T) {
	m := gf2.NewMatrix(3, 3)
	m.Set(0, 1, gf2.One)
	m.Set(1, 2, gf2.One)
	m.Set(2, 0, gf2.One)

	id := gf2.Identity(3)
	got := id.Mul(m)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			assert.Equal(t, m.At(i, j), got.At(i, j))
		}
	}
}

func TestAddIsXor(t *testing.T) {
	a := gf2.NewMatrix(2, 2)
	a.Set(0, 0, gf2.One)
	a.Set(1, 1, gf2.One)
	b := gf2.NewMatrix(2, 2)
	b.Set(0, 0, gf2.One)
	b.Set(0, 1, gf2.One)

	got := a.Add(b)
	assert.Equal(t, gf2.Zero, got.At(0, 0))
	assert.Equal(t, gf2.One, got.At(0, 1))
	assert.Equal(t, gf2.Zero, got.At(1, 0))
	assert.Equal(t, gf2.One, got.At(1, 1))
}

func TestMulShapeMismatchPanics(t *testing.T) {
	a := gf2.NewMatrix(2, 3)
	b := gf2.NewMatrix(2, 3)
	assert.PanicsWithValue(t, gf2.ErrShape, func() { a.Mul(b) })
}

func TestHStack(t *testing.T) {
	a := gf2.Identity(2)
	b := gf2.NewMatrix(2, 2)
	b.Set(0, 0, gf2.One)
	b.Set(1, 1, gf2.One)

	out := gf2.HStack(a, b)
	rows, cols := out.Dims()
	require.Equal(t, 2, rows)
	require.Equal(t, 4, cols)
	assert.Equal(t, gf2.One, out.At(0, 0))
	assert.Equal(t, gf2.One, out.At(0, 2))
}

func TestRowsAndCols(t *testing.T) {
	m := gf2.NewMatrix(3, 3)
	m.Set(1, 1, gf2.One)
	m.Set(1, 2, gf2.One)

	r := m.Rows(1, 2)
	rows, cols := r.Dims()
	require.Equal(t, 1, rows)
	require.Equal(t, 3, cols)
	assert.Equal(t, gf2.One, r.At(0, 1))

	c := m.Cols(1, 3)
	rows, cols = c.Dims()
	require.Equal(t, 3, rows)
	require.Equal(t, 2, cols)
	assert.Equal(t, gf2.One, c.At(1, 0))
	assert.Equal(t, gf2.One, c.At(1, 1))
}
