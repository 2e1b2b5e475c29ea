// Copyright ©2024 The xoroshiro128jump Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package builder provides symbolic construction of GF(2) linear maps by
// composing elementary block operations — rotate-left, shift-left, and
// xor — the way the xoroshiro128+ transition matrix is assembled,
// without ever touching an actual generator state.
package builder

import "github.com/rngkit/xoroshiro128jump/gf2"

// MatBuilder wraps a (total × width) GF(2) matrix under construction. A
// freshly constructed MatBuilder is a block-identity injection: for
// parameters (position, width, total), rows [position, position+width)
// form the identity and every other row is zero, so that a total-bit
// row vector multiplied by the builder's matrix yields the width-bit
// slice starting at position.
type MatBuilder struct {
	Matrix *gf2.Matrix
	width  int
}

// New returns a block-identity injection of the given width, embedded at
// row offset position within a total-row workspace.
func New(position, width, total int) *MatBuilder {
	m := gf2.NewMatrix(total, width)
	for i := 0; i < width; i++ {
		m.Set(position+i, i, gf2.One)
	}
	return &MatBuilder{Matrix: m, width: width}
}

// rotl returns the width×width permutation matrix for the cyclic
// rotation i ↦ (i+n) mod width.
func rotl(width, n int) *gf2.Matrix {
	m := gf2.NewMatrix(width, width)
	for i := 0; i < width; i++ {
		m.Set(i, (i+n)%width, gf2.One)
	}
	return m
}

// shl returns the width×width left-shift matrix: identity with its
// diagonal offset by n, zero-filled — post-multiplying by it computes a
// left shift by n bit positions within a width-bit lane.
func shl(width, n int) *gf2.Matrix {
	m := gf2.NewMatrix(width, width)
	for i := n; i < width; i++ {
		m.Set(i-n, i, gf2.One)
	}
	return m
}

// RotateLeft returns a new builder whose matrix is b's matrix
// post-multiplied by the width×width cyclic rotation by n, i.e. the
// linearization of a bitwise rotate-left by n within each width-bit lane.
func (b *MatBuilder) RotateLeft(n int) *MatBuilder {
	return &MatBuilder{Matrix: b.Matrix.Mul(rotl(b.width, n)), width: b.width}
}

// ShiftLeft returns a new builder whose matrix is b's matrix
// post-multiplied by the width×width left-shift by n.
func (b *MatBuilder) ShiftLeft(n int) *MatBuilder {
	return &MatBuilder{Matrix: b.Matrix.Mul(shl(b.width, n)), width: b.width}
}

// Xor returns the element-wise sum (GF(2) xor) of b and c. Both must
// have matching shape, which in practice means matching width and
// originating from the same total-row workspace.
func (b *MatBuilder) Xor(c *MatBuilder) *MatBuilder {
	return &MatBuilder{Matrix: b.Matrix.Add(c.Matrix), width: b.width}
}

// Clone returns an independent copy of b.
func (b *MatBuilder) Clone() *MatBuilder {
	return &MatBuilder{Matrix: b.Matrix.Clone(), width: b.width}
}
