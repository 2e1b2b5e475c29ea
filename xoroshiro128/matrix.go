// Copyright ©2024 The xoroshiro128jump Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xoroshiro128

import (
	"sync"

	"github.com/rngkit/xoroshiro128jump/gf2"
	"github.com/rngkit/xoroshiro128jump/gf2/builder"
)

var (
	matrixOnce sync.Once
	matrixM    *gf2.Matrix
)

// Matrix returns the 128×128 GF(2) matrix M such that, for any state v
// viewed as a 1×128 row of bits, v·M equals the state produced by
// one NextState call from v. It is computed
// once per process and cached: M is a property of the generator family,
// not of any one state.
func Matrix() *gf2.Matrix {
	matrixOnce.Do(func() {
		matrixM = buildMatrix()
		Log.Debug().Msg("xoroshiro128: built transition matrix")
	})
	return matrixM
}

// buildMatrix linearizes:
//
//	s1 ^= s0
//	new_s0 = rotl(s0, 24) ^ s1 ^ (s1 << 16)
//	new_s1 = rotl(s1, 37)
//
// by composing elementary block operations on two builders seeded as
// the identity injections for the s0 and s1 halves of a 128-bit state,
// then concatenating the resulting 128×64 blocks horizontally.
func buildMatrix() *gf2.Matrix {
	s0 := builder.New(0, 64, 128)
	s1 := builder.New(64, 64, 128)

	s1 = s1.Xor(s0)
	newS0 := s0.RotateLeft(24).Xor(s1).Xor(s1.ShiftLeft(16))
	newS1 := s1.RotateLeft(37)

	return gf2.HStack(newS0.Matrix, newS1.Matrix)
}
