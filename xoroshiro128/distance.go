// Copyright ©2024 The xoroshiro128jump Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xoroshiro128

import (
	"github.com/rngkit/xoroshiro128jump/dlog"
	"github.com/rngkit/xoroshiro128jump/gf2"
	"github.com/rngkit/xoroshiro128jump/poly128"
	"github.com/rngkit/xoroshiro128jump/u128"
)

// Distance returns k such that advancing s by k NextState calls yields
// other, for some 0 ≤ k < 2^128 − 1:
//
//  1. Build the 128×128 matrix B whose row i is s's state after i
//     NextState calls (i.e. B linearizes "state ↦ the sequence of
//     forward states" starting from s).
//  2. Invert B (gf2.Matrix.Inverse).
//  3. other's state row vector times B^-1 gives the coefficient vector
//     of the jump polynomial h(z) with z^k ≡ h (mod χ).
//  4. Solve for k with Pohlig–Hellman over the known factorization of
//     2^128 − 1.
func (s State) Distance(other State, opts dlog.Options) u128.Uint128 {
	b := gf2.NewMatrix(128, 128)
	cur := s
	for i := 0; i < 128; i++ {
		v := cur.StateValue()
		for j := 0; j < 128; j++ {
			b.Set(i, j, gf2.NewScalar(uint8(v.Bit(j))))
		}
		cur.NextState()
	}
	bInv := b.Inverse()

	w := gf2.NewMatrix(1, 128)
	ov := other.StateValue()
	for j := 0; j < 128; j++ {
		w.Set(0, j, gf2.NewScalar(uint8(ov.Bit(j))))
	}

	hRow := w.Mul(bInv)
	coeffs := make([]uint8, 128)
	for j := 0; j < 128; j++ {
		coeffs[j] = uint8(hRow.At(0, j))
	}
	h := poly128.FromCoefficients(coeffs)

	char := CharPoly()
	Log.Debug().Msg("xoroshiro128: solving discrete log for distance")
	return dlog.PohligHellman(poly128.Z, BackwardsPoly(), h, char, GroupOrder, Factorization, opts)
}
