// Copyright ©2024 The xoroshiro128jump Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dlog

import (
	"math/big"

	"github.com/rngkit/xoroshiro128jump/u128"
)

// modularInverse returns a^-1 mod m via the extended Euclidean
// algorithm. math/big is used here, not a third-party bignum library,
// because the pack carries none that improves on the standard library's
// arbitrary-precision integers for this single-purpose computation.
func modularInverse(a, m *big.Int) *big.Int {
	g := new(big.Int)
	x := new(big.Int)
	g.GCD(x, nil, a, m)
	return x.Mod(x, m)
}

// CRT reconstructs the unique k in [0, M) with k ≡ rems[i] (mod mods[i])
// for every i, where M = Π mods[i] and the mods are pairwise coprime.
//
// This uses the direct, mathematically correct recipe
// ((val mod M) + M) mod M rather than the original Rust prototype's
// "if val < 0, val -= 1" adjustment before the final reduction — see
// DESIGN.md's note on this deviation.
func CRT(mods, rems []uint64) u128.Uint128 {
	if len(mods) != len(rems) {
		panic("dlog: CRT moduli/remainder length mismatch")
	}
	product := big.NewInt(1)
	for _, m := range mods {
		product.Mul(product, new(big.Int).SetUint64(m))
	}

	total := new(big.Int)
	for i := range mods {
		modulus := new(big.Int).SetUint64(mods[i])
		remainder := new(big.Int).SetUint64(rems[i])
		partial := new(big.Int).Div(product, modulus)
		inv := modularInverse(partial, modulus)

		term := new(big.Int).Mul(inv, remainder)
		term.Mul(term, partial)
		total.Add(total, term)
	}

	total.Mod(total, product)
	total.Add(total, product)
	total.Mod(total, product)
	return u128.FromBig(total)
}
