// Copyright ©2024 The xoroshiro128jump Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dlog

import (
	"math/big"

	"github.com/rs/zerolog"

	"github.com/rngkit/xoroshiro128jump/poly128"
	"github.com/rngkit/xoroshiro128jump/u128"
)

// Log is the package-level structured logger for the discrete-log
// solver. It defaults to a no-op logger; set it (e.g. to
// zerolog.New(os.Stderr)) to observe subgroup-by-subgroup progress on a
// slow distance query.
var Log = zerolog.Nop()

// PohligHellman solves advance^k ≡ jump (mod char) for k in
// [0, order), where order's prime factorization is exactly primes (each
// appearing once, 2^128 − 1 being squarefree), and
// backwards = advance^-1 mod char is supplied precomputed.
//
// Primes are processed in order; after each one, a candidate k is
// recomposed by CRT over the residues found so far and checked against
// jump directly, short-circuiting as soon as the accumulated factors
// pin k down uniquely.
func PohligHellman(advance, backwards, jump, char poly128.Poly, order u128.Uint128, primes []uint64, opts Options) u128.Uint128 {
	var mods, rems []uint64

	for _, prime := range primes {
		exp := divByUint64(order, prime)
		gi := advance.ModPowUint128(exp, char)
		hi := jump.ModPowUint128(exp, char)
		bi := backwards.ModPowUint128(exp, char)

		r := BabyStepGiantStep(gi, hi, bi, char, prime, opts)
		mods = append(mods, prime)
		rems = append(rems, r)

		Log.Debug().Uint64("prime", prime).Uint64("residue", r).Int("factors_done", len(mods)).Msg("pohlig-hellman: subgroup solved")

		candidate := CRT(mods, rems)
		if poly128.BaseZModPow(candidate, char) == jump {
			return candidate
		}
	}
	return CRT(mods, rems)
}

// divByUint64 computes order / d, where order may need all 128 bits but
// the quotient never exceeds order.
func divByUint64(order u128.Uint128, d uint64) u128.Uint128 {
	q := new(big.Int).Div(order.Big(), new(big.Int).SetUint64(d))
	return u128.FromBig(q)
}
