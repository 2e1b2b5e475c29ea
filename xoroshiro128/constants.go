// Copyright ©2024 The xoroshiro128jump Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xoroshiro128

import "github.com/rngkit/xoroshiro128jump/u128"

// GroupOrder is 2^128 − 1, the order of the multiplicative group
// GF(2)[z]/χ that Distance solves a discrete log in.
var GroupOrder = u128.Uint128{Hi: ^uint64(0), Lo: ^uint64(0)}

// orderMinusOne is 2^128 − 2 ≡ −1 (mod 2^128 − 1), the exponent that
// produces the generator's inverse step.
var orderMinusOne = u128.Uint128{Hi: ^uint64(0), Lo: ^uint64(0) - 1}

// Factorization is the fixed, known prime factorization of 2^128 − 1.
// This system does not factor at runtime; it is baked in as a constant.
var Factorization = []uint64{3, 5, 17, 257, 641, 65537, 274177, 6700417, 67280421310721}
