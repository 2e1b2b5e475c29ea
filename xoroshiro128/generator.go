// Copyright ©2024 The xoroshiro128jump Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xoroshiro128

import (
	"github.com/rngkit/xoroshiro128jump/gf2"
	"github.com/rngkit/xoroshiro128jump/u128"
)

// Generator is the collaborator contract any 128-state-bit, GF(2)-linear
// generator must satisfy: report its own state and advance by one step.
// The matrix linearization of that step is the separate MatrixSource
// contract. *State implements Generator for xoroshiro128+; Jump and
// Distance are methods of State and do not go through this interface.
type Generator interface {
	// NextState advances the generator by one step.
	NextState()

	// StateValue returns the 128-bit concatenation of the generator's
	// state words, bit-for-bit identical to what Matrix()'s linear map
	// operates on.
	StateValue() u128.Uint128
}

// MatrixSource is implemented by a Generator family (not an instance)
// that can produce the 128×128 GF(2) matrix M such that, for any state
// v, v·M (v as a 1×128 row of bits) equals the state produced by one
// call to NextState from v.
type MatrixSource interface {
	Matrix() *gf2.Matrix
}
