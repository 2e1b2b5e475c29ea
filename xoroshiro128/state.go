// Copyright ©2024 The xoroshiro128jump Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xoroshiro128

import (
	"math/bits"

	"github.com/rngkit/xoroshiro128jump/u128"
)

// State is one xoroshiro128+ state: two 64-bit words. Its next-state
// recurrence is the fixed published xoshiro.di.unimi.it construction,
// not part of this module's interesting math (it is an
// external collaborator) — Jump and Distance are what's hard; this is
// just the oracle they're checked against and driven through.
type State struct {
	S0, S1 uint64
}

// NewState returns the state seeded with s0, using the fixed secondary
// seed 0x82A2B175229D6A5B that this module's tests and CLI use. The
// precomputed constants (Matrix, CharPoly, BackwardsPoly) do not depend
// on the seed.
func NewState(s0 uint64) State {
	return State{S0: s0, S1: 0x82A2B175229D6A5B}
}

// NextState advances s by one step:
//
//	s1 ^= s0
//	s0' = rotl(s0, 24) ^ s1 ^ (s1 << 16)
//	s1' = rotl(s1, 37)
func (s *State) NextState() {
	s0, s1 := s.S0, s.S1
	s1 ^= s0
	s.S0 = bits.RotateLeft64(s0, 24) ^ s1 ^ (s1 << 16)
	s.S1 = bits.RotateLeft64(s1, 37)
}

// Advance steps s forward n times by repeated NextState calls. It is
// the naive, linear-time counterpart to Jump, kept as the ground-truth
// oracle tests check Jump and Distance against.
func (s *State) Advance(n uint64) {
	for i := uint64(0); i < n; i++ {
		s.NextState()
	}
}

// StateValue returns s0 | (s1 << 64) as a single 128-bit value.
func (s State) StateValue() u128.Uint128 {
	return u128.Uint128{Hi: s.S1, Lo: s.S0}
}

// XorAssign xors t's words into s in place, matching the Rust
// original's componentwise-xor state combination used while
// accumulating Jump's result.
func (s *State) XorAssign(t State) {
	s.S0 ^= t.S0
	s.S1 ^= t.S1
}
