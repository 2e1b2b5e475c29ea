// Copyright ©2024 The xoroshiro128jump Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xoroshiro128_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rngkit/xoroshiro128jump/u128"
	"github.com/rngkit/xoroshiro128jump/xoroshiro128"
)

func TestNewStateFixesSecondarySeed(t *testing.T) {
	s := xoroshiro128.NewState(7)
	assert.Equal(t, uint64(7), s.S0)
	assert.Equal(t, uint64(0x82A2B175229D6A5B), s.S1)
}

func TestNextStateChangesState(t *testing.T) {
	s := xoroshiro128.NewState(1)
	before := s
	s.NextState()
	assert.NotEqual(t, before, s)
}

func TestAdvanceMatchesRepeatedNextState(t *testing.T) {
	a := xoroshiro128.NewState(123456789)
	b := a
	a.Advance(37)
	for i := 0; i < 37; i++ {
		b.NextState()
	}
	assert.Equal(t, b, a)
}

func TestStateValuePacksS1HighS0Low(t *testing.T) {
	s := xoroshiro128.NewState(0xdeadbeef)
	v := s.StateValue()
	assert.Equal(t, u128.Uint128{Hi: s.S1, Lo: s.S0}, v)
}

func TestXorAssign(t *testing.T) {
	a := xoroshiro128.State{S0: 0b1010, S1: 0b0101}
	b := xoroshiro128.State{S0: 0b0110, S1: 0b0011}
	a.XorAssign(b)
	assert.Equal(t, xoroshiro128.State{S0: 0b1100, S1: 0b0110}, a)
}
