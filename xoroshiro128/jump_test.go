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

func TestJumpZeroIsIdentity(t *testing.T) {
	s := xoroshiro128.NewState(42)
	got := s
	got.Jump(u128.Zero)
	assert.Equal(t, s, got)
}

func TestJumpOneMatchesNextState(t *testing.T) {
	s := xoroshiro128.NewState(42)
	want := s
	want.NextState()

	got := s
	got.Jump(u128.One)
	assert.Equal(t, want, got)
}

func TestJumpThenComplementJumpReturnsToStart(t *testing.T) {
	s := xoroshiro128.NewState(0x1234)
	for _, k := range []u128.Uint128{
		u128.FromUint64(1),
		u128.FromUint64(1_000_000),
		{Hi: 1, Lo: 0},
		{Hi: 0xdead, Lo: 0xbeef},
	} {
		got := s
		got.Jump(k)
		complement := xoroshiro128.GroupOrder.Sub(k)
		got.Jump(complement)
		assert.Equal(t, s, got, "k=%+v", k)
	}
}

func TestJumpIsAdditive(t *testing.T) {
	s := xoroshiro128.NewState(0xc0ffee)
	a := u128.FromUint64(12345)
	b := u128.FromUint64(67890)

	sequential := s
	sequential.Jump(a)
	sequential.Jump(b)

	combined := s
	combined.Jump(a.Add(b))

	assert.Equal(t, combined, sequential)
}

func TestJumpFullGroupOrderIsIdentity(t *testing.T) {
	s := xoroshiro128.NewState(0x9e3779b9)
	got := s
	got.Jump(xoroshiro128.GroupOrder)
	assert.Equal(t, s, got)
}
