// Copyright ©2024 The xoroshiro128jump Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gf2_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"

	"github.com/rngkit/xoroshiro128jump/gf2"
)

func TestScalarAlgebra(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("Add is xor and equals Sub", prop.ForAll(
		func(a, b uint8) bool {
			x, y := gf2.NewScalar(a), gf2.NewScalar(b)
			want := gf2.NewScalar(a ^ b)
			return x.Add(y) == want && x.Sub(y) == want
		},
		gen.UInt8(),
		gen.UInt8(),
	))

	properties.Property("Mul is and", prop.ForAll(
		func(a, b uint8) bool {
			x, y := gf2.NewScalar(a), gf2.NewScalar(b)
			return x.Mul(y) == gf2.NewScalar(a&b)
		},
		gen.UInt8(),
		gen.UInt8(),
	))

	properties.TestingRun(t)
}

func TestScalarZeroOne(t *testing.T) {
	assert.True(t, gf2.Zero.IsZero())
	assert.False(t, gf2.Zero.IsOne())
	assert.True(t, gf2.One.IsOne())
	assert.False(t, gf2.One.IsZero())
}

func TestScalarDivPanics(t *testing.T) {
	assert.PanicsWithValue(t, gf2.ErrDivisionUndefined, func() {
		gf2.One.Div(gf2.One)
	})
}
