// Copyright ©2024 The xoroshiro128jump Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xoroshiro128

import (
	"github.com/rngkit/xoroshiro128jump/poly128"
	"github.com/rngkit/xoroshiro128jump/u128"
)

// Jump advances s by k steps in time logarithmic in k, by applying the
// jump polynomial p(z) = z^k mod χ to M symbolically:
// walk the generator forward 128 times from s's current value, and
// whenever bit i of p is set, xor the state seen at step i into an
// accumulator. The accumulator replaces s.
func (s *State) Jump(k u128.Uint128) {
	p := poly128.BaseZModPow(k, CharPoly())

	var acc State
	cur := *s
	for bit := 0; bit < 128; bit++ {
		if p.Low.Bit(bit) == 1 {
			acc.XorAssign(cur)
		}
		cur.NextState()
	}
	*s = acc
}
