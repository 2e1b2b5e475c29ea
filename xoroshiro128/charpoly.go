// Copyright ©2024 The xoroshiro128jump Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xoroshiro128

import (
	"sync"

	"github.com/rngkit/xoroshiro128jump/berkowitz"
	"github.com/rngkit/xoroshiro128jump/poly128"
)

var (
	charPolyOnce        sync.Once
	charPolyCached      poly128.Poly
	backwardsOnce       sync.Once
	backwardsPolyCached poly128.Poly
)

// CharPoly returns χ(z), the characteristic polynomial of Matrix(),
// computed once via the Berkowitz algorithm and cached: it is, like M
// itself, a property of the generator family rather than of any one
// state, and recomputing it from scratch dominates everything else
// Distance does.
func CharPoly() poly128.Poly {
	charPolyOnce.Do(func() {
		descending := berkowitz.CharPoly(Matrix())
		ascending := make([]uint8, len(descending))
		for i, c := range descending {
			ascending[len(descending)-1-i] = uint8(c)
		}
		charPolyCached = poly128.FromCoefficients(ascending)
		Log.Debug().Int("degree", len(descending)-1).Msg("xoroshiro128: computed characteristic polynomial")
	})
	return charPolyCached
}

// BackwardsPoly returns z^(2^128−2) mod χ, i.e. g^-1 expressed as the
// jump polynomial for a single backward step, computed once and cached
// alongside CharPoly.
func BackwardsPoly() poly128.Poly {
	backwardsOnce.Do(func() {
		backwardsPolyCached = poly128.BaseZModPow(orderMinusOne, CharPoly())
		Log.Debug().Msg("xoroshiro128: computed backwards-step polynomial")
	})
	return backwardsPolyCached
}
