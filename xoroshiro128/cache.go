// Copyright ©2024 The xoroshiro128jump Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xoroshiro128

import (
	"io"
	"sync"

	"github.com/rngkit/xoroshiro128jump/cache"
)

// SaveCache writes the process's precomputed constants (M, χ, the
// backwards polynomial, and the factorization of 2^128 − 1) to w,
// computing any that are not already cached.
func SaveCache(w io.Writer) error {
	return cache.Save(w, cache.Bundle{
		Matrix:        Matrix(),
		CharPoly:      CharPoly(),
		BackwardsPoly: BackwardsPoly(),
		Factorization: Factorization,
	})
}

// LoadCache reads a bundle previously written by SaveCache and installs
// it as this process's precomputed constants, skipping the Berkowitz and
// backwards-polynomial computation entirely. It must be called before
// the first call to Matrix, CharPoly, or BackwardsPoly — once any of
// those has run, the sync.Once guarding it has already fired and
// LoadCache's values would be ignored, so LoadCache returns an error in
// that case instead of silently doing nothing.
func LoadCache(r io.Reader) error {
	b, err := cache.Load(r)
	if err != nil {
		return err
	}

	if !warmStart(&matrixOnce, func() { matrixM = b.Matrix }) {
		return errAlreadyComputed("Matrix")
	}
	if !warmStart(&charPolyOnce, func() { charPolyCached = b.CharPoly }) {
		return errAlreadyComputed("CharPoly")
	}
	if !warmStart(&backwardsOnce, func() { backwardsPolyCached = b.BackwardsPoly }) {
		return errAlreadyComputed("BackwardsPoly")
	}
	Log.Info().Msg("xoroshiro128: installed precomputed constants from cache")
	return nil
}

// warmStart runs fn via once.Do and reports whether fn actually ran
// (false means once had already fired from an earlier, uncached call).
func warmStart(once *sync.Once, fn func()) bool {
	ran := false
	once.Do(func() {
		fn()
		ran = true
	})
	return ran
}

type cacheError string

func (e cacheError) Error() string { return string(e) }

func errAlreadyComputed(what string) error {
	return cacheError("xoroshiro128: " + what + " was already computed before LoadCache; cache ignored")
}
