// Copyright ©2024 The xoroshiro128jump Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xoroshiro128_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rngkit/xoroshiro128jump/cache"
	"github.com/rngkit/xoroshiro128jump/xoroshiro128"
)

// SaveCache forces computation of Matrix/CharPoly/BackwardsPoly (via
// their sync.Once-guarded accessors) and must serialize values that
// round-trip through the cache package's own Bundle/Load, independent
// of xoroshiro128's process-lifetime caching.
func TestSaveCacheProducesLoadableBundle(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, xoroshiro128.SaveCache(&buf))

	b, err := cache.Load(&buf)
	require.NoError(t, err)

	assert.Equal(t, xoroshiro128.CharPoly(), b.CharPoly)
	assert.Equal(t, xoroshiro128.BackwardsPoly(), b.BackwardsPoly)
	assert.Equal(t, xoroshiro128.Factorization, b.Factorization)

	wantRows, wantCols := xoroshiro128.Matrix().Dims()
	gotRows, gotCols := b.Matrix.Dims()
	assert.Equal(t, wantRows, gotRows)
	assert.Equal(t, wantCols, gotCols)
}

// By the time this test runs, some earlier test in this package has
// already forced Matrix/CharPoly/BackwardsPoly to compute (their
// sync.Once guards fire once per process) — LoadCache's documented
// behavior in that situation is to leave the cached values alone and
// report an error, rather than silently ignoring the loaded bundle.
func TestLoadCacheAfterComputationErrors(t *testing.T) {
	xoroshiro128.CharPoly() // ensure the Once guards have fired

	var buf bytes.Buffer
	require.NoError(t, xoroshiro128.SaveCache(&buf))

	err := xoroshiro128.LoadCache(&buf)
	assert.Error(t, err)
}
