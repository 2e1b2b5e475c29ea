// Copyright ©2024 The xoroshiro128jump Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cache_test

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rngkit/xoroshiro128jump/cache"
	"github.com/rngkit/xoroshiro128jump/gf2"
	"github.com/rngkit/xoroshiro128jump/poly128"
)

func sampleBundle() cache.Bundle {
	m := gf2.Identity(4)
	m.Set(0, 3, gf2.One)
	return cache.Bundle{
		Matrix:        m,
		CharPoly:      poly128.FromCoefficients([]uint8{1, 1, 0, 0, 1}),
		BackwardsPoly: poly128.FromCoefficients([]uint8{0, 1, 1}),
		Factorization: []uint64{3, 5, 17},
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	want := sampleBundle()
	require.NoError(t, cache.Save(&buf, want))

	got, err := cache.Load(&buf)
	require.NoError(t, err)

	// CharPoly/BackwardsPoly/Factorization have only exported fields, so
	// go-cmp needs no options here; it gives a structural diff on failure
	// instead of testify's flat "expected/actual" dump.
	if diff := cmp.Diff(want.CharPoly, got.CharPoly); diff != "" {
		t.Errorf("CharPoly mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want.BackwardsPoly, got.BackwardsPoly); diff != "" {
		t.Errorf("BackwardsPoly mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want.Factorization, got.Factorization); diff != "" {
		t.Errorf("Factorization mismatch (-want +got):\n%s", diff)
	}

	rows, cols := want.Matrix.Dims()
	gotRows, gotCols := got.Matrix.Dims()
	require.Equal(t, rows, gotRows)
	require.Equal(t, cols, gotCols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			assert.Equal(t, want.Matrix.At(i, j), got.Matrix.At(i, j), "row %d col %d", i, j)
		}
	}
}

func TestLoadRejectsGarbage(t *testing.T) {
	_, err := cache.Load(bytes.NewReader([]byte("not cbor")))
	assert.Error(t, err)
}

func TestSaveRejectsOversizedMatrix(t *testing.T) {
	var buf bytes.Buffer
	b := cache.Bundle{Matrix: gf2.NewMatrix(2, 200)}
	assert.Error(t, cache.Save(&buf, b))
}

func TestLoadRejectsIncompatibleMajorVersion(t *testing.T) {
	// Build a blob whose version is a higher major than this package
	// speaks: encode a real bundle, then rewrite its "1.0.0" version
	// string in place to "9.9.9" (same length, so the CBOR text-string
	// header stays valid). The result is a well-formed blob with a valid
	// semver tag of major version 9, which Load must reject.
	var buf bytes.Buffer
	require.NoError(t, cache.Save(&buf, sampleBundle()))
	raw := buf.Bytes()
	corrupted := bytes.Replace(raw, []byte("1.0.0"), []byte("9.9.9"), 1)
	if bytes.Equal(corrupted, raw) {
		t.Skip("version string not found verbatim in CBOR encoding")
	}
	_, err := cache.Load(bytes.NewReader(corrupted))
	assert.Error(t, err)
}
