// Copyright ©2024 The xoroshiro128jump Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cache persists the precomputed constants that
// implementations should cache — the transition matrix M, its
// characteristic polynomial χ, the backwards-step polynomial, and the
// factorization of 2^128 − 1 — as a CBOR-encoded, semver-tagged blob, so
// a host process can warm-start a Distance query instead of re-running
// Berkowitz and rebuilding M on every process start.
//
// This is the one part of the module that talks to the outside world
// (an io.Writer/io.Reader), so unlike the core algebra packages it
// returns plain errors instead of panicking.
package cache

import (
	"fmt"
	"io"

	"github.com/blang/semver/v4"
	"github.com/fxamacker/cbor/v2"

	"github.com/rngkit/xoroshiro128jump/gf2"
	"github.com/rngkit/xoroshiro128jump/poly128"
	"github.com/rngkit/xoroshiro128jump/u128"
)

// formatVersion is the cache blob's schema version. Load refuses a blob
// whose major version differs, rather than silently misinterpreting
// bytes laid out by an incompatible encoding.
var formatVersion = semver.MustParse("1.0.0")

// poly128Wire is the wire representation of a poly128.Poly: four uint64
// words (Low.Hi, Low.Lo, High.Hi, High.Lo), since poly128.Poly itself has
// no cbor tags of its own and this package is the only thing that needs
// to serialize one.
type poly128Wire struct {
	LowHi, LowLo, HighHi, HighLo uint64
}

func toWire(p poly128.Poly) poly128Wire {
	return poly128Wire{LowHi: p.Low.Hi, LowLo: p.Low.Lo, HighHi: p.High.Hi, HighLo: p.High.Lo}
}

func (w poly128Wire) poly() poly128.Poly {
	return poly128.Poly{
		Low:  u128.Uint128{Hi: w.LowHi, Lo: w.LowLo},
		High: u128.Uint128{Hi: w.HighHi, Lo: w.HighLo},
	}
}

// matrixRow is one row of a 128-column GF(2) matrix, packed into a
// 128-bit pair.
type matrixRow struct {
	Hi, Lo uint64
}

// Bundle is the set of precomputed constants this package persists.
type Bundle struct {
	Matrix        *gf2.Matrix
	CharPoly      poly128.Poly
	BackwardsPoly poly128.Poly
	Factorization []uint64
}

// wireBundle is Bundle's CBOR-serializable shape.
type wireBundle struct {
	Version       string
	Rows          int
	Cols          int
	MatrixRows    []matrixRow
	CharPoly      poly128Wire
	BackwardsPoly poly128Wire
	Factorization []uint64
}

// Save encodes b to w as CBOR, tagged with this package's format
// version.
func Save(w io.Writer, b Bundle) error {
	rows, cols := b.Matrix.Dims()
	if cols > 128 {
		return fmt.Errorf("cache: matrix has %d columns, wire format supports at most 128", cols)
	}
	wire := wireBundle{
		Version:       formatVersion.String(),
		Rows:          rows,
		Cols:          cols,
		MatrixRows:    make([]matrixRow, rows),
		CharPoly:      toWire(b.CharPoly),
		BackwardsPoly: toWire(b.BackwardsPoly),
		Factorization: b.Factorization,
	}
	for i := 0; i < rows; i++ {
		var row u128.Uint128
		for j := 0; j < cols; j++ {
			if b.Matrix.At(i, j).IsOne() {
				row = row.Xor(u128.One.Lsh(uint(j)))
			}
		}
		wire.MatrixRows[i] = matrixRow{Hi: row.Hi, Lo: row.Lo}
	}

	enc, err := cbor.Marshal(wire)
	if err != nil {
		return fmt.Errorf("cache: encode: %w", err)
	}
	_, err = w.Write(enc)
	return err
}

// Load decodes a Bundle previously written by Save. It returns an error
// if the blob's major format version does not match this package's, or
// if the bytes are not valid CBOR.
func Load(r io.Reader) (Bundle, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return Bundle{}, fmt.Errorf("cache: read: %w", err)
	}
	var wire wireBundle
	if err := cbor.Unmarshal(raw, &wire); err != nil {
		return Bundle{}, fmt.Errorf("cache: decode: %w", err)
	}

	gotVersion, err := semver.Parse(wire.Version)
	if err != nil {
		return Bundle{}, fmt.Errorf("cache: invalid version tag %q: %w", wire.Version, err)
	}
	if gotVersion.Major != formatVersion.Major {
		return Bundle{}, fmt.Errorf("cache: incompatible format version %s (expected major version %d)", gotVersion, formatVersion.Major)
	}

	m := gf2.NewMatrix(wire.Rows, wire.Cols)
	for i, row := range wire.MatrixRows {
		v := u128.Uint128{Hi: row.Hi, Lo: row.Lo}
		for j := 0; j < wire.Cols; j++ {
			m.Set(i, j, gf2.NewScalar(uint8(v.Bit(j))))
		}
	}

	return Bundle{
		Matrix:        m,
		CharPoly:      wire.CharPoly.poly(),
		BackwardsPoly: wire.BackwardsPoly.poly(),
		Factorization: wire.Factorization,
	}, nil
}
