// Copyright ©2024 The xoroshiro128jump Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gf2

// Error is the error type returned or panicked by the gf2 package. It
// follows gonum's mat64.Error convention: a named string satisfying the
// error interface, recoverable by a caller that wraps a call in a
// recover, but otherwise treated as fatal.
type Error string

func (e Error) Error() string { return string(e) }

// ErrDivisionUndefined is panicked by Scalar.Div. GF(2) has no
// multiplicative inverse structure worth exposing, and no code in this
// module calls Div.
const ErrDivisionUndefined = Error("gf2: division is undefined over GF(2)")

// Scalar is a single element of GF(2), always 0 or 1.
type Scalar uint8

// Zero and One are the canonical GF(2) elements.
const (
	Zero Scalar = 0
	One  Scalar = 1
)

// NewScalar masks v down to a single bit.
func NewScalar(v uint8) Scalar { return Scalar(v & 1) }

// Add returns s xor t, which is also GF(2) subtraction.
func (s Scalar) Add(t Scalar) Scalar { return s ^ t }

// Sub returns s xor t; identical to Add in GF(2).
func (s Scalar) Sub(t Scalar) Scalar { return s ^ t }

// Mul returns s and t.
func (s Scalar) Mul(t Scalar) Scalar { return s & t }

// Div panics: GF(2) has no division, and every division-free algorithm
// in this module (Berkowitz, Gauss–Jordan) exists precisely so that this
// method is never reached on a real computation path.
func (s Scalar) Div(Scalar) Scalar {
	panic(ErrDivisionUndefined)
}

// IsZero reports whether s is the additive identity.
func (s Scalar) IsZero() bool { return s == Zero }

// IsOne reports whether s is the multiplicative identity.
func (s Scalar) IsOne() bool { return s == One }
