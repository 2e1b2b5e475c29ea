// Copyright ©2024 The xoroshiro128jump Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package poly128 implements GF(2)[z] polynomial arithmetic over a
// 256-bit register pair: addition, carry-less
// multiplication, modular reduction, and modular exponentiation. Degree
// up to 255 arises in intermediate products before reduction; reduced
// results (mod a degree-128 characteristic polynomial) always have
// degree < 128, i.e. High == 0.
package poly128

import (
	"math/big"
	"math/bits"

	"github.com/rngkit/xoroshiro128jump/u128"
)

// Error is the error type panicked by this package for precondition
// violations — there is no recoverable path for either.
type Error string

func (e Error) Error() string { return string(e) }

// ErrZeroPolynomial is panicked by LastBitPos on the zero polynomial:
// "most significant set bit" is undefined for zero, and every caller in
// this module treats hitting it as a programming error upstream.
const ErrZeroPolynomial = Error("poly128: most-significant-bit of zero polynomial")

// Poly is a polynomial over GF(2) of degree ≤ 255, represented as two
// 128-bit registers: bit i of Low is the coefficient of z^i for i<128,
// and bit (i−128) of High is the coefficient of z^i for 128≤i<256.
// Poly is a value type and is always copied, never aliased.
type Poly struct {
	Low, High u128.Uint128
}

// Z is the polynomial z^1.
var Z = Poly{Low: u128.Uint128{Lo: 0b10}}

// One is the polynomial 1.
var One = Poly{Low: u128.Uint128{Lo: 1}}

// Zero is the zero polynomial.
var Zero = Poly{}

// FromCoefficients builds a Poly from coefficients in ascending order of
// degree (coeff[i] is the coefficient of z^i). Coefficients beyond
// degree 255 are dropped, matching the Rust original's GF2Vec128::new.
func FromCoefficients(coeffs []uint8) Poly {
	var p Poly
	for i, c := range coeffs {
		if c&1 == 0 {
			continue
		}
		if i < 128 {
			p.Low = p.Low.Xor(u128.One.Lsh(uint(i)))
		} else if i < 256 {
			p.High = p.High.Xor(u128.One.Lsh(uint(i - 128)))
		}
	}
	return p
}

// IsZero reports whether p is the zero polynomial.
func (p Poly) IsZero() bool { return p.Low.IsZero() && p.High.IsZero() }

// IsOne reports whether p equals the constant polynomial 1.
func (p Poly) IsOne() bool { return p.High.IsZero() && p.Low == u128.One }

// Xor returns p + q (= p − q, since this is GF(2)[z]).
func (p Poly) Xor(q Poly) Poly {
	return Poly{Low: p.Low.Xor(q.Low), High: p.High.Xor(q.High)}
}

// LastBitPos returns 1 + the index of the highest set bit of p — the
// degree of p plus one. p must be nonzero.
func (p Poly) LastBitPos() uint32 {
	if !p.High.IsZero() {
		if p.High.Hi != 0 {
			return 128 + 64 + uint32(bits.Len64(p.High.Hi))
		}
		return 128 + uint32(bits.Len64(p.High.Lo))
	}
	if !p.Low.IsZero() {
		if p.Low.Hi != 0 {
			return 64 + uint32(bits.Len64(p.Low.Hi))
		}
		return uint32(bits.Len64(p.Low.Lo))
	}
	panic(ErrZeroPolynomial)
}

// Shl returns p shifted left by r, propagating bits across the 128-bit
// register boundary; bits shifted past position 255 are discarded.
func (p Poly) Shl(r uint32) Poly {
	if r == 0 {
		return p
	}
	if r >= 256 {
		return Zero
	}
	if r >= 128 {
		return Poly{High: p.Low.Lsh(uint(r - 128))}
	}
	high := p.High.Lsh(uint(r)).Xor(p.Low.Rsh(uint(128 - r)))
	low := p.Low.Lsh(uint(r))
	return Poly{Low: low, High: high}
}

// Shr returns p shifted right by r, filling with zeros.
func (p Poly) Shr(r uint32) Poly {
	if r == 0 {
		return p
	}
	if r >= 256 {
		return Zero
	}
	if r >= 128 {
		return Poly{Low: p.High.Rsh(uint(r - 128))}
	}
	low := p.Low.Rsh(uint(r)).Xor(p.High.Lsh(uint(128 - r)))
	high := p.High.Rsh(uint(r))
	return Poly{Low: low, High: high}
}

// Mul returns the carry-less product p·q, by double-and-add: walk q's
// bits from the low end up, xor-accumulating p shifted left by the
// current bit position whenever that bit of q is set. The result may
// have up to 255 relevant bits and is not reduced.
func (p Poly) Mul(q Poly) Poly {
	multiplicand, multiplier := p, q
	result := Zero
	for !multiplier.IsZero() {
		if multiplier.Low.Lo&1 != 0 {
			result = result.Xor(multiplicand)
		}
		multiplicand = multiplicand.Shl(1)
		multiplier = multiplier.Shr(1)
	}
	return result
}

// Modulo reduces p modulo rhs by schoolbook long division: align a
// shifted copy of rhs to p's top bit, and for each bit position from
// there down to rhs's degree, xor in the (progressively right-shifted)
// modulus whenever the polynomial's current top bit is set. Terminates
// early once the polynomial becomes zero. The result has degree strictly
// less than rhs's.
func (p Poly) Modulo(rhs Poly) Poly {
	polynomial := p
	m := rhs.LastBitPos()
	if polynomial.Shr(m - 1).IsZero() {
		return polynomial
	}
	polyMSB := polynomial.LastBitPos()
	shiftNum := polyMSB - m
	modulus := rhs.Shl(shiftNum)
	for shiftPos := uint32(0); shiftPos <= shiftNum; shiftPos++ {
		if polynomial.IsZero() {
			return Zero
		}
		if polynomial.Shr(polyMSB - 1 - shiftPos).IsOne() {
			polynomial = polynomial.Xor(modulus)
		}
		modulus = modulus.Shr(1)
	}
	return polynomial
}

// ModPow computes p^e mod modulus by right-to-left square-and-multiply.
// e must be non-negative; ModPow(p, 0, m) == One for any p.
func (p Poly) ModPow(e *big.Int, modulus Poly) Poly {
	result := One
	base := p
	exp := new(big.Int).Set(e)
	zero := new(big.Int)
	for exp.Cmp(zero) > 0 {
		if exp.Bit(0) == 1 {
			result = result.Mul(base).Modulo(modulus)
		}
		base = base.Mul(base).Modulo(modulus)
		exp.Rsh(exp, 1)
	}
	return result
}

// ModPowUint128 is ModPow with a u128.Uint128 exponent, the common case
// here since every exponent this module computes with (jump counts,
// subgroup cofactors) fits in 128 bits.
func (p Poly) ModPowUint128(e u128.Uint128, modulus Poly) Poly {
	return p.ModPow(e.Big(), modulus)
}

// BaseZModPow returns z^e mod modulus, the jump polynomial for an
// advance of e steps once modulus is the generator's characteristic
// polynomial.
func BaseZModPow(e u128.Uint128, modulus Poly) Poly {
	return Z.ModPowUint128(e, modulus)
}
