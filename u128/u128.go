// Copyright ©2024 The xoroshiro128jump Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package u128 implements a 128-bit unsigned integer as a pair of
// uint64 halves. Go has no native 128-bit integer type, and this
// repository needs one in two unrelated places: as a 128-bit register
// half of the 256-bit poly128 representation, and as the type of a
// generator state / step count / group order. Values that can exceed
// 128 bits (CRT's intermediate products) go through math/big instead;
// see Uint128.Big.
package u128

import "math/big"

// Uint128 is an unsigned 128-bit integer, Hi holding bits [64,128) and
// Lo holding bits [0,64).
type Uint128 struct {
	Hi, Lo uint64
}

// Zero is the additive identity.
var Zero = Uint128{}

// One is the multiplicative identity.
var One = Uint128{Lo: 1}

// FromUint64 widens a uint64 to Uint128.
func FromUint64(v uint64) Uint128 { return Uint128{Lo: v} }

// IsZero reports whether v is zero.
func (v Uint128) IsZero() bool { return v.Hi == 0 && v.Lo == 0 }

// Xor returns the bitwise xor of v and w.
func (v Uint128) Xor(w Uint128) Uint128 {
	return Uint128{Hi: v.Hi ^ w.Hi, Lo: v.Lo ^ w.Lo}
}

// And returns the bitwise and of v and w.
func (v Uint128) And(w Uint128) Uint128 {
	return Uint128{Hi: v.Hi & w.Hi, Lo: v.Lo & w.Lo}
}

// Bit returns the value (0 or 1) of bit i, 0 = least significant.
func (v Uint128) Bit(i int) uint64 {
	if i < 64 {
		return (v.Lo >> uint(i)) & 1
	}
	return (v.Hi >> uint(i-64)) & 1
}

// Lsh returns v shifted left by n bits; bits shifted past 127 are
// discarded.
func (v Uint128) Lsh(n uint) Uint128 {
	switch {
	case n == 0:
		return v
	case n >= 128:
		return Zero
	case n >= 64:
		return Uint128{Hi: v.Lo << (n - 64)}
	default:
		return Uint128{Hi: (v.Hi << n) | (v.Lo >> (64 - n)), Lo: v.Lo << n}
	}
}

// Rsh returns v shifted right by n bits, filling with zeros.
func (v Uint128) Rsh(n uint) Uint128 {
	switch {
	case n == 0:
		return v
	case n >= 128:
		return Zero
	case n >= 64:
		return Uint128{Lo: v.Hi >> (n - 64)}
	default:
		return Uint128{Hi: v.Hi >> n, Lo: (v.Lo >> n) | (v.Hi << (64 - n))}
	}
}

// Cmp returns -1, 0 or +1 as v is less than, equal to, or greater than w.
func (v Uint128) Cmp(w Uint128) int {
	switch {
	case v.Hi != w.Hi:
		if v.Hi < w.Hi {
			return -1
		}
		return 1
	case v.Lo != w.Lo:
		if v.Lo < w.Lo {
			return -1
		}
		return 1
	default:
		return 0
	}
}

// Sub returns v - w modulo 2^128.
func (v Uint128) Sub(w Uint128) Uint128 {
	lo := v.Lo - w.Lo
	borrow := uint64(0)
	if v.Lo < w.Lo {
		borrow = 1
	}
	return Uint128{Hi: v.Hi - w.Hi - borrow, Lo: lo}
}

// Add returns v + w modulo 2^128.
func (v Uint128) Add(w Uint128) Uint128 {
	lo := v.Lo + w.Lo
	carry := uint64(0)
	if lo < v.Lo {
		carry = 1
	}
	return Uint128{Hi: v.Hi + w.Hi + carry, Lo: lo}
}

// Big converts v to a math/big.Int, for computations (like CRT's
// intermediate products) whose magnitude can legitimately exceed 128
// bits.
func (v Uint128) Big() *big.Int {
	out := new(big.Int).SetUint64(v.Hi)
	out.Lsh(out, 64)
	out.Or(out, new(big.Int).SetUint64(v.Lo))
	return out
}

// FromBig reduces a non-negative big.Int mod 2^128 into a Uint128. It
// panics if b is negative.
func FromBig(b *big.Int) Uint128 {
	if b.Sign() < 0 {
		panic("u128: negative value")
	}
	mask := new(big.Int).SetUint64(^uint64(0))
	lo := new(big.Int).And(b, mask)
	hi := new(big.Int).Rsh(b, 64)
	hi.And(hi, mask)
	return Uint128{Hi: hi.Uint64(), Lo: lo.Uint64()}
}
