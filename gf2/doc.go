// Copyright ©2024 The xoroshiro128jump Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gf2 implements scalar and dense-matrix algebra over the
// two-element field GF(2), where addition is xor and multiplication is
// logical and. It provides the linear-algebra substrate — Gauss–Jordan
// matrix inversion in particular — on which the Berkowitz
// characteristic-polynomial engine and the xoroshiro128+ transition
// matrix are built.
package gf2
