// Copyright ©2024 The xoroshiro128jump Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package xoroshiro128 computes the discrete jump distance between two
// internal states of a xoroshiro128+ generator, and its inverse, a
// logarithmic-time jump. Naively this is an enumeration of up to 2^128
// states; this package instead linearizes the generator's step as a
// GF(2) matrix (package gf2), derives its characteristic polynomial
// (package berkowitz), and solves a discrete log in GF(2)[z] modulo that
// polynomial (packages poly128, dlog) using the known prime
// factorization of 2^128 − 1.
package xoroshiro128
