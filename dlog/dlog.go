// Copyright ©2024 The xoroshiro128jump Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dlog solves the discrete logarithm z^k ≡ h (mod χ) in the
// multiplicative group of GF(2)[z]/χ, of known order 2^128 − 1 with a
// fixed prime factorization, by Pohlig–Hellman reduction to each prime
// subgroup combined with a parallel baby-step/giant-step search and
// Chinese Remainder Theorem recomposition.
package dlog

import (
	"context"
	"math/big"
	"runtime"

	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"

	"github.com/rngkit/xoroshiro128jump/poly128"
	"github.com/rngkit/xoroshiro128jump/u128"
)

// Error is the error type panicked by this package.
type Error string

func (e Error) Error() string { return string(e) }

// ErrNotFound is panicked by BabyStepGiantStep when it exhausts its
// search range without a match — this indicates the
// caller passed inconsistent inputs (h not in ⟨g⟩, or the wrong χ), not
// a condition this package can recover from.
const ErrNotFound = Error("dlog: baby-step/giant-step exhausted its range without a match")

// Options configures the parallel search. The zero value is valid and
// uses runtime.GOMAXPROCS(0) workers.
type Options struct {
	// Workers caps the number of goroutines used to build the
	// baby-step table and to search giant steps. Zero means
	// runtime.GOMAXPROCS(0).
	Workers int
}

func (o Options) workers() int {
	if o.Workers > 0 {
		return o.Workers
	}
	return runtime.GOMAXPROCS(0)
}

// Option is a functional option for NewOptions, following the same
// pattern as gnark's backend.ProverOption.
type Option func(*Options)

// WithWorkers caps the number of goroutines BabyStepGiantStep and
// PohligHellman use. n <= 0 means "use runtime.GOMAXPROCS(0)".
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// NewOptions builds an Options from functional options, for callers that
// prefer that style over constructing the struct directly.
func NewOptions(opts ...Option) Options {
	var o Options
	for _, apply := range opts {
		apply(&o)
	}
	return o
}

// babyStep pairs a reduced polynomial's low-128-bit key with the
// exponent that produced it.
type babyStep struct {
	key  u128.Uint128
	step uint64
}

func keyCmp(a, b babyStep) int { return a.key.Cmp(b.key) }

// BabyStepGiantStep solves gamma^x ≡ h (mod char) for x in [0, order),
// given the precomputed inverse step backwards = gamma^-1 mod char.
// step size s = ceil(sqrt(order)).
//
// The baby-step table is a sorted slice of (key, step) pairs rather than
// a hash set, halving memory for the largest prime subgroup — built by
// partitioning [0, s) into contiguous
// per-worker chunks (each worker seeds from gamma^chunkStart and walks
// forward), then merged and sorted once. The giant-step phase is a
// find-any race over the same partitioning: the first worker to find a
// match cancels the rest via ctx, and because every match corresponds to
// the same unique x, the race is deterministic in its result even though
// not in its completion order.
func BabyStepGiantStep(gamma, h, backwards, char poly128.Poly, order uint64, opts Options) uint64 {
	stepSize := ceilSqrt(order)
	workers := opts.workers()
	if uint64(workers) > stepSize {
		workers = int(stepSize)
	}
	if workers < 1 {
		workers = 1
	}

	table := buildBabyStepTable(gamma, char, stepSize, workers)

	backwardJump := backwards.ModPowUint128(u128.FromUint64(stepSize), char)

	if workers == 1 {
		return sequentialGiantStep(h, backwardJump, char, table, stepSize)
	}
	return parallelGiantStep(h, backwardJump, char, table, stepSize, workers)
}

func ceilSqrt(n uint64) uint64 {
	if n == 0 {
		return 0
	}
	r := new(big.Int).Sqrt(new(big.Int).SetUint64(n))
	s := r.Uint64()
	if s*s < n {
		s++
	}
	return s
}

func buildBabyStepTable(gamma, char poly128.Poly, stepSize uint64, workers int) []babyStep {
	chunk := (stepSize + uint64(workers) - 1) / uint64(workers)
	results := make([][]babyStep, workers)

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		w := w
		start := uint64(w) * chunk
		if start >= stepSize {
			continue
		}
		end := start + chunk
		if end > stepSize {
			end = stepSize
		}
		g.Go(func() error {
			local := make([]babyStep, 0, end-start)
			base := gamma.ModPowUint128(u128.FromUint64(start), char)
			for i := start; i < end; i++ {
				local = append(local, babyStep{key: base.Low, step: i})
				base = base.Mul(gamma).Modulo(char)
			}
			results[w] = local
			return nil
		})
	}
	_ = g.Wait() // workers never return an error

	table := make([]babyStep, 0, stepSize)
	for _, r := range results {
		table = append(table, r...)
	}
	slices.SortFunc(table, keyCmp)
	return table
}

func lookup(table []babyStep, key u128.Uint128) (uint64, bool) {
	i, ok := slices.BinarySearchFunc(table, babyStep{key: key}, keyCmp)
	if !ok {
		return 0, false
	}
	return table[i].step, true
}

func sequentialGiantStep(h, backwardJump, char poly128.Poly, table []babyStep, stepSize uint64) uint64 {
	cur := h
	for i := uint64(0); i < stepSize; i++ {
		if j, ok := lookup(table, cur.Low); ok {
			return i*stepSize + j
		}
		cur = cur.Mul(backwardJump).Modulo(char)
	}
	panic(ErrNotFound)
}

func parallelGiantStep(h, backwardJump, char poly128.Poly, table []babyStep, stepSize uint64, workers int) uint64 {
	chunk := (stepSize + uint64(workers) - 1) / uint64(workers)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	found := make(chan uint64, 1)
	for w := 0; w < workers; w++ {
		start := uint64(w) * chunk
		if start >= stepSize {
			continue
		}
		end := start + chunk
		if end > stepSize {
			end = stepSize
		}
		g.Go(func() error {
			base := h.Mul(backwardJump.ModPowUint128(u128.FromUint64(start), char)).Modulo(char)
			for i := start; i < end; i++ {
				select {
				case <-ctx.Done():
					return nil
				default:
				}
				if j, ok := lookup(table, base.Low); ok {
					select {
					case found <- i*stepSize + j:
					default:
					}
					cancel()
					return nil
				}
				base = base.Mul(backwardJump).Modulo(char)
			}
			return nil
		})
	}
	_ = g.Wait()

	select {
	case x := <-found:
		return x
	default:
		panic(ErrNotFound)
	}
}
