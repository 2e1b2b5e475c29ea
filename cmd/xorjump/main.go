// Copyright ©2024 The xoroshiro128jump Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command xorjump is a thin operator-facing wrapper around the
// xoroshiro128 package: it seeds a generator, then either jumps it
// forward k steps or reports the distance to a third state. It contains
// no linear algebra of its own; it exists only because every repo in
// the reference corpus carries some minimal operator entry point
// alongside its library code.
package main

import (
	"fmt"
	"math/big"
	"os"

	"github.com/rs/zerolog"

	"github.com/rngkit/xoroshiro128jump/u128"
	"github.com/rngkit/xoroshiro128jump/xoroshiro128"
)

func main() {
	xoroshiro128.Log = zerolog.New(os.Stderr).With().Timestamp().Logger()

	if len(os.Args) != 4 {
		fmt.Fprintln(os.Stderr, "usage: xorjump jump|distance <seed-hex> <k-decimal>")
		os.Exit(2)
	}

	cmd, seedArg, kArg := os.Args[1], os.Args[2], os.Args[3]

	seed, ok := new(big.Int).SetString(seedArg, 0)
	if !ok {
		fmt.Fprintf(os.Stderr, "bad seed %q\n", seedArg)
		os.Exit(2)
	}
	k, ok := new(big.Int).SetString(kArg, 10)
	if !ok {
		fmt.Fprintf(os.Stderr, "bad k %q\n", kArg)
		os.Exit(2)
	}

	s := xoroshiro128.NewState(seed.Uint64())

	switch cmd {
	case "jump":
		s.Jump(u128.FromBig(k))
		fmt.Printf("s0=%#016x s1=%#016x\n", s.S0, s.S1)
	case "distance":
		target := xoroshiro128.NewState(seed.Uint64())
		target.Jump(u128.FromBig(k))
		d := s.Distance(target, xoroshiro128.DefaultDlogOptions())
		fmt.Println(d.Big().String())
	default:
		fmt.Fprintf(os.Stderr, "unknown subcommand %q\n", cmd)
		os.Exit(2)
	}
}
