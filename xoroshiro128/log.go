// Copyright ©2024 The xoroshiro128jump Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xoroshiro128

import "github.com/rs/zerolog"

// Log is this package's structured logger. It defaults to a no-op
// logger so importing this package is silent by default; set it to a
// real zerolog.Logger to observe the one-time cost of building M, χ, and
// the backwards polynomial, and per-query discrete-log progress.
var Log = zerolog.Nop()
