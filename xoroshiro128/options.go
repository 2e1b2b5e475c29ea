// Copyright ©2024 The xoroshiro128jump Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xoroshiro128

import "github.com/rngkit/xoroshiro128jump/dlog"

// DefaultDlogOptions returns the zero-value dlog.Options: BSGS workers
// default to runtime.GOMAXPROCS(0). Convenience for callers of
// State.Distance that don't need to tune worker count.
func DefaultDlogOptions() dlog.Options {
	return dlog.NewOptions()
}
