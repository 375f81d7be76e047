// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stats evaluates univariate statistical distributions: for
// each distribution in its catalog it computes the density (linear or
// log scale), the cumulative probability, the quantile, and random
// variates.
//
// Each distribution is a small value struct holding only its
// parameters, so every call is self-contained: the same arguments
// always produce the same result, and there is no hidden state to
// share or invalidate. The only mutable entity anywhere in the
// package is a caller-owned randx.Source passed to Rand.
//
// Arguments outside a function's mathematical domain produce NaN (or
// the exact boundary value at support edges), never a panic, so batch
// evaluation over arrays is not halted by one bad element.
package stats // import "github.com/statdist/go-statdist/stats"

import "math"

var inf = math.Inf(1)
var nan = math.NaN()
