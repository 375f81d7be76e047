// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mathx provides special functions underlying statistical
// distributions: log-gamma, regularized incomplete gamma and beta
// functions, binomial coefficients, and tail-stable error function
// variants.
//
// All functions are pure float64 mappings with bounded iteration. On
// arguments outside a function's mathematical domain they return NaN
// rather than panicking, so array-wide evaluation is never halted by
// one bad element.
package mathx // import "github.com/statdist/go-statdist/mathx"

import "math"

// Iteration cap and convergence tolerances for the series and
// continued-fraction evaluators. The cap bounds worst-case cost; if a
// fraction has not converged by then, the best available value is
// returned as a documented precision trade-off.
const (
	cfMaxIter = 200
	cfEps     = 1e-15
	cfTiny    = 1e-300
)

var (
	inf = math.Inf(1)
	nan = math.NaN()
)
