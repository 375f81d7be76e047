// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "math"

// Inversion tolerances for distributions without a closed-form
// quantile. Iteration stops at a residual probability below invTol or
// after invMaxIter steps, whichever comes first, so inversion is a
// bounded computation even for pathological parameters; hitting the
// cap returns the best approximation found rather than failing.
const (
	invTol     = 1e-13
	invMaxIter = 100
)

// invertCDF computes the quantile of p by safeguarded Newton
// iteration on cdf, using pdf as the derivative and falling back to
// bisection whenever a Newton step leaves the current bracket or the
// derivative is unusable. [lo, hi] must bracket the quantile; hi may
// be +Inf, in which case the bracket is first grown by doubling from
// the initial guess. guess is a starting point strictly inside the
// support.
func invertCDF(cdf, pdf func(float64) float64, p, lo, hi, guess float64) float64 {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return nan
	}

	// Grow an infinite upper bracket. cdf is monotone, so
	// doubling terminates as soon as the quantile is covered.
	if math.IsInf(hi, 1) {
		hi = math.Max(guess, math.Max(lo, 1)) * 2
		for i := 0; cdf(hi) < p && i < 1024; i++ {
			hi *= 2
		}
	}

	x := guess
	if !(x > lo && x < hi) {
		x = lo + (hi-lo)/2
	}

	for i := 0; i < invMaxIter; i++ {
		err := cdf(x) - p
		if math.Abs(err) <= invTol {
			break
		}
		// Maintain the bracket around the root.
		if err > 0 {
			hi = x
		} else {
			lo = x
		}

		d := pdf(x)
		x1 := x - err/d
		if !(x1 > lo && x1 < hi) || d <= 0 || math.IsNaN(x1) {
			// Newton left the bracket; bisect instead.
			x1 = lo + (hi-lo)/2
		}
		if x1 == x {
			break
		}
		x = x1
	}
	return x
}
