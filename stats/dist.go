// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "github.com/statdist/go-statdist/randx"

// A Dist is a continuous statistical distribution.
type Dist interface {
	// PDF returns the value of the probability density function
	// of this distribution at x.
	PDF(x float64) float64

	// LogPDF returns the natural logarithm of the probability
	// density function at x. It is computed in log space
	// throughout, so it remains finite in tail regions where PDF
	// underflows to 0.
	LogPDF(x float64) float64

	// CDF returns the value of the cumulative distribution
	// function for this distribution at x: the probability that a
	// draw is <= x.
	CDF(x float64) float64

	// InvCDF returns the inverse of the CDF for p. That is,
	// InvCDF(CDF(x)) = x. For p outside [0, 1] it returns NaN;
	// p=0 and p=1 map to the infimum and supremum of the support
	// (possibly ±Inf).
	InvCDF(p float64) float64

	// Rand returns one random variate of this distribution,
	// advancing src. It never resets or copies src, so repeated
	// calls sharing one source continue one sequence.
	Rand(src randx.Source) float64

	// Bounds returns reasonable bounds for this distribution's
	// PDF and CDF. The total weight outside of these bounds
	// should be approximately 0.
	Bounds() (float64, float64)
}

// A DiscreteDist is a discrete statistical distribution taking values
// at integer support points.
type DiscreteDist interface {
	// PMF returns the probability mass at k. It is 0 off the
	// integer support.
	PMF(k float64) float64

	// LogPMF returns the natural logarithm of the probability
	// mass at k, -Inf off the support. It is computed by summing
	// log-gamma terms, not by taking the log of a product, so it
	// stays finite where PMF underflows.
	LogPMF(k float64) float64

	// CDF returns the probability that a draw is <= k.
	CDF(k float64) float64

	// InvCDF returns the smallest support point k with
	// CDF(k) >= p, NaN for p outside [0, 1].
	InvCDF(p float64) float64

	// Rand returns one random variate, advancing src.
	Rand(src randx.Source) float64

	// Bounds returns bounds covering approximately all of the
	// distribution's weight.
	Bounds() (float64, float64)

	// Step returns the spacing of the distribution's support
	// points.
	Step() float64
}

// Float is the constraint satisfied by the scalar element types the
// vectorized helpers accept. Intermediate computation always runs in
// float64, the widest precision here, regardless of F.
type Float interface {
	~float32 | ~float64
}

// Each applies a scalar distribution function element-wise, returning
// a like-shaped slice. The shape and order of xs are preserved, and
// elements are independent: one out-of-domain element yields one NaN,
// not a failed batch.
func Each[F Float](f func(float64) float64, xs []F) []F {
	res := make([]F, len(xs))
	for i, x := range xs {
		res[i] = F(f(float64(x)))
	}
	return res
}

// RandEach returns n variates of d, advancing src once per element in
// index order. The order is part of the contract: a fixed seed yields
// the same slice every time.
func RandEach(d interface {
	Rand(randx.Source) float64
}, n int, src randx.Source) []float64 {
	res := make([]float64, n)
	for i := range res {
		res[i] = d.Rand(src)
	}
	return res
}
