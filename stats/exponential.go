// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/statdist/go-statdist/randx"
)

// ExponentialDist is an exponential distribution with rate parameter
// Rate > 0 (mean 1/Rate). Its support is [0, inf).
type ExponentialDist struct {
	Rate float64
}

func (e ExponentialDist) PDF(x float64) float64 {
	if e.Rate <= 0 {
		return nan
	}
	if x < 0 {
		return 0
	}
	return e.Rate * math.Exp(-e.Rate*x)
}

func (e ExponentialDist) LogPDF(x float64) float64 {
	if e.Rate <= 0 {
		return nan
	}
	if x < 0 {
		return -inf
	}
	return math.Log(e.Rate) - e.Rate*x
}

func (e ExponentialDist) CDF(x float64) float64 {
	if e.Rate <= 0 {
		return nan
	}
	if x <= 0 {
		return 0
	}
	// -Expm1 keeps precision for small x, where 1-exp(-rx) would
	// cancel.
	return -math.Expm1(-e.Rate * x)
}

func (e ExponentialDist) InvCDF(p float64) float64 {
	if e.Rate <= 0 || math.IsNaN(p) || p < 0 || p > 1 {
		return nan
	}
	return -math.Log1p(-p) / e.Rate
}

func (e ExponentialDist) Rand(src randx.Source) float64 {
	if e.Rate <= 0 {
		return nan
	}
	return randx.Exp(src) / e.Rate
}

func (e ExponentialDist) Bounds() (float64, float64) {
	return 0, e.InvCDF(0.999)
}
