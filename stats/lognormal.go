// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/statdist/go-statdist/randx"
)

// LogNormalDist is a log-normal distribution: the distribution of
// e^Y where Y is normal with mean Mu and standard deviation
// Sigma > 0. Its support is (0, inf).
type LogNormalDist struct {
	Mu, Sigma float64
}

func (l LogNormalDist) norm() NormalDist { return NormalDist{l.Mu, l.Sigma} }

func (l LogNormalDist) PDF(x float64) float64 {
	if l.Sigma <= 0 {
		return nan
	}
	if x <= 0 {
		return 0
	}
	return l.norm().PDF(math.Log(x)) / x
}

func (l LogNormalDist) LogPDF(x float64) float64 {
	if l.Sigma <= 0 {
		return nan
	}
	if x <= 0 {
		return -inf
	}
	lx := math.Log(x)
	return l.norm().LogPDF(lx) - lx
}

func (l LogNormalDist) CDF(x float64) float64 {
	if l.Sigma <= 0 {
		return nan
	}
	if x <= 0 {
		return 0
	}
	return l.norm().CDF(math.Log(x))
}

// LogCDF returns the natural logarithm of the CDF at x, finite in
// the lower tail where CDF underflows to 0.
func (l LogNormalDist) LogCDF(x float64) float64 {
	if l.Sigma <= 0 {
		return nan
	}
	if x <= 0 {
		return -inf
	}
	return l.norm().LogCDF(math.Log(x))
}

func (l LogNormalDist) InvCDF(p float64) float64 {
	if l.Sigma <= 0 || math.IsNaN(p) || p < 0 || p > 1 {
		return nan
	}
	if p == 0 {
		return 0
	}
	return math.Exp(l.norm().InvCDF(p))
}

func (l LogNormalDist) Rand(src randx.Source) float64 {
	if l.Sigma <= 0 {
		return nan
	}
	return math.Exp(l.norm().Rand(src))
}

func (l LogNormalDist) Bounds() (float64, float64) {
	return l.InvCDF(0.001), l.InvCDF(0.999)
}
