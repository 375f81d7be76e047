// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/statdist/go-statdist/randx"
)

// WeibullDist is a Weibull distribution with shape K > 0 and scale
// Lambda > 0. Its support is [0, inf).
type WeibullDist struct {
	K, Lambda float64
}

func (w WeibullDist) valid() bool { return w.K > 0 && w.Lambda > 0 }

func (w WeibullDist) PDF(x float64) float64 {
	if !w.valid() {
		return nan
	}
	switch {
	case x < 0:
		return 0
	case x == 0:
		switch {
		case w.K > 1:
			return 0
		case w.K == 1:
			return 1 / w.Lambda
		}
		return inf
	}
	z := x / w.Lambda
	return w.K / w.Lambda * math.Pow(z, w.K-1) * math.Exp(-math.Pow(z, w.K))
}

func (w WeibullDist) LogPDF(x float64) float64 {
	if !w.valid() {
		return nan
	}
	if x <= 0 {
		if x == 0 && w.K <= 1 {
			return math.Log(w.PDF(0))
		}
		return -inf
	}
	z := x / w.Lambda
	return math.Log(w.K/w.Lambda) + (w.K-1)*math.Log(z) - math.Pow(z, w.K)
}

func (w WeibullDist) CDF(x float64) float64 {
	if !w.valid() {
		return nan
	}
	if x <= 0 {
		return 0
	}
	return -math.Expm1(-math.Pow(x/w.Lambda, w.K))
}

func (w WeibullDist) InvCDF(p float64) float64 {
	if !w.valid() || math.IsNaN(p) || p < 0 || p > 1 {
		return nan
	}
	if p == 1 {
		return inf
	}
	return w.Lambda * math.Pow(-math.Log1p(-p), 1/w.K)
}

func (w WeibullDist) Rand(src randx.Source) float64 {
	if !w.valid() {
		return nan
	}
	return w.Lambda * math.Pow(randx.Exp(src), 1/w.K)
}

func (w WeibullDist) Bounds() (float64, float64) {
	return 0, w.InvCDF(0.999)
}
