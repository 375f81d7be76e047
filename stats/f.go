// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/statdist/go-statdist/mathx"
	"github.com/statdist/go-statdist/randx"
)

// FDist is an F (Fisher–Snedecor) distribution with D1 > 0 and
// D2 > 0 degrees of freedom. Its support is [0, inf).
type FDist struct {
	D1, D2 float64
}

func (f FDist) valid() bool { return f.D1 > 0 && f.D2 > 0 }

func (f FDist) PDF(x float64) float64 {
	if !f.valid() {
		return nan
	}
	switch {
	case x < 0:
		return 0
	case x == 0:
		switch {
		case f.D1 > 2:
			return 0
		case f.D1 == 2:
			return 1
		}
		return inf
	}
	return math.Exp(f.LogPDF(x))
}

func (f FDist) LogPDF(x float64) float64 {
	if !f.valid() {
		return nan
	}
	if x <= 0 {
		if x == 0 && f.D1 <= 2 {
			return math.Log(f.PDF(0))
		}
		return -inf
	}
	h1, h2 := f.D1/2, f.D2/2
	return h1*math.Log(f.D1) + h2*math.Log(f.D2) + (h1-1)*math.Log(x) -
		(h1+h2)*math.Log(f.D1*x+f.D2) - mathx.Lbeta(h1, h2)
}

func (f FDist) CDF(x float64) float64 {
	if !f.valid() {
		return nan
	}
	if x <= 0 {
		return 0
	}
	return mathx.BetaInc(f.D1*x/(f.D1*x+f.D2), f.D1/2, f.D2/2)
}

// InvCDF computes the quantile through the beta quantile: if Z is the
// beta quantile of p with shapes D1/2 and D2/2, the F quantile is
// D2·Z / (D1·(1−Z)).
func (f FDist) InvCDF(p float64) float64 {
	if !f.valid() || math.IsNaN(p) || p < 0 || p > 1 {
		return nan
	}
	if p == 0 {
		return 0
	}
	if p == 1 {
		return inf
	}
	z := BetaDist{f.D1 / 2, f.D2 / 2}.InvCDF(p)
	return f.D2 * z / (f.D1 * (1 - z))
}

// Rand generates one draw as the ratio of two independent chi-squared
// draws scaled by their degrees of freedom.
func (f FDist) Rand(src randx.Source) float64 {
	if !f.valid() {
		return nan
	}
	x1 := ChiSquaredDist{f.D1}.Rand(src)
	x2 := ChiSquaredDist{f.D2}.Rand(src)
	return (x1 / f.D1) / (x2 / f.D2)
}

func (f FDist) Bounds() (float64, float64) {
	return 0, f.InvCDF(0.999)
}
