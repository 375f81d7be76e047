// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/statdist/go-statdist/mathx"
	"github.com/statdist/go-statdist/randx"
)

// A TDist is a Student's t-distribution with V > 0 degrees of
// freedom.
type TDist struct {
	V float64
}

func (t TDist) PDF(x float64) float64 {
	if t.V <= 0 {
		return nan
	}
	return math.Exp(t.LogPDF(x))
}

func (t TDist) LogPDF(x float64) float64 {
	if t.V <= 0 {
		return nan
	}
	return mathx.Lgamma((t.V+1)/2) - mathx.Lgamma(t.V/2) -
		0.5*math.Log(t.V*math.Pi) - (t.V+1)/2*math.Log1p(x*x/t.V)
}

func (t TDist) CDF(x float64) float64 {
	if t.V <= 0 || math.IsNaN(x) {
		return nan
	}
	switch {
	case x == 0:
		return 0.5
	case x > 0:
		return 1 - 0.5*mathx.BetaInc(t.V/(t.V+x*x), t.V/2, 0.5)
	}
	return 1 - t.CDF(-x)
}

// InvCDF computes the quantile through the beta quantile of the tail
// mass: with Z the beta quantile of 2p (shapes V/2 and 1/2), the
// lower-tail t quantile is −√(V(1−Z)/Z), and the upper tail follows
// by symmetry.
func (t TDist) InvCDF(p float64) float64 {
	if t.V <= 0 || math.IsNaN(p) || p < 0 || p > 1 {
		return nan
	}
	switch {
	case p == 0:
		return -inf
	case p == 1:
		return inf
	case p == 0.5:
		return 0
	case p > 0.5:
		return -t.InvCDF(1 - p)
	}
	z := BetaDist{t.V / 2, 0.5}.InvCDF(2 * p)
	return -math.Sqrt(t.V * (1 - z) / z)
}

// Rand generates one draw as a standard normal draw scaled by
// √(V/chi-squared(V)).
func (t TDist) Rand(src randx.Source) float64 {
	if t.V <= 0 {
		return nan
	}
	n := randx.Norm(src)
	c := ChiSquaredDist{t.V}.Rand(src)
	return n / math.Sqrt(c/t.V)
}

func (t TDist) Bounds() (float64, float64) {
	return -4, 4
}
