// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/statdist/go-statdist/randx"
)

// LaplaceDist is a Laplace (double exponential) distribution with
// location Mu and scale Scale > 0.
type LaplaceDist struct {
	Mu, Scale float64
}

func (l LaplaceDist) PDF(x float64) float64 {
	if l.Scale <= 0 {
		return nan
	}
	return math.Exp(-math.Abs(x-l.Mu)/l.Scale) / (2 * l.Scale)
}

func (l LaplaceDist) LogPDF(x float64) float64 {
	if l.Scale <= 0 {
		return nan
	}
	return -math.Abs(x-l.Mu)/l.Scale - math.Log(2*l.Scale)
}

func (l LaplaceDist) CDF(x float64) float64 {
	if l.Scale <= 0 {
		return nan
	}
	z := (x - l.Mu) / l.Scale
	if z < 0 {
		return 0.5 * math.Exp(z)
	}
	return 1 - 0.5*math.Exp(-z)
}

func (l LaplaceDist) InvCDF(p float64) float64 {
	if l.Scale <= 0 || math.IsNaN(p) || p < 0 || p > 1 {
		return nan
	}
	switch {
	case p == 0:
		return -inf
	case p == 1:
		return inf
	case p < 0.5:
		return l.Mu + l.Scale*math.Log(2*p)
	}
	return l.Mu - l.Scale*math.Log(2*(1-p))
}

func (l LaplaceDist) Rand(src randx.Source) float64 {
	if l.Scale <= 0 {
		return nan
	}
	// Inverse transform; the two half-lines land on the two log
	// branches of InvCDF.
	u := randx.Float64OO(src)
	if u < 0.5 {
		return l.Mu + l.Scale*math.Log(2*u)
	}
	return l.Mu - l.Scale*math.Log(2*(1-u))
}

func (l LaplaceDist) Bounds() (float64, float64) {
	return l.InvCDF(0.001), l.InvCDF(0.999)
}
