// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/statdist/go-statdist/randx"
)

// LogisticDist is a logistic distribution with location Mu and scale
// S > 0.
type LogisticDist struct {
	Mu, S float64
}

func (l LogisticDist) PDF(x float64) float64 {
	if l.S <= 0 {
		return nan
	}
	// sech² form: e^{-|z|}/(1+e^{-|z|})² is stable in both tails.
	z := math.Abs(x-l.Mu) / l.S
	e := math.Exp(-z)
	return e / (l.S * (1 + e) * (1 + e))
}

func (l LogisticDist) LogPDF(x float64) float64 {
	if l.S <= 0 {
		return nan
	}
	z := math.Abs(x-l.Mu) / l.S
	return -z - math.Log(l.S) - 2*math.Log1p(math.Exp(-z))
}

func (l LogisticDist) CDF(x float64) float64 {
	if l.S <= 0 {
		return nan
	}
	return 1 / (1 + math.Exp(-(x-l.Mu)/l.S))
}

func (l LogisticDist) InvCDF(p float64) float64 {
	if l.S <= 0 || math.IsNaN(p) || p < 0 || p > 1 {
		return nan
	}
	switch p {
	case 0:
		return -inf
	case 1:
		return inf
	}
	return l.Mu + l.S*math.Log(p/(1-p))
}

func (l LogisticDist) Rand(src randx.Source) float64 {
	if l.S <= 0 {
		return nan
	}
	u := randx.Float64OO(src)
	return l.Mu + l.S*math.Log(u/(1-u))
}

func (l LogisticDist) Bounds() (float64, float64) {
	return l.InvCDF(0.001), l.InvCDF(0.999)
}
