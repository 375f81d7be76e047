// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/statdist/go-statdist/randx"
)

// CauchyDist is a Cauchy distribution with location Mu and scale
// Sigma > 0. It has no mean or variance; its quantile function is
// closed-form through the tangent.
type CauchyDist struct {
	Mu, Sigma float64
}

func (c CauchyDist) PDF(x float64) float64 {
	if c.Sigma <= 0 {
		return nan
	}
	z := (x - c.Mu) / c.Sigma
	return 1 / (math.Pi * c.Sigma * (1 + z*z))
}

func (c CauchyDist) LogPDF(x float64) float64 {
	if c.Sigma <= 0 {
		return nan
	}
	z := (x - c.Mu) / c.Sigma
	return -math.Log(math.Pi*c.Sigma) - math.Log1p(z*z)
}

func (c CauchyDist) CDF(x float64) float64 {
	if c.Sigma <= 0 {
		return nan
	}
	return 0.5 + math.Atan((x-c.Mu)/c.Sigma)/math.Pi
}

func (c CauchyDist) InvCDF(p float64) float64 {
	if c.Sigma <= 0 || math.IsNaN(p) || p < 0 || p > 1 {
		return nan
	}
	switch p {
	case 0:
		return -inf
	case 1:
		return inf
	}
	return c.Mu + c.Sigma*math.Tan(math.Pi*(p-0.5))
}

func (c CauchyDist) Rand(src randx.Source) float64 {
	if c.Sigma <= 0 {
		return nan
	}
	return c.Mu + c.Sigma*math.Tan(math.Pi*(randx.Float64OO(src)-0.5))
}

func (c CauchyDist) Bounds() (float64, float64) {
	// The tails are heavy; these bounds cover most but
	// deliberately not "approximately all" of the mass, which
	// does not exist in any useful sense for plotting otherwise.
	return c.InvCDF(0.05), c.InvCDF(0.95)
}
