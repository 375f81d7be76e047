// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/statdist/go-statdist/mathx"
	"github.com/statdist/go-statdist/randx"
)

// InverseGammaDist is an inverse-gamma distribution with shape
// parameter Shape > 0 and scale parameter Scale > 0: the distribution
// of 1/Y when Y is gamma with shape Shape and rate Scale. Its support
// is (0, inf).
type InverseGammaDist struct {
	Shape, Scale float64
}

func (ig InverseGammaDist) valid() bool { return ig.Shape > 0 && ig.Scale > 0 }

func (ig InverseGammaDist) PDF(x float64) float64 {
	if !ig.valid() {
		return nan
	}
	if x <= 0 {
		return 0
	}
	return math.Exp(ig.LogPDF(x))
}

func (ig InverseGammaDist) LogPDF(x float64) float64 {
	if !ig.valid() {
		return nan
	}
	if x <= 0 {
		return -inf
	}
	return ig.Shape*math.Log(ig.Scale) - mathx.Lgamma(ig.Shape) -
		(ig.Shape+1)*math.Log(x) - ig.Scale/x
}

func (ig InverseGammaDist) CDF(x float64) float64 {
	if !ig.valid() {
		return nan
	}
	if x <= 0 {
		return 0
	}
	return mathx.GammaIncComp(ig.Shape, ig.Scale/x)
}

func (ig InverseGammaDist) InvCDF(p float64) float64 {
	if !ig.valid() || math.IsNaN(p) || p < 0 || p > 1 {
		return nan
	}
	if p == 0 {
		return 0
	}
	if p == 1 {
		return inf
	}
	// X = Scale/Y with Y gamma(Shape, 1); the upper quantile of Y
	// is the lower quantile of X.
	return ig.Scale / GammaDist{ig.Shape, 1}.InvCDF(1-p)
}

func (ig InverseGammaDist) Rand(src randx.Source) float64 {
	if !ig.valid() {
		return nan
	}
	return ig.Scale / GammaDist{ig.Shape, 1}.Rand(src)
}

func (ig InverseGammaDist) Bounds() (float64, float64) {
	return 0, ig.InvCDF(0.999)
}
