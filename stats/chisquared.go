// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"github.com/statdist/go-statdist/randx"
)

// ChiSquaredDist is a chi-squared distribution with K > 0 degrees of
// freedom. It is the gamma distribution with shape K/2 and scale 2,
// and all of its operations are delegated on that basis.
type ChiSquaredDist struct {
	K float64
}

func (c ChiSquaredDist) gamma() GammaDist { return GammaDist{c.K / 2, 2} }

func (c ChiSquaredDist) PDF(x float64) float64 {
	if c.K <= 0 {
		return nan
	}
	return c.gamma().PDF(x)
}

func (c ChiSquaredDist) LogPDF(x float64) float64 {
	if c.K <= 0 {
		return nan
	}
	return c.gamma().LogPDF(x)
}

func (c ChiSquaredDist) CDF(x float64) float64 {
	if c.K <= 0 {
		return nan
	}
	return c.gamma().CDF(x)
}

func (c ChiSquaredDist) InvCDF(p float64) float64 {
	if c.K <= 0 {
		return nan
	}
	return c.gamma().InvCDF(p)
}

func (c ChiSquaredDist) Rand(src randx.Source) float64 {
	if c.K <= 0 {
		return nan
	}
	return c.gamma().Rand(src)
}

func (c ChiSquaredDist) Bounds() (float64, float64) {
	return 0, c.gamma().InvCDF(0.999)
}
