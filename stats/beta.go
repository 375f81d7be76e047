// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/statdist/go-statdist/mathx"
	"github.com/statdist/go-statdist/randx"
)

// BetaDist is a beta distribution with shape parameters Alpha > 0 and
// Beta > 0. Its support is [0, 1].
type BetaDist struct {
	Alpha, Beta float64
}

func (b BetaDist) valid() bool { return b.Alpha > 0 && b.Beta > 0 }

func (b BetaDist) PDF(x float64) float64 {
	if !b.valid() {
		return nan
	}
	switch {
	case x < 0 || x > 1:
		return 0
	case x == 0:
		switch {
		case b.Alpha > 1:
			return 0
		case b.Alpha == 1:
			return b.Beta
		}
		return inf
	case x == 1:
		switch {
		case b.Beta > 1:
			return 0
		case b.Beta == 1:
			return b.Alpha
		}
		return inf
	}
	return math.Exp(b.LogPDF(x))
}

func (b BetaDist) LogPDF(x float64) float64 {
	if !b.valid() {
		return nan
	}
	if x < 0 || x > 1 {
		return -inf
	}
	if x == 0 || x == 1 {
		return math.Log(b.PDF(x))
	}
	return (b.Alpha-1)*math.Log(x) + (b.Beta-1)*math.Log1p(-x) -
		mathx.Lbeta(b.Alpha, b.Beta)
}

func (b BetaDist) CDF(x float64) float64 {
	if !b.valid() {
		return nan
	}
	switch {
	case x <= 0:
		return 0
	case x >= 1:
		return 1
	}
	return mathx.BetaInc(x, b.Alpha, b.Beta)
}

// InvCDF inverts the incomplete-beta CDF by safeguarded Newton
// iteration bracketed on [0, 1]. The mean is the starting point; the
// iteration is insensitive to the choice because bisection takes over
// whenever Newton wanders.
func (b BetaDist) InvCDF(p float64) float64 {
	if !b.valid() || math.IsNaN(p) || p < 0 || p > 1 {
		return nan
	}
	if p == 0 {
		return 0
	}
	if p == 1 {
		return 1
	}
	return invertCDF(b.CDF, b.PDF, p, 0, 1, b.Alpha/(b.Alpha+b.Beta))
}

// Rand generates one draw as X/(X+Y) for independent gamma draws X, Y
// with shapes Alpha and Beta.
func (b BetaDist) Rand(src randx.Source) float64 {
	if !b.valid() {
		return nan
	}
	x := GammaDist{b.Alpha, 1}.Rand(src)
	y := GammaDist{b.Beta, 1}.Rand(src)
	return x / (x + y)
}

func (b BetaDist) Bounds() (float64, float64) {
	return 0, 1
}
