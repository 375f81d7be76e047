// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/statdist/go-statdist/randx"
)

// BernoulliDist is a Bernoulli distribution: a single trial that
// succeeds (1) with probability P and fails (0) otherwise,
// 0 <= P <= 1.
type BernoulliDist struct {
	P float64
}

func (b BernoulliDist) valid() bool { return b.P >= 0 && b.P <= 1 }

func (b BernoulliDist) PMF(k float64) float64 {
	if !b.valid() {
		return nan
	}
	switch k {
	case 0:
		return 1 - b.P
	case 1:
		return b.P
	}
	return 0
}

func (b BernoulliDist) LogPMF(k float64) float64 {
	if !b.valid() {
		return nan
	}
	switch k {
	case 0:
		return math.Log1p(-b.P)
	case 1:
		return math.Log(b.P)
	}
	return -inf
}

func (b BernoulliDist) CDF(k float64) float64 {
	switch {
	case !b.valid():
		return nan
	case k < 0:
		return 0
	case k < 1:
		return 1 - b.P
	}
	return 1
}

func (b BernoulliDist) InvCDF(p float64) float64 {
	if !b.valid() || math.IsNaN(p) || p < 0 || p > 1 {
		return nan
	}
	if p <= 1-b.P {
		return 0
	}
	return 1
}

func (b BernoulliDist) Rand(src randx.Source) float64 {
	if !b.valid() {
		return nan
	}
	if randx.Float64(src) < b.P {
		return 1
	}
	return 0
}

func (b BernoulliDist) Bounds() (float64, float64) {
	return 0, 1
}

func (b BernoulliDist) Step() float64 {
	return 1
}
