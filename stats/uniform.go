// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/statdist/go-statdist/randx"
)

// UniformDist is a continuous uniform distribution on [Min, Max),
// Min < Max.
type UniformDist struct {
	Min, Max float64
}

func (u UniformDist) valid() bool { return u.Min < u.Max }

func (u UniformDist) PDF(x float64) float64 {
	if !u.valid() {
		return nan
	}
	if x < u.Min || x >= u.Max {
		return 0
	}
	return 1 / (u.Max - u.Min)
}

func (u UniformDist) LogPDF(x float64) float64 {
	if !u.valid() {
		return nan
	}
	if x < u.Min || x >= u.Max {
		return -inf
	}
	return -math.Log(u.Max - u.Min)
}

func (u UniformDist) CDF(x float64) float64 {
	switch {
	case !u.valid():
		return nan
	case x <= u.Min:
		// Exactly 0 at and below the lower support bound.
		return 0
	case x >= u.Max:
		return 1
	}
	return (x - u.Min) / (u.Max - u.Min)
}

func (u UniformDist) InvCDF(p float64) float64 {
	if !u.valid() || math.IsNaN(p) || p < 0 || p > 1 {
		return nan
	}
	return u.Min + p*(u.Max-u.Min)
}

func (u UniformDist) Rand(src randx.Source) float64 {
	if !u.valid() {
		return nan
	}
	return u.Min + randx.Float64(src)*(u.Max-u.Min)
}

func (u UniformDist) Bounds() (float64, float64) {
	return u.Min, u.Max
}
