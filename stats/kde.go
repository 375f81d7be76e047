// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/statdist/go-statdist/randx"
)

// KDE represents options for constructing a kernel density estimate:
// a smooth, non-parametric estimate ƒ̂(x) of the unknown distribution
// a sample was drawn from. The resulting estimate satisfies the full
// Dist contract, so it can be evaluated, inverted, and sampled like
// any parametric distribution in this package.
//
// The default (zero) value of KDE is a reasonable configuration.
type KDE struct {
	// Bandwidth is the smoothing bandwidth. If zero, it is
	// estimated from the sample with BandwidthScott.
	Bandwidth float64

	// [BoundaryMin, BoundaryMax) specify a bounded support for
	// the estimate; density falling outside is reflected back in.
	// If both are 0 (their default values), the support is
	// unbounded.
	//
	// To specify a half-bounded support, set Min to math.Inf(-1)
	// or Max to math.Inf(1).
	BoundaryMin float64
	BoundaryMax float64
}

// BandwidthSilverman is a bandwidth estimator implementing
// Silverman's Rule of Thumb. It's fast, but not very robust to
// outliers as it assumes data is approximately normal.
//
// Silverman, B. W. (1986) Density Estimation.
func BandwidthSilverman(data interface {
	StdDev() float64
	Weight() float64
}) float64 {
	return 1.06 * data.StdDev() * math.Pow(data.Weight(), -1.0/5)
}

// BandwidthScott is a bandwidth estimator implementing Scott's Rule.
// This is generally robust to outliers: it chooses the minimum
// between the sample's standard deviation and a robust estimator of
// a Gaussian distribution's standard deviation.
//
// Scott, D. W. (1992) Multivariate Density Estimation: Theory,
// Practice, and Visualization.
func BandwidthScott(data interface {
	StdDev() float64
	Weight() float64
	Quantile(float64) float64
}) float64 {
	iqr := data.Quantile(0.75) - data.Quantile(0.25)
	hScale := 1.06 * math.Pow(data.Weight(), -1.0/5)
	stdDev := data.StdDev()
	if stdDev < iqr/1.349 {
		// Use Silverman's Rule of Thumb
		return hScale * stdDev
	}
	// Use IQR/1.349 as a robust estimator of the standard
	// deviation of a Gaussian distribution.
	return hScale * (iqr / 1.349)
}

// From returns the kernel density estimate for sample s using a
// Gaussian kernel. The sample must be non-empty.
func (k KDE) From(s Sample) Dist {
	if len(s.Xs) == 0 {
		panic("cannot construct a KDE from an empty sample")
	}

	h := k.Bandwidth
	if h == 0 {
		h = BandwidthScott(s)
	}
	if !(h > 0) {
		// Degenerate sample (zero spread). Fall back to a
		// vanishing but positive bandwidth so the estimate is
		// still a distribution.
		h = 1e-9 * math.Max(1, math.Abs(s.Xs[0]))
	}

	min, max := k.BoundaryMin, k.BoundaryMax
	if min == 0 && max == 0 {
		min, max = math.Inf(-1), math.Inf(1)
	}

	return &kdeDist{NormalDist{0, h}, s.Xs, min, max}
}

type kdeDist struct {
	kernel   NormalDist
	xs       []float64
	min, max float64 // support bounds
}

func (kde *kdeDist) bounded() bool {
	return !math.IsInf(kde.min, -1) || !math.IsInf(kde.max, 1)
}

// rawPDF is the unreflected estimate: the mean of kernels centered at
// each sample point.
func (kde *kdeDist) rawPDF(x float64) float64 {
	y := 0.0
	for _, xi := range kde.xs {
		y += kde.kernel.PDF(x - xi)
	}
	return y / float64(len(kde.xs))
}

func (kde *kdeDist) PDF(x float64) float64 {
	if x < kde.min || x > kde.max {
		return 0
	}
	y := kde.rawPDF(x)
	// Reflect density that fell outside the support back in.
	if !math.IsInf(kde.min, -1) {
		y += kde.rawPDF(2*kde.min - x)
	}
	if !math.IsInf(kde.max, 1) {
		y += kde.rawPDF(2*kde.max - x)
	}
	return y
}

func (kde *kdeDist) LogPDF(x float64) float64 {
	// The estimate is a finite mixture; its density never
	// underflows in regions anyone evaluates it, so log of the
	// linear value suffices.
	return math.Log(kde.PDF(x))
}

func (kde *kdeDist) CDF(x float64) float64 {
	switch {
	case x <= kde.min:
		return 0
	case x >= kde.max:
		return 1
	}
	rawCDF := func(x float64) float64 {
		y := 0.0
		for _, xi := range kde.xs {
			y += kde.kernel.CDF(x - xi)
		}
		return y / float64(len(kde.xs))
	}
	y := rawCDF(x)
	if !math.IsInf(kde.min, -1) {
		y -= rawCDF(2*kde.min - x)
	}
	if !math.IsInf(kde.max, 1) {
		y += 1 - rawCDF(2*kde.max-x)
	}
	return y
}

func (kde *kdeDist) InvCDF(p float64) float64 {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return nan
	}
	lo, hi := kde.Bounds()
	switch p {
	case 0:
		if kde.bounded() {
			return kde.min
		}
		return -inf
	case 1:
		if kde.bounded() {
			return kde.max
		}
		return inf
	}
	return invertCDF(kde.CDF, kde.PDF, p, lo, hi, (lo+hi)/2)
}

// Rand generates one draw by the smoothed bootstrap: a uniformly
// chosen sample point plus kernel noise, reflected into the support.
func (kde *kdeDist) Rand(src randx.Source) float64 {
	i := int(randx.Float64(src) * float64(len(kde.xs)))
	if i == len(kde.xs) {
		i--
	}
	x := kde.xs[i] + kde.kernel.Rand(src)
	for {
		switch {
		case x < kde.min:
			x = 2*kde.min - x
		case x > kde.max:
			x = 2*kde.max - x
		default:
			return x
		}
	}
}

func (kde *kdeDist) Bounds() (float64, float64) {
	// TODO: This method can end up returning bounds that are
	// much larger than necessary if the bandwidth is small
	// relative to the spread of the sample.
	lo, hi := Sample{Xs: kde.xs}.Bounds()
	lo1, hi1 := kde.kernel.Bounds()
	lo, hi = lo+lo1, hi+hi1
	if lo < kde.min {
		lo = kde.min
	}
	if hi > kde.max {
		hi = kde.max
	}
	return lo, hi
}
