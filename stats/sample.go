// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"sort"
)

// Sample is a collection of observed values drawn from some unknown
// distribution.
type Sample struct {
	// Xs is the slice of sample values.
	Xs []float64

	// Sorted indicates that Xs is sorted in ascending order.
	Sorted bool
}

// Sort sorts the samples in place in s and returns s.
func (s *Sample) Sort() *Sample {
	if !s.Sorted && !sort.Float64sAreSorted(s.Xs) {
		sort.Float64s(s.Xs)
	}
	s.Sorted = true
	return s
}

// Copy returns a copy of the Sample backed by a fresh slice of Xs.
func (s Sample) Copy() *Sample {
	xs := make([]float64, len(s.Xs))
	copy(xs, s.Xs)
	return &Sample{xs, s.Sorted}
}

// Weight returns the number of samples in s.
func (s Sample) Weight() float64 {
	return float64(len(s.Xs))
}

// Sum returns the sum of the samples.
func (s Sample) Sum() float64 {
	sum := 0.0
	for _, x := range s.Xs {
		sum += x
	}
	return sum
}

// Mean returns the arithmetic mean of the samples, or NaN if the
// sample is empty.
func (s Sample) Mean() float64 {
	if len(s.Xs) == 0 {
		return nan
	}
	return s.Sum() / float64(len(s.Xs))
}

// GeoMean returns the geometric mean of the samples. It returns NaN
// if the sample is empty or any value is non-positive.
func (s Sample) GeoMean() float64 {
	if len(s.Xs) == 0 {
		return nan
	}
	lsum := 0.0
	for _, x := range s.Xs {
		if x <= 0 {
			return nan
		}
		lsum += math.Log(x)
	}
	return math.Exp(lsum / float64(len(s.Xs)))
}

// Variance returns the sample variance (with Bessel's correction), or
// NaN if there are fewer than two samples.
func (s Sample) Variance() float64 {
	if len(s.Xs) < 2 {
		return nan
	}
	mean := s.Mean()
	acc := 0.0
	for _, x := range s.Xs {
		d := x - mean
		acc += d * d
	}
	return acc / float64(len(s.Xs)-1)
}

// StdDev returns the sample standard deviation.
func (s Sample) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// Bounds returns the minimum and maximum sample values, or NaNs for
// an empty sample.
func (s Sample) Bounds() (min, max float64) {
	if len(s.Xs) == 0 {
		return nan, nan
	}
	if s.Sorted {
		return s.Xs[0], s.Xs[len(s.Xs)-1]
	}
	min, max = s.Xs[0], s.Xs[0]
	for _, x := range s.Xs[1:] {
		if x < min {
			min = x
		}
		if x > max {
			max = x
		}
	}
	return
}

// Quantile returns the sample value at quantile q by the R-9 method:
// linear interpolation at rank (n+1/3)q + 1/3, which is approximately
// median-unbiased regardless of the underlying distribution. q
// outside [0, 1] is clamped to the sample extremes. It returns NaN on
// an empty sample.
//
// Hyndman, R.J.; Fan, Y. (1996) "Sample Quantiles in Statistical
// Packages". The American Statistician 50(4): 361-365.
func (s Sample) Quantile(q float64) float64 {
	if len(s.Xs) == 0 {
		return nan
	}
	xs := s.Xs
	if !s.Sorted {
		xs = s.Copy().Sort().Xs
	}

	n := float64(len(xs))
	h := (n+1.0/3)*q + 1.0/3
	switch {
	case h <= 1:
		return xs[0]
	case h >= n:
		return xs[len(xs)-1]
	}
	fl := math.Floor(h)
	i := int(fl) - 1
	return xs[i] + (h-fl)*(xs[i+1]-xs[i])
}
