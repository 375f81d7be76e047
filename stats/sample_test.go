// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"testing"
)

func TestSampleQuantile(t *testing.T) {
	s := Sample{Xs: []float64{15, 20, 35, 40, 50}}
	testFunc(t, "Quantile", s.Quantile, map[float64]float64{
		-1:  15,
		0:   15,
		.05: 15,
		.30: 19.666666666666666,
		.40: 27,
		.95: 50,
		1:   50,
		2:   50,
	})
}

func TestSampleMoments(t *testing.T) {
	s := Sample{Xs: []float64{2, 4, 4, 4, 5, 5, 7, 9}}
	if got := s.Mean(); !aeq(5, got) {
		t.Errorf("Mean: want 5, got %v", got)
	}
	if got := s.Variance(); !aeq(32.0/7, got) {
		t.Errorf("Variance: want %v, got %v", 32.0/7, got)
	}
	if got := s.Sum(); !aeq(40, got) {
		t.Errorf("Sum: want 40, got %v", got)
	}
	if lo, hi := s.Bounds(); lo != 2 || hi != 9 {
		t.Errorf("Bounds: want (2, 9), got (%v, %v)", lo, hi)
	}

	empty := Sample{}
	if !math.IsNaN(empty.Mean()) || !math.IsNaN(empty.Quantile(0.5)) {
		t.Errorf("empty sample statistics must be NaN")
	}
}

func TestSampleGeoMean(t *testing.T) {
	s := Sample{Xs: []float64{1, 10, 100}}
	if got := s.GeoMean(); !aeq(10, got) {
		t.Errorf("GeoMean: want 10, got %v", got)
	}
	s = Sample{Xs: []float64{1, -1}}
	if got := s.GeoMean(); !math.IsNaN(got) {
		t.Errorf("GeoMean with negatives: want NaN, got %v", got)
	}
}

func TestSampleSort(t *testing.T) {
	s := Sample{Xs: []float64{3, 1, 2}}
	c := s.Copy().Sort()
	if c.Xs[0] != 1 || c.Xs[2] != 3 {
		t.Errorf("Sort: got %v", c.Xs)
	}
	if s.Xs[0] != 3 {
		t.Errorf("Copy did not protect the original: %v", s.Xs)
	}
}
