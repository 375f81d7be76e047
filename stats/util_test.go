// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"testing"
)

func aeq(expect, got float64) bool {
	if expect == got {
		return true
	}
	return math.Abs(expect-got) < 0.00001
}

// testFunc checks f against a table of expected values.
func testFunc(t *testing.T, name string, f func(float64) float64, vals map[float64]float64) {
	t.Helper()
	for x, want := range vals {
		got := f(x)
		if math.IsNaN(want) && math.IsNaN(got) {
			continue
		}
		if !aeq(want, got) {
			t.Errorf("%s(%v): want %v, got %v", name, x, want, got)
		}
	}
}

// testDiscreteCDF checks that d's CDF is the running sum of its PMF
// across the support.
func testDiscreteCDF(t *testing.T, name string, d DiscreteDist) {
	t.Helper()
	lo, hi := d.Bounds()
	sum := 0.0
	for k := lo; k <= hi; k += d.Step() {
		sum += d.PMF(k)
		if got := d.CDF(k); math.Abs(sum-got) > 1e-10 {
			t.Errorf("%s(%v): want %v, got %v", name, k, sum, got)
		}
		// Between support points the CDF is flat.
		if got := d.CDF(k + d.Step()/2); math.Abs(sum-got) > 1e-10 {
			t.Errorf("%s(%v): want %v, got %v", name, k+d.Step()/2, sum, got)
		}
	}
}

// testInvCDFRoundTrip checks InvCDF(CDF(x)) ≈ x at points strictly
// inside the support.
func testInvCDFRoundTrip(t *testing.T, name string, d Dist, xs []float64) {
	t.Helper()
	for _, x := range xs {
		p := d.CDF(x)
		got := d.InvCDF(p)
		if math.Abs(x-got) > 1e-6*math.Max(1, math.Abs(x)) {
			t.Errorf("%s.InvCDF(%s.CDF(%v)) = %v", name, name, x, got)
		}
	}
}
