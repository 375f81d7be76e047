// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"testing"

	"github.com/statdist/go-statdist/randx"
)

func TestPoissonDist(t *testing.T) {
	d := PoissonDist{Lambda: 4}
	testFunc(t, "PoissonDist{4}.PMF", d.PMF,
		map[float64]float64{
			-1:  0,
			0:   math.Exp(-4),
			0.5: 0,
			1:   4 * math.Exp(-4),
			2:   8 * math.Exp(-4),
			3:   32.0 / 3 * math.Exp(-4),
		})
	testDiscreteCDF(t, "PoissonDist{4}.CDF", d)

	// LogPMF stays finite where PMF underflows.
	if got := d.LogPMF(500); math.IsInf(got, -1) || d.PMF(500) != 0 {
		t.Errorf("LogPMF(500) = %v with PMF %v; want finite log of an underflowed mass",
			got, d.PMF(500))
	}
}

func TestPoissonInvCDF(t *testing.T) {
	d := PoissonDist{Lambda: 12.5}
	for _, p := range []float64{0, 0.001, 0.2, 0.5, 0.8, 0.999} {
		k := d.InvCDF(p)
		if d.CDF(k) < p {
			t.Errorf("CDF(InvCDF(%v)) = %v < %v", p, d.CDF(k), p)
		}
		if k > 0 && d.CDF(k-1) >= p {
			t.Errorf("InvCDF(%v) = %v is not minimal", p, k)
		}
	}
	if got := d.InvCDF(1); !math.IsInf(got, 1) {
		t.Errorf("InvCDF(1) = %v, want +Inf", got)
	}
	if !math.IsNaN(d.InvCDF(-1)) || !math.IsNaN(d.InvCDF(2)) {
		t.Errorf("InvCDF outside [0,1] must be NaN")
	}
}

func TestPoissonRandZeros(t *testing.T) {
	// The transformed-rejection sampler must reach the whole
	// support, including k=0: with Lambda=10 a draw is 0 with
	// probability e^-10, about 91 times in two million draws.
	d := PoissonDist{Lambda: 10}
	src := randx.New(1)
	const n = 2000000
	zeros := 0
	for i := 0; i < n; i++ {
		if d.Rand(src) == 0 {
			zeros++
		}
	}
	want := n * math.Exp(-10)
	if float64(zeros) < want/2 || float64(zeros) > want*2 {
		t.Errorf("%d zeros in %d draws, want about %.0f", zeros, n, want)
	}
}

func TestPoissonRand(t *testing.T) {
	// Exercise both the direct and the transformed-rejection
	// samplers.
	for _, lambda := range []float64{3, 40} {
		d := PoissonDist{Lambda: lambda}
		src := randx.New(23)
		const n = 100000
		var sum, sumsq float64
		for i := 0; i < n; i++ {
			x := d.Rand(src)
			if x < 0 || x != math.Floor(x) {
				t.Fatalf("bad draw %v", x)
			}
			sum += x
			sumsq += x * x
		}
		mean := sum / n
		variance := sumsq/n - mean*mean
		if math.Abs(mean-lambda) > 0.02*lambda {
			t.Errorf("lambda %v: sample mean %v", lambda, mean)
		}
		if math.Abs(variance-lambda) > 0.05*lambda {
			t.Errorf("lambda %v: sample variance %v", lambda, variance)
		}
	}
}
