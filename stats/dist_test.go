// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"testing"

	"github.com/statdist/go-statdist/randx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type namedDist struct {
	name string
	d    Dist
}

func continuousDists() []namedDist {
	return []namedDist{
		{"Normal", NormalDist{1, 2}},
		{"LogNormal", LogNormalDist{0.3, 0.8}},
		{"Uniform", UniformDist{-2, 5}},
		{"Exponential", ExponentialDist{1.7}},
		{"Gamma", GammaDist{2.5, 1.5}},
		{"InverseGamma", InverseGammaDist{3, 2}},
		{"Beta", BetaDist{2, 3}},
		{"ChiSquared", ChiSquaredDist{4}},
		{"F", FDist{6, 14}},
		{"StudentsT", TDist{7}},
		{"Cauchy", CauchyDist{1, 2}},
		{"Laplace", LaplaceDist{1, 2}},
		{"Logistic", LogisticDist{-1, 0.7}},
		{"Weibull", WeibullDist{1.5, 2}},
	}
}

// simpson numerically integrates f over [a, b] with n intervals
// (n even).
func simpson(f func(float64) float64, a, b float64, n int) float64 {
	h := (b - a) / float64(n)
	sum := f(a) + f(b)
	for i := 1; i < n; i++ {
		x := a + float64(i)*h
		if i%2 == 1 {
			sum += 4 * f(x)
		} else {
			sum += 2 * f(x)
		}
	}
	return sum * h / 3
}

// The integral of the density between two quantiles must equal the
// probability mass between them.
func TestDensityIntegratesToCDF(t *testing.T) {
	for _, nd := range continuousDists() {
		a, b := nd.d.InvCDF(0.001), nd.d.InvCDF(0.999)
		got := simpson(nd.d.PDF, a, b, 200000)
		want := nd.d.CDF(b) - nd.d.CDF(a)
		assert.InDeltaf(t, want, got, 1e-6,
			"%s: ∫pdf over [%v, %v]", nd.name, a, b)
		assert.InDeltaf(t, 0.998, want, 1e-12,
			"%s: CDF mass between the 0.001 and 0.999 quantiles", nd.name)
	}
}

func TestCDFMonotoneAndLimits(t *testing.T) {
	for _, nd := range continuousDists() {
		a, b := nd.d.InvCDF(0.0001), nd.d.InvCDF(0.9999)
		prev := math.Inf(-1)
		for i := 0; i <= 1000; i++ {
			x := a + float64(i)/1000*(b-a)
			p := nd.d.CDF(x)
			require.Truef(t, p >= prev && p >= 0 && p <= 1,
				"%s: CDF(%v) = %v not monotone in [0,1] (prev %v)",
				nd.name, x, p, prev)
			prev = p
		}
		assert.InDeltaf(t, 0, nd.d.CDF(a), 2e-4, "%s: lower limit", nd.name)
		assert.InDeltaf(t, 1, nd.d.CDF(b), 2e-4, "%s: upper limit", nd.name)
	}
}

func TestInvCDFRoundTrip(t *testing.T) {
	for _, nd := range continuousDists() {
		a, b := nd.d.InvCDF(0.01), nd.d.InvCDF(0.99)
		for i := 1; i < 20; i++ {
			x := a + float64(i)/20*(b-a)
			p := nd.d.CDF(x)
			got := nd.d.InvCDF(p)
			assert.InDeltaf(t, x, got, 1e-6*math.Max(1, math.Abs(x)),
				"%s: InvCDF(CDF(%v))", nd.name, x)
		}
	}
}

func TestInvCDFBoundaries(t *testing.T) {
	for _, nd := range continuousDists() {
		for _, p := range []float64{-0.5, -1e-9, 1 + 1e-9, 2, math.NaN()} {
			assert.Truef(t, math.IsNaN(nd.d.InvCDF(p)),
				"%s: InvCDF(%v) must be NaN", nd.name, p)
		}
		// p=0 and p=1 map to the support bounds, never into the
		// root-finder.
		lo, hi := nd.d.InvCDF(0), nd.d.InvCDF(1)
		assert.Falsef(t, math.IsNaN(lo) || math.IsNaN(hi),
			"%s: InvCDF at 0/1 gave (%v, %v)", nd.name, lo, hi)
		assert.Truef(t, lo < hi, "%s: InvCDF(0)=%v !< InvCDF(1)=%v", nd.name, lo, hi)
	}
}

func TestLogPDFConsistency(t *testing.T) {
	for _, nd := range continuousDists() {
		a, b := nd.d.InvCDF(0.01), nd.d.InvCDF(0.99)
		for i := 1; i < 20; i++ {
			x := a + float64(i)/20*(b-a)
			want := nd.d.PDF(x)
			got := math.Exp(nd.d.LogPDF(x))
			assert.InEpsilonf(t, want, got, 1e-10,
				"%s: exp(LogPDF(%v)) vs PDF", nd.name, x)
		}
	}

	// In the far tail the linear-scale density underflows to 0
	// while the log-scale value stays finite.
	tails := []struct {
		name string
		d    Dist
		x    float64
	}{
		{"Normal", NormalDist{0, 1}, 60},
		{"Gamma", GammaDist{2, 1}, 5000},
		{"Laplace", LaplaceDist{0, 1}, 2000},
		{"Logistic", LogisticDist{0, 1}, 2000},
		{"Weibull", WeibullDist{3, 1}, 100},
	}
	for _, c := range tails {
		require.Equalf(t, 0.0, c.d.PDF(c.x), "%s: PDF(%v) should underflow", c.name, c.x)
		lp := c.d.LogPDF(c.x)
		assert.Truef(t, lp < -700 && !math.IsInf(lp, -1) && !math.IsNaN(lp),
			"%s: LogPDF(%v) = %v, want finite and far below log-underflow", c.name, c.x, lp)
	}
}

func TestInvalidParamsAreNaN(t *testing.T) {
	bad := []namedDist{
		{"Normal sigma=0", NormalDist{0, 0}},
		{"Normal sigma<0", NormalDist{0, -1}},
		{"LogNormal sigma=0", LogNormalDist{0, 0}},
		{"Uniform empty", UniformDist{1, 1}},
		{"Exponential rate=0", ExponentialDist{0}},
		{"Gamma shape=0", GammaDist{0, 1}},
		{"Gamma scale<0", GammaDist{1, -1}},
		{"InverseGamma shape=0", InverseGammaDist{0, 1}},
		{"Beta alpha=0", BetaDist{0, 1}},
		{"ChiSquared k=0", ChiSquaredDist{0}},
		{"F d1=0", FDist{0, 1}},
		{"StudentsT v=0", TDist{0}},
		{"Cauchy sigma=0", CauchyDist{0, 0}},
		{"Laplace scale=0", LaplaceDist{0, 0}},
		{"Logistic s=0", LogisticDist{0, 0}},
		{"Weibull k=0", WeibullDist{0, 1}},
	}
	for _, nd := range bad {
		assert.Truef(t, math.IsNaN(nd.d.PDF(0.5)), "%s: PDF", nd.name)
		assert.Truef(t, math.IsNaN(nd.d.CDF(0.5)), "%s: CDF", nd.name)
		assert.Truef(t, math.IsNaN(nd.d.InvCDF(0.5)), "%s: InvCDF", nd.name)
		assert.Truef(t, math.IsNaN(nd.d.Rand(randx.New(1))), "%s: Rand", nd.name)
	}
}

func TestRandDeterminism(t *testing.T) {
	for _, nd := range continuousDists() {
		// Same seed, same draw, bit for bit.
		x := nd.d.Rand(randx.New(99))
		y := nd.d.Rand(randx.New(99))
		require.Equalf(t, x, y, "%s: same seed must reproduce the draw", nd.name)

		// A shared source advances: consecutive draws differ.
		src := randx.New(99)
		x, y = nd.d.Rand(src), nd.d.Rand(src)
		require.NotEqualf(t, x, y, "%s: shared source must advance", nd.name)
	}
}

func TestRandMatchesCDF(t *testing.T) {
	// Empirical CDF of 50k draws must agree with the analytic CDF
	// at a few fixed quantiles. This exercises every sampler path
	// against its own distribution.
	const n = 50000
	for _, nd := range continuousDists() {
		src := randx.New(7)
		draws := RandEach(nd.d, n, src)
		for _, p := range []float64{0.1, 0.5, 0.9} {
			q := nd.d.InvCDF(p)
			count := 0
			for _, x := range draws {
				if x <= q {
					count++
				}
			}
			assert.InDeltaf(t, p, float64(count)/n, 0.01,
				"%s: empirical CDF at the %v quantile", nd.name, p)
		}
	}
}

func TestEach(t *testing.T) {
	d := NormalDist{0, 1}
	xs32 := []float32{-1, 0, 1}
	got32 := Each(d.CDF, xs32)
	require.Len(t, got32, 3)
	assert.InDelta(t, 0.5, float64(got32[1]), 1e-6)
	assert.InDelta(t, 1.0, float64(got32[0]+got32[2]), 1e-6)

	xs := []float64{-1, 0, 1, math.NaN()}
	got := Each(d.PDF, xs)
	require.Len(t, got, 4)
	// One bad element yields one NaN, not a failed batch.
	assert.True(t, math.IsNaN(got[3]))
	assert.InDelta(t, 0.398942, got[1], 1e-6)
	assert.Equal(t, got[0], got[2])
}

func TestRandEachOrder(t *testing.T) {
	d := ExponentialDist{1}
	a := RandEach(d, 10, randx.New(5))
	b := RandEach(d, 10, randx.New(5))
	require.Equal(t, a, b, "vectorized sampling must be deterministic in order")

	// Element i is what i sequential draws produce.
	src := randx.New(5)
	for i, want := range a {
		if got := d.Rand(src); got != want {
			t.Fatalf("draw %d: RandEach %v, sequential %v", i, want, got)
		}
	}
}
