// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/stat/distuv"
)

// oracle pairs one of our distributions with the equivalent gonum
// distuv distribution, which serves as an independently implemented
// reference.
type oracle struct {
	name string
	d    Dist
	ref  interface {
		Prob(float64) float64
		CDF(float64) float64
	}
}

func oracles() []oracle {
	return []oracle{
		{"Normal", NormalDist{1, 2}, distuv.Normal{Mu: 1, Sigma: 2}},
		{"LogNormal", LogNormalDist{0.3, 0.8}, distuv.LogNormal{Mu: 0.3, Sigma: 0.8}},
		{"Uniform", UniformDist{-2, 5}, distuv.Uniform{Min: -2, Max: 5}},
		{"Exponential", ExponentialDist{1.7}, distuv.Exponential{Rate: 1.7}},
		// distuv parameterizes gamma by rate, this package by
		// scale.
		{"Gamma", GammaDist{2.5, 1.5}, distuv.Gamma{Alpha: 2.5, Beta: 1 / 1.5}},
		{"InverseGamma", InverseGammaDist{3, 2}, distuv.InverseGamma{Alpha: 3, Beta: 2}},
		{"Beta", BetaDist{2, 3}, distuv.Beta{Alpha: 2, Beta: 3}},
		{"ChiSquared", ChiSquaredDist{4}, distuv.ChiSquared{K: 4}},
		{"F", FDist{6, 14}, distuv.F{D1: 6, D2: 14}},
		{"StudentsT", TDist{7}, distuv.StudentsT{Mu: 0, Sigma: 1, Nu: 7}},
		{"Laplace", LaplaceDist{1, 2}, distuv.Laplace{Mu: 1, Scale: 2}},
		{"Weibull", WeibullDist{1.5, 2}, distuv.Weibull{K: 1.5, Lambda: 2}},
	}
}

func TestAgainstGonum(t *testing.T) {
	for _, o := range oracles() {
		a, b := o.d.InvCDF(0.02), o.d.InvCDF(0.98)
		for i := 1; i < 40; i++ {
			x := a + float64(i)/40*(b-a)
			assert.InDeltaf(t, o.ref.Prob(x), o.d.PDF(x), 1e-9,
				"%s: PDF(%v)", o.name, x)
			assert.InDeltaf(t, o.ref.CDF(x), o.d.CDF(x), 1e-9,
				"%s: CDF(%v)", o.name, x)
		}
	}
}

func TestQuantilesAgainstGonum(t *testing.T) {
	for _, o := range oracles() {
		q, ok := o.ref.(interface{ Quantile(float64) float64 })
		if !ok {
			continue
		}
		for _, p := range []float64{0.01, 0.1, 0.25, 0.5, 0.75, 0.9, 0.99} {
			want := q.Quantile(p)
			got := o.d.InvCDF(p)
			assert.InDeltaf(t, want, got, 1e-6*maxabs(1, want),
				"%s: InvCDF(%v)", o.name, p)
		}
	}
}

func TestDiscreteAgainstGonum(t *testing.T) {
	bin := BinomialDist{N: 12, P: 0.35}
	refBin := distuv.Binomial{N: 12, P: 0.35}
	for k := 0.0; k <= 12; k++ {
		assert.InDeltaf(t, refBin.Prob(k), bin.PMF(k), 1e-10, "Binomial PMF(%v)", k)
		assert.InDeltaf(t, refBin.CDF(k), bin.CDF(k), 1e-10, "Binomial CDF(%v)", k)
	}

	pois := PoissonDist{Lambda: 4.2}
	refPois := distuv.Poisson{Lambda: 4.2}
	for k := 0.0; k <= 25; k++ {
		assert.InDeltaf(t, refPois.Prob(k), pois.PMF(k), 1e-10, "Poisson PMF(%v)", k)
		assert.InDeltaf(t, refPois.CDF(k), pois.CDF(k), 1e-10, "Poisson CDF(%v)", k)
	}

	bern := BernoulliDist{P: 0.3}
	refBern := distuv.Bernoulli{P: 0.3}
	for _, k := range []float64{0, 1} {
		assert.InDeltaf(t, refBern.Prob(k), bern.PMF(k), 1e-15, "Bernoulli PMF(%v)", k)
		assert.InDeltaf(t, refBern.CDF(k), bern.CDF(k), 1e-15, "Bernoulli CDF(%v)", k)
	}
}

func maxabs(a, b float64) float64 {
	if b < 0 {
		b = -b
	}
	if a > b {
		return a
	}
	return b
}
