// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/statdist/go-statdist/mathx"
	"github.com/statdist/go-statdist/randx"
)

// BinomialDist is a binomial distribution.
type BinomialDist struct {
	// N is the number of independent Bernoulli trials. N >= 0.
	N int

	// P is the probability of success in each trial. 0 <= P <= 1.
	P float64
}

func (d BinomialDist) valid() bool { return d.N >= 0 && d.P >= 0 && d.P <= 1 }

// PMF is the probability of getting exactly int(k) successes in d.N
// independent Bernoulli trials with probability d.P.
func (d BinomialDist) PMF(k float64) float64 {
	if !d.valid() {
		return nan
	}
	if k != math.Floor(k) || k < 0 || k > float64(d.N) {
		return 0
	}
	ki := int(k)
	if d.N > 1000 {
		// The binomial coefficient overflows float64 around
		// n=1030; go through log space instead.
		return math.Exp(d.LogPMF(k))
	}
	return mathx.Choose(d.N, ki) * math.Pow(d.P, float64(ki)) * math.Pow(1-d.P, float64(d.N-ki))
}

// LogPMF sums log-gamma terms rather than taking the log of the
// product in PMF, so it is finite even where PMF underflows.
func (d BinomialDist) LogPMF(k float64) float64 {
	if !d.valid() {
		return nan
	}
	if k != math.Floor(k) || k < 0 || k > float64(d.N) {
		return -inf
	}
	ki := int(k)
	// The boundary terms have zero multiplicity; skip them so P=0
	// and P=1 do not produce 0*log(0).
	r := mathx.LogChoose(d.N, ki)
	if ki > 0 {
		r += float64(ki) * math.Log(d.P)
	}
	if ki < d.N {
		r += float64(d.N-ki) * math.Log1p(-d.P)
	}
	return r
}

// CDF is the probability of getting k or fewer successes in d.N
// independent Bernoulli trials with probability d.P.
func (d BinomialDist) CDF(k float64) float64 {
	if !d.valid() {
		return nan
	}
	k = math.Floor(k)
	if k < 0 {
		return 0
	} else if k >= float64(d.N) {
		return 1
	}

	return mathx.BetaInc(1-d.P, float64(d.N)-k, k+1)
}

// InvCDF returns the smallest number of successes k with
// CDF(k) >= p. The CDF is monotone in k, so binary search over
// [0, N] suffices.
func (d BinomialDist) InvCDF(p float64) float64 {
	if !d.valid() || math.IsNaN(p) || p < 0 || p > 1 {
		return nan
	}
	if p == 1 {
		return float64(d.N)
	}
	lo, hi := 0, d.N
	for lo < hi {
		mid := (lo + hi) / 2
		if d.CDF(float64(mid)) >= p {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return float64(lo)
}

// Rand generates one draw. Small trial counts sum Bernoulli draws
// directly; larger ones use the rejection sampler with a Cauchy
// proposal from Numerical Recipes §7.3, whose cost is independent
// of N.
func (d BinomialDist) Rand(src randx.Source) float64 {
	if !d.valid() {
		return nan
	}
	p := d.P
	flipped := false
	if p > 0.5 {
		p = 1 - p
		flipped = true
	}
	n := float64(d.N)

	var bnl float64
	if d.N < 30 {
		// Direct method.
		for i := 0; i < d.N; i++ {
			if randx.Float64(src) < p {
				bnl++
			}
		}
	} else if p == 0 {
		bnl = 0
	} else {
		// Rejection with a Cauchy proposal matched to the
		// normal core of the binomial.
		am := n * p
		g := mathx.Lgamma(n + 1)
		plog := math.Log(p)
		pclog := math.Log1p(-p)
		sq := math.Sqrt(2 * am * (1 - p))
		for {
			var em, y float64
			for {
				y = math.Tan(math.Pi * randx.Float64OO(src))
				em = sq*y + am
				if em >= 0 && em < n+1 {
					break
				}
			}
			em = math.Floor(em)
			t := 1.2 * sq * (1 + y*y) *
				math.Exp(g-mathx.Lgamma(em+1)-mathx.Lgamma(n-em+1)+
					em*plog+(n-em)*pclog)
			if randx.Float64(src) <= t {
				bnl = em
				break
			}
		}
	}
	if flipped {
		return n - bnl
	}
	return bnl
}

func (d BinomialDist) Bounds() (float64, float64) {
	return 0, float64(d.N)
}

func (d BinomialDist) Step() float64 {
	return 1
}

func (d BinomialDist) Mean() float64 {
	return float64(d.N) * d.P
}

func (d BinomialDist) Variance() float64 {
	return float64(d.N) * d.P * (1 - d.P)
}

// NormalApprox returns a normal distribution approximation of
// binomial distribution d.
//
// Because the binomial distribution is discrete and the normal
// distribution is continuous, the caller must apply a continuity
// correction when using this approximation. Specifically, if b is the
// binomial distribution and n is the normal approximation, operations
// map as follows:
//
//	b.PMF(k) => n.CDF(k+0.5) - n.CDF(k-0.5)
//	b.CDF(k) => n.CDF(k+0.5)
func (d BinomialDist) NormalApprox() NormalDist {
	return NormalDist{Mu: d.Mean(), Sigma: math.Sqrt(d.Variance())}
}
