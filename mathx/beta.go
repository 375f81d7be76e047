// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import "math"

// Lbeta returns the natural logarithm of the beta function B(a, b)
// for a, b > 0, and NaN otherwise.
func Lbeta(a, b float64) float64 {
	if a <= 0 || b <= 0 {
		return nan
	}
	return Lgamma(a) + Lgamma(b) - Lgamma(a+b)
}

// BetaInc returns the value of the regularized incomplete beta
// function
//
//	I_x(a, b) = B(x; a, b) / B(a, b)
//
// for a, b > 0 and x in [0, 1], and NaN outside that domain. I_x(a, b)
// is the CDF of the Beta(a, b) distribution at x.
//
// The continued fraction for I converges quickly only for
// x < (a+1)/(a+b+2); beyond that the symmetry
// I_x(a, b) = 1 - I_{1-x}(b, a) moves the evaluation back into the
// fast regime.
func BetaInc(x, a, b float64) float64 {
	switch {
	case math.IsNaN(x) || a <= 0 || b <= 0 || x < 0 || x > 1:
		return nan
	case x == 0:
		return 0
	case x == 1:
		return 1
	}
	// Prefactor x^a (1-x)^b / B(a, b), in log space.
	lfront := a*math.Log(x) + b*math.Log1p(-x) - Lbeta(a, b)
	if x < (a+1)/(a+b+2) {
		return math.Exp(lfront) * betaIncCF(x, a, b) / a
	}
	return 1 - math.Exp(lfront)*betaIncCF(1-x, b, a)/b
}

// betaIncCF evaluates the continued fraction for the incomplete beta
// function by the modified Lentz method. See Press et al., Numerical
// Recipes, §6.4.
func betaIncCF(x, a, b float64) float64 {
	qab := a + b
	qap := a + 1
	qam := a - 1

	c := 1.0
	d := 1 - qab*x/qap
	if math.Abs(d) < cfTiny {
		d = cfTiny
	}
	d = 1 / d
	h := d
	for m := 1; m <= cfMaxIter; m++ {
		fm := float64(m)
		m2 := 2 * fm

		// Even step.
		aa := fm * (b - fm) * x / ((qam + m2) * (a + m2))
		d = 1 + aa*d
		if math.Abs(d) < cfTiny {
			d = cfTiny
		}
		c = 1 + aa/c
		if math.Abs(c) < cfTiny {
			c = cfTiny
		}
		d = 1 / d
		h *= d * c

		// Odd step.
		aa = -(a + fm) * (qab + fm) * x / ((a + m2) * (qap + m2))
		d = 1 + aa*d
		if math.Abs(d) < cfTiny {
			d = cfTiny
		}
		c = 1 + aa/c
		if math.Abs(c) < cfTiny {
			c = cfTiny
		}
		d = 1 / d
		del := d * c
		h *= del
		if math.Abs(del-1) < cfEps {
			break
		}
	}
	return h
}
