// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

// Choose returns the binomial coefficient of n and k.
func Choose(n, k int) float64 {
	if k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	c := 1.0
	for i := 0; i < k; i++ {
		c = c * float64(n-i) / float64(i+1)
	}
	return c
}

// LogChoose returns the natural logarithm of the binomial coefficient
// of n and k. Computing in log space keeps large coefficients from
// overflowing and lets probability-mass formulas sum log terms
// instead of multiplying factorials.
func LogChoose(n, k int) float64 {
	if k < 0 || k > n {
		return nan
	}
	return Lgamma(float64(n)+1) - Lgamma(float64(k)+1) - Lgamma(float64(n-k)+1)
}
