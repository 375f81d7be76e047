// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import "math"

// Erf returns the error function of x. It is exactly math.Erf; the
// alias keeps the special-function surface of this package complete
// so distribution code imports one kernel.
func Erf(x float64) float64 { return math.Erf(x) }

// Erfc returns the complementary error function of x. math.Erfc is
// already tail-stable: it does not lose precision as x grows the way
// 1-Erf(x) would.
func Erfc(x float64) float64 { return math.Erfc(x) }

// LogErfc returns log(erfc(x)), finite even where erfc(x) underflows
// to zero (x beyond about 27). For large x it uses the asymptotic
// expansion
//
//	erfc(x) ~ e^{-x²}/(x√π) · (1 - 1/(2x²) + 3/(4x⁴) - ...)
//
// taking the logarithm term-wise so no intermediate underflows. This
// is what keeps log-scale normal tail probabilities finite deep into
// the tail.
func LogErfc(x float64) float64 {
	if x < 10 {
		// erfc is comfortably representable here.
		return math.Log(math.Erfc(x))
	}
	// Asymptotic series in 1/x². Seven terms give full double
	// precision for x >= 10.
	z := 1 / (x * x)
	series := 1 + z*(-0.5+z*(0.75+z*(-1.875+z*(6.5625+z*(-29.53125+z*162.421875)))))
	return -x*x - math.Log(x) - 0.5*math.Log(math.Pi) + math.Log(series)
}
