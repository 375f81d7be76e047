// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package randx provides the uniform randomness that drives variate
// sampling: a minimal 64-bit source contract, a PCG implementation of
// it, and the uniform/normal/exponential primitives the distribution
// samplers are built from.
//
// A Source is the single abstraction behind both sampling call
// shapes. The seed path constructs a throwaway source for one call:
//
//	d.Rand(randx.New(42))
//
// The generator path retains a source and shares it across calls,
// each call advancing it in place:
//
//	src := randx.New(42)
//	x0 := d.Rand(src)
//	x1 := d.Rand(src) // continues the same sequence
//
// No function here resets or copies a shared source. Sources carry
// no locks; a source shared between goroutines needs external
// synchronization.
package randx // import "github.com/statdist/go-statdist/randx"

import "math"

// A Source produces an endless stream of uniformly distributed
// 64-bit values. math/rand.Source64 satisfies it, as does any
// external generator exposing the standard next-uint64 operation.
type Source interface {
	Uint64() uint64
}

// Float64 returns a uniform draw in [0, 1) with 53 bits of precision,
// advancing src.
func Float64(src Source) float64 {
	return float64(src.Uint64()>>11) / (1 << 53)
}

// Float64OO returns a uniform draw in the open interval (0, 1),
// advancing src. Samplers that take a logarithm of the draw use this
// form so zero can never reach the log.
func Float64OO(src Source) float64 {
	return (float64(src.Uint64()>>11) + 0.5) / (1 << 53)
}

// Norm returns one standard normal draw by Box–Muller, advancing src
// by exactly two values. The paired draw is discarded; NormPair
// returns both.
func Norm(src Source) float64 {
	n, _ := NormPair(src)
	return n
}

// NormPair returns two independent standard normal draws generated
// from one Box–Muller transform, advancing src by exactly two values.
func NormPair(src Source) (float64, float64) {
	r := math.Sqrt(-2 * math.Log(Float64OO(src)))
	theta := 2 * math.Pi * Float64(src)
	sin, cos := math.Sincos(theta)
	return r * cos, r * sin
}

// Exp returns one standard exponential draw (rate 1) by inverse
// transform, advancing src by one value.
func Exp(src Source) float64 {
	return -math.Log(Float64OO(src))
}
