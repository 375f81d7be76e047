// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package randx

import "math/bits"

// PCG default 128-bit multiplier and increment constants, split into
// 64-bit halves.
const (
	pcgMulHi = 2549297995355413924
	pcgMulLo = 4865540595714422341
	pcgIncHi = 6364136223846793005
	pcgIncLo = 1442695040888963407
)

// A PCG is a permuted congruential generator (PCG XSL RR 128/64): 128
// bits of state, 64-bit output, period 2^128.
//
// PCG: A Family of Simple Fast Space-Efficient Statistically Good
// Algorithms for Random Number Generation. Melissa E. O'Neill, Harvey
// Mudd College. http://www.pcg-random.org/pdf/toms-oneill-pcg-family-v1.02.pdf
type PCG struct {
	hi, lo uint64
}

// New returns a PCG deterministically seeded from seed. The single
// 64-bit seed is expanded to the full 128-bit state with two rounds
// of splitmix64, so nearby seeds still land in well-separated states.
// The same seed always yields the same output sequence.
func New(seed uint64) *PCG {
	return &PCG{
		hi: splitmix64(seed),
		lo: splitmix64(seed ^ 0x9e3779b97f4a7c15),
	}
}

// splitmix64 mixes x into a new 64-bit value. Used only for seed
// expansion.
func splitmix64(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}

// Uint64 advances the generator and returns the next value.
func (p *PCG) Uint64() uint64 {
	// 128-bit LCG step: state = state*mul + inc.
	hi, lo := bits.Mul64(p.lo, pcgMulLo)
	hi += p.hi*pcgMulLo + p.lo*pcgMulHi
	var carry uint64
	lo, carry = bits.Add64(lo, pcgIncLo, 0)
	hi, _ = bits.Add64(hi, pcgIncHi, carry)
	p.hi, p.lo = hi, lo

	// XSL RR output permutation: xor the halves, rotate by the
	// top bits of state.
	return bits.RotateLeft64(hi^lo, -int(hi>>58))
}
