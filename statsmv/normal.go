// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package statsmv evaluates multivariate distributions: the
// multivariate normal over vectors and the Wishart and inverse
// Wishart over symmetric positive-definite matrices.
//
// Matrix parameters are gonum mat.SymDense values and every density
// and sampler routes through a Cholesky factorization of them. A
// parameter matrix that is not positive definite is a domain error:
// densities return NaN and samplers return nil, mirroring the NaN
// policy of the stats package. As in stats, distributions are value
// structs holding only their parameters and all randomness comes from
// a caller-supplied randx.Source.
package statsmv

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/statdist/go-statdist/randx"
)

var nan = math.NaN()

const log2Pi = 1.8378770664093454835 // log(2π)

// Normal is a multivariate normal distribution with mean vector Mu
// and covariance matrix Sigma. Sigma must be positive definite and
// its dimension must match len(Mu).
type Normal struct {
	Mu    []float64
	Sigma *mat.SymDense
}

// LogPDF returns the natural logarithm of the density of the normal
// distribution at the point x. It returns NaN if Sigma is not
// positive definite or if the dimensions of x, Mu, and Sigma
// disagree.
func (d Normal) LogPDF(x []float64) float64 {
	p := len(d.Mu)
	if p == 0 || len(x) != p || d.Sigma == nil || d.Sigma.SymmetricDim() != p {
		return nan
	}
	var chol mat.Cholesky
	if !chol.Factorize(d.Sigma) {
		return nan
	}
	diff := mat.NewVecDense(p, nil)
	for i := 0; i < p; i++ {
		diff.SetVec(i, x[i]-d.Mu[i])
	}
	// Sigma⁻¹ (x-μ) via the factorization, then the quadratic form.
	var solved mat.VecDense
	if err := chol.SolveVecTo(&solved, diff); err != nil {
		return nan
	}
	quad := mat.Dot(diff, &solved)
	return -0.5 * (float64(p)*log2Pi + chol.LogDet() + quad)
}

// PDF returns the density of the normal distribution at the point x.
func (d Normal) PDF(x []float64) float64 {
	return math.Exp(d.LogPDF(x))
}

// Rand returns one draw from the normal distribution as a new
// length-len(Mu) slice, advancing src. It returns nil if Sigma is
// not positive definite or its dimension does not match Mu.
//
// The draw is μ + Lz where L is the lower Cholesky factor of Sigma
// and z is a vector of independent standard normals, consumed from
// src in index order.
func (d Normal) Rand(src randx.Source) []float64 {
	p := len(d.Mu)
	if p == 0 || d.Sigma == nil || d.Sigma.SymmetricDim() != p {
		return nil
	}
	var chol mat.Cholesky
	if !chol.Factorize(d.Sigma) {
		return nil
	}
	var l mat.TriDense
	chol.LTo(&l)
	z := mat.NewVecDense(p, nil)
	for i := 0; i < p; i++ {
		z.SetVec(i, randx.Norm(src))
	}
	var lz mat.VecDense
	lz.MulVec(&l, z)
	x := make([]float64, p)
	for i := 0; i < p; i++ {
		x[i] = d.Mu[i] + lz.AtVec(i)
	}
	return x
}
