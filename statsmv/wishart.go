// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package statsmv

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/statdist/go-statdist/mathx"
	"github.com/statdist/go-statdist/randx"
	"github.com/statdist/go-statdist/stats"
)

// Wishart is a Wishart distribution over p×p symmetric positive-
// definite matrices, with p×p positive-definite scale matrix V and
// Nu > p-1 degrees of freedom. It is the distribution of X = ΣᵢzᵢzᵢT
// for Nu independent draws zᵢ from a zero-mean normal with
// covariance V, and has mean Nu·V.
type Wishart struct {
	V  *mat.SymDense
	Nu float64
}

// LogPDF returns the natural logarithm of the density of the Wishart
// distribution at the matrix x. It returns NaN if V or x is not
// positive definite, if their dimensions disagree, or if Nu ≤ p-1.
func (d Wishart) LogPDF(x *mat.SymDense) float64 {
	if d.V == nil || x == nil {
		return nan
	}
	p := d.V.SymmetricDim()
	pf := float64(p)
	if x.SymmetricDim() != p || d.Nu <= pf-1 {
		return nan
	}
	var cholV, cholX mat.Cholesky
	if !cholV.Factorize(d.V) || !cholX.Factorize(x) {
		return nan
	}
	// tr(V⁻¹x) via the factorization of V.
	var solved mat.Dense
	if err := cholV.SolveTo(&solved, x); err != nil {
		return nan
	}
	tr := mat.Trace(&solved)
	return 0.5*((d.Nu-pf-1)*cholX.LogDet()-tr-d.Nu*pf*math.Ln2-d.Nu*cholV.LogDet()) -
		mathx.MvLgamma(d.Nu/2, p)
}

// PDF returns the density of the Wishart distribution at the
// matrix x.
func (d Wishart) PDF(x *mat.SymDense) float64 {
	return math.Exp(d.LogPDF(x))
}

// Rand returns one draw from the Wishart distribution as a new
// matrix, advancing src. It returns nil if V is not positive
// definite or Nu ≤ p-1.
//
// It uses the Bartlett decomposition: X = LAATLT where L is the
// lower Cholesky factor of V and A is lower triangular with
// Aᵢᵢ = √χ²(Nu-i) on the diagonal and independent standard normals
// below it. Draws are consumed from src row by row, the diagonal
// element of each row first.
func (d Wishart) Rand(src randx.Source) *mat.SymDense {
	if d.V == nil {
		return nil
	}
	p := d.V.SymmetricDim()
	if d.Nu <= float64(p)-1 {
		return nil
	}
	var chol mat.Cholesky
	if !chol.Factorize(d.V) {
		return nil
	}
	var l mat.TriDense
	chol.LTo(&l)
	a := mat.NewTriDense(p, mat.Lower, nil)
	for i := 0; i < p; i++ {
		chi := stats.ChiSquaredDist{K: d.Nu - float64(i)}.Rand(src)
		a.SetTri(i, i, math.Sqrt(chi))
		for j := 0; j < i; j++ {
			a.SetTri(i, j, randx.Norm(src))
		}
	}
	var la mat.Dense
	la.Mul(&l, a)
	var x mat.SymDense
	x.SymOuterK(1, &la)
	return &x
}

// InverseWishart is an inverse Wishart distribution over p×p
// symmetric positive-definite matrices, with p×p positive-definite
// scale matrix Psi and Nu > p-1 degrees of freedom: the distribution
// of X⁻¹ when X is Wishart with scale Psi⁻¹ and the same degrees of
// freedom. For Nu > p+1 its mean is Psi/(Nu-p-1).
type InverseWishart struct {
	Psi *mat.SymDense
	Nu  float64
}

// LogPDF returns the natural logarithm of the density of the inverse
// Wishart distribution at the matrix x. It returns NaN if Psi or x
// is not positive definite, if their dimensions disagree, or if
// Nu ≤ p-1.
func (d InverseWishart) LogPDF(x *mat.SymDense) float64 {
	if d.Psi == nil || x == nil {
		return nan
	}
	p := d.Psi.SymmetricDim()
	pf := float64(p)
	if x.SymmetricDim() != p || d.Nu <= pf-1 {
		return nan
	}
	var cholPsi, cholX mat.Cholesky
	if !cholPsi.Factorize(d.Psi) || !cholX.Factorize(x) {
		return nan
	}
	// tr(Psi·x⁻¹) = tr(x⁻¹·Psi) via the factorization of x.
	var solved mat.Dense
	if err := cholX.SolveTo(&solved, d.Psi); err != nil {
		return nan
	}
	tr := mat.Trace(&solved)
	return 0.5*(d.Nu*cholPsi.LogDet()-(d.Nu+pf+1)*cholX.LogDet()-tr-d.Nu*pf*math.Ln2) -
		mathx.MvLgamma(d.Nu/2, p)
}

// PDF returns the density of the inverse Wishart distribution at the
// matrix x.
func (d InverseWishart) PDF(x *mat.SymDense) float64 {
	return math.Exp(d.LogPDF(x))
}

// Rand returns one draw from the inverse Wishart distribution as a
// new matrix, advancing src. It returns nil if Psi is not positive
// definite or Nu ≤ p-1.
func (d InverseWishart) Rand(src randx.Source) *mat.SymDense {
	if d.Psi == nil {
		return nil
	}
	p := d.Psi.SymmetricDim()
	if d.Nu <= float64(p)-1 {
		return nil
	}
	var chol mat.Cholesky
	if !chol.Factorize(d.Psi) {
		return nil
	}
	var psiInv mat.SymDense
	if err := chol.InverseTo(&psiInv); err != nil {
		return nil
	}
	w := Wishart{V: &psiInv, Nu: d.Nu}.Rand(src)
	if w == nil {
		return nil
	}
	var cholW mat.Cholesky
	if !cholW.Factorize(w) {
		return nil
	}
	var x mat.SymDense
	if err := cholW.InverseTo(&x); err != nil {
		return nil
	}
	return &x
}
