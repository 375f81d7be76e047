// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/statdist/go-statdist/randx"
	"github.com/statdist/go-statdist/stats"
)

// model adapts continuous and discrete distributions to one command
// surface. Exactly one of cont and disc is set.
type model struct {
	cont stats.Dist
	disc stats.DiscreteDist
}

func cont(d stats.Dist) model         { return model{cont: d} }
func disc(d stats.DiscreteDist) model { return model{disc: d} }

func (m model) density(x float64, logScale bool) float64 {
	switch {
	case m.disc != nil && logScale:
		return m.disc.LogPMF(x)
	case m.disc != nil:
		return m.disc.PMF(x)
	case logScale:
		return m.cont.LogPDF(x)
	}
	return m.cont.PDF(x)
}

func (m model) cdf(x float64) float64 {
	if m.disc != nil {
		return m.disc.CDF(x)
	}
	return m.cont.CDF(x)
}

func (m model) invCDF(p float64) float64 {
	if m.disc != nil {
		return m.disc.InvCDF(p)
	}
	return m.cont.InvCDF(p)
}

func (m model) rand(src randx.Source) float64 {
	if m.disc != nil {
		return m.disc.Rand(src)
	}
	return m.cont.Rand(src)
}

func (m model) bounds() (float64, float64) {
	if m.disc != nil {
		return m.disc.Bounds()
	}
	return m.cont.Bounds()
}

// step returns the support spacing for discrete distributions and 0
// for continuous ones.
func (m model) step() float64 {
	if m.disc != nil {
		return m.disc.Step()
	}
	return 0
}

type entry struct {
	params string
	build  func(p []float64) model
}

var catalog = map[string]entry{
	"normal": {"mu,sigma", func(p []float64) model {
		return cont(stats.NormalDist{Mu: p[0], Sigma: p[1]})
	}},
	"lognormal": {"mu,sigma", func(p []float64) model {
		return cont(stats.LogNormalDist{Mu: p[0], Sigma: p[1]})
	}},
	"uniform": {"min,max", func(p []float64) model {
		return cont(stats.UniformDist{Min: p[0], Max: p[1]})
	}},
	"exponential": {"rate", func(p []float64) model {
		return cont(stats.ExponentialDist{Rate: p[0]})
	}},
	"gamma": {"shape,scale", func(p []float64) model {
		return cont(stats.GammaDist{Shape: p[0], Scale: p[1]})
	}},
	"invgamma": {"shape,scale", func(p []float64) model {
		return cont(stats.InverseGammaDist{Shape: p[0], Scale: p[1]})
	}},
	"beta": {"alpha,beta", func(p []float64) model {
		return cont(stats.BetaDist{Alpha: p[0], Beta: p[1]})
	}},
	"chisquared": {"k", func(p []float64) model {
		return cont(stats.ChiSquaredDist{K: p[0]})
	}},
	"f": {"d1,d2", func(p []float64) model {
		return cont(stats.FDist{D1: p[0], D2: p[1]})
	}},
	"t": {"v", func(p []float64) model {
		return cont(stats.TDist{V: p[0]})
	}},
	"cauchy": {"mu,sigma", func(p []float64) model {
		return cont(stats.CauchyDist{Mu: p[0], Sigma: p[1]})
	}},
	"laplace": {"mu,scale", func(p []float64) model {
		return cont(stats.LaplaceDist{Mu: p[0], Scale: p[1]})
	}},
	"logistic": {"mu,s", func(p []float64) model {
		return cont(stats.LogisticDist{Mu: p[0], S: p[1]})
	}},
	"weibull": {"k,lambda", func(p []float64) model {
		return cont(stats.WeibullDist{K: p[0], Lambda: p[1]})
	}},
	"bernoulli": {"p", func(p []float64) model {
		return disc(stats.BernoulliDist{P: p[0]})
	}},
	"binomial": {"n,p", func(p []float64) model {
		return disc(stats.BinomialDist{N: int(p[0]), P: p[1]})
	}},
	"poisson": {"lambda", func(p []float64) model {
		return disc(stats.PoissonDist{Lambda: p[0]})
	}},
}

// buildModel constructs the named distribution from its
// comma-separated parameter list.
func buildModel(name, params string) (model, error) {
	e, ok := catalog[name]
	if !ok {
		return model{}, fmt.Errorf("unknown distribution %q (-list to list)", name)
	}
	names := strings.Split(e.params, ",")
	fields := strings.Split(params, ",")
	if params == "" {
		fields = nil
	}
	if len(fields) != len(names) {
		return model{}, fmt.Errorf("%s takes %d parameters (%s), got %d",
			name, len(names), e.params, len(fields))
	}
	p := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return model{}, fmt.Errorf("bad parameter %s: %v", names[i], err)
		}
		p[i] = v
	}
	return e.build(p), nil
}

func printCatalog(w io.Writer) {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "%-12s %s\n", name, catalog[name].params)
	}
}

// fprintDensity renders m's density over its bounds as horizontal
// text bars. Discrete distributions get one bar per support point,
// continuous ones a fixed number of sample rows.
func fprintDensity(w io.Writer, m model) {
	const width = 60
	lo, hi := m.bounds()
	var xs []float64
	if step := m.step(); step > 0 {
		for x := lo; x <= hi; x += step {
			xs = append(xs, x)
		}
	} else {
		const rows = 30
		for i := 0; i < rows; i++ {
			xs = append(xs, lo+(hi-lo)*(float64(i)+0.5)/rows)
		}
	}
	max := 0.0
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = m.density(x, false)
		if ys[i] > max {
			max = ys[i]
		}
	}
	if max == 0 || math.IsInf(max, 1) {
		fmt.Fprintln(w, "density not plottable over these bounds")
		return
	}
	for i, x := range xs {
		bar := int(ys[i]/max*width + 0.5)
		fmt.Fprintf(w, "%10.4g %s\n", x, strings.Repeat("*", bar))
	}
}

// savePlot writes a density plot of m to a file; the format follows
// the file extension (.png, .svg, .pdf).
func savePlot(m model, title, file string) error {
	lo, hi := m.bounds()
	var pts plotter.XYs
	if step := m.step(); step > 0 {
		for x := lo; x <= hi; x += step {
			pts = append(pts, plotter.XY{X: x, Y: m.density(x, false)})
		}
	} else {
		const n = 256
		for i := 0; i <= n; i++ {
			x := lo + (hi-lo)*float64(i)/n
			pts = append(pts, plotter.XY{X: x, Y: m.density(x, false)})
		}
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "density"
	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	p.Add(line)
	return p.Save(20*vg.Centimeter, 10*vg.Centimeter, file)
}
