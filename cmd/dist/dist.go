// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// dist evaluates statistical distributions and describes data.
//
// With -d it evaluates a named distribution built from the -p
// parameter list: the density and cumulative probability at a point
// (-x, optionally on the log scale with -log), a quantile (-q), a
// table of values (-table lo:hi:steps), reproducible random draws
// (-n with -seed), or a density plot (-plot file.png). With no mode
// flag it prints the density as text bars.
//
// Without -d it reads newline-separated numbers from stdin and
// describes their distribution: summary statistics, quantiles, and a
// kernel density estimate.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/statdist/go-statdist/randx"
	"github.com/statdist/go-statdist/stats"
)

func main() {
	var (
		name     = flag.String("d", "", "distribution `name` (-list to list)")
		params   = flag.String("p", "", "comma-separated distribution `parameters`")
		at       = flag.Float64("x", math.NaN(), "evaluate density and cumulative at `x`")
		quantile = flag.Float64("q", math.NaN(), "evaluate the quantile at probability `p`")
		count    = flag.Int("n", 0, "print `count` random draws")
		seed     = flag.Uint64("seed", 1, "random `seed` for -n")
		logScale = flag.Bool("log", false, "report the density on the log scale")
		table    = flag.String("table", "", "tabulate density and cumulative over `lo:hi:steps`")
		plotFile = flag.String("plot", "", "write a density plot to `file`")
		list     = flag.Bool("list", false, "list known distributions and exit")
	)
	flag.Parse()

	if *list {
		printCatalog(os.Stdout)
		return
	}
	if *name == "" {
		summarize(os.Stdin, *plotFile)
		return
	}

	m, err := buildModel(*name, *params)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	did := false
	if !math.IsNaN(*at) {
		did = true
		label := "density"
		if *logScale {
			label = "log density"
		}
		fmt.Printf("%s %.6g  cumulative %.6g\n",
			label, m.density(*at, *logScale), m.cdf(*at))
	}
	if !math.IsNaN(*quantile) {
		did = true
		fmt.Printf("quantile %.6g\n", m.invCDF(*quantile))
	}
	if *table != "" {
		did = true
		if err := printTable(os.Stdout, m, *table, *logScale); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
	if *count > 0 {
		did = true
		src := randx.New(*seed)
		for i := 0; i < *count; i++ {
			fmt.Printf("%g\n", m.rand(src))
		}
	}
	if *plotFile != "" {
		did = true
		if err := savePlot(m, *name, *plotFile); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
	if !did {
		fprintDensity(os.Stdout, m)
	}
}

// printTable tabulates density and cumulative values over the range
// spec "lo:hi:steps".
func printTable(w io.Writer, m model, spec string, logScale bool) error {
	fields := strings.Split(spec, ":")
	if len(fields) != 3 {
		return fmt.Errorf("bad range %q, want lo:hi:steps", spec)
	}
	lo, err1 := strconv.ParseFloat(fields[0], 64)
	hi, err2 := strconv.ParseFloat(fields[1], 64)
	steps, err3 := strconv.Atoi(fields[2])
	if err1 != nil || err2 != nil || err3 != nil || steps < 1 || hi < lo {
		return fmt.Errorf("bad range %q, want lo:hi:steps", spec)
	}
	label := "density"
	if logScale {
		label = "log density"
	}
	fmt.Fprintf(w, "%14s %14s %14s\n", "x", label, "cumulative")
	for i := 0; i <= steps; i++ {
		x := lo + (hi-lo)*float64(i)/float64(steps)
		fmt.Fprintf(w, "%14.6g %14.6g %14.6g\n", x, m.density(x, logScale), m.cdf(x))
	}
	return nil
}

// summarize reads newline-separated numbers from r and describes
// their distribution.
func summarize(r io.Reader, plotFile string) {
	s := readInput(r)
	s.Sort()

	fmt.Printf("N %d  sum %.6g  mean %.6g", len(s.Xs), s.Sum(), s.Mean())
	gmean := s.GeoMean()
	if !math.IsNaN(gmean) {
		fmt.Printf("  gmean %.6g", gmean)
	}
	fmt.Printf("  std dev %.6g  variance %.6g\n", s.StdDev(), s.Variance())
	fmt.Println()

	// Quartiles and tails.
	labels := map[int]string{0: "min", 50: "median", 100: "max"}
	for _, p := range []int{0, 1, 5, 25, 50, 75, 95, 99, 100} {
		label, ok := labels[p]
		if !ok {
			label = fmt.Sprintf("%d%%ile", p)
		}
		fmt.Printf("%8s %.6g\n", label, s.Quantile(float64(p)/100))
	}
	fmt.Println()

	// Kernel density estimate.
	kde := cont(stats.KDE{}.From(s))
	fprintDensity(os.Stdout, kde)
	if plotFile != "" {
		if err := savePlot(kde, "density estimate", plotFile); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
}

func readInput(r io.Reader) (sample stats.Sample) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		l := scanner.Text()
		value, err := strconv.ParseFloat(l, 64)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		sample.Xs = append(sample.Xs, value)
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	return
}
