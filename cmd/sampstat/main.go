// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command sampstat summarizes and compares numeric sample files,
// such as microbenchmark timings collected one measurement per line.
//
// Given one input, or three or more, it prints a descriptive summary
// of each. Given exactly two inputs, it also performs a two-sided
// Welch t-test of their means and reports the tightest tabulated
// significance level at which they differ. With -fit, two inputs are
// instead treated as paired (x, y) series and fitted by ordinary
// least squares. If no inputs are provided, or an input is "-", it
// reads from stdin.
//
// Output is a human-readable table by default; -kv selects the
// machine-parseable key-value record format and -tsv a spreadsheet
// friendly tab-separated one.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/sampstat/sampstat/numfmt"
	"github.com/sampstat/sampstat/sampfmt"
	"github.com/sampstat/sampstat/samplot"
	"github.com/sampstat/sampstat/sampmath"
)

func main() {
	log.SetPrefix("")
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), `Usage: %s [flags] [inputs...]

sampstat summarizes and compares numeric sample files: one finite
decimal value per line, blank lines ignored. If no inputs are
provided, or an input is "-", it reads from stdin.

With one input, or three or more, sampstat prints a summary of each.
With exactly two, it also runs a two-sided Welch t-test of their
means; with -fit it instead fits y = slope*x + intercept to their
paired values.
`, os.Args[0])
		flag.PrintDefaults()
	}
	kv := flag.Bool("kv", false, "write machine-parseable key-value records")
	tsv := flag.Bool("tsv", false, "write summaries as tab-separated rows")
	fit := flag.Bool("fit", false, "fit a line to two inputs' paired values instead of comparing means")
	doPlot := flag.Bool("plot", false, "draw box plots")
	ascii := flag.Bool("ascii", false, "use only ASCII characters in plots")
	width := flag.Int("width", 80, "plot width in characters")
	outliers := flag.Bool("outliers", false, "extend whiskers and summary bounds to the true min and max")
	lax := flag.Bool("lax", false, "ignore lines that do not parse as numbers")
	flag.Parse()

	var (
		srcs      []string
		summaries []*sampmath.Summary
		samples   []*sampmath.Sample
	)
	files := sampfmt.Files{Paths: flag.Args(), AllowStdin: true, Lax: *lax}
	for files.Scan() {
		s, err := files.Sample()
		if err != nil {
			log.Print(err)
			continue
		}
		srcs = append(srcs, files.Path())
		samples = append(samples, s)
		summaries = append(summaries, sampmath.Summarize(s))
	}
	if err := files.Err(); err != nil {
		log.Fatal(err)
	}
	if len(samples) == 0 {
		log.Fatal("no usable samples")
	}
	// Compare only when exactly two inputs were named and both
	// loaded; a surviving pair out of a longer list is not one.
	compare := len(flag.Args()) == 2 && len(samples) == 2

	switch {
	case *kv:
		writeKV(os.Stdout, srcs, samples, summaries, *fit, compare)
	case *tsv:
		writeTSV(os.Stdout, srcs, summaries)
	default:
		if *doPlot {
			opts := samplot.Options{Width: *width, ASCII: *ascii, Outliers: *outliers}
			fmt.Println(samplot.ComparisonPlot(summaries, opts))
			fmt.Println()
		}
		for i, sum := range summaries {
			if i > 0 {
				fmt.Println()
			}
			printSummary(sum, *outliers)
		}
		if compare {
			fmt.Println()
			if *fit {
				printFit(samples[0], samples[1])
			} else {
				printTTest(summaries[0], summaries[1])
			}
		}
	}
}

func writeKV(out *os.File, srcs []string, samples []*sampmath.Sample, summaries []*sampmath.Summary, fit, compare bool) {
	w := sampfmt.NewWriter(out)
	for _, sum := range summaries {
		if err := w.WriteSummary(sum); err != nil {
			log.Fatal("writing output: ", err)
		}
	}
	if !compare {
		return
	}
	if fit {
		r, err := sampmath.LinearRegression(samples[0], samples[1])
		if err != nil {
			log.Fatal(err)
		}
		if err := w.WriteRegression(r); err != nil {
			log.Fatal("writing output: ", err)
		}
		return
	}
	r, err := sampmath.SummaryTTest(summaries[0], summaries[1])
	if err != nil {
		log.Fatal(err)
	}
	if err := w.WriteTTest(srcs[0], srcs[1], r); err != nil {
		log.Fatal("writing output: ", err)
	}
}

// tsvFields returns the column headers of writeTSV.
func tsvFields() []string {
	return []string{
		"Source", "Size", "Mean", "Median", "StdDev", "Variance", "StdErr",
		"Min", "Max", "Range", "Q1", "Q3", "IQR", "MinAdj", "MaxAdj",
	}
}

func writeTSV(out *os.File, srcs []string, summaries []*sampmath.Summary) {
	fmt.Fprintln(out, strings.Join(tsvFields(), "\t"))
	for i, s := range summaries {
		vals := []float64{
			s.Mean, s.Median, s.Std, s.Var, s.SEM,
			s.Min, s.Max, s.Range(), s.LowerQuartile, s.UpperQuartile,
			s.IQR(), s.MinAdjacent, s.MaxAdjacent,
		}
		fields := []string{srcs[i], strconv.Itoa(s.N)}
		for _, v := range vals {
			fields = append(fields, strconv.FormatFloat(v, 'g', -1, 64))
		}
		fmt.Fprintln(out, strings.Join(fields, "\t"))
	}
}

const (
	colWidth  = 10
	sizeWidth = 6
)

func printSummary(s *sampmath.Summary, outliers bool) {
	lo, hi, loLabel, hiLabel := s.MinAdjacent, s.MaxAdjacent, "Min Adj", "Max Adj"
	if outliers {
		lo, hi, loLabel, hiLabel = s.Min, s.Max, "Min", "Max"
	}
	fmt.Printf("%*s  %*s  %*s  %*s  %*s  %*s  %*s  %*s\n",
		sizeWidth, "Size", colWidth, loLabel, colWidth, "Q1", colWidth, "Median",
		colWidth, "Q3", colWidth, hiLabel, colWidth, "Mean", colWidth, "Std Dev")
	fmt.Printf("%*d  %*s  %*s  %*s  %*s  %*s  %*s  %*s\n",
		sizeWidth, s.N,
		colWidth, numfmt.Compact(lo, colWidth),
		colWidth, numfmt.Compact(s.LowerQuartile, colWidth),
		colWidth, numfmt.Compact(s.Median, colWidth),
		colWidth, numfmt.Compact(s.UpperQuartile, colWidth),
		colWidth, numfmt.Compact(hi, colWidth),
		colWidth, numfmt.Compact(s.Mean, colWidth),
		colWidth, numfmt.Compact(s.Std, colWidth))
}

func printTTest(s1, s2 *sampmath.Summary) {
	r, err := sampmath.SummaryTTest(s1, s2)
	if err != nil {
		log.Fatal(err)
	}

	const labelWidth = 12
	line := func(label string, args ...interface{}) {
		fmt.Printf("%*s = %s\n", labelWidth, label, fmt.Sprint(args...))
	}
	seDelta := math.Sqrt(s1.SEM*s1.SEM + s2.SEM*s2.SEM)
	line("m1 ± SE", s1.Mean, " ± ", s1.SEM)
	line("m2 ± SE", s2.Mean, " ± ", s2.SEM)
	line("m2 - m1 ± SE", s2.Mean-s1.Mean, " ± ", seDelta)
	line("t", r.T)
	line("df", r.DoF)
	if r.Significant {
		line("verdict", fmt.Sprintf("means differ (p < %v)", r.Alpha))
	} else {
		line("verdict", "not significant at any tested level")
	}
}

func printFit(x, y *sampmath.Sample) {
	r, err := sampmath.LinearRegression(x, y)
	if err != nil {
		log.Fatal(err)
	}

	const labelWidth = 12
	line := func(label string, v float64) {
		fmt.Printf("%*s = %v\n", labelWidth, label, v)
	}
	line("slope", r.Slope)
	line("intercept", r.Intercept)
	line("r", r.R)
	line("se(slope)", r.StdErr)
	line("p", r.P)
}
