// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package samplot renders text box-whisker plots of sample
// summaries.
//
// A plot is three rows of text: the box spans the quartiles with the
// median marked, and whiskers extend to the adjacent values (or to
// the true minimum and maximum when outliers are requested). Several
// summaries can be plotted on one shared scale for comparison.
package samplot

import (
	"math"
	"strings"

	"github.com/sampstat/sampstat/sampmath"
)

// Options control plot rendering.
type Options struct {
	// Width is the total plot width in characters. If zero, it
	// defaults to 80.
	Width int

	// ASCII restricts the output to ASCII characters.
	ASCII bool

	// Outliers extends the whiskers to the true minimum and
	// maximum instead of stopping at the Tukey adjacent values.
	Outliers bool
}

// Each glyph row is indexed: whisker end, whisker-to-box fill, box
// edge, box fill, median, box fill, box edge, box-to-whisker fill,
// whisker end.
type charset [3][9]rune

var (
	unicodeSet = charset{
		{'┬', ' ', '┌', '─', '┬', '─', '┐', ' ', '┬'},
		{'├', '─', '┤', ' ', '│', ' ', '├', '─', '┤'},
		{'┴', ' ', '└', '─', '┴', '─', '┘', ' ', '┴'},
	}
	asciiSet = charset{
		{'|', ' ', '+', '-', '+', '-', '+', ' ', '|'},
		{'|', '-', '|', ' ', '|', ' ', '|', '-', '|'},
		{'|', ' ', '+', '-', '+', '-', '+', ' ', '|'},
	}
)

// Plot renders one summary.
func Plot(s *sampmath.Summary, opts Options) string {
	return ComparisonPlot([]*sampmath.Summary{s}, opts)
}

// ComparisonPlot renders each summary on a shared horizontal scale,
// one plot per summary in input order, so boxes are visually
// comparable across samples.
func ComparisonPlot(ss []*sampmath.Summary, opts Options) string {
	width := opts.Width
	if width <= 0 {
		width = 80
	}
	if width < 2 {
		width = 2
	}
	cs := unicodeSet
	if opts.ASCII {
		cs = asciiSet
	}

	// Establish the shared scale from the whisker extents.
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, s := range ss {
		wlo, whi := whiskers(s, opts.Outliers)
		lo, hi = math.Min(lo, wlo), math.Max(hi, whi)
	}

	var plots []string
	for _, s := range ss {
		plots = append(plots, plotOne(s, opts.Outliers, lo, hi, width, cs))
	}
	return strings.Join(plots, "\n")
}

func whiskers(s *sampmath.Summary, outliers bool) (lo, hi float64) {
	if outliers {
		return s.Min, s.Max
	}
	return s.MinAdjacent, s.MaxAdjacent
}

func plotOne(s *sampmath.Summary, outliers bool, lo, hi float64, width int, cs charset) string {
	toCol := func(x float64) int {
		if hi == lo {
			return 0
		}
		c := int((x - lo) / (hi - lo) * float64(width-1))
		if c < 0 {
			c = 0
		} else if c > width-1 {
			c = width - 1
		}
		return c
	}

	whLo, whHi := whiskers(s, outliers)
	cols := [5]int{
		toCol(whLo),
		toCol(s.LowerQuartile),
		toCol(s.Median),
		toCol(s.UpperQuartile),
		toCol(whHi),
	}

	rows := make([]string, 3)
	for i := range rows {
		rows[i] = renderRow(cs[i], cols, width)
	}
	return strings.Join(rows, "\n")
}

func renderRow(glyphs [9]rune, cols [5]int, width int) string {
	row := make([]rune, width)
	for i := range row {
		row[i] = ' '
	}
	// Fills before marks, so that coincident columns keep the
	// marks.
	for _, f := range [4][3]int{
		{cols[0], cols[1], 1},
		{cols[1], cols[2], 3},
		{cols[2], cols[3], 5},
		{cols[3], cols[4], 7},
	} {
		for i := f[0] + 1; i < f[1]; i++ {
			row[i] = glyphs[f[2]]
		}
	}
	row[cols[0]] = glyphs[0]
	row[cols[1]] = glyphs[2]
	row[cols[2]] = glyphs[4]
	row[cols[3]] = glyphs[6]
	row[cols[4]] = glyphs[8]
	return string(row)
}
