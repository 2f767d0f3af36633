// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sampmath

import "math"

// A Summary is the fixed set of descriptive statistics for one
// Sample. It is computed once and never mutated; consumers that need
// cheaper derived quantities (Range, IQR) recompute them from the
// record rather than from the sample.
//
// For a sample of size 1, Std, SEM and Var are NaN: they require at
// least two observations and reporting NaN keeps the condition
// detectable, unlike a silent zero.
type Summary struct {
	N             int
	Min           float64
	Max           float64
	LowerQuartile float64
	UpperQuartile float64
	Median        float64
	Mean          float64
	Std           float64
	SEM           float64
	Var           float64

	// MinAdjacent and MaxAdjacent are the most extreme
	// observations within the Tukey fences at 1.5 IQR beyond the
	// quartiles. They bound box-plot whiskers when outliers are
	// trimmed.
	MinAdjacent float64
	MaxAdjacent float64
}

// Summarize computes the Summary of s.
func Summarize(s *Sample) *Summary {
	sum := &Summary{
		N:             s.N(),
		Min:           s.Min(),
		Max:           s.Max(),
		LowerQuartile: s.Percentile(0.25),
		UpperQuartile: s.Percentile(0.75),
		Median:        s.Median(),
		Mean:          s.Mean(),
		Std:           s.StdDev(),
		SEM:           s.StdErr(),
		Var:           s.Variance(),
	}
	iqr := sum.UpperQuartile - sum.LowerQuartile
	loFence := sum.LowerQuartile - 1.5*iqr
	hiFence := sum.UpperQuartile + 1.5*iqr
	sum.MinAdjacent, sum.MaxAdjacent = sum.Max, sum.Min
	for _, x := range s.sorted {
		if x >= loFence {
			sum.MinAdjacent = x
			break
		}
	}
	for i := len(s.sorted) - 1; i >= 0; i-- {
		if s.sorted[i] <= hiFence {
			sum.MaxAdjacent = s.sorted[i]
			break
		}
	}
	return sum
}

// SummarizeValues validates xs and computes its Summary.
func SummarizeValues(xs []float64) (*Summary, error) {
	s, err := NewSample(xs)
	if err != nil {
		return nil, err
	}
	return Summarize(s), nil
}

// Range returns Max - Min.
func (s *Summary) Range() float64 {
	return s.Max - s.Min
}

// IQR returns the interquartile range.
func (s *Summary) IQR() float64 {
	return s.UpperQuartile - s.LowerQuartile
}

// Defined reports whether the variance-derived fields (Std, SEM,
// Var) are defined, which requires a sample of at least two
// observations.
func (s *Summary) Defined() bool {
	return !math.IsNaN(s.Var)
}
