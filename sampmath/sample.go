// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sampmath provides the statistics behind sample summary and
// comparison: descriptive summaries of small numeric samples, Welch
// two-sample significance tests classified against a pre-computed
// critical-value table, and simple least-squares fits.
//
// Every operation is a pure function of its input sample(s):
// recomputing from identical inputs produces bit-for-bit identical
// results, which downstream golden-file comparison depends on. To
// keep that property well-defined, sums are always taken in the
// sample's own order and quantiles use one fixed interpolation rule.
package sampmath

import (
	"errors"
	"math"
	"sort"
)

var (
	// ErrEmptySample is returned when a sample has no values.
	ErrEmptySample = errors.New("sample is empty")
	// ErrNonFinite is returned when a sample contains a NaN or
	// infinite value.
	ErrNonFinite = errors.New("sample contains a non-finite value")
	// ErrSampleSize is returned when a sample is too small for the
	// requested statistic.
	ErrSampleSize = errors.New("sample is too small")
	// ErrZeroVariance is returned by a two-sample comparison when
	// both samples have exactly zero variance, in which case no
	// separation of the means is defined.
	ErrZeroVariance = errors.New("both samples have zero variance")
	// ErrConstantX is returned by a regression whose x values are
	// all equal (the vertical-line case, with undefined slope).
	ErrConstantX = errors.New("x values are constant")
	// ErrMismatchedSamples is returned by a regression over samples
	// of different lengths.
	ErrMismatchedSamples = errors.New("samples have different lengths")
)

// A Sample is a validated, immutable set of finite float64
// observations.
//
// A Sample retains the order its values were loaded in, and that
// order fixes the summation order of Mean and Variance. Order
// statistics operate on a private sorted copy, so the loaded values
// are never rearranged.
type Sample struct {
	xs     []float64
	sorted []float64
}

// NewSample validates xs and returns a Sample over a private copy of
// it. It returns ErrEmptySample if xs is empty and ErrNonFinite if
// any value is NaN or infinite.
func NewSample(xs []float64) (*Sample, error) {
	if len(xs) == 0 {
		return nil, ErrEmptySample
	}
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, ErrNonFinite
		}
	}
	s := &Sample{xs: append([]float64(nil), xs...)}
	s.sorted = append([]float64(nil), s.xs...)
	sort.Float64s(s.sorted)
	return s, nil
}

// N returns the number of observations in s.
func (s *Sample) N() int {
	return len(s.xs)
}

// Values returns the observations in load order. The caller must not
// modify the returned slice.
func (s *Sample) Values() []float64 {
	return s.xs
}

// Min returns the smallest observation.
func (s *Sample) Min() float64 {
	return s.sorted[0]
}

// Max returns the largest observation.
func (s *Sample) Max() float64 {
	return s.sorted[len(s.sorted)-1]
}

// Mean returns the arithmetic mean, summed in load order.
func (s *Sample) Mean() float64 {
	var sum float64
	for _, x := range s.xs {
		sum += x
	}
	return sum / float64(len(s.xs))
}

// Variance returns the Bessel-corrected sample variance. It is NaN
// for a sample of size 1.
func (s *Sample) Variance() float64 {
	m := s.Mean()
	var ssd float64
	for _, x := range s.xs {
		d := x - m
		ssd += d * d
	}
	return ssd / float64(len(s.xs)-1)
}

// StdDev returns the Bessel-corrected sample standard deviation. It
// is NaN for a sample of size 1.
func (s *Sample) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdErr returns the standard error of the mean, StdDev/sqrt(n). It
// is NaN for a sample of size 1.
func (s *Sample) StdErr() float64 {
	return s.StdDev() / math.Sqrt(float64(len(s.xs)))
}

// Percentile returns the p'th percentile of s for p in [0, 1],
// computed by linear interpolation of the order statistics: the
// target rank is r = p*(n-1) and the result interpolates between the
// sorted values at floor(r) and ceil(r).
//
// This exact rule is part of the output contract; do not substitute
// another quantile estimator.
func (s *Sample) Percentile(p float64) float64 {
	if !(p >= 0 && p <= 1) {
		panic("percentile out of range [0, 1]")
	}
	rank := p * float64(len(s.sorted)-1)
	i, frac := math.Floor(rank), rank-math.Floor(rank)
	xi := s.sorted[int(i)]
	if frac == 0 {
		return xi
	}
	xj := s.sorted[int(i)+1]
	return xi + frac*(xj-xi)
}

// Median returns the middle observation, or the midpoint of the two
// middle observations when n is even.
func (s *Sample) Median() float64 {
	return s.Percentile(0.5)
}
