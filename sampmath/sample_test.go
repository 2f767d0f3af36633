// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sampmath

import (
	"math"
	"testing"
)

func TestNewSample(t *testing.T) {
	if _, err := NewSample(nil); err != ErrEmptySample {
		t.Errorf("empty input: got %v, want ErrEmptySample", err)
	}
	if _, err := NewSample([]float64{1, math.NaN(), 3}); err != ErrNonFinite {
		t.Errorf("NaN input: got %v, want ErrNonFinite", err)
	}
	if _, err := NewSample([]float64{1, math.Inf(-1)}); err != ErrNonFinite {
		t.Errorf("Inf input: got %v, want ErrNonFinite", err)
	}

	// The input slice must not be disturbed, even though order
	// statistics need a sort.
	xs := []float64{3, 1, 2}
	s := mustSample(t, xs...)
	if s.Min() != 1 || s.Max() != 3 {
		t.Errorf("got min %v max %v, want 1 3", s.Min(), s.Max())
	}
	if xs[0] != 3 || xs[1] != 1 || xs[2] != 2 {
		t.Errorf("input slice was mutated: %v", xs)
	}
	vs := s.Values()
	if vs[0] != 3 || vs[1] != 1 || vs[2] != 2 {
		t.Errorf("Values lost load order: %v", vs)
	}
}

func TestPercentile(t *testing.T) {
	s := mustSample(t, 4, 1, 3, 2)
	test := func(p, want float64) {
		t.Helper()
		if got := s.Percentile(p); got != want {
			t.Errorf("Percentile(%v) = %v, want %v", p, got, want)
		}
	}
	test(0, 1)
	test(0.25, 1.75)
	test(0.5, 2.5)
	test(0.75, 3.25)
	test(1, 4)

	defer func() {
		if recover() == nil {
			t.Error("Percentile(-0.5) did not panic")
		}
	}()
	s.Percentile(-0.5)
}

func TestSingleton(t *testing.T) {
	s := mustSample(t, 42)
	if got := s.Mean(); got != 42 {
		t.Errorf("Mean = %v, want 42", got)
	}
	if got := s.Median(); got != 42 {
		t.Errorf("Median = %v, want 42", got)
	}
	// Variance-derived statistics are undefined for n=1 and must
	// come back NaN, not zero.
	for name, got := range map[string]float64{
		"Variance": s.Variance(),
		"StdDev":   s.StdDev(),
		"StdErr":   s.StdErr(),
	} {
		if !math.IsNaN(got) {
			t.Errorf("%s of singleton = %v, want NaN", name, got)
		}
	}
}

func TestSummary(t *testing.T) {
	sum, err := SummarizeValues([]float64{1, 2, 3, 4, 5})
	if err != nil {
		t.Fatal(err)
	}
	test := func(name string, got, want float64) {
		t.Helper()
		if !aeq(want, got) {
			t.Errorf("%s = %v, want %v", name, got, want)
		}
	}
	if sum.N != 5 {
		t.Errorf("N = %v, want 5", sum.N)
	}
	test("Min", sum.Min, 1)
	test("Max", sum.Max, 5)
	test("LowerQuartile", sum.LowerQuartile, 2)
	test("UpperQuartile", sum.UpperQuartile, 4)
	test("Median", sum.Median, 3)
	test("Mean", sum.Mean, 3)
	test("Var", sum.Var, 2.5)
	test("Std", sum.Std, 1.5811388300841898)
	test("SEM", sum.SEM, 0.7071067811865476)
	test("Range", sum.Range(), 4)
	test("IQR", sum.IQR(), 2)
	test("MinAdjacent", sum.MinAdjacent, 1)
	test("MaxAdjacent", sum.MaxAdjacent, 5)
	if !sum.Defined() {
		t.Error("Defined() = false for n=5")
	}
}

func TestSummaryInvariants(t *testing.T) {
	xs := []float64{9, 2.5, 7, 7, 0.5, 3, 11, 4}
	sum, err := SummarizeValues(xs)
	if err != nil {
		t.Fatal(err)
	}
	if !(sum.Min <= sum.LowerQuartile && sum.LowerQuartile <= sum.Median &&
		sum.Median <= sum.UpperQuartile && sum.UpperQuartile <= sum.Max) {
		t.Errorf("order statistics out of order: %+v", sum)
	}
	if !aeq(sum.Std*sum.Std, sum.Var) {
		t.Errorf("Std^2 = %v != Var = %v", sum.Std*sum.Std, sum.Var)
	}
	if want := sum.Std / math.Sqrt(float64(sum.N)); sum.SEM != want {
		t.Errorf("SEM = %v, want Std/sqrt(n) = %v", sum.SEM, want)
	}
}

func TestSummaryOrderInvariance(t *testing.T) {
	// No summary statistic may depend on load order beyond the
	// reproducibility of the sum itself, so a reversed sample must
	// summarize identically. (Reversal preserves pairwise addition
	// order poorly in general, so keep the values exactly
	// representable.)
	xs := []float64{5, 1, 4, 2, 3, 8, 6, 7}
	rev := make([]float64, len(xs))
	for i, x := range xs {
		rev[len(xs)-1-i] = x
	}
	a, err := SummarizeValues(xs)
	if err != nil {
		t.Fatal(err)
	}
	b, err := SummarizeValues(rev)
	if err != nil {
		t.Fatal(err)
	}
	if *a != *b {
		t.Errorf("summaries differ under reordering:\n%+v\n%+v", a, b)
	}
}

func TestAdjacentValues(t *testing.T) {
	// 100 is far outside the upper fence; the upper adjacent value
	// must retreat to the largest non-outlying observation.
	sum, err := SummarizeValues([]float64{1, 2, 3, 4, 5, 6, 7, 100})
	if err != nil {
		t.Fatal(err)
	}
	if sum.MinAdjacent != 1 {
		t.Errorf("MinAdjacent = %v, want 1", sum.MinAdjacent)
	}
	if sum.MaxAdjacent != 7 {
		t.Errorf("MaxAdjacent = %v, want 7", sum.MaxAdjacent)
	}
}
