// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sampmath

import (
	"math"
	"testing"
)

func TestLinearRegression(t *testing.T) {
	x := mustSample(t, 1, 2, 3, 4, 5)
	y := mustSample(t, 2, 1, 4, 3, 5)
	r, err := LinearRegression(x, y)
	if err != nil {
		t.Fatal(err)
	}
	test := func(name string, got, want float64) {
		t.Helper()
		if !aeq(want, got) {
			t.Errorf("%s = %v, want %v", name, got, want)
		}
	}
	if r.N != 5 {
		t.Errorf("N = %d, want 5", r.N)
	}
	test("Slope", r.Slope, 0.8)
	test("Intercept", r.Intercept, 0.6)
	test("R", r.R, 0.8)
	test("StdErr", r.StdErr, 0.3464101615137757)
	test("P", r.P, 0.10408803866182792)
}

func TestPerfectFit(t *testing.T) {
	// In floating point the correlation of exactly collinear data
	// comes out a few ulps shy of ±1, which must still be taken as
	// a perfect fit.
	test := func(y *Sample, slope, intercept, rr float64) {
		t.Helper()
		x := mustSample(t, 1, 2, 3, 4, 5)
		r, err := LinearRegression(x, y)
		if err != nil {
			t.Fatal(err)
		}
		if !aeq(slope, r.Slope) || !aeq(intercept, r.Intercept) || !aeq(rr, r.R) {
			t.Errorf("fit = %+v, want slope %v, intercept %v, r %v", r, slope, intercept, rr)
		}
		// An exact fit must degenerate to certainty, not to NaN.
		if r.P != 0 || r.StdErr != 0 {
			t.Errorf("P, StdErr = %v, %v, want 0, 0", r.P, r.StdErr)
		}
	}
	// y = 2x + 1 and y = -3x + 4.
	test(mustSample(t, 3, 5, 7, 9, 11), 2, 1, 1)
	test(mustSample(t, 1, -2, -5, -8, -11), -3, 4, -1)
}

func TestNegativeSlope(t *testing.T) {
	x := mustSample(t, 1, 2, 3, 4, 5)
	y := mustSample(t, 5, 3, 4, 1, 2)
	r, err := LinearRegression(x, y)
	if err != nil {
		t.Fatal(err)
	}
	if r.Slope >= 0 || r.R >= 0 {
		t.Errorf("Slope, R = %v, %v, want negative", r.Slope, r.R)
	}
	// The slope standard error is a magnitude regardless of the
	// slope's sign.
	if r.StdErr <= 0 {
		t.Errorf("StdErr = %v, want positive", r.StdErr)
	}
	if !(r.P > 0 && r.P < 1) {
		t.Errorf("P = %v, want in (0, 1)", r.P)
	}
}

func TestRegressionErrors(t *testing.T) {
	x := mustSample(t, 1, 2, 3)
	if _, err := LinearRegression(x, mustSample(t, 1, 2)); err != ErrMismatchedSamples {
		t.Errorf("mismatched lengths: got %v, want ErrMismatchedSamples", err)
	}
	if _, err := LinearRegression(mustSample(t, 1), mustSample(t, 2)); err != ErrSampleSize {
		t.Errorf("n=1: got %v, want ErrSampleSize", err)
	}
	// A vertical line has no defined slope; this must be reported,
	// not silently returned as NaN or Inf.
	r, err := LinearRegression(mustSample(t, 7, 7, 7), x)
	if err != ErrConstantX {
		t.Errorf("constant x: got %+v, %v, want ErrConstantX", r, err)
	}
}

func TestConstantY(t *testing.T) {
	x := mustSample(t, 1, 2, 3, 4)
	y := mustSample(t, 6, 6, 6, 6)
	r, err := LinearRegression(x, y)
	if err != nil {
		t.Fatal(err)
	}
	if r.Slope != 0 || r.Intercept != 6 || r.R != 0 || r.P != 1 {
		t.Errorf("constant y fit = %+v, want flat line with p=1", r)
	}
	if math.IsNaN(r.StdErr) {
		t.Error("StdErr is NaN for constant y")
	}
}
