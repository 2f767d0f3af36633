// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sampmath

import (
	"math"

	"github.com/aclements/go-moremath/stats"
)

// A RegressionResult is an ordinary least-squares fit of the linear
// model y = Slope*x + Intercept over paired samples.
type RegressionResult struct {
	// N is the number of (x, y) pairs.
	N int

	// Slope and Intercept are the fitted coefficients.
	Slope, Intercept float64

	// R is Pearson's correlation coefficient.
	R float64

	// P is the two-sided p-value for the null hypothesis that the
	// true slope is zero.
	P float64

	// StdErr is the standard error of the slope estimate.
	StdErr float64
}

// LinearRegression fits y = Slope*x + Intercept to the equal-length
// samples x and y by ordinary least squares.
//
// It returns ErrMismatchedSamples if the lengths differ,
// ErrSampleSize if there are fewer than two pairs, and ErrConstantX
// if x has zero variance (the vertical-line case, where the slope is
// undefined). A perfect fit, including the unavoidable one through
// exactly two points, reports StdErr = 0 and P = 0 rather than NaN.
func LinearRegression(x, y *Sample) (*RegressionResult, error) {
	if x.N() != y.N() {
		return nil, ErrMismatchedSamples
	}
	n := x.N()
	if n < 2 {
		return nil, ErrSampleSize
	}
	sx, sy := x.StdDev(), y.StdDev()
	if sx == 0 {
		return nil, ErrConstantX
	}

	mx, my := x.Mean(), y.Mean()
	if sy == 0 {
		// A constant response is the horizontal line y = my:
		// zero slope, zero correlation, nothing to test.
		return &RegressionResult{N: n, Intercept: my, P: 1}, nil
	}

	xs, ys := x.Values(), y.Values()
	var cov float64
	for i := range xs {
		cov += (xs[i] - mx) * (ys[i] - my)
	}
	r := cov / (float64(n-1) * sx * sy)
	// Rounding can push r a few ulps past ±1.
	r = math.Max(-1, math.Min(1, r))
	slope := r * (sy / sx)
	res := &RegressionResult{
		N:         n,
		Slope:     slope,
		Intercept: my - slope*mx,
		R:         r,
	}

	// For exactly collinear inputs r lands within rounding error of
	// ±1 rather than on it, so test 1-r*r against an epsilon instead
	// of equality.
	dof := float64(n - 2)
	if dof == 0 || 1-r*r <= 1e-12 {
		// The residuals vanish; the slope estimate has no
		// error and the p-value degenerates.
		res.P = 0
		return res, nil
	}

	// Test slope = 0 with t = r*sqrt(dof/(1-r^2)) against Student's
	// t. Unlike the two-sample comparison, this is an exact
	// p-value: the closed-form t CDF is cheap and the regression
	// output is not bound to the tabulated levels.
	t := r * math.Sqrt(dof/(1-r*r))
	res.P = 2 * (1 - stats.TDist{V: dof}.CDF(math.Abs(t)))
	res.StdErr = math.Abs(slope) / math.Sqrt(dof) * math.Sqrt(1/(r*r)-1)
	return res, nil
}
