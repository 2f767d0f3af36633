// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sampmath

import "math"

// A TTestResult is the result of a Welch two-sample t-test.
//
// Rather than an exact p-value, the result carries a verdict against
// the tabulated significance levels in Alphas: Alpha is the smallest
// tested level at which the two means are distinguishable. Trading
// p-value resolution for a table lookup avoids a runtime
// special-function evaluation and keeps results exactly reproducible.
type TTestResult struct {
	// N1 and N2 are the sizes of the two samples.
	N1, N2 int

	// T is Welch's t statistic for unequal variances.
	T float64

	// DoF is the Welch-Satterthwaite effective degrees of freedom.
	DoF float64

	// Alpha is the smallest level in Alphas at which |T| exceeds
	// the critical value, or 1 if it exceeds none. The exact
	// p-value satisfies p < Alpha whenever Significant is true.
	Alpha float64

	// Significant reports whether the means differ at at least
	// one tested level.
	Significant bool
}

// TwoSampleWelchTTest performs a two-sided Welch t-test on x1 and
// x2, which need not have equal variances. Each sample must have at
// least two observations (ErrSampleSize). If both samples have
// exactly zero variance, no separation of the means is defined,
// whether or not they are equal, and the test reports
// ErrZeroVariance.
func TwoSampleWelchTTest(x1, x2 *Sample) (*TTestResult, error) {
	return welchTTest(x1.N(), x1.Mean(), x1.Variance(), x2.N(), x2.Mean(), x2.Variance())
}

// SummaryTTest is like TwoSampleWelchTTest but reuses the mean,
// variance, and size already computed in two Summaries.
func SummaryTTest(s1, s2 *Summary) (*TTestResult, error) {
	return welchTTest(s1.N, s1.Mean, s1.Var, s2.N, s2.Mean, s2.Var)
}

func welchTTest(n1 int, m1, v1 float64, n2 int, m2, v2 float64) (*TTestResult, error) {
	if n1 < 2 || n2 < 2 {
		return nil, ErrSampleSize
	}
	if v1 == 0 && v2 == 0 {
		return nil, ErrZeroVariance
	}

	se1, se2 := v1/float64(n1), v2/float64(n2)
	t := (m1 - m2) / math.Sqrt(se1+se2)
	dof := (se1 + se2) * (se1 + se2) /
		(se1*se1/float64(n1-1) + se2*se2/float64(n2-1))

	r := &TTestResult{N1: n1, N2: n2, T: t, DoF: dof, Alpha: 1}
	for i := len(Alphas) - 1; i >= 0; i-- {
		if math.Abs(t) > CriticalValue(dof, i) {
			r.Alpha, r.Significant = Alphas[i], true
			break
		}
	}
	return r, nil
}
