// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sampmath

import (
	"math"
	"testing"
)

func TestTwoSampleWelchTTest(t *testing.T) {
	s1 := mustSample(t, 2, 1, 3, 4)
	s2 := mustSample(t, 6, 5, 7, 9)

	r, err := TwoSampleWelchTTest(s1, s2)
	if err != nil {
		t.Fatal(err)
	}
	if !aeq(-3.9703446152237674, r.T) {
		t.Errorf("T = %v, want -3.9703446152237674", r.T)
	}
	if !aeq(5.584615384615385, r.DoF) {
		t.Errorf("DoF = %v, want 5.584615384615385", r.DoF)
	}
	if r.N1 != 4 || r.N2 != 4 {
		t.Errorf("N1, N2 = %d, %d, want 4, 4", r.N1, r.N2)
	}
	// |T| = 3.97 beats the df=5 critical value at 0.02 (3.365) but
	// not at 0.01 (4.032).
	if !r.Significant || r.Alpha != 0.02 {
		t.Errorf("verdict = (%v, %v), want significant at 0.02", r.Significant, r.Alpha)
	}

	// Swapping the samples flips the sign of T and nothing else.
	r2, err := TwoSampleWelchTTest(s2, s1)
	if err != nil {
		t.Fatal(err)
	}
	if r2.T != -r.T || r2.DoF != r.DoF || r2.Alpha != r.Alpha || r2.Significant != r.Significant {
		t.Errorf("comparison is not antisymmetric: %+v vs %+v", r, r2)
	}
}

func TestTTestIdenticalSamples(t *testing.T) {
	s := mustSample(t, 10, 20, 30)
	r, err := TwoSampleWelchTTest(s, s)
	if err != nil {
		t.Fatal(err)
	}
	if r.T != 0 {
		t.Errorf("T = %v, want 0", r.T)
	}
	if r.Significant || r.Alpha != 1 {
		t.Errorf("verdict = (%v, %v), want not significant at any tested level", r.Significant, r.Alpha)
	}
}

func TestTTestErrors(t *testing.T) {
	small := mustSample(t, 1)
	ok := mustSample(t, 1, 2, 3)
	if _, err := TwoSampleWelchTTest(small, ok); err != ErrSampleSize {
		t.Errorf("n1=1: got %v, want ErrSampleSize", err)
	}
	if _, err := TwoSampleWelchTTest(ok, small); err != ErrSampleSize {
		t.Errorf("n2=1: got %v, want ErrSampleSize", err)
	}

	// Distinct means but zero variance on both sides is still
	// degenerate: the Welch denominator vanishes.
	c1 := mustSample(t, 1, 1, 1)
	c2 := mustSample(t, 5, 5, 5)
	if _, err := TwoSampleWelchTTest(c1, c2); err != ErrZeroVariance {
		t.Errorf("zero variances: got %v, want ErrZeroVariance", err)
	}
	if _, err := TwoSampleWelchTTest(c1, c1); err != ErrZeroVariance {
		t.Errorf("zero variances, equal means: got %v, want ErrZeroVariance", err)
	}

	// One-sided zero variance is fine.
	if _, err := TwoSampleWelchTTest(c1, ok); err != nil {
		t.Errorf("one-sided zero variance: got %v, want nil", err)
	}
}

func TestSummaryTTest(t *testing.T) {
	s1 := mustSample(t, 2, 1, 3, 4)
	s2 := mustSample(t, 6, 5, 7, 9)
	want, err := TwoSampleWelchTTest(s1, s2)
	if err != nil {
		t.Fatal(err)
	}
	got, err := SummaryTTest(Summarize(s1), Summarize(s2))
	if err != nil {
		t.Fatal(err)
	}
	if *got != *want {
		t.Errorf("SummaryTTest = %+v, want %+v", got, want)
	}
}

func TestVerdictLevels(t *testing.T) {
	// Drive the verdict logic through the internal helper with
	// var/n = 0.5 per side, which makes t exactly the mean
	// difference and pins dof to 1/(2*0.25/10) = 20, so each level
	// boundary of the df=20 table row can be straddled directly.
	test := func(absT float64, wantAlpha float64, wantSig bool) {
		t.Helper()
		r, err := welchTTest(11, absT, 5.5, 11, 0, 5.5)
		if err != nil {
			t.Fatal(err)
		}
		if r.DoF != 20 {
			t.Fatalf("test setup: dof = %v, want 20", r.DoF)
		}
		if r.Significant != wantSig || r.Alpha != wantAlpha {
			t.Errorf("|t|=%v: verdict = (%v, %v), want (%v, %v)",
				absT, r.Significant, r.Alpha, wantSig, wantAlpha)
		}
	}
	crit := func(i int) float64 { return CriticalValue(20, i) }
	test(crit(0)*0.99, 1, false)
	test(crit(0)*1.01, 0.2, true)
	test(crit(2)*1.01, 0.05, true)
	test(crit(4)*1.01, 0.01, true)
	test(crit(5)*1.01, 0.002, true)
	test(math.Inf(1), 0.002, true)
}
