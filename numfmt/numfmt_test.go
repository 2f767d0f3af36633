// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numfmt

import (
	"math"
	"testing"
)

func TestCompact(t *testing.T) {
	test := func(x float64, max int, want string) {
		t.Helper()
		got := Compact(x, max)
		if got != want {
			t.Errorf("Compact(%v, %d) = %q, want %q", x, max, got, want)
		}
	}

	// Short values pass through exactly.
	test(0, 10, "0")
	test(3.5, 6, "3.5")
	test(-42, 6, "-42")
	test(123456, 6, "123456")
	test(1234.5678, 10, "1234.5678")
	test(math.NaN(), 6, "NaN")
	test(math.Inf(1), 6, "+Inf")

	// Too-long values fall back to reduced precision.
	test(1234.5678, 8, "1.23e+03")
	test(-123456.789, 8, "-1.2e+05")

	// Exponent 0 and -1 prefer fixed notation.
	test(1.23456789, 6, "1.2346")
	test(0.12345678901234, 6, "0.1235")

	// Extreme exponents fall through to the single-digit form.
	test(-math.SmallestNonzeroFloat64, 6, "-5e-324")

	defer func() {
		if recover() == nil {
			t.Error("Compact with max < 6 did not panic")
		}
	}()
	Compact(1, 5)
}
