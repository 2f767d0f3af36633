// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package numfmt formats numbers compactly for fixed-width report
// tables.
package numfmt

import (
	"strconv"
	"strings"
)

// Compact formats x in at most max bytes, in either fixed or
// scientific notation, preferring the most precise encoding that
// fits. The output is meant for human-readable tables; precision may
// be lost, so it must not be used where values have to round-trip or
// feed machine consumers.
//
// max must be at least 6. Nearly every finite float64 fits that
// budget; the final single-digit fallback can exceed it by one byte
// for negative values with three-digit exponents (such as
// -2.2250738585072014e-308, approximated as "-2e-308").
func Compact(x float64, max int) string {
	if max < 6 {
		panic("numfmt: max width must be at least 6")
	}

	// The shortest exact decimal encoding is well-formatted, so
	// use it whenever it fits. This also handles 0, NaN, and the
	// infinities.
	s := strconv.FormatFloat(x, 'f', -1, 64)
	if len(s) <= max {
		return s
	}

	// Scientific notation wastes its suffix when the exponent is
	// 0, and at exponent -1 a fixed encoding spends its "0."
	// prefix no worse than "e-01" while keeping more significant
	// digits, so use fixed notation in both cases.
	e := exponent(x)
	useExp := e != 0 && e != -1

	// Walk the precision down until the encoding fits.
	for p := max - 1; p >= 1; p-- {
		if useExp {
			s = strconv.FormatFloat(x, 'e', p, 64)
		} else {
			s = strconv.FormatFloat(x, 'f', p, 64)
		}
		if len(s) <= max {
			return s
		}
	}
	return strconv.FormatFloat(x, 'e', 0, 64)
}

// exponent returns the decimal exponent of the normalized scientific
// form of x.
func exponent(x float64) int {
	s := strconv.FormatFloat(x, 'e', -1, 64)
	i := strings.IndexByte(s, 'e')
	e, _ := strconv.Atoi(s[i+1:])
	return e
}
