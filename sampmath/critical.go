// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sampmath

import "math"

//go:generate go run mktables.go

// CriticalValue returns the critical value of |t| at two-sided
// significance level Alphas[i] for df degrees of freedom.
//
// df is rounded down and indexes the table directly; values above
// the tabulated maximum of 100 use the normal-approximation row.
// There is no interpolation between rows.
func CriticalValue(df float64, i int) float64 {
	d := int(math.Floor(df))
	if d < 1 {
		d = 1
	} else if d >= len(tTable) {
		d = 0
	}
	return tTable[d][i]
}
