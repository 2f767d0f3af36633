// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sampmath

import "testing"

// aeq returns true if expect and got are equal to 8 significant
// figures (1 part in 100 million).
func aeq(expect, got float64) bool {
	if expect < 0 && got < 0 {
		expect, got = -expect, -got
	}
	return expect*(1-1e-8) <= got && got <= expect*(1+1e-8)
}

func mustSample(t *testing.T, xs ...float64) *Sample {
	t.Helper()
	s, err := NewSample(xs)
	if err != nil {
		t.Fatalf("NewSample(%v): %v", xs, err)
	}
	return s
}
