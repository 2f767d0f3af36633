// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sampfmt

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/sampstat/sampstat/sampmath"
)

// A Writer writes the machine-parseable key-value report format.
//
// Within a record, keys are emitted in lexicographic order; records
// are separated by a single blank line. Floats use the shortest
// representation that round-trips, so identical computations produce
// byte-identical reports.
type Writer struct {
	w     io.Writer
	buf   bytes.Buffer
	first bool
}

// NewWriter returns a writer that writes reports to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w, first: true}
}

// WriteSummary writes a summary record. Its keys are, in order:
// lower_quartile, max, mean, median, min, n, sem, std,
// upper_quartile, var.
func (w *Writer) WriteSummary(s *sampmath.Summary) error {
	w.startRecord()
	w.pair("lower_quartile", s.LowerQuartile)
	w.pair("max", s.Max)
	w.pair("mean", s.Mean)
	w.pair("median", s.Median)
	w.pair("min", s.Min)
	fmt.Fprintf(&w.buf, "n: %d\n", s.N)
	w.pair("sem", s.SEM)
	w.pair("std", s.Std)
	w.pair("upper_quartile", s.UpperQuartile)
	w.pair("var", s.Var)
	return w.flush()
}

// WriteTTest writes a comparison record for the two sources named
// src1 and src2. Its keys are: p, src1, src2, t. The p key carries
// the verdict bound: the smallest tested significance level at which
// the means differ, or 1 when they are not distinguishable at any
// tested level.
func (w *Writer) WriteTTest(src1, src2 string, r *sampmath.TTestResult) error {
	w.startRecord()
	w.pair("p", r.Alpha)
	fmt.Fprintf(&w.buf, "src1: %s\n", src1)
	fmt.Fprintf(&w.buf, "src2: %s\n", src2)
	w.pair("t", r.T)
	return w.flush()
}

// WriteRegression writes a regression record. Its keys are:
// intercept, p, r, se, slope.
func (w *Writer) WriteRegression(r *sampmath.RegressionResult) error {
	w.startRecord()
	w.pair("intercept", r.Intercept)
	w.pair("p", r.P)
	w.pair("r", r.R)
	w.pair("se", r.StdErr)
	w.pair("slope", r.Slope)
	return w.flush()
}

func (w *Writer) startRecord() {
	if !w.first {
		w.buf.WriteByte('\n')
	}
	w.first = false
}

func (w *Writer) pair(key string, v float64) {
	w.buf.WriteString(key)
	w.buf.WriteString(": ")
	w.buf.Write(strconv.AppendFloat(nil, v, 'g', -1, 64))
	w.buf.WriteByte('\n')
}

// flush writes the buffer out to the io.Writer. Writes to the buffer
// can't fail, so this is the only error path.
func (w *Writer) flush() error {
	_, err := w.w.Write(w.buf.Bytes())
	w.buf.Reset()
	return err
}
