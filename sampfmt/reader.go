// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sampfmt reads numeric sample files and writes sampstat's
// report formats.
//
// A sample file is a sequence of lines, one finite decimal value per
// line. Blank lines are skipped. In lax mode, lines that do not
// parse as a number are skipped as well, which makes it easy to feed
// in lightly annotated tool output.
//
// The report writer emits the machine-parseable key-value format:
// one "key: value" pair per line with keys in lexicographic order,
// records separated by a blank line. The key sets are a stable
// contract used for golden-file comparison and must not be renamed.
package sampfmt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/sampstat/sampstat/sampmath"
)

// A Reader reads newline-separated float64 values.
//
// Its API is modeled on bufio.Scanner: Scan advances to the next
// value and Value retrieves it. The zero value of the Reader is a
// valid Reader, but the user must call Reset before using it.
type Reader struct {
	s        *bufio.Scanner
	fileName string
	lineNum  int
	err      error // current I/O error

	// Lax, if set before scanning, skips lines that do not parse
	// as a number instead of reporting them as syntax errors.
	Lax bool

	value    float64
	valueErr error
}

// SyntaxError represents a malformed line of a sample file.
type SyntaxError struct {
	FileName string
	Line     int
	Msg      string
}

func (s *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d: %s", s.FileName, s.Line, s.Msg)
}

var noValue = errors.New("Reader.Scan has not been called")

// NewReader constructs a reader of sample values from r. fileName is
// used in error messages; it is purely diagnostic.
func NewReader(r io.Reader, fileName string) *Reader {
	reader := new(Reader)
	reader.Reset(r, fileName)
	return reader
}

// Reset resets the reader to begin reading from a new input.
func (r *Reader) Reset(ior io.Reader, fileName string) {
	r.s = bufio.NewScanner(ior)
	if fileName == "" {
		fileName = "<unknown>"
	}
	r.fileName = fileName
	r.lineNum = 0
	r.err = nil
	r.valueErr = noValue
}

// Scan advances the reader to the next value and returns true if a
// value was read. The caller should use the Value method to get the
// value. If an I/O error occurs, or this reaches the end of the
// input, it returns false and the caller should use the Err method
// to check for errors.
func (r *Reader) Scan() bool {
	if r.err != nil {
		return false
	}

	for r.s.Scan() {
		r.lineNum++
		line := strings.TrimSpace(r.s.Text())
		if line == "" {
			continue
		}
		v, err := strconv.ParseFloat(line, 64)
		switch {
		case err != nil:
			if r.Lax {
				continue
			}
			r.valueErr = r.syntaxErrorf("not a number: %q", line)
		case math.IsNaN(v) || math.IsInf(v, 0):
			// Lax mode skips what it can't use; a parsed but
			// non-finite value is never usable.
			if r.Lax {
				continue
			}
			r.valueErr = r.syntaxErrorf("non-finite value: %q", line)
		default:
			r.value, r.valueErr = v, nil
		}
		return true
	}

	r.err = r.s.Err()
	return false
}

// Value returns the last value read, or an error if the line was
// malformed. Syntax errors are non-fatal, so the caller can continue
// to call Scan.
func (r *Reader) Value() (float64, error) {
	return r.value, r.valueErr
}

// Err returns the first I/O error that was encountered by the
// Reader.
func (r *Reader) Err() error {
	return r.err
}

func (r *Reader) syntaxErrorf(format string, args ...interface{}) *SyntaxError {
	return &SyntaxError{r.fileName, r.lineNum, fmt.Sprintf(format, args...)}
}

// ReadSample reads an entire sample from ior. fileName is purely
// diagnostic. In strict mode the first malformed line fails the
// whole read.
func ReadSample(ior io.Reader, fileName string, lax bool) (*sampmath.Sample, error) {
	r := NewReader(ior, fileName)
	r.Lax = lax
	var xs []float64
	for r.Scan() {
		v, err := r.Value()
		if err != nil {
			return nil, err
		}
		xs = append(xs, v)
	}
	if err := r.Err(); err != nil {
		return nil, err
	}
	s, err := sampmath.NewSample(xs)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fileName, err)
	}
	return s, nil
}
