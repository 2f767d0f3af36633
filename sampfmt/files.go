// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sampfmt

import (
	"os"

	"github.com/sampstat/sampstat/sampmath"
)

// Files reads one sample per input file from a sequence of files.
type Files struct {
	// Paths is the list of file names to read in.
	Paths []string

	// AllowStdin indicates that the path "-" should be treated as
	// stdin and if the file list is empty, it should be treated
	// as consisting of stdin.
	//
	// This is generally the desired behavior when the file list
	// comes from command-line flags.
	AllowStdin bool

	// Lax skips malformed lines instead of failing the file.
	Lax bool

	// pos is the position of the next file to read from in Paths.
	pos int

	path      string
	sample    *sampmath.Sample
	sampleErr error
	err       error
}

// Scan advances to the next file in the sequence and reads its
// sample, returning true if a file was read. The caller should use
// the Sample method to get the sample. If an I/O error occurs, or
// this reaches the end of the file sequence, it returns false and
// the caller should use the Err method to check for errors.
func (f *Files) Scan() bool {
	if f.err != nil {
		return false
	}

	var path string
	if f.AllowStdin && len(f.Paths) == 0 && f.pos == 0 {
		path = "-"
	} else if f.pos < len(f.Paths) {
		path = f.Paths[f.pos]
	} else {
		return false
	}
	f.pos++
	f.path = path

	if f.AllowStdin && path == "-" {
		f.path = "stdin"
		f.sample, f.sampleErr = ReadSample(os.Stdin, "stdin", f.Lax)
		return true
	}

	file, err := os.Open(path)
	if err != nil {
		f.err = err
		return false
	}
	defer file.Close()
	f.sample, f.sampleErr = ReadSample(file, path, f.Lax)
	return true
}

// Sample returns the last sample read, or an error if the file was
// malformed or its contents did not form a valid sample. Such errors
// are non-fatal, so the caller can skip the file and continue to
// call Scan.
func (f *Files) Sample() (*sampmath.Sample, error) {
	return f.sample, f.sampleErr
}

// Path returns the name of the file the last sample was read from,
// or "stdin".
func (f *Files) Path() string {
	return f.path
}

// Err returns the first I/O error that was encountered by the Files.
func (f *Files) Err() error {
	return f.err
}
