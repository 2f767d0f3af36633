// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command sampgen generates random sample files and matching golden
// key-value output for exercising sampstat. Generation is
// deterministic for a given seed, so regenerated fixtures are
// byte-for-byte stable.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strconv"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/sampstat/sampstat/sampfmt"
	"github.com/sampstat/sampstat/sampmath"
)

func main() {
	log.SetPrefix("")
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), `Usage: %s [flags]

sampgen writes sample1.txt..sampleN.txt, one random value per line,
plus a samples.golden file holding the key-value records sampstat -kv
should produce for them. With exactly two samples the golden file
also includes the comparison record.
`, os.Args[0])
		flag.PrintDefaults()
	}
	seed := flag.Uint64("seed", 1, "PRNG seed")
	count := flag.Int("count", 2, "number of sample files")
	length := flag.Int("len", 30, "values per sample file")
	mean := flag.Float64("mean", 100, "distribution mean (midpoint with -uniform)")
	stddev := flag.Float64("stddev", 10, "distribution standard deviation (half-width with -uniform)")
	uniform := flag.Bool("uniform", false, "draw from a uniform instead of a normal distribution")
	dir := flag.String("dir", ".", "output directory")
	flag.Parse()
	if flag.NArg() > 0 {
		flag.Usage()
		os.Exit(2)
	}
	if *count < 1 || *length < 1 {
		log.Fatal("-count and -len must be positive")
	}

	src := rand.NewPCG(*seed, *seed)
	var draw func() float64
	if *uniform {
		d := distuv.Uniform{Min: *mean - *stddev, Max: *mean + *stddev, Src: src}
		draw = d.Rand
	} else {
		d := distuv.Normal{Mu: *mean, Sigma: *stddev, Src: src}
		draw = d.Rand
	}

	var (
		golden  bytes.Buffer
		w       = sampfmt.NewWriter(&golden)
		samples []*sampmath.Sample
	)
	for i := 0; i < *count; i++ {
		var buf bytes.Buffer
		xs := make([]float64, *length)
		for j := range xs {
			xs[j] = draw()
			buf.Write(strconv.AppendFloat(nil, xs[j], 'g', -1, 64))
			buf.WriteByte('\n')
		}
		name := filepath.Join(*dir, fmt.Sprintf("sample%d.txt", i+1))
		if err := os.WriteFile(name, buf.Bytes(), 0666); err != nil {
			log.Fatal(err)
		}

		s, err := sampmath.NewSample(xs)
		if err != nil {
			log.Fatal(err)
		}
		samples = append(samples, s)
		if err := w.WriteSummary(sampmath.Summarize(s)); err != nil {
			log.Fatal(err)
		}
	}
	if *count == 2 {
		r, err := sampmath.TwoSampleWelchTTest(samples[0], samples[1])
		if err != nil {
			log.Fatal(err)
		}
		if err := w.WriteTTest("sample1.txt", "sample2.txt", r); err != nil {
			log.Fatal(err)
		}
	}
	name := filepath.Join(*dir, "samples.golden")
	if err := os.WriteFile(name, golden.Bytes(), 0666); err != nil {
		log.Fatal(err)
	}
}
