// Copyright 2021, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build ignore
// +build ignore

// Benchmark tool to compare the BCM implementation against other
// compression implementations. Individual implementations are referred to
// as codecs.
//
// Example usage:
//	$ go build -o benchmark main.go
//	$ ./benchmark \
//		-formats bcm             \
//		-tests   encRate,ratio   \
//		-codecs  bcm             \
//		-files   twain.txt       \
//		-levels  1,16            \
//		-sizes   1e5,1e6
package main

import (
	"flag"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/dsnet/bcm/internal/tool/bench"
)

const (
	defaultLevels = "1,16"
	defaultSizes  = "1e5,1e6"
)

// The decompression speed benchmark works by decompressing some
// pre-compressed data, generated by the first available encoder for the
// format.
var encRefs = []string{"bcm", "std", "ds", "kp", "xz"}

var (
	fmtToEnum = map[string]int{
		"bcm": bench.FormatBCM,
		"fl":  bench.FormatFlate,
		"bz2": bench.FormatBZ2,
		"xz":  bench.FormatXZ,
	}
	enumToFmt = map[int]string{
		bench.FormatBCM:   "bcm",
		bench.FormatFlate: "fl",
		bench.FormatBZ2:   "bz2",
		bench.FormatXZ:    "xz",
	}
	testToEnum = map[string]int{
		"encRate": bench.TestEncodeRate,
		"decRate": bench.TestDecodeRate,
		"ratio":   bench.TestCompressRatio,
	}
	enumToTest = map[int]string{
		bench.TestEncodeRate:    "encRate",
		bench.TestDecodeRate:    "decRate",
		bench.TestCompressRatio: "ratio",
	}
)

func defaultTests() string {
	var d []int
	for k := range enumToTest {
		d = append(d, k)
	}
	sort.Ints(d)
	var s []string
	for _, v := range d {
		s = append(s, enumToTest[v])
	}
	return strings.Join(s, ",")
}

func defaultFormats() string {
	var d []int
	for k := range enumToFmt {
		d = append(d, k)
	}
	sort.Ints(d)
	var s []string
	for _, v := range d {
		s = append(s, enumToFmt[v])
	}
	return strings.Join(s, ",")
}

func defaultCodecs() string {
	seen := make(map[string]bool)
	var s []string
	for _, cs := range bench.Encoders {
		for c := range cs {
			if !seen[c] {
				seen[c] = true
				s = append(s, c)
			}
		}
	}
	for _, cs := range bench.Decoders {
		for c := range cs {
			if !seen[c] {
				seen[c] = true
				s = append(s, c)
			}
		}
	}
	sort.Strings(s)
	return strings.Join(s, ",")
}

func main() {
	formats := flag.String("formats", defaultFormats(), "List of formats to benchmark")
	tests := flag.String("tests", defaultTests(), "List of tests to run")
	codecs := flag.String("codecs", defaultCodecs(), "List of codecs to benchmark")
	files := flag.String("files", "twain.txt", "List of input files")
	paths := flag.String("paths", "testdata", "List of search paths for input files")
	levels := flag.String("levels", defaultLevels, "List of compression levels")
	sizes := flag.String("sizes", defaultSizes, "List of input sizes")
	flag.Parse()

	bench.Paths = strings.Split(*paths, ",")

	var lvls, szs []int
	for _, s := range strings.Split(*levels, ",") {
		v, err := strconv.Atoi(s)
		if err != nil {
			panic(err)
		}
		lvls = append(lvls, v)
	}
	for _, s := range strings.Split(*sizes, ",") {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			panic(err)
		}
		szs = append(szs, int(v))
	}

	start := time.Now()
	for _, f := range strings.Split(*formats, ",") {
		ft, ok := fmtToEnum[f]
		if !ok {
			panic(fmt.Sprintf("unknown format: %q", f))
		}
		var cs []string
		for _, c := range strings.Split(*codecs, ",") {
			if bench.Encoders[ft][c] != nil || bench.Decoders[ft][c] != nil {
				cs = append(cs, c)
			}
		}
		if len(cs) == 0 {
			continue
		}
		for _, ts := range strings.Split(*tests, ",") {
			tt, ok := testToEnum[ts]
			if !ok {
				panic(fmt.Sprintf("unknown test: %q", ts))
			}
			runBenchmark(ft, tt, cs, strings.Split(*files, ","), lvls, szs)
		}
	}
	fmt.Printf("\nRUNTIME: %v\n", time.Since(start))
}

func runBenchmark(ft, tt int, codecs, files []string, levels, sizes []int) {
	fmt.Printf("BENCHMARK: %s:%s\n", enumToFmt[ft], enumToTest[tt])

	var results [][]bench.Result
	var names []string
	tick := func() { fmt.Print(".") }
	switch tt {
	case bench.TestEncodeRate:
		var encs []string
		for _, c := range codecs {
			if bench.Encoders[ft][c] != nil {
				encs = append(encs, c)
			}
		}
		results, names = bench.BenchmarkEncoderSuite(ft, encs, files, levels, sizes, tick)
		codecs = encs
	case bench.TestDecodeRate:
		var decs []string
		for _, c := range codecs {
			if bench.Decoders[ft][c] != nil {
				decs = append(decs, c)
			}
		}
		var ref bench.Encoder
		for _, c := range encRefs {
			if bench.Encoders[ft][c] != nil {
				ref = bench.Encoders[ft][c]
				break
			}
		}
		if ref == nil {
			fmt.Println("\tno reference encoder available")
			return
		}
		results, names = bench.BenchmarkDecoderSuite(ft, decs, files, levels, sizes, ref, tick)
		codecs = decs
	case bench.TestCompressRatio:
		var encs []string
		for _, c := range codecs {
			if bench.Encoders[ft][c] != nil {
				encs = append(encs, c)
			}
		}
		results, names = bench.BenchmarkRatioSuite(ft, encs, files, levels, sizes, tick)
		codecs = encs
	}
	fmt.Println()

	// Print a table of the results.
	unit := " MB/s"
	if tt == bench.TestCompressRatio {
		unit = "x"
	}
	fmt.Printf("\t%-22s", "benchmark")
	for _, c := range codecs {
		fmt.Printf("%10s%s  %-6s", c, unit, "delta")
	}
	fmt.Println()
	for i, row := range results {
		fmt.Printf("\t%-22s", names[i])
		for _, r := range row {
			if math.IsNaN(r.R) || math.IsInf(r.D, 0) {
				fmt.Printf("%10s   %-6s", "-", "-")
				continue
			}
			fmt.Printf("%10.2f   %-6s", r.R, fmt.Sprintf("%0.2fx", r.D))
		}
		fmt.Println()
	}
	fmt.Println()
}
