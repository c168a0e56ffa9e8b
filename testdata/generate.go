// Copyright 2021, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build ignore
// +build ignore

// Generates sample inputs for the benchmark tool. Each file stresses a
// different side of a block-sorting compressor: long single-byte runs,
// repeated phrases that cluster under the transform, and incompressible
// noise that bounds the worst case.
package main

import (
	"bytes"
	"math/rand"
	"os"
)

const size = 1 << 20

func main() {
	r := rand.New(rand.NewSource(0))

	// runs.bin: long runs of few distinct bytes.
	var runs bytes.Buffer
	for runs.Len() < size {
		c := byte(r.Int() % 4)
		n := 1 << (4 + r.Int()%10)
		runs.Write(bytes.Repeat([]byte{c}, n))
	}
	mustWrite("runs.bin", runs.Bytes()[:size])

	// text.bin: repeated phrases with light mutation.
	phrases := []string{
		"the quick brown fox jumped over the lazy dog. ",
		"she sells sea shells by the sea shore. ",
		"peter piper picked a peck of pickled peppers. ",
	}
	var text bytes.Buffer
	for text.Len() < size {
		s := phrases[r.Int()%len(phrases)]
		if r.Int()%16 == 0 {
			s = s[:len(s)/2]
		}
		text.WriteString(s)
	}
	mustWrite("text.bin", text.Bytes()[:size])

	// random.bin: incompressible noise.
	noise := make([]byte, size)
	r.Read(noise)
	mustWrite("random.bin", noise)
}

func mustWrite(name string, b []byte) {
	if err := os.WriteFile(name, b, 0664); err != nil {
		panic(err)
	}
}
