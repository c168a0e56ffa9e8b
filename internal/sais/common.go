// Copyright 2021, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package sais implements a linear time suffix array algorithm.
package sais

// This package implements the Suffix Array by Induced Sorting (SA-IS)
// methodology by Nong, Zhang, and Chan. The byte entry point promotes the
// text to an integer alphabet with a unique smallest sentinel appended;
// the recursion in sais.go then operates on integer texts only.
//
// References:
//	https://sites.google.com/site/yuta256/sais
//	https://ge-nong.googlecode.com/files/Two%20Efficient%20Algorithms%20for%20Linear%20Time%20Suffix%20Array%20Construction.pdf

// ComputeSA computes the suffix array of T and places the result in SA.
// Both T and SA must be the same length.
func ComputeSA(T []byte, SA []int) {
	if len(SA) != len(T) {
		panic("mismatching sizes")
	}
	if len(T) == 0 {
		return
	}

	s := make([]int, len(T)+1)
	for i, c := range T {
		s[i] = int(c) + 1
	}
	s[len(T)] = 0 // unique sentinel, smallest symbol

	sa := make([]int, len(s))
	computeSA_int(s, sa, 257)
	copy(SA, sa[1:]) // drop the sentinel suffix
}
