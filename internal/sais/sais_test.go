// Copyright 2021, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package sais

import (
	"bytes"
	"sort"
	"testing"

	"github.com/dsnet/bcm/internal/testutil"
)

// naiveSA computes the suffix array by direct comparison sorting.
func naiveSA(T []byte) []int {
	sa := make([]int, len(T))
	for i := range sa {
		sa[i] = i
	}
	sort.Slice(sa, func(i, j int) bool {
		return bytes.Compare(T[sa[i]:], T[sa[j]:]) < 0
	})
	return sa
}

func TestComputeSA(t *testing.T) {
	var vectors = [][]byte{
		[]byte(""),
		[]byte("a"),
		[]byte("ba"),
		[]byte("aa"),
		[]byte("banana"),
		[]byte("abracadabra"),
		[]byte("mississippi"),
		[]byte("aaaaaaaaaaaaaaaa"),
		[]byte("yabbadabbadoo"),
		[]byte("SIX.MIXED.PIXIES.SIFT.SIXTY.PIXIE.DUST.BOXES"),
	}

	rng := testutil.NewRand(0)
	for _, n := range []int{2, 3, 7, 64, 256, 1000} {
		vectors = append(vectors, rng.Bytes(n))

		// Small alphabets force deep recursion.
		b := rng.Bytes(n)
		for i := range b {
			b[i] &= 0x03
		}
		vectors = append(vectors, b)

		b = rng.Bytes(n)
		for i := range b {
			b[i] &= 0x01
		}
		vectors = append(vectors, b)
	}

	for i, v := range vectors {
		want := naiveSA(v)
		got := make([]int, len(v))
		ComputeSA(v, got)
		for j := range want {
			if got[j] != want[j] {
				t.Errorf("test %d (length %d), SA[%d]: got %d, want %d", i, len(v), j, got[j], want[j])
				break
			}
		}
	}
}
