// Copyright 2021, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package sais

// computeSA_int computes the suffix array of T, whose symbols are drawn
// from [0, K) and whose last symbol is the unique smallest sentinel 0.
// SA must have the same length as T.
func computeSA_int(T, SA []int, K int) {
	n := len(T)

	// Classify each suffix as S-type (true) or L-type (false).
	t := make([]bool, n)
	t[n-1] = true
	for i := n - 2; i >= 0; i-- {
		t[i] = T[i] < T[i+1] || (T[i] == T[i+1] && t[i+1])
	}

	bkt := make([]int, K)

	// Stage 1: drop the LMS suffixes into their bucket ends in text order
	// and induce a sort of the LMS substrings from them.
	for i := range SA {
		SA[i] = -1
	}
	bucketEnds(T, bkt)
	for i := 1; i < n; i++ {
		if isLMS(t, i) {
			bkt[T[i]]--
			SA[bkt[T[i]]] = i
		}
	}
	induce(T, SA, t, bkt)

	// Compact the now-sorted LMS suffixes into the front of SA.
	n1 := 0
	for i := 0; i < n; i++ {
		if isLMS(t, SA[i]) {
			SA[n1] = SA[i]
			n1++
		}
	}

	// Name each LMS substring by its rank; equal substrings share a name.
	// The names are stashed in the upper half of SA at pos/2, which cannot
	// collide since LMS positions are at least two apart.
	for i := n1; i < n; i++ {
		SA[i] = -1
	}
	name, prev := 0, -1
	for i := 0; i < n1; i++ {
		pos := SA[i]
		if prev < 0 || !lmsEqual(T, t, pos, prev) {
			name++
			prev = pos
		}
		SA[n1+pos/2] = name - 1
	}
	for i, j := n-1, n-1; i >= n1; i-- {
		if SA[i] >= 0 {
			SA[j] = SA[i]
			j--
		}
	}

	// s1 is the reduced text: the LMS substring names in text order. Its
	// last symbol is the name of the sentinel suffix, which is again the
	// unique smallest, so the recursion precondition holds.
	s1, SA1 := SA[n-n1:], SA[:n1]
	if name < n1 {
		computeSA_int(s1, SA1, name)
	} else {
		// All names are distinct, so the order is immediate.
		for i, c := range s1 {
			SA1[c] = i
		}
	}

	// Map the reduced suffix array back to LMS positions of T and induce
	// the final order from the sorted LMS suffixes.
	for i, j := 1, 0; i < n; i++ {
		if isLMS(t, i) {
			s1[j] = i
			j++
		}
	}
	for i := 0; i < n1; i++ {
		SA1[i] = s1[SA1[i]]
	}
	for i := n1; i < n; i++ {
		SA[i] = -1
	}
	bucketEnds(T, bkt)
	for i := n1 - 1; i >= 0; i-- {
		j := SA[i]
		SA[i] = -1
		bkt[T[j]]--
		SA[bkt[T[j]]] = j
	}
	induce(T, SA, t, bkt)
}

// isLMS reports whether the suffix at position i is leftmost S-type.
func isLMS(t []bool, i int) bool {
	return i > 0 && t[i] && !t[i-1]
}

// lmsEqual reports whether the LMS substrings at a and b are identical in
// both symbols and types.
func lmsEqual(T []int, t []bool, a, b int) bool {
	for i := 0; ; i++ {
		if T[a+i] != T[b+i] || t[a+i] != t[b+i] {
			return false
		}
		if i > 0 && (isLMS(t, a+i) || isLMS(t, b+i)) {
			return isLMS(t, a+i) && isLMS(t, b+i)
		}
	}
}

// bucketHeads fills bkt with the first index of each symbol's bucket.
func bucketHeads(T []int, bkt []int) {
	for i := range bkt {
		bkt[i] = 0
	}
	for _, c := range T {
		bkt[c]++
	}
	sum := 0
	for i, c := range bkt {
		bkt[i] = sum
		sum += c
	}
}

// bucketEnds fills bkt with one past the last index of each symbol's bucket.
func bucketEnds(T []int, bkt []int) {
	for i := range bkt {
		bkt[i] = 0
	}
	for _, c := range T {
		bkt[c]++
	}
	sum := 0
	for i, c := range bkt {
		sum += c
		bkt[i] = sum
	}
}

// induce derives the order of all L-type and S-type suffixes from the
// already-placed LMS suffixes.
func induce(T, SA []int, t []bool, bkt []int) {
	n := len(T)

	// Scan left to right, filling L-type suffixes from the bucket heads.
	bucketHeads(T, bkt)
	for i := 0; i < n; i++ {
		if j := SA[i] - 1; SA[i] > 0 && !t[j] {
			SA[bkt[T[j]]] = j
			bkt[T[j]]++
		}
	}

	// Scan right to left, filling S-type suffixes from the bucket ends.
	bucketEnds(T, bkt)
	for i := n - 1; i >= 0; i-- {
		if j := SA[i] - 1; SA[i] > 0 && t[j] {
			bkt[T[j]]--
			SA[bkt[T[j]]] = j
		}
	}
}
