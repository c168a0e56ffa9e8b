// Copyright 2021, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bcm

// The forward Burrows-Wheeler transform is computed through a suffix array
// (see internal/sais). The convention is that of an implicit sentinel:
// conceptually the block is terminated by a unique smallest symbol, the
// rotations are sorted, and the transform is the last column with the
// sentinel's row removed. The primary index is the 1-based row at which
// that removal happened; the inverse applies the matching correction when
// building its mapping.
//
// References:
//	https://sites.google.com/site/yuta256/sais
//	https://www.quora.com/How-can-I-optimize-burrows-wheeler-transform-and-inverse-transform-to-work-in-O-n-time-O-n-space

import "github.com/dsnet/bcm/internal/sais"

type burrowsWheelerTransform struct {
	// Scratch buffers, grown once and reused for every block.
	t   []byte // copy of the input block
	sa  []int  // suffix array of t
	ptr []int  // inverse transform mapping
}

// Encode overwrites buf with its Burrows-Wheeler transform and returns the
// primary index idx, with 1 <= idx <= len(buf). A return value below 1
// means the transform failed; this cannot happen for a non-empty block.
func (bwt *burrowsWheelerTransform) Encode(buf []byte) (idx int) {
	n := len(buf)
	if n == 0 {
		return 0
	}
	if cap(bwt.t) < n {
		bwt.t = make([]byte, n)
		bwt.sa = make([]int, n)
	}
	t, sa := bwt.t[:n], bwt.sa[:n]
	copy(t, buf)
	sais.ComputeSA(t, sa)

	// The first output row is the rotation starting with the sentinel,
	// whose last column is the final byte of the block. The remaining rows
	// follow suffix order, skipping the original block itself, whose row
	// number becomes the primary index.
	buf[0] = t[n-1]
	j := 1
	for i, p := range sa {
		if p == 0 {
			idx = i + 1
			continue
		}
		buf[j] = t[p-1]
		j++
	}
	return idx
}

// Decode reverses Encode, overwriting buf in place given the primary index
// reported by the forward transform.
func (bwt *burrowsWheelerTransform) Decode(buf []byte, idx int) {
	n := len(buf)
	if n == 0 {
		return
	}
	if cap(bwt.ptr) < n {
		bwt.ptr = make([]int, n)
	}
	ptr := bwt.ptr[:n]

	// cnt[c] becomes the first row whose first column is byte c.
	var cnt [257]int
	for _, c := range buf {
		cnt[int(c)+1]++
	}
	for i := 1; i < 256; i++ {
		cnt[i] += cnt[i-1]
	}

	// Build the mapping from each row to the row holding the next byte of
	// the block. Rows before the primary index are shifted down by
	// one to account for the removed sentinel row.
	for i, c := range buf {
		p := i
		if i < idx {
			p--
		}
		ptr[cnt[c]] = p
		cnt[c]++
	}

	// Walk the mapping, recovering one byte per row. Each bucket of cnt
	// now holds its end offset, so the byte at row p is the smallest c with
	// cnt[c] > p, found by an 8-level binary search. The transformed
	// bytes were fully consumed into cnt and ptr, so buf can be rewritten
	// as the walk proceeds.
	p := idx - 1
	for i := range buf {
		c := 0
		for half := 128; half > 0; half >>= 1 {
			if cnt[c+half-1] <= p {
				c += half
			}
		}
		buf[i] = byte(c)
		p = ptr[p]
	}
}
