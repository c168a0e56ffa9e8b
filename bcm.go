// Copyright 2021, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package bcm implements the BCM compressed data format.
//
// BCM is a block-sorting format in the lineage of bzip2: the input is cut
// into large blocks, each block is permuted by the Burrows-Wheeler
// transform, and the permuted bytes are coded bit-by-bit by a binary range
// coder whose probabilities come from a small context-mixing model with a
// secondary estimator. A CRC-32 of the uncompressed stream is carried in
// the trailer.
//
// The model, the coder, and the checksum run continuously across block
// boundaries; this is part of the wire format and the reason streams
// cannot be decoded from the middle.
package bcm

import "runtime"

const (
	// hdrMagic is the stream magic "BCM!". It is stored in byte order
	// 0x42 0x43 0x4D 0x21 ahead of the range-coded stream.
	hdrMagic uint32 = 0x214D4342

	// defaultBlockSize is used when WriterConfig.BlockSize is zero.
	defaultBlockSize = 1 << 24 // 16 MiB

	// maxBlockSize bounds the per-block length a stream may declare.
	// Lengths beyond this cannot be produced by any valid encoder, whose
	// block size must fit a 32-bit signed count.
	maxBlockSize = 1<<31 - 1
)

// Error is the wrapper type for errors specific to this library.
type Error string

func (e Error) Error() string { return "bcm: " + string(e) }

var (
	ErrHeader   error = Error("not in bcm format")
	ErrCorrupt  error = Error("corrupt input")
	ErrChecksum error = Error("checksum error")

	errInvalidConfig error = Error("invalid configuration")
)

func errRecover(err *error) {
	switch ex := recover().(type) {
	case nil:
		// Do nothing.
	case runtime.Error:
		panic(ex)
	case error:
		*err = ex
	default:
		panic(ex)
	}
}
