// Copyright 2021, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bcm

// The range coder is a binary arithmetic coder over the 32-bit interval
// [low, high]. Whenever the top bytes of low and high agree, that byte is
// settled and shifted out. The +1 offset applied to low when coding a zero
// bit keeps the interval from collapsing, so there is no separate carry or
// follow-bit machinery.
//
// Probabilities are supplied by the caller as p/2^plog fractions. The model
// uses plog=18; the fixed-probability 32-bit helpers use plog=1 with p=1,
// splitting the interval at its midpoint.

import "io"

type rangeEncoder struct {
	w    io.ByteWriter
	low  uint32
	high uint32
}

func newRangeEncoder(w io.ByteWriter) *rangeEncoder {
	return &rangeEncoder{w: w, high: 0xffffffff}
}

// encodeBit codes a single bit whose probability of being set is p/2^plog.
// The probability must satisfy 0 < p < 1<<plog.
func (rc *rangeEncoder) encodeBit(bit int, p uint32, plog uint) {
	mid := rc.low + uint32(uint64(rc.high-rc.low)*uint64(p)>>plog)
	if bit != 0 {
		rc.high = mid
	} else {
		rc.low = mid + 1
	}

	// Renormalize.
	for rc.low^rc.high < 1<<24 {
		rc.writeByte(byte(rc.low >> 24))
		rc.low <<= 8
		rc.high = rc.high<<8 | 0xff
	}
}

// encodeUint32 codes the 32 bits of x MSB-first at probability 0.5.
func (rc *rangeEncoder) encodeUint32(x uint32) {
	for i := uint32(1 << 31); i > 0; i >>= 1 {
		var bit int
		if x&i != 0 {
			bit = 1
		}
		rc.encodeBit(bit, 1, 1)
	}
}

// flush settles the interval by emitting the four bytes of low. It must be
// called exactly once, after the last bit.
func (rc *rangeEncoder) flush() {
	for i := 0; i < 4; i++ {
		rc.writeByte(byte(rc.low >> 24))
		rc.low <<= 8
	}
}

func (rc *rangeEncoder) writeByte(c byte) {
	if err := rc.w.WriteByte(c); err != nil {
		panic(err)
	}
}

type rangeDecoder struct {
	r    io.ByteReader
	low  uint32
	high uint32
	code uint32
}

// newRangeDecoder initializes the decoder by reading the first four bytes
// of the coded stream into code.
func newRangeDecoder(r io.ByteReader) *rangeDecoder {
	rc := &rangeDecoder{r: r, high: 0xffffffff}
	for i := 0; i < 4; i++ {
		rc.code = rc.code<<8 | uint32(rc.readByte())
	}
	return rc
}

// decodeBit mirrors encodeBit, pulling a byte from the input for every byte
// the encoder shifted out.
func (rc *rangeDecoder) decodeBit(p uint32, plog uint) int {
	mid := rc.low + uint32(uint64(rc.high-rc.low)*uint64(p)>>plog)
	var bit int
	if rc.code <= mid {
		bit = 1
		rc.high = mid
	} else {
		rc.low = mid + 1
	}

	// Renormalize.
	for rc.low^rc.high < 1<<24 {
		rc.low <<= 8
		rc.high = rc.high<<8 | 0xff
		rc.code = rc.code<<8 | uint32(rc.readByte())
	}
	return bit
}

func (rc *rangeDecoder) decodeUint32() uint32 {
	var x uint32
	for i := 0; i < 32; i++ {
		x = x<<1 | uint32(rc.decodeBit(1, 1))
	}
	return x
}

func (rc *rangeDecoder) readByte() byte {
	c, err := rc.r.ReadByte()
	if err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		panic(err)
	}
	return c
}
