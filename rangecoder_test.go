// Copyright 2021, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bcm

import (
	"bytes"
	"testing"

	"github.com/dsnet/bcm/internal/testutil"
)

func TestRangeCoderRoundTrip(t *testing.T) {
	rng := testutil.NewRand(0)

	// Bit sequences paired with arbitrary valid probabilities.
	numBits := 100000
	bits := make([]int, numBits)
	probs := make([]uint32, numBits)
	for i := range bits {
		bits[i] = rng.Intn(2)
		probs[i] = 1 + uint32(rng.Intn((1<<probLog)-1))
	}

	var buf bytes.Buffer
	enc := newRangeEncoder(&buf)
	for i, bit := range bits {
		enc.encodeBit(bit, probs[i], probLog)
	}
	enc.flush()

	dec := newRangeDecoder(bytes.NewReader(buf.Bytes()))
	for i := range bits {
		if got := dec.decodeBit(probs[i], probLog); got != bits[i] {
			t.Fatalf("bit %d: got %d, want %d", i, got, bits[i])
		}
	}
}

func TestRangeCoderUint32(t *testing.T) {
	rng := testutil.NewRand(1)

	vals := []uint32{0, 1, 0x7f, 0x80, 0xffff, 0x10000, 0xfffffffe, 0xffffffff}
	for i := 0; i < 100; i++ {
		vals = append(vals, uint32(rng.Int()))
	}

	var buf bytes.Buffer
	enc := newRangeEncoder(&buf)
	for _, v := range vals {
		enc.encodeUint32(v)
	}
	enc.flush()

	dec := newRangeDecoder(bytes.NewReader(buf.Bytes()))
	for i, v := range vals {
		if got := dec.decodeUint32(); got != v {
			t.Fatalf("value %d: got %#08x, want %#08x", i, got, v)
		}
	}
}

// Skewed probabilities must still round-trip: the interval never collapses
// because the zero branch is offset by one.
func TestRangeCoderSkewed(t *testing.T) {
	var buf bytes.Buffer
	enc := newRangeEncoder(&buf)
	for i := 0; i < 10000; i++ {
		enc.encodeBit(0, 1, probLog)
		enc.encodeBit(1, 1<<probLog-1, probLog)
	}
	enc.flush()

	dec := newRangeDecoder(bytes.NewReader(buf.Bytes()))
	for i := 0; i < 10000; i++ {
		if got := dec.decodeBit(1, probLog); got != 0 {
			t.Fatalf("pair %d: got 1, want 0", i)
		}
		if got := dec.decodeBit(1<<probLog-1, probLog); got != 1 {
			t.Fatalf("pair %d: got 0, want 1", i)
		}
	}
}
