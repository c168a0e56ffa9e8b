// Copyright 2021, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bcm

import (
	"bytes"
	"testing"

	"github.com/dsnet/bcm/internal/testutil"
)

// TestModelRoundTrip drives the context model and range coder together,
// without the transform, over data with both long runs and noise so that
// both SSE tables are exercised.
func TestModelRoundTrip(t *testing.T) {
	rng := testutil.NewRand(0)
	var data []byte
	data = append(data, bytes.Repeat([]byte{0x00}, 4096)...)
	data = append(data, rng.Bytes(4096)...)
	data = append(data, bytes.Repeat([]byte{0xff}, 4096)...)
	data = append(data, testutil.ResizeData([]byte("abbcccddddeeeee"), 4096)...)

	var buf bytes.Buffer
	enc := newRangeEncoder(&buf)
	var em model
	em.init()
	for _, c := range data {
		em.encodeByte(enc, c)
	}
	enc.flush()

	dec := newRangeDecoder(bytes.NewReader(buf.Bytes()))
	var dm model
	dm.init()
	for i, c := range data {
		if got := dm.decodeByte(dec); got != c {
			t.Fatalf("byte %d: got %#02x, want %#02x", i, got, c)
		}
	}

	// Encoder and decoder must agree on the trailing model state.
	if dm.c1 != em.c1 || dm.c2 != em.c2 || dm.run != em.run {
		t.Errorf("history mismatch: got (%d, %d, %d), want (%d, %d, %d)",
			dm.c1, dm.c2, dm.run, em.c1, em.c2, em.run)
	}
}

func TestModelInit(t *testing.T) {
	var m model
	m.init()

	if m.counter0[1] != counterInit {
		t.Errorf("counter0 init: got %#04x, want %#04x", m.counter0[1], counterInit)
	}
	if m.counter1[0xab][1] != counterInit {
		t.Errorf("counter1 init: got %#04x, want %#04x", m.counter1[0xab][1], counterInit)
	}
	for k := 0; k < 16; k++ {
		if got := m.counter2[0][1][k]; got != counter(k<<12) {
			t.Errorf("counter2 init [%d]: got %#04x, want %#04x", k, got, k<<12)
		}
	}
	// The top SSE entry saturates instead of wrapping.
	if got := m.counter2[1][255][16]; got != 0xffff {
		t.Errorf("counter2 init [16]: got %#04x, want 0xffff", got)
	}
}
