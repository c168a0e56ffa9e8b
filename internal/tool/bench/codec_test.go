// Copyright 2021, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bench

import (
	"bytes"
	"fmt"
	"io"
	"testing"

	"github.com/dsnet/bcm/internal/testutil"
)

// TestCodecs tests that the output of each registered encoder is a valid
// input for each registered decoder of the same format. This test runs in
// O(n^2) where n is the number of registered codecs per format.
func TestCodecs(t *testing.T) {
	rng := testutil.NewRand(0)
	datasets := map[string][]byte{
		"Random": rng.Bytes(1 << 17),
		"Zeros":  make([]byte, 1<<17),
		"Text":   testutil.ResizeData([]byte("the quick brown fox jumped over the lazy dog. "), 1<<17),
	}

	for name, dd := range datasets {
		dd := dd
		t.Run(fmt.Sprintf("Data:%v", name), func(t *testing.T) { testFormats(t, dd) })
	}
}

func testFormats(t *testing.T, dd []byte) {
	t.Parallel()
	formats := []int{FormatBCM, FormatFlate, FormatBZ2, FormatXZ}
	for _, ft := range formats {
		if len(Encoders[ft]) == 0 || len(Decoders[ft]) == 0 {
			continue
		}
		ft := ft
		t.Run(fmt.Sprintf("Format:%v", ft), func(t *testing.T) { testEncoders(t, ft, dd) })
	}
}

func testEncoders(t *testing.T, ft int, dd []byte) {
	t.Parallel()
	const level = 1 // Modest level keeps every encoder in range
	for encName := range Encoders[ft] {
		encName := encName
		t.Run(fmt.Sprintf("Encoder:%v", encName), func(t *testing.T) {
			be := new(bytes.Buffer)
			zw := Encoders[ft][encName](be, level)
			if _, err := io.Copy(zw, bytes.NewReader(dd)); err != nil {
				t.Fatalf("unexpected Write error: %v", err)
			}
			if err := zw.Close(); err != nil {
				t.Fatalf("unexpected Close error: %v", err)
			}
			testDecoders(t, ft, dd, be.Bytes())
		})
	}
}

func testDecoders(t *testing.T, ft int, dd, de []byte) {
	for decName := range Decoders[ft] {
		decName := decName
		t.Run(fmt.Sprintf("Decoder:%v", decName), func(t *testing.T) {
			zr := Decoders[ft][decName](bytes.NewReader(de))
			b, err := io.ReadAll(zr)
			if err != nil {
				t.Fatalf("unexpected Read error: %v", err)
			}
			if err := zr.Close(); err != nil {
				t.Fatalf("unexpected Close error: %v", err)
			}
			if !bytes.Equal(b, dd) {
				t.Errorf("decoded output mismatch (got %d bytes, want %d)", len(b), len(dd))
			}
		})
	}
}
