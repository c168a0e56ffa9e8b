// Copyright 2021, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build gofuzz
// +build gofuzz

package bcm

import (
	"bytes"
	"io"

	"github.com/dsnet/bcm"
)

func Fuzz(data []byte) int {
	ok := testDecoder(data)
	for _, bsize := range []int{1, 64, 1 << 16} {
		testRoundTrip(data, bsize)
	}
	if ok {
		return 1 // Favor valid inputs
	}
	return 0
}

// testDecoder decodes the input as a BCM stream. Decoding errors are
// expected on arbitrary inputs; panics and hangs are not.
func testDecoder(data []byte) bool {
	zr, err := bcm.NewReader(bytes.NewReader(data), nil)
	if err != nil {
		panic(err)
	}
	_, err = io.Copy(io.Discard, zr)
	if err != nil {
		return false
	}
	if err := zr.Close(); err != nil {
		panic(err)
	}
	return true
}

// testRoundTrip compresses and decompresses the input, checking that the
// output matches exactly.
func testRoundTrip(data []byte, bsize int) {
	bb := new(bytes.Buffer)
	zw, err := bcm.NewWriter(bb, &bcm.WriterConfig{BlockSize: bsize})
	if err != nil {
		panic(err)
	}
	if _, err := zw.Write(data); err != nil {
		panic(err)
	}
	if err := zw.Close(); err != nil {
		panic(err)
	}

	zr, err := bcm.NewReader(bb, nil)
	if err != nil {
		panic(err)
	}
	b, err := io.ReadAll(zr)
	if err != nil {
		panic(err)
	}
	if err := zr.Close(); err != nil {
		panic(err)
	}
	if !bytes.Equal(b, data) {
		panic("mismatching bytes")
	}
}
