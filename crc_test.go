// Copyright 2021, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bcm

import "testing"

func TestCRC(t *testing.T) {
	var vectors = []struct {
		input string
		want  uint32
	}{
		{"", 0x00000000},
		{"a", 0xe8b7be43},
		{"123456789", 0xcbf43926},
		{"The quick brown fox jumps over the lazy dog", 0x414fa339},
	}

	for i, v := range vectors {
		var c crc
		c.update([]byte(v.input))
		if c.value() != v.want {
			t.Errorf("test %d, checksum mismatch: got %#08x, want %#08x", i, c.value(), v.want)
		}

		// Feeding the same bytes in pieces must not change the result.
		var c2 crc
		for j := range v.input {
			c2.update([]byte{v.input[j]})
		}
		if c2.value() != v.want {
			t.Errorf("test %d, split checksum mismatch: got %#08x, want %#08x", i, c2.value(), v.want)
		}
	}
}
