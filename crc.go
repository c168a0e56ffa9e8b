// Copyright 2021, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bcm

import "hash/crc32"

// crc maintains a running CRC-32 of the uncompressed stream: the reflected
// polynomial 0xEDB88320, seeded with 0xFFFFFFFF and inverted on read, which
// is exactly the IEEE checksum of hash/crc32. The stdlib tables are sliced
// and hardware accelerated, so no private table is kept here.
type crc struct {
	val uint32
}

func (c *crc) update(buf []byte) {
	c.val = crc32.Update(c.val, crc32.IEEETable, buf)
}

func (c *crc) value() uint32 {
	return c.val
}

func (c *crc) reset() {
	c.val = 0
}
