// Copyright 2021, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bench

import (
	"io"

	"github.com/dsnet/bcm"
)

func init() {
	RegisterEncoder(FormatBCM, "bcm",
		func(w io.Writer, lvl int) io.WriteCloser {
			// The level is the block size in MiB.
			zw, err := bcm.NewWriter(w, &bcm.WriterConfig{BlockSize: lvl << 20})
			if err != nil {
				panic(err)
			}
			return zw
		})
	RegisterDecoder(FormatBCM, "bcm",
		func(r io.Reader) io.ReadCloser {
			zr, err := bcm.NewReader(r, nil)
			if err != nil {
				panic(err)
			}
			return zr
		})
}
