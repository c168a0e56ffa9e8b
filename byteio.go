// Copyright 2021, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bcm

import "io"

// The range coder produces and consumes individual bytes. These adapters
// bridge to plain io.Writer/io.Reader values and count the bytes moved for
// the offset bookkeeping on Reader and Writer. Callers handing in
// unbuffered files should wrap them in bufio; the adapters do not buffer.

type byteWriter struct {
	w io.Writer
	b io.ByteWriter // set if w implements io.ByteWriter
	a [1]byte
	n int64 // total bytes written
}

func newByteWriter(w io.Writer) *byteWriter {
	bw := &byteWriter{w: w}
	if b, ok := w.(io.ByteWriter); ok {
		bw.b = b
	}
	return bw
}

func (bw *byteWriter) WriteByte(c byte) error {
	var err error
	if bw.b != nil {
		err = bw.b.WriteByte(c)
	} else {
		bw.a[0] = c
		_, err = bw.w.Write(bw.a[:])
	}
	if err != nil {
		return err
	}
	bw.n++
	return nil
}

type byteReader struct {
	r io.Reader
	b io.ByteReader // set if r implements io.ByteReader
	a [1]byte
	n int64 // total bytes read
}

func newByteReader(r io.Reader) *byteReader {
	br := &byteReader{r: r}
	if b, ok := r.(io.ByteReader); ok {
		br.b = b
	}
	return br
}

func (br *byteReader) ReadByte() (byte, error) {
	if br.b != nil {
		c, err := br.b.ReadByte()
		if err != nil {
			return 0, err
		}
		br.n++
		return c, nil
	}
	for {
		cnt, err := br.r.Read(br.a[:])
		if cnt > 0 {
			br.n++
			return br.a[0], nil
		}
		if err != nil {
			return 0, err
		}
	}
}
