// Copyright 2021, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bcm

import "io"

// ReaderConfig configures the Reader. There are currently no configuration
// options; the type is reserved for future use.
type ReaderConfig struct{}

// Reader decompresses a BCM stream.
type Reader struct {
	InputOffset  int64 // Total number of bytes read from underlying io.Reader
	OutputOffset int64 // Total number of bytes emitted from Read

	rd  *byteReader
	rc  *rangeDecoder // nil until the stream header has been read
	mdl model
	crc crc
	bwt burrowsWheelerTransform

	buf    []byte // block buffer, sized by the first block of the stream
	toRead []byte // decoded bytes ready to be emitted from Read
	err    error
}

// NewReader creates a new Reader reading the compressed stream from r.
// If conf is nil, the defaults are used.
//
// The Reader pulls single bytes from r; if r is unbuffered, wrap it in a
// bufio.Reader.
func NewReader(r io.Reader, conf *ReaderConfig) (*Reader, error) {
	zr := new(Reader)
	zr.Reset(r)
	return zr, nil
}

// Reset discards the Reader's state and makes it equivalent to the result
// of a NewReader call, but reading from r instead. Transform buffers are
// retained.
func (zr *Reader) Reset(r io.Reader) error {
	zr.InputOffset = 0
	zr.OutputOffset = 0
	zr.rd = newByteReader(r)
	zr.rc = nil
	zr.mdl.init()
	zr.crc.reset()
	zr.buf = nil
	zr.toRead = nil
	zr.err = nil
	return nil
}

func (zr *Reader) Read(buf []byte) (int, error) {
	for {
		if len(zr.toRead) > 0 {
			cnt := copy(buf, zr.toRead)
			zr.toRead = zr.toRead[cnt:]
			zr.OutputOffset += int64(cnt)
			return cnt, nil
		}
		if zr.err != nil {
			return 0, zr.err
		}

		// Decode the next block of the stream.
		func() {
			defer errRecover(&zr.err)
			if zr.rc == nil {
				zr.readHeader()
			}
			zr.nextBlock()
		}()
		zr.InputOffset = zr.rd.n
	}
}

func (zr *Reader) Close() error {
	if zr.err == io.EOF || zr.err == io.ErrClosedPipe {
		zr.toRead = nil // Make sure future reads fail
		zr.err = io.ErrClosedPipe
		return nil
	}
	return zr.err // Return the persistent error
}

// readHeader checks the stream magic and seeds the range decoder.
func (zr *Reader) readHeader() {
	var magic uint32
	for i := uint(0); i < 32; i += 8 {
		c, err := zr.rd.ReadByte()
		if err != nil {
			if err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			panic(err)
		}
		magic |= uint32(c) << i
	}
	if magic != hdrMagic {
		panic(ErrHeader)
	}
	zr.rc = newRangeDecoder(zr.rd)
}

// nextBlock decodes one block into buf, or detects the end of the stream
// and verifies the checksum.
func (zr *Reader) nextBlock() {
	v := zr.rc.decodeUint32()
	if v == 0 {
		if zr.rc.decodeUint32() != zr.crc.value() {
			panic(ErrChecksum)
		}
		zr.err = io.EOF
		return
	}
	if v > maxBlockSize {
		panic(ErrCorrupt)
	}
	n := int(v)

	// The first block of a stream fixes the buffer size; no later block
	// may be longer.
	if zr.buf == nil {
		zr.buf = make([]byte, n)
	}
	if n > len(zr.buf) {
		panic(ErrCorrupt)
	}
	idx := int(zr.rc.decodeUint32())
	if idx < 1 || idx > n {
		panic(ErrCorrupt)
	}

	buf := zr.buf[:n]
	for i := range buf {
		buf[i] = zr.mdl.decodeByte(zr.rc)
	}
	zr.bwt.Decode(buf, idx)
	zr.crc.update(buf)
	zr.toRead = buf
}
