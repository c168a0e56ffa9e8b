// Copyright 2021, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bcm

import "io"

// WriterConfig configures the Writer.
type WriterConfig struct {
	// BlockSize is the number of input bytes permuted together by one
	// Burrows-Wheeler transform. Larger blocks compress better and cost
	// proportionally more memory. It must be positive; zero selects the
	// 16 MiB default. The block size is not recorded in the stream header;
	// every block carries its own length.
	BlockSize int
}

// Writer compresses a byte stream in the BCM format.
type Writer struct {
	InputOffset  int64 // Total number of bytes accepted by Write
	OutputOffset int64 // Total number of bytes written to underlying io.Writer

	wr  *byteWriter
	rc  *rangeEncoder
	mdl model
	crc crc
	bwt burrowsWheelerTransform

	buf      []byte // block staging buffer, len(buf) is the block size
	cnt      int    // bytes currently staged
	wroteHdr bool
	err      error
}

// NewWriter creates a new Writer writing the compressed stream to w.
// If conf is nil, the defaults are used. The stream is not complete until
// Close is called.
//
// The Writer issues many small writes; if w is unbuffered, wrap it in a
// bufio.Writer.
func NewWriter(w io.Writer, conf *WriterConfig) (*Writer, error) {
	bsize := defaultBlockSize
	if conf != nil && conf.BlockSize != 0 {
		if conf.BlockSize < 1 || conf.BlockSize > maxBlockSize {
			return nil, errInvalidConfig
		}
		bsize = conf.BlockSize
	}
	zw := &Writer{buf: make([]byte, bsize)}
	zw.Reset(w)
	return zw, nil
}

// Reset discards the Writer's state and makes it equivalent to the result
// of a NewWriter call with the same configuration, but writing to w
// instead. Block and transform buffers are retained.
func (zw *Writer) Reset(w io.Writer) error {
	zw.InputOffset = 0
	zw.OutputOffset = 0
	zw.wr = newByteWriter(w)
	zw.rc = newRangeEncoder(zw.wr)
	zw.mdl.init()
	zw.crc.reset()
	zw.cnt = 0
	zw.wroteHdr = false
	zw.err = nil
	return nil
}

func (zw *Writer) Write(buf []byte) (int, error) {
	if zw.err != nil {
		return 0, zw.err
	}

	var n int
	func() {
		defer errRecover(&zw.err)
		for len(buf) > 0 {
			cnt := copy(zw.buf[zw.cnt:], buf)
			zw.cnt += cnt
			buf = buf[cnt:]
			n += cnt
			if zw.cnt == len(zw.buf) {
				zw.flushBlock()
			}
		}
	}()
	zw.InputOffset += int64(n)
	zw.OutputOffset = zw.wr.n
	return n, zw.err
}

// Close finishes the stream: the final partial block, the terminator, the
// checksum, and the coder flush. It does not close the underlying writer.
func (zw *Writer) Close() error {
	if zw.err == io.ErrClosedPipe {
		return nil
	}
	if zw.err != nil {
		return zw.err
	}

	func() {
		defer errRecover(&zw.err)
		zw.writeHeader()
		if zw.cnt > 0 {
			zw.flushBlock()
		}
		zw.rc.encodeUint32(0) // end of blocks
		zw.rc.encodeUint32(zw.crc.value())
		zw.rc.flush()
	}()
	zw.OutputOffset = zw.wr.n
	if zw.err != nil {
		return zw.err
	}
	zw.err = io.ErrClosedPipe // Make sure future writes fail
	return nil
}

// writeHeader emits the stream magic ahead of the coded data.
func (zw *Writer) writeHeader() {
	if zw.wroteHdr {
		return
	}
	for i := uint(0); i < 32; i += 8 {
		if err := zw.wr.WriteByte(byte(hdrMagic >> i)); err != nil {
			panic(err)
		}
	}
	zw.wroteHdr = true
}

// flushBlock transforms and codes the staged block.
func (zw *Writer) flushBlock() {
	zw.writeHeader()

	buf := zw.buf[:zw.cnt]
	zw.crc.update(buf)
	idx := zw.bwt.Encode(buf)
	if idx < 1 {
		panic(Error("burrows-wheeler transform failed"))
	}
	zw.rc.encodeUint32(uint32(len(buf)))
	zw.rc.encodeUint32(uint32(idx))
	for _, c := range buf {
		zw.mdl.encodeByte(zw.rc, c)
	}
	zw.cnt = 0
}
