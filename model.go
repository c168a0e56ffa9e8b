// Copyright 2021, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bcm

// The context model produces one probability per bit. Three counters give
// their opinion: an order-0 counter on the bit context alone, and the
// order-1 counters selected by each of the last two bytes. The mix is then
// refined by a secondary estimator (SSE): a 17-entry table indexed by a
// coarse bucket of the mixed probability, interpolated linearly between
// neighboring entries. Two independent SSE tables exist, selected by
// whether the input is inside a run of equal bytes, which after a
// Burrows-Wheeler transform separates the long single-byte stretches from
// mixed regions.
//
// All state persists for the lifetime of a stream. Resetting any of it
// between blocks would change the coded bits.

// probLog is the log2 denominator of the probabilities handed to the coder.
const probLog = 18

type model struct {
	counter0 [256]counter        // indexed by bit context
	counter1 [256][256]counter   // indexed by previous byte, bit context
	counter2 [2][256][17]counter // SSE: run flag, bit context, bucket
	c1       int                 // last byte
	c2       int                 // second to last byte
	run      int                 // length of the current run of equal bytes
}

func (m *model) init() {
	for i := range m.counter0 {
		m.counter0[i] = counterInit
	}
	for i := range m.counter1 {
		for j := range m.counter1[i] {
			m.counter1[i][j] = counterInit
		}
	}
	for i := range m.counter2 {
		for j := range m.counter2[i] {
			for k := 0; k <= 16; k++ {
				// Linear ramp over the probability range. The top entry
				// saturates at 0xFFFF instead of wrapping to 1<<16.
				if k == 16 {
					m.counter2[i][j][k] = 0xffff
				} else {
					m.counter2[i][j][k] = counter(k << 12)
				}
			}
		}
	}
	m.c1 = 0
	m.c2 = 0
	m.run = 0
}

// predict returns the mixed probability p for the next bit being set, the
// SSE bucket j it falls in, and the interpolated SSE refinement. The final
// coding probability is p+3*ssep, an 18-bit-range value.
func (m *model) predict(f, ctx int) (p, j, ssep int) {
	p0 := int(m.counter0[ctx])
	p1 := int(m.counter1[m.c1][ctx])
	p2 := int(m.counter1[m.c2][ctx]) // read-only participant in the mix
	p = ((p0+p1)*7 + p2 + p2) >> 4

	// SSE with linear interpolation.
	j = p >> 12
	x1 := int(m.counter2[f][ctx][j])
	x2 := int(m.counter2[f][ctx][j+1])
	ssep = x1 + ((x2-x1)*(p&4095))>>12
	return p, j, ssep
}

// update trains the counters consulted for this bit. The c2-indexed order-1
// counter is deliberately left untouched.
func (m *model) update(f, ctx, j, bit int) {
	if bit != 0 {
		m.counter0[ctx].update1(rateFast)
		m.counter1[m.c1][ctx].update1(rateMedium)
		m.counter2[f][ctx][j].update1(rateSlow)
		m.counter2[f][ctx][j+1].update1(rateSlow)
	} else {
		m.counter0[ctx].update0(rateFast)
		m.counter1[m.c1][ctx].update0(rateMedium)
		m.counter2[f][ctx][j].update0(rateSlow)
		m.counter2[f][ctx][j+1].update0(rateSlow)
	}
}

// pushByte records c as the most recent byte of history.
func (m *model) pushByte(c int) {
	m.c2 = m.c1
	m.c1 = c
	if m.c1 == m.c2 {
		m.run++
	} else {
		m.run = 0
	}
}

// runFlag selects the SSE table for the current position.
func (m *model) runFlag() int {
	if m.run > 2 {
		return 1
	}
	return 0
}

// encodeByte codes the bits of c MSB-first under the current context.
func (m *model) encodeByte(rc *rangeEncoder, c byte) {
	f := m.runFlag()

	ctx := 1
	for i := 128; i > 0; i >>= 1 {
		var bit int
		if int(c)&i != 0 {
			bit = 1
		}
		p, j, ssep := m.predict(f, ctx)
		rc.encodeBit(bit, uint32(p+3*ssep), probLog)
		m.update(f, ctx, j, bit)
		ctx = ctx<<1 | bit
	}
	m.pushByte(ctx - 256)
}

// decodeByte mirrors encodeByte.
func (m *model) decodeByte(rc *rangeDecoder) byte {
	f := m.runFlag()

	ctx := 1
	for ctx < 256 {
		p, j, ssep := m.predict(f, ctx)
		bit := rc.decodeBit(uint32(p+3*ssep), probLog)
		m.update(f, ctx, j, bit)
		ctx = ctx<<1 | bit
	}
	m.pushByte(ctx - 256)
	return byte(ctx - 256)
}
