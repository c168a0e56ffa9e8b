// Copyright 2021, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bcm

// counter is an adaptive estimate of the probability that the next bit is
// set, stored as a fraction of 1<<16. Updates move the estimate toward the
// observed bit by 1/2^rate of the remaining distance, so a counter tracks
// roughly the last
// 2^rate observations. The arithmetic is unsigned and never leaves the
// interval [0, 0xFFFF].
type counter uint16

// counterInit is the 0.5 starting estimate.
const counterInit counter = 1 << 15

// Update rates used by the model. Small contexts see few distinct bytes and
// adapt fast; the SSE table is shared across many inputs and adapts slowly.
const (
	rateFast   = 2 // order-0 counters
	rateMedium = 4 // order-1 counters
	rateSlow   = 6 // SSE counters
)

func (p *counter) update1(rate uint) {
	*p += (*p ^ 0xffff) >> rate
}

func (p *counter) update0(rate uint) {
	*p -= *p >> rate
}
