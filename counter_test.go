// Copyright 2021, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bcm

import "testing"

func TestCounterUpdate(t *testing.T) {
	for _, rate := range []uint{rateFast, rateMedium, rateSlow} {
		// From every starting value, an update must stay inside
		// [0, 0xFFFF] and move weakly toward the observed bit.
		for p0 := 0; p0 <= 0xffff; p0++ {
			p1 := counter(p0)
			p1.update1(rate)
			if int(p1) < p0 {
				t.Fatalf("rate %d, update1(%#04x): got %#04x, want >= input", rate, p0, p1)
			}
			p2 := counter(p0)
			p2.update0(rate)
			if int(p2) > p0 {
				t.Fatalf("rate %d, update0(%#04x): got %#04x, want <= input", rate, p0, p2)
			}
		}

		// Repeated updates converge to within one step of the extremes.
		p := counterInit
		for i := 0; i < 4096; i++ {
			p.update1(rate)
		}
		if p < counter(0xffff-(1<<rate)) {
			t.Errorf("rate %d, converge up: got %#04x, want >= %#04x", rate, p, 0xffff-(1<<rate))
		}
		p = counterInit
		for i := 0; i < 4096; i++ {
			p.update0(rate)
		}
		if p > counter(1<<rate) {
			t.Errorf("rate %d, converge down: got %#04x, want <= %#04x", rate, p, 1<<rate)
		}
	}
}
