// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package aurora

import (
	"testing"
	"time"
)

// driveRepeat feeds the machine n one-millisecond ticks with a button held
// throughout and returns how many ticks reported a repeat.
func driveRepeat(r *buttonRepeater, base time.Time, n int) int {
	repeats := 0
	for i := 1; i <= n; i++ {
		now := base.Add(time.Duration(i) * time.Millisecond)
		if r.advance(now, true, i == 1) {
			repeats++
		}
	}
	return repeats
}

func TestButtonRepeatCount(t *testing.T) {
	tests := []struct {
		holdMs int
		want   int
	}{
		{holdMs: 10, want: 0},  // inside the delay window
		{holdMs: 15, want: 0},  // exactly at the delay boundary
		{holdMs: 19, want: 0},  // past delay, before first cadence tick
		{holdMs: 20, want: 1},  // first repeat
		{holdMs: 24, want: 1},
		{holdMs: 25, want: 2},
		{holdMs: 100, want: 17}, // (100-15)/5
	}

	base := time.Unix(1000, 0)
	for _, tt := range tests {
		r := newButtonRepeater()
		if got := driveRepeat(&r, base, tt.holdMs); got != tt.want {
			t.Errorf("hold %dms: repeats = %d, want %d", tt.holdMs, got, tt.want)
		}
	}
}

func TestButtonRepeatResetOnChange(t *testing.T) {
	base := time.Unix(1000, 0)
	r := newButtonRepeater()

	driveRepeat(&r, base, 18)

	// Held set changes at tick 19: timer restarts, so the next repeat
	// needs a full delay window again.
	now := base.Add(19 * time.Millisecond)
	if r.advance(now, true, true) {
		t.Fatal("repeat fired on the change tick")
	}

	repeats := 0
	for i := 20; i <= 30; i++ {
		if r.advance(base.Add(time.Duration(i)*time.Millisecond), true, false) {
			repeats++
		}
	}
	if repeats != 0 {
		t.Errorf("repeats after reset = %d, want 0 inside new delay window", repeats)
	}
}

func TestButtonRepeatReleaseStops(t *testing.T) {
	base := time.Unix(1000, 0)
	r := newButtonRepeater()

	driveRepeat(&r, base, 30)

	now := base.Add(31 * time.Millisecond)
	if r.advance(now, false, true) {
		t.Error("repeat fired with nothing held")
	}
}

func TestButtonRepeatSubMillisecondTicks(t *testing.T) {
	base := time.Unix(1000, 0)
	r := newButtonRepeater()

	// 200 ticks spaced 100µs apart span only 20ms of wall time; the timer
	// advances at most once per millisecond.
	repeats := 0
	for i := 1; i <= 200; i++ {
		now := base.Add(time.Duration(i) * 100 * time.Microsecond)
		if r.advance(now, true, i == 1) {
			repeats++
		}
	}

	if r.timer > 21 {
		t.Errorf("timer = %d after 20ms, want at most 21", r.timer)
	}
	if repeats != 1 {
		t.Errorf("repeats = %d over 20ms, want exactly 1", repeats)
	}
}
