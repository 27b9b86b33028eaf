// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package anim

import (
	"math"
	"testing"
)

func TestEasingEndpoints(t *testing.T) {
	tests := []struct {
		name string
		fn   Easing
	}{
		{"Linear", Linear},
		{"EaseOutQuad", EaseOutQuad},
		{"EaseInOutQuad", EaseInOutQuad},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(0); math.Abs(got) > 1e-9 {
				t.Errorf("%s(0) = %v, want 0", tt.name, got)
			}
			if got := tt.fn(1); math.Abs(got-1) > 1e-9 {
				t.Errorf("%s(1) = %v, want 1", tt.name, got)
			}
		})
	}
}

func TestTweenInterpolates(t *testing.T) {
	e := NewEngine()

	var value float64
	e.Go(0, 10, 1.0, Linear, func(v float64) { value = v })

	e.Update(0.5)
	if math.Abs(value-5) > 1e-9 {
		t.Errorf("value at t=0.5 = %v, want 5", value)
	}

	e.Update(0.5)
	if value != 10 {
		t.Errorf("final value = %v, want 10", value)
	}
	if e.Active() != 0 {
		t.Errorf("Active() = %d after completion, want 0", e.Active())
	}
}

func TestTweenOnDoneOrder(t *testing.T) {
	e := NewEngine()

	var order []int
	tw := e.Go(0, 1, 0.1, nil, nil)
	tw.OnDone(func() { order = append(order, 1) })
	tw.OnDone(func() { order = append(order, 2) })

	e.Update(1.0)

	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Errorf("completion order = %v, want [1 2]", order)
	}
}

func TestTweenFinalValueExact(t *testing.T) {
	e := NewEngine()

	var value float64
	e.Go(0.3, 1, 0.1, EaseOutQuad, func(v float64) { value = v })

	// Overshoot the duration in one step; the final callback must clamp.
	e.Update(5)
	if value != 1 {
		t.Errorf("final value = %v, want exactly 1", value)
	}
}

func TestTweenCancel(t *testing.T) {
	e := NewEngine()

	fired := false
	tw := e.Go(0, 1, 1.0, nil, nil).OnDone(func() { fired = true })
	tw.Cancel()

	e.Update(2.0)

	if fired {
		t.Error("OnDone fired after Cancel")
	}
	if !tw.Done() {
		t.Error("Done() = false after Cancel")
	}
	if e.Active() != 0 {
		t.Errorf("Active() = %d, want 0", e.Active())
	}
}

func TestZeroDurationCompletesImmediately(t *testing.T) {
	e := NewEngine()

	var value float64
	done := false
	e.Go(0, 7, 0, nil, func(v float64) { value = v }).OnDone(func() { done = true })

	e.Update(0.001)

	if value != 7 {
		t.Errorf("value = %v, want 7", value)
	}
	if !done {
		t.Error("zero-duration tween did not complete on first Update")
	}
}

func TestCallbackChainsNewTween(t *testing.T) {
	e := NewEngine()

	var second float64
	e.Go(0, 1, 0.1, nil, nil).OnDone(func() {
		e.Go(0, 1, 0.1, Linear, func(v float64) { second = v })
	})

	// First Update finishes the first tween; the chained one must not be
	// stepped in the same tick.
	e.Update(1.0)
	if second != 0 {
		t.Errorf("chained tween stepped in starting tick: value = %v", second)
	}
	if e.Active() != 1 {
		t.Fatalf("Active() = %d, want 1", e.Active())
	}

	e.Update(1.0)
	if second != 1 {
		t.Errorf("chained tween final value = %v, want 1", second)
	}
}

func TestReset(t *testing.T) {
	e := NewEngine()

	fired := false
	e.Go(0, 1, 1.0, nil, nil).OnDone(func() { fired = true })
	e.Reset()
	e.Update(2.0)

	if fired {
		t.Error("OnDone fired after Reset")
	}
	if e.Active() != 0 {
		t.Errorf("Active() = %d, want 0", e.Active())
	}
}
