// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package anim is a frame-ticked tween engine.
//
// The engine never spawns goroutines: the runtime calls Update once per
// frame with the elapsed time, values are interpolated, and completion
// callbacks fire synchronously from inside Update. "Waiting" for one
// animation before starting another is therefore a callback chain, not a
// blocking wait.
package anim

import "math"

// Easing maps normalized time t in [0,1] to normalized progress.
type Easing func(t float64) float64

// Linear is constant-rate interpolation.
func Linear(t float64) float64 { return t }

// EaseOutQuad decelerates toward the end.
func EaseOutQuad(t float64) float64 { return 1 - (1-t)*(1-t) }

// EaseInOutQuad accelerates then decelerates.
func EaseInOutQuad(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return 1 - math.Pow(-2*t+2, 2)/2
}

// Tween interpolates a single value over a fixed duration.
type Tween struct {
	from, to float64
	duration float64
	elapsed  float64
	easing   Easing
	onUpdate func(v float64)
	onDone   []func()
	done     bool
}

// OnDone appends a completion callback. Callbacks run in registration order,
// synchronously, from the Update that finishes the tween.
func (t *Tween) OnDone(fn func()) *Tween {
	if fn != nil {
		t.onDone = append(t.onDone, fn)
	}
	return t
}

// Cancel stops the tween without firing completion callbacks.
// The value stays wherever the last Update left it.
func (t *Tween) Cancel() {
	t.done = true
}

// Done reports whether the tween has finished or been cancelled.
func (t *Tween) Done() bool { return t.done }

func (t *Tween) step(dt float64) {
	if t.done {
		return
	}

	t.elapsed += dt
	if t.elapsed >= t.duration || t.duration <= 0 {
		t.done = true
		if t.onUpdate != nil {
			t.onUpdate(t.to)
		}
		for _, fn := range t.onDone {
			fn()
		}
		return
	}

	progress := t.easing(t.elapsed / t.duration)
	if t.onUpdate != nil {
		t.onUpdate(t.from + (t.to-t.from)*progress)
	}
}

// Engine drives a set of tweens.
//
// Engine is not safe for concurrent use; aurora ticks it from the main loop
// only.
type Engine struct {
	tweens []*Tween
}

// NewEngine creates an empty engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Go starts a tween from from to to over duration seconds. A nil easing
// defaults to EaseOutQuad. onUpdate receives every interpolated value
// including the final one; it may be nil.
func (e *Engine) Go(from, to, duration float64, easing Easing, onUpdate func(v float64)) *Tween {
	if easing == nil {
		easing = EaseOutQuad
	}
	t := &Tween{
		from:     from,
		to:       to,
		duration: duration,
		easing:   easing,
		onUpdate: onUpdate,
	}
	e.tweens = append(e.tweens, t)
	return t
}

// Update advances all tweens by dt seconds and fires completion callbacks
// for those that finish. Tweens started from inside a callback are first
// stepped on the next Update.
func (e *Engine) Update(dt float64) {
	// Snapshot so callbacks can start new tweens without stepping them
	// in the same tick.
	active := e.tweens
	for _, t := range active {
		t.step(dt)
	}

	remaining := e.tweens[:0]
	for _, t := range e.tweens {
		if !t.done {
			remaining = append(remaining, t)
		}
	}
	e.tweens = remaining
}

// Active returns the number of tweens still running.
func (e *Engine) Active() int {
	n := 0
	for _, t := range e.tweens {
		if !t.done {
			n++
		}
	}
	return n
}

// Reset cancels every tween without firing callbacks.
func (e *Engine) Reset() {
	for _, t := range e.tweens {
		t.done = true
	}
	e.tweens = nil
}
