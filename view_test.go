// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package aurora

import (
	"errors"
	"testing"
)

func TestShowHideUnanimated(t *testing.T) {
	var v ViewBase

	shown := false
	v.Show(func() { shown = true }, false, Fade)
	if !shown {
		t.Fatal("Show callback did not run")
	}
	if got := v.Alpha(); got != 1 {
		t.Errorf("alpha = %v after Show, want 1", got)
	}
	if v.IsHidden() {
		t.Error("IsHidden = true after Show")
	}

	hidden := false
	v.Hide(func() { hidden = true }, false, Fade)
	if !hidden {
		t.Fatal("Hide callback did not run")
	}
	if got := v.Alpha(); got != 0 {
		t.Errorf("alpha = %v after Hide, want 0", got)
	}
	if !v.IsHidden() {
		t.Error("IsHidden = false after Hide")
	}
}

func TestShowAnimatedFades(t *testing.T) {
	app, _ := newTestApp(t)

	v := &testView{name: "v"}
	v.bindApp(app)

	done := false
	v.Show(func() { done = true }, true, Fade)

	if done {
		t.Fatal("animated Show completed synchronously")
	}

	settle(app)
	if !done {
		t.Fatal("Show callback never fired")
	}
	if got := v.Alpha(); got != 1 {
		t.Errorf("alpha = %v, want 1", got)
	}

	v.Hide(nil, true, Fade)
	if v.IsHidden() {
		t.Fatal("hidden before the hide animation completed")
	}
	settle(app)
	if !v.IsHidden() {
		t.Error("IsHidden = false after hide settled")
	}
	if got := v.Alpha(); got != 0 {
		t.Errorf("alpha = %v, want 0", got)
	}
}

func TestTranslucencyFlags(t *testing.T) {
	var v ViewBase

	if v.IsTranslucent() {
		t.Error("fresh view is translucent")
	}

	v.SetForceTranslucent(true)
	if !v.IsTranslucent() {
		t.Error("forced translucency not reported")
	}
	v.SetForceTranslucent(false)

	v.SetTranslucent(true)
	if !v.IsTranslucent() {
		t.Error("intrinsic translucency not reported")
	}
}

func TestShakeHighlightReturnsToRest(t *testing.T) {
	app, _ := newTestApp(t)

	v := &testView{name: "v"}
	v.bindApp(app)

	v.ShakeHighlight(FocusRight)
	app.Anim().Update(0.02)
	if v.ShakeOffset() == 0 {
		t.Fatal("shake did not move the offset")
	}

	settle(app)
	if got := v.ShakeOffset(); got != 0 {
		t.Errorf("shake offset = %v after settling, want 0", got)
	}
}

func TestShakeDirectionSign(t *testing.T) {
	app, _ := newTestApp(t)

	right := &testView{name: "right"}
	right.bindApp(app)
	right.ShakeHighlight(FocusRight)
	app.Anim().Update(0.02)
	if right.ShakeOffset() <= 0 {
		t.Errorf("right shake offset = %v, want positive", right.ShakeOffset())
	}
	settle(app)

	left := &testView{name: "left"}
	left.bindApp(app)
	left.ShakeHighlight(FocusLeft)
	app.Anim().Update(0.02)
	if left.ShakeOffset() >= 0 {
		t.Errorf("left shake offset = %v, want negative", left.ShakeOffset())
	}
}

func TestShakeWithoutRuntimeIsSafe(t *testing.T) {
	var v ViewBase
	v.ShakeHighlight(FocusDown)
	if v.ShakeOffset() != 0 {
		t.Error("unattached shake moved the offset")
	}
}

type failingCloser struct {
	testView
}

func (v *failingCloser) Close() error { return errors.New("resource leak") }

func TestDestroyViewSwallowsCloseError(t *testing.T) {
	// Must not panic; the error is logged only.
	destroyView(&failingCloser{})
	destroyView(&testView{name: "plain"})
}
