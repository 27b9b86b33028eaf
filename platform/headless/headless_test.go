// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package headless

import (
	"testing"

	"github.com/gogpu/aurora/platform"
)

func newRunning(t *testing.T) *Driver {
	t.Helper()
	d := New()
	if err := d.Initialize("test", 1280, 720); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	return d
}

func TestRegistered(t *testing.T) {
	found := false
	for _, name := range platform.List() {
		if name == DriverName {
			found = true
		}
	}
	if !found {
		t.Fatalf("driver %q not in registry: %v", DriverName, platform.List())
	}

	d, err := platform.NewByName(DriverName)
	if err != nil {
		t.Fatalf("NewByName: %v", err)
	}
	if _, ok := d.(*Driver); !ok {
		t.Errorf("NewByName returned %T, want *headless.Driver", d)
	}

	g, ok := d.(platform.GraphicsDiagnostics)
	if !ok {
		t.Fatalf("driver does not implement GraphicsDiagnostics")
	}
	if got := g.GraphicsAPI(); got != "software" {
		t.Errorf("GraphicsAPI() = %q, want %q", got, "software")
	}
}

func TestLifecycle(t *testing.T) {
	d := newRunning(t)

	if d.Canvas() == nil {
		t.Fatal("Canvas() = nil after Initialize")
	}
	if got := d.Title(); got != "test" {
		t.Errorf("Title() = %q, want %q", got, "test")
	}

	if !d.Update() {
		t.Error("Update() = false on a running driver")
	}
	d.Frame()
	d.SwapBuffers()
	if got := d.Frames(); got != 1 {
		t.Errorf("Frames() = %d, want 1", got)
	}

	if err := d.Exit(); err != nil {
		t.Fatalf("Exit: %v", err)
	}
	if d.Update() {
		t.Error("Update() = true after Exit")
	}
	if err := d.Exit(); err == nil {
		t.Error("second Exit did not fail")
	}
}

func TestScriptedInput(t *testing.T) {
	d := newRunning(t)
	defer d.Exit()

	d.Press(platform.ButtonA)

	// Tick 1: press edge.
	d.Update()
	if got := d.ButtonsDown(); got != platform.ButtonA {
		t.Errorf("tick 1 ButtonsDown = %v, want ButtonA", got)
	}
	if got := d.ButtonsHeld(); got != platform.ButtonA {
		t.Errorf("tick 1 ButtonsHeld = %v, want ButtonA", got)
	}

	// Tick 2: release edge.
	d.Update()
	if got := d.ButtonsUp(); got != platform.ButtonA {
		t.Errorf("tick 2 ButtonsUp = %v, want ButtonA", got)
	}

	// Tick 3: queue exhausted, nothing held.
	d.Update()
	if d.StateChanged() {
		t.Error("tick 3 StateChanged = true with empty script")
	}
	if got := d.ButtonsHeld(); got != platform.ButtonNone {
		t.Errorf("tick 3 ButtonsHeld = %v, want none", got)
	}
}

func TestHold(t *testing.T) {
	d := newRunning(t)
	defer d.Exit()

	d.Hold(platform.ButtonB, 3)

	d.Update()
	if got := d.ButtonsDown(); got != platform.ButtonB {
		t.Fatalf("ButtonsDown = %v, want ButtonB", got)
	}

	for tick := 2; tick <= 3; tick++ {
		d.Update()
		if d.StateChanged() {
			t.Errorf("tick %d: StateChanged = true mid-hold", tick)
		}
		if got := d.ButtonsHeld(); got != platform.ButtonB {
			t.Errorf("tick %d: ButtonsHeld = %v, want ButtonB", tick, got)
		}
	}
}

func TestResizeCallback(t *testing.T) {
	d := newRunning(t)
	defer d.Exit()

	var gotW, gotH int
	d.OnWindowResize(func(w, h int) { gotW, gotH = w, h })

	if err := d.Resize(1920, 1080); err != nil {
		t.Fatalf("Resize: %v", err)
	}
	if gotW != 1920 || gotH != 1080 {
		t.Errorf("resize callback got %dx%d, want 1920x1080", gotW, gotH)
	}
	if w := d.Canvas().Width(); w != 1920 {
		t.Errorf("canvas width = %d, want 1920", w)
	}
}

func TestStopAndMaxFrames(t *testing.T) {
	d := newRunning(t)
	defer d.Exit()

	d.SetMaxFrames(2)
	for i := 0; i < 2; i++ {
		if !d.Update() {
			t.Fatalf("Update() = false at frame %d, before the limit", i)
		}
		d.Frame()
	}
	if d.Update() {
		t.Error("Update() = true past the frame limit")
	}

	d2 := newRunning(t)
	defer d2.Exit()
	d2.Stop()
	if d2.Update() {
		t.Error("Update() = true after Stop")
	}
}
