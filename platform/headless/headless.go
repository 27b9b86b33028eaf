// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package headless implements an offscreen software platform driver.
//
// It renders into a plain raster gg.Context and takes input from a
// scripted per-tick queue, which makes runtime behavior fully
// deterministic. Tests and CI use it directly; it also registers itself at
// low priority so it is the fallback when no windowed driver is available.
package headless

import (
	"errors"
	"sync"

	"github.com/gogpu/aurora/platform"
	"github.com/gogpu/gg"
)

// DriverName is the registry name of this driver.
const DriverName = "headless"

// ErrNotInitialized is returned by Exit before Initialize succeeded.
var ErrNotInitialized = errors.New("headless: not initialized")

func init() {
	platform.Register(DriverName, 10, func() platform.Driver { return New() }, nil)
}

// Driver is the offscreen software driver. The zero value is not usable;
// construct with New.
type Driver struct {
	mu sync.Mutex

	canvas *gg.Context
	title  string
	width  int
	height int

	input  platform.InputState
	script []platform.Button
	held   platform.Button

	onResize func(width, height int)

	frames      int
	maxFrames   int
	stopped     bool
	initialized bool
}

// New creates an uninitialized headless driver.
func New() *Driver {
	return &Driver{}
}

var _ platform.Driver = (*Driver)(nil)

// Initialize implements platform.Driver by allocating the offscreen raster
// target.
func (d *Driver) Initialize(title string, width, height int) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.canvas = gg.NewContext(width, height)
	d.title = title
	d.width = width
	d.height = height
	d.initialized = true
	return nil
}

// Exit implements platform.Driver.
func (d *Driver) Exit() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.initialized {
		return ErrNotInitialized
	}
	d.initialized = false
	d.canvas = nil
	return nil
}

// Update implements platform.Driver: it consumes one scripted input tick
// and keeps running until Stop was called or the frame limit was reached.
func (d *Driver) Update() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped || !d.initialized {
		return false
	}
	if d.maxFrames > 0 && d.frames >= d.maxFrames {
		return false
	}

	if len(d.script) > 0 {
		d.held = d.script[0]
		d.script = d.script[1:]
	} else {
		d.held = platform.ButtonNone
	}
	d.input.Set(d.held)

	return true
}

// Frame implements platform.Driver.
func (d *Driver) Frame() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.frames++
	if d.canvas != nil {
		d.canvas.Clear()
	}
}

// SwapBuffers implements platform.Driver. The offscreen target has no
// front buffer; presentation is a no-op.
func (d *Driver) SwapBuffers() {}

// Canvas implements platform.Driver.
func (d *Driver) Canvas() *gg.Context {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.canvas
}

// GraphicsAPI implements platform.GraphicsDiagnostics.
func (d *Driver) GraphicsAPI() string {
	return "software"
}

// OnWindowResize implements platform.Driver.
func (d *Driver) OnWindowResize(fn func(width, height int)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.onResize = fn
}

// ButtonsDown implements platform.Driver.
func (d *Driver) ButtonsDown() platform.Button {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.input.ButtonsDown()
}

// ButtonsUp implements platform.Driver.
func (d *Driver) ButtonsUp() platform.Button {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.input.ButtonsUp()
}

// ButtonsHeld implements platform.Driver.
func (d *Driver) ButtonsHeld() platform.Button {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.input.ButtonsHeld()
}

// StateChanged implements platform.Driver.
func (d *Driver) StateChanged() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.input.StateChanged()
}

// Script appends per-tick held-button masks to the input queue. Each
// Update consumes one entry; with the queue empty nothing is held.
func (d *Driver) Script(masks ...platform.Button) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.script = append(d.script, masks...)
}

// Press scripts a one-tick press followed by a release tick.
func (d *Driver) Press(mask platform.Button) {
	d.Script(mask, platform.ButtonNone)
}

// Hold scripts the given mask held for n consecutive ticks.
func (d *Driver) Hold(mask platform.Button, n int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i := 0; i < n; i++ {
		d.script = append(d.script, mask)
	}
}

// Resize changes the offscreen target size and fires the resize callback,
// mirroring what a windowed driver does on a window size event.
func (d *Driver) Resize(width, height int) error {
	d.mu.Lock()

	if !d.initialized {
		d.mu.Unlock()
		return ErrNotInitialized
	}
	if err := d.canvas.Resize(width, height); err != nil {
		d.mu.Unlock()
		return err
	}
	d.width = width
	d.height = height
	fn := d.onResize
	d.mu.Unlock()

	if fn != nil {
		fn(width, height)
	}
	return nil
}

// Stop makes the next Update return false, as if the window was closed.
func (d *Driver) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
}

// SetMaxFrames limits how many frames Update allows before reporting
// shutdown. Zero means unlimited.
func (d *Driver) SetMaxFrames(n int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.maxFrames = n
}

// Frames returns the number of frames rendered so far.
func (d *Driver) Frames() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.frames
}

// Title returns the title given to Initialize.
func (d *Driver) Title() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.title
}
