// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package gpu implements the windowed WebGPU platform driver.
//
// gogpu owns the window, the event loop and the surface; this driver
// bridges its callback-style OnDraw into the poll-style platform.Driver
// contract with a pair of handoff channels. Vector drawing goes through a
// ggcanvas bound to the window's device and is presented straight to the
// surface, no readback.
//
// Keyboard input is translated into gamepad buttons through a key map.
// Only press events are delivered by the event source, so every mapped key
// produces a one-tick press; holds rely on the OS key auto-repeat.
package gpu

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gogpu/aurora/platform"
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/integration/ggcanvas"
	"github.com/gogpu/gogpu"
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/core"
)

// DriverName is the registry name of this driver.
const DriverName = "gpu"

// Driver errors.
var (
	// ErrNoAdapter is returned by the availability probe when no WebGPU
	// adapter is present.
	ErrNoAdapter = errors.New("gpu: no webgpu adapter available")

	// ErrNotInitialized is returned by methods used before Initialize.
	ErrNotInitialized = errors.New("gpu: not initialized")
)

func init() {
	platform.Register(DriverName, 100, func() platform.Driver { return New() }, Available)
}

var (
	probeOnce sync.Once
	probeOK   bool
)

// Available probes for a WebGPU adapter once per process. Window creation
// can still fail later; this only rules out headless machines cheaply.
func Available() bool {
	probeOnce.Do(func() {
		instance := core.NewInstance(&gputypes.InstanceDescriptor{
			Backends: gputypes.BackendsPrimary,
		})
		if instance == nil {
			return
		}
		_, err := instance.RequestAdapter(&gputypes.RequestAdapterOptions{
			PowerPreference: gputypes.PowerPreferenceHighPerformance,
		})
		probeOK = err == nil
	})
	return probeOK
}

// Driver is the gogpu-hosted windowed driver. Construct with New.
type Driver struct {
	mu sync.Mutex

	app    *gogpu.App
	canvas *ggcanvas.Canvas

	// dc is the draw context of the frame currently handed to the
	// runtime; only valid between a frameReady receive and the matching
	// frameDone send.
	dc *gogpu.Context

	width  int
	height int

	// resizedTo carries a pending size change from the draw goroutine to
	// the runtime goroutine; zero means none.
	resizedW, resizedH int

	keymap  map[gpucontext.Key]platform.Button
	pending platform.Button
	input   platform.InputState

	onResize func(width, height int)

	frameReady chan struct{}
	frameDone  chan struct{}

	// quitting unblocks the draw handoff during Exit; closed reports the
	// event loop has fully stopped.
	quitting chan struct{}
	closed   chan struct{}

	runErr      error
	initialized bool
}

// New creates an uninitialized windowed driver with the default key map.
func New() *Driver {
	return &Driver{
		keymap:     defaultKeyMap(),
		frameReady: make(chan struct{}),
		frameDone:  make(chan struct{}),
		quitting:   make(chan struct{}),
		closed:     make(chan struct{}),
	}
}

var _ platform.Driver = (*Driver)(nil)

// defaultKeyMap covers the one binding every desktop keyboard has; hosts
// extend it with Bind before Initialize.
func defaultKeyMap() map[gpucontext.Key]platform.Button {
	return map[gpucontext.Key]platform.Button{
		gpucontext.KeySpace: platform.ButtonA,
	}
}

// Bind maps a keyboard key to a gamepad button. Call before Initialize.
func (d *Driver) Bind(key gpucontext.Key, button platform.Button) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.keymap[key] = button
}

// Initialize implements platform.Driver: it creates the gogpu window and
// starts its event loop on a dedicated goroutine.
func (d *Driver) Initialize(title string, width, height int) error {
	if !Available() {
		return ErrNoAdapter
	}

	d.mu.Lock()
	if d.initialized {
		d.mu.Unlock()
		return fmt.Errorf("gpu: already initialized")
	}
	d.width = width
	d.height = height
	d.initialized = true
	d.mu.Unlock()

	app := gogpu.NewApp(gogpu.DefaultConfig().
		WithTitle(title).
		WithSize(width, height).
		WithContinuousRender(true))

	app.OnDraw(d.onDraw)

	app.EventSource().OnKeyPress(func(key gpucontext.Key, _ gpucontext.Modifiers) {
		d.mu.Lock()
		defer d.mu.Unlock()
		if button, ok := d.keymap[key]; ok {
			d.pending |= button
		}
	})

	app.OnClose(func() {
		d.mu.Lock()
		canvas := d.canvas
		d.canvas = nil
		d.mu.Unlock()

		if canvas != nil {
			_ = canvas.Close()
		}
	})

	d.app = app

	go func() {
		err := app.Run()

		d.mu.Lock()
		d.runErr = err
		d.mu.Unlock()
		close(d.closed)
	}()

	return nil
}

// onDraw runs on gogpu's draw goroutine once per vsync. It hands the frame
// to the runtime goroutine and blocks until the runtime finished drawing,
// then presents the canvas to the surface.
func (d *Driver) onDraw(dc *gogpu.Context) {
	w, h := dc.Width(), dc.Height()
	if w <= 0 || h <= 0 {
		return
	}

	d.mu.Lock()
	if d.canvas == nil {
		provider := d.app.GPUContextProvider()
		if provider == nil {
			d.mu.Unlock()
			return
		}
		canvas, err := ggcanvas.New(provider, w, h)
		if err != nil {
			d.mu.Unlock()
			return
		}
		d.canvas = canvas
	}

	if w != d.width || h != d.height {
		if err := d.canvas.Resize(w, h); err == nil {
			d.width, d.height = w, h
			d.resizedW, d.resizedH = w, h
		}
	}

	d.dc = dc
	canvas := d.canvas
	d.mu.Unlock()

	// Hand the frame to the runtime and wait for it to finish drawing.
	select {
	case d.frameReady <- struct{}{}:
	case <-d.quitting:
		return
	}
	select {
	case <-d.frameDone:
	case <-d.quitting:
		return
	}

	sv := dc.SurfaceView()
	sw, sh := dc.SurfaceSize()
	_ = canvas.RenderDirect(sv, sw, sh)
}

// Update implements platform.Driver: it waits for the next frame handoff,
// delivers any pending resize to the runtime and latches this tick's input.
func (d *Driver) Update() bool {
	select {
	case <-d.frameReady:
	case <-d.closed:
		return false
	}

	d.mu.Lock()
	rw, rh := d.resizedW, d.resizedH
	d.resizedW, d.resizedH = 0, 0
	fn := d.onResize

	held := d.pending
	d.pending = 0
	d.input.Set(held)
	d.mu.Unlock()

	if rw != 0 && fn != nil {
		fn(rw, rh)
	}
	return true
}

// Frame implements platform.Driver.
func (d *Driver) Frame() {
	d.mu.Lock()
	canvas := d.canvas
	d.mu.Unlock()

	if canvas == nil {
		return
	}
	canvas.MarkDirty()

	cc := canvas.Context()
	cc.SetRGBA(0, 0, 0, 1)
	cc.Clear()
}

// SwapBuffers implements platform.Driver: it releases the draw goroutine,
// which presents the canvas and schedules the next vsync.
func (d *Driver) SwapBuffers() {
	select {
	case d.frameDone <- struct{}{}:
	case <-d.closed:
	}
}

// Canvas implements platform.Driver.
func (d *Driver) Canvas() *gg.Context {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.canvas == nil {
		return nil
	}
	return d.canvas.Context()
}

// GraphicsAPI implements platform.GraphicsDiagnostics.
func (d *Driver) GraphicsAPI() string {
	return "webgpu"
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

// Exit implements platform.Driver: it asks gogpu to quit and waits for the
// event loop to wind down.
func (d *Driver) Exit() error {
	d.mu.Lock()
	if !d.initialized {
		d.mu.Unlock()
		return ErrNotInitialized
	}
	d.initialized = false
	app := d.app
	d.mu.Unlock()

	close(d.quitting)
	if app != nil {
		app.Quit()
	}
	<-d.closed

	d.mu.Lock()
	defer d.mu.Unlock()
	return d.runErr
}
