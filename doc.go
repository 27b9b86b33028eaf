// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package aurora is a retained-mode UI runtime for console-style
// application front-ends, built on the gg vector-graphics context.
//
// The runtime orchestrates one cooperative frame loop: it polls a platform
// driver for window events and gamepad input, dispatches button presses to
// view-scoped actions and directional focus navigation, advances the tween
// engine and the frame-driven task scheduler, then renders the view stack
// bottom-to-top and presents the frame.
//
// A minimal host looks like:
//
//	app := aurora.New("Demo")
//	if err := app.Init(); err != nil {
//	    log.Fatal(err)
//	}
//	app.PushView(rootView, aurora.Fade)
//	for app.MainLoop() {
//	}
//
// Views are any type implementing the View contract, typically by embedding
// ViewBase. The widget set itself lives outside this module; aurora only
// consumes the polymorphic contract (geometry, translucency, focus, actions,
// show/hide transitions).
//
// Platform access goes through the platform.Driver interface. Importing
// platform/gpu registers the windowed WebGPU driver; platform/headless
// registers an offscreen software driver used by tests and CI. The runtime
// picks the best available driver at Init, or a specific one by name.
//
// Everything runs on the goroutine that calls MainLoop. Animated push/pop
// transitions are sequenced with completion callbacks fired from the
// per-frame tween update, never with blocking waits, and a block-input
// token counter keeps a second transition from racing one in flight.
package aurora
