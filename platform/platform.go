// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package platform abstracts window/context creation, input polling and
// frame presentation behind the Driver interface.
//
// Exactly one driver is selected at startup. Implementations register
// themselves in a priority registry (see Register); the runtime picks the
// best available one, or a specific one by name. Two implementations ship
// with aurora:
//
//   - platform/gpu: a windowed WebGPU driver hosted by gogpu
//   - platform/headless: an offscreen software driver for tests and CI
//
// Optional capabilities (touch input, platform font service, platform theme
// preference) are expressed as separate interfaces that drivers may or may
// not implement, following the same pattern gg uses for surfaces.
package platform

import (
	"github.com/gogpu/gg"
)

// Driver is the contract between the aurora runtime and the platform.
//
// The runtime drives it strictly single-threaded, once per tick:
// Update → Frame → (draw through Canvas) → SwapBuffers.
type Driver interface {
	// Initialize creates the window and graphics context at the given
	// logical size. Failure here is fatal to runtime startup.
	Initialize(title string, width, height int) error

	// Exit tears the window and context down. The driver must not be used
	// afterwards.
	Exit() error

	// Update processes platform events and polls gamepad input.
	// It returns false to request shutdown. It may block while the window
	// is not visible; no other goroutine depends on it returning promptly.
	Update() bool

	// Frame prepares and clears the next backbuffer.
	Frame()

	// SwapBuffers presents the frame drawn since Frame.
	SwapBuffers()

	// Canvas returns the vector drawing context rendering into the
	// current backbuffer. Valid from Initialize until Exit.
	Canvas() *gg.Context

	// OnWindowResize installs the callback invoked when the backbuffer
	// size changes. At most one callback is active.
	OnWindowResize(fn func(width, height int))

	// Input state queries, edge-detected against the previous tick.
	ButtonsDown() Button
	ButtonsUp() Button
	ButtonsHeld() Button
	StateChanged() bool
}

// TouchSupport is an optional interface for drivers with touch input.
// Drivers without it are treated as reporting the origin and zero touches.
type TouchSupport interface {
	// TouchPosition returns the position of the first active touch.
	TouchPosition() (x, y int)

	// TouchCount returns the number of active touches.
	TouchCount() int
}

// SharedFontKind identifies a font provided by the platform font service.
type SharedFontKind int

const (
	// SharedFontStandard is the platform's primary UI font.
	SharedFontStandard SharedFontKind = iota

	// SharedFontKorean is the platform's Korean glyph extension.
	SharedFontKorean

	// SharedFontSymbols is the platform's extended symbol font.
	SharedFontSymbols
)

// FontProvider is an optional interface for drivers whose platform offers
// shared system fonts. Unavailable kinds return ErrFontUnavailable; callers
// skip them without failing startup.
type FontProvider interface {
	SharedFont(kind SharedFontKind) ([]byte, error)
}

// ThemeVariantHint is a platform light/dark preference.
type ThemeVariantHint int

const (
	// ThemeHintNone means the platform expresses no preference.
	ThemeHintNone ThemeVariantHint = iota

	// ThemeHintLight prefers the light variant.
	ThemeHintLight

	// ThemeHintDark prefers the dark variant.
	ThemeHintDark
)

// ThemeProvider is an optional interface for drivers whose platform exposes
// a system-wide color scheme setting.
type ThemeProvider interface {
	PreferredTheme() ThemeVariantHint
}

// GraphicsDiagnostics is an optional interface for drivers that can name
// their graphics backend. Used for startup logging only.
type GraphicsDiagnostics interface {
	GraphicsAPI() string
}

// TouchPosition returns the first touch position for the driver, or the
// origin when the driver has no touch support.
func TouchPosition(d Driver) (x, y int) {
	if t, ok := d.(TouchSupport); ok {
		return t.TouchPosition()
	}
	return 0, 0
}

// TouchCount returns the number of active touches for the driver, or zero
// when the driver has no touch support.
func TouchCount(d Driver) int {
	if t, ok := d.(TouchSupport); ok {
		return t.TouchCount()
	}
	return 0
}
