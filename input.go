// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package aurora

import (
	"time"

	"github.com/gogpu/aurora/platform"
)

// Button aliases the platform button mask so application code rarely needs
// to import platform directly.
type Button = platform.Button

// Button mask re-exports.
const (
	ButtonA      = platform.ButtonA
	ButtonB      = platform.ButtonB
	ButtonX      = platform.ButtonX
	ButtonY      = platform.ButtonY
	ButtonLStick = platform.ButtonLStick
	ButtonRStick = platform.ButtonRStick
	ButtonL      = platform.ButtonL
	ButtonR      = platform.ButtonR
	ButtonPlus   = platform.ButtonPlus
	ButtonMinus  = platform.ButtonMinus
	ButtonDLeft  = platform.ButtonDLeft
	ButtonDUp    = platform.ButtonDUp
	ButtonDRight = platform.ButtonDRight
	ButtonDDown  = platform.ButtonDDown
	ButtonNone   = platform.ButtonNone
)

// Button repeat tuning. The timer advances roughly once per millisecond
// while any button is held; after buttonRepeatDelay ticks every
// buttonRepeatCadence-th tick becomes a synthetic repeat press.
const (
	buttonRepeatDelay   = 15
	buttonRepeatCadence = 5
)

// buttonRepeater is the held-button repeat state machine.
//
// Any change in the held set resets the timer, so the first repeat only
// fires after a button has been held alone and unchanged through the whole
// delay window.
type buttonRepeater struct {
	timer   int
	lastInc time.Time
	delay   int
	cadence int
}

func newButtonRepeater() buttonRepeater {
	return buttonRepeater{delay: buttonRepeatDelay, cadence: buttonRepeatCadence}
}

// advance moves the machine one main-loop tick forward and reports whether
// this tick is a synthetic repeat press.
func (r *buttonRepeater) advance(now time.Time, anyHeld, changed bool) bool {
	if changed {
		r.timer = 0
		r.lastInc = time.Time{}
	}
	if !anyHeld {
		return false
	}
	if now.Sub(r.lastInc) < time.Millisecond {
		return false
	}
	r.lastInc = now
	r.timer++

	return r.timer > r.delay && r.timer%r.cadence == 0
}
