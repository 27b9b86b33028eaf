// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package platform

// Button is a bitmask of gamepad buttons. The mask layout is shared by every
// driver; desktop drivers synthesize it from keyboard keys when no physical
// gamepad is present.
type Button uint32

const (
	// ButtonA is the primary confirm button.
	ButtonA Button = 1 << iota

	// ButtonB is the cancel/back button.
	ButtonB

	// ButtonX is the north face button.
	ButtonX

	// ButtonY is the west face button.
	ButtonY

	// ButtonLStick is the left stick click.
	ButtonLStick

	// ButtonRStick is the right stick click.
	ButtonRStick

	// ButtonL is the left shoulder button.
	ButtonL

	// ButtonR is the right shoulder button.
	ButtonR

	// ButtonPlus is the start/plus system button.
	ButtonPlus

	// ButtonMinus is the select/minus system button.
	ButtonMinus

	// ButtonDLeft is the directional pad left.
	ButtonDLeft

	// ButtonDUp is the directional pad up.
	ButtonDUp

	// ButtonDRight is the directional pad right.
	ButtonDRight

	// ButtonDDown is the directional pad down.
	ButtonDDown
)

// ButtonNone is the empty mask.
const ButtonNone Button = 0

// InputState tracks the held-button mask across ticks and derives edges.
//
// Drivers embed InputState and call Set once per Update with the freshly
// polled mask; the previous mask is kept so that down/up edges fall out of
// a XOR, exactly one tick wide.
type InputState struct {
	held Button
	prev Button
}

// Set records the polled mask for the current tick.
func (s *InputState) Set(held Button) {
	s.prev = s.held
	s.held = held
}

// ButtonsHeld returns the mask of buttons currently held.
func (s *InputState) ButtonsHeld() Button {
	return s.held
}

// ButtonsDown returns the buttons newly pressed this tick.
func (s *InputState) ButtonsDown() Button {
	return ^s.prev & s.held
}

// ButtonsUp returns the buttons released this tick.
func (s *InputState) ButtonsUp() Button {
	return s.prev & ^s.held
}

// StateChanged reports whether the held set differs from the previous tick.
func (s *InputState) StateChanged() bool {
	return s.held != s.prev
}

// AnyButtonHeld reports whether any button is currently held.
func (s *InputState) AnyButtonHeld() bool {
	return s.held != 0
}
