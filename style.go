// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package aurora

import "time"

// AnimationsStyle carries transition timing metrics.
type AnimationsStyle struct {
	ShowDuration time.Duration
	HideDuration time.Duration

	ShakeDuration  time.Duration
	ShakeAmplitude float64
}

// FramerateCounterStyle sizes the FPS overlay box.
type FramerateCounterStyle struct {
	Width    int
	Height   int
	TextSize float64
}

// NotificationStyle lays out the transient message cards.
type NotificationStyle struct {
	Width        int
	Padding      int
	Spacing      int
	CornerRadius float64
	TextSize     float64
	Lifetime     time.Duration
	FadeDuration time.Duration
}

// Style is the process-wide metric table. All values are authored against
// the logical design resolution.
type Style struct {
	Animations       AnimationsStyle
	FramerateCounter FramerateCounterStyle
	Notification     NotificationStyle
}

// DefaultStyle returns the built-in metric table.
func DefaultStyle() *Style {
	return &Style{
		Animations: AnimationsStyle{
			ShowDuration:   100 * time.Millisecond,
			HideDuration:   100 * time.Millisecond,
			ShakeDuration:  90 * time.Millisecond,
			ShakeAmplitude: 10,
		},
		FramerateCounter: FramerateCounterStyle{
			Width:    125,
			Height:   26,
			TextSize: 18,
		},
		Notification: NotificationStyle{
			Width:        340,
			Padding:      16,
			Spacing:      10,
			CornerRadius: 6,
			TextSize:     18,
			Lifetime:     3 * time.Second,
			FadeDuration: 300 * time.Millisecond,
		},
	}
}

// Style returns the active metric table.
func (a *App) Style() *Style {
	return a.style
}
