// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package aurora

import (
	"strconv"
	"time"
)

// framerateCounter is the FPS overlay toggled by ToggleFramerateDisplay.
// It counts rendered frames and republishes the number once per second, so
// the displayed value is stable rather than flickering every frame.
type framerateCounter struct {
	x, y          int
	width, height int

	frames     int
	fps        int
	lastUpdate time.Time

	now func() time.Time
}

func newFramerateCounter() *framerateCounter {
	c := &framerateCounter{now: time.Now}
	c.lastUpdate = c.now()
	return c
}

func (c *framerateCounter) setBoundaries(x, y, width, height int) {
	c.x, c.y = x, y
	c.width, c.height = width, height
}

func (c *framerateCounter) frame(ctx *FrameContext) {
	c.frames++

	now := c.now()
	if now.Sub(c.lastUpdate) >= time.Second {
		c.fps = c.frames
		c.frames = 0
		c.lastUpdate = now
	}

	canvas := ctx.Canvas

	bg := ctx.Theme.NotificationBackground
	canvas.SetRGBA(bg.R, bg.G, bg.B, bg.A)
	canvas.DrawRectangle(float64(c.x), float64(c.y), float64(c.width), float64(c.height))
	if err := canvas.Fill(); err != nil {
		Logger().Warn("fps overlay fill failed", "err", err)
	}

	fg := ctx.Theme.NotificationText
	canvas.SetRGBA(fg.R, fg.G, fg.B, fg.A)
	if face := ctx.Fonts.Face(ctx.Style.FramerateCounter.TextSize); face != nil {
		canvas.SetFont(face)
		canvas.DrawStringAnchored("FPS: "+strconv.Itoa(c.fps),
			float64(c.x)+8, float64(c.y)+float64(c.height)/2, 0, 0.5)
	}
}
