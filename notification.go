// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package aurora

import "time"

// maxNotifications caps the visible queue; older messages are evicted
// first.
const maxNotifications = 5

type notification struct {
	text    string
	expires time.Time
}

// NotificationManager queues transient overlay messages and draws them once
// per frame in the top-right corner of the content area.
//
// It is driven exclusively by the runtime: Notify may be called from
// anywhere on the main thread, Frame runs once per tick and never blocks.
type NotificationManager struct {
	queue []*notification

	x, y          int
	width, height int

	now func() time.Time
}

// NewNotificationManager creates an empty manager.
func NewNotificationManager() *NotificationManager {
	return &NotificationManager{now: time.Now}
}

// SetBoundaries positions the manager in the logical content area.
func (m *NotificationManager) SetBoundaries(x, y, width, height int) {
	m.x, m.y = x, y
	m.width, m.height = width, height
}

// Notify enqueues a transient message. When the queue is full the oldest
// message is evicted.
func (m *NotificationManager) Notify(text string, lifetime time.Duration) {
	if lifetime <= 0 {
		lifetime = 3 * time.Second
	}
	if len(m.queue) >= maxNotifications {
		m.queue = m.queue[1:]
	}
	m.queue = append(m.queue, &notification{
		text:    text,
		expires: m.now().Add(lifetime),
	})
}

// Pending returns the number of queued messages, expired ones included
// until the next Frame.
func (m *NotificationManager) Pending() int {
	return len(m.queue)
}

// Frame expires old messages and draws the remaining ones as translucent
// cards, newest at the top, fading out over the style's fade duration.
func (m *NotificationManager) Frame(ctx *FrameContext) {
	now := m.now()

	remaining := m.queue[:0]
	for _, n := range m.queue {
		if now.Before(n.expires) {
			remaining = append(remaining, n)
		}
	}
	m.queue = remaining

	if len(m.queue) == 0 || ctx == nil || ctx.Canvas == nil {
		return
	}

	style := ctx.Style.Notification
	cardWidth := float64(style.Width)
	padding := float64(style.Padding)
	spacing := float64(style.Spacing)

	face := ctx.Fonts.Face(style.TextSize)
	if face != nil {
		ctx.Canvas.SetFont(face)
	}

	x := float64(m.x+m.width) - cardWidth - padding
	y := padding

	for i := len(m.queue) - 1; i >= 0; i-- {
		n := m.queue[i]

		alpha := 1.0
		if left := n.expires.Sub(now); left < style.FadeDuration {
			alpha = left.Seconds() / style.FadeDuration.Seconds()
		}

		textHeight := style.TextSize
		if face != nil {
			_, textHeight = ctx.Canvas.MeasureString(n.text)
		}
		cardHeight := textHeight + padding

		bg := ctx.Theme.NotificationBackground
		ctx.Canvas.SetRGBA(bg.R, bg.G, bg.B, bg.A*alpha)
		ctx.Canvas.DrawRoundedRectangle(x, y, cardWidth, cardHeight, style.CornerRadius)
		_ = ctx.Canvas.Fill()

		fg := ctx.Theme.NotificationText
		ctx.Canvas.SetRGBA(fg.R, fg.G, fg.B, fg.A*alpha)
		if face != nil {
			ctx.Canvas.DrawStringAnchored(n.text, x+padding/2, y+cardHeight/2, 0, 0.5)
		}

		y += cardHeight + spacing
	}
}
