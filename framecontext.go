// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package aurora

import "github.com/gogpu/gg"

// FrameContext is the transient state handed down the view tree while
// drawing one frame. It is rebuilt every tick and must not be retained
// past the Frame call that received it.
type FrameContext struct {
	// Canvas is the vector drawing context for the current backbuffer.
	Canvas *gg.Context

	// PixelRatio is the window width/height ratio.
	PixelRatio float64

	// Fonts is the application font stash.
	Fonts *FontStash

	// Theme is the value table resolved for the active variant.
	Theme *ThemeValues

	// Style is the active metric table.
	Style *Style
}
