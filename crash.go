// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package aurora

// CrashView is a full-screen fatal-error surface. It replaces whatever is
// on screen with the error message and a single OK action that quits the
// runtime, giving the process a last legible frame instead of a silent
// abort.
type CrashView struct {
	ViewBase

	text string
}

// NewCrashView builds the error surface for the given message.
func NewCrashView(text string) *CrashView {
	v := &CrashView{text: text}
	v.RegisterAction(NewAction("OK", ButtonA, func() bool {
		if v.App() != nil {
			v.App().Quit()
		}
		return true
	}))
	return v
}

// Text returns the crash message.
func (v *CrashView) Text() string { return v.text }

// DefaultFocus implements View: the crash surface itself takes focus, so
// the OK action is always reachable and nothing beneath it can be focused.
func (v *CrashView) DefaultFocus() View { return v }

// Frame implements View.
func (v *CrashView) Frame(ctx *FrameContext) {
	x, y, width, height := v.Boundaries()
	canvas := ctx.Canvas

	bg := ctx.Theme.CrashBackground
	canvas.SetRGBA(bg.R, bg.G, bg.B, bg.A*v.Alpha())
	canvas.DrawRectangle(float64(x), float64(y), float64(width), float64(height))
	if err := canvas.Fill(); err != nil {
		Logger().Warn("crash background fill failed", "err", err)
	}

	fg := ctx.Theme.CrashText
	canvas.SetRGBA(fg.R, fg.G, fg.B, fg.A*v.Alpha())

	cx := float64(x) + float64(width)/2
	cy := float64(y) + float64(height)/2

	if face := ctx.Fonts.Face(24); face != nil {
		canvas.SetFont(face)
		canvas.DrawStringAnchored(v.text, cx, cy-20, 0.5, 0.5)
	}
	if face := ctx.Fonts.Face(18); face != nil {
		canvas.SetFont(face)
		canvas.DrawStringAnchored(" OK", cx, float64(y+height)-60, 0.5, 0.5)
	}
}
