// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package aurora

import (
	"github.com/gogpu/aurora/anim"
)

// TransitionAnimation names the transition style governing push/pop
// sequencing.
type TransitionAnimation int

const (
	// Fade cross-fades the two views, waiting for the outgoing hide
	// animation before the incoming show animation starts.
	Fade TransitionAnimation = iota

	// SlideLeft runs the hide and show animations in parallel.
	SlideLeft

	// SlideRight runs the hide and show animations in parallel.
	SlideRight
)

// String implements fmt.Stringer.
func (t TransitionAnimation) String() string {
	switch t {
	case Fade:
		return "fade"
	case SlideLeft:
		return "slide-left"
	case SlideRight:
		return "slide-right"
	default:
		return "unknown"
	}
}

// View is the contract between the runtime and a node of the renderable,
// focusable tree. Widgets implement it by embedding ViewBase and overriding
// what they need; the runtime owns views on the stack and never assumes
// anything beyond this interface.
type View interface {
	// Parent returns the containing view, or nil at a tree root.
	// The reference is non-owning; ownership is the tree structure.
	Parent() View

	// SetParent installs the parent back-reference.
	SetParent(parent View)

	// DefaultFocus resolves the view's preferred focusable descendant,
	// or nil if nothing in this subtree can take focus.
	DefaultFocus() View

	// NextFocus returns the next focusable view in the given direction,
	// using from (a direct child) as the traversal context. Nil means
	// this container has no candidate and traversal continues upward.
	NextFocus(direction FocusDirection, from View) View

	// Frame draws the view for the current frame.
	Frame(ctx *FrameContext)

	// SetBoundaries positions the view in the logical content area.
	SetBoundaries(x, y, width, height int)

	// Boundaries returns the current position and size.
	Boundaries() (x, y, width, height int)

	// Invalidate recomputes layout for the current boundaries.
	Invalidate()

	// WillAppear is called before the view becomes part of the visible
	// stack; WillDisappear before it is removed or obscured for good.
	WillAppear()
	WillDisappear()

	// Show plays the appearance transition and calls cb when it
	// completes. With animated false the view appears immediately and cb
	// still runs. cb may be nil.
	Show(cb func(), animated bool, animation TransitionAnimation)

	// Hide plays the disappearance transition, marking the view hidden
	// when it completes, then calls cb. cb may be nil.
	Hide(cb func(), animated bool, animation TransitionAnimation)

	// IsHidden reports whether the view finished a hide transition and
	// has not been shown since.
	IsHidden() bool

	// IsTranslucent reports whether views beneath this one in the stack
	// must still be drawn.
	IsTranslucent() bool

	// SetForceTranslucent overrides translucency for the duration of a
	// stack transition.
	SetForceTranslucent(force bool)

	// Alpha is the view's current opacity in [0,1].
	Alpha() float64
	SetAlpha(alpha float64)

	// Focus event hooks.
	OnFocusGained()
	OnFocusLost()

	// ShakeHighlight plays the "nothing there" feedback animation.
	ShakeHighlight(direction FocusDirection)

	// OnWindowSizeChanged is called after the logical content area
	// changed and new boundaries were applied.
	OnWindowSizeChanged()

	// Actions returns the input actions registered on this view, in
	// registration order.
	Actions() []*Action

	// RegisterAction adds an input action to this view.
	RegisterAction(action Action)
}

// Closer is an optional interface for views holding resources that must be
// released when the view is destroyed after being popped.
type Closer interface {
	Close() error
}

// destroyView releases a view's resources if it implements Closer.
func destroyView(v View) {
	closer, ok := v.(Closer)
	if !ok {
		return
	}
	if err := closer.Close(); err != nil {
		Logger().Warn("view close failed", "view", describeView(v), "err", err)
	}
}

// appBinder is implemented by ViewBase; PushView uses it to hand views a
// reference to the runtime before any transition starts.
type appBinder interface {
	bindApp(app *App)
}

// ViewBase supplies default state and behavior for the View contract.
// Embed it and override the methods the widget cares about.
type ViewBase struct {
	parent View
	app    *App

	x, y          int
	width, height int

	alpha            float64
	shown            bool
	hidden           bool
	translucent      bool
	forceTranslucent bool

	shakeOffset float64

	actions []*Action
}

func (v *ViewBase) bindApp(app *App) {
	v.app = app
}

// App returns the runtime this view is attached to, or nil before the view
// was first pushed.
func (v *ViewBase) App() *App {
	return v.app
}

// Parent implements View.
func (v *ViewBase) Parent() View { return v.parent }

// SetParent implements View.
func (v *ViewBase) SetParent(parent View) { v.parent = parent }

// DefaultFocus implements View. The base view is not focusable; focusable
// widgets override this to return themselves or a descendant.
func (v *ViewBase) DefaultFocus() View { return nil }

// NextFocus implements View. The base view is not a container.
func (v *ViewBase) NextFocus(FocusDirection, View) View { return nil }

// Frame implements View. The base view draws nothing.
func (v *ViewBase) Frame(*FrameContext) {}

// SetBoundaries implements View.
func (v *ViewBase) SetBoundaries(x, y, width, height int) {
	v.x, v.y = x, y
	v.width, v.height = width, height
}

// Boundaries implements View.
func (v *ViewBase) Boundaries() (x, y, width, height int) {
	return v.x, v.y, v.width, v.height
}

// Invalidate implements View.
func (v *ViewBase) Invalidate() {}

// WillAppear implements View.
func (v *ViewBase) WillAppear() {}

// WillDisappear implements View.
func (v *ViewBase) WillDisappear() {}

// Show implements View: fades alpha to 1 through the runtime's tween
// engine, or appears instantly when unanimated or unattached.
func (v *ViewBase) Show(cb func(), animated bool, animation TransitionAnimation) {
	v.hidden = false
	v.shown = true

	if !animated || v.app == nil {
		v.alpha = 1
		if cb != nil {
			cb()
		}
		return
	}

	d := v.app.style.Animations.ShowDuration.Seconds()
	t := v.app.anim.Go(v.alpha, 1, d, anim.EaseOutQuad, func(a float64) { v.alpha = a })
	if cb != nil {
		t.OnDone(cb)
	}
}

// Hide implements View: fades alpha to 0, marking the view hidden when the
// transition completes.
func (v *ViewBase) Hide(cb func(), animated bool, animation TransitionAnimation) {
	done := func() {
		v.hidden = true
		if cb != nil {
			cb()
		}
	}

	if !animated || v.app == nil {
		v.alpha = 0
		done()
		return
	}

	d := v.app.style.Animations.HideDuration.Seconds()
	v.app.anim.Go(v.alpha, 0, d, anim.EaseOutQuad, func(a float64) { v.alpha = a }).OnDone(done)
}

// IsHidden implements View.
func (v *ViewBase) IsHidden() bool { return v.hidden }

// IsTranslucent implements View.
func (v *ViewBase) IsTranslucent() bool {
	return v.translucent || v.forceTranslucent
}

// SetTranslucent marks the view as intrinsically translucent: views below
// it in the stack keep being drawn.
func (v *ViewBase) SetTranslucent(translucent bool) {
	v.translucent = translucent
}

// SetForceTranslucent implements View.
func (v *ViewBase) SetForceTranslucent(force bool) {
	v.forceTranslucent = force
}

// Alpha implements View.
func (v *ViewBase) Alpha() float64 { return v.alpha }

// SetAlpha implements View.
func (v *ViewBase) SetAlpha(alpha float64) { v.alpha = alpha }

// OnFocusGained implements View.
func (v *ViewBase) OnFocusGained() {}

// OnFocusLost implements View.
func (v *ViewBase) OnFocusLost() {}

// ShakeOffset is the current horizontal/vertical offset of the shake
// feedback animation, for widgets that render a highlight.
func (v *ViewBase) ShakeOffset() float64 { return v.shakeOffset }

// ShakeHighlight implements View with a quick out-and-back nudge.
func (v *ViewBase) ShakeHighlight(direction FocusDirection) {
	if v.app == nil {
		return
	}

	amplitude := v.app.style.Animations.ShakeAmplitude
	if direction == FocusLeft || direction == FocusUp {
		amplitude = -amplitude
	}

	d := v.app.style.Animations.ShakeDuration.Seconds()
	v.app.anim.Go(0, amplitude, d/2, anim.EaseOutQuad, func(o float64) { v.shakeOffset = o }).
		OnDone(func() {
			v.app.anim.Go(amplitude, 0, d/2, anim.EaseOutQuad, func(o float64) { v.shakeOffset = o })
		})
}

// OnWindowSizeChanged implements View.
func (v *ViewBase) OnWindowSizeChanged() {}

// Actions implements View.
func (v *ViewBase) Actions() []*Action { return v.actions }

// RegisterAction implements View.
func (v *ViewBase) RegisterAction(action Action) {
	a := action
	v.actions = append(v.actions, &a)
}
