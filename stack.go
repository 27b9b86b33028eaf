// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package aurora

// PushView pushes a view onto the stack and plays its transition.
//
// When both the previous top and the new view are opaque, the previous top
// fades out first; with Fade the new view's show animation waits for that
// hide to finish, while the slide transitions run both in parallel. Every
// transition holds one input-block token from start until its show
// animation completes.
func (a *App) PushView(view View, animation TransitionAnimation) {
	if view == nil {
		return
	}

	// A transition in flight holds an input-block token; a second push
	// arriving before it completes is dropped, not queued.
	if len(a.viewStack) > 0 && a.blockInputsTokens != 0 {
		Logger().Debug("push dropped, transition in flight")
		return
	}

	if binder, ok := view.(appBinder); ok {
		binder.bindApp(a)
	}

	a.BlockInputs()

	var last View
	if len(a.viewStack) > 0 {
		last = a.viewStack[len(a.viewStack)-1]
	}

	fadeOut := last != nil && !last.IsTranslucent() && !view.IsTranslucent()
	wait := animation == Fade

	view.RegisterAction(NewAction("Exit", ButtonPlus, func() bool {
		a.Quit()
		return true
	}))
	view.RegisterAction(NewHiddenAction("FPS", ButtonMinus, func() bool {
		a.ToggleFramerateDisplay()
		return true
	}))

	if fadeOut {
		// Keep the stack drawing through the new view until the old
		// one has fully faded.
		view.SetForceTranslucent(true)

		if !wait {
			view.Show(a.UnblockInputs, true, animation)
		}

		last.Hide(func() {
			newLast := a.viewStack[len(a.viewStack)-1]
			newLast.SetForceTranslucent(false)

			if wait {
				newLast.Show(a.UnblockInputs, true, animation)
			}
		}, true, animation)
	}

	view.SetBoundaries(0, 0, a.contentWidth, a.contentHeight)

	if !fadeOut {
		view.Show(a.UnblockInputs, true, animation)
	} else if wait {
		view.SetAlpha(0)
	}

	if len(a.viewStack) > 0 && a.currentFocus != nil {
		Logger().Debug("pushing focus", "view", describeView(a.currentFocus))
		a.focusStack = append(a.focusStack, a.currentFocus)
	}

	view.Invalidate()
	view.WillAppear()
	a.GiveFocus(view.DefaultFocus())

	a.viewStack = append(a.viewStack, view)
}

// PopView removes the top view, animated. The root view is never popped.
// cb, if non-nil, runs after the transition chain completes: with Fade once
// the revealed view finished showing, otherwise when its show starts.
func (a *App) PopView(animation TransitionAnimation, cb func()) {
	if len(a.viewStack) <= 1 {
		return
	}

	// Dropped, not queued, while a transition is animating.
	if a.blockInputsTokens != 0 {
		Logger().Debug("pop dropped, transition in flight")
		return
	}

	if cb == nil {
		cb = func() {}
	}

	a.BlockInputs()

	last := a.viewStack[len(a.viewStack)-1]
	last.WillDisappear()
	last.SetForceTranslucent(true)

	wait := animation == Fade

	last.Hide(func() {
		last.SetForceTranslucent(false)
		a.viewStack = a.viewStack[:len(a.viewStack)-1]
		destroyView(last)

		// Reveal the uncovered view once the hide has ended.
		if wait && len(a.viewStack) > 0 {
			newLast := a.viewStack[len(a.viewStack)-1]
			if newLast.IsHidden() {
				newLast.WillAppear()
				newLast.Show(cb, true, animation)
			} else {
				cb()
			}
		}

		a.UnblockInputs()
	}, true, animation)

	// Reveal the uncovered view immediately for parallel transitions.
	if !wait && len(a.viewStack) > 1 {
		toShow := a.viewStack[len(a.viewStack)-2]
		toShow.WillAppear()
		toShow.Show(cb, true, animation)
	}

	if len(a.focusStack) > 0 {
		newFocus := a.focusStack[len(a.focusStack)-1]
		Logger().Debug("restoring focus", "view", describeView(newFocus))
		a.GiveFocus(newFocus)
		a.focusStack = a.focusStack[:len(a.focusStack)-1]
	}
}

// ViewStackSize returns the number of views on the stack, including any
// still finishing their hide animation.
func (a *App) ViewStackSize() int {
	return len(a.viewStack)
}

// StackTop returns the view at the top of the stack, or nil when empty.
func (a *App) StackTop() View {
	if len(a.viewStack) == 0 {
		return nil
	}
	return a.viewStack[len(a.viewStack)-1]
}
