// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package aurora

import "fmt"

// FocusDirection is a D-pad navigation direction.
type FocusDirection int

const (
	// FocusUp navigates toward the top of the screen.
	FocusUp FocusDirection = iota

	// FocusDown navigates toward the bottom.
	FocusDown

	// FocusLeft navigates left.
	FocusLeft

	// FocusRight navigates right.
	FocusRight
)

// String implements fmt.Stringer.
func (d FocusDirection) String() string {
	switch d {
	case FocusUp:
		return "up"
	case FocusDown:
		return "down"
	case FocusLeft:
		return "left"
	case FocusRight:
		return "right"
	default:
		return "unknown"
	}
}

// CurrentFocus returns the view currently receiving directional and action
// input, or nil.
func (a *App) CurrentFocus() View {
	return a.currentFocus
}

// OnFocusChange registers a listener fired whenever focus moves. The new
// focus (possibly nil) is passed. Listeners cannot be unregistered.
func (a *App) OnFocusChange(fn func(newFocus View)) {
	if fn != nil {
		a.focusListeners = append(a.focusListeners, fn)
	}
}

// GiveFocus moves focus to the view's default-focus descendant. Passing nil
// clears focus. When the resolved target equals the current focus nothing
// happens and no events fire.
func (a *App) GiveFocus(view View) {
	oldFocus := a.currentFocus

	var newFocus View
	if view != nil {
		newFocus = view.DefaultFocus()
	}

	if oldFocus == newFocus {
		return
	}

	if oldFocus != nil {
		oldFocus.OnFocusLost()
	}

	a.currentFocus = newFocus
	for _, fn := range a.focusListeners {
		fn(newFocus)
	}

	if newFocus != nil {
		newFocus.OnFocusGained()
		Logger().Debug("focus moved", "view", describeView(newFocus))
	}
}

// Navigate moves focus one step in the given direction.
//
// The immediate parent is asked first; when it has no candidate the
// traversal walks upward, replacing the context with each ancestor, until a
// candidate is found or the root is reached. An exhausted traversal shakes
// the current focus and leaves it unchanged.
func (a *App) Navigate(direction FocusDirection) {
	current := a.currentFocus
	if current == nil || current.Parent() == nil {
		return
	}

	next := current.Parent().NextFocus(direction, current)
	for next == nil {
		if current.Parent() == nil || current.Parent().Parent() == nil {
			break
		}
		current = current.Parent()
		next = current.Parent().NextFocus(direction, current)
	}

	if next == nil {
		a.currentFocus.ShakeHighlight(direction)
		return
	}

	a.GiveFocus(next)
}

// describeView renders a short label for logs.
func describeView(v View) string {
	if v == nil {
		return "<none>"
	}
	if d, ok := v.(interface{ Describe() string }); ok {
		return d.Describe()
	}
	return fmt.Sprintf("%T", v)
}
