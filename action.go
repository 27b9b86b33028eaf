// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package aurora

// ActionListener handles a button press routed to a view-scoped action.
// Returning true consumes the key for the rest of the dispatch pass.
type ActionListener func() bool

// Action is a key-bound, view-scoped input handler.
//
// Actions are consumed bottom-up from the focused view toward the root:
// the closest view with an available, matching, not-yet-consumed action
// wins, and views further up never see an already-consumed key.
type Action struct {
	// Key is the button bitmask the action responds to.
	Key Button

	// HintText labels the action in hint UI (footers, overlays).
	HintText string

	// Available gates the listener without unregistering the action.
	Available bool

	// Hidden excludes the action from hint UI while keeping it active.
	Hidden bool

	// Listener is invoked when the key fires. A true return marks the
	// key consumed for this dispatch pass.
	Listener ActionListener
}

// NewAction builds a visible, available action.
func NewAction(hint string, key Button, listener ActionListener) Action {
	return Action{
		Key:       key,
		HintText:  hint,
		Available: true,
		Listener:  listener,
	}
}

// NewHiddenAction builds an available action excluded from hint UI.
func NewHiddenAction(hint string, key Button, listener ActionListener) Action {
	a := NewAction(hint, key, listener)
	a.Hidden = true
	return a
}

// handleAction walks from the focused view up through parent links,
// offering the pressed buttons to each view's actions. Consumed keys are
// tracked per pass so the same key fires at most one listener.
// Reports whether any action consumed the input.
func (a *App) handleAction(buttons Button) bool {
	consumed := make(map[Button]struct{})

	for view := a.currentFocus; view != nil; view = view.Parent() {
		for _, action := range view.Actions() {
			if action.Key&buttons == 0 {
				continue
			}
			if _, ok := consumed[action.Key]; ok {
				continue
			}
			if !action.Available || action.Listener == nil {
				continue
			}
			if action.Listener() {
				consumed[action.Key] = struct{}{}
			}
		}
	}

	return len(consumed) > 0
}
