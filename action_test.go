// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package aurora

import "testing"

func TestActionClosestToFocusWins(t *testing.T) {
	app := New("actions")

	parent := &testView{name: "parent"}
	child := &testView{name: "child"}
	child.SetParent(parent)

	var fired []string
	parent.RegisterAction(NewAction("parent", ButtonA, func() bool {
		fired = append(fired, "parent")
		return true
	}))
	child.RegisterAction(NewAction("child", ButtonA, func() bool {
		fired = append(fired, "child")
		return true
	}))

	app.GiveFocus(child)

	if !app.handleAction(ButtonA) {
		t.Fatal("handleAction = false with a matching action")
	}
	if len(fired) != 1 || fired[0] != "child" {
		t.Errorf("fired = %v, want [child]", fired)
	}
}

func TestActionNonConsumingFallsThrough(t *testing.T) {
	app := New("actions")

	parent := &testView{name: "parent"}
	child := &testView{name: "child"}
	child.SetParent(parent)

	var fired []string
	child.RegisterAction(NewAction("child", ButtonB, func() bool {
		fired = append(fired, "child")
		return false // do not consume
	}))
	parent.RegisterAction(NewAction("parent", ButtonB, func() bool {
		fired = append(fired, "parent")
		return true
	}))

	app.GiveFocus(child)

	if !app.handleAction(ButtonB) {
		t.Fatal("handleAction = false although the parent consumed")
	}
	if len(fired) != 2 || fired[0] != "child" || fired[1] != "parent" {
		t.Errorf("fired = %v, want [child parent]", fired)
	}
}

func TestActionUnavailableSkipped(t *testing.T) {
	app := New("actions")

	view := &testView{name: "view"}
	action := NewAction("off", ButtonX, func() bool { return true })
	action.Available = false
	view.RegisterAction(action)

	app.GiveFocus(view)

	if app.handleAction(ButtonX) {
		t.Error("handleAction = true for an unavailable action")
	}
}

func TestActionMultipleButtonsOnePass(t *testing.T) {
	app := New("actions")

	view := &testView{name: "view"}
	var fired []string
	view.RegisterAction(NewAction("a", ButtonA, func() bool {
		fired = append(fired, "a")
		return true
	}))
	view.RegisterAction(NewHiddenAction("y", ButtonY, func() bool {
		fired = append(fired, "y")
		return true
	}))

	app.GiveFocus(view)

	if !app.handleAction(ButtonA | ButtonY) {
		t.Fatal("handleAction = false")
	}
	if len(fired) != 2 {
		t.Errorf("fired = %v, want both actions", fired)
	}
}

func TestActionNoMatch(t *testing.T) {
	app := New("actions")

	view := &testView{name: "view"}
	view.RegisterAction(NewAction("a", ButtonA, func() bool { return true }))
	app.GiveFocus(view)

	if app.handleAction(ButtonL) {
		t.Error("handleAction = true for an unbound button")
	}
}

func TestActionNoFocusIsNoOp(t *testing.T) {
	app := New("actions")

	if app.handleAction(ButtonA) {
		t.Error("handleAction = true with no focused view")
	}
}
