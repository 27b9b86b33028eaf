// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package aurora

import "time"

// TaskID identifies a scheduled task for cancellation.
type TaskID uint64

type task struct {
	id       TaskID
	due      time.Time
	period   time.Duration // 0 for one-shot
	fn       func()
	canceled bool
}

// TaskManager is a frame-driven scheduler for deferred and periodic work.
//
// The runtime calls Frame exactly once per main-loop tick; due work runs
// synchronously on the main thread and must not block. TaskManager is not
// safe for concurrent use.
type TaskManager struct {
	nextID    TaskID
	tasks     []*task
	nextFrame []func()

	// now is swappable for tests.
	now func() time.Time
}

// NewTaskManager creates an empty scheduler.
func NewTaskManager() *TaskManager {
	return &TaskManager{now: time.Now}
}

// NextFrame runs fn once on the next Frame call.
func (m *TaskManager) NextFrame(fn func()) {
	if fn != nil {
		m.nextFrame = append(m.nextFrame, fn)
	}
}

// After runs fn once as soon as a Frame call happens at or after d from now.
func (m *TaskManager) After(d time.Duration, fn func()) TaskID {
	return m.schedule(d, 0, fn)
}

// Every runs fn on the first Frame at or after each multiple of d.
// Repeats reschedule from their previous deadline, not from execution time,
// so cadence does not drift with frame jitter.
func (m *TaskManager) Every(d time.Duration, fn func()) TaskID {
	if d <= 0 {
		d = time.Millisecond
	}
	return m.schedule(d, d, fn)
}

func (m *TaskManager) schedule(delay, period time.Duration, fn func()) TaskID {
	if fn == nil {
		return 0
	}
	m.nextID++
	m.tasks = append(m.tasks, &task{
		id:     m.nextID,
		due:    m.now().Add(delay),
		period: period,
		fn:     fn,
	})
	return m.nextID
}

// Cancel stops a scheduled task. Canceling an unknown or completed ID is a
// no-op.
func (m *TaskManager) Cancel(id TaskID) {
	for _, t := range m.tasks {
		if t.id == id {
			t.canceled = true
			return
		}
	}
}

// Frame advances the scheduler by one tick, running everything due.
// Work scheduled from inside a callback runs no earlier than the next tick.
func (m *TaskManager) Frame() {
	if len(m.nextFrame) > 0 {
		pending := m.nextFrame
		m.nextFrame = nil
		for _, fn := range pending {
			fn()
		}
	}

	if len(m.tasks) == 0 {
		return
	}

	now := m.now()
	snapshot := m.tasks

	for _, t := range snapshot {
		if t.canceled || now.Before(t.due) {
			continue
		}

		t.fn()

		if t.period > 0 {
			t.due = t.due.Add(t.period)
			// A long stall should not burst every missed period.
			if t.due.Before(now) {
				t.due = now.Add(t.period)
			}
		} else {
			t.canceled = true
		}
	}

	remaining := m.tasks[:0]
	for _, t := range m.tasks {
		if !t.canceled {
			remaining = append(remaining, t)
		}
	}
	m.tasks = remaining
}
