// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package platform

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// Common registry errors.
var (
	// ErrNoDriver is returned when no registered driver is available.
	ErrNoDriver = errors.New("platform: no driver available")

	// ErrUnknownDriver is returned when a driver name is not registered.
	ErrUnknownDriver = errors.New("platform: unknown driver")

	// ErrFontUnavailable is returned by FontProvider implementations for
	// shared fonts the platform does not carry.
	ErrFontUnavailable = errors.New("platform: shared font unavailable")
)

// Factory creates a new, uninitialized Driver instance.
type Factory func() Driver

type registryEntry struct {
	name      string
	priority  int
	factory   Factory
	available func() bool
}

// registry holds registered drivers keyed by name.
//
// Standard priorities:
//   - 100: hardware-backed windowed drivers
//   - 10: software/offscreen drivers
type registry struct {
	mu      sync.RWMutex
	entries map[string]*registryEntry
}

var globalRegistry = &registry{entries: make(map[string]*registryEntry)}

// Register adds a driver to the global registry. Drivers register from their
// package init; registering an existing name replaces the previous entry.
// If available is nil the driver is assumed always available.
func Register(name string, priority int, factory Factory, available func() bool) {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()

	globalRegistry.entries[name] = &registryEntry{
		name:      name,
		priority:  priority,
		factory:   factory,
		available: available,
	}
}

// List returns registered driver names sorted by priority, highest first.
func List() []string {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()

	entries := make([]*registryEntry, 0, len(globalRegistry.entries))
	for _, e := range globalRegistry.entries {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].priority != entries[j].priority {
			return entries[i].priority > entries[j].priority
		}
		return entries[i].name < entries[j].name
	})

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.name
	}
	return names
}

// New constructs the best available driver: the highest-priority registered
// entry whose availability check passes.
func New() (Driver, error) {
	for _, name := range List() {
		globalRegistry.mu.RLock()
		e := globalRegistry.entries[name]
		globalRegistry.mu.RUnlock()

		if e.available != nil && !e.available() {
			continue
		}
		return e.factory(), nil
	}
	return nil, ErrNoDriver
}

// NewByName constructs a specific driver regardless of priority.
// The availability check still applies.
func NewByName(name string) (Driver, error) {
	globalRegistry.mu.RLock()
	e, ok := globalRegistry.entries[name]
	globalRegistry.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, name)
	}
	if e.available != nil && !e.available() {
		return nil, fmt.Errorf("%w: %q is not available", ErrNoDriver, name)
	}
	return e.factory(), nil
}
