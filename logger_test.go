// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package aurora

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestLoggerDefaultSilent(t *testing.T) {
	SetLogger(nil)

	l := Logger()
	if l == nil {
		t.Fatal("Logger() = nil")
	}
	if l.Enabled(nil, slog.LevelError) {
		t.Error("default logger enabled at error level")
	}
}

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	defer SetLogger(nil)

	Logger().Info("driver ready", "name", "headless")

	if !strings.Contains(buf.String(), "driver ready") {
		t.Errorf("log output missing message: %q", buf.String())
	}
	if !strings.Contains(buf.String(), "name=headless") {
		t.Errorf("log output missing attribute: %q", buf.String())
	}
}
