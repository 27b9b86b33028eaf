// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package aurora

import (
	"errors"
	"testing"

	"github.com/gogpu/aurora/platform"
	"github.com/gogpu/aurora/platform/headless"
)

func TestFontStashEmpty(t *testing.T) {
	var stash FontStash

	for _, name := range []string{FontRegular, FontKorean, FontSymbols, FontMaterial} {
		if got := stash.Find(name); got != nil {
			t.Errorf("Find(%q) = %v on empty stash, want nil", name, got)
		}
	}
	if got := stash.Find("unknown"); got != nil {
		t.Errorf("Find(unknown) = %v, want nil", got)
	}
	if face := stash.Face(20); face != nil {
		t.Errorf("Face on empty stash = %v, want nil", face)
	}
}

func TestLoadFontsMissingFilesDegrade(t *testing.T) {
	paths := FontPaths{
		RegularDefault: "testdata/definitely-not-there.ttf",
		SymbolsDefault: "testdata/also-missing.ttf",
		Material:       "testdata/missing-too.ttf",
	}

	stash := loadFonts(headless.New(), paths)

	if stash.Regular != nil || stash.Symbols != nil || stash.Material != nil {
		t.Error("missing font files produced non-nil sources")
	}
}

// fontlessDriver is a headless driver with a font service that carries
// nothing.
type fontlessDriver struct {
	*headless.Driver
	requests int
}

func (d *fontlessDriver) SharedFont(platform.SharedFontKind) ([]byte, error) {
	d.requests++
	return nil, platform.ErrFontUnavailable
}

func TestLoadFontsPrefersProvider(t *testing.T) {
	d := &fontlessDriver{Driver: headless.New()}

	stash := loadFonts(d, DefaultFontPaths())

	// All three shared slots were asked for, none filled, no failure.
	if d.requests != 3 {
		t.Errorf("shared font requests = %d, want 3", d.requests)
	}
	if stash.Regular != nil || stash.Korean != nil || stash.Symbols != nil {
		t.Error("unavailable shared fonts produced non-nil sources")
	}
}

// brokenFontDriver fails font requests with a real error.
type brokenFontDriver struct {
	*headless.Driver
}

func (d *brokenFontDriver) SharedFont(platform.SharedFontKind) ([]byte, error) {
	return nil, errors.New("font service crashed")
}

func TestLoadFontsProviderErrorsDegrade(t *testing.T) {
	stash := loadFonts(&brokenFontDriver{Driver: headless.New()}, DefaultFontPaths())
	if stash.Regular != nil {
		t.Error("errored shared font produced a non-nil source")
	}
}
