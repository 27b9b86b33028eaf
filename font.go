// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package aurora

import (
	"errors"
	"os"

	"github.com/gogpu/aurora/platform"
	"github.com/gogpu/gg/text"
)

// Font slot names, usable with FontStash.Find.
const (
	FontRegular  = "regular"
	FontKorean   = "korean"
	FontSymbols  = "symbols"
	FontMaterial = "material"
)

// FontPaths configures the file probe chain used on platforms without a
// shared font service. For the regular and symbols slots an Override path
// is probed first, then the Default; the material icon font has a single
// fixed path.
type FontPaths struct {
	RegularOverride string
	RegularDefault  string

	SymbolsOverride string
	SymbolsDefault  string

	Material string
}

// DefaultFontPaths points at the bundled assets.
func DefaultFontPaths() FontPaths {
	return FontPaths{
		RegularOverride: "assets/fonts/Custom-Font.ttf",
		RegularDefault:  "assets/fonts/inter/Inter-Regular.ttf",
		SymbolsOverride: "assets/fonts/Custom-Symbols.ttf",
		SymbolsDefault:  "assets/fonts/symbols/Symbols-Regular.ttf",
		Material:        "assets/fonts/material/MaterialIcons-Regular.ttf",
	}
}

// FontStash holds the fixed set of named font handles, loaded once at Init
// and immutable afterwards. Any slot may be nil; the Face fallback chain
// simply skips empty slots.
type FontStash struct {
	Regular  *text.FontSource
	Korean   *text.FontSource
	Symbols  *text.FontSource
	Material *text.FontSource
}

// Find returns the source for a slot name, or nil.
func (s *FontStash) Find(name string) *text.FontSource {
	switch name {
	case FontRegular:
		return s.Regular
	case FontKorean:
		return s.Korean
	case FontSymbols:
		return s.Symbols
	case FontMaterial:
		return s.Material
	default:
		return nil
	}
}

// Face builds a face at the given size with the fallback chain registered
/// in priority order: regular, korean, symbols, material. Returns nil when
// no font loaded at all.
func (s *FontStash) Face(size float64) text.Face {
	var faces []text.Face
	for _, src := range []*text.FontSource{s.Regular, s.Korean, s.Symbols, s.Material} {
		if src != nil {
			faces = append(faces, src.Face(size))
		}
	}

	switch len(faces) {
	case 0:
		return nil
	case 1:
		return faces[0]
	}

	multi, err := text.NewMultiFace(faces...)
	if err != nil {
		Logger().Warn("font fallback chain rejected", "err", err)
		return faces[0]
	}
	return multi
}

// loadFonts fills the stash from the platform font service when the driver
// offers one, else from the file probe chain. Missing optional fonts are
// logged and skipped; loadFonts never fails.
func loadFonts(driver platform.Driver, paths FontPaths) FontStash {
	var stash FontStash

	if fp, ok := driver.(platform.FontProvider); ok {
		stash.Regular = loadSharedFont(fp, platform.SharedFontStandard, FontRegular)
		stash.Korean = loadSharedFont(fp, platform.SharedFontKorean, FontKorean)
		stash.Symbols = loadSharedFont(fp, platform.SharedFontSymbols, FontSymbols)
	} else {
		stash.Regular = loadFontFile(FontRegular, paths.RegularOverride, paths.RegularDefault)
		stash.Symbols = loadFontFile(FontSymbols, paths.SymbolsOverride, paths.SymbolsDefault)
	}

	stash.Material = loadFontFile(FontMaterial, paths.Material)

	if stash.Symbols == nil {
		Logger().Warn("symbols font not found, fallback glyphs unavailable")
	}
	if stash.Material == nil {
		Logger().Warn("material icon font not found, icon glyphs unavailable")
	}

	return stash
}

// loadSharedFont requests one shared system font; unavailable kinds are
// skipped silently, other failures logged.
func loadSharedFont(fp platform.FontProvider, kind platform.SharedFontKind, slot string) *text.FontSource {
	data, err := fp.SharedFont(kind)
	if err != nil {
		if !errors.Is(err, platform.ErrFontUnavailable) {
			Logger().Warn("shared font request failed", "slot", slot, "err", err)
		}
		return nil
	}

	src, err := text.NewFontSource(data)
	if err != nil {
		Logger().Warn("shared font rejected", "slot", slot, "err", err)
		return nil
	}

	Logger().Info("using platform shared font", "slot", slot)
	return src
}

// loadFontFile probes candidate paths in order and loads the first that
// exists. Returns nil when none do.
func loadFontFile(slot string, candidates ...string) *text.FontSource {
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err != nil {
			continue
		}

		src, err := text.NewFontSourceFromFile(path)
		if err != nil {
			Logger().Warn("font file rejected", "slot", slot, "path", path, "err", err)
			continue
		}

		Logger().Info("loaded font", "slot", slot, "path", path)
		return src
	}
	return nil
}
