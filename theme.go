// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package aurora

import (
	"os"
	"strings"

	"github.com/gogpu/aurora/platform"
	"github.com/gogpu/gg"
)

// ThemeVariant selects the light or dark value table of a Theme.
type ThemeVariant int

const (
	// ThemeLight is the default variant.
	ThemeLight ThemeVariant = iota

	// ThemeDark is the dark variant.
	ThemeDark
)

// String implements fmt.Stringer.
func (v ThemeVariant) String() string {
	if v == ThemeDark {
		return "dark"
	}
	return "light"
}

// ThemeEnv is the environment variable overriding the theme variant on
// platforms without a system color-scheme setting. A case-insensitive
// "DARK" selects the dark variant; anything else selects light.
const ThemeEnv = "AURORA_THEME"

// ThemeValues is one resolved color table, shared read-only across a frame
// through the FrameContext.
type ThemeValues struct {
	Background      gg.RGBA
	Text            gg.RGBA
	DescriptionText gg.RGBA
	Separator       gg.RGBA

	Highlight           gg.RGBA
	HighlightBackground gg.RGBA

	Backdrop gg.RGBA

	NotificationBackground gg.RGBA
	NotificationText       gg.RGBA

	CrashBackground gg.RGBA
	CrashText       gg.RGBA
}

// Theme holds one value table per variant.
type Theme struct {
	values [2]ThemeValues
}

// NewTheme builds a theme from explicit light and dark tables.
func NewTheme(light, dark ThemeValues) *Theme {
	return &Theme{values: [2]ThemeValues{light, dark}}
}

// Values returns the table for the given variant.
func (t *Theme) Values(variant ThemeVariant) *ThemeValues {
	if variant == ThemeDark {
		return &t.values[1]
	}
	return &t.values[0]
}

// DefaultTheme is the built-in console-style theme.
func DefaultTheme() *Theme {
	light := ThemeValues{
		Background:      gg.Hex("#EBEBEB"),
		Text:            gg.Hex("#2D2D2D"),
		DescriptionText: gg.Hex("#646464"),
		Separator:       gg.Hex("#CDCDCD"),

		Highlight:           gg.Hex("#32F0C8"),
		HighlightBackground: gg.Hex("#FDFDFD"),

		Backdrop: gg.RGBA2(0, 0, 0, 0.33),

		NotificationBackground: gg.RGBA2(0.17, 0.17, 0.17, 0.93),
		NotificationText:       gg.Hex("#FFFFFF"),

		CrashBackground: gg.Hex("#EBEBEB"),
		CrashText:       gg.Hex("#2D2D2D"),
	}

	dark := ThemeValues{
		Background:      gg.Hex("#2D2D2D"),
		Text:            gg.Hex("#FFFFFF"),
		DescriptionText: gg.Hex("#A0A0A0"),
		Separator:       gg.Hex("#52525C"),

		Highlight:           gg.Hex("#1EDC9B"),
		HighlightBackground: gg.Hex("#313131"),

		Backdrop: gg.RGBA2(0, 0, 0, 0.6),

		NotificationBackground: gg.RGBA2(0.1, 0.1, 0.1, 0.93),
		NotificationText:       gg.Hex("#FFFFFF"),

		CrashBackground: gg.Hex("#2D2D2D"),
		CrashText:       gg.Hex("#FFFFFF"),
	}

	return NewTheme(light, dark)
}

// SetTheme swaps the process theme tables. The current variant selection is
// kept.
func (a *App) SetTheme(theme *Theme) {
	if theme != nil {
		a.theme = theme
	}
}

// Theme returns the active theme tables.
func (a *App) Theme() *Theme {
	return a.theme
}

// ThemeVariant returns the active variant.
func (a *App) ThemeVariant() ThemeVariant {
	return a.themeVariant
}

// SetThemeVariant switches between light and dark at runtime.
func (a *App) SetThemeVariant(variant ThemeVariant) {
	a.themeVariant = variant
}

// ThemeValues resolves the active variant's table.
func (a *App) ThemeValues() *ThemeValues {
	return a.theme.Values(a.themeVariant)
}

// resolveThemeVariant picks the startup variant: the platform's preference
// when the driver exposes one, otherwise the environment override.
// Unrecognized values default to light.
func resolveThemeVariant(driver platform.Driver) ThemeVariant {
	if tp, ok := driver.(platform.ThemeProvider); ok {
		switch tp.PreferredTheme() {
		case platform.ThemeHintDark:
			return ThemeDark
		case platform.ThemeHintLight:
			return ThemeLight
		}
	}

	if strings.EqualFold(os.Getenv(ThemeEnv), "DARK") {
		return ThemeDark
	}
	return ThemeLight
}
