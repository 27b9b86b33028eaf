// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// aurorademo is a small demonstration app for the aurora runtime: a grid
// of tiles navigable with the D-pad, notifications, a theme toggle and a
// second pushed page.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/aurora"
	"github.com/gogpu/aurora/platform"
	_ "github.com/gogpu/aurora/platform/gpu"
	_ "github.com/gogpu/aurora/platform/headless"
)

func main() {
	driverName := flag.String("driver", "", "platform driver to use (default: best available)")
	showFPS := flag.Bool("fps", false, "show the framerate overlay")
	verbose := flag.Bool("v", false, "verbose logging")
	flag.Parse()

	if *verbose {
		aurora.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	log.Printf("registered drivers: %v", platform.List())

	opts := []aurora.Option{}
	if *driverName != "" {
		opts = append(opts, aurora.WithDriverName(*driverName))
	}

	app := aurora.New("Aurora Demo", opts...)
	if err := app.Init(); err != nil {
		log.Fatalf("init: %v", err)
	}

	app.SetCommonFooter("aurora demo")
	app.SetDisplayFramerate(*showFPS)

	app.PushView(newMainPage(app, 0), aurora.Fade)

	for app.MainLoop() {
	}
}

// mainPage is a tile grid. It is its own focus target and moves an internal
// selection cursor on D-pad input instead of delegating to child views.
type mainPage struct {
	aurora.ViewBase

	app      *aurora.App
	depth    int
	selected int
	cols     int
	tiles    []string
}

func newMainPage(app *aurora.App, depth int) *mainPage {
	p := &mainPage{
		app:   app,
		depth: depth,
		cols:  3,
		tiles: []string{
			"Notifications", "Theme", "Push Page",
			"Shake", "Crash", "Quit",
		},
	}

	p.RegisterAction(aurora.NewAction("OK", aurora.ButtonA, p.activate))
	for _, bind := range []struct {
		key    aurora.Button
		dx, dy int
	}{
		{aurora.ButtonDLeft, -1, 0},
		{aurora.ButtonDRight, 1, 0},
		{aurora.ButtonDUp, 0, -1},
		{aurora.ButtonDDown, 0, 1},
	} {
		bind := bind
		p.RegisterAction(aurora.NewHiddenAction("", bind.key, func() bool {
			p.Move(bind.dx, bind.dy)
			return true
		}))
	}

	back := aurora.NewAction("Back", aurora.ButtonB, func() bool {
		app.PopView(aurora.Fade, nil)
		return true
	})
	back.Available = depth > 0
	p.RegisterAction(back)

	return p
}

func (p *mainPage) activate() bool {
	switch p.tiles[p.selected] {
	case "Notifications":
		p.app.Notify(fmt.Sprintf("Hello from page %d!", p.depth))
	case "Theme":
		if p.app.ThemeVariant() == aurora.ThemeLight {
			p.app.SetThemeVariant(aurora.ThemeDark)
		} else {
			p.app.SetThemeVariant(aurora.ThemeLight)
		}
	case "Push Page":
		p.app.PushView(newMainPage(p.app, p.depth+1), aurora.Fade)
	case "Shake":
		p.ShakeHighlight(aurora.FocusRight)
	case "Crash":
		p.app.Crash("Something went terribly wrong (on purpose).")
	case "Quit":
		p.app.Quit()
	}
	return true
}

// DefaultFocus implements aurora.View.
func (p *mainPage) DefaultFocus() aurora.View { return p }

// NextFocus implements aurora.View. The page is a focus leaf; directional
// input reaches it through the hidden D-pad actions instead of traversal.
func (p *mainPage) NextFocus(aurora.FocusDirection, aurora.View) aurora.View { return nil }

// Move shifts the selection cursor, clamped to the grid.
func (p *mainPage) Move(dx, dy int) {
	row := p.selected / p.cols
	col := p.selected % p.cols

	col += dx
	row += dy

	if col < 0 || col >= p.cols || row < 0 {
		return
	}
	idx := row*p.cols + col
	if idx >= len(p.tiles) {
		return
	}
	p.selected = idx
}

// Frame implements aurora.View.
func (p *mainPage) Frame(ctx *aurora.FrameContext) {
	x, y, width, height := p.Boundaries()
	canvas := ctx.Canvas
	alpha := p.Alpha()

	bg := ctx.Theme.Background
	canvas.SetRGBA(bg.R, bg.G, bg.B, bg.A*alpha)
	canvas.DrawRectangle(float64(x), float64(y), float64(width), float64(height))
	_ = canvas.Fill()

	fg := ctx.Theme.Text
	canvas.SetRGBA(fg.R, fg.G, fg.B, fg.A*alpha)
	if face := ctx.Fonts.Face(28); face != nil {
		canvas.SetFont(face)
		canvas.DrawString(fmt.Sprintf("Aurora Demo, page %d", p.depth), float64(x)+40, float64(y)+60)
	}

	const (
		tileW   = 240.0
		tileH   = 120.0
		spacing = 30.0
	)
	originX := float64(x) + 40
	originY := float64(y) + 120

	for i, label := range p.tiles {
		row := i / p.cols
		col := i % p.cols

		tx := originX + float64(col)*(tileW+spacing)
		ty := originY + float64(row)*(tileH+spacing)

		if i == p.selected {
			tx += p.ShakeOffset()
			hl := ctx.Theme.Highlight
			canvas.SetRGBA(hl.R, hl.G, hl.B, hl.A*alpha)
			canvas.DrawRoundedRectangle(tx-4, ty-4, tileW+8, tileH+8, 10)
			_ = canvas.Fill()
		}

		tile := ctx.Theme.HighlightBackground
		canvas.SetRGBA(tile.R, tile.G, tile.B, tile.A*alpha)
		canvas.DrawRoundedRectangle(tx, ty, tileW, tileH, 8)
		_ = canvas.Fill()

		canvas.SetRGBA(fg.R, fg.G, fg.B, fg.A*alpha)
		if face := ctx.Fonts.Face(20); face != nil {
			canvas.SetFont(face)
			canvas.DrawStringAnchored(label, tx+tileW/2, ty+tileH/2, 0.5, 0.5)
		}
	}

	if footer := p.app.CommonFooter(); footer != "" {
		dim := ctx.Theme.DescriptionText
		canvas.SetRGBA(dim.R, dim.G, dim.B, dim.A*alpha)
		if face := ctx.Fonts.Face(16); face != nil {
			canvas.SetFont(face)
			canvas.DrawString(footer, float64(x)+40, float64(y+height)-30)
		}
	}
}
