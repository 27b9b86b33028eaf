// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package aurora

import (
	"errors"
	"fmt"
	"time"

	"github.com/gogpu/aurora/anim"
	"github.com/gogpu/aurora/platform"
)

// Logical design resolution. All absolute-pixel content is authored
// against it; the actual backbuffer is mapped onto it by windowScale.
const (
	DesignWidth  = 1280
	DesignHeight = 720
)

// DefaultFPS is the startup frame-rate cap.
const DefaultFPS = 60

// Runtime errors.
var (
	// ErrNotInitialized is returned when Init has not succeeded yet.
	ErrNotInitialized = errors.New("aurora: not initialized")

	// ErrAlreadyInitialized is returned by a second Init call.
	ErrAlreadyInitialized = errors.New("aurora: already initialized")
)

type config struct {
	style      *Style
	theme      *Theme
	driver     platform.Driver
	driverName string
	fontPaths  FontPaths
	fpsCap     int
}

// Option configures New.
type Option func(*config)

// WithStyle replaces the default metric table.
func WithStyle(s *Style) Option {
	return func(c *config) {
		if s != nil {
			c.style = s
		}
	}
}

// WithTheme replaces the default theme.
func WithTheme(t *Theme) Option {
	return func(c *config) {
		if t != nil {
			c.theme = t
		}
	}
}

// WithDriver injects a concrete driver instance, bypassing the registry.
// Used by tests and embedders that construct drivers themselves.
func WithDriver(d platform.Driver) Option {
	return func(c *config) { c.driver = d }
}

// WithDriverName selects a registered driver by name instead of the best
// available one.
func WithDriverName(name string) Option {
	return func(c *config) { c.driverName = name }
}

// WithFontPaths overrides the font probe chain.
func WithFontPaths(p FontPaths) Option {
	return func(c *config) { c.fontPaths = p }
}

// WithFPSCap sets the startup frame-rate cap. Zero disables capping.
func WithFPSCap(fps int) Option {
	return func(c *config) { c.fpsCap = fps }
}

// App is the application runtime: one instance owns the platform driver,
// the view and focus stacks, the tween engine and the overlay managers,
// and drives them all from MainLoop. All methods must be called from the
// goroutine running the loop.
type App struct {
	title        string
	commonFooter string
	cfg          config

	driver platform.Driver

	style        *Style
	theme        *Theme
	themeVariant ThemeVariant

	anim          *anim.Engine
	tasks         *TaskManager
	notifications *NotificationManager
	fonts         FontStash

	viewStack  []View
	focusStack []View

	currentFocus   View
	repeatFocus    View
	focusListeners []func(View)

	blockInputsTokens int

	windowWidth   int
	windowHeight  int
	contentWidth  int
	contentHeight int
	windowScale   float64

	// frameTime is the target frame budget in milliseconds; 0 = uncapped.
	frameTime float64

	fpsCounter *framerateCounter

	repeat   buttonRepeater
	lastTick time.Time

	initialized   bool
	quitRequested bool
	exited        bool
}

// New creates an unstarted runtime. Call Init before MainLoop.
func New(title string, opts ...Option) *App {
	cfg := config{
		style:     DefaultStyle(),
		theme:     DefaultTheme(),
		fontPaths: DefaultFontPaths(),
		fpsCap:    DefaultFPS,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &App{
		title:       title,
		cfg:         cfg,
		style:       cfg.style,
		theme:       cfg.theme,
		windowScale: 1,
	}
}

// Init constructs the managers, selects and initializes the platform
// driver, loads fonts, resolves the theme variant and arms the frame-rate
// cap. It fails only when the platform window/context cannot be created;
// font and theme problems degrade with a log line instead.
func (a *App) Init() error {
	if a.initialized {
		return ErrAlreadyInitialized
	}

	a.tasks = NewTaskManager()
	a.notifications = NewNotificationManager()
	a.anim = anim.NewEngine()
	a.repeat = newButtonRepeater()

	driver := a.cfg.driver
	if driver == nil {
		var err error
		if a.cfg.driverName != "" {
			driver, err = platform.NewByName(a.cfg.driverName)
		} else {
			driver, err = platform.New()
		}
		if err != nil {
			return fmt.Errorf("aurora: driver selection failed: %w", err)
		}
	}

	if err := driver.Initialize(a.title, DesignWidth, DesignHeight); err != nil {
		return fmt.Errorf("aurora: platform initialization failed: %w", err)
	}
	a.driver = driver
	api := "unknown"
	if g, ok := driver.(platform.GraphicsDiagnostics); ok {
		api = g.GraphicsAPI()
	}
	Logger().Info("platform driver ready", "title", a.title, "graphics", api)

	a.fonts = loadFonts(driver, a.cfg.fontPaths)

	a.themeVariant = resolveThemeVariant(driver)
	Logger().Info("theme resolved", "variant", a.themeVariant.String())

	a.SetMaximumFPS(a.cfg.fpsCap)

	driver.OnWindowResize(a.onWindowSizeChanged)
	a.onWindowSizeChanged(DesignWidth, DesignHeight)

	a.lastTick = time.Now()
	a.initialized = true
	return nil
}

// MainLoop runs one tick of the runtime: platform events, input dispatch,
// animations, tasks, rendering, presentation, and the optional frame-rate
// sleep. It returns false exactly once, on the tick shutdown was detected
// or requested; Exit has already run by then and the host must stop
// calling it.
func (a *App) MainLoop() bool {
	if !a.initialized || a.exited {
		return false
	}

	var frameStart time.Time
	if a.frameTime > 0 {
		frameStart = time.Now()
	}

	if !a.driver.Update() || a.quitRequested {
		a.Exit()
		return false
	}

	a.dispatchInput()

	now := time.Now()
	dt := now.Sub(a.lastTick).Seconds()
	a.lastTick = now
	a.anim.Update(dt)

	a.tasks.Frame()

	a.frame()
	a.driver.SwapBuffers()

	if a.frameTime > 0 {
		elapsed := time.Since(frameStart)
		budget := time.Duration(a.frameTime * float64(time.Millisecond))
		if budget > elapsed {
			time.Sleep(budget - elapsed)
		}
	}

	return true
}

// dispatchInput reads the driver's button masks and feeds the repeat state
// machine; a down edge or a qualifying repeat tick triggers press handling.
func (a *App) dispatchInput() {
	held := a.driver.ButtonsHeld()
	down := a.driver.ButtonsDown()
	changed := a.driver.StateChanged()

	repeating := a.repeat.advance(time.Now(), held != 0, changed)

	if held != 0 && (down != 0 || repeating) {
		a.onGamepadButtonPressed(held, repeating)
	}
}

// onGamepadButtonPressed routes one press: actions first, then directional
// navigation. Suppressed entirely while inputs are blocked, and on repeat
// ticks that would re-target the same focus as the previous repeat.
func (a *App) onGamepadButtonPressed(buttons Button, repeating bool) {
	if a.blockInputsTokens != 0 {
		return
	}

	if repeating && a.repeatFocus == a.currentFocus {
		return
	}
	a.repeatFocus = a.currentFocus

	if a.handleAction(buttons) {
		return
	}

	switch {
	case buttons&ButtonDDown != 0:
		a.Navigate(FocusDown)
	case buttons&ButtonDUp != 0:
		a.Navigate(FocusUp)
	case buttons&ButtonDLeft != 0:
		a.Navigate(FocusLeft)
	case buttons&ButtonDRight != 0:
		a.Navigate(FocusRight)
	}
}

// frame renders the view stack for one tick.
//
// Visibility is decided top-down: starting at the top of the stack, views
// are collected until the first non-translucent one, inclusive. Painting
// then runs over the collected subset in reverse so the topmost view is
// drawn last. The two passes exist because translucency membership is a
// top-down question while painting is bottom-up.
func (a *App) frame() {
	canvas := a.driver.Canvas()

	ctx := FrameContext{
		Canvas:     canvas,
		PixelRatio: a.windowScale,
		Fonts:      &a.fonts,
		Theme:      a.theme.Values(a.themeVariant),
		Style:      a.style,
	}

	a.driver.Frame()

	canvas.Push()
	canvas.Scale(a.windowScale, a.windowScale)

	var toDraw []View
	for i := len(a.viewStack) - 1; i >= 0; i-- {
		view := a.viewStack[i]
		toDraw = append(toDraw, view)
		if !view.IsTranslucent() {
			break
		}
	}

	for i := len(toDraw) - 1; i >= 0; i-- {
		toDraw[i].Frame(&ctx)
	}

	if a.fpsCounter != nil {
		a.fpsCounter.frame(&ctx)
	}
	a.notifications.Frame(&ctx)

	canvas.Pop()
}

// Exit tears the runtime down: views get WillDisappear and are destroyed,
// the driver exits, animations are dropped. Idempotent.
func (a *App) Exit() {
	if a.exited {
		return
	}
	a.exited = true

	for i := len(a.viewStack) - 1; i >= 0; i-- {
		view := a.viewStack[i]
		view.WillDisappear()
		destroyView(view)
	}
	a.viewStack = nil
	a.focusStack = nil
	a.currentFocus = nil
	a.repeatFocus = nil

	a.anim.Reset()

	if a.driver != nil {
		if err := a.driver.Exit(); err != nil {
			Logger().Error("driver exit failed", "err", err)
		}
	}

	Logger().Info("runtime exited", "title", a.title)
}

// Quit requests an orderly shutdown: the next MainLoop tick runs Exit and
// returns false, regardless of in-flight animations.
func (a *App) Quit() {
	a.quitRequested = true
}

// Crash pushes a dedicated view displaying a fatal-but-recoverable error
// message without terminating the process.
func (a *App) Crash(text string) {
	Logger().Error("crash view pushed", "text", text)
	a.PushView(NewCrashView(text), Fade)
}

// Notify enqueues a transient overlay message with the default lifetime.
func (a *App) Notify(text string) {
	a.notifications.Notify(text, a.style.Notification.Lifetime)
}

// Notifications exposes the overlay manager.
func (a *App) Notifications() *NotificationManager {
	return a.notifications
}

// Tasks exposes the frame-driven scheduler.
func (a *App) Tasks() *TaskManager {
	return a.tasks
}

// Anim exposes the tween engine ticked by the main loop.
func (a *App) Anim() *anim.Engine {
	return a.anim
}

// Fonts returns the immutable font stash.
func (a *App) Fonts() *FontStash {
	return &a.fonts
}

// Driver returns the active platform driver.
func (a *App) Driver() platform.Driver {
	return a.driver
}

// Title returns the window title given to New.
func (a *App) Title() string {
	return a.title
}

// SetCommonFooter sets the footer hint string shared by standard frames.
func (a *App) SetCommonFooter(footer string) {
	a.commonFooter = footer
}

// CommonFooter returns the shared footer hint string.
func (a *App) CommonFooter() string {
	return a.commonFooter
}

// ContentSize returns the logical content area views are laid out in.
func (a *App) ContentSize() (width, height int) {
	return a.contentWidth, a.contentHeight
}

// WindowSize returns the current backbuffer size in pixels.
func (a *App) WindowSize() (width, height int) {
	return a.windowWidth, a.windowHeight
}

// WindowScale returns the backbuffer-to-content scale factor.
func (a *App) WindowScale() float64 {
	return a.windowScale
}

// SetMaximumFPS caps the frame rate. Zero removes the cap.
func (a *App) SetMaximumFPS(fps int) {
	if fps <= 0 {
		a.frameTime = 0
	} else {
		a.frameTime = 1000 / float64(fps)
	}
	Logger().Info("frame cap set", "fps", fps, "frameTimeMs", a.frameTime)
}

// SetDisplayFramerate shows or hides the FPS overlay.
func (a *App) SetDisplayFramerate(enabled bool) {
	switch {
	case enabled && a.fpsCounter == nil:
		a.fpsCounter = newFramerateCounter()
		a.resizeFramerateCounter()
	case !enabled && a.fpsCounter != nil:
		a.fpsCounter = nil
	}
}

// ToggleFramerateDisplay flips the FPS overlay, as bound to the hidden
// default action on every pushed view.
func (a *App) ToggleFramerateDisplay() {
	a.SetDisplayFramerate(a.fpsCounter == nil)
}

// BlockInputs takes one input-block token: while any token is held,
// gamepad dispatch and navigation are suppressed. Every transition takes
// exactly one token at start and returns it when its animation chain fully
// completes.
func (a *App) BlockInputs() {
	a.blockInputsTokens++
}

// UnblockInputs returns one token, never dropping below zero.
func (a *App) UnblockInputs() {
	if a.blockInputsTokens > 0 {
		a.blockInputsTokens--
	}
}

// InputsBlocked reports whether input dispatch is currently suppressed.
func (a *App) InputsBlocked() bool {
	return a.blockInputsTokens != 0
}

// onWindowSizeChanged recomputes the logical content size, preserving the
// design width and adjusting the height to the backbuffer's aspect ratio,
// then propagates the new boundaries to every view and overlay manager.
func (a *App) onWindowSizeChanged(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}

	Logger().Debug("window size changed",
		"oldWidth", a.windowWidth, "oldHeight", a.windowHeight,
		"width", width, "height", height)

	a.windowScale = float64(width) / float64(DesignWidth)

	a.contentWidth = DesignWidth
	a.contentHeight = int(roundHalfAway(float64(height) / a.windowScale))

	a.windowWidth = width
	a.windowHeight = height

	for _, view := range a.viewStack {
		view.SetBoundaries(0, 0, a.contentWidth, a.contentHeight)
		view.Invalidate()
		view.OnWindowSizeChanged()
	}

	a.notifications.SetBoundaries(0, 0, a.contentWidth, a.contentHeight)
	a.resizeFramerateCounter()
}

func (a *App) resizeFramerateCounter() {
	if a.fpsCounter == nil {
		return
	}
	w := a.style.FramerateCounter.Width
	h := a.style.FramerateCounter.Height
	a.fpsCounter.setBoundaries(a.contentWidth-w, 0, w, h)
}

func roundHalfAway(v float64) float64 {
	if v < 0 {
		return float64(int(v - 0.5))
	}
	return float64(int(v + 0.5))
}
