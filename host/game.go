// Package host runs a medusa Engine inside an Ebitengine game loop. The
// window plays the role of the wallpaper surface: its layout size drives
// surface changes, focus drives visibility, and the left mouse button or the
// first touch is the finger.
package host

import (
	"errors"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/medusa"
)

// Options configures a Game.
type Options struct {
	// Window size in device-independent pixels. Default 540x960.
	Width, Height int
	Title         string

	// HUD draws frame rates and cursor state over the wallpaper.
	HUD bool

	// IgnoreFocus keeps the engine visible when the window loses focus.
	IgnoreFocus bool

	// Linear selects bilinear filtering for the surface blit.
	Linear bool

	// Script, when set, is stepped once per tick. ExitOnScriptDone ends the
	// game once it finishes.
	Script           *medusa.TestRunner
	ExitOnScriptDone bool

	Debug bool
}

func (o *Options) defaults() {
	if o.Width <= 0 {
		o.Width = 540
	}
	if o.Height <= 0 {
		o.Height = 960
	}
	if o.Title == "" {
		o.Title = "medusa"
	}
}

// Game adapts an Engine to ebiten.Game. The engine's ticks run on a
// virtual clock advanced once per Update, so every callback stays on the
// game loop goroutine.
type Game struct {
	engine  *medusa.Engine
	surface *Surface
	sched   *medusa.ManualScheduler
	opts    Options

	input input
	hud   *hud

	pendingW, pendingH int
	appliedW, appliedH int
	visible            bool
}

// NewGame builds the engine over a fresh window surface.
func NewGame(assets *medusa.Assets, cfg medusa.Config, opts Options) (*Game, error) {
	opts.defaults()
	filter := ebiten.FilterNearest
	if opts.Linear {
		filter = ebiten.FilterLinear
	}
	g := &Game{
		surface: NewSurface(filter),
		sched:   medusa.NewManualScheduler(time.Now()),
		opts:    opts,
	}
	e, err := medusa.NewEngine(assets, g.surface, g.sched, cfg)
	if err != nil {
		return nil, err
	}
	e.SetDebugMode(opts.Debug)
	g.engine = e
	if opts.HUD {
		g.hud = newHUD()
	}
	return g, nil
}

// Engine returns the wrapped engine.
func (g *Game) Engine() *medusa.Engine { return g.engine }

// Update forwards window changes and input to the engine and advances its
// clock by one tick.
func (g *Game) Update() error {
	if g.pendingW != g.appliedW || g.pendingH != g.appliedH {
		g.appliedW, g.appliedH = g.pendingW, g.pendingH
		g.surface.Resize(g.appliedW, g.appliedH)
		g.engine.OnSurfaceChanged(g.appliedW, g.appliedH)
		if g.opts.Debug {
			log.Printf("[host] surface %dx%d", g.appliedW, g.appliedH)
		}
	}

	visible := g.opts.IgnoreFocus || ebiten.IsFocused()
	if visible != g.visible {
		g.visible = visible
		g.engine.OnVisibilityChanged(visible)
	}

	if g.opts.Script != nil {
		g.opts.Script.Step(g.engine)
		if g.opts.ExitOnScriptDone && g.opts.Script.Done() && g.engine.PendingInjections() == 0 {
			return ebiten.Termination
		}
	}
	if !g.engine.DrainInjected() {
		g.input.poll(g.engine.OnTouch)
	}

	dt := time.Second / time.Duration(ebiten.TPS())
	g.sched.Advance(dt)
	if g.hud != nil {
		g.hud.update(dt.Seconds(), g.engine)
	}
	return nil
}

// Draw presents the surface image.
func (g *Game) Draw(screen *ebiten.Image) {
	if img := g.surface.Image(); img != nil {
		screen.DrawImage(img, nil)
	}
	if g.hud != nil {
		g.hud.draw(screen)
	}
}

// Layout uses the window size as the surface size. The change is applied
// on the next Update.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.pendingW, g.pendingH = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// Run opens a resizable window and plays the wallpaper until it is closed.
func Run(assets *medusa.Assets, cfg medusa.Config, opts Options) error {
	g, err := NewGame(assets, cfg, opts)
	if err != nil {
		return err
	}
	ebiten.SetWindowSize(g.opts.Width, g.opts.Height)
	ebiten.SetWindowTitle(g.opts.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetRunnableOnUnfocused(true)

	err = ebiten.RunGame(g)
	g.engine.OnDestroy()
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
