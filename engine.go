package medusa

import (
	"errors"
	"fmt"
	"image"
	"time"

	xdraw "golang.org/x/image/draw"
)

// ErrNoAssets is returned by NewEngine when no asset set is given.
var ErrNoAssets = errors.New("no assets")

// Stats counts what the engine has done since it was created.
type Stats struct {
	FramesDrawn   int // frames blitted to the surface
	FramesDropped int // frames composed but not blitted (invalid surface or lock failure)
	Ticks         int // scheduled ticks that ran
	Bounces       int // free-run steps that hit an edge
	Resizes       int // scenes prepared
}

// Engine is the wallpaper state machine. A runtime adapter forwards platform
// events to the On* callbacks, all from one logical thread; the engine
// renders to the Surface and arms its own redraw ticks on the Scheduler.
//
// The cursor free-runs and bounces while no finger is down, and follows the
// finger while one is. At most one tick is pending at any time.
type Engine struct {
	cfg     Config
	assets  *Assets
	surface Surface
	sched   Scheduler
	interp  xdraw.Interpolator

	scene *scene

	cursor       Cursor
	prevX, prevY float64
	touched      bool
	visible      bool
	destroyed    bool

	sliderAlpha *alphaFade
	eyesAlpha   *alphaFade
	lastFrame   time.Time

	pending Timer
	tickSeq uint64

	stats Stats
	debug bool

	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir   string
	screenshotQueue []string

	injectQueue []injectedTouch
}

// NewEngine validates cfg and returns an engine that is invisible and has
// no surface size yet. Nothing is drawn until OnSurfaceChanged and
// OnVisibilityChanged(true) have both been delivered.
func NewEngine(assets *Assets, surface Surface, sched Scheduler, cfg Config) (*Engine, error) {
	if assets == nil {
		return nil, ErrNoAssets
	}
	if err := assets.validate(); err != nil {
		return nil, fmt.Errorf("new engine: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new engine: %w", err)
	}
	if surface == nil || sched == nil {
		return nil, errors.New("new engine: nil surface or scheduler")
	}
	fade := float32(cfg.FadeDuration().Seconds())
	return &Engine{
		cfg:           cfg,
		assets:        assets,
		surface:       surface,
		sched:         sched,
		interp:        cfg.interpolator(),
		cursor:        Cursor{VX: cfg.MinVelocity, VY: cfg.MinVelocity},
		sliderAlpha:   newAlphaFade(cfg.SliderAlpha, fade, cfg.easing()),
		eyesAlpha:     newAlphaFade(cfg.EyesAlpha, fade, cfg.easing()),
		ScreenshotDir: "screenshots",
	}, nil
}

// SetDebugMode enables per-frame timing and lifecycle logs on stderr.
func (e *Engine) SetDebugMode(enabled bool) {
	e.debug = enabled
}

// OnVisibilityChanged starts drawing when the wallpaper becomes visible and
// stops the redraw schedule when it is hidden.
func (e *Engine) OnVisibilityChanged(visible bool) {
	if e.destroyed {
		return
	}
	e.visible = visible
	e.cancelTick()
	e.debugf("visible=%t", visible)
	if visible {
		e.doFrame()
	}
}

// OnSurfaceChanged rebuilds the scene for a w×h surface and recenters the
// cursor. The previous buffers are released before new ones are allocated.
// A zero size only releases.
func (e *Engine) OnSurfaceChanged(w, h int) {
	if e.destroyed {
		return
	}
	e.cancelTick()
	e.scene.release()
	e.scene = nil
	if w <= 0 || h <= 0 {
		return
	}

	t0 := time.Now()
	e.scene = prepareScene(e.assets, &e.cfg, e.interp, w, h)
	e.stats.Resizes++
	fb := e.scene.frame.Bounds()
	e.cursor.Center(fb.Dx(), fb.Dy())
	e.debugf("surface %dx%d, buffer %dx%d, prepared in %v", w, h, fb.Dx(), fb.Dy(), time.Since(t0))

	e.doFrame()
}

// OnTouch moves the cursor to the touch point, mapped from surface to buffer
// coordinates, and renders at once. Lifting the finger turns the last
// movement into drift velocity and resumes the redraw schedule.
func (e *Engine) OnTouch(x, y float64, phase Phase) {
	if e.destroyed {
		return
	}
	e.prevX, e.prevY = e.cursor.X, e.cursor.Y
	e.cursor.X, e.cursor.Y = e.SurfaceToBuffer(x, y)

	switch phase {
	case PhaseDown:
		e.touched = true
		e.sliderAlpha.To(e.cfg.SliderTouchAlpha)
		e.eyesAlpha.To(e.cfg.EyesTouchAlpha)
		e.lastFrame = e.sched.Now()
	case PhaseUp:
		e.touched = false
		e.sliderAlpha.To(e.cfg.SliderAlpha)
		e.eyesAlpha.To(e.cfg.EyesAlpha)
		e.lastFrame = e.sched.Now()
		e.cursor.Release(e.cursor.X-e.prevX, e.cursor.Y-e.prevY, e.cfg.MinVelocity, e.cfg.MaxVelocity)
	}

	e.cancelTick()
	e.doFrame()
}

// OnDestroy cancels the pending tick and releases every buffer. All later
// callbacks are ignored.
func (e *Engine) OnDestroy() {
	if e.destroyed {
		return
	}
	e.cancelTick()
	e.destroyed = true
	e.visible = false
	e.scene.release()
	e.scene = nil
	e.debugf("destroyed after %d frames", e.stats.FramesDrawn)
}

// RenderFrame composes the scene and blits it to the surface. It does
// nothing before the first surface size, while invisible or after destroy.
// A torn-down surface or a failed lock drops the frame.
func (e *Engine) RenderFrame() {
	if e.scene == nil || !e.visible || e.destroyed {
		return
	}

	now := e.sched.Now()
	if !e.lastFrame.IsZero() {
		dt := float32(now.Sub(e.lastFrame).Seconds())
		e.sliderAlpha.Update(dt)
		e.eyesAlpha.Update(dt)
	}
	e.lastFrame = now

	var stats debugStats
	var t0 time.Time
	if e.debug {
		t0 = time.Now()
	}

	e.compose()

	if e.debug {
		stats.composeTime = time.Since(t0)
		t0 = time.Now()
	}

	e.flushScreenshots()

	if e.blit() {
		e.stats.FramesDrawn++
	} else {
		e.stats.FramesDropped++
		stats.dropped = true
	}

	if e.debug {
		stats.blitTime = time.Since(t0)
		stats.cursor = e.cursor
		e.debugLog(stats)
	}
}

// blit copies the frame buffer over the whole surface. The lock is released
// on every path out, panics included.
func (e *Engine) blit() bool {
	if !e.surface.Valid() {
		return false
	}
	c, err := e.surface.Lock()
	if err != nil {
		e.debugf("lock surface: %v", err)
		return false
	}
	defer e.surface.Unlock(c)

	w, h := e.surface.Size()
	c.DrawImage(e.scene.frame, e.scene.frame.Bounds(), image.Rect(0, 0, w, h), BlendCopy)
	return true
}

// doFrame renders, then either holds still while a finger is down or takes
// one free-run step and arms the next tick. A held finger only gets ticks
// while an alpha fade is still running; those ticks do not move the cursor.
func (e *Engine) doFrame() {
	if e.scene == nil || !e.visible || e.destroyed {
		return
	}
	e.RenderFrame()
	if e.touched {
		e.cancelTick()
		if !e.sliderAlpha.Done() || !e.eyesAlpha.Done() {
			e.schedule(e.cfg.RedrawInterval())
		}
		return
	}
	fb := e.scene.frame.Bounds()
	if e.cursor.Step(fb.Dx(), fb.Dy()) {
		e.stats.Bounces++
	}
	e.schedule(e.cfg.RedrawInterval())
}

// schedule replaces any pending tick with one that fires after d.
func (e *Engine) schedule(d time.Duration) {
	e.cancelTick()
	seq := e.tickSeq
	e.pending = e.sched.AfterFunc(d, func() { e.onTick(seq) })
}

// cancelTick stops the pending tick. A callback already in flight sees a
// stale sequence number and does nothing.
func (e *Engine) cancelTick() {
	if e.pending != nil {
		e.pending.Stop()
		e.pending = nil
	}
	e.tickSeq++
}

func (e *Engine) onTick(seq uint64) {
	if seq != e.tickSeq || e.destroyed {
		return
	}
	e.pending = nil
	e.stats.Ticks++
	e.doFrame()
}

// SurfaceToBuffer maps surface pixel coordinates into buffer space. Before
// the first surface size the mapping is the identity.
func (e *Engine) SurfaceToBuffer(x, y float64) (float64, float64) {
	if e.scene == nil {
		return x, y
	}
	return x * e.scene.scaleX, y * e.scene.scaleY
}

// BufferSize returns the frame buffer dimensions, or false before the first
// surface size.
func (e *Engine) BufferSize() (w, h int, ok bool) {
	if e.scene == nil {
		return 0, 0, false
	}
	b := e.scene.frame.Bounds()
	return b.Dx(), b.Dy(), true
}

// Cursor returns the current cursor state.
func (e *Engine) Cursor() Cursor { return e.cursor }

// Touched reports whether a finger is down.
func (e *Engine) Touched() bool { return e.touched }

// Visible reports whether the engine is drawing.
func (e *Engine) Visible() bool { return e.visible }

// Destroyed reports whether OnDestroy has run.
func (e *Engine) Destroyed() bool { return e.destroyed }

// TickPending reports whether a redraw tick is armed.
func (e *Engine) TickPending() bool { return e.pending != nil }

// Alphas returns the current slider and eyes mask alpha.
func (e *Engine) Alphas() (slider, eyes uint8) {
	return e.sliderAlpha.Alpha(), e.eyesAlpha.Alpha()
}

// Config returns the engine configuration.
func (e *Engine) Config() Config { return e.cfg }

// Stats returns a snapshot of the engine counters.
func (e *Engine) Stats() Stats { return e.stats }

// Frame returns the composed frame buffer, or nil before the first surface
// size. The image is owned by the engine and rewritten every frame.
func (e *Engine) Frame() *image.RGBA {
	if e.scene == nil {
		return nil
	}
	return e.scene.frame
}
