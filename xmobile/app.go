//go:build android

// Package xmobile runs the wallpaper as a native Android activity on top of
// golang.org/x/mobile. The activity window is the surface, lifecycle
// visibility drives OnVisibilityChanged, and the first finger down is the
// touch.
//
// Build with:
//
//	gomobile build -target android -androidapi 23 ./cmd/medusa-android
package xmobile

import (
	"errors"
	"fmt"
	"image"
	"log"
	"time"

	"golang.org/x/mobile/app"
	"golang.org/x/mobile/asset"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"
	"golang.org/x/mobile/event/touch"
	"golang.org/x/mobile/gl"

	"github.com/phanxgames/medusa"
)

// Options configures Main.
type Options struct {
	// Config is the tuning used for the engine. A zero value means
	// medusa.DefaultConfig.
	Config *medusa.Config
	Debug  bool
}

// tickEvent carries a timer callback onto the event loop.
type tickEvent struct {
	fn func()
}

// loopScheduler fires callbacks by sending them through the app's event
// queue, so the engine only ever runs on the event goroutine.
type loopScheduler struct {
	a app.App
}

func (s loopScheduler) Now() time.Time { return time.Now() }

func (s loopScheduler) AfterFunc(d time.Duration, fn func()) medusa.Timer {
	return time.AfterFunc(d, func() { s.a.Send(tickEvent{fn: fn}) })
}

// assetSource reads images packaged in the APK's assets directory.
type assetSource struct{}

var assetExts = []string{".png", ".webp", ".jpg"}

func (assetSource) Image(name string) (image.Image, error) {
	for _, ext := range assetExts {
		f, err := asset.Open(name + ext)
		if err != nil {
			continue
		}
		img, _, err := image.Decode(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("decode %s%s: %w", name, ext, err)
		}
		return img, nil
	}
	return nil, medusa.ErrAssetMissing
}

// loadAssets prefers packaged images and falls back to the placeholder
// scene when none are bundled.
func loadAssets(cfg *medusa.Config) (*medusa.Assets, error) {
	assets, err := medusa.LoadAssets(assetSource{})
	if err == nil {
		return assets, nil
	}
	if !errors.Is(err, medusa.ErrAssetMissing) {
		return nil, err
	}
	log.Printf("[xmobile] %v; using placeholder", err)
	p := medusa.NewPlaceholder(1080, 1920)
	cfg.EyesAnchorX, cfg.EyesAnchorY = p.EyesAnchor.X, p.EyesAnchor.Y
	return medusa.LoadAssets(p.Source)
}

// phaseOf maps an x/mobile touch type to an engine phase.
func phaseOf(t touch.Type) (medusa.Phase, bool) {
	switch t {
	case touch.TypeBegin:
		return medusa.PhaseDown, true
	case touch.TypeMove:
		return medusa.PhaseMove, true
	case touch.TypeEnd:
		return medusa.PhaseUp, true
	}
	return 0, false
}

// finger tracks the one touch sequence the engine follows.
type finger struct {
	seq    touch.Sequence
	active bool
}

// accept reports whether an event of the given sequence and type belongs
// to the followed finger, updating the tracking state.
func (f *finger) accept(seq touch.Sequence, t touch.Type) bool {
	switch t {
	case touch.TypeBegin:
		if f.active {
			return false
		}
		f.seq, f.active = seq, true
		return true
	case touch.TypeEnd:
		if !f.active || seq != f.seq {
			return false
		}
		f.active = false
		return true
	default:
		return f.active && seq == f.seq
	}
}

// Main runs the event loop. It does not return until the activity dies.
func Main(opts Options) {
	cfg := medusa.DefaultConfig()
	if opts.Config != nil {
		cfg = *opts.Config
	}

	app.Main(func(a app.App) {
		assets, err := loadAssets(&cfg)
		if err != nil {
			log.Printf("[xmobile] load assets: %v", err)
			return
		}
		surf := &glSurface{a: a}
		engine, err := medusa.NewEngine(assets, surf, loopScheduler{a: a}, cfg)
		if err != nil {
			log.Printf("[xmobile] engine: %v", err)
			return
		}
		engine.SetDebugMode(opts.Debug)

		var fing finger
		for e := range a.Events() {
			switch e := a.Filter(e).(type) {
			case lifecycle.Event:
				switch e.Crosses(lifecycle.StageVisible) {
				case lifecycle.CrossOn:
					glctx, ok := e.DrawContext.(gl.Context)
					if !ok {
						log.Printf("[xmobile] no GL context")
						continue
					}
					if err := surf.initGL(glctx); err != nil {
						log.Printf("[xmobile] init GL: %v", err)
						continue
					}
					engine.OnVisibilityChanged(true)
				case lifecycle.CrossOff:
					engine.OnVisibilityChanged(false)
					surf.destroyGL()
				}
				if e.To == lifecycle.StageDead {
					engine.OnDestroy()
					return
				}
			case size.Event:
				if e.WidthPx == surf.w && e.HeightPx == surf.h {
					continue
				}
				surf.w, surf.h = e.WidthPx, e.HeightPx
				engine.OnSurfaceChanged(surf.w, surf.h)
			case touch.Event:
				phase, ok := phaseOf(e.Type)
				if !ok || !fing.accept(e.Sequence, e.Type) {
					continue
				}
				engine.OnTouch(float64(e.X), float64(e.Y), phase)
			case tickEvent:
				e.fn()
			case paint.Event:
				// The system asks for a frame after exposing the window.
				if e.External {
					engine.RenderFrame()
				}
			}
		}
	})
}
