// Package medusa is the compositing and motion core of the Medusa live
// wallpaper.
//
// The wallpaper is built from six static images: a dark background, a light
// background, a circular slider mask, an eye sprite with its alpha mask, and
// a touch overlay. A cursor drifts across the scene and a soft circle of the
// light image follows it; the eyes track the cursor with a small parallax
// offset. Touching the screen drags the cursor, and releasing it flings the
// cursor off with the velocity of the last gesture segment.
//
// # Engine
//
// An [Engine] owns all animation state. It is driven by a runtime adapter
// that forwards platform events from a single thread:
//
//	e, err := medusa.NewEngine(assets, surface, scheduler, medusa.DefaultConfig())
//	if err != nil {
//		log.Fatal(err)
//	}
//	e.OnSurfaceChanged(1080, 2340)
//	e.OnVisibilityChanged(true)
//	e.OnTouch(540, 1200, medusa.PhaseDown)
//
// The adapter supplies three collaborators:
//
//   - an [AssetSource] that decodes the six images by name,
//   - a [Surface] that can be locked for a single copy blit per frame,
//   - a [Scheduler] that runs one-shot delayed callbacks on the engine thread.
//
// [ImageSurface] and [ManualScheduler] are in-memory versions used by tests
// and by the headless renderer in cmd/medusa. The host package runs the
// engine inside an Ebitengine window; the mobile and xmobile packages run it
// on Android.
//
// # Compositing
//
// Each frame is layered into an off-screen buffer and then copied to the
// surface. Masks use the destination-in operator, the final blit uses
// source-copy. Scaled draws go through golang.org/x/image/draw.
//
// # Scripted sessions
//
// [LoadTestScript] parses a JSON list of touch, wait, resize and screenshot
// steps that can be replayed against an engine frame by frame, either
// headless or inside the host window.
package medusa
