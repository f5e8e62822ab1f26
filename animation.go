package medusa

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// alphaFade moves a paint alpha toward a target level. With a zero duration
// it switches instantly; otherwise it eases between levels over the
// duration using a gween tween. Retargeting mid-fade starts from the
// current value.
type alphaFade struct {
	value    float32
	target   uint8
	duration float32 // seconds
	fn       ease.TweenFunc
	tween    *gween.Tween
}

func newAlphaFade(v uint8, durationSec float32, fn ease.TweenFunc) *alphaFade {
	if fn == nil {
		fn = ease.Linear
	}
	return &alphaFade{value: float32(v), target: v, duration: durationSec, fn: fn}
}

// To retargets the fade. Repeating the current target is a no-op.
func (f *alphaFade) To(v uint8) {
	if v == f.target {
		return
	}
	f.target = v
	if f.duration <= 0 {
		f.value = float32(v)
		f.tween = nil
		return
	}
	f.tween = gween.New(f.value, float32(v), f.duration, f.fn)
}

// Update advances the fade by dt seconds.
func (f *alphaFade) Update(dt float32) {
	if f.tween == nil {
		return
	}
	val, done := f.tween.Update(dt)
	f.value = val
	if done {
		f.value = float32(f.target)
		f.tween = nil
	}
}

// Done reports whether the fade has reached its target.
func (f *alphaFade) Done() bool { return f.tween == nil }

// Alpha returns the current level.
func (f *alphaFade) Alpha() uint8 {
	return uint8(math.Round(float64(max(0, min(255, f.value)))))
}

// Set jumps to v without animating.
func (f *alphaFade) Set(v uint8) {
	f.target = v
	f.value = float32(v)
	f.tween = nil
}
