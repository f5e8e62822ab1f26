package medusa

import (
	"testing"

	"github.com/tanema/gween/ease"
)

func TestAlphaFadeInstant(t *testing.T) {
	f := newAlphaFade(100, 0, nil)
	f.To(255)
	if f.Alpha() != 255 {
		t.Errorf("Alpha() = %d, want 255 with zero duration", f.Alpha())
	}
	if !f.Done() {
		t.Error("instant fade should be done")
	}
}

func TestAlphaFadeLinear(t *testing.T) {
	f := newAlphaFade(100, 1.0, ease.Linear)
	f.To(200)
	if f.Alpha() != 100 {
		t.Errorf("Alpha() before update = %d, want 100", f.Alpha())
	}

	f.Update(0.5)
	if a := f.Alpha(); a < 148 || a > 152 {
		t.Errorf("Alpha() halfway = %d, want ~150", a)
	}
	if f.Done() {
		t.Error("fade should not be done halfway")
	}

	f.Update(0.5)
	if f.Alpha() != 200 {
		t.Errorf("Alpha() at end = %d, want 200", f.Alpha())
	}
	if !f.Done() {
		t.Error("fade should be done after full duration")
	}
}

func TestAlphaFadeRetarget(t *testing.T) {
	f := newAlphaFade(0, 1.0, ease.Linear)
	f.To(200)
	f.Update(0.5)
	mid := f.Alpha()

	f.To(0)
	if f.Alpha() != mid {
		t.Errorf("retarget jumped from %d to %d", mid, f.Alpha())
	}
	f.Update(1.0)
	if f.Alpha() != 0 {
		t.Errorf("Alpha() = %d, want 0", f.Alpha())
	}
}

func TestAlphaFadeSameTarget(t *testing.T) {
	f := newAlphaFade(85, 1.0, ease.Linear)
	f.To(85)
	if !f.Done() {
		t.Error("retargeting to the current level should not start a tween")
	}
}

func TestAlphaFadeSet(t *testing.T) {
	f := newAlphaFade(85, 1.0, ease.OutQuad)
	f.To(255)
	f.Set(10)
	if f.Alpha() != 10 || !f.Done() {
		t.Errorf("after Set: Alpha() = %d, Done() = %t", f.Alpha(), f.Done())
	}
}
