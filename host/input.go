package host

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/medusa"
)

// pointer turns level-triggered pressed/position samples into touch phases.
//
// While the pointer is moving, each new position is held back one sample so
// that the release is delivered at a fresh position: the engine derives the
// fling velocity from the last two positions it saw. A pointer that stops
// moving flushes its held position at once.
type pointer struct {
	down   bool
	held   bool
	hx, hy float64
}

// sample feeds one frame of state and returns the phase to deliver, if any.
// On release x, y is the final position reported by the device.
func (p *pointer) sample(pressed bool, x, y float64) (medusa.Phase, float64, float64, bool) {
	switch {
	case pressed && !p.down:
		p.down, p.held = true, false
		p.hx, p.hy = x, y
		return medusa.PhaseDown, x, y, true

	case pressed && p.held:
		mx, my := p.hx, p.hy
		if x == p.hx && y == p.hy {
			p.held = false
		} else {
			p.hx, p.hy = x, y
		}
		return medusa.PhaseMove, mx, my, true

	case pressed:
		if x != p.hx || y != p.hy {
			p.held = true
			p.hx, p.hy = x, y
		}

	case p.down:
		p.down = false
		if p.held {
			p.held = false
			return medusa.PhaseUp, p.hx, p.hy, true
		}
		return medusa.PhaseUp, x, y, true
	}
	return 0, 0, 0, false
}

// input tracks the left mouse button and the first active touch as a single
// finger.
type input struct {
	mouse pointer
	touch pointer

	touchID   ebiten.TouchID
	touchHeld bool
	touchIDs  []ebiten.TouchID
}

// poll samples ebiten input and forwards at most one event per source.
func (in *input) poll(deliver func(x, y float64, phase medusa.Phase)) {
	mx, my := ebiten.CursorPosition()
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	if phase, x, y, ok := in.mouse.sample(left, float64(mx), float64(my)); ok {
		deliver(x, y, phase)
	}

	if !in.touchHeld {
		in.touchIDs = inpututil.AppendJustPressedTouchIDs(in.touchIDs[:0])
		if len(in.touchIDs) == 0 {
			return
		}
		in.touchID = in.touchIDs[0]
		in.touchHeld = true
	}

	pressed := !inpututil.IsTouchJustReleased(in.touchID)
	var tx, ty int
	if pressed {
		tx, ty = ebiten.TouchPosition(in.touchID)
	} else {
		tx, ty = inpututil.TouchPositionInPreviousTick(in.touchID)
		in.touchHeld = false
	}
	if phase, x, y, ok := in.touch.sample(pressed, float64(tx), float64(ty)); ok {
		deliver(x, y, phase)
	}
}
