package medusa

import "math"

// Cursor is the slider position and drift velocity in buffer-space pixels.
type Cursor struct {
	X, Y   float64
	VX, VY float64
}

// ClampVelocity turns a raw per-axis delta into a drift speed whose
// magnitude lies in [lo, hi] and whose sign matches delta. A zero delta
// yields +lo so the cursor never stops.
func ClampVelocity(delta, lo, hi float64) float64 {
	switch a := math.Abs(delta); {
	case delta == 0:
		return lo
	case a < lo:
		return math.Copysign(lo, delta)
	case a > hi:
		return math.Copysign(hi, delta)
	}
	return delta
}

// Step advances the cursor by one tick inside a w×h buffer. An axis that
// leaves [0, dim] has its velocity reflected and its position clamped to the
// crossed edge. It reports whether either axis bounced.
func (c *Cursor) Step(w, h int) bool {
	c.X += c.VX
	c.Y += c.VY
	bx := bounce(&c.X, &c.VX, float64(w))
	by := bounce(&c.Y, &c.VY, float64(h))
	return bx || by
}

func bounce(p, v *float64, limit float64) bool {
	switch {
	case *p < 0:
		*p = 0
	case *p > limit:
		*p = limit
	default:
		return false
	}
	*v = -*v
	return true
}

// Release sets the drift velocity from the gesture delta between the last
// two touch positions.
func (c *Cursor) Release(dx, dy, lo, hi float64) {
	c.VX = ClampVelocity(dx, lo, hi)
	c.VY = ClampVelocity(dy, lo, hi)
}

// Center moves the cursor to the middle of a w×h buffer. Velocity is kept.
func (c *Cursor) Center(w, h int) {
	c.X = float64(w / 2)
	c.Y = float64(h / 2)
}
