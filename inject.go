package medusa

// injectedTouch is a synthetic touch in surface coordinates.
type injectedTouch struct {
	x, y  float64
	phase Phase
}

// InjectDown queues a touch-down at surface coordinates. Queued touches are
// delivered one per DrainInjected call.
func (e *Engine) InjectDown(x, y float64) {
	e.injectQueue = append(e.injectQueue, injectedTouch{x, y, PhaseDown})
}

// InjectMove queues a touch-move at surface coordinates.
func (e *Engine) InjectMove(x, y float64) {
	e.injectQueue = append(e.injectQueue, injectedTouch{x, y, PhaseMove})
}

// InjectUp queues a touch-up at surface coordinates.
func (e *Engine) InjectUp(x, y float64) {
	e.injectQueue = append(e.injectQueue, injectedTouch{x, y, PhaseUp})
}

// InjectTap queues a down and an up at the same point. The resulting drift
// is the minimum velocity on both axes.
func (e *Engine) InjectTap(x, y float64) {
	e.InjectDown(x, y)
	e.InjectUp(x, y)
}

// InjectDrag queues a down at (fromX, fromY), frames-2 evenly spaced moves
// and an up at (toX, toY). Minimum frames is 2.
func (e *Engine) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	e.InjectDown(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		e.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	e.InjectUp(toX, toY)
}

// DrainInjected delivers the oldest queued touch through OnTouch. It reports
// whether one was delivered.
func (e *Engine) DrainInjected() bool {
	if len(e.injectQueue) == 0 {
		return false
	}
	t := e.injectQueue[0]
	copy(e.injectQueue, e.injectQueue[1:])
	e.injectQueue = e.injectQueue[:len(e.injectQueue)-1]
	e.OnTouch(t.x, t.y, t.phase)
	return true
}

// PendingInjections returns the number of queued touches.
func (e *Engine) PendingInjections() int { return len(e.injectQueue) }
