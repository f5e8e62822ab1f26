package medusa

import (
	"encoding/json"
	"fmt"
	"time"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action  string  `json:"action"`
	Label   string  `json:"label,omitempty"`
	X       float64 `json:"x,omitempty"`
	Y       float64 `json:"y,omitempty"`
	FromX   float64 `json:"fromX,omitempty"`
	FromY   float64 `json:"fromY,omitempty"`
	ToX     float64 `json:"toX,omitempty"`
	ToY     float64 `json:"toY,omitempty"`
	Frames  int     `json:"frames,omitempty"`
	Visible bool    `json:"visible,omitempty"`
	Width   int     `json:"width,omitempty"`
	Height  int     `json:"height,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

var knownActions = map[string]bool{
	"down": true, "move": true, "up": true, "tap": true, "drag": true,
	"wait": true, "screenshot": true, "visible": true, "resize": true,
}

// TestRunner plays a scripted touch session against an Engine, one step per
// frame. Actions:
//
//	down, move, up   x, y          single touch event
//	tap              x, y          down and up at the same point
//	drag             fromX .. toY  down, frames-2 moves, up
//	wait             frames        let the engine free-run
//	screenshot       label         render now and capture the frame
//	visible          visible       deliver a visibility change
//	resize           width, height deliver a surface change
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a JSON test script.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		if !knownActions[st.Action] {
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// Step advances the runner by one frame.
func (r *TestRunner) Step(e *Engine) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if e.PendingInjections() > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "down":
		e.InjectDown(st.X, st.Y)
	case "move":
		e.InjectMove(st.X, st.Y)
	case "up":
		e.InjectUp(st.X, st.Y)
	case "tap":
		e.InjectTap(st.X, st.Y)
	case "drag":
		e.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "screenshot":
		e.Screenshot(st.Label)
		e.RenderFrame()
	case "visible":
		e.OnVisibilityChanged(st.Visible)
	case "resize":
		e.OnSurfaceChanged(st.Width, st.Height)
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && e.PendingInjections() == 0 {
		r.done = true
	}
}

// Ticker is a Scheduler whose clock the caller advances.
type Ticker interface {
	Advance(d time.Duration) int
}

// Run drives e with the script until it is done or limit frames have run.
// Each frame steps the script, delivers one injected touch and advances
// clock by frame. It returns the number of frames run.
func (r *TestRunner) Run(e *Engine, clock Ticker, frame time.Duration, limit int) int {
	n := 0
	for n < limit {
		if r.done && e.PendingInjections() == 0 {
			break
		}
		r.Step(e)
		e.DrainInjected()
		clock.Advance(frame)
		n++
	}
	return n
}
