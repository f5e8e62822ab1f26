package medusa

import "testing"

func TestDebugModeRenders(t *testing.T) {
	te := newTestEngine(t, 64, 64, 32, 32)
	te.SetDebugMode(true)
	te.start()
	te.sched.Advance(tick)
	te.surface.SetValid(false)
	te.sched.Advance(tick)

	st := te.Stats()
	if st.FramesDrawn != 2 || st.FramesDropped != 1 {
		t.Errorf("frames drawn/dropped = %d/%d, want 2/1", st.FramesDrawn, st.FramesDropped)
	}
}

func TestDebugOffIsQuiet(t *testing.T) {
	te := newTestEngine(t, 64, 64, 32, 32)
	te.debugf("never printed %d", 1)
	te.debugLog(debugStats{})
}
