package medusa

import (
	"fmt"
	"os"
	"time"
)

// debugStats holds per-frame timing. Only populated when debug mode is on.
type debugStats struct {
	composeTime time.Duration
	blitTime    time.Duration
	dropped     bool
	cursor      Cursor
}

// debugLog prints frame timing and cursor state to stderr.
func (e *Engine) debugLog(stats debugStats) {
	if !e.debug {
		return
	}
	status := "drawn"
	if stats.dropped {
		status = "dropped"
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[medusa] compose: %v | blit: %v | total: %v | %s\n",
		stats.composeTime, stats.blitTime, stats.composeTime+stats.blitTime, status)
	_, _ = fmt.Fprintf(os.Stderr,
		"[medusa] cursor: (%.1f, %.1f) v: (%.1f, %.1f) | alpha: %d/%d | frames: %d | dropped: %d\n",
		stats.cursor.X, stats.cursor.Y, stats.cursor.VX, stats.cursor.VY,
		e.sliderAlpha.Alpha(), e.eyesAlpha.Alpha(), e.stats.FramesDrawn, e.stats.FramesDropped)
}

// debugf prints a lifecycle line to stderr in debug mode.
func (e *Engine) debugf(format string, args ...any) {
	if !e.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[medusa] "+format+"\n", args...)
}
