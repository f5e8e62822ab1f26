package host

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/phanxgames/medusa"
)

// hud is a debug overlay showing frame rates and engine state. It is
// redrawn about every half second.
type hud struct {
	img        *ebiten.Image
	lastUpdate float64
}

func newHUD() *hud {
	// 180x64 is enough for four lines of debug font.
	return &hud{img: ebiten.NewImage(180, 64), lastUpdate: 1}
}

func (h *hud) update(dt float64, e *medusa.Engine) {
	h.lastUpdate += dt
	if h.lastUpdate < 0.5 {
		return
	}
	h.lastUpdate = 0

	h.img.Clear()
	// Semi-transparent background for readability
	h.img.Fill(color.RGBA{0, 0, 0, 128})

	c := e.Cursor()
	st := e.Stats()
	ebitenutil.DebugPrint(h.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nXY: %.0f,%.0f V: %.0f,%.0f\nframes: %d drop: %d",
		ebiten.ActualFPS(), ebiten.ActualTPS(), c.X, c.Y, c.VX, c.VY, st.FramesDrawn, st.FramesDropped))
}

func (h *hud) draw(screen *ebiten.Image) {
	screen.DrawImage(h.img, nil)
}
