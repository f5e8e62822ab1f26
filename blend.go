package medusa

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// imageCanvas draws into an in-memory RGBA image. It backs ImageSurface and
// every compositing buffer of the engine.
type imageCanvas struct {
	dst    *image.RGBA
	interp xdraw.Interpolator
}

func newImageCanvas(dst *image.RGBA, interp xdraw.Interpolator) *imageCanvas {
	if interp == nil {
		interp = xdraw.NearestNeighbor
	}
	return &imageCanvas{dst: dst, interp: interp}
}

// DrawImage stretches the sr region of src (relative to the src origin) into
// dr using mode. Source pixels outside src read as transparent.
func (c *imageCanvas) DrawImage(src image.Image, sr, dr image.Rectangle, mode BlendMode) {
	if sr.Empty() || dr.Empty() {
		return
	}
	sr = sr.Add(src.Bounds().Min)
	switch mode {
	case BlendCopy:
		c.interp.Scale(c.dst, dr, src, sr, xdraw.Src, nil)
	case BlendOver:
		c.interp.Scale(c.dst, dr, src, sr, xdraw.Over, nil)
	case BlendDstIn:
		m := image.NewAlpha(image.Rect(0, 0, dr.Dx(), dr.Dy()))
		c.interp.Scale(m, m.Bounds(), src, sr, xdraw.Src, nil)
		dstIn(c.dst, dr.Min, m, 0xff)
	}
}

// Clear makes every pixel transparent black.
func (c *imageCanvas) Clear() {
	clear(c.dst.Pix)
}

// Mask applies m at p with destination-in at the given paint alpha.
func (c *imageCanvas) Mask(m *image.Alpha, p image.Point, alpha uint8) {
	dstIn(c.dst, p, m, alpha)
}
