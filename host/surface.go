package host

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/medusa"
)

// Surface is a medusa.Surface backed by an offscreen ebiten.Image. Its
// contents persist between frames and are presented by Game.Draw.
type Surface struct {
	img    *ebiten.Image
	w, h   int
	valid  bool
	locked bool
	filter ebiten.Filter

	// staging uploads CPU images to the GPU, keyed by source size.
	staging *ebiten.Image
}

// NewSurface returns an invalid surface; it becomes valid on the first
// resize.
func NewSurface(filter ebiten.Filter) *Surface {
	return &Surface{filter: filter}
}

// Size returns the surface dimensions in pixels.
func (s *Surface) Size() (int, int) { return s.w, s.h }

// Valid reports whether the surface has a backing image.
func (s *Surface) Valid() bool { return s.valid && s.img != nil }

// Lock hands out a canvas drawing into the surface image.
func (s *Surface) Lock() (medusa.Canvas, error) {
	if !s.Valid() {
		return nil, medusa.ErrSurfaceLost
	}
	if s.locked {
		return nil, medusa.ErrSurfaceLocked
	}
	s.locked = true
	return &canvas{s: s}, nil
}

// Unlock ends the draw pass started by Lock.
func (s *Surface) Unlock(medusa.Canvas) {
	s.locked = false
}

// Image returns the surface image, or nil before the first resize.
func (s *Surface) Image() *ebiten.Image { return s.img }

// Resize reallocates the surface image. The old image is deallocated first.
func (s *Surface) Resize(w, h int) {
	s.release()
	s.w, s.h = w, h
	if w <= 0 || h <= 0 {
		return
	}
	s.img = ebiten.NewImage(w, h)
	s.valid = true
}

// release drops the GPU images so a resize does not keep two generations
// alive.
func (s *Surface) release() {
	s.valid = false
	if s.img != nil {
		s.img.Deallocate()
		s.img = nil
	}
	if s.staging != nil {
		s.staging.Deallocate()
		s.staging = nil
	}
}

// upload copies src to the GPU. Tightly packed RGBA images reuse the
// staging image; anything else gets a temporary image the caller must
// deallocate.
func (s *Surface) upload(src image.Image) (img *ebiten.Image, temp bool) {
	b := src.Bounds()
	rgba, ok := src.(*image.RGBA)
	if !ok || rgba.Stride != 4*b.Dx() {
		return ebiten.NewImageFromImage(src), true
	}
	if s.staging == nil || s.staging.Bounds().Size() != b.Size() {
		if s.staging != nil {
			s.staging.Deallocate()
		}
		s.staging = ebiten.NewImage(b.Dx(), b.Dy())
	}
	s.staging.WritePixels(rgba.Pix[:4*b.Dx()*b.Dy()])
	return s.staging, false
}

// canvas draws through GeoM-scaled DrawImage calls.
type canvas struct {
	s *Surface
}

func (c *canvas) DrawImage(src image.Image, sr, dr image.Rectangle, mode medusa.BlendMode) {
	if sr.Empty() || dr.Empty() {
		return
	}
	img, temp := c.s.upload(src)
	if temp {
		defer img.Deallocate()
	}
	sub := img.SubImage(sr.Add(img.Bounds().Min)).(*ebiten.Image)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(dr.Dx())/float64(sr.Dx()), float64(dr.Dy())/float64(sr.Dy()))
	op.GeoM.Translate(float64(dr.Min.X), float64(dr.Min.Y))
	op.Blend = blendOf(mode)
	op.Filter = c.s.filter
	c.s.img.DrawImage(sub, op)
}

// blendOf maps a compositing operator to its Ebitengine blend.
func blendOf(mode medusa.BlendMode) ebiten.Blend {
	switch mode {
	case medusa.BlendCopy:
		return ebiten.BlendCopy
	case medusa.BlendDstIn:
		return ebiten.BlendDestinationIn
	default:
		return ebiten.BlendSourceOver
	}
}
