package medusa

import (
	"image"
	"image/draw"

	xdraw "golang.org/x/image/draw"
)

// CropRect returns the centered region of a srcW×srcH image that has the
// aspect ratio of dstW×dstH without stretching (aspect-fill). When the
// target is wider than the source the full width is kept and the height is
// trimmed equally from top and bottom; otherwise the full height is kept and
// the width is trimmed from both sides.
//
// A zero target dimension selects the whole source. The crop is never
// narrower or shorter than one pixel.
func CropRect(srcW, srcH, dstW, dstH int) image.Rectangle {
	if dstW == 0 || dstH == 0 {
		return image.Rect(0, 0, srcW, srcH)
	}
	dstAspect := float64(dstW) / float64(dstH)
	srcAspect := float64(srcW) / float64(srcH)
	if dstAspect > srcAspect {
		h := max(int(float64(srcW)*float64(dstH)/float64(dstW)), 1)
		y := (srcH - h) / 2
		return image.Rect(0, y, srcW, y+h)
	}
	w := max(int(float64(srcH)*float64(dstW)/float64(dstH)), 1)
	x := (srcW - w) / 2
	return image.Rect(x, 0, x+w, srcH)
}

type subImager interface {
	SubImage(r image.Rectangle) image.Image
}

// Prepare crops img to the aspect ratio of w×h. The result is a view into
// img and keeps img's coordinate space; it is not resampled to w×h.
// Zero w or h returns img unchanged.
func Prepare(img image.Image, w, h int) image.Image {
	if w == 0 || h == 0 {
		return img
	}
	b := img.Bounds()
	r := CropRect(b.Dx(), b.Dy(), w, h).Add(b.Min)
	if si, ok := img.(subImager); ok {
		return si.SubImage(r)
	}
	out := image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	draw.Draw(out, out.Bounds(), img, r.Min, draw.Src)
	return out
}

// scene holds everything derived from the assets for one surface size: the
// cropped layers, the pre-fitted masks and the three compositing buffers.
type scene struct {
	dark    image.Image
	light   image.Image
	overlay image.Image
	eyes    image.Image

	sliderMask *image.Alpha // slider crop fitted to the slider buffer
	eyesMask   *image.Alpha

	frame   *image.RGBA // buffer space, dark crop dimensions
	slider  *image.RGBA // square, side min(surface W, H)
	eyesBuf *image.RGBA // eyes sprite dimensions

	eyesAt image.Point // eyes buffer position inside frame

	surfaceW, surfaceH int
	scaleX, scaleY     float64 // surface pixels to buffer pixels
}

// prepareScene crops the assets for a w×h surface and allocates fresh
// buffers. Callers must release the previous scene first.
func prepareScene(a *Assets, cfg *Config, interp xdraw.Interpolator, w, h int) *scene {
	s := &scene{
		light:    Prepare(a.Light, w, h),
		dark:     Prepare(a.Dark, w, h),
		overlay:  Prepare(a.Overlay, w, h),
		eyes:     Prepare(a.Eyes, 0, 0),
		surfaceW: w,
		surfaceH: h,
	}

	m := min(w, h)
	s.slider = image.NewRGBA(image.Rect(0, 0, m, m))
	s.sliderMask = fitAlpha(Prepare(a.Slider, m, m), m, m, interp)

	nativeDark := a.Dark.Bounds()
	darkW, darkH := s.dark.Bounds().Dx(), s.dark.Bounds().Dy()
	s.eyesAt = image.Pt(
		cfg.EyesAnchorX-(nativeDark.Dx()-darkW)/2,
		cfg.EyesAnchorY-(nativeDark.Dy()-darkH)/2,
	)

	eyesMask := Prepare(a.EyesMask, 0, 0)
	em := eyesMask.Bounds()
	s.eyesMask = fitAlpha(eyesMask, em.Dx(), em.Dy(), interp)

	s.frame = image.NewRGBA(image.Rect(0, 0, darkW, darkH))
	eb := s.eyes.Bounds()
	s.eyesBuf = image.NewRGBA(image.Rect(0, 0, eb.Dx(), eb.Dy()))

	s.scaleX = float64(darkW) / float64(w)
	s.scaleY = float64(darkH) / float64(h)
	return s
}

// release drops every buffer and cropped view so they can be collected
// before the next scene is allocated.
func (s *scene) release() {
	if s == nil {
		return
	}
	s.frame = nil
	s.slider = nil
	s.eyesBuf = nil
	s.sliderMask = nil
	s.eyesMask = nil
	s.dark = nil
	s.light = nil
	s.overlay = nil
	s.eyes = nil
}

// fitAlpha extracts the alpha channel of img stretched to w×h.
func fitAlpha(img image.Image, w, h int, interp xdraw.Interpolator) *image.Alpha {
	out := image.NewAlpha(image.Rect(0, 0, w, h))
	interp.Scale(out, out.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return out
}
