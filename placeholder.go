package medusa

import (
	"image"
	"image/color"
	"math"
)

// Placeholder is a generated stand-in for the bundled wallpaper art. It has
// the same structure as the real assets (opaque backgrounds, a soft round
// slider, a two-eye sprite with its mask, a translucent overlay) so that the
// engine can run without an asset directory.
type Placeholder struct {
	Source MapSource

	// EyesAnchor is where the eyes sit in native dark-background
	// coordinates. Copy it into Config.EyesAnchorX/Y.
	EyesAnchor image.Point
}

// NewPlaceholder renders a placeholder scene whose backgrounds are w×h.
func NewPlaceholder(w, h int) Placeholder {
	if w < 16 {
		w = 16
	}
	if h < 16 {
		h = 16
	}
	eyesW := max(w/6, 8)
	eyesH := max(eyesW/3, 4)
	sliderSide := max(min(w, h)/3, 8)

	return Placeholder{
		Source: MapSource{
			AssetDark:     gradient(w, h, color.RGBA{12, 14, 34, 255}, color.RGBA{34, 22, 48, 255}),
			AssetLight:    gradient(w, h, color.RGBA{250, 214, 140, 255}, color.RGBA{196, 108, 72, 255}),
			AssetSlider:   softDisc(sliderSide),
			AssetEyes:     eyesSprite(eyesW, eyesH),
			AssetEyesMask: eyesMask(eyesW, eyesH),
			AssetOverlay:  tint(w, h, color.NRGBA{255, 48, 48, 56}),
		},
		EyesAnchor: image.Pt((w-eyesW)/2, h*2/5),
	}
}

func gradient(w, h int, top, bottom color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		t := float64(y) / float64(h-1)
		c := color.RGBA{
			R: lerp8(top.R, bottom.R, t),
			G: lerp8(top.G, bottom.G, t),
			B: lerp8(top.B, bottom.B, t),
			A: 255,
		}
		row := img.Pix[y*img.Stride : y*img.Stride+w*4]
		for x := 0; x < w; x++ {
			row[x*4+0] = c.R
			row[x*4+1] = c.G
			row[x*4+2] = c.B
			row[x*4+3] = c.A
		}
	}
	return img
}

// softDisc is a white disc whose alpha falls off over the outer 40% of the
// radius.
func softDisc(side int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, side, side))
	r := float64(side) / 2
	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			d := math.Hypot(float64(x)+0.5-r, float64(y)+0.5-r) / r
			a := 1.0
			if d > 0.6 {
				a = math.Max(0, 1-(d-0.6)/0.4)
			}
			img.SetNRGBA(x, y, color.NRGBA{255, 255, 255, uint8(a * 255)})
		}
	}
	return img
}

func eyesSprite(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.RGBA{220, 40, 30, 255}
			if inEye(x, y, w, h, 0.35) {
				c = color.RGBA{20, 6, 6, 255}
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func eyesMask(w, h int) *image.Alpha {
	img := image.NewAlpha(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if inEye(x, y, w, h, 1) {
				img.SetAlpha(x, y, color.Alpha{255})
			}
		}
	}
	return img
}

// inEye reports whether (x, y) lies in one of two side-by-side ellipses
// scaled by k.
func inEye(x, y, w, h int, k float64) bool {
	rx := float64(w) / 5 * k
	ry := float64(h) / 2.5 * k
	cy := float64(h) / 2
	for _, cx := range []float64{float64(w) * 0.28, float64(w) * 0.72} {
		dx := (float64(x) + 0.5 - cx) / rx
		dy := (float64(y) + 0.5 - cy) / ry
		if dx*dx+dy*dy <= 1 {
			return true
		}
	}
	return false
}

func tint(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i+0] = c.R
		img.Pix[i+1] = c.G
		img.Pix[i+2] = c.B
		img.Pix[i+3] = c.A
	}
	return img
}

func lerp8(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}
