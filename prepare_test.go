package medusa

import (
	"image"
	"testing"
)

func TestCropRect(t *testing.T) {
	tests := []struct {
		name       string
		srcW, srcH int
		dstW, dstH int
		want       image.Rectangle
	}{
		{"portrait over square-ish", 2297, 2290, 1000, 2000, image.Rect(576, 0, 1721, 2290)},
		{"landscape over square-ish", 2297, 2290, 2000, 1000, image.Rect(0, 571, 2297, 1719)},
		{"matching aspect", 800, 600, 400, 300, image.Rect(0, 0, 800, 600)},
		{"identical size", 640, 480, 640, 480, image.Rect(0, 0, 640, 480)},
		{"square target", 300, 100, 50, 50, image.Rect(100, 0, 200, 100)},
		{"zero width target", 300, 100, 0, 50, image.Rect(0, 0, 300, 100)},
		{"zero height target", 300, 100, 50, 0, image.Rect(0, 0, 300, 100)},
		{"thin portrait keeps one column", 16, 16, 1, 40, image.Rect(7, 0, 8, 16)},
		{"thin landscape keeps one row", 16, 16, 40, 1, image.Rect(0, 7, 16, 8)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CropRect(tt.srcW, tt.srcH, tt.dstW, tt.dstH)
			if got != tt.want {
				t.Errorf("CropRect(%d, %d, %d, %d) = %v, want %v",
					tt.srcW, tt.srcH, tt.dstW, tt.dstH, got, tt.want)
			}
		})
	}
}

func TestCropRectIdempotent(t *testing.T) {
	sizes := [][2]int{{2297, 2290}, {1080, 1920}, {7, 3}, {1, 1}, {4000, 10}}
	for _, s := range sizes {
		r := CropRect(s[0], s[1], s[0], s[1])
		if r != image.Rect(0, 0, s[0], s[1]) {
			t.Errorf("crop of %v to own size = %v", s, r)
		}
		again := CropRect(r.Dx(), r.Dy(), 2*r.Dx(), 2*r.Dy())
		if again.Min != (image.Point{}) || again.Size() != r.Size() {
			t.Errorf("crop of %v to matching aspect = %v", s, again)
		}
	}
}

func TestCropRectCentered(t *testing.T) {
	for _, dst := range [][2]int{{1000, 2000}, {2000, 1000}, {3, 7}, {9, 2}} {
		r := CropRect(2297, 2290, dst[0], dst[1])
		left, right := r.Min.X, 2297-r.Max.X
		top, bottom := r.Min.Y, 2290-r.Max.Y
		if d := right - left; d < 0 || d > 1 {
			t.Errorf("dst %v: horizontal margins %d/%d", dst, left, right)
		}
		if d := bottom - top; d < 0 || d > 1 {
			t.Errorf("dst %v: vertical margins %d/%d", dst, top, bottom)
		}
	}
}

func TestPreparePassthrough(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 30, 20))
	if got := Prepare(img, 0, 0); got != image.Image(img) {
		t.Error("Prepare(img, 0, 0) should return img unchanged")
	}
	if got := Prepare(img, 10, 0); got != image.Image(img) {
		t.Error("Prepare(img, 10, 0) should return img unchanged")
	}
}

func TestPrepareIsView(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 300, 100))
	got := Prepare(img, 50, 50)
	if got.Bounds() != image.Rect(100, 0, 200, 100) {
		t.Fatalf("bounds = %v, want (100,0)-(200,100)", got.Bounds())
	}
	img.Pix[img.PixOffset(150, 50)] = 77
	if r, _, _, _ := got.At(150, 50).RGBA(); r>>8 != 77 {
		t.Error("prepared image should share pixels with the source")
	}
}

func TestPrepareOffsetSource(t *testing.T) {
	base := image.NewRGBA(image.Rect(0, 0, 400, 100))
	sub := base.SubImage(image.Rect(100, 0, 400, 100))
	got := Prepare(sub, 50, 50)
	if got.Bounds() != image.Rect(200, 0, 300, 100) {
		t.Errorf("bounds = %v, want (200,0)-(300,100)", got.Bounds())
	}
}

type plainImage struct{ image.Image }

func TestPrepareWithoutSubImage(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 300, 100))
	src.Pix[src.PixOffset(100, 0)] = 9
	got := Prepare(plainImage{src}, 50, 50)
	if got.Bounds() != image.Rect(0, 0, 100, 100) {
		t.Fatalf("bounds = %v, want 100x100 at origin", got.Bounds())
	}
	if r, _, _, _ := got.At(0, 0).RGBA(); r>>8 != 9 {
		t.Error("copy should start at the crop origin")
	}
}

func TestPrepareScene(t *testing.T) {
	p := NewPlaceholder(240, 160)
	a, err := LoadAssets(p.Source)
	if err != nil {
		t.Fatal(err)
	}
	cfg := DefaultConfig()
	cfg.EyesAnchorX, cfg.EyesAnchorY = p.EyesAnchor.X, p.EyesAnchor.Y

	s := prepareScene(a, &cfg, cfg.interpolator(), 60, 80)

	if got := s.frame.Bounds().Size(); got != image.Pt(120, 160) {
		t.Errorf("frame size = %v, want 120x160", got)
	}
	if got := s.slider.Bounds().Size(); got != image.Pt(60, 60) {
		t.Errorf("slider size = %v, want 60x60", got)
	}
	if got := s.sliderMask.Bounds().Size(); got != image.Pt(60, 60) {
		t.Errorf("slider mask size = %v, want 60x60", got)
	}
	if s.eyesBuf.Bounds().Size() != a.Eyes.Bounds().Size() {
		t.Errorf("eyes buffer %v, want native %v", s.eyesBuf.Bounds().Size(), a.Eyes.Bounds().Size())
	}
	wantEyes := image.Pt(p.EyesAnchor.X-60, p.EyesAnchor.Y)
	if s.eyesAt != wantEyes {
		t.Errorf("eyes at %v, want %v", s.eyesAt, wantEyes)
	}
	if s.scaleX != 2 || s.scaleY != 2 {
		t.Errorf("scale = (%v, %v), want (2, 2)", s.scaleX, s.scaleY)
	}

	s.release()
	if s.frame != nil || s.slider != nil || s.eyesBuf != nil || s.sliderMask != nil || s.eyesMask != nil {
		t.Error("release should drop all buffers")
	}
}

func TestSceneReleaseNil(t *testing.T) {
	var s *scene
	s.release()
}
