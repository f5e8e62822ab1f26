package medusa

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"hello", "hello"},
		{"after-tap", "after-tap"},
		{"frame.01", "frame.01"},
		{"has spaces", "has_spaces"},
		{"path/to/thing", "path_to_thing"},
		{"back\\slash", "back_slash"},
		{"special!@#$%", "special_____"},
		{"", "unlabeled"},
		{"   ", "unlabeled"},
		{"MixedCase123", "MixedCase123"},
	}
	for _, tt := range tests {
		got := sanitizeLabel(tt.in)
		if got != tt.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestScreenshotQueueAppend(t *testing.T) {
	te := newTestEngine(t, 64, 64, 32, 32)
	te.Screenshot("a")
	te.Screenshot("b")
	te.Screenshot("c")
	if len(te.screenshotQueue) != 3 {
		t.Fatalf("queue len = %d, want 3", len(te.screenshotQueue))
	}
	if te.screenshotQueue[0] != "a" || te.screenshotQueue[1] != "b" || te.screenshotQueue[2] != "c" {
		t.Errorf("queue = %v, want [a b c]", te.screenshotQueue)
	}
}

func TestScreenshotFlush(t *testing.T) {
	te := newTestEngine(t, 64, 64, 32, 32)
	te.start()
	te.Screenshot("one")
	te.Screenshot("two")

	te.RenderFrame()

	if len(te.screenshotQueue) != 0 {
		t.Error("queue should be empty after a frame")
	}
	matches, _ := filepath.Glob(filepath.Join(te.ScreenshotDir, "*.png"))
	if len(matches) != 2 {
		t.Fatalf("wrote %d files, want 2", len(matches))
	}
	f, err := os.Open(matches[0])
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Size() != image.Pt(64, 64) {
		t.Errorf("screenshot size = %v, want buffer size 64x64", img.Bounds().Size())
	}
}

func TestToNRGBA(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 1))
	src.SetRGBA(0, 0, color.RGBA{50, 25, 0, 100})
	src.SetRGBA(1, 0, color.RGBA{10, 20, 30, 255})

	got := toNRGBA(src)

	if p := got.NRGBAAt(0, 0); p != (color.NRGBA{127, 63, 0, 100}) {
		t.Errorf("translucent pixel = %v, want {127 63 0 100}", p)
	}
	if p := got.NRGBAAt(1, 0); p != (color.NRGBA{10, 20, 30, 255}) {
		t.Errorf("opaque pixel = %v, want {10 20 30 255}", p)
	}
}

func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	if err := SavePNG(path, image.NewRGBA(image.Rect(0, 0, 3, 3))); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}
	if err := SavePNG(filepath.Join(t.TempDir(), "missing", "out.png"), image.NewRGBA(image.Rect(0, 0, 1, 1))); err == nil {
		t.Error("SavePNG into a missing directory should fail")
	}
}
