package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/phanxgames/medusa"
)

func TestRenderHeadlessPlaceholder(t *testing.T) {
	assets, cfg, err := loadScene("", "", 120, 200)
	if err != nil {
		t.Fatalf("loadScene: %v", err)
	}
	o := renderOptions{width: 120, height: 200, frames: 5}
	img, stats, err := renderHeadless(assets, cfg, o, nil)
	if err != nil {
		t.Fatalf("renderHeadless: %v", err)
	}
	if got := img.Bounds().Size(); got.X != 120 || got.Y != 200 {
		t.Errorf("image size = %v, want 120x200", got)
	}
	// One frame for the resize while hidden is skipped, one on becoming
	// visible, then one per tick.
	if stats.FramesDrawn != 6 {
		t.Errorf("FramesDrawn = %d, want 6", stats.FramesDrawn)
	}
	if stats.FramesDropped != 0 {
		t.Errorf("FramesDropped = %d, want 0", stats.FramesDropped)
	}
	if img.Pix[3] != 255 {
		t.Errorf("top-left alpha = %d, want opaque", img.Pix[3])
	}
}

func TestRenderHeadlessScript(t *testing.T) {
	assets, cfg, err := loadScene("", "", 100, 100)
	if err != nil {
		t.Fatalf("loadScene: %v", err)
	}
	script, err := medusa.LoadTestScript([]byte(`{"steps":[
		{"action":"tap","x":50,"y":50},
		{"action":"wait","frames":2},
		{"action":"screenshot","label":"after tap"}
	]}`))
	if err != nil {
		t.Fatalf("LoadTestScript: %v", err)
	}
	dir := t.TempDir()
	o := renderOptions{width: 100, height: 100, frames: 50, shots: dir}
	if _, _, err := renderHeadless(assets, cfg, o, script); err != nil {
		t.Fatalf("renderHeadless: %v", err)
	}
	if !script.Done() {
		t.Error("script not finished")
	}
	matches, _ := filepath.Glob(filepath.Join(dir, "*.png"))
	if len(matches) != 1 {
		t.Errorf("screenshots = %v, want one", matches)
	}
}

func TestLoadSceneConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "medusa.json")
	if err := os.WriteFile(path, []byte(`{"redraw_interval_ms": 30}`), 0o644); err != nil {
		t.Fatal(err)
	}
	_, cfg, err := loadScene("", path, 64, 64)
	if err != nil {
		t.Fatalf("loadScene: %v", err)
	}
	if cfg.RedrawIntervalMS != 30 {
		t.Errorf("RedrawIntervalMS = %d, want 30", cfg.RedrawIntervalMS)
	}
	p := medusa.NewPlaceholder(64, 64)
	if cfg.EyesAnchorX != p.EyesAnchor.X || cfg.EyesAnchorY != p.EyesAnchor.Y {
		t.Errorf("anchor = (%d, %d), want %v", cfg.EyesAnchorX, cfg.EyesAnchorY, p.EyesAnchor)
	}
}

func TestLoadSceneErrors(t *testing.T) {
	if _, _, err := loadScene(filepath.Join(t.TempDir(), "missing"), "", 64, 64); err == nil {
		t.Error("missing asset dir accepted")
	}
	if _, _, err := loadScene("", filepath.Join(t.TempDir(), "missing.json"), 64, 64); err == nil {
		t.Error("missing config accepted")
	}
	empty := t.TempDir()
	if _, _, err := loadScene(empty, "", 64, 64); err == nil {
		t.Error("empty asset dir accepted")
	}
}
