package medusa

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"golang.org/x/image/draw"
)

func TestDefaultConfigValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() = %v", err)
	}
	if cfg.RedrawInterval() != 60*time.Millisecond {
		t.Errorf("RedrawInterval() = %v, want 60ms", cfg.RedrawInterval())
	}
	if cfg.FadeDuration() != 0 {
		t.Errorf("FadeDuration() = %v, want 0", cfg.FadeDuration())
	}
	if cfg.interpolator() != draw.NearestNeighbor {
		t.Error("default interpolator should be nearest neighbour")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"zero interval", func(c *Config) { c.RedrawIntervalMS = 0 }},
		{"zero min velocity", func(c *Config) { c.MinVelocity = 0 }},
		{"max below min", func(c *Config) { c.MaxVelocity = 5 }},
		{"negative fade", func(c *Config) { c.FadeMS = -1 }},
		{"unknown ease", func(c *Config) { c.FadeEase = "bounce-twice" }},
		{"unknown interpolation", func(c *Config) { c.Interpolation = "lanczos" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestLoadConfigOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "medusa.json")
	data := `{"redraw_interval_ms": 30, "fade_ms": 250, "fade_ease": "out-cubic", "interpolation": "bilinear"}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.RedrawIntervalMS != 30 || cfg.FadeMS != 250 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.MinVelocity != 10 || cfg.MaxVelocity != 100 || cfg.EyesAnchorX != 915 {
		t.Errorf("defaults lost: %+v", cfg)
	}
	if cfg.interpolator() != draw.ApproxBiLinear {
		t.Error("interpolation override not applied")
	}
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := LoadConfig(filepath.Join(dir, "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file err = %v, want ErrNotExist", err)
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte("{"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(bad); err == nil {
		t.Error("malformed JSON should fail")
	}

	invalid := filepath.Join(dir, "invalid.json")
	if err := os.WriteFile(invalid, []byte(`{"min_velocity": -1}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(invalid); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("invalid values err = %v, want ErrInvalidConfig", err)
	}
}
