package medusa

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/tanema/gween/ease"
	"golang.org/x/image/draw"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the tuning values of the wallpaper. The zero value is not
// usable; start from DefaultConfig and override fields, or load a JSON file
// with LoadConfig.
type Config struct {
	// Frame period while the cursor free-runs.
	RedrawIntervalMS int `json:"redraw_interval_ms"` // Default: 60

	// Per-axis velocity magnitude bounds, in buffer pixels per tick.
	MinVelocity float64 `json:"min_velocity"` // Default: 10
	MaxVelocity float64 `json:"max_velocity"` // Default: 100

	// Paint alpha of the destination-in mask passes.
	SliderAlpha      uint8 `json:"slider_alpha"`       // Default: 100
	SliderTouchAlpha uint8 `json:"slider_touch_alpha"` // Default: 255
	EyesAlpha        uint8 `json:"eyes_alpha"`         // Default: 85
	EyesTouchAlpha   uint8 `json:"eyes_touch_alpha"`   // Default: 255

	// Eyes location in native (uncropped) dark-background coordinates.
	EyesAnchorX int `json:"eyes_anchor_x"` // Default: 915
	EyesAnchorY int `json:"eyes_anchor_y"` // Default: 950

	// Pupil travel range. The offset spans roughly ±Range/2 pixels.
	EyesRangeX int `json:"eyes_range_x"` // Default: 70
	EyesRangeY int `json:"eyes_range_y"` // Default: 14

	// Alpha transition between dimmed and touched levels. 0 switches
	// instantly.
	FadeMS   int    `json:"fade_ms"`   // Default: 0
	FadeEase string `json:"fade_ease"` // Default: "linear"

	// Resampling used for stretched draws: "nearest" or "bilinear".
	Interpolation string `json:"interpolation"` // Default: "nearest"
}

// DefaultConfig returns the stock wallpaper tuning.
func DefaultConfig() Config {
	return Config{
		RedrawIntervalMS: 60,
		MinVelocity:      10,
		MaxVelocity:      100,
		SliderAlpha:      100,
		SliderTouchAlpha: 255,
		EyesAlpha:        85,
		EyesTouchAlpha:   255,
		EyesAnchorX:      915,
		EyesAnchorY:      950,
		EyesRangeX:       70,
		EyesRangeY:       14,
		FadeMS:           0,
		FadeEase:         "linear",
		Interpolation:    "nearest",
	}
}

// LoadConfig reads a JSON file and overlays it onto DefaultConfig. Fields
// missing from the file keep their default value.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate reports the first out-of-range field.
func (c Config) Validate() error {
	switch {
	case c.RedrawIntervalMS <= 0:
		return fmt.Errorf("%w: redraw_interval_ms must be positive, got %d", ErrInvalidConfig, c.RedrawIntervalMS)
	case c.MinVelocity <= 0:
		return fmt.Errorf("%w: min_velocity must be positive, got %v", ErrInvalidConfig, c.MinVelocity)
	case c.MaxVelocity < c.MinVelocity:
		return fmt.Errorf("%w: max_velocity %v below min_velocity %v", ErrInvalidConfig, c.MaxVelocity, c.MinVelocity)
	case c.FadeMS < 0:
		return fmt.Errorf("%w: fade_ms must not be negative, got %d", ErrInvalidConfig, c.FadeMS)
	}
	if _, ok := easings[c.FadeEase]; !ok {
		return fmt.Errorf("%w: unknown fade_ease %q", ErrInvalidConfig, c.FadeEase)
	}
	if _, ok := interpolators[c.Interpolation]; !ok {
		return fmt.Errorf("%w: unknown interpolation %q", ErrInvalidConfig, c.Interpolation)
	}
	return nil
}

// RedrawInterval returns the free-run frame period.
func (c Config) RedrawInterval() time.Duration {
	return time.Duration(c.RedrawIntervalMS) * time.Millisecond
}

// FadeDuration returns the alpha transition length.
func (c Config) FadeDuration() time.Duration {
	return time.Duration(c.FadeMS) * time.Millisecond
}

var easings = map[string]ease.TweenFunc{
	"linear":      ease.Linear,
	"in-quad":     ease.InQuad,
	"out-quad":    ease.OutQuad,
	"in-out-quad": ease.InOutQuad,
	"out-cubic":   ease.OutCubic,
	"in-out-sine": ease.InOutSine,
}

var interpolators = map[string]draw.Interpolator{
	"nearest":  draw.NearestNeighbor,
	"bilinear": draw.ApproxBiLinear,
}

func (c Config) easing() ease.TweenFunc {
	if fn, ok := easings[c.FadeEase]; ok {
		return fn
	}
	return ease.Linear
}

func (c Config) interpolator() draw.Interpolator {
	if in, ok := interpolators[c.Interpolation]; ok {
		return in
	}
	return draw.NearestNeighbor
}
