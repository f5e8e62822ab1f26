package medusa

import "image"

// BlendMode selects the compositing operator used for a draw.
type BlendMode uint8

const (
	BlendOver  BlendMode = iota // source-over (default paint)
	BlendCopy                   // source replaces destination, alpha included
	BlendDstIn                  // keep destination scaled by source alpha
)

// String returns the Porter-Duff name of the operator.
func (b BlendMode) String() string {
	switch b {
	case BlendOver:
		return "src-over"
	case BlendCopy:
		return "src"
	case BlendDstIn:
		return "dst-in"
	}
	return "unknown"
}

// Phase identifies the stage of a touch gesture.
type Phase uint8

const (
	PhaseDown Phase = iota // finger touched the surface
	PhaseMove              // finger moved while down
	PhaseUp                // finger lifted
)

// String returns the lower-case phase name used in test scripts.
func (p Phase) String() string {
	switch p {
	case PhaseDown:
		return "down"
	case PhaseMove:
		return "move"
	case PhaseUp:
		return "up"
	}
	return "unknown"
}

// Logical asset names requested from an AssetSource.
const (
	AssetDark     = "dark"
	AssetLight    = "light"
	AssetSlider   = "slider"
	AssetEyes     = "eyes"
	AssetEyesMask = "eyes_mask"
	AssetOverlay  = "overlay"
)

// AssetNames lists every asset an Engine needs, in load order.
var AssetNames = []string{
	AssetDark,
	AssetLight,
	AssetSlider,
	AssetEyes,
	AssetEyesMask,
	AssetOverlay,
}

// extent returns the bounds of img translated to the origin.
func extent(img image.Image) image.Rectangle {
	b := img.Bounds()
	return image.Rect(0, 0, b.Dx(), b.Dy())
}
