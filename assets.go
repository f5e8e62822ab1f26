package medusa

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // decoder registration
	_ "image/png"  // decoder registration
	"io/fs"

	_ "golang.org/x/image/webp" // decoder registration
)

// ErrAssetMissing is returned when a source has no image for a name.
var ErrAssetMissing = errors.New("asset missing")

// AssetSource supplies decoded images by logical name. Images must be
// delivered at their native resolution; the engine does its own cropping.
type AssetSource interface {
	Image(name string) (image.Image, error)
}

// Assets is the decoded, immutable image set of one wallpaper.
type Assets struct {
	Dark     image.Image
	Light    image.Image
	Slider   image.Image
	Eyes     image.Image
	EyesMask image.Image
	Overlay  image.Image
}

// LoadAssets requests every name in AssetNames from src. The first failure
// aborts loading; bundled assets have no fallback.
func LoadAssets(src AssetSource) (*Assets, error) {
	a := &Assets{}
	slots := map[string]*image.Image{
		AssetDark:     &a.Dark,
		AssetLight:    &a.Light,
		AssetSlider:   &a.Slider,
		AssetEyes:     &a.Eyes,
		AssetEyesMask: &a.EyesMask,
		AssetOverlay:  &a.Overlay,
	}
	for _, name := range AssetNames {
		img, err := src.Image(name)
		if err != nil {
			return nil, fmt.Errorf("load asset %q: %w", name, err)
		}
		if img == nil || img.Bounds().Empty() {
			return nil, fmt.Errorf("load asset %q: empty image", name)
		}
		*slots[name] = img
	}
	return a, nil
}

// validate reports the first nil image.
func (a *Assets) validate() error {
	for name, img := range map[string]image.Image{
		AssetDark: a.Dark, AssetLight: a.Light, AssetSlider: a.Slider,
		AssetEyes: a.Eyes, AssetEyesMask: a.EyesMask, AssetOverlay: a.Overlay,
	} {
		if img == nil {
			return fmt.Errorf("asset %q: %w", name, ErrAssetMissing)
		}
	}
	return nil
}

// MapSource serves images from memory.
type MapSource map[string]image.Image

// Image returns the image stored under name.
func (m MapSource) Image(name string) (image.Image, error) {
	img, ok := m[name]
	if !ok {
		return nil, ErrAssetMissing
	}
	return img, nil
}

// DirSource decodes <name>.png, <name>.webp or <name>.jpg from a file
// system, in that order of preference.
type DirSource struct {
	fsys fs.FS
}

var assetExts = []string{".png", ".webp", ".jpg"}

// NewDirSource returns a source reading from fsys.
func NewDirSource(fsys fs.FS) *DirSource {
	return &DirSource{fsys: fsys}
}

// Image decodes the first file found for name.
func (d *DirSource) Image(name string) (image.Image, error) {
	for _, ext := range assetExts {
		f, err := d.fsys.Open(name + ext)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, err
		}
		img, _, err := image.Decode(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("decode %s%s: %w", name, ext, err)
		}
		return img, nil
	}
	return nil, ErrAssetMissing
}
