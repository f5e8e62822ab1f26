package medusa

import (
	"errors"
	"image"

	xdraw "golang.org/x/image/draw"
)

// ErrSurfaceLost is returned by Surface.Lock when the surface is being torn
// down or recreated.
var ErrSurfaceLost = errors.New("surface lost")

// ErrSurfaceLocked is returned by ImageSurface.Lock when the previous lock
// has not been released.
var ErrSurfaceLocked = errors.New("surface already locked")

// Canvas receives draw commands between Surface.Lock and Surface.Unlock.
type Canvas interface {
	// DrawImage stretches the sr region of src (relative to the src origin)
	// into dr using mode.
	DrawImage(src image.Image, sr, dr image.Rectangle, mode BlendMode)
}

// Surface is the platform frame buffer the engine blits to. Its contents
// persist across Lock/Unlock until the platform resizes it.
type Surface interface {
	Size() (w, h int)
	Valid() bool
	Lock() (Canvas, error)
	Unlock(Canvas)
}

// ImageSurface is an in-memory Surface. It is used by the headless renderer
// and by tests, which can toggle validity and force lock failures.
type ImageSurface struct {
	// Interpolator used for stretched blits. Nil means nearest neighbour.
	Interpolator xdraw.Interpolator

	img     *image.RGBA
	valid   bool
	locked  bool
	lockErr error

	locks   int
	unlocks int
}

// NewImageSurface returns a valid w×h surface filled with transparent black.
func NewImageSurface(w, h int) *ImageSurface {
	return &ImageSurface{img: image.NewRGBA(image.Rect(0, 0, w, h)), valid: true}
}

// Size returns the surface dimensions in pixels.
func (s *ImageSurface) Size() (int, int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

// Valid reports whether the surface may be drawn to.
func (s *ImageSurface) Valid() bool { return s.valid }

// SetValid marks the surface valid or torn down.
func (s *ImageSurface) SetValid(v bool) { s.valid = v }

// SetLockError makes every subsequent Lock fail with err. Nil restores
// normal locking.
func (s *ImageSurface) SetLockError(err error) { s.lockErr = err }

// Lock grants exclusive access to the pixels.
func (s *ImageSurface) Lock() (Canvas, error) {
	switch {
	case !s.valid:
		return nil, ErrSurfaceLost
	case s.lockErr != nil:
		return nil, s.lockErr
	case s.locked:
		return nil, ErrSurfaceLocked
	}
	s.locked = true
	s.locks++
	return newImageCanvas(s.img, s.Interpolator), nil
}

// Unlock releases the lock taken by Lock.
func (s *ImageSurface) Unlock(Canvas) {
	if !s.locked {
		return
	}
	s.locked = false
	s.unlocks++
}

// Locked reports whether a lock is outstanding.
func (s *ImageSurface) Locked() bool { return s.locked }

// Locks returns how many locks were granted.
func (s *ImageSurface) Locks() int { return s.locks }

// Unlocks returns how many locks were released.
func (s *ImageSurface) Unlocks() int { return s.unlocks }

// Resize replaces the pixels with a fresh w×h image.
func (s *ImageSurface) Resize(w, h int) {
	s.img = image.NewRGBA(image.Rect(0, 0, w, h))
}

// Image returns the current pixels. The image is owned by the surface.
func (s *ImageSurface) Image() *image.RGBA { return s.img }
