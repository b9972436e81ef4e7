// Package texture loads images by path and hands them out as opaque
// texture handles for image draw commands.
//
// PNG, JPEG, GIF, BMP and WebP are decoded. A Registry reads from an
// fs.FS, so tests and embedded assets work the same way as files on disk.
package texture

import (
	"errors"
	"image"
	"image/draw"
	"log/slog"

	"github.com/gogpu/gputypes"
)

// Sentinel errors for texture package.
var (
	// ErrNotFound is returned when a texture path cannot be opened.
	ErrNotFound = errors.New("texture: not found")

	// ErrDecode is returned when a file exists but is not a decodable image.
	ErrDecode = errors.New("texture: decode failed")

	// ErrClosed is returned by a Registry after Close.
	ErrClosed = errors.New("texture: registry closed")
)

// Texture is a decoded RGBA image identified by its path.
type Texture struct {
	path string
	img  *image.RGBA
}

// NewTexture converts img to RGBA and wraps it as a texture named path.
func NewTexture(path string, img image.Image) *Texture {
	rgba, ok := img.(*image.RGBA)
	if !ok || rgba.Bounds().Min != (image.Point{}) {
		b := img.Bounds()
		rgba = image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	}
	return &Texture{path: path, img: rgba}
}

// Path returns the lookup path of the texture.
func (t *Texture) Path() string {
	return t.path
}

// Size returns the texture dimensions in pixels.
func (t *Texture) Size() (width, height int) {
	b := t.img.Bounds()
	return b.Dx(), b.Dy()
}

// Image returns the pixel data. Callers must not modify it.
func (t *Texture) Image() *image.RGBA {
	return t.img
}

// Format returns the GPU texture format matching Image's pixel layout.
func (t *Texture) Format() gputypes.TextureFormat {
	return gputypes.TextureFormatRGBA8Unorm
}

// Option configures a Registry.
type Option func(*Registry)

// WithCapacity bounds how many decoded textures stay cached.
func WithCapacity(n int) Option {
	return func(r *Registry) {
		r.capacity = n
	}
}

// WithLogger sets the logger used for registry diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(r *Registry) {
		r.SetLogger(l)
	}
}
