// Package raster provides a CPU raster backend for the recording system.
// It renders commands into an *image.RGBA using golang.org/x/image.
//
// The raster backend serves as:
//   - Reference implementation for other backends
//   - Pixel-level comparison testing
//   - Headless output for tools and CI
//
// # Example
//
//	reg := recording.NewRegistry()
//	raster.Register(reg)
//
//	backend, _ := reg.New("raster")
//	rec.Playback(backend)
//
//	backend.(*raster.Backend).SavePNG("output.png")
//
// Text is drawn with the face's x/image outline at full coverage; the
// distance-field width and blur in recording.TextStyle are ignored.
package raster

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/gogpu/ui/geom"
	"github.com/gogpu/ui/recording"
	"github.com/gogpu/ui/text"
	"github.com/gogpu/ui/texture"
)

// Name is the name the backend is registered under.
const Name = "raster"

var (
	// ErrNotStarted is returned when drawing before Begin.
	ErrNotStarted = errors.New("raster: Begin not called")

	// ErrNilTexture is returned by DrawImage for a nil texture.
	ErrNilTexture = errors.New("raster: nil texture")

	// ErrNilFace is returned by DrawText for a nil face.
	ErrNilFace = errors.New("raster: nil face")
)

// Register adds the raster backend to reg.
func Register(reg *recording.Registry) {
	reg.Register(Name, func() recording.Backend {
		return NewBackend()
	})
}

// Backend renders commands into an RGBA image.
type Backend struct {
	img    *image.RGBA
	rast   *vector.Rasterizer
	offset geom.Vec2
	stack  []geom.Vec2
}

var _ recording.Backend = (*Backend)(nil)

// NewBackend creates a new raster backend.
// The backend must be initialized with Begin before use.
func NewBackend() *Backend {
	return &Backend{}
}

// Begin allocates a transparent canvas of the given size.
func (b *Backend) Begin(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("raster: invalid canvas size %dx%d", width, height)
	}
	b.img = image.NewRGBA(image.Rect(0, 0, width, height))
	if b.rast == nil {
		b.rast = vector.NewRasterizer(width, height)
	} else {
		b.rast.Reset(width, height)
	}
	b.offset = geom.Vec2{}
	b.stack = b.stack[:0]
	return nil
}

// End finalizes the frame. The image stays available until the next Begin.
func (b *Backend) End() error {
	return nil
}

// Save pushes the current origin.
func (b *Backend) Save() {
	b.stack = append(b.stack, b.offset)
}

// Restore pops the origin.
func (b *Backend) Restore() {
	if n := len(b.stack); n > 0 {
		b.offset = b.stack[n-1]
		b.stack = b.stack[:n-1]
	}
}

// Translate moves the origin.
func (b *Backend) Translate(dx, dy float32) {
	b.offset = b.offset.Add(geom.V2(dx, dy))
}

// FillTriangles rasterizes the triangle list as a single coverage pass so
// edges shared between triangles leave no seams.
func (b *Backend) FillTriangles(c geom.Color, vertices []geom.Vec2) error {
	if b.img == nil {
		return ErrNotStarted
	}
	if len(vertices) < 3 || !c.Visible() {
		return nil
	}

	bounds := b.img.Bounds()
	b.rast.Reset(bounds.Dx(), bounds.Dy())
	for i := 0; i+2 < len(vertices); i += 3 {
		p0 := vertices[i].Add(b.offset)
		p1 := vertices[i+1].Add(b.offset)
		p2 := vertices[i+2].Add(b.offset)
		// Coverage accumulates signed area; keep every triangle wound the
		// same way so overlaps add instead of cancel.
		if geom.SignedArea(p0, p1, p2) < 0 {
			p1, p2 = p2, p1
		}
		b.rast.MoveTo(p0.X, p0.Y)
		b.rast.LineTo(p1.X, p1.Y)
		b.rast.LineTo(p2.X, p2.Y)
		b.rast.ClosePath()
	}
	b.rast.DrawOp = draw.Over
	b.rast.Draw(b.img, bounds, image.NewUniform(c.NRGBA()), image.Point{})
	return nil
}

// DrawImage scales tex into dst with bilinear filtering.
func (b *Backend) DrawImage(tex *texture.Texture, dst geom.Rect) error {
	if b.img == nil {
		return ErrNotStarted
	}
	if tex == nil {
		return ErrNilTexture
	}
	r := dst.Translate(b.offset)
	dr := image.Rect(
		int(r.Min.X+0.5), int(r.Min.Y+0.5),
		int(r.Max().X+0.5), int(r.Max().Y+0.5),
	)
	if dr.Empty() {
		return nil
	}
	src := tex.Image()
	xdraw.BiLinear.Scale(b.img, dr, src, src.Bounds(), xdraw.Over, nil)
	return nil
}

// DrawText draws s with its baseline starting at origin.
func (b *Backend) DrawText(s string, face *text.Face, origin geom.Vec2, style recording.TextStyle) error {
	if b.img == nil {
		return ErrNotStarted
	}
	if face == nil {
		return ErrNilFace
	}
	if s == "" || !style.Color.Visible() {
		return nil
	}
	p := origin.Add(b.offset)
	d := font.Drawer{
		Dst:  b.img,
		Src:  image.NewUniform(style.Color.NRGBA()),
		Face: face.XFace(),
		Dot:  fixed.Point26_6{X: fixed.Int26_6(p.X * 64), Y: fixed.Int26_6(p.Y * 64)},
	}
	d.DrawString(s)
	return nil
}

// Image returns the rendered image, or nil before Begin.
func (b *Backend) Image() *image.RGBA {
	return b.img
}

// At returns the pixel at (x, y) as non-premultiplied color.
func (b *Backend) At(x, y int) color.NRGBA {
	if b.img == nil {
		return color.NRGBA{}
	}
	return color.NRGBAModel.Convert(b.img.At(x, y)).(color.NRGBA)
}

// Width returns the canvas width.
func (b *Backend) Width() int {
	if b.img == nil {
		return 0
	}
	return b.img.Bounds().Dx()
}

// Height returns the canvas height.
func (b *Backend) Height() int {
	if b.img == nil {
		return 0
	}
	return b.img.Bounds().Dy()
}

// EncodePNG writes the image to w as PNG.
func (b *Backend) EncodePNG(w io.Writer) error {
	if b.img == nil {
		return ErrNotStarted
	}
	return png.Encode(w, b.img)
}

// SavePNG saves the image to a PNG file.
func (b *Backend) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("raster: %w", err)
	}
	if err := b.EncodePNG(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
