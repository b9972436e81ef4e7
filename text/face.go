package text

import (
	gotext "github.com/go-text/typesetting/font"
	xfont "golang.org/x/image/font"
)

// Metrics holds vertical font metrics in pixels.
type Metrics struct {
	// Ascent is the distance from the baseline to the top of the line.
	Ascent float32
	// Descent is the positive distance from the baseline to the bottom of the line.
	Descent float32
	// Height is the recommended baseline-to-baseline distance.
	Height float32
}

// Face is a font family at one pixel size. It is the opaque handle carried
// by text draw commands. Faces are created by Registry.Face and shared.
type Face struct {
	reg     *Registry
	src     *Source
	size    float64
	xface   xfont.Face
	shape   *gotext.Face
	metrics Metrics
}

func newFace(r *Registry, src *Source, size float64, xf xfont.Face) *Face {
	m := xf.Metrics()
	return &Face{
		reg:   r,
		src:   src,
		size:  size,
		xface: xf,
		shape: gotext.NewFace(src.shape),
		metrics: Metrics{
			Ascent:  fixedToFloat(m.Ascent),
			Descent: fixedToFloat(m.Descent),
			Height:  fixedToFloat(m.Height),
		},
	}
}

// Family returns the family name of the face.
func (f *Face) Family() string {
	return f.src.family
}

// Size returns the face size in pixels.
func (f *Face) Size() float64 {
	return f.size
}

// Metrics returns the vertical metrics of the face.
func (f *Face) Metrics() Metrics {
	return f.metrics
}

// XFace returns the golang.org/x/image face used by raster backends.
// It is not safe for concurrent use.
func (f *Face) XFace() xfont.Face {
	return f.xface
}
