package ui

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"

	"github.com/gogpu/ui/geom"
	"github.com/gogpu/ui/recording"
	"github.com/gogpu/ui/text"
	"github.com/gogpu/ui/texture"
)

// Resources resolves the textures and fonts referenced by properties.
// An Engine implements it; tests may supply their own.
type Resources interface {
	Texture(path string) (*texture.Texture, error)
	Face(family string, size float64) (*text.Face, error)
}

// ElementKind selects how an element turns its properties into geometry.
type ElementKind uint8

const (
	// KindBox draws a rounded rectangle with optional texture, border and
	// centered text.
	KindBox ElementKind = iota
	// KindLine draws a segment from Position to Position+Size.
	KindLine
)

func (k ElementKind) String() string {
	switch k {
	case KindBox:
		return "box"
	case KindLine:
		return "line"
	default:
		return fmt.Sprintf("ElementKind(%d)", uint8(k))
	}
}

// DrawData is the cached draw output of an element, in container
// coordinates.
type DrawData struct {
	Commands []recording.Command
}

// Len returns the number of commands.
func (d DrawData) Len() int {
	return len(d.Commands)
}

var errNoResources = errors.New("no resource provider")

// build derives draw commands from property values. It is a pure function
// of its inputs; both the cached and the uncached paths go through it.
// The returned error is non-nil when a resource was missing and a
// placeholder or fallback was drawn instead.
func build(kind ElementKind, label string, vals *[numProperties]Value, res Resources) (DrawData, error) {
	var b builder
	switch kind {
	case KindLine:
		b.line(vals)
	default:
		b.box(label, vals, res)
	}
	return DrawData{Commands: b.cmds}, errors.Join(b.errs...)
}

type builder struct {
	cmds []recording.Command
	errs []error
}

func (b *builder) fill(c geom.Color, tris []geom.Vec2) {
	if !c.Visible() || len(tris) == 0 {
		return
	}
	b.cmds = append(b.cmds, recording.FillTrianglesCommand{Color: c, Vertices: tris})
}

func (b *builder) line(vals *[numProperties]Value) {
	from := vals[propPosition].Vec2()
	to := from.Add(vals[propSize].Vec2())
	b.fill(vals[propBackgroundColor].Color(), geom.Line(from, to, vals[propLineWidth].Float()))
}

func (b *builder) box(label string, vals *[numProperties]Value, res Resources) {
	bounds := geom.Rect{Min: vals[propPosition].Vec2(), Size: vals[propSize].Vec2()}
	if bounds.Empty() {
		return
	}
	radius := geom.ClampRadius(bounds, vals[propCornerRadius].Float())

	b.fill(vals[propBackgroundColor].Color(), geom.RoundedRect(bounds, radius))

	if path := vals[propBackgroundTexture].Str(); path != "" {
		b.texture(path, bounds, res)
	}

	b.fill(vals[propBorderColor].Color(), geom.Border(bounds, radius, vals[propBorderWidth].Float()))

	if label != "" {
		b.text(label, bounds, vals, res)
	}
}

func (b *builder) texture(path string, bounds geom.Rect, res Resources) {
	var (
		tex *texture.Texture
		err = errNoResources
	)
	if res != nil {
		tex, err = res.Texture(path)
	}
	if err != nil {
		b.errs = append(b.errs, fmt.Errorf("%w: texture %q: %w", ErrResourceMissing, path, err))
		b.fill(geom.Magenta, geom.Quad(bounds))
		return
	}
	b.cmds = append(b.cmds, recording.DrawImageCommand{Texture: tex, Dst: bounds})
}

func (b *builder) text(label string, bounds geom.Rect, vals *[numProperties]Value, res Resources) {
	style := recording.TextStyle{
		Color: vals[propFontColor].Color(),
		Width: vals[propFontWidth].Float(),
		Blur:  vals[propFontBlur].Float(),
	}
	if !style.Color.Visible() {
		return
	}
	if res == nil {
		b.errs = append(b.errs, fmt.Errorf("%w: font: %w", ErrResourceMissing, errNoResources))
		return
	}

	family := vals[propFontFamily].Str()
	size := float64(vals[propFontSize].Float())
	face, err := res.Face(family, size)
	if err != nil {
		b.errs = append(b.errs, fmt.Errorf("%w: font %q: %w", ErrResourceMissing, family, err))
		if face, err = res.Face(text.DefaultFamily, size); err != nil {
			return
		}
	}

	advance := face.Measure(label)
	m := face.Metrics()
	origin := geom.V2(
		bounds.Min.X+(bounds.Size.X-advance)/2,
		bounds.Min.Y+(bounds.Size.Y+m.Ascent-m.Descent)/2,
	)
	// Snap the baseline so glyphs land on whole pixels.
	origin.Y = math32.Floor(origin.Y + 0.5)
	b.cmds = append(b.cmds, recording.DrawTextCommand{Text: label, Face: face, Origin: origin, Style: style})
}
