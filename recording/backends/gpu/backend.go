// Package gpu provides a recording backend that turns each frame into
// GPU upload data: one interleaved vertex buffer for every solid fill, the
// uniform block, and the textures the frame samples. The pipeline that
// consumes it (SPIR-V, vertex layout, blend state) comes from the shader
// package.
//
// No device is opened. Callers hand Frame and Pipeline to their own GPU
// layer, or write them out with Dump for inspection.
//
//	reg := recording.NewRegistry()
//	gpu.Register(reg)
//
//	backend, _ := reg.New("gpu")
//	rec.Playback(backend)
//
//	frame := backend.(*gpu.Backend).Frame()
//
// Text runs are counted but not uploaded; glyph atlases are outside this
// backend.
package gpu

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/ui/geom"
	"github.com/gogpu/ui/recording"
	"github.com/gogpu/ui/shader"
	"github.com/gogpu/ui/text"
	"github.com/gogpu/ui/texture"
)

// Name is the name the backend is registered under.
const Name = "gpu"

var (
	// ErrNotStarted is returned when drawing before Begin.
	ErrNotStarted = errors.New("gpu: Begin not called")

	// ErrNilTexture is returned by DrawImage for a nil texture.
	ErrNilTexture = errors.New("gpu: nil texture")
)

// Register adds the backend to reg, targeting a BGRA8 surface.
func Register(reg *recording.Registry) {
	reg.Register(Name, func() recording.Backend {
		return NewBackend(gputypes.TextureFormatBGRA8Unorm)
	})
}

// ImageDraw places a texture in frame coordinates.
type ImageDraw struct {
	Path string
	Dst  geom.Rect
}

// TextureUpload is the pixel data of one texture sampled by a frame.
type TextureUpload struct {
	Path          string
	Width, Height int
	Format        gputypes.TextureFormat
	Pixels        []byte
}

// Frame is the upload data of one finished frame.
type Frame struct {
	Width, Height int

	// Vertices holds VertexCount vertices in shader.VertexLayout order.
	Vertices    []byte
	VertexCount int

	// Uniforms is the shader.UniformSize uniform block.
	Uniforms []byte

	Images   []ImageDraw
	Textures []TextureUpload

	// TextRuns is the number of DrawText commands in the frame.
	TextRuns int
}

// Pipeline describes the render pipeline for Frame vertex data.
type Pipeline struct {
	SPIRV              []uint32
	VertexEntryPoint   string
	FragmentEntryPoint string
	Layout             []gputypes.VertexBufferLayout
	Primitive          gputypes.PrimitiveState
	Target             gputypes.ColorTargetState
}

// Backend collects a frame's commands and packs them on End.
type Backend struct {
	format gputypes.TextureFormat

	width, height int
	started       bool
	cmds          []recording.Command
	offset        geom.Vec2
	stack         []geom.Vec2
	images        []ImageDraw
	textures      map[string]*texture.Texture
	order         []string
	textRuns      int
	frame         *Frame

	pipelineOnce sync.Once
	pipeline     *Pipeline
	pipelineErr  error
}

var _ recording.Backend = (*Backend)(nil)

// NewBackend creates a backend for a surface of the given format.
func NewBackend(format gputypes.TextureFormat) *Backend {
	return &Backend{format: format}
}

// Begin starts collecting a frame of the given size.
func (b *Backend) Begin(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("gpu: invalid frame size %dx%d", width, height)
	}
	b.width, b.height = width, height
	b.started = true
	b.cmds = b.cmds[:0]
	b.offset = geom.Vec2{}
	b.stack = b.stack[:0]
	b.images = nil
	b.textures = make(map[string]*texture.Texture)
	b.order = nil
	b.textRuns = 0
	return nil
}

// End packs the collected commands into a Frame.
func (b *Backend) End() error {
	if !b.started {
		return ErrNotStarted
	}
	b.started = false

	verts := recording.PackVertices(b.cmds)
	f := &Frame{
		Width:       b.width,
		Height:      b.height,
		Vertices:    shader.VertexBytes(verts),
		VertexCount: len(verts) / recording.FloatsPerVertex,
		Uniforms:    shader.Uniforms(b.width, b.height),
		Images:      b.images,
		TextRuns:    b.textRuns,
	}
	for _, path := range b.order {
		tex := b.textures[path]
		w, h := tex.Size()
		f.Textures = append(f.Textures, TextureUpload{
			Path:   path,
			Width:  w,
			Height: h,
			Format: tex.Format(),
			Pixels: tex.Image().Pix,
		})
	}
	b.frame = f
	return nil
}

// Frame returns the last finished frame, or nil before the first End.
func (b *Backend) Frame() *Frame {
	return b.frame
}

// Save pushes the current origin.
func (b *Backend) Save() {
	b.cmds = append(b.cmds, recording.SaveCommand{})
	b.stack = append(b.stack, b.offset)
}

// Restore pops the origin.
func (b *Backend) Restore() {
	b.cmds = append(b.cmds, recording.RestoreCommand{})
	if n := len(b.stack); n > 0 {
		b.offset = b.stack[n-1]
		b.stack = b.stack[:n-1]
	}
}

// Translate moves the origin.
func (b *Backend) Translate(dx, dy float32) {
	b.cmds = append(b.cmds, recording.TranslateCommand{Offset: geom.V2(dx, dy)})
	b.offset = b.offset.Add(geom.V2(dx, dy))
}

// FillTriangles queues the triangles for the vertex buffer.
func (b *Backend) FillTriangles(c geom.Color, vertices []geom.Vec2) error {
	if !b.started {
		return ErrNotStarted
	}
	b.cmds = append(b.cmds, recording.FillTrianglesCommand{Color: c, Vertices: vertices})
	return nil
}

// DrawImage records a textured quad and schedules the texture for upload.
func (b *Backend) DrawImage(tex *texture.Texture, dst geom.Rect) error {
	if !b.started {
		return ErrNotStarted
	}
	if tex == nil {
		return ErrNilTexture
	}
	path := tex.Path()
	if _, ok := b.textures[path]; !ok {
		b.textures[path] = tex
		b.order = append(b.order, path)
	}
	b.images = append(b.images, ImageDraw{
		Path: path,
		Dst:  geom.Rect{Min: dst.Min.Add(b.offset), Size: dst.Size},
	})
	return nil
}

// DrawText counts the run.
func (b *Backend) DrawText(string, *text.Face, geom.Vec2, recording.TextStyle) error {
	if !b.started {
		return ErrNotStarted
	}
	b.textRuns++
	return nil
}

// Pipeline compiles the solid shader on first use and returns the
// pipeline description for the backend's surface format.
func (b *Backend) Pipeline() (*Pipeline, error) {
	b.pipelineOnce.Do(func() {
		words, err := shader.Compile()
		if err != nil {
			b.pipelineErr = err
			return
		}
		b.pipeline = &Pipeline{
			SPIRV:              words,
			VertexEntryPoint:   shader.VertexEntryPoint,
			FragmentEntryPoint: shader.FragmentEntryPoint,
			Layout:             shader.VertexLayout(),
			Primitive:          shader.Primitive(),
			Target:             shader.ColorTarget(b.format),
		}
	})
	return b.pipeline, b.pipelineErr
}
