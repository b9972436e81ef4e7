package ui

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/gogpu/ui/geom"
	"github.com/gogpu/ui/recording"
	"github.com/gogpu/ui/recording/backends/gpu"
	"github.com/gogpu/ui/recording/backends/raster"
	"github.com/gogpu/ui/text"
	"github.com/gogpu/ui/texture"
)

// Layer is a top-level drawable the engine renders each frame, such as a
// Container or a Modal.
type Layer interface {
	Name() string
	Render(b recording.Backend) error
	HitTest(p geom.Vec2, match func(*Element) bool) *Element
	Stats() Stats
}

var (
	_ Layer = (*Container)(nil)
	_ Layer = (*Modal)(nil)
)

// UpdateFunc runs in the update phase of every frame, after press dispatch.
type UpdateFunc func(in Input)

// Engine owns the resource registries and the layers of one UI, and drives
// frames: an update phase that applies input, then a render phase that
// draws every layer, first-added at the bottom.
//
// Engine is not safe for concurrent use, except for its registries.
type Engine struct {
	width, height int

	fonts    *text.Registry
	textures *texture.Registry
	backends *recording.Registry

	layers  []Layer
	updates []UpdateFunc
	buttons Buttons
	frames  uint64
	closed  bool
}

var _ Resources = (*Engine)(nil)

// NewEngine creates an engine with its own font, texture and backend
// registries. The "recorder", "raster" and "gpu" backends are registered.
func NewEngine(opts ...EngineOption) (*Engine, error) {
	o := defaultEngineOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.width <= 0 || o.height <= 0 {
		return nil, fmt.Errorf("ui: invalid viewport %dx%d", o.width, o.height)
	}

	log := Logger()
	fonts, err := text.NewRegistry(text.WithFaceCapacity(o.faceCapacity), text.WithLogger(log))
	if err != nil {
		return nil, fmt.Errorf("ui: font registry: %w", err)
	}
	for _, path := range o.fontFiles {
		if _, err := fonts.RegisterFile(path); err != nil {
			_ = fonts.Close()
			return nil, fmt.Errorf("ui: font %q: %w", path, err)
		}
	}

	e := &Engine{
		width:    o.width,
		height:   o.height,
		fonts:    fonts,
		textures: texture.NewRegistry(o.assets, texture.WithCapacity(o.textureCapacity), texture.WithLogger(log)),
		backends: recording.NewRegistry(),
	}
	raster.Register(e.backends)
	gpu.Register(e.backends)
	attachLogger(e)

	log.Info("ui: engine started", "width", e.width, "height", e.height, "fonts", e.fonts.Families())
	return e, nil
}

// SetLogger passes l to the engine's registries. SetLogger on the package
// calls it for every live engine.
func (e *Engine) SetLogger(l *slog.Logger) {
	e.fonts.SetLogger(l)
	e.textures.SetLogger(l)
}

// Viewport returns the frame size.
func (e *Engine) Viewport() (width, height int) {
	return e.width, e.height
}

// SetViewport changes the frame size used by later frames.
func (e *Engine) SetViewport(width, height int) {
	e.width, e.height = width, height
}

// Fonts returns the font registry.
func (e *Engine) Fonts() *text.Registry {
	return e.fonts
}

// Textures returns the texture registry.
func (e *Engine) Textures() *texture.Registry {
	return e.textures
}

// Backends returns the backend registry.
func (e *Engine) Backends() *recording.Registry {
	return e.backends
}

// NewBackend creates a registered backend by name.
func (e *Engine) NewBackend(name string) (recording.Backend, error) {
	return e.backends.New(name)
}

// Texture implements Resources.
func (e *Engine) Texture(path string) (*texture.Texture, error) {
	return e.textures.Texture(path)
}

// Face implements Resources.
func (e *Engine) Face(family string, size float64) (*text.Face, error) {
	return e.fonts.Face(family, size)
}

// NewContainer creates a container using the engine's resources and adds
// it as the top layer.
func (e *Engine) NewContainer(name string, opts ...ContainerOption) (*Container, error) {
	c, err := NewContainer(name, append([]ContainerOption{WithResources(e)}, opts...)...)
	if err != nil {
		return nil, err
	}
	if err := e.AddLayer(c); err != nil {
		return nil, err
	}
	return c, nil
}

// NewModal creates a modal using the engine's resources and adds it as the
// top layer.
func (e *Engine) NewModal(name string, opts ...ContainerOption) (*Modal, error) {
	m, err := NewModal(name, append([]ContainerOption{WithResources(e)}, opts...)...)
	if err != nil {
		return nil, err
	}
	if err := e.AddLayer(m); err != nil {
		return nil, err
	}
	return m, nil
}

// AddLayer adds l above every existing layer. Layer names are unique.
func (e *Engine) AddLayer(l Layer) error {
	if e.closed {
		return ErrClosed
	}
	if _, err := e.Layer(l.Name()); err == nil {
		return fmt.Errorf("%w: layer %q", ErrDuplicateName, l.Name())
	}
	e.layers = append(e.layers, l)
	return nil
}

// ReplaceLayer puts l in place of the layer with the same name, keeping
// its position in the draw order. A layer with a new name is added on top.
func (e *Engine) ReplaceLayer(l Layer) error {
	if e.closed {
		return ErrClosed
	}
	for i, old := range e.layers {
		if old.Name() == l.Name() {
			e.layers[i] = l
			return nil
		}
	}
	e.layers = append(e.layers, l)
	return nil
}

// Layer returns the layer with the given name.
func (e *Engine) Layer(name string) (Layer, error) {
	for _, l := range e.layers {
		if l.Name() == name {
			return l, nil
		}
	}
	return nil, fmt.Errorf("%w: layer %q", ErrNotFound, name)
}

// Layers returns the layers bottom to top.
func (e *Engine) Layers() []Layer {
	return slices.Clone(e.layers)
}

// RemoveLayer removes the layer with the given name.
func (e *Engine) RemoveLayer(name string) error {
	for i, l := range e.layers {
		if l.Name() == name {
			e.layers = slices.Delete(e.layers, i, i+1)
			return nil
		}
	}
	return fmt.Errorf("%w: layer %q", ErrNotFound, name)
}

// OnUpdate registers fn to run in the update phase of every frame.
func (e *Engine) OnUpdate(fn UpdateFunc) {
	e.updates = append(e.updates, fn)
}

// Frames returns the number of frames run.
func (e *Engine) Frames() uint64 {
	return e.frames
}

// Frame runs one frame. The update phase dispatches a left-button press to
// the topmost pressable element under the pointer and runs the OnUpdate
// functions. The render phase begins a frame on b, renders every layer
// bottom to top and ends the frame. Layer errors do not stop other layers;
// they are joined into the returned error.
func (e *Engine) Frame(in Input, b recording.Backend) error {
	if e.closed {
		return ErrClosed
	}

	if in.pressed(e.buttons).Has(ButtonLeft) {
		e.dispatchPress(in.Pointer)
	}
	e.buttons = in.Buttons
	for _, fn := range e.updates {
		fn(in)
	}

	if err := b.Begin(e.width, e.height); err != nil {
		return fmt.Errorf("ui: begin frame: %w", err)
	}
	var errs []error
	for _, l := range e.layers {
		if err := l.Render(b); err != nil {
			errs = append(errs, fmt.Errorf("layer %q: %w", l.Name(), err))
		}
	}
	if err := b.End(); err != nil {
		errs = append(errs, fmt.Errorf("ui: end frame: %w", err))
	}
	e.frames++
	return errors.Join(errs...)
}

// dispatchPress presses the topmost pressable element under p, testing
// layers from the top.
func (e *Engine) dispatchPress(p geom.Vec2) {
	for i := len(e.layers) - 1; i >= 0; i-- {
		if el := e.layers[i].HitTest(p, (*Element).Pressable); el != nil {
			Logger().Debug("ui: press", "layer", e.layers[i].Name(), "element", el.Name())
			el.Press()
			return
		}
	}
}

// Close releases the registries. Further frames fail with ErrClosed.
func (e *Engine) Close() error {
	if e.closed {
		return nil
	}
	e.closed = true
	detachLogger(e)
	err := errors.Join(e.textures.Close(), e.fonts.Close())
	Logger().Info("ui: engine closed", "frames", e.frames)
	return err
}
