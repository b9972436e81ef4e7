package ui

import (
	"errors"
	"strings"

	"github.com/chewxy/math32"

	"github.com/gogpu/ui/geom"
	"github.com/gogpu/ui/recording"
)

// ElementID identifies an element within its container. IDs are never
// reused after removal.
type ElementID int32

// NoElement is the ID of a detached element and the parent of root elements.
const NoElement ElementID = -1

// dirtyText is the dirty-mask bit for the element label; property bits
// are 1 << Property.
const dirtyText = uint32(1) << numProperties

const dirtyAll = dirtyText<<1 - 1

// PressFunc handles a pointer press on an element.
type PressFunc func(e *Element)

// Element is a node in a container's tree. It owns its properties and a
// cached copy of its draw commands, rebuilt only when a property or the
// label changed since the last Recompute.
//
// Element is not safe for concurrent use.
type Element struct {
	Properties

	name  string
	kind  ElementKind
	label string

	dirty      uint32
	data       DrawData
	generation uint64
	resErr     error

	id       ElementID
	parent   ElementID
	children []ElementID
	owner    *Container

	onPress PressFunc
}

// NewElement creates a detached element. The name must be non-empty; it
// identifies the element within the container it is added to.
func NewElement(name string, opts ...ElementOption) (*Element, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrInvalidName
	}
	e := &Element{
		name:   name,
		dirty:  dirtyAll,
		id:     NoElement,
		parent: NoElement,
	}
	e.Properties = newProperties(e.propertyChanged)
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}
	return e, nil
}

func (e *Element) propertyChanged(p Property, _ Value) {
	e.dirty |= 1 << p
}

// Name returns the element name.
func (e *Element) Name() string {
	return e.name
}

// Kind returns the element kind.
func (e *Element) Kind() ElementKind {
	return e.kind
}

// Text returns the element label.
func (e *Element) Text() string {
	return e.label
}

// SetText replaces the label drawn centered in a box.
func (e *Element) SetText(s string) {
	e.label = s
	e.dirty |= dirtyText
}

// ID returns the element's id in its container, or NoElement when detached.
func (e *Element) ID() ElementID {
	return e.id
}

// Parent returns the parent id, or NoElement for roots and detached elements.
func (e *Element) Parent() ElementID {
	return e.parent
}

// Children returns the child ids in insertion order.
func (e *Element) Children() []ElementID {
	out := make([]ElementID, len(e.children))
	copy(out, e.children)
	return out
}

// Dirty reports whether the cached draw data is out of date.
func (e *Element) Dirty() bool {
	return e.dirty != 0
}

// DirtyMask returns the pending change bits: bit p for property p, and
// one bit above the last property for the label.
func (e *Element) DirtyMask() uint32 {
	return e.dirty
}

// Generation counts how many times the draw data was rebuilt.
func (e *Element) Generation() uint64 {
	return e.generation
}

// ResourceErr returns the resource error from the last rebuild, wrapping
// ErrResourceMissing, or nil.
func (e *Element) ResourceErr() error {
	return e.resErr
}

// DrawData returns the cached draw data without recomputing it.
func (e *Element) DrawData() DrawData {
	return e.data
}

// stale reports whether the next Recompute rebuilds. A build that fell
// back to a placeholder stays stale so it picks up the resource once it
// becomes available.
func (e *Element) stale() bool {
	return e.dirty != 0 || e.resErr != nil
}

// Recompute rebuilds the draw data if any property or the label changed
// since the last call, or if the last build used a placeholder, then
// returns it. Otherwise it returns the cached data unchanged.
func (e *Element) Recompute(res Resources) DrawData {
	if !e.stale() {
		return e.data
	}
	mask, prevErr := e.dirty, e.resErr
	e.data, e.resErr = e.Rebuild(res)
	e.dirty = 0
	e.generation++

	Logger().Debug("ui: element rebuilt",
		"element", e.name, "generation", e.generation, "mask", mask, "commands", e.data.Len())
	switch {
	case e.resErr == nil && prevErr != nil:
		Logger().Info("ui: element resources resolved", "element", e.name)
	case e.resErr != nil && (prevErr == nil || prevErr.Error() != e.resErr.Error()):
		Logger().Warn("ui: element drawn with placeholder", "element", e.name, "err", e.resErr)
	}
	return e.data
}

// Rebuild derives draw data from the current values, ignoring the cache.
// It does not touch the cached data or the dirty mask.
func (e *Element) Rebuild(res Resources) (DrawData, error) {
	vals := e.store.snapshot()
	return build(e.kind, e.label, &vals, res)
}

// Draw emits the cached draw data into b. Commands that fail do not stop
// the rest.
func (e *Element) Draw(b recording.Backend) error {
	return recording.EmitAll(b, e.data.Commands)
}

// Bounds returns the area the element covers in container coordinates.
func (e *Element) Bounds() geom.Rect {
	pos, size := e.GetVec2(Position), e.GetVec2(Size)
	if e.kind != KindLine {
		return geom.Rect{Min: pos, Size: size}
	}
	end := pos.Add(size)
	half := e.GetFloat(LineWidth) / 2
	minX, maxX := math32.Min(pos.X, end.X)-half, math32.Max(pos.X, end.X)+half
	minY, maxY := math32.Min(pos.Y, end.Y)-half, math32.Max(pos.Y, end.Y)+half
	return geom.R(minX, minY, maxX-minX, maxY-minY)
}

// Contains reports whether p, in container coordinates, hits the element.
func (e *Element) Contains(p geom.Vec2) bool {
	if e.kind != KindLine {
		return e.Bounds().Contains(p)
	}
	a := e.GetVec2(Position)
	d := e.GetVec2(Size)
	l2 := d.X*d.X + d.Y*d.Y
	if l2 == 0 {
		return false
	}
	ap := p.Sub(a)
	t := math32.Max(0, math32.Min(1, (ap.X*d.X+ap.Y*d.Y)/l2))
	closest := a.Add(d.Mul(t))
	return p.Sub(closest).Len() <= e.GetFloat(LineWidth)/2
}

// Pressable reports whether the element has a press handler.
func (e *Element) Pressable() bool {
	return e.onPress != nil
}

// Press invokes the press handler, if any, and reports whether one ran.
func (e *Element) Press() bool {
	if e.onPress == nil {
		return false
	}
	e.onPress(e)
	return true
}

// ElementOption configures an element during NewElement. An option error
// aborts construction.
type ElementOption func(*Element) error

// WithKind sets the element kind. The default is KindBox.
func WithKind(k ElementKind) ElementOption {
	return func(e *Element) error {
		if k != KindBox && k != KindLine {
			return errors.New("ui: unknown element kind " + k.String())
		}
		e.kind = k
		return nil
	}
}

// WithText sets the element label.
func WithText(s string) ElementOption {
	return func(e *Element) error {
		e.label = s
		return nil
	}
}

// WithOnPress sets the press handler.
func WithOnPress(fn PressFunc) ElementOption {
	return func(e *Element) error {
		e.onPress = fn
		return nil
	}
}

// WithValue sets a property during construction. A value of the wrong
// kind aborts construction with ErrTypeMismatch.
func WithValue(p Property, v Value) ElementOption {
	return func(e *Element) error {
		return e.Set(p, v)
	}
}
