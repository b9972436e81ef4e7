package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gogpu/ui/geom"
	"github.com/gogpu/ui/recording"
)

// Stats counts the work done by a container's render passes.
type Stats struct {
	// Frames is the number of Render calls.
	Frames uint64
	// ElementDraws is the number of times an element's draw logic ran.
	ElementDraws uint64
	// Rebuilds is the number of element draw data rebuilds.
	Rebuilds uint64
	// Failures is the number of element draws that returned an error.
	Failures uint64
}

// Container is a top-level panel holding a tree of uniquely named elements.
// Its own properties place and size the panel and style its background;
// elements are positioned in panel coordinates.
//
// Container is not safe for concurrent use.
type Container struct {
	Properties

	name  string
	res   Resources
	tree  tree
	stats Stats

	size   geom.Vec2
	onSize func()

	panel      DrawData
	panelDirty bool
}

// NewContainer creates an empty container.
func NewContainer(name string, opts ...ContainerOption) (*Container, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrInvalidName
	}
	c := &Container{
		name:       name,
		tree:       newTree(),
		panelDirty: true,
	}
	c.Properties = newProperties(c.propertyChanged)
	c.size = c.GetVec2(Size)
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *Container) propertyChanged(p Property, v Value) {
	c.panelDirty = true
	if p == Size.Property() && v.Vec2() != c.size {
		c.size = v.Vec2()
		if c.onSize != nil {
			c.onSize()
		}
	}
}

// Name returns the container name.
func (c *Container) Name() string {
	return c.name
}

// Bounds returns the panel rectangle in screen coordinates.
func (c *Container) Bounds() geom.Rect {
	return geom.Rect{Min: c.GetVec2(Position), Size: c.GetVec2(Size)}
}

// Len returns the number of elements.
func (c *Container) Len() int {
	return c.tree.len()
}

// Add appends e as a root element.
func (c *Container) Add(e *Element) (ElementID, error) {
	return c.AddChild(NoElement, e)
}

// AddChild appends e as the last child of parent. Pass NoElement to add a
// root element.
func (c *Container) AddChild(parent ElementID, e *Element) (ElementID, error) {
	if e == nil {
		return NoElement, ErrInvalidName
	}
	if e.owner != nil {
		return NoElement, fmt.Errorf("%w: %q", ErrAttached, e.name)
	}
	id, err := c.tree.insert(e, parent)
	if err != nil {
		return NoElement, err
	}
	e.owner = c
	return id, nil
}

// Remove detaches the element and its descendants. Their ids are not reused.
func (c *Container) Remove(id ElementID) error {
	removed, err := c.tree.remove(id)
	if err != nil {
		return err
	}
	for _, e := range removed {
		e.owner = nil
	}
	Logger().Debug("ui: elements removed", "container", c.name, "count", len(removed))
	return nil
}

// Element returns the element with the given name.
func (c *Container) Element(name string) (*Element, error) {
	if e := c.tree.lookup(name); e != nil {
		return e, nil
	}
	return nil, fmt.Errorf("%w: element %q in %q", ErrNotFound, name, c.name)
}

// ElementByID returns the element with the given id.
func (c *Container) ElementByID(id ElementID) (*Element, bool) {
	e := c.tree.get(id)
	return e, e != nil
}

// Walk visits the elements in draw order: pre-order, children in insertion
// order. Returning false stops the walk.
func (c *Container) Walk(fn func(e *Element, depth int) bool) {
	c.tree.walk(fn)
}

// HitTest returns the topmost element under p, given in screen
// coordinates, for which match returns true. A nil match accepts any
// element.
func (c *Container) HitTest(p geom.Vec2, match func(*Element) bool) *Element {
	if !c.Bounds().Contains(p) {
		return nil
	}
	local := p.Sub(c.GetVec2(Position))
	var hit *Element
	c.tree.walk(func(e *Element, _ int) bool {
		if (match == nil || match(e)) && e.Contains(local) {
			hit = e
		}
		return true
	})
	return hit
}

// Stats returns render statistics.
func (c *Container) Stats() Stats {
	return c.stats
}

// Render draws the panel and every element into b, offset by Position.
// A failing element does not stop the others; all failures are joined
// into the returned error.
func (c *Container) Render(b recording.Backend) error {
	c.stats.Frames++
	pos := c.GetVec2(Position)
	b.Save()
	b.Translate(pos.X, pos.Y)
	err := c.drawContent(b)
	b.Restore()
	return err
}

// drawContent draws the panel and elements in panel coordinates.
func (c *Container) drawContent(b recording.Backend) error {
	var errs []error
	if err := recording.EmitAll(b, c.panelData().Commands); err != nil {
		errs = append(errs, fmt.Errorf("panel %q: %w", c.name, err))
	}

	c.tree.walk(func(e *Element, _ int) bool {
		if e.stale() {
			c.stats.Rebuilds++
		}
		e.Recompute(c.res)
		c.stats.ElementDraws++
		if err := e.Draw(b); err != nil {
			c.stats.Failures++
			Logger().Warn("ui: element draw failed", "container", c.name, "element", e.name, "err", err)
			errs = append(errs, fmt.Errorf("element %q: %w", e.name, err))
		}
		return true
	})
	return errors.Join(errs...)
}

// panelData returns the panel background, rebuilt when a container
// property changed or the last build used a placeholder. The panel is a
// box at the panel origin.
func (c *Container) panelData() DrawData {
	if !c.panelDirty {
		return c.panel
	}
	vals := c.store.snapshot()
	vals[propPosition] = Vec2Value(geom.Vec2{})
	var err error
	c.panel, err = build(KindBox, "", &vals, c.res)
	if err != nil {
		Logger().Warn("ui: panel drawn with placeholder", "container", c.name, "err", err)
	}
	// A placeholder panel is rebuilt until its resources resolve.
	c.panelDirty = err != nil
	return c.panel
}

// ContainerOption configures a container during creation.
type ContainerOption func(*Container)

// WithResources sets the texture and font provider used by the container's
// elements. Without one, textures draw as placeholders and text is skipped.
func WithResources(res Resources) ContainerOption {
	return func(c *Container) {
		c.res = res
	}
}

// WithBounds sets the panel position and size.
func WithBounds(r geom.Rect) ContainerOption {
	return func(c *Container) {
		c.SetVec2(Position, r.Min)
		c.SetVec2(Size, r.Size)
	}
}
