package ui

import "github.com/gogpu/ui/geom"

// ChangeFunc is called after a property is stored.
type ChangeFunc func(p Property, v Value)

// Store holds one value per property. A Store has a single change
// subscriber, invoked synchronously and exactly once per Set.
//
// A new Store is empty; Initialize fills it with defaults. Reads and writes
// before Initialize fail with ErrUnknownProperty.
//
// Store is not safe for concurrent use.
type Store struct {
	values      [numProperties]Value
	initialized bool
	onChange    ChangeFunc
}

// NewStore creates an uninitialized store reporting changes to onChange,
// which may be nil.
func NewStore(onChange ChangeFunc) *Store {
	return &Store{onChange: onChange}
}

// Initialize sets every property to its default. It may be called again to
// reset the store; no change callbacks fire.
func (s *Store) Initialize() {
	for p := range s.values {
		s.values[p] = propertyTable[p].def
	}
	s.initialized = true
}

// Initialized reports whether Initialize has been called.
func (s *Store) Initialized() bool {
	return s.initialized
}

// OnChange replaces the change subscriber.
func (s *Store) OnChange(fn ChangeFunc) {
	s.onChange = fn
}

// Get returns the current value of p.
func (s *Store) Get(p Property) (Value, error) {
	if !s.initialized || !p.Valid() {
		return Value{}, &PropertyError{Op: "get", Property: p, Err: ErrUnknownProperty}
	}
	return s.values[p], nil
}

// Set stores v under p and notifies the subscriber. v must have p's kind
// and hold only finite numbers; a rejected value leaves the store unchanged.
func (s *Store) Set(p Property, v Value) error {
	if !s.initialized || !p.Valid() {
		return &PropertyError{Op: "set", Property: p, Err: ErrUnknownProperty}
	}
	if v.Kind() != p.Kind() {
		return &PropertyError{Op: "set", Property: p, Err: ErrTypeMismatch}
	}
	if !v.finite() {
		return &PropertyError{Op: "set", Property: p, Err: ErrNonFinite}
	}
	s.values[p] = v
	if s.onChange != nil {
		s.onChange(p, v)
	}
	return nil
}

// SetFloat sets a float property.
func (s *Store) SetFloat(p FloatProperty, f float32) error {
	return s.Set(p.Property(), FloatValue(f))
}

// SetColor sets a color property.
func (s *Store) SetColor(p ColorProperty, c geom.Color) error {
	return s.Set(p.Property(), ColorValue(c))
}

// SetVec2 sets a vector property.
func (s *Store) SetVec2(p Vec2Property, v geom.Vec2) error {
	return s.Set(p.Property(), Vec2Value(v))
}

// SetString sets a string property.
func (s *Store) SetString(p StringProperty, str string) error {
	return s.Set(p.Property(), StringValue(str))
}

// GetFloat returns a float property.
func (s *Store) GetFloat(p FloatProperty) (float32, error) {
	v, err := s.Get(p.Property())
	return v.Float(), err
}

// GetColor returns a color property.
func (s *Store) GetColor(p ColorProperty) (geom.Color, error) {
	v, err := s.Get(p.Property())
	return v.Color(), err
}

// GetVec2 returns a vector property.
func (s *Store) GetVec2(p Vec2Property) (geom.Vec2, error) {
	v, err := s.Get(p.Property())
	return v.Vec2(), err
}

// GetString returns a string property.
func (s *Store) GetString(p StringProperty) (string, error) {
	v, err := s.Get(p.Property())
	return v.Str(), err
}

// snapshot returns a copy of every value.
func (s *Store) snapshot() [numProperties]Value {
	return s.values
}

// Properties gives its owner typed property accessors over an initialized
// Store. Element and Container embed it.
type Properties struct {
	store *Store
}

func newProperties(onChange ChangeFunc) Properties {
	s := NewStore(onChange)
	s.Initialize()
	return Properties{store: s}
}

// Set sets p dynamically; it fails with ErrTypeMismatch, ErrNonFinite or
// ErrUnknownProperty.
func (p *Properties) Set(prop Property, v Value) error {
	return p.store.Set(prop, v)
}

// Get returns the value of prop, or the zero Value for unknown tags.
func (p *Properties) Get(prop Property) Value {
	v, _ := p.store.Get(prop)
	return v
}

// SetFloat sets a float property.
func (p *Properties) SetFloat(prop FloatProperty, f float32) error {
	return p.store.SetFloat(prop, f)
}

// SetColor sets a color property.
func (p *Properties) SetColor(prop ColorProperty, c geom.Color) error {
	return p.store.SetColor(prop, c)
}

// SetVec2 sets a vector property.
func (p *Properties) SetVec2(prop Vec2Property, v geom.Vec2) error {
	return p.store.SetVec2(prop, v)
}

// SetString sets a string property.
func (p *Properties) SetString(prop StringProperty, s string) error {
	return p.store.SetString(prop, s)
}

// GetFloat returns a float property.
func (p *Properties) GetFloat(prop FloatProperty) float32 {
	return p.Get(prop.Property()).Float()
}

// GetColor returns a color property.
func (p *Properties) GetColor(prop ColorProperty) geom.Color {
	return p.Get(prop.Property()).Color()
}

// GetVec2 returns a vector property.
func (p *Properties) GetVec2(prop Vec2Property) geom.Vec2 {
	return p.Get(prop.Property()).Vec2()
}

// GetString returns a string property.
func (p *Properties) GetString(prop StringProperty) string {
	return p.Get(prop.Property()).Str()
}
