package ui

import (
	"fmt"
	"strings"

	"github.com/gogpu/ui/geom"
)

// Property identifies a visual attribute of an element or container.
// The exported names below are typed handles; Property is the untyped tag
// used by the dynamic Get/Set API and change callbacks.
type Property uint8

const (
	propCornerRadius Property = iota
	propBorderWidth
	propBackgroundColor
	propBorderColor
	propPosition
	propSize
	propBackgroundTexture
	propFontSize
	propFontFamily
	propFontColor
	propFontWidth
	propFontBlur
	propLineWidth

	numProperties
)

// Kind is the value type a property holds.
type Kind uint8

// Value kinds.
const (
	KindInvalid Kind = iota
	KindFloat
	KindColor
	KindVec2
	KindString
)

func (k Kind) String() string {
	switch k {
	case KindFloat:
		return "float"
	case KindColor:
		return "color"
	case KindVec2:
		return "vec2"
	case KindString:
		return "string"
	default:
		return "invalid"
	}
}

// FloatProperty is a property holding a float32.
type FloatProperty Property

// ColorProperty is a property holding a geom.Color.
type ColorProperty Property

// Vec2Property is a property holding a geom.Vec2.
type Vec2Property Property

// StringProperty is a property holding a string.
type StringProperty Property

// Property returns the untyped tag.
func (p FloatProperty) Property() Property { return Property(p) }

// Property returns the untyped tag.
func (p ColorProperty) Property() Property { return Property(p) }

// Property returns the untyped tag.
func (p Vec2Property) Property() Property { return Property(p) }

// Property returns the untyped tag.
func (p StringProperty) Property() Property { return Property(p) }

func (p FloatProperty) String() string  { return Property(p).String() }
func (p ColorProperty) String() string  { return Property(p).String() }
func (p Vec2Property) String() string   { return Property(p).String() }
func (p StringProperty) String() string { return Property(p).String() }

// Typed property handles.
const (
	CornerRadius      = FloatProperty(propCornerRadius)
	BorderWidth       = FloatProperty(propBorderWidth)
	BackgroundColor   = ColorProperty(propBackgroundColor)
	BorderColor       = ColorProperty(propBorderColor)
	Position          = Vec2Property(propPosition)
	Size              = Vec2Property(propSize)
	BackgroundTexture = StringProperty(propBackgroundTexture)
	FontSize          = FloatProperty(propFontSize)
	FontFamily        = StringProperty(propFontFamily)
	FontColor         = ColorProperty(propFontColor)
	FontWidth         = FloatProperty(propFontWidth)
	FontBlur          = FloatProperty(propFontBlur)
	LineWidth         = FloatProperty(propLineWidth)
)

type propertyInfo struct {
	name string
	def  Value
}

var propertyTable = [numProperties]propertyInfo{
	propCornerRadius:      {"corner_radius", FloatValue(0)},
	propBorderWidth:       {"border_width", FloatValue(0)},
	propBackgroundColor:   {"background_color", ColorValue(geom.Transparent)},
	propBorderColor:       {"border_color", ColorValue(geom.Black)},
	propPosition:          {"position", Vec2Value(geom.V2(0, 0))},
	propSize:              {"size", Vec2Value(geom.V2(100, 100))},
	propBackgroundTexture: {"background_texture", StringValue("")},
	propFontSize:          {"font_size", FloatValue(16)},
	propFontFamily:        {"font_family", StringValue("Go")},
	propFontColor:         {"font_color", ColorValue(geom.Black)},
	propFontWidth:         {"font_width", FloatValue(0.5)},
	propFontBlur:          {"font_blur", FloatValue(0.1)},
	propLineWidth:         {"line_width", FloatValue(1)},
}

// Valid reports whether p is a known property.
func (p Property) Valid() bool {
	return p < numProperties
}

// String returns the snake_case name used in configuration files.
func (p Property) String() string {
	if !p.Valid() {
		return fmt.Sprintf("Property(%d)", uint8(p))
	}
	return propertyTable[p].name
}

// Kind returns the value kind of p, or KindInvalid for unknown tags.
func (p Property) Kind() Kind {
	if !p.Valid() {
		return KindInvalid
	}
	return propertyTable[p].def.Kind()
}

// Default returns the static default of p. Unknown tags yield the zero Value.
func (p Property) Default() Value {
	if !p.Valid() {
		return Value{}
	}
	return propertyTable[p].def
}

// ParseProperty resolves a snake_case property name. Matching ignores case
// and accepts '-' for '_'.
func ParseProperty(name string) (Property, error) {
	n := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	for p := Property(0); p < numProperties; p++ {
		if propertyTable[p].name == n {
			return p, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownProperty, name)
}

// AllProperties returns every property tag in declaration order.
func AllProperties() []Property {
	out := make([]Property, numProperties)
	for i := range out {
		out[i] = Property(i)
	}
	return out
}
