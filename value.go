package ui

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/gogpu/ui/geom"
)

// Value is a property value: exactly one of float, color, vec2 or string,
// selected by Kind. Values are comparable with ==.
type Value struct {
	kind Kind
	f    float32
	c    geom.Color
	v    geom.Vec2
	s    string
}

// FloatValue returns a float Value.
func FloatValue(f float32) Value { return Value{kind: KindFloat, f: f} }

// ColorValue returns a color Value.
func ColorValue(c geom.Color) Value { return Value{kind: KindColor, c: c} }

// Vec2Value returns a vec2 Value.
func Vec2Value(v geom.Vec2) Value { return Value{kind: KindVec2, v: v} }

// StringValue returns a string Value.
func StringValue(s string) Value { return Value{kind: KindString, s: s} }

// Kind returns the kind of v. The zero Value has KindInvalid.
func (v Value) Kind() Kind { return v.kind }

// Float returns the float held by v, or 0 for other kinds.
func (v Value) Float() float32 { return v.f }

// Color returns the color held by v, or the zero color for other kinds.
func (v Value) Color() geom.Color { return v.c }

// Vec2 returns the vector held by v, or the zero vector for other kinds.
func (v Value) Vec2() geom.Vec2 { return v.v }

// Str returns the string held by v, or "" for other kinds.
func (v Value) Str() string { return v.s }

// finite reports whether every number held by v is neither NaN nor
// infinite.
func (v Value) finite() bool {
	var nums []float32
	switch v.kind {
	case KindFloat:
		nums = []float32{v.f}
	case KindColor:
		nums = []float32{v.c.R, v.c.G, v.c.B, v.c.A}
	case KindVec2:
		nums = []float32{v.v.X, v.v.Y}
	}
	for _, n := range nums {
		if math32.IsNaN(n) || math32.IsInf(n, 0) {
			return false
		}
	}
	return true
}

func (v Value) String() string {
	switch v.kind {
	case KindFloat:
		return fmt.Sprintf("%g", v.f)
	case KindColor:
		return fmt.Sprintf("rgba(%g, %g, %g, %g)", v.c.R, v.c.G, v.c.B, v.c.A)
	case KindVec2:
		return fmt.Sprintf("(%g, %g)", v.v.X, v.v.Y)
	case KindString:
		return fmt.Sprintf("%q", v.s)
	default:
		return "<invalid>"
	}
}
