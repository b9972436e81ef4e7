package geom

import "github.com/chewxy/math32"

// Vec2 is a 2D vector or point in pixels. Y grows downward.
type Vec2 struct {
	X, Y float32
}

// V2 is shorthand for Vec2{X: x, Y: y}.
func V2(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Mul returns v scaled by s.
func (v Vec2) Mul(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Len returns the length of v.
func (v Vec2) Len() float32 {
	return math32.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Perp returns v rotated by 90 degrees.
func (v Vec2) Perp() Vec2 {
	return Vec2{X: -v.Y, Y: v.X}
}

// Cross returns the z component of the cross product of v and o.
func (v Vec2) Cross(o Vec2) float32 {
	return v.X*o.Y - v.Y*o.X
}

// Rect is an axis-aligned rectangle given by its top-left corner and size.
type Rect struct {
	Min  Vec2
	Size Vec2
}

// R creates a rectangle from position and size components.
func R(x, y, w, h float32) Rect {
	return Rect{Min: Vec2{X: x, Y: y}, Size: Vec2{X: w, Y: h}}
}

// Max returns the bottom-right corner.
func (r Rect) Max() Vec2 {
	return r.Min.Add(r.Size)
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Size.X <= 0 || r.Size.Y <= 0
}

// Contains reports whether p lies inside r. The right and bottom edges are exclusive.
func (r Rect) Contains(p Vec2) bool {
	m := r.Max()
	return p.X >= r.Min.X && p.X < m.X && p.Y >= r.Min.Y && p.Y < m.Y
}

// Inset shrinks r by d on every side. The result never has negative size.
func (r Rect) Inset(d float32) Rect {
	return Rect{
		Min:  Vec2{X: r.Min.X + d, Y: r.Min.Y + d},
		Size: Vec2{X: math32.Max(r.Size.X-2*d, 0), Y: math32.Max(r.Size.Y-2*d, 0)},
	}
}

// Translate returns r moved by d.
func (r Rect) Translate(d Vec2) Rect {
	return Rect{Min: r.Min.Add(d), Size: r.Size}
}
