package geom

import "github.com/chewxy/math32"

// MaxCornerSegments bounds the arc subdivision of one rounded corner.
const MaxCornerSegments = 16

// CornerSegments returns how many segments approximate a corner arc of the
// given radius. A non-positive radius yields zero: the corner is a single point.
func CornerSegments(radius float32) int {
	if radius <= 0 {
		return 0
	}
	n := int(math32.Ceil(radius / 4))
	if n < 1 {
		n = 1
	}
	if n > MaxCornerSegments {
		n = MaxCornerSegments
	}
	return n
}

// ClampRadius limits radius to half of the shorter side of r.
func ClampRadius(r Rect, radius float32) float32 {
	limit := math32.Min(r.Size.X, r.Size.Y) / 2
	return math32.Max(0, math32.Min(radius, limit))
}

// RoundedContour returns the outline of a rounded rectangle, clockwise on
// screen, starting at the top-left corner arc. Each corner contributes
// segments+1 points, so contours built with the same segment count pair up
// point by point.
func RoundedContour(r Rect, radius float32, segments int) []Vec2 {
	radius = ClampRadius(r, radius)
	br := r.Max()
	centers := [4]Vec2{
		{X: r.Min.X + radius, Y: r.Min.Y + radius},
		{X: br.X - radius, Y: r.Min.Y + radius},
		{X: br.X - radius, Y: br.Y - radius},
		{X: r.Min.X + radius, Y: br.Y - radius},
	}
	pts := make([]Vec2, 0, 4*(segments+1))
	for corner, c := range centers {
		start := math32.Pi + float32(corner)*math32.Pi/2
		for i := 0; i <= segments; i++ {
			a := start
			if segments > 0 {
				a += float32(i) / float32(segments) * math32.Pi / 2
			}
			pts = append(pts, Vec2{X: c.X + radius*math32.Cos(a), Y: c.Y + radius*math32.Sin(a)})
		}
	}
	return pts
}

// Fan triangulates a convex contour around its centroid.
// The result is a triangle list: every three vertices form one triangle.
func Fan(contour []Vec2) []Vec2 {
	if len(contour) < 3 {
		return nil
	}
	var c Vec2
	for _, p := range contour {
		c = c.Add(p)
	}
	c = c.Mul(1 / float32(len(contour)))

	tris := make([]Vec2, 0, 3*len(contour))
	for i, p := range contour {
		q := contour[(i+1)%len(contour)]
		tris = append(tris, c, p, q)
	}
	return tris
}

// Ring triangulates the band between two contours of equal length.
// It returns nil when the lengths differ.
func Ring(outer, inner []Vec2) []Vec2 {
	if len(outer) != len(inner) || len(outer) < 3 {
		return nil
	}
	n := len(outer)
	tris := make([]Vec2, 0, 6*n)
	for i := range outer {
		j := (i + 1) % n
		tris = append(tris,
			outer[i], outer[j], inner[j],
			outer[i], inner[j], inner[i],
		)
	}
	return tris
}

// RoundedRect returns the filled triangles of a rounded rectangle.
func RoundedRect(r Rect, radius float32) []Vec2 {
	if r.Empty() {
		return nil
	}
	radius = ClampRadius(r, radius)
	return Fan(RoundedContour(r, radius, CornerSegments(radius)))
}

// Border returns the triangles of a border of the given width drawn inside r.
// The inner edge follows the outer corners with the radius reduced by width.
func Border(r Rect, radius, width float32) []Vec2 {
	if r.Empty() || width <= 0 {
		return nil
	}
	radius = ClampRadius(r, radius)
	segs := CornerSegments(radius)
	inner := r.Inset(width)
	outer := RoundedContour(r, radius, segs)
	if inner.Empty() {
		return Fan(outer)
	}
	innerRadius := math32.Max(radius-width, 0)
	return Ring(outer, RoundedContour(inner, innerRadius, segs))
}

// Line returns two triangles covering the segment from a to b with the given thickness.
func Line(a, b Vec2, thickness float32) []Vec2 {
	d := b.Sub(a)
	l := d.Len()
	if l == 0 || thickness <= 0 {
		return nil
	}
	n := d.Perp().Mul(thickness / 2 / l)
	p0, p1 := a.Add(n), b.Add(n)
	p2, p3 := b.Sub(n), a.Sub(n)
	return []Vec2{p0, p1, p2, p0, p2, p3}
}

// Quad returns two triangles covering r.
func Quad(r Rect) []Vec2 {
	if r.Empty() {
		return nil
	}
	m := r.Max()
	tl, tr := r.Min, Vec2{X: m.X, Y: r.Min.Y}
	br, bl := m, Vec2{X: r.Min.X, Y: m.Y}
	return []Vec2{tl, tr, br, tl, br, bl}
}

// SignedArea returns twice the signed area of triangle abc.
// It is positive for clockwise triangles in screen space.
func SignedArea(a, b, c Vec2) float32 {
	return b.Sub(a).Cross(c.Sub(a))
}
