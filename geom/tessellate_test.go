package geom

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
)

func triangleArea(tris []Vec2) float32 {
	var sum float32
	for i := 0; i+2 < len(tris); i += 3 {
		sum += math32.Abs(SignedArea(tris[i], tris[i+1], tris[i+2])) / 2
	}
	return sum
}

func TestCornerSegments(t *testing.T) {
	tests := []struct {
		radius float32
		want   int
	}{
		{-1, 0},
		{0, 0},
		{0.5, 1},
		{4, 1},
		{4.1, 2},
		{12, 3},
		{1000, MaxCornerSegments},
	}
	for _, tt := range tests {
		if got := CornerSegments(tt.radius); got != tt.want {
			t.Errorf("CornerSegments(%v) = %d, want %d", tt.radius, got, tt.want)
		}
	}
}

func TestClampRadius(t *testing.T) {
	r := R(0, 0, 40, 10)
	if got := ClampRadius(r, 20); got != 5 {
		t.Errorf("ClampRadius = %v, want 5", got)
	}
	if got := ClampRadius(r, -3); got != 0 {
		t.Errorf("ClampRadius(negative) = %v, want 0", got)
	}
}

func TestRoundedRectArea(t *testing.T) {
	r := R(10, 20, 50, 30)

	square := RoundedRect(r, 0)
	assert.Len(t, square, 12)
	assert.InDelta(t, 1500, triangleArea(square), 1e-3)

	rounded := RoundedRect(r, 8)
	want := 1500 - (4-math32.Pi)*64
	assert.InDelta(t, want, triangleArea(rounded), 3)
	assert.Less(t, triangleArea(rounded), float32(1500))
}

func TestRoundedRectEmpty(t *testing.T) {
	assert.Nil(t, RoundedRect(R(0, 0, 0, 10), 4))
	assert.Nil(t, Border(R(0, 0, 10, 10), 0, 0))
}

func TestRoundedContourPairs(t *testing.T) {
	outer := RoundedContour(R(0, 0, 100, 100), 10, 3)
	inner := RoundedContour(R(5, 5, 90, 90), 0, 3)
	assert.Len(t, outer, 16)
	assert.Len(t, inner, 16)
	assert.Equal(t, V2(0, 10), roundVec(outer[0]))
	assert.Equal(t, V2(10, 0), roundVec(outer[3]))
}

func TestBorderArea(t *testing.T) {
	r := R(0, 0, 40, 20)
	got := triangleArea(Border(r, 0, 2))
	assert.InDelta(t, 40*20-36*16, got, 1e-3)

	// A border wider than half the rect covers it entirely.
	full := triangleArea(Border(r, 0, 15))
	assert.InDelta(t, 800, full, 1e-3)
}

func TestLine(t *testing.T) {
	tris := Line(V2(0, 0), V2(10, 0), 2)
	assert.Len(t, tris, 6)
	assert.InDelta(t, 20, triangleArea(tris), 1e-4)
	assert.Nil(t, Line(V2(1, 1), V2(1, 1), 2))
	assert.Nil(t, Line(V2(0, 0), V2(1, 1), 0))
}

func TestQuad(t *testing.T) {
	assert.InDelta(t, 12, triangleArea(Quad(R(1, 1, 3, 4))), 1e-5)
}

func TestRectContains(t *testing.T) {
	r := R(10, 10, 5, 5)
	assert.True(t, r.Contains(V2(10, 10)))
	assert.True(t, r.Contains(V2(14.9, 14.9)))
	assert.False(t, r.Contains(V2(15, 12)))
	assert.False(t, r.Contains(V2(9, 12)))
}

func TestColorNRGBA(t *testing.T) {
	c := RGBA(1, 0.5, 0, 2).NRGBA()
	assert.Equal(t, uint8(255), c.R)
	assert.Equal(t, uint8(128), c.G)
	assert.Equal(t, uint8(0), c.B)
	assert.Equal(t, uint8(255), c.A)
	assert.Equal(t, RGB(1, 0, 0), FromColor(RGB(1, 0, 0).NRGBA()))
}

func roundVec(v Vec2) Vec2 {
	return V2(float32(int(v.X+0.5)), float32(int(v.Y+0.5)))
}
