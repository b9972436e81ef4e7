package ui

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/ui/geom"
)

type change struct {
	p Property
	v Value
}

func TestStoreScenario(t *testing.T) {
	var changes []change
	s := NewStore(func(p Property, v Value) {
		changes = append(changes, change{p, v})
	})
	s.Initialize()

	red := geom.RGBA(1, 0, 0, 1)
	require.NoError(t, s.SetColor(BackgroundColor, red))
	require.NoError(t, s.SetVec2(Size, geom.V2(50, 50)))

	bg, err := s.GetColor(BackgroundColor)
	require.NoError(t, err)
	assert.Equal(t, red, bg)

	size, err := s.GetVec2(Size)
	require.NoError(t, err)
	assert.Equal(t, geom.V2(50, 50), size)

	assert.Equal(t, []change{
		{BackgroundColor.Property(), ColorValue(red)},
		{Size.Property(), Vec2Value(geom.V2(50, 50))},
	}, changes)
}

func TestStoreDefaults(t *testing.T) {
	s := NewStore(nil)
	s.Initialize()

	tests := []struct {
		p    Property
		want Value
	}{
		{CornerRadius.Property(), FloatValue(0)},
		{BorderWidth.Property(), FloatValue(0)},
		{BackgroundColor.Property(), ColorValue(geom.RGBA(0, 0, 0, 0))},
		{BorderColor.Property(), ColorValue(geom.RGBA(0, 0, 0, 1))},
		{Position.Property(), Vec2Value(geom.V2(0, 0))},
		{Size.Property(), Vec2Value(geom.V2(100, 100))},
		{BackgroundTexture.Property(), StringValue("")},
		{FontSize.Property(), FloatValue(16)},
		{FontFamily.Property(), StringValue("Go")},
		{FontColor.Property(), ColorValue(geom.RGBA(0, 0, 0, 1))},
		{FontWidth.Property(), FloatValue(0.5)},
		{FontBlur.Property(), FloatValue(0.1)},
		{LineWidth.Property(), FloatValue(1)},
	}
	require.Len(t, tests, len(AllProperties()))
	for _, tt := range tests {
		t.Run(tt.p.String(), func(t *testing.T) {
			got, err := s.Get(tt.p)
			require.NoError(t, err)
			if got != tt.want {
				t.Errorf("Get(%s) = %v, want %v", tt.p, got, tt.want)
			}
			if tt.p.Default() != tt.want {
				t.Errorf("%s.Default() = %v, want %v", tt.p, tt.p.Default(), tt.want)
			}
		})
	}
}

func TestStoreBeforeInitialize(t *testing.T) {
	s := NewStore(func(Property, Value) {
		t.Error("callback fired for a rejected Set")
	})

	_, err := s.Get(FontSize.Property())
	assert.ErrorIs(t, err, ErrUnknownProperty)

	err = s.SetFloat(FontSize, 12)
	assert.ErrorIs(t, err, ErrUnknownProperty)

	var pe *PropertyError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "set", pe.Op)
	assert.Equal(t, FontSize.Property(), pe.Property)
}

func TestStoreUnknownTag(t *testing.T) {
	s := NewStore(nil)
	s.Initialize()

	_, err := s.Get(Property(200))
	assert.ErrorIs(t, err, ErrUnknownProperty)
	assert.ErrorIs(t, s.Set(Property(200), FloatValue(1)), ErrUnknownProperty)
	assert.Equal(t, "Property(200)", Property(200).String())
	assert.Equal(t, KindInvalid, Property(200).Kind())
}

func TestStoreTypeMismatch(t *testing.T) {
	fired := 0
	s := NewStore(func(Property, Value) { fired++ })
	s.Initialize()

	err := s.Set(Size.Property(), FloatValue(3))
	assert.ErrorIs(t, err, ErrTypeMismatch)
	assert.Contains(t, err.Error(), "size")
	assert.ErrorIs(t, s.Set(FontFamily.Property(), Value{}), ErrTypeMismatch)
	assert.Zero(t, fired)

	v, err := s.Get(Size.Property())
	require.NoError(t, err)
	assert.Equal(t, Size.Property().Default(), v, "rejected Set leaves the value untouched")
}

func TestStoreRejectsNonFinite(t *testing.T) {
	fired := 0
	s := NewStore(func(Property, Value) { fired++ })
	s.Initialize()

	nan := math32.NaN()
	inf := math32.Inf(1)
	tests := []struct {
		p Property
		v Value
	}{
		{CornerRadius.Property(), FloatValue(nan)},
		{FontSize.Property(), FloatValue(-inf)},
		{Size.Property(), Vec2Value(geom.V2(nan, 10))},
		{Position.Property(), Vec2Value(geom.V2(0, inf))},
		{FontColor.Property(), ColorValue(geom.RGBA(1, 1, 1, nan))},
	}
	for _, tt := range tests {
		before, err := s.Get(tt.p)
		require.NoError(t, err)
		err = s.Set(tt.p, tt.v)
		if !errors.Is(err, ErrNonFinite) {
			t.Errorf("Set(%s, %s) = %v, want ErrNonFinite", tt.p, tt.v, err)
		}
		after, _ := s.Get(tt.p)
		assert.Equal(t, before, after, "%s unchanged", tt.p)
	}
	assert.Zero(t, fired)
}

func TestPropertiesTypedSettersReportErrors(t *testing.T) {
	e := mustElement(t, "e")
	e.SetVec2(Size, geom.V2(5, 6))

	assert.ErrorIs(t, e.SetFloat(FloatProperty(Size), 3), ErrTypeMismatch)
	assert.ErrorIs(t, e.SetString(StringProperty(BackgroundColor), "red"), ErrTypeMismatch)
	assert.ErrorIs(t, e.SetVec2(Size, geom.V2(math32.NaN(), 1)), ErrNonFinite)
	assert.Equal(t, geom.V2(5, 6), e.GetVec2(Size))

	assert.NoError(t, e.SetColor(BorderColor, geom.Black))
	assert.Equal(t, geom.Black, e.GetColor(BorderColor))
}

func TestStoreInitializeIdempotent(t *testing.T) {
	fired := 0
	s := NewStore(func(Property, Value) { fired++ })
	s.Initialize()
	require.NoError(t, s.SetFloat(CornerRadius, 9))
	fired = 0

	s.Initialize()
	s.Initialize()
	assert.Zero(t, fired, "Initialize fires no callbacks")
	r, err := s.GetFloat(CornerRadius)
	require.NoError(t, err)
	assert.Equal(t, float32(0), r)
}

func TestStoreCallbackFiresOncePerSet(t *testing.T) {
	fired := 0
	s := NewStore(nil)
	s.OnChange(func(Property, Value) { fired++ })
	s.Initialize()

	require.NoError(t, s.SetString(FontFamily, "Go Mono"))
	require.NoError(t, s.SetString(FontFamily, "Go Mono"))
	assert.Equal(t, 2, fired, "setting an equal value still notifies")
}

// TestStoreLastWriteWins writes random values and checks that every tag
// holds the last value written to it and nothing else moved.
func TestStoreLastWriteWins(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	for trial := 0; trial < 100; trial++ {
		s := NewStore(nil)
		s.Initialize()
		want := make(map[Property]Value)
		for _, p := range AllProperties() {
			want[p] = p.Default()
		}

		for step := 0; step < 50; step++ {
			p := Property(rng.IntN(int(numProperties)))
			v := randomValue(rng, p)
			require.NoError(t, s.Set(p, v))
			want[p] = v

			for q, w := range want {
				got, err := s.Get(q)
				require.NoError(t, err)
				if got != w {
					t.Fatalf("trial %d step %d: Get(%s) = %v, want %v", trial, step, q, got, w)
				}
			}
		}
	}
}

func TestParseProperty(t *testing.T) {
	tests := []struct {
		name string
		want Property
	}{
		{"background_color", BackgroundColor.Property()},
		{"Background-Color", BackgroundColor.Property()},
		{" size ", Size.Property()},
		{"line_width", LineWidth.Property()},
	}
	for _, tt := range tests {
		got, err := ParseProperty(tt.name)
		require.NoError(t, err, tt.name)
		if got != tt.want {
			t.Errorf("ParseProperty(%q) = %s, want %s", tt.name, got, tt.want)
		}
	}

	_, err := ParseProperty("opacity")
	assert.ErrorIs(t, err, ErrUnknownProperty)

	for _, p := range AllProperties() {
		got, err := ParseProperty(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}
}

func TestValueString(t *testing.T) {
	assert.Equal(t, "1.5", FloatValue(1.5).String())
	assert.Equal(t, "(1, 2)", Vec2Value(geom.V2(1, 2)).String())
	assert.Equal(t, `"Go"`, StringValue("Go").String())
	assert.Equal(t, "rgba(1, 0, 0, 1)", ColorValue(geom.RGB(1, 0, 0)).String())
	assert.Equal(t, "<invalid>", Value{}.String())
}

var (
	texturePool = []string{"", "tex.png", "missing.png"}
	familyPool  = []string{"Go", "Go Mono", "go", "Nope"}
	fontSizes   = []float32{0, 12, 16, 24}
)

// randomValue returns a random value of p's kind. Strings and font sizes
// come from small pools so lookups hit cached faces and textures.
func randomValue(rng *rand.Rand, p Property) Value {
	switch p {
	case BackgroundTexture.Property():
		return StringValue(texturePool[rng.IntN(len(texturePool))])
	case FontFamily.Property():
		return StringValue(familyPool[rng.IntN(len(familyPool))])
	case FontSize.Property():
		return FloatValue(fontSizes[rng.IntN(len(fontSizes))])
	}
	switch p.Kind() {
	case KindFloat:
		return FloatValue(float32(rng.IntN(40)) / 2)
	case KindColor:
		return ColorValue(geom.RGBA(rng.Float32(), rng.Float32(), rng.Float32(), float32(rng.IntN(3))/2))
	case KindVec2:
		return Vec2Value(geom.V2(float32(rng.IntN(200)), float32(rng.IntN(200))))
	default:
		return StringValue("")
	}
}
