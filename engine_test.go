package ui

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/ui/geom"
	"github.com/gogpu/ui/recording"
	"github.com/gogpu/ui/recording/backends/raster"
)

func TestNewEngine(t *testing.T) {
	eng := newTestEngine(t, WithViewport(64, 48))

	w, h := eng.Viewport()
	assert.Equal(t, 64, w)
	assert.Equal(t, 48, h)
	assert.Equal(t, []string{"gpu", "raster", "recorder"}, eng.Backends().Names())
	assert.Contains(t, eng.Fonts().Families(), "Go")

	_, err := NewEngine(WithViewport(0, 10))
	assert.Error(t, err)

	_, err = NewEngine(WithFontFiles("/does/not/exist.ttf"))
	assert.Error(t, err)
}

func TestEngineLayers(t *testing.T) {
	eng := newTestEngine(t)

	_, err := eng.NewContainer("hud")
	require.NoError(t, err)
	_, err = eng.NewModal("dialog")
	require.NoError(t, err)

	_, err = eng.NewContainer("hud")
	assert.ErrorIs(t, err, ErrDuplicateName)

	names := func() []string {
		var out []string
		for _, l := range eng.Layers() {
			out = append(out, l.Name())
		}
		return out
	}
	assert.Equal(t, []string{"hud", "dialog"}, names())

	l, err := eng.Layer("dialog")
	require.NoError(t, err)
	assert.IsType(t, &Modal{}, l)

	require.NoError(t, eng.RemoveLayer("hud"))
	assert.Equal(t, []string{"dialog"}, names())
	assert.ErrorIs(t, eng.RemoveLayer("hud"), ErrNotFound)
	_, err = eng.Layer("hud")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEngineFrameRaster(t *testing.T) {
	eng := newTestEngine(t, WithViewport(64, 64))

	c, err := eng.NewContainer("main", WithBounds(geom.R(8, 8, 48, 48)))
	require.NoError(t, err)
	c.SetColor(BackgroundColor, geom.White)

	box := mustElement(t, "box")
	box.SetVec2(Position, geom.V2(8, 8))
	box.SetVec2(Size, geom.V2(16, 16))
	box.SetColor(BackgroundColor, geom.RGB(1, 0, 0))
	_, err = c.Add(box)
	require.NoError(t, err)

	b, err := eng.NewBackend("raster")
	require.NoError(t, err)
	require.NoError(t, eng.Frame(Input{}, b))

	rb := b.(*raster.Backend)
	assert.Equal(t, color.NRGBA{}, rb.At(2, 2), "outside the panel")
	assert.Equal(t, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, rb.At(12, 12), "panel")
	assert.Equal(t, color.NRGBA{R: 255, A: 255}, rb.At(20, 20), "element over panel")
	assert.Equal(t, uint64(1), eng.Frames())
}

func TestEngineFrameModalMatchesContainer(t *testing.T) {
	build := func(eng *Engine, layer func(string, ...ContainerOption) (*Container, error)) {
		c, err := layer("panel", WithBounds(geom.R(4, 4, 40, 30)))
		require.NoError(t, err)
		c.SetColor(BackgroundColor, geom.RGB(0.2, 0.4, 0.6))
		c.SetFloat(CornerRadius, 6)
		e := mustElement(t, "label", WithText("Hi"))
		e.SetVec2(Size, geom.V2(40, 30))
		_, err = c.Add(e)
		require.NoError(t, err)
	}

	plain := newTestEngine(t, WithViewport(48, 40))
	build(plain, plain.NewContainer)

	buffered := newTestEngine(t, WithViewport(48, 40))
	build(buffered, func(name string, opts ...ContainerOption) (*Container, error) {
		m, err := buffered.NewModal(name, opts...)
		if err != nil {
			return nil, err
		}
		return m.Container, nil
	})

	want, err := plain.NewBackend("raster")
	require.NoError(t, err)
	require.NoError(t, plain.Frame(Input{}, want))

	for frame := 0; frame < 2; frame++ {
		got, err := buffered.NewBackend("raster")
		require.NoError(t, err)
		require.NoError(t, buffered.Frame(Input{}, got))
		assert.Equal(t, want.(*raster.Backend).Image().Pix, got.(*raster.Backend).Image().Pix, "frame %d", frame)
	}
}

func TestEnginePressDispatch(t *testing.T) {
	eng := newTestEngine(t)
	var presses []string
	onPress := func(e *Element) { presses = append(presses, e.Name()) }

	bottom, err := eng.NewContainer("bottom", WithBounds(geom.R(0, 0, 100, 100)))
	require.NoError(t, err)
	under := mustElement(t, "under", WithOnPress(onPress))
	_, _ = bottom.Add(under)

	top, err := eng.NewModal("top", WithBounds(geom.R(50, 50, 100, 100)))
	require.NoError(t, err)
	over := mustElement(t, "over", WithOnPress(onPress))
	_, _ = top.Add(over)
	deco := mustElement(t, "deco")
	deco.SetVec2(Position, geom.V2(0, 0))
	_, _ = top.Add(deco)

	rec := recording.NewRecorder()
	frame := func(x, y float32, buttons Buttons) {
		require.NoError(t, eng.Frame(Input{Pointer: geom.V2(x, y), Buttons: buttons}, rec))
	}

	frame(60, 60, ButtonLeft)
	frame(60, 60, ButtonLeft) // held: no new press
	frame(60, 60, 0)
	frame(20, 20, ButtonLeft)
	frame(20, 20, ButtonRight|ButtonLeft)
	frame(20, 20, 0)
	frame(20, 20, ButtonRight)
	frame(500, 500, ButtonLeft)

	assert.Equal(t, []string{"over", "under"}, presses)
}

func TestEngineReplaceLayer(t *testing.T) {
	eng := newTestEngine(t)
	for _, name := range []string{"a", "b", "c"} {
		_, err := eng.NewContainer(name)
		require.NoError(t, err)
	}

	b2, err := NewModal("b")
	require.NoError(t, err)
	require.NoError(t, eng.ReplaceLayer(b2))
	d, err := NewContainer("d")
	require.NoError(t, err)
	require.NoError(t, eng.ReplaceLayer(d))

	layers := eng.Layers()
	require.Len(t, layers, 4)
	assert.Same(t, b2, layers[1])
	assert.Same(t, d, layers[3])

	require.NoError(t, eng.Close())
	assert.ErrorIs(t, eng.ReplaceLayer(d), ErrClosed)
}

func TestEngineOnUpdate(t *testing.T) {
	eng := newTestEngine(t)
	c, err := eng.NewContainer("main")
	require.NoError(t, err)
	label := mustElement(t, "counter")
	_, _ = c.Add(label)

	n := 0
	eng.OnUpdate(func(Input) {
		n++
		label.SetText(string(rune('0' + n)))
	})

	rec := recording.NewRecorder()
	for range 3 {
		require.NoError(t, eng.Frame(Input{}, rec))
	}
	assert.Equal(t, "3", label.Text())
	assert.Equal(t, uint64(3), label.Generation())
}

func TestEngineClose(t *testing.T) {
	eng, err := NewEngine()
	require.NoError(t, err)
	require.NoError(t, eng.Close())
	require.NoError(t, eng.Close())

	assert.ErrorIs(t, eng.Frame(Input{}, recording.NewRecorder()), ErrClosed)
	_, err = eng.NewContainer("late")
	assert.ErrorIs(t, err, ErrClosed)
	_, err = eng.Face("Go", 12)
	assert.Error(t, err)
}
