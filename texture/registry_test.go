package texture

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/fstest"

	"github.com/gogpu/gputypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int, c color.Color) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func testFS(t *testing.T) fstest.MapFS {
	return fstest.MapFS{
		"icons/ok.png":  {Data: pngBytes(t, 4, 2, color.NRGBA{R: 255, A: 255})},
		"icons/bad.png": {Data: []byte("garbage")},
	}
}

func TestRegistryLoad(t *testing.T) {
	r := NewRegistry(testFS(t))

	tex, err := r.Texture("icons/ok.png")
	require.NoError(t, err)
	w, h := tex.Size()
	assert.Equal(t, 4, w)
	assert.Equal(t, 2, h)
	assert.Equal(t, "icons/ok.png", tex.Path())
	assert.Equal(t, color.RGBA{R: 255, A: 255}, tex.Image().RGBAAt(1, 1))
	assert.Equal(t, gputypes.TextureFormatRGBA8Unorm, tex.Format())

	again, err := r.Texture("icons/ok.png")
	require.NoError(t, err)
	assert.Same(t, tex, again)
	assert.Equal(t, uint64(1), r.Stats().Hits)
}

func TestRegistryErrors(t *testing.T) {
	r := NewRegistry(testFS(t))

	_, err := r.Texture("icons/missing.png")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = r.Texture("icons/bad.png")
	assert.ErrorIs(t, err, ErrDecode)

	_, err = NewRegistry(nil).Texture("icons/ok.png")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRegistryAddAndRemove(t *testing.T) {
	r := NewRegistry(nil)
	img := image.NewRGBA(image.Rect(10, 10, 13, 13))

	added, err := r.Add("generated", img)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 3, 3), added.Image().Bounds(), "bounds are rebased to the origin")

	got, err := r.Texture("generated")
	require.NoError(t, err)
	assert.Same(t, added, got)
	assert.Equal(t, []string{"generated"}, r.Paths())

	r.Remove("generated")
	_, err = r.Texture("generated")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRegistryCapacity(t *testing.T) {
	fsys := fstest.MapFS{
		"a.png": {Data: pngBytes(t, 1, 1, color.Black)},
		"b.png": {Data: pngBytes(t, 1, 1, color.White)},
	}
	r := NewRegistry(fsys, WithCapacity(1))
	_, err := r.Texture("a.png")
	require.NoError(t, err)
	_, err = r.Texture("b.png")
	require.NoError(t, err)

	assert.Equal(t, []string{"b.png"}, r.Paths())
	assert.Equal(t, uint64(1), r.Stats().Evictions)
}

func TestRegistryClose(t *testing.T) {
	r := NewRegistry(testFS(t))
	_, err := r.Texture("icons/ok.png")
	require.NoError(t, err)

	require.NoError(t, r.Close())
	_, err = r.Texture("icons/ok.png")
	assert.ErrorIs(t, err, ErrClosed)
	_, err = r.Add("x", image.NewRGBA(image.Rect(0, 0, 1, 1)))
	assert.ErrorIs(t, err, ErrClosed)
}
