package text

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/gobold"
)

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	r, err := NewRegistry()
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })
	return r
}

func TestNewRegistryDefaults(t *testing.T) {
	r := newTestRegistry(t)
	assert.Equal(t, []string{DefaultFamily, MonoFamily}, r.Families())

	src, ok := r.Source("go mono")
	require.True(t, ok, "lookup is case-insensitive")
	assert.Equal(t, MonoFamily, src.Family())
}

func TestRegistryWithoutDefaults(t *testing.T) {
	r, err := NewRegistry(WithoutDefaultFonts())
	require.NoError(t, err)
	assert.Empty(t, r.Families())

	_, err = r.Face(DefaultFamily, 12)
	assert.ErrorIs(t, err, ErrFamilyNotFound)
}

func TestRegistryFaceCached(t *testing.T) {
	r := newTestRegistry(t)

	a, err := r.Face(DefaultFamily, 16)
	require.NoError(t, err)
	b, err := r.Face("go", 16)
	require.NoError(t, err)
	assert.Same(t, a, b)

	c, err := r.Face(DefaultFamily, 20)
	require.NoError(t, err)
	assert.NotSame(t, a, c)
	assert.Equal(t, 20.0, c.Size())
	assert.Equal(t, DefaultFamily, c.Family())
}

func TestRegistryFaceErrors(t *testing.T) {
	r := newTestRegistry(t)

	_, err := r.Face("Nope", 12)
	assert.ErrorIs(t, err, ErrFamilyNotFound)

	_, err = r.Face(DefaultFamily, 0)
	assert.ErrorIs(t, err, ErrInvalidSize)
}

func TestRegistryRegister(t *testing.T) {
	r := newTestRegistry(t)

	family, err := r.Register(gobold.TTF)
	require.NoError(t, err)
	assert.NotEmpty(t, family)
	assert.Contains(t, r.Families(), family)

	_, err = r.Register(nil)
	assert.ErrorIs(t, err, ErrEmptyFontData)

	_, err = r.Register([]byte("not a font"))
	assert.Error(t, err)
}

func TestRegistryRegisterFile(t *testing.T) {
	r := newTestRegistry(t)
	path := filepath.Join(t.TempDir(), "bold.ttf")
	require.NoError(t, os.WriteFile(path, gobold.TTF, 0o600))

	family, err := r.RegisterFile(path)
	require.NoError(t, err)
	_, ok := r.Source(family)
	assert.True(t, ok)

	_, err = r.RegisterFile(filepath.Join(t.TempDir(), "missing.ttf"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestRegistryReplaceDropsFaces(t *testing.T) {
	r := newTestRegistry(t)
	before, err := r.Face(DefaultFamily, 14)
	require.NoError(t, err)

	_, err = r.RegisterAs(DefaultFamily, gobold.TTF)
	require.NoError(t, err)

	after, err := r.Face(DefaultFamily, 14)
	require.NoError(t, err)
	assert.NotSame(t, before, after)
}

func TestRegistryClose(t *testing.T) {
	r, err := NewRegistry()
	require.NoError(t, err)
	_, err = r.Face(DefaultFamily, 12)
	require.NoError(t, err)

	require.NoError(t, r.Close())
	require.NoError(t, r.Close())

	_, err = r.Face(DefaultFamily, 12)
	assert.ErrorIs(t, err, ErrClosed)
	_, err = r.RegisterAs("x", gobold.TTF)
	assert.ErrorIs(t, err, ErrClosed)
}

func TestFaceMeasure(t *testing.T) {
	r := newTestRegistry(t)
	f, err := r.Face(MonoFamily, 20)
	require.NoError(t, err)

	assert.Zero(t, f.Measure(""))

	one := f.Measure("M")
	assert.Greater(t, one, float32(0))
	// Monospaced: every glyph has the same advance.
	assert.InDelta(t, 4*one, f.Measure("MiWi"), 0.01)

	// Composed and decomposed forms measure the same.
	assert.Equal(t, f.Measure("\u00e9"), f.Measure("e\u0301"))
}

func TestFaceMeasureScalesWithSize(t *testing.T) {
	r := newTestRegistry(t)
	small, err := r.Face(DefaultFamily, 10)
	require.NoError(t, err)
	large, err := r.Face(DefaultFamily, 20)
	require.NoError(t, err)

	assert.InDelta(t, 2*small.Measure("Hello"), large.Measure("Hello"), 0.5)
}

func TestFaceMetrics(t *testing.T) {
	r := newTestRegistry(t)
	f, err := r.Face(DefaultFamily, 32)
	require.NoError(t, err)

	m := f.Metrics()
	assert.Greater(t, m.Ascent, float32(0))
	assert.Greater(t, m.Descent, float32(0))
	assert.GreaterOrEqual(t, m.Height, m.Ascent)
	assert.NotNil(t, f.XFace())
}
