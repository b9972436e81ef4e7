package text

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	gotext "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/shaping"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"

	"github.com/gogpu/ui/cache"
)

// Default family names registered by NewRegistry.
const (
	DefaultFamily = "Go"
	MonoFamily    = "Go Mono"
)

// Source is a parsed font file registered under one family name.
type Source struct {
	family string
	data   []byte
	sfnt   *opentype.Font
	shape  *gotext.Font // read-only, safe for concurrent use
}

// Family returns the name the source is registered under.
func (s *Source) Family() string {
	return s.family
}

type faceKey struct {
	family string
	size   float64
}

// Registry maps family names to font sources and caches sized faces.
//
// Registry is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	families map[string]*Source // keyed by lower-cased family
	closed   bool

	faces *cache.Cache[faceKey, *Face]

	// shapeMu serializes shaping: HarfbuzzShaper and go-text faces keep
	// mutable buffers.
	shapeMu sync.Mutex
	shaper  shaping.HarfbuzzShaper

	logger atomic.Pointer[slog.Logger]
}

// NewRegistry creates a registry with the Go fonts registered unless
// WithoutDefaultFonts is given.
func NewRegistry(opts ...Option) (*Registry, error) {
	cfg := defaultRegistryConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	r := &Registry{
		families: make(map[string]*Source),
	}
	r.logger.Store(cfg.logger)
	r.faces = cache.New[faceKey, *Face](cfg.faceCapacity, cache.WithEvict[faceKey, *Face](func(_ faceKey, f *Face) {
		_ = f.xface.Close()
	}))

	if !cfg.skipDefaults {
		if _, err := r.RegisterAs(DefaultFamily, goregular.TTF); err != nil {
			return nil, err
		}
		if _, err := r.RegisterAs(MonoFamily, gomono.TTF); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register parses font data and registers it under the family name stored
// in the font. It returns that family name.
func (r *Registry) Register(data []byte) (string, error) {
	src, err := r.RegisterAs("", data)
	if err != nil {
		return "", err
	}
	return src.family, nil
}

// RegisterAs parses font data and registers it under family. An empty
// family uses the name stored in the font. Registering an existing family
// replaces it and drops its cached faces.
func (r *Registry) RegisterAs(family string, data []byte) (*Source, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	gt, err := gotext.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text: failed to load font for shaping: %w", err)
	}
	if family == "" {
		family, err = f.Name(nil, sfnt.NameIDFamily)
		if err != nil || family == "" {
			return nil, fmt.Errorf("text: font has no family name: %w", err)
		}
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)
	src := &Source{family: family, data: dataCopy, sfnt: f, shape: gt.Font}

	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return nil, ErrClosed
	}
	key := strings.ToLower(family)
	_, replaced := r.families[key]
	r.families[key] = src
	r.mu.Unlock()

	if replaced {
		for _, k := range r.faces.Keys() {
			if strings.EqualFold(k.family, family) {
				r.faces.Delete(k)
			}
		}
	}
	r.logger.Load().Debug("text: registered font family", "family", family, "bytes", len(data), "replaced", replaced)
	return src, nil
}

// RegisterFile loads and registers a font file, returning its family name.
func (r *Registry) RegisterFile(path string) (string, error) {
	// #nosec G304 -- font path comes from configuration
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("text: failed to read font file: %w", err)
	}
	return r.Register(data)
}

// Source returns the source registered for family, matched case-insensitively.
func (r *Registry) Source(family string) (*Source, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.families[strings.ToLower(family)]
	return s, ok
}

// Families returns the registered family names in sorted order.
func (r *Registry) Families() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.families))
	for _, s := range r.families {
		names = append(names, s.family)
	}
	sort.Strings(names)
	return names
}

// Face returns the face of family at size pixels. Faces are cached, so
// repeated calls with the same arguments return the same *Face.
func (r *Registry) Face(family string, size float64) (*Face, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSize, size)
	}

	r.mu.RLock()
	closed := r.closed
	src, ok := r.families[strings.ToLower(family)]
	r.mu.RUnlock()
	if closed {
		return nil, ErrClosed
	}
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrFamilyNotFound, family)
	}

	return r.faces.GetOrCreate(faceKey{family: src.family, size: size}, func() (*Face, error) {
		xf, err := opentype.NewFace(src.sfnt, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: xfont.HintingNone,
		})
		if err != nil {
			return nil, fmt.Errorf("text: failed to create face: %w", err)
		}
		return newFace(r, src, size, xf), nil
	})
}

// SetLogger replaces the logger used for registry diagnostics.
// A nil logger is ignored.
func (r *Registry) SetLogger(l *slog.Logger) {
	if l != nil {
		r.logger.Store(l)
	}
}

// Stats returns face cache statistics.
func (r *Registry) Stats() cache.Stats {
	return r.faces.Stats()
}

// Close releases every cached face. Further lookups fail with ErrClosed.
func (r *Registry) Close() error {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return nil
	}
	r.closed = true
	r.mu.Unlock()

	r.faces.Clear()
	r.logger.Load().Debug("text: registry closed")
	return nil
}
