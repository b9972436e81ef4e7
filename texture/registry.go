package texture

import (
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"io/fs"
	"log/slog"
	"sort"
	"sync"
	"sync/atomic"

	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/webp" // register WebP decoder

	"github.com/gogpu/ui/cache"
)

// Registry resolves texture paths to decoded textures.
// Textures added with Add stay until Remove; loaded ones are cached LRU.
//
// Registry is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	fsys     fs.FS
	pinned   map[string]*Texture
	loaded   *cache.Cache[string, *Texture]
	capacity int
	closed   bool
	logger   atomic.Pointer[slog.Logger]
}

// NewRegistry creates a registry that loads files from fsys. fsys may be
// nil, in which case only textures added with Add resolve.
func NewRegistry(fsys fs.FS, opts ...Option) *Registry {
	r := &Registry{
		fsys:     fsys,
		pinned:   make(map[string]*Texture),
		capacity: 64,
	}
	r.logger.Store(slog.New(slog.DiscardHandler))
	for _, opt := range opts {
		opt(r)
	}
	r.loaded = cache.New[string, *Texture](r.capacity, cache.WithEvict[string, *Texture](func(path string, _ *Texture) {
		r.logger.Load().Debug("texture: evicted", "path", path)
	}))
	return r
}

// Add registers img under path, replacing any texture with that path.
func (r *Registry) Add(path string, img image.Image) (*Texture, error) {
	tex := NewTexture(path, img)

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return nil, ErrClosed
	}
	r.pinned[path] = tex
	r.loaded.Delete(path)
	return tex, nil
}

// Remove drops the texture registered or cached under path.
func (r *Registry) Remove(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.pinned, path)
	r.loaded.Delete(path)
}

// Texture returns the texture for path, decoding it on first use.
// Missing files yield ErrNotFound and undecodable ones ErrDecode.
func (r *Registry) Texture(path string) (*Texture, error) {
	r.mu.RLock()
	closed := r.closed
	tex, ok := r.pinned[path]
	fsys := r.fsys
	r.mu.RUnlock()

	switch {
	case closed:
		return nil, ErrClosed
	case ok:
		return tex, nil
	case fsys == nil || path == "":
		return nil, fmt.Errorf("%w: %q", ErrNotFound, path)
	}

	return r.loaded.GetOrCreate(path, func() (*Texture, error) {
		return r.load(fsys, path)
	})
}

func (r *Registry) load(fsys fs.FS, path string) (*Texture, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrNotFound, path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrDecode, path, err)
	}
	tex := NewTexture(path, img)
	w, h := tex.Size()
	r.logger.Load().Debug("texture: loaded", "path", path, "format", format, "width", w, "height", h)
	return tex, nil
}

// Paths returns every resolvable path currently held, sorted.
func (r *Registry) Paths() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	paths := make([]string, 0, len(r.pinned))
	for p := range r.pinned {
		paths = append(paths, p)
	}
	for _, p := range r.loaded.Keys() {
		if _, pinned := r.pinned[p]; !pinned {
			paths = append(paths, p)
		}
	}
	sort.Strings(paths)
	return paths
}

// SetLogger replaces the logger used for registry diagnostics.
// A nil logger is ignored.
func (r *Registry) SetLogger(l *slog.Logger) {
	if l != nil {
		r.logger.Store(l)
	}
}

// Stats returns statistics of the loaded-texture cache.
func (r *Registry) Stats() cache.Stats {
	return r.loaded.Stats()
}

// Close drops every texture. Further lookups fail with ErrClosed.
func (r *Registry) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return nil
	}
	r.closed = true
	r.pinned = make(map[string]*Texture)
	r.loaded.Clear()
	return nil
}
