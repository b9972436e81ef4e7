package ui

import "io/fs"

// EngineOption configures an Engine during creation.
//
// Example:
//
//	eng, err := ui.NewEngine(
//	    ui.WithViewport(1280, 720),
//	    ui.WithAssets(os.DirFS("assets")),
//	)
type EngineOption func(*engineOptions)

// engineOptions holds optional configuration for Engine creation.
type engineOptions struct {
	width, height   int
	assets          fs.FS
	textureCapacity int
	faceCapacity    int
	fontFiles       []string
}

// defaultEngineOptions returns the default engine options.
func defaultEngineOptions() engineOptions {
	return engineOptions{
		width:           800,
		height:          600,
		textureCapacity: 64,
		faceCapacity:    64,
	}
}

// WithViewport sets the frame size passed to backends.
func WithViewport(width, height int) EngineOption {
	return func(o *engineOptions) {
		o.width, o.height = width, height
	}
}

// WithAssets sets the file system BackgroundTexture paths are resolved in.
// Without it, only textures added to Engine.Textures resolve.
func WithAssets(fsys fs.FS) EngineOption {
	return func(o *engineOptions) {
		o.assets = fsys
	}
}

// WithTextureCapacity bounds how many decoded textures stay cached.
func WithTextureCapacity(n int) EngineOption {
	return func(o *engineOptions) {
		o.textureCapacity = n
	}
}

// WithFaceCapacity bounds how many sized font faces stay cached.
func WithFaceCapacity(n int) EngineOption {
	return func(o *engineOptions) {
		o.faceCapacity = n
	}
}

// WithFontFiles registers font files in addition to the Go fonts.
func WithFontFiles(paths ...string) EngineOption {
	return func(o *engineOptions) {
		o.fontFiles = append(o.fontFiles, paths...)
	}
}
