// Package config loads UI documents from TOML or YAML files and builds
// them into a ui.Engine.
//
// A document lists containers, each with its own properties and a tree of
// elements. Property keys are the snake_case property names; a theme table
// supplies element defaults.
//
//	width = 320
//	height = 200
//
//	[theme]
//	font_size = 14
//	corner_radius = 4
//
//	[[containers]]
//	name = "dialog"
//	modal = true
//	properties = { position = [40, 30], size = [240, 140], background_color = "#202830" }
//
//	[[containers.elements]]
//	name = "ok"
//	text = "OK"
//	properties = { position = [80, 90], size = [80, 30], background_color = "#3a7bd5" }
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/ui"
)

// Sentinel errors for the config package.
var (
	// ErrUnknownFormat is returned for files that are neither TOML nor YAML.
	ErrUnknownFormat = errors.New("config: unknown format")

	// ErrUnknownKey is returned for document keys that map to no field.
	ErrUnknownKey = errors.New("config: unknown key")

	// ErrInvalidValue is returned when a property value cannot be converted
	// to the property's kind.
	ErrInvalidValue = errors.New("config: invalid value")
)

// Format is a document encoding.
type Format string

// Supported formats.
const (
	TOML Format = "toml"
	YAML Format = "yaml"
)

// FormatOf returns the format implied by the file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}
}

// Document is a UI description.
type Document struct {
	// Width and Height set the viewport; zero keeps the engine default.
	Width  int `toml:"width" yaml:"width"`
	Height int `toml:"height" yaml:"height"`

	// Assets is the directory textures are loaded from, relative to the
	// document.
	Assets string `toml:"assets" yaml:"assets"`

	// Fonts lists font files to register, relative to the document.
	Fonts []string `toml:"fonts" yaml:"fonts"`

	// Theme holds property defaults applied to every element before its
	// own properties.
	Theme map[string]any `toml:"theme" yaml:"theme"`

	Containers []ContainerSpec `toml:"containers" yaml:"containers"`

	dir string
}

// ContainerSpec describes one container or modal.
type ContainerSpec struct {
	Name       string         `toml:"name" yaml:"name"`
	Modal      bool           `toml:"modal" yaml:"modal"`
	Properties map[string]any `toml:"properties" yaml:"properties"`
	Elements   []ElementSpec  `toml:"elements" yaml:"elements"`
}

// ElementSpec describes an element and its children.
type ElementSpec struct {
	Name       string         `toml:"name" yaml:"name"`
	Kind       string         `toml:"kind" yaml:"kind"`
	Text       string         `toml:"text" yaml:"text"`
	Properties map[string]any `toml:"properties" yaml:"properties"`
	Children   []ElementSpec  `toml:"children" yaml:"children"`
}

// Load reads and parses the document at path. Relative asset and font
// paths resolve against the document's directory.
func Load(path string) (*Document, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	// #nosec G304 -- document path comes from the command line
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	doc, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	doc.dir = filepath.Dir(path)
	return doc, nil
}

// Parse decodes a document. Unknown keys outside property tables are errors.
func Parse(data []byte, format Format) (*Document, error) {
	doc := &Document{}
	switch format {
	case TOML:
		md, err := toml.Decode(string(data), doc)
		if err != nil {
			return nil, err
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("%w: %v", ErrUnknownKey, undecoded)
		}
	case YAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(doc); err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return doc, nil
}

// Dir returns the directory the document was loaded from, or "" for
// parsed documents.
func (d *Document) Dir() string {
	return d.dir
}

func (d *Document) resolve(p string) string {
	if p == "" || filepath.IsAbs(p) || d.dir == "" {
		return p
	}
	return filepath.Join(d.dir, p)
}

// AssetsFS returns the file system textures load from, or nil when the
// document names no asset directory.
func (d *Document) AssetsFS() fs.FS {
	if d.Assets == "" {
		return nil
	}
	return os.DirFS(d.resolve(d.Assets))
}

// EngineOptions returns the engine options the document implies.
func (d *Document) EngineOptions() []ui.EngineOption {
	var opts []ui.EngineOption
	if d.Width > 0 && d.Height > 0 {
		opts = append(opts, ui.WithViewport(d.Width, d.Height))
	}
	if fsys := d.AssetsFS(); fsys != nil {
		opts = append(opts, ui.WithAssets(fsys))
	}
	for _, f := range d.Fonts {
		opts = append(opts, ui.WithFontFiles(d.resolve(f)))
	}
	return opts
}
