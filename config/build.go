package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/gogpu/ui"
)

// ParseKind resolves an element kind name. The empty name is a box.
func ParseKind(name string) (ui.ElementKind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "box":
		return ui.KindBox, nil
	case "line":
		return ui.KindLine, nil
	default:
		return 0, fmt.Errorf("%w: element kind %q", ErrInvalidValue, name)
	}
}

// Build adds the document's containers to eng as layers, in document
// order. An element that fails to build is skipped along with its
// children; a container that fails is skipped entirely. Every failure is
// joined into the returned error, and the layers that were built are
// returned.
func Build(eng *ui.Engine, doc *Document) ([]ui.Layer, error) {
	return build(eng, doc, eng.AddLayer)
}

// Apply replaces the layers named in doc with freshly built ones, leaving
// other layers untouched. A replaced layer keeps its place in the draw
// order; new names are added on top. It is used to apply a reloaded
// document.
func Apply(eng *ui.Engine, doc *Document) ([]ui.Layer, error) {
	return build(eng, doc, eng.ReplaceLayer)
}

func build(eng *ui.Engine, doc *Document, place func(ui.Layer) error) ([]ui.Layer, error) {
	var (
		layers []ui.Layer
		errs   []error
		seen   = make(map[string]bool, len(doc.Containers))
	)
	for _, spec := range doc.Containers {
		if seen[spec.Name] {
			errs = append(errs, fmt.Errorf("container %q: %w", spec.Name, ui.ErrDuplicateName))
			continue
		}
		seen[spec.Name] = true

		layer, err := buildContainer(eng, doc, spec)
		if layer != nil {
			if perr := place(layer); perr != nil {
				err = errors.Join(err, perr)
			} else {
				layers = append(layers, layer)
			}
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("container %q: %w", spec.Name, err))
		}
	}
	return layers, errors.Join(errs...)
}

func buildContainer(eng *ui.Engine, doc *Document, spec ContainerSpec) (ui.Layer, error) {
	var (
		layer ui.Layer
		c     *ui.Container
	)
	if spec.Modal {
		m, err := ui.NewModal(spec.Name, ui.WithResources(eng))
		if err != nil {
			return nil, err
		}
		layer, c = m, m.Container
	} else {
		var err error
		if c, err = ui.NewContainer(spec.Name, ui.WithResources(eng)); err != nil {
			return nil, err
		}
		layer = c
	}

	var errs []error
	if err := applyProperties(c, spec.Properties); err != nil {
		errs = append(errs, err)
	}
	for _, es := range spec.Elements {
		errs = append(errs, buildElement(c, doc, ui.NoElement, es)...)
	}
	return layer, errors.Join(errs...)
}

func buildElement(c *ui.Container, doc *Document, parent ui.ElementID, spec ElementSpec) []error {
	e, err := newElement(doc, spec)
	if err == nil {
		var id ui.ElementID
		if id, err = c.AddChild(parent, e); err == nil {
			var errs []error
			for _, child := range spec.Children {
				errs = append(errs, buildElement(c, doc, id, child)...)
			}
			return errs
		}
	}
	return []error{fmt.Errorf("element %q: %w", spec.Name, err)}
}

func newElement(doc *Document, spec ElementSpec) (*ui.Element, error) {
	kind, err := ParseKind(spec.Kind)
	if err != nil {
		return nil, err
	}
	e, err := ui.NewElement(spec.Name, ui.WithKind(kind), ui.WithText(spec.Text))
	if err != nil {
		return nil, err
	}
	if err := applyProperties(e, doc.Theme); err != nil {
		return nil, fmt.Errorf("theme: %w", err)
	}
	if err := applyProperties(e, spec.Properties); err != nil {
		return nil, err
	}
	return e, nil
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
