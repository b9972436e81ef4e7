package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/gogpu/ui"
	"github.com/gogpu/ui/geom"
)

// ParseValue converts a decoded document value to a value of p's kind.
//
// Floats accept any number. Colors accept "#rgb", "#rgba", "#rrggbb",
// "#rrggbbaa" or an array of 3 or 4 components in [0, 1]. Vectors accept
// an array of 2 numbers or a string "x,y". Strings accept strings.
func ParseValue(p ui.Property, raw any) (ui.Value, error) {
	var (
		v   ui.Value
		err error
	)
	switch p.Kind() {
	case ui.KindFloat:
		var f float32
		if f, err = toFloat(raw); err == nil {
			v = ui.FloatValue(f)
		}
	case ui.KindColor:
		var c geom.Color
		if c, err = toColor(raw); err == nil {
			v = ui.ColorValue(c)
		}
	case ui.KindVec2:
		var vec geom.Vec2
		if vec, err = toVec2(raw); err == nil {
			v = ui.Vec2Value(vec)
		}
	case ui.KindString:
		s, ok := raw.(string)
		if !ok {
			err = fmt.Errorf("want string, got %T", raw)
		}
		v = ui.StringValue(s)
	default:
		return ui.Value{}, fmt.Errorf("%w: %s", ui.ErrUnknownProperty, p)
	}
	if err != nil {
		return ui.Value{}, fmt.Errorf("%w: %s: %w", ErrInvalidValue, p, err)
	}
	return v, nil
}

// ParseColor parses "#rgb", "#rgba", "#rrggbb" or "#rrggbbaa"; the leading
// '#' is optional.
func ParseColor(s string) (geom.Color, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}

	alpha := 1.0
	switch len(s) {
	case 5, 9:
		digits := (len(s) - 1) / 4
		a, err := strconv.ParseUint(s[len(s)-digits:], 16, 8)
		if err != nil {
			return geom.Color{}, fmt.Errorf("%w: color %q", ErrInvalidValue, s)
		}
		if digits == 1 {
			alpha = float64(a) / 15
		} else {
			alpha = float64(a) / 255
		}
		s = s[:len(s)-digits]
	}

	c, err := colorful.Hex(s)
	if err != nil {
		return geom.Color{}, fmt.Errorf("%w: color %q: %w", ErrInvalidValue, s, err)
	}
	c = c.Clamped()
	return geom.RGBA(float32(c.R), float32(c.G), float32(c.B), float32(alpha)), nil
}

func toFloat(raw any) (float32, error) {
	switch n := raw.(type) {
	case float64:
		return float32(n), nil
	case float32:
		return n, nil
	case int:
		return float32(n), nil
	case int64:
		return float32(n), nil
	case uint64:
		return float32(n), nil
	default:
		return 0, fmt.Errorf("want number, got %T", raw)
	}
}

func toFloats(raw any) ([]float32, error) {
	items, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("want array, got %T", raw)
	}
	out := make([]float32, len(items))
	for i, item := range items {
		f, err := toFloat(item)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		out[i] = f
	}
	return out, nil
}

func toColor(raw any) (geom.Color, error) {
	if s, ok := raw.(string); ok {
		return ParseColor(s)
	}
	f, err := toFloats(raw)
	if err != nil {
		return geom.Color{}, err
	}
	switch len(f) {
	case 3:
		return geom.RGB(f[0], f[1], f[2]), nil
	case 4:
		return geom.RGBA(f[0], f[1], f[2], f[3]), nil
	default:
		return geom.Color{}, fmt.Errorf("want 3 or 4 components, got %d", len(f))
	}
}

func toVec2(raw any) (geom.Vec2, error) {
	if s, ok := raw.(string); ok {
		xs, ys, found := strings.Cut(s, ",")
		if !found {
			return geom.Vec2{}, fmt.Errorf("want \"x,y\", got %q", s)
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(xs), 32)
		if err != nil {
			return geom.Vec2{}, err
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(ys), 32)
		if err != nil {
			return geom.Vec2{}, err
		}
		return geom.V2(float32(x), float32(y)), nil
	}
	f, err := toFloats(raw)
	if err != nil {
		return geom.Vec2{}, err
	}
	if len(f) != 2 {
		return geom.Vec2{}, fmt.Errorf("want 2 components, got %d", len(f))
	}
	return geom.V2(f[0], f[1]), nil
}

// applyProperties sets every entry of props on target. Keys are processed
// in sorted order so errors are reported deterministically.
func applyProperties(target interface {
	Set(ui.Property, ui.Value) error
}, props map[string]any) error {
	for _, key := range sortedKeys(props) {
		p, err := ui.ParseProperty(key)
		if err != nil {
			return err
		}
		v, err := ParseValue(p, props[key])
		if err != nil {
			return err
		}
		if err := target.Set(p, v); err != nil {
			return err
		}
	}
	return nil
}
