// Package ui provides a retained-mode UI core: typed visual properties,
// elements that cache their draw commands, and containers that draw
// element trees into a recording backend.
//
// # Overview
//
// Every Element and Container owns a Store holding one value per Property.
// Setting a property records a dirty bit on its owner; the next render
// rebuilds only dirty elements. Caching is unobservable: the commands an
// element emits after Recompute equal those of a full Rebuild from the same
// property values.
//
// # Quick Start
//
//	eng, _ := ui.NewEngine(ui.WithViewport(320, 200))
//	defer eng.Close()
//
//	panel, _ := eng.NewContainer("main", ui.WithBounds(geom.R(0, 0, 320, 200)))
//
//	btn, _ := ui.NewElement("ok", ui.WithText("OK"))
//	btn.SetColor(ui.BackgroundColor, geom.RGB(0.2, 0.5, 0.9))
//	btn.SetFloat(ui.CornerRadius, 6)
//	panel.Add(btn)
//
//	backend, _ := eng.NewBackend("raster")
//	eng.Frame(ui.Input{}, backend)
//	backend.(*raster.Backend).SavePNG("ui.png")
//
// # Properties
//
// Properties are addressed through typed handles (FloatProperty,
// ColorProperty, Vec2Property, StringProperty), so a value of the wrong type
// does not compile. The dynamic Set(Property, Value) form serves data-driven
// callers and reports ErrTypeMismatch.
//
// # Modal
//
// A Modal records its content once and replays the recording on later
// frames. Only a change of its Size makes the recording stale; other
// changes become visible after Invalidate.
//
// # Architecture
//
// The module is organized into:
//   - ui: properties, store, elements, containers, engine
//   - geom: vectors, colors, tessellation
//   - recording: draw commands, recorder, backend registry
//   - recording/backends/raster: CPU backend over image.RGBA
//   - text, texture: font and texture registries
//   - shader: WGSL program and vertex layout for GPU backends
//   - config: TOML/YAML UI documents with hot reload
//   - inspect: hierarchy display
package ui
