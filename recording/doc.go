// Package recording defines the draw commands UI elements emit and the
// backends that consume them.
//
// Commands are typed structs rather than a binary encoding so they can be
// inspected and compared. An element's draw data is a slice of commands; a
// Recorder captures commands sent to it as a Backend into an immutable
// Recording, which a buffering container keeps as its cached output:
//
//	rec := recording.NewRecorder()
//	_ = rec.Begin(320, 200)
//	_ = rec.FillTriangles(geom.White, tris)
//	buf := rec.Finish()
//
//	// later frames
//	err := buf.Replay(target)
//
// Backends are created through a Registry owned by the caller rather than a
// process-wide table:
//
//	reg := recording.NewRegistry()
//	raster.Register(reg)
//	b, err := reg.New("raster")
package recording
