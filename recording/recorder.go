package recording

import (
	"github.com/gogpu/ui/geom"
	"github.com/gogpu/ui/text"
	"github.com/gogpu/ui/texture"
)

// Recorder is a Backend that captures commands instead of drawing them.
// Finish turns the captured commands into an immutable Recording.
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	width, height int
	commands      []Command
}

var _ Backend = (*Recorder)(nil)

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{commands: make([]Command, 0, 64)}
}

// Begin resets the recorder to an empty canvas of the given size.
func (r *Recorder) Begin(width, height int) error {
	r.width, r.height = width, height
	r.commands = r.commands[:0]
	return nil
}

// End implements Backend.
func (r *Recorder) End() error { return nil }

// Save implements Backend.
func (r *Recorder) Save() {
	r.commands = append(r.commands, SaveCommand{})
}

// Restore implements Backend.
func (r *Recorder) Restore() {
	r.commands = append(r.commands, RestoreCommand{})
}

// Translate implements Backend.
func (r *Recorder) Translate(dx, dy float32) {
	r.commands = append(r.commands, TranslateCommand{Offset: geom.V2(dx, dy)})
}

// FillTriangles implements Backend. The vertex slice is retained, not copied.
func (r *Recorder) FillTriangles(c geom.Color, vertices []geom.Vec2) error {
	r.commands = append(r.commands, FillTrianglesCommand{Color: c, Vertices: vertices})
	return nil
}

// DrawImage implements Backend.
func (r *Recorder) DrawImage(tex *texture.Texture, dst geom.Rect) error {
	r.commands = append(r.commands, DrawImageCommand{Texture: tex, Dst: dst})
	return nil
}

// DrawText implements Backend.
func (r *Recorder) DrawText(s string, face *text.Face, origin geom.Vec2, style TextStyle) error {
	r.commands = append(r.commands, DrawTextCommand{Text: s, Face: face, Origin: origin, Style: style})
	return nil
}

// Len returns the number of commands captured so far.
func (r *Recorder) Len() int {
	return len(r.commands)
}

// Finish returns the captured commands as a Recording and leaves the
// Recorder empty and ready for another Begin.
func (r *Recorder) Finish() *Recording {
	cmds := make([]Command, len(r.commands))
	copy(cmds, r.commands)
	r.commands = r.commands[:0]
	return &Recording{width: r.width, height: r.height, commands: cmds}
}

// Recording is an immutable sequence of commands with the canvas size it
// was recorded for.
type Recording struct {
	width, height int
	commands      []Command
}

// Width returns the width of the recording canvas.
func (r *Recording) Width() int {
	return r.width
}

// Height returns the height of the recording canvas.
func (r *Recording) Height() int {
	return r.height
}

// Commands returns the recorded commands. Callers must not modify the slice.
func (r *Recording) Commands() []Command {
	return r.commands
}

// Replay emits the commands into b, which must already be inside Begin/End.
func (r *Recording) Replay(b Backend) error {
	return EmitAll(b, r.commands)
}

// Playback runs a whole frame on b: Begin with the recording size, Replay, End.
func (r *Recording) Playback(b Backend) error {
	if err := b.Begin(r.width, r.height); err != nil {
		return err
	}
	replayErr := r.Replay(b)
	if err := b.End(); err != nil {
		return err
	}
	return replayErr
}
