package recording

import (
	"errors"
	"fmt"

	"github.com/gogpu/ui/geom"
	"github.com/gogpu/ui/text"
	"github.com/gogpu/ui/texture"
)

// Backend consumes draw commands. Implementations rasterize them, upload
// them to a GPU, or record them.
//
// Drawing methods return an error when the backend cannot draw that one
// command; callers treat such errors as local to the command and continue.
type Backend interface {
	// Begin starts a frame of the given size. It must be called before
	// any drawing operation.
	Begin(width, height int) error

	// End finishes the frame.
	End() error

	// Save pushes the current origin.
	Save()

	// Restore pops the origin. With an empty stack it is a no-op.
	Restore()

	// Translate moves the origin by (dx, dy).
	Translate(dx, dy float32)

	// FillTriangles fills a triangle list with a solid color.
	FillTriangles(c geom.Color, vertices []geom.Vec2) error

	// DrawImage draws tex scaled into dst.
	DrawImage(tex *texture.Texture, dst geom.Rect) error

	// DrawText draws s with its baseline starting at origin.
	DrawText(s string, face *text.Face, origin geom.Vec2, style TextStyle) error
}

// ErrUnknownCommand is returned when replaying a command type no backend
// method handles.
var ErrUnknownCommand = errors.New("recording: unknown command")

// Emit sends one command to b.
func Emit(b Backend, cmd Command) error {
	switch c := cmd.(type) {
	case SaveCommand:
		b.Save()
	case RestoreCommand:
		b.Restore()
	case TranslateCommand:
		b.Translate(c.Offset.X, c.Offset.Y)
	case FillTrianglesCommand:
		return b.FillTriangles(c.Color, c.Vertices)
	case DrawImageCommand:
		return b.DrawImage(c.Texture, c.Dst)
	case DrawTextCommand:
		return b.DrawText(c.Text, c.Face, c.Origin, c.Style)
	default:
		return fmt.Errorf("%w: %T", ErrUnknownCommand, cmd)
	}
	return nil
}

// EmitAll sends cmds to b in order. A failing command does not stop the
// rest; the failures are joined into the returned error.
func EmitAll(b Backend, cmds []Command) error {
	var errs []error
	for _, cmd := range cmds {
		if err := Emit(b, cmd); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", cmd.Type(), err))
		}
	}
	return errors.Join(errs...)
}
