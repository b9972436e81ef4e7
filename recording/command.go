package recording

import (
	"github.com/gogpu/ui/geom"
	"github.com/gogpu/ui/text"
	"github.com/gogpu/ui/texture"
)

// CommandType identifies the type of a command.
type CommandType uint8

const (
	// State commands
	CmdSave      CommandType = iota // Save current offset
	CmdRestore                      // Restore previous offset
	CmdTranslate                    // Move the origin

	// Drawing commands
	CmdFillTriangles // Fill a triangle list with one color
	CmdDrawImage     // Draw a texture into a rectangle
	CmdDrawText      // Draw a line of text
)

var commandTypeNames = [...]string{
	CmdSave:          "Save",
	CmdRestore:       "Restore",
	CmdTranslate:     "Translate",
	CmdFillTriangles: "FillTriangles",
	CmdDrawImage:     "DrawImage",
	CmdDrawText:      "DrawText",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// SaveCommand pushes the current origin.
type SaveCommand struct{}

// Type implements Command.
func (SaveCommand) Type() CommandType { return CmdSave }

// RestoreCommand pops the origin pushed by the matching Save.
type RestoreCommand struct{}

// Type implements Command.
func (RestoreCommand) Type() CommandType { return CmdRestore }

// TranslateCommand moves the origin by Offset.
type TranslateCommand struct {
	Offset geom.Vec2
}

// Type implements Command.
func (TranslateCommand) Type() CommandType { return CmdTranslate }

// FillTrianglesCommand fills a triangle list with a solid color.
type FillTrianglesCommand struct {
	Color geom.Color
	// Vertices holds three vertices per triangle.
	Vertices []geom.Vec2
}

// Type implements Command.
func (FillTrianglesCommand) Type() CommandType { return CmdFillTriangles }

// DrawImageCommand draws a whole texture scaled into Dst.
type DrawImageCommand struct {
	Texture *texture.Texture
	Dst     geom.Rect
}

// Type implements Command.
func (DrawImageCommand) Type() CommandType { return CmdDrawImage }

// TextStyle carries the text uniforms that do not affect layout.
type TextStyle struct {
	Color geom.Color
	// Width is the glyph edge threshold used by distance-field renderers.
	Width float32
	// Blur is the edge softness used by distance-field renderers.
	Blur float32
}

// DrawTextCommand draws Text with its baseline starting at Origin.
type DrawTextCommand struct {
	Text   string
	Face   *text.Face
	Origin geom.Vec2
	Style  TextStyle
}

// Type implements Command.
func (DrawTextCommand) Type() CommandType { return CmdDrawText }
