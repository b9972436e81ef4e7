package gpu

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gogpu/ui/shader"
)

// Files written by Dump.
const (
	VerticesFile = "vertices.bin"
	UniformsFile = "uniforms.bin"
	SPIRVFile    = "solid.spv"
	SummaryFile  = "frame.txt"
)

// Dump writes f's buffers and a text summary into dir, creating it if
// needed. When p is non-nil its SPIR-V is written as well.
func Dump(dir string, f *Frame, p *Pipeline) error {
	if f == nil {
		return errors.New("gpu: no frame to dump")
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("gpu: dump: %w", err)
	}

	files := map[string][]byte{
		VerticesFile: f.Vertices,
		UniformsFile: f.Uniforms,
		SummaryFile:  summary(f),
	}
	if p != nil {
		var buf bytes.Buffer
		if err := binary.Write(&buf, binary.LittleEndian, p.SPIRV); err != nil {
			return fmt.Errorf("gpu: dump: %w", err)
		}
		files[SPIRVFile] = buf.Bytes()
	}
	for name, data := range files {
		if err := os.WriteFile(filepath.Join(dir, name), data, 0o600); err != nil {
			return fmt.Errorf("gpu: dump: %w", err)
		}
	}
	return nil
}

func summary(f *Frame) []byte {
	var b bytes.Buffer
	fmt.Fprintf(&b, "frame %dx%d\n", f.Width, f.Height)
	fmt.Fprintf(&b, "vertices %d (stride %d, %d bytes)\n", f.VertexCount, shader.VertexStride, len(f.Vertices))
	for _, img := range f.Images {
		fmt.Fprintf(&b, "image %s at (%g,%g) %gx%g\n", img.Path, img.Dst.Min.X, img.Dst.Min.Y, img.Dst.Size.X, img.Dst.Size.Y)
	}
	for _, t := range f.Textures {
		fmt.Fprintf(&b, "texture %s %dx%d %s\n", t.Path, t.Width, t.Height, t.Format)
	}
	fmt.Fprintf(&b, "text runs %d\n", f.TextRuns)
	return b.Bytes()
}
