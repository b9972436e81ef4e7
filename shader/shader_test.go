package shader

import (
	"encoding/binary"
	"math"
	"strings"
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/ui/geom"
	"github.com/gogpu/ui/recording"
)

// TestSolidShaderCompilation tests that the WGSL shader compiles to SPIR-V.
func TestSolidShaderCompilation(t *testing.T) {
	if Source() == "" {
		t.Fatal("solid shader source is empty")
	}

	words, err := Compile()
	if err != nil {
		errStr := err.Error()
		if strings.Contains(errStr, "not yet implemented") || strings.Contains(errStr, "not supported") {
			t.Skipf("Skipping: naga feature not yet implemented: %v", err)
		}
		t.Fatalf("failed to compile solid shader: %v", err)
	}
	if words[0] != SPIRVMagic {
		t.Errorf("invalid SPIR-V magic: 0x%08X, want 0x%08X", words[0], SPIRVMagic)
	}
	t.Logf("Solid shader compiled to %d words of SPIR-V", len(words))
}

func TestShaderEntryPoints(t *testing.T) {
	for _, ep := range []string{VertexEntryPoint, FragmentEntryPoint} {
		if !strings.Contains(Source(), "fn "+ep+"(") {
			t.Errorf("source has no entry point %q", ep)
		}
	}
}

func TestVertexLayoutMatchesPackedVertices(t *testing.T) {
	layout := VertexLayout()
	if len(layout) != 1 {
		t.Fatalf("len(VertexLayout()) = %d, want 1", len(layout))
	}
	if layout[0].ArrayStride != recording.FloatsPerVertex*4 {
		t.Errorf("ArrayStride = %d, want %d", layout[0].ArrayStride, recording.FloatsPerVertex*4)
	}
	attrs := layout[0].Attributes
	if len(attrs) != 2 {
		t.Fatalf("len(Attributes) = %d, want 2", len(attrs))
	}
	if attrs[1].Offset != 8 {
		t.Errorf("color offset = %d, want 8", attrs[1].Offset)
	}

	cmds := []recording.Command{
		recording.FillTrianglesCommand{Color: geom.White, Vertices: geom.Quad(geom.R(0, 0, 2, 2))},
	}
	data := VertexBytes(recording.PackVertices(cmds))
	if got, want := len(data), 6*VertexStride; got != want {
		t.Errorf("vertex bytes = %d, want %d", got, want)
	}
}

func TestPrimitiveAndTarget(t *testing.T) {
	p := Primitive()
	if p.Topology != gputypes.PrimitiveTopologyTriangleList {
		t.Errorf("Topology = %v, want TriangleList", p.Topology)
	}
	if p.CullMode != gputypes.CullModeNone {
		t.Errorf("CullMode = %v, want None", p.CullMode)
	}

	ct := ColorTarget(gputypes.TextureFormatRGBA8Unorm)
	if ct.Blend == nil {
		t.Fatal("ColorTarget has no blend state")
	}
	if ct.Format != gputypes.TextureFormatRGBA8Unorm {
		t.Errorf("Format = %v, want RGBA8Unorm", ct.Format)
	}
}

func TestUniforms(t *testing.T) {
	buf := Uniforms(800, 600)
	if len(buf) != UniformSize {
		t.Fatalf("len = %d, want %d", len(buf), UniformSize)
	}
	w := math.Float32frombits(binary.LittleEndian.Uint32(buf[0:]))
	h := math.Float32frombits(binary.LittleEndian.Uint32(buf[4:]))
	if w != 800 || h != 600 {
		t.Errorf("viewport = (%v, %v), want (800, 600)", w, h)
	}
}
