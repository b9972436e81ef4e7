// Package shader holds the WGSL program and pipeline descriptors a GPU
// backend needs to draw recorded triangle lists.
//
// The vertex data produced by recording.PackVertices matches VertexLayout.
// Compile turns the WGSL source into SPIR-V words via naga; no GPU device
// is required.
package shader

import (
	_ "embed"
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/naga"

	"github.com/gogpu/ui/recording"
)

//go:embed solid.wgsl
var solidShaderSource string

// Entry points in the solid shader.
const (
	VertexEntryPoint   = "vs_main"
	FragmentEntryPoint = "fs_main"
)

// VertexStride is the byte stride per vertex.
// Layout per vertex:
//
//	position (vec2<f32>) = 8 bytes  (location 0)
//	color    (vec4<f32>) = 16 bytes (location 1)
const VertexStride = recording.FloatsPerVertex * 4

// UniformSize is the byte size of the uniform buffer.
// Layout: viewport (vec2<f32>) + padding (vec2<f32>) = 16 bytes.
const UniformSize = 16

// SPIRVMagic is the first word of every SPIR-V module.
const SPIRVMagic = 0x07230203

// ErrInvalidSPIRV is returned when naga output is not a SPIR-V module.
var ErrInvalidSPIRV = errors.New("shader: invalid SPIR-V output")

// Source returns the WGSL source of the solid-color pipeline.
func Source() string {
	return solidShaderSource
}

// Compile compiles the WGSL source to SPIR-V words.
func Compile() ([]uint32, error) {
	spirvBytes, err := naga.Compile(solidShaderSource)
	if err != nil {
		return nil, fmt.Errorf("shader: compile solid: %w", err)
	}
	if len(spirvBytes) < 4 || len(spirvBytes)%4 != 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrInvalidSPIRV, len(spirvBytes))
	}

	// SPIR-V is little-endian 32-bit words
	words := make([]uint32, len(spirvBytes)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(spirvBytes[i*4:])
	}
	if words[0] != SPIRVMagic {
		return nil, fmt.Errorf("%w: magic 0x%08X", ErrInvalidSPIRV, words[0])
	}
	return words, nil
}

// VertexLayout returns the vertex buffer layout for packed triangle data.
func VertexLayout() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: VertexStride,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0}, // position
				{Format: gputypes.VertexFormatFloat32x4, Offset: 8, ShaderLocation: 1}, // color
			},
		},
	}
}

// Primitive returns the primitive state: plain triangle lists, no culling,
// since tessellated contours are not consistently wound.
func Primitive() gputypes.PrimitiveState {
	return gputypes.PrimitiveState{
		Topology: gputypes.PrimitiveTopologyTriangleList,
		CullMode: gputypes.CullModeNone,
	}
}

// ColorTarget returns the color target for a surface of the given format,
// blending premultiplied colors.
func ColorTarget(format gputypes.TextureFormat) gputypes.ColorTargetState {
	blend := gputypes.BlendStatePremultiplied()
	return gputypes.ColorTargetState{
		Format:    format,
		Blend:     &blend,
		WriteMask: gputypes.ColorWriteMaskAll,
	}
}

// Uniforms encodes the uniform buffer for a viewport of the given size.
func Uniforms(width, height int) []byte {
	buf := make([]byte, UniformSize)
	binary.LittleEndian.PutUint32(buf[0:], math.Float32bits(float32(width)))
	binary.LittleEndian.PutUint32(buf[4:], math.Float32bits(float32(height)))
	return buf
}

// VertexBytes encodes packed vertex floats as little-endian bytes for upload.
func VertexBytes(vertices []float32) []byte {
	buf := make([]byte, len(vertices)*4)
	for i, v := range vertices {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(v))
	}
	return buf
}
