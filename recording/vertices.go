package recording

// FloatsPerVertex is the number of float32 values per packed vertex:
// position (x, y) followed by color (r, g, b, a).
const FloatsPerVertex = 6

// PackVertices flattens every FillTriangles command into interleaved
// position/color vertex data, ready for a single vertex buffer upload.
// Offsets applied through Translate commands are baked into positions;
// Save/Restore pairs scope them.
func PackVertices(cmds []Command) []float32 {
	n := 0
	for _, cmd := range cmds {
		if c, ok := cmd.(FillTrianglesCommand); ok {
			n += len(c.Vertices)
		}
	}
	out := make([]float32, 0, n*FloatsPerVertex)

	var ox, oy float32
	var stack [][2]float32
	for _, cmd := range cmds {
		switch c := cmd.(type) {
		case SaveCommand:
			stack = append(stack, [2]float32{ox, oy})
		case RestoreCommand:
			if len(stack) > 0 {
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				ox, oy = top[0], top[1]
			}
		case TranslateCommand:
			ox += c.Offset.X
			oy += c.Offset.Y
		case FillTrianglesCommand:
			col := c.Color.Premultiply()
			for _, v := range c.Vertices {
				out = append(out, v.X+ox, v.Y+oy, col.R, col.G, col.B, col.A)
			}
		}
	}
	return out
}
