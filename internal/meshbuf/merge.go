package meshbuf

import "fmt"

// Merge concatenates buffers into one, offsetting each buffer's triangle
// indices by the running vertex count. Buffers missing an attribute get a
// synthesized default — zero UVs, bone-0 full-weight skin, computed
// normals — so every attribute array stays length-synchronized.
func Merge(buffers []*Buffer) (*Buffer, error) {
	out := &Buffer{}

	for bi, b := range buffers {
		if err := b.Validate(); err != nil {
			return nil, fmt.Errorf("meshbuf: merge input %d: %w", bi, err)
		}

		n := b.VertexCount()
		base := uint32(out.VertexCount())

		out.Positions = append(out.Positions, b.Positions...)

		if len(b.Normals) == n*3 {
			out.Normals = append(out.Normals, b.Normals...)
		} else {
			out.Normals = append(out.Normals, computeNormals(b)...)
		}

		if len(b.UVs) == n*2 {
			out.UVs = append(out.UVs, b.UVs...)
		} else {
			out.UVs = append(out.UVs, make([]float64, n*2)...)
		}

		if len(b.SkinIndices) == n*4 {
			out.SkinIndices = append(out.SkinIndices, b.SkinIndices...)
		} else {
			out.SkinIndices = append(out.SkinIndices, make([]uint16, n*4)...)
		}

		if len(b.SkinWeights) == n*4 {
			out.SkinWeights = append(out.SkinWeights, b.SkinWeights...)
		} else {
			w := make([]float64, n*4)
			for i := 0; i < n; i++ {
				w[i*4] = 1 // bone 0, full weight
			}
			out.SkinWeights = append(out.SkinWeights, w...)
		}

		for _, idx := range b.Indices {
			out.Indices = append(out.Indices, base+idx)
		}
	}

	return out, nil
}
