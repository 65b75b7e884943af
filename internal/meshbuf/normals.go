package meshbuf

import "creature-forge/internal/mathutil"

// RecomputeNormals replaces the buffer's normals with smooth vertex
// normals: per-face normals area-weighted through the cross product,
// accumulated per vertex, then normalized.
func RecomputeNormals(b *Buffer) {
	b.Normals = computeNormals(b)
}

func computeNormals(b *Buffer) []float64 {
	n := b.VertexCount()
	acc := make([]mathutil.Vec3, n)

	for i := 0; i+2 < len(b.Indices); i += 3 {
		i0, i1, i2 := int(b.Indices[i]), int(b.Indices[i+1]), int(b.Indices[i+2])
		p0 := b.Position(i0)
		face := b.Position(i1).Sub(p0).Cross(b.Position(i2).Sub(p0))
		acc[i0] = acc[i0].Add(face)
		acc[i1] = acc[i1].Add(face)
		acc[i2] = acc[i2].Add(face)
	}

	out := make([]float64, n*3)
	for i, v := range acc {
		nv := v.NormalizeOr(mathutil.Vec3{0, 1, 0})
		out[i*3], out[i*3+1], out[i*3+2] = nv[0], nv[1], nv[2]
	}
	return out
}
