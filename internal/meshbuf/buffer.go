// Package meshbuf holds the deformable mesh buffer produced by the part
// generators: flat parallel per-vertex arrays plus triangle indices, with
// optional ring metadata consumed by the branch blender.
package meshbuf

import (
	"errors"
	"fmt"

	"creature-forge/internal/mathutil"
)

// ErrInvalidTopology flags configuration errors that would silently corrupt
// geometry: side counts below 3, attribute arrays out of sync, indices out
// of range. These fail loudly rather than truncate.
var ErrInvalidTopology = errors.New("invalid topology")

// Buffer holds mesh attributes as flat parallel arrays. Positions and
// normals are xyz-interleaved, UVs uv-interleaved. Skinning uses a 4-slot
// convention with two active slots: slots 2 and 3 stay zeroed.
type Buffer struct {
	Positions   []float64 // 3 per vertex
	Normals     []float64 // 3 per vertex
	UVs         []float64 // 2 per vertex
	SkinIndices []uint16  // 4 per vertex
	SkinWeights []float64 // 4 per vertex
	Indices     []uint32  // triangle list

	// Ring holds per-ring metadata for blend consumers; nil for buffers
	// that never participate in branch blending.
	Ring *RingMeta
}

// RingInfo records where one structural ring lives inside a buffer and the
// oriented frame it was emitted with.
type RingInfo struct {
	Start   int // vertex index of the ring's first perimeter vertex
	Center  mathutil.Vec3
	Radius  float64
	Tangent mathutil.Vec3
	Axis1   mathutil.Vec3
	Axis2   mathutil.Vec3
}

// RingMeta describes the ring structure of a tube buffer.
type RingMeta struct {
	Sides int
	Rings []RingInfo
}

// VertexCount returns the number of vertices in the buffer.
func (b *Buffer) VertexCount() int {
	return len(b.Positions) / 3
}

// TriangleCount returns the number of triangles in the buffer.
func (b *Buffer) TriangleCount() int {
	return len(b.Indices) / 3
}

// AddVertex appends one vertex with the two-active-slot skin convention and
// returns its index.
func (b *Buffer) AddVertex(pos, normal mathutil.Vec3, u, v float64, boneA, boneB int, wA, wB float64) int {
	idx := b.VertexCount()
	b.Positions = append(b.Positions, pos[0], pos[1], pos[2])
	b.Normals = append(b.Normals, normal[0], normal[1], normal[2])
	b.UVs = append(b.UVs, u, v)
	b.SkinIndices = append(b.SkinIndices, uint16(boneA), uint16(boneB), 0, 0)
	b.SkinWeights = append(b.SkinWeights, wA, wB, 0, 0)
	return idx
}

// CopyVertex appends a copy of vertex i from src, preserving every
// attribute, and returns the new index. The branch blender builds bridge
// geometry exclusively from copied vertices.
func (b *Buffer) CopyVertex(src *Buffer, i int) int {
	idx := b.VertexCount()
	b.Positions = append(b.Positions, src.Positions[i*3:i*3+3]...)
	b.Normals = append(b.Normals, src.Normals[i*3:i*3+3]...)
	b.UVs = append(b.UVs, src.UVs[i*2:i*2+2]...)
	b.SkinIndices = append(b.SkinIndices, src.SkinIndices[i*4:i*4+4]...)
	b.SkinWeights = append(b.SkinWeights, src.SkinWeights[i*4:i*4+4]...)
	return idx
}

// AddTriangle appends one triangle.
func (b *Buffer) AddTriangle(a, c, d uint32) {
	b.Indices = append(b.Indices, a, c, d)
}

// SetPosition overwrites vertex i's position.
func (b *Buffer) SetPosition(i int, p mathutil.Vec3) {
	b.Positions[i*3] = p[0]
	b.Positions[i*3+1] = p[1]
	b.Positions[i*3+2] = p[2]
}

// Clone returns a deep copy. The branch blender works on clones so the
// input buffers stay valid for the caller.
func (b *Buffer) Clone() *Buffer {
	c := &Buffer{
		Positions:   append([]float64(nil), b.Positions...),
		Normals:     append([]float64(nil), b.Normals...),
		UVs:         append([]float64(nil), b.UVs...),
		SkinIndices: append([]uint16(nil), b.SkinIndices...),
		SkinWeights: append([]float64(nil), b.SkinWeights...),
		Indices:     append([]uint32(nil), b.Indices...),
	}
	if b.Ring != nil {
		c.Ring = &RingMeta{
			Sides: b.Ring.Sides,
			Rings: append([]RingInfo(nil), b.Ring.Rings...),
		}
	}
	return c
}

// Position returns vertex i's position.
func (b *Buffer) Position(i int) mathutil.Vec3 {
	return mathutil.Vec3{b.Positions[i*3], b.Positions[i*3+1], b.Positions[i*3+2]}
}

// Validate checks that all per-vertex arrays share one vertex count and
// that every index is in range.
func (b *Buffer) Validate() error {
	n := b.VertexCount()
	if len(b.Positions) != n*3 {
		return fmt.Errorf("meshbuf: positions length %d not divisible by 3: %w", len(b.Positions), ErrInvalidTopology)
	}
	if len(b.Normals) != 0 && len(b.Normals) != n*3 {
		return fmt.Errorf("meshbuf: normals hold %d vertices, positions %d: %w", len(b.Normals)/3, n, ErrInvalidTopology)
	}
	if len(b.UVs) != 0 && len(b.UVs) != n*2 {
		return fmt.Errorf("meshbuf: uvs hold %d vertices, positions %d: %w", len(b.UVs)/2, n, ErrInvalidTopology)
	}
	if len(b.SkinIndices) != 0 && len(b.SkinIndices) != n*4 {
		return fmt.Errorf("meshbuf: skin indices hold %d vertices, positions %d: %w", len(b.SkinIndices)/4, n, ErrInvalidTopology)
	}
	if len(b.SkinWeights) != 0 && len(b.SkinWeights) != n*4 {
		return fmt.Errorf("meshbuf: skin weights hold %d vertices, positions %d: %w", len(b.SkinWeights)/4, n, ErrInvalidTopology)
	}
	if len(b.Indices)%3 != 0 {
		return fmt.Errorf("meshbuf: index count %d not divisible by 3: %w", len(b.Indices), ErrInvalidTopology)
	}
	for _, i := range b.Indices {
		if int(i) >= n {
			return fmt.Errorf("meshbuf: index %d out of range (%d vertices): %w", i, n, ErrInvalidTopology)
		}
	}
	return nil
}
