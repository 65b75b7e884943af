package tube

import (
	"fmt"
	"math"

	"creature-forge/internal/mathutil"
	"creature-forge/internal/meshbuf"
)

// RingEntry describes one perimeter ring before emission: where it sits,
// how big it is, and which two bones its vertices follow.
type RingEntry struct {
	Center  mathutil.Vec3
	Radius  float64
	Frame   Frame
	BoneA   int
	BoneB   int
	WeightA float64
	WeightB float64
	// V is the ring's texture coordinate along the tube axis.
	V float64
}

// RingPoints places sides vertices evenly around the entry's frame,
// starting at Axis1 and sweeping toward Axis2.
func RingPoints(center mathutil.Vec3, f Frame, radius float64, sides int) ([]mathutil.Vec3, error) {
	if sides < 3 {
		return nil, fmt.Errorf("tube: ring needs at least 3 sides, got %d: %w", sides, meshbuf.ErrInvalidTopology)
	}
	pts := make([]mathutil.Vec3, sides)
	for j := 0; j < sides; j++ {
		ang := 2 * math.Pi * float64(j) / float64(sides)
		r1 := f.Axis1.Scale(radius * math.Cos(ang))
		r2 := f.Axis2.Scale(radius * math.Sin(ang))
		pts[j] = center.Add(r1).Add(r2)
	}
	return pts, nil
}

// EmitRing appends the entry's vertices to the buffer with radial normals
// and two-slot skin weights, records the ring in the buffer's metadata,
// and returns the index of the ring's first vertex.
func EmitRing(b *meshbuf.Buffer, e RingEntry, sides int) (int, error) {
	pts, err := RingPoints(e.Center, e.Frame, e.Radius, sides)
	if err != nil {
		return 0, err
	}
	start := b.VertexCount()
	for j, p := range pts {
		n := p.Sub(e.Center).NormalizeOr(e.Frame.Axis1)
		u := float64(j) / float64(sides)
		b.AddVertex(p, n, u, e.V, e.BoneA, e.BoneB, e.WeightA, e.WeightB)
	}
	if b.Ring == nil {
		b.Ring = &meshbuf.RingMeta{Sides: sides}
	}
	b.Ring.Rings = append(b.Ring.Rings, meshbuf.RingInfo{
		Start:   start,
		Center:  e.Center,
		Radius:  e.Radius,
		Tangent: e.Frame.Tangent,
		Axis1:   e.Frame.Axis1,
		Axis2:   e.Frame.Axis2,
	})
	return start, nil
}

// BridgeRings connects two same-sided rings with a quad strip, two
// triangles per side, wrapping around at the seam.
func BridgeRings(b *meshbuf.Buffer, ringA, ringB, sides int) {
	for j := 0; j < sides; j++ {
		jn := (j + 1) % sides
		a := uint32(ringA + j)
		bb := uint32(ringA + jn)
		c := uint32(ringB + j)
		d := uint32(ringB + jn)
		b.AddTriangle(a, c, bb)
		b.AddTriangle(bb, c, d)
	}
}
