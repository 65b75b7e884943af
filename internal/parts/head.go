package parts

import (
	"fmt"
	"math"

	"creature-forge/internal/mathutil"
	"creature-forge/internal/meshbuf"
	"creature-forge/internal/rig"
)

// HeadOptions shapes the skull ball at the top of the spine.
type HeadOptions struct {
	// Joint names the bone the skull centers on and binds to.
	Joint  string
	Radius float64
	// Subdivisions refines the icosphere: 0 is the bare icosahedron
	// (20 faces), each level quadruples the face count.
	Subdivisions int
}

// Head builds an icosphere skull centered on the joint, every vertex
// pinned fully to it. The ball overlaps the torso's head-end cap rather
// than blending into it, so the torso keeps its closed surface.
func Head(p *rig.Pose, o HeadOptions) (*meshbuf.Buffer, error) {
	if o.Radius <= 0 {
		return nil, fmt.Errorf("parts: head radius must be positive, got %g", o.Radius)
	}
	center, err := p.WorldPosition(o.Joint)
	if err != nil {
		return nil, fmt.Errorf("parts: head: %w", err)
	}
	bone, err := p.Rig().Index(o.Joint)
	if err != nil {
		return nil, fmt.Errorf("parts: head: %w", err)
	}

	verts, faces := icosphere(o.Subdivisions)
	b := &meshbuf.Buffer{}
	for _, n := range verts {
		u := 0.5 + math.Atan2(n[2], n[0])/(2*math.Pi)
		v := 0.5 - math.Asin(mathutil.Clamp(n[1], -1, 1))/math.Pi
		b.AddVertex(center.Add(n.Scale(o.Radius)), n, u, v, bone, bone, 1, 0)
	}
	for _, f := range faces {
		b.AddTriangle(f[0], f[1], f[2])
	}
	return b, nil
}

// icosphere returns unit-sphere vertices and faces: an icosahedron with
// every edge midpoint split levels times, midpoints shared across faces.
func icosphere(levels int) ([]mathutil.Vec3, [][3]uint32) {
	t := (1 + math.Sqrt(5)) / 2
	verts := []mathutil.Vec3{
		{-1, t, 0}, {1, t, 0}, {-1, -t, 0}, {1, -t, 0},
		{0, -1, t}, {0, 1, t}, {0, -1, -t}, {0, 1, -t},
		{t, 0, -1}, {t, 0, 1}, {-t, 0, -1}, {-t, 0, 1},
	}
	for i := range verts {
		verts[i] = verts[i].Normalize()
	}
	faces := [][3]uint32{
		{0, 11, 5}, {0, 5, 1}, {0, 1, 7}, {0, 7, 10}, {0, 10, 11},
		{1, 5, 9}, {5, 11, 4}, {11, 10, 2}, {10, 7, 6}, {7, 1, 8},
		{3, 9, 4}, {3, 4, 2}, {3, 2, 6}, {3, 6, 8}, {3, 8, 9},
		{4, 9, 5}, {2, 4, 11}, {6, 2, 10}, {8, 6, 7}, {9, 8, 1},
	}

	for l := 0; l < levels; l++ {
		mids := map[[2]uint32]uint32{}
		midpoint := func(a, b uint32) uint32 {
			key := [2]uint32{a, b}
			if a > b {
				key = [2]uint32{b, a}
			}
			if m, ok := mids[key]; ok {
				return m
			}
			m := uint32(len(verts))
			verts = append(verts, verts[a].Add(verts[b]).Normalize())
			mids[key] = m
			return m
		}

		split := make([][3]uint32, 0, len(faces)*4)
		for _, f := range faces {
			ab := midpoint(f[0], f[1])
			bc := midpoint(f[1], f[2])
			ca := midpoint(f[2], f[0])
			split = append(split,
				[3]uint32{f[0], ab, ca},
				[3]uint32{f[1], bc, ab},
				[3]uint32{f[2], ca, bc},
				[3]uint32{ab, bc, ca},
			)
		}
		faces = split
	}
	return verts, faces
}
