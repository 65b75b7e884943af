package parts

import (
	"math"
	"testing"
)

func TestHeadIcosahedron(t *testing.T) {
	p := straightRig(t).Solve(nil)

	b, err := Head(p, HeadOptions{Joint: "tip", Radius: 0.8})
	if err != nil {
		t.Fatalf("Head: %v", err)
	}
	if b.VertexCount() != 12 || b.TriangleCount() != 20 {
		t.Fatalf("got %d vertices / %d triangles, want 12 / 20",
			b.VertexCount(), b.TriangleCount())
	}
	if err := b.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	// Every vertex sits on the sphere around the tip joint at (0,0,2)
	// and binds fully to it (bone index 2).
	for i := 0; i < b.VertexCount(); i++ {
		pos := b.Position(i)
		d := math.Sqrt(pos[0]*pos[0] + pos[1]*pos[1] + (pos[2]-2)*(pos[2]-2))
		if math.Abs(d-0.8) > 1e-9 {
			t.Fatalf("vertex %d at distance %g from center, want 0.8", i, d)
		}
		if b.SkinIndices[i*4] != 2 || b.SkinWeights[i*4] != 1 || b.SkinWeights[i*4+1] != 0 {
			t.Fatalf("vertex %d skin (%d, %g, %g), want pinned to bone 2",
				i, b.SkinIndices[i*4], b.SkinWeights[i*4], b.SkinWeights[i*4+1])
		}
		// Radial normals of unit length.
		n := [3]float64{b.Normals[i*3], b.Normals[i*3+1], b.Normals[i*3+2]}
		if l := math.Sqrt(n[0]*n[0] + n[1]*n[1] + n[2]*n[2]); math.Abs(l-1) > 1e-9 {
			t.Fatalf("vertex %d normal length %g", i, l)
		}
	}
}

func TestHeadSubdivision(t *testing.T) {
	p := straightRig(t).Solve(nil)

	b, err := Head(p, HeadOptions{Joint: "mid", Radius: 1, Subdivisions: 1})
	if err != nil {
		t.Fatalf("Head: %v", err)
	}
	// One split: 12 + 30 shared edge midpoints, 20*4 faces.
	if b.VertexCount() != 42 || b.TriangleCount() != 80 {
		t.Fatalf("got %d vertices / %d triangles, want 42 / 80",
			b.VertexCount(), b.TriangleCount())
	}
	if err := b.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestHeadRejectsBadOptions(t *testing.T) {
	p := straightRig(t).Solve(nil)

	if _, err := Head(p, HeadOptions{Joint: "tip", Radius: 0}); err == nil {
		t.Fatalf("zero radius accepted")
	}
	if _, err := Head(p, HeadOptions{Joint: "skullcap", Radius: 1}); err == nil {
		t.Fatalf("unknown joint accepted")
	}
}
