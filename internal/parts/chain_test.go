package parts

import (
	"errors"
	"math"
	"testing"

	"creature-forge/internal/meshbuf"
	"creature-forge/internal/rig"
)

func straightRig(t *testing.T) *rig.Rig {
	t.Helper()
	r, err := rig.New([]rig.JointSpec{
		{Name: "root"},
		{Name: "mid", Parent: "root", Offset: [3]float64{0, 0, 1}},
		{Name: "tip", Parent: "mid", Offset: [3]float64{0, 0, 1}},
	})
	if err != nil {
		t.Fatalf("rig.New: %v", err)
	}
	return r
}

func TestChainEndToEnd(t *testing.T) {
	p := straightRig(t).Solve(nil)

	b, err := Chain(p, ChainOptions{
		Joints:          []string{"root", "mid", "tip"},
		Radii:           []float64{0.5, 0.4, 0.2},
		Sides:           8,
		RingsPerSegment: 1,
	})
	if err != nil {
		t.Fatalf("Chain: %v", err)
	}

	if got := b.VertexCount(); got != 24 {
		t.Fatalf("vertex count %d, want 24", got)
	}
	if got := b.TriangleCount(); got != 32 {
		t.Fatalf("triangle count %d, want 32", got)
	}
	if err := b.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	// End rings pin fully to their end bones, the middle ring to mid.
	wantBone := []uint16{0, 1, 2}
	for ring := 0; ring < 3; ring++ {
		for j := 0; j < 8; j++ {
			i := ring*8 + j
			if b.SkinIndices[i*4] != wantBone[ring] {
				t.Fatalf("ring %d vertex %d bound to bone %d, want %d",
					ring, j, b.SkinIndices[i*4], wantBone[ring])
			}
			if b.SkinWeights[i*4] != 1 || b.SkinWeights[i*4+1] != 0 {
				t.Fatalf("ring %d vertex %d weights (%g,%g), want (1,0)",
					ring, j, b.SkinWeights[i*4], b.SkinWeights[i*4+1])
			}
		}
	}

	// Ring radii follow the profile.
	wantRadius := []float64{0.5, 0.4, 0.2}
	for ring := 0; ring < 3; ring++ {
		center := b.Ring.Rings[ring].Center
		for j := 0; j < 8; j++ {
			d := b.Position(ring*8 + j).Sub(center).Len()
			if math.Abs(d-wantRadius[ring]) > 1e-9 {
				t.Fatalf("ring %d radius %g, want %g", ring, d, wantRadius[ring])
			}
		}
	}
}

func TestChainWeightsSumToOne(t *testing.T) {
	p := straightRig(t).Solve(nil)

	cases := []ChainOptions{
		{Joints: []string{"root", "mid", "tip"}, Radii: []float64{0.5, 0.3}, Sides: 6, RingsPerSegment: 3},
		{Joints: []string{"root", "mid", "tip"}, Radii: []float64{0.5, 0.3}, Sides: 6, RingsPerSegment: 2, Bias: 0.5,
			EndCap: Cap{Style: CapTaper, Segments: 2, Extent: 0.5}},
		{Joints: []string{"root", "tip"}, Radii: []float64{0.4, 0.1}, Sides: 5,
			StartCap: Cap{Style: CapFan, Extent: 1}, EndCap: Cap{Style: CapFan, Extent: 0}},
	}

	for ci, opts := range cases {
		b, err := Chain(p, opts)
		if err != nil {
			t.Fatalf("case %d: %v", ci, err)
		}
		for i := 0; i < b.VertexCount(); i++ {
			sum := 0.0
			for s := 0; s < 4; s++ {
				sum += b.SkinWeights[i*4+s]
			}
			if math.Abs(sum-1) > 1e-5 {
				t.Fatalf("case %d vertex %d: weights sum to %g", ci, i, sum)
			}
		}
	}
}

func TestChainCapTriangleCounts(t *testing.T) {
	p := straightRig(t).Solve(nil)
	const sides = 8

	open, err := Chain(p, ChainOptions{
		Joints: []string{"root", "mid", "tip"},
		Radii:  []float64{0.5, 0.2},
		Sides:  sides,
	})
	if err != nil {
		t.Fatalf("Chain: %v", err)
	}
	base := open.TriangleCount()

	fan, err := Chain(p, ChainOptions{
		Joints: []string{"root", "mid", "tip"},
		Radii:  []float64{0.5, 0.2},
		Sides:  sides,
		EndCap: Cap{Style: CapFan, Extent: 1},
	})
	if err != nil {
		t.Fatalf("Chain fan: %v", err)
	}
	if got := fan.TriangleCount() - base; got != sides {
		t.Fatalf("fan cap added %d triangles, want %d", got, sides)
	}

	const segs = 3
	taper, err := Chain(p, ChainOptions{
		Joints: []string{"root", "mid", "tip"},
		Radii:  []float64{0.5, 0.2},
		Sides:  sides,
		EndCap: Cap{Style: CapTaper, Segments: segs, Extent: 0.5},
	})
	if err != nil {
		t.Fatalf("Chain taper: %v", err)
	}
	if got := taper.TriangleCount() - base; got != segs*2*sides+sides {
		t.Fatalf("taper cap added %d triangles, want %d", got, segs*2*sides+sides)
	}
}

func TestChainTStops(t *testing.T) {
	p := straightRig(t).Solve(nil)

	b, err := Chain(p, ChainOptions{
		Joints: []string{"root", "mid", "tip"},
		Radii:  []float64{0.5, 0.5},
		Sides:  4,
		TStops: []float64{0, 0.1, 0.2, 0.9, 1},
	})
	if err != nil {
		t.Fatalf("Chain: %v", err)
	}
	if got := len(b.Ring.Rings); got != 5 {
		t.Fatalf("got %d rings, want 5", got)
	}
	// Stops map linearly along the chain, which spans z in [0,2].
	wantZ := []float64{0, 0.2, 0.4, 1.8, 2}
	for i, info := range b.Ring.Rings {
		if math.Abs(info.Center[2]-wantZ[i]) > 1e-9 {
			t.Fatalf("ring %d at z=%g, want %g", i, info.Center[2], wantZ[i])
		}
	}

	for _, bad := range [][]float64{
		{0, 1, 0.5},
		{0.1, 0.5, 1},
		{0, 0.5},
	} {
		if _, err := Chain(p, ChainOptions{
			Joints: []string{"root", "mid", "tip"},
			Radii:  []float64{0.5, 0.5},
			Sides:  4,
			TStops: bad,
		}); err == nil {
			t.Fatalf("stops %v accepted, want error", bad)
		}
	}
}

func TestChainMissingJoint(t *testing.T) {
	p := straightRig(t).Solve(nil)

	_, err := Chain(p, ChainOptions{
		Joints: []string{"root", "elbow"},
		Radii:  []float64{0.5, 0.5},
		Sides:  4,
	})
	var missing *rig.MissingJointError
	if !errors.As(err, &missing) {
		t.Fatalf("got %v, want MissingJointError", err)
	}
	if missing.Name != "elbow" {
		t.Fatalf("missing joint %q, want elbow", missing.Name)
	}
}

func TestChainRejectsBadTopology(t *testing.T) {
	p := straightRig(t).Solve(nil)

	_, err := Chain(p, ChainOptions{
		Joints: []string{"root", "tip"},
		Radii:  []float64{0.5, 0.5},
		Sides:  2,
	})
	if !errors.Is(err, meshbuf.ErrInvalidTopology) {
		t.Fatalf("sides=2: got %v, want ErrInvalidTopology", err)
	}

	if _, err := Chain(p, ChainOptions{Joints: []string{"root"}, Radii: []float64{1, 1}, Sides: 4}); err == nil {
		t.Fatalf("single joint accepted")
	}
}

func TestGeneratorsProduceRingMeta(t *testing.T) {
	p := straightRig(t).Solve(nil)

	torso, err := Torso(p, TorsoOptions{
		Spine:           []string{"root", "mid", "tip"},
		Radii:           []float64{1, 1.2, 0.8},
		Sides:           10,
		RingsPerSegment: 2,
	})
	if err != nil {
		t.Fatalf("Torso: %v", err)
	}
	if torso.Ring == nil || torso.Ring.Sides != 10 || len(torso.Ring.Rings) != 5 {
		t.Fatalf("torso ring meta: %+v", torso.Ring)
	}

	tail, err := Tail(p, TailOptions{
		Joints: []string{"root", "mid", "tip"},
		Radii:  []float64{0.2, 0.05},
		Sides:  5,
	})
	if err != nil {
		t.Fatalf("Tail: %v", err)
	}
	if tail.Ring == nil || tail.Ring.Sides != 5 {
		t.Fatalf("tail ring meta: %+v", tail.Ring)
	}

	limb, err := Limb(p, LimbOptions{
		Joints: []string{"root", "mid", "tip"},
		Radii:  []float64{0.5, 0.4, 0.3},
		Sides:  6,
		TStops: []float64{0, 0.4, 0.5, 0.6, 1},
	})
	if err != nil {
		t.Fatalf("Limb: %v", err)
	}
	if len(limb.Ring.Rings) != 5 {
		t.Fatalf("limb rings %d, want 5 from stops", len(limb.Ring.Rings))
	}
}

func TestNeckOpenBaseClosedHead(t *testing.T) {
	p := straightRig(t).Solve(nil)

	sides, rps, segs := 8, 1, 2
	neck, err := Neck(p, NeckOptions{
		Joints:          []string{"root", "mid", "tip"},
		Radii:           []float64{0.6, 0.5, 0.4},
		Sides:           sides,
		RingsPerSegment: rps,
		CapSegments:     segs,
	})
	if err != nil {
		t.Fatalf("Neck: %v", err)
	}

	// 3 structural rings bridge twice; only the head end carries cap
	// triangles, the base ring stays an open boundary.
	wantTris := 2*2*sides + segs*2*sides + sides
	if got := neck.TriangleCount(); got != wantTris {
		t.Fatalf("triangle count %d, want %d", got, wantTris)
	}

	// Every base-ring edge borders exactly one triangle.
	edgeUse := map[[2]uint32]int{}
	for i := 0; i+2 < len(neck.Indices); i += 3 {
		tri := [3]uint32{neck.Indices[i], neck.Indices[i+1], neck.Indices[i+2]}
		for e := 0; e < 3; e++ {
			a, b := tri[e], tri[(e+1)%3]
			if a < uint32(sides) && b < uint32(sides) {
				if a > b {
					a, b = b, a
				}
				edgeUse[[2]uint32{a, b}]++
			}
		}
	}
	for e, n := range edgeUse {
		if n != 1 {
			t.Fatalf("base edge %v used by %d triangles, want 1", e, n)
		}
	}
	if len(edgeUse) != sides {
		t.Fatalf("%d base edges, want %d", len(edgeUse), sides)
	}
}
