package tube

import (
	"errors"
	"math"
	"testing"

	"creature-forge/internal/mathutil"
	"creature-forge/internal/meshbuf"
)

func TestRingPointsGeometry(t *testing.T) {
	center := mathutil.Vec3{1, 2, 3}
	f := FixedUpFrame(mathutil.Vec3{0, 0, 1})
	const sides = 8
	const radius = 0.5

	pts, err := RingPoints(center, f, radius, sides)
	if err != nil {
		t.Fatalf("RingPoints: %v", err)
	}
	if len(pts) != sides {
		t.Fatalf("got %d points, want %d", len(pts), sides)
	}

	for i, p := range pts {
		d := p.Sub(center).Len()
		if math.Abs(d-radius) > 1e-9 {
			t.Fatalf("point %d at distance %g, want %g", i, d, radius)
		}
	}

	// Consecutive points subtend 2π/sides at the center.
	want := 2 * math.Pi / sides
	for i := 0; i < sides; i++ {
		a := pts[i].Sub(center).Normalize()
		b := pts[(i+1)%sides].Sub(center).Normalize()
		ang := math.Acos(mathutil.Clamp(a.Dot(b), -1, 1))
		if math.Abs(ang-want) > 1e-9 {
			t.Fatalf("step %d subtends %g, want %g", i, ang, want)
		}
	}
}

func TestRingPointsRejectsLowSides(t *testing.T) {
	_, err := RingPoints(mathutil.Vec3{}, FixedUpFrame(mathutil.Vec3{0, 1, 0}), 1, 2)
	if !errors.Is(err, meshbuf.ErrInvalidTopology) {
		t.Fatalf("sides=2: got %v, want ErrInvalidTopology", err)
	}
}

func TestBridgeRingsTriangleCount(t *testing.T) {
	b := &meshbuf.Buffer{}
	const sides = 6
	f := FixedUpFrame(mathutil.Vec3{0, 0, 1})
	a, err := EmitRing(b, RingEntry{Radius: 1, Frame: f, WeightA: 1}, sides)
	if err != nil {
		t.Fatalf("EmitRing: %v", err)
	}
	c, err := EmitRing(b, RingEntry{Center: mathutil.Vec3{0, 0, 1}, Radius: 1, Frame: f, WeightA: 1}, sides)
	if err != nil {
		t.Fatalf("EmitRing: %v", err)
	}

	BridgeRings(b, a, c, sides)
	if got := b.TriangleCount(); got != 2*sides {
		t.Fatalf("bridge made %d triangles, want %d", got, 2*sides)
	}
	if err := b.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestFanCapTriangleCount(t *testing.T) {
	b := &meshbuf.Buffer{}
	const sides = 5
	f := FixedUpFrame(mathutil.Vec3{0, 0, 1})
	start, err := EmitRing(b, RingEntry{Radius: 1, Frame: f, WeightA: 1}, sides)
	if err != nil {
		t.Fatalf("EmitRing: %v", err)
	}

	FanCap(b, start, sides, mathutil.Vec3{0, 0, 1}, mathutil.Vec3{0, 0, 1}, 1, 0, false)
	if got := b.TriangleCount(); got != sides {
		t.Fatalf("fan cap made %d triangles, want %d", got, sides)
	}
	if got := b.VertexCount(); got != sides+1 {
		t.Fatalf("fan cap: %d vertices, want %d", got, sides+1)
	}
}

func TestTaperCapTriangleCount(t *testing.T) {
	const sides = 8
	const segments = 2

	b := &meshbuf.Buffer{}
	f := FixedUpFrame(mathutil.Vec3{0, 0, 1})
	start, err := EmitRing(b, RingEntry{Radius: 1, Frame: f, WeightA: 1}, sides)
	if err != nil {
		t.Fatalf("EmitRing: %v", err)
	}

	TaperCap(b, start, sides, segments, mathutil.Vec3{0, 0, 1}, mathutil.Vec3{}, 0, 1, 0, 1, false)

	want := segments*2*sides + sides
	if got := b.TriangleCount(); got != want {
		t.Fatalf("taper cap made %d triangles, want %d", got, want)
	}
	if err := b.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestTaperCapWeightBlend(t *testing.T) {
	const sides = 4
	b := &meshbuf.Buffer{}
	f := FixedUpFrame(mathutil.Vec3{0, 0, 1})
	start, _ := EmitRing(b, RingEntry{Radius: 1, Frame: f, BoneA: 2, BoneB: 2, WeightA: 1}, sides)

	TaperCap(b, start, sides, 2, mathutil.Vec3{0, 0, 1}, mathutil.Vec3{}, 2, 5, 0, 1, false)

	for i := 0; i < b.VertexCount(); i++ {
		sum := b.SkinWeights[i*4] + b.SkinWeights[i*4+1]
		if math.Abs(sum-1) > 1e-5 {
			t.Fatalf("vertex %d weights sum to %g", i, sum)
		}
	}
	// The apex vertex pins fully to the apex bone.
	last := b.VertexCount() - 1
	if b.SkinIndices[last*4] != 5 || b.SkinWeights[last*4] != 1 {
		t.Fatalf("apex vertex bone=%d weight=%g, want bone 5 weight 1",
			b.SkinIndices[last*4], b.SkinWeights[last*4])
	}
}

func TestChainFramesStraightNoDrift(t *testing.T) {
	points := make([]mathutil.Vec3, 10)
	for i := range points {
		points[i] = mathutil.Vec3{0, 0, float64(i)}
	}

	frames := ChainFrames(points, true)
	first := frames[0]
	for i, f := range frames {
		if f.Axis1.Sub(first.Axis1).Len() > 1e-9 || f.Axis2.Sub(first.Axis2).Len() > 1e-9 {
			t.Fatalf("frame %d drifted on a straight chain: %v vs %v", i, f, first)
		}
	}
}

func TestChainFramesBendBounded(t *testing.T) {
	// 90 degree bend: the transported axis must rotate by no more than
	// the bend angle itself.
	points := []mathutil.Vec3{
		{0, 0, 0}, {0, 0, 1}, {0, 0, 2}, {1, 0, 3}, {2, 0, 3}, {3, 0, 3},
	}
	frames := ChainFrames(points, true)
	for i := 1; i < len(frames); i++ {
		prev, cur := frames[i-1], frames[i]
		bend := math.Acos(mathutil.Clamp(prev.Tangent.Dot(cur.Tangent), -1, 1))
		twist := math.Acos(mathutil.Clamp(prev.Axis1.Dot(cur.Axis1), -1, 1))
		if twist > bend+1e-6 {
			t.Fatalf("frame %d rotated %g for a bend of only %g", i, twist, bend)
		}
	}
}

func TestFixedUpFrameVerticalTangent(t *testing.T) {
	f := FixedUpFrame(mathutil.Vec3{0, 1, 0})
	if math.Abs(f.Axis1.Dot(f.Tangent)) > 1e-9 || math.Abs(f.Axis2.Dot(f.Tangent)) > 1e-9 {
		t.Fatalf("axes not perpendicular to tangent: %v", f)
	}
	if f.Axis1.Len() < 0.5 || f.Axis2.Len() < 0.5 {
		t.Fatalf("degenerate axes for vertical tangent: %v", f)
	}
}

func TestBiasT(t *testing.T) {
	if got := BiasT(0.3, 0); got != 0.3 {
		t.Fatalf("zero bias changed t: %g", got)
	}
	for _, bias := range []float64{-0.8, -0.2, 0.2, 0.8} {
		if got := BiasT(0, bias); got != 0 {
			t.Fatalf("BiasT(0,%g) = %g, want 0", bias, got)
		}
		if got := BiasT(1, bias); math.Abs(got-1) > 1e-12 {
			t.Fatalf("BiasT(1,%g) = %g, want 1", bias, got)
		}
		// Monotone.
		prev := -1.0
		for x := 0.0; x <= 1.0; x += 0.05 {
			y := BiasT(x, bias)
			if y < prev {
				t.Fatalf("BiasT not monotone at %g for bias %g", x, bias)
			}
			prev = y
		}
	}
	if BiasT(0.5, 0.5) >= 0.5 {
		t.Fatalf("positive bias should pull t=0.5 below 0.5, got %g", BiasT(0.5, 0.5))
	}
	if BiasT(0.5, -0.5) <= 0.5 {
		t.Fatalf("negative bias should push t=0.5 above 0.5, got %g", BiasT(0.5, -0.5))
	}
}
