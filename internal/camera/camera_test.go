package camera

import (
	"math"
	"testing"

	"creature-forge/internal/mathutil"
)

// box is the xyz-flat corner set of a 2 x 4 x 0 slab.
var box = []float64{
	0, 0, 0,
	2, 0, 0,
	0, 4, 0,
	2, 4, 0,
}

func TestFitViewCentersAndScales(t *testing.T) {
	fit := FitView(box, mathutil.Mat3Identity(), 100, 10)

	want := mathutil.Vec3{1, 2, 0}
	for k := 0; k < 3; k++ {
		if math.Abs(fit.Center[k]-want[k]) > 1e-9 {
			t.Fatalf("center %v, want %v", fit.Center, want)
		}
	}
	// The tall axis spans 4 units into 80 usable pixels.
	if math.Abs(fit.Scale-20) > 1e-9 {
		t.Fatalf("scale %g, want 20", fit.Scale)
	}
}

func TestProjectKnownCorners(t *testing.T) {
	r := mathutil.Mat3Identity()
	fit := FitView(box, r, 100, 10)
	px, py, pz := Project(box, r, fit, 100)

	if len(px) != 4 || len(py) != 4 || len(pz) != 4 {
		t.Fatalf("projected %d/%d/%d vertices", len(px), len(py), len(pz))
	}
	// Origin corner lands low-left of center; y flips.
	if math.Abs(px[0]-30) > 1e-9 || math.Abs(py[0]-90) > 1e-9 {
		t.Fatalf("corner 0 at (%g, %g), want (30, 90)", px[0], py[0])
	}
	// Far corner mirrors it through the viewport center.
	if math.Abs(px[3]-70) > 1e-9 || math.Abs(py[3]-10) > 1e-9 {
		t.Fatalf("corner 3 at (%g, %g), want (70, 10)", px[3], py[3])
	}
	for i, z := range pz {
		if math.Abs(z) > 1e-9 {
			t.Fatalf("flat slab vertex %d has depth %g", i, z)
		}
	}
}

func TestFitViewQuarterTurn(t *testing.T) {
	// A quarter yaw turns the wide face edge-on: the x span collapses
	// and the y span alone drives the scale.
	slab := []float64{
		-3, 0, 0,
		3, 0, 0,
		0, 1, 0,
	}
	r := Orbit{Yaw: math.Pi / 2}.Rotation()
	fit := FitView(slab, r, 100, 10)
	if math.Abs(fit.Scale-80) > 1e-6 {
		t.Fatalf("scale %g, want 80", fit.Scale)
	}
}

func TestFitViewDegenerate(t *testing.T) {
	point := []float64{1, 1, 1}
	fit := FitView(point, mathutil.Mat3Identity(), 64, 8)
	if math.IsInf(fit.Scale, 0) || math.IsNaN(fit.Scale) {
		t.Fatalf("degenerate fit scale %g", fit.Scale)
	}
}
