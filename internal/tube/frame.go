// Package tube provides the low-level primitives for extruded surfaces:
// oriented frames along a chain, perimeter rings, quad-strip bridging,
// end caps, and the skin-weight conventions shared by the part generators.
package tube

import (
	"math"

	"creature-forge/internal/mathutil"
)

// Frame is an oriented local basis at a point along a chain. Axis1 and
// Axis2 span the ring plane perpendicular to Tangent.
type Frame struct {
	Tangent mathutil.Vec3
	Axis1   mathutil.Vec3
	Axis2   mathutil.Vec3
}

var (
	worldUp     = mathutil.Vec3{0, 1, 0}
	secondaryUp = mathutil.Vec3{1, 0, 0}
	// fallbackTangent substitutes for zero-length segment directions.
	fallbackTangent = mathutil.Vec3{0, 1, 0}
)

// FixedUpFrame builds a frame from a tangent using the world up vector,
// swapping to a secondary axis when the tangent is near-parallel to up.
// Cheap, but can show a twist discontinuity at the swap threshold.
func FixedUpFrame(tangent mathutil.Vec3) Frame {
	t := tangent.NormalizeOr(fallbackTangent)
	up := worldUp
	if math.Abs(t.Dot(up)) > 0.99 {
		up = secondaryUp
	}
	a1 := t.Cross(up).NormalizeOr(secondaryUp)
	a2 := t.Cross(a1).Normalize()
	return Frame{Tangent: t, Axis1: a1, Axis2: a2}
}

// TransportFrame carries prev's ring plane onto a new tangent by
// projecting the previous axis onto the plane perpendicular to it. This
// eliminates the sudden twist the fixed-up heuristic can produce.
func TransportFrame(prev Frame, tangent mathutil.Vec3) Frame {
	t := tangent.NormalizeOr(prev.Tangent)
	a1 := mathutil.ProjectOnPlane(prev.Axis1, t)
	if a1.Len() < 1e-9 {
		// Right-angle degeneracy: reseed rather than emit a zero axis.
		return FixedUpFrame(t)
	}
	a1 = a1.Normalize()
	a2 := t.Cross(a1).Normalize()
	return Frame{Tangent: t, Axis1: a1, Axis2: a2}
}

// ChainTangents computes per-point tangents for a chain: central
// differences at interior points, one-sided at the ends. Zero-length
// segments fall back to a stable default axis instead of failing.
func ChainTangents(points []mathutil.Vec3) []mathutil.Vec3 {
	n := len(points)
	out := make([]mathutil.Vec3, n)
	if n == 1 {
		out[0] = fallbackTangent
		return out
	}
	for i := range points {
		var d mathutil.Vec3
		switch {
		case i == 0:
			d = points[1].Sub(points[0])
		case i == n-1:
			d = points[n-1].Sub(points[n-2])
		default:
			d = points[i+1].Sub(points[i-1])
		}
		out[i] = d.NormalizeOr(fallbackTangent)
	}
	return out
}

// ChainFrames builds one frame per point. With transport enabled the first
// frame seeds via fixed-up and the rest parallel-transport from it; chains
// where surface smoothness matters (trunk, tail) should enable it.
func ChainFrames(points []mathutil.Vec3, transport bool) []Frame {
	tangents := ChainTangents(points)
	frames := make([]Frame, len(points))
	for i, t := range tangents {
		if transport && i > 0 {
			frames[i] = TransportFrame(frames[i-1], t)
		} else {
			frames[i] = FixedUpFrame(t)
		}
	}
	return frames
}
