package parts

import (
	"creature-forge/internal/meshbuf"
	"creature-forge/internal/rig"
)

// TorsoOptions shapes the body barrel between the hip and chest joints.
type TorsoOptions struct {
	Spine           []string
	Radii           []float64
	Sides           int
	RingsPerSegment int
	// Bias crowds rings toward the front of the spine when positive.
	Bias        float64
	CapSegments int
	// CapExtent pushes the rump and chest apexes outward, in end radii.
	CapExtent float64
}

// Torso builds the main body tube with bulged taper caps on both ends.
// The caps stay closed even when limbs are blended in later; the blender
// cuts its own openings.
func Torso(p *rig.Pose, o TorsoOptions) (*meshbuf.Buffer, error) {
	segs := o.CapSegments
	if segs < 1 {
		segs = 2
	}
	ext := o.CapExtent
	if ext == 0 {
		ext = 0.6
	}
	cap := Cap{Style: CapTaper, Segments: segs, Extent: ext}
	return Chain(p, ChainOptions{
		Joints:          o.Spine,
		Radii:           o.Radii,
		Sides:           o.Sides,
		RingsPerSegment: o.RingsPerSegment,
		Bias:            o.Bias,
		StartCap:        cap,
		EndCap:          cap,
	})
}

// NeckOptions shapes the neck-and-head column. The base stays open for
// blending into the torso; the head end closes with a taper cap.
type NeckOptions struct {
	Joints          []string
	Radii           []float64
	Sides           int
	RingsPerSegment int
	Bias            float64
	CapSegments     int
	CapExtent       float64
}

// Neck builds the neck tube, open at the base, tapered shut at the head.
func Neck(p *rig.Pose, o NeckOptions) (*meshbuf.Buffer, error) {
	segs := o.CapSegments
	if segs < 1 {
		segs = 2
	}
	ext := o.CapExtent
	if ext == 0 {
		ext = 0.8
	}
	return Chain(p, ChainOptions{
		Joints:          o.Joints,
		Radii:           o.Radii,
		Sides:           o.Sides,
		RingsPerSegment: o.RingsPerSegment,
		Bias:            o.Bias,
		EndCap:          Cap{Style: CapTaper, Segments: segs, Extent: ext},
	})
}

// TailOptions shapes a thin trailing appendage: tail, trunk, tentacle.
type TailOptions struct {
	Joints          []string
	Radii           []float64
	Sides           int
	RingsPerSegment int
	Bias            float64
	// TipExtent pushes the tip apex past the last joint, in tip radii.
	TipExtent float64
}

// Tail builds a thin tube with parallel-transport frames, so curled
// chains keep a smooth surface, and a pointed fan cap at the tip. The
// root ring stays open for blending.
func Tail(p *rig.Pose, o TailOptions) (*meshbuf.Buffer, error) {
	ext := o.TipExtent
	if ext == 0 {
		ext = 1.5
	}
	return Chain(p, ChainOptions{
		Joints:          o.Joints,
		Radii:           o.Radii,
		Sides:           o.Sides,
		RingsPerSegment: o.RingsPerSegment,
		Bias:            o.Bias,
		Transport:       true,
		EndCap:          Cap{Style: CapFan, Extent: ext},
	})
}

// LimbOptions shapes a leg or arm column from shoulder to foot.
type LimbOptions struct {
	Joints []string
	Radii  []float64
	Sides  int
	// TStops, when set, places rings at explicit chain parameters so
	// joints like knees and ankles get extra rings. Otherwise rings
	// spread uniformly per segment.
	TStops          []float64
	RingsPerSegment int
}

// Limb builds a leg tube, open at the top for blending into the torso
// and closed flat at the foot.
func Limb(p *rig.Pose, o LimbOptions) (*meshbuf.Buffer, error) {
	return Chain(p, ChainOptions{
		Joints:          o.Joints,
		Radii:           o.Radii,
		Sides:           o.Sides,
		RingsPerSegment: o.RingsPerSegment,
		TStops:          o.TStops,
		EndCap:          Cap{Style: CapFan, Extent: 0},
	})
}
