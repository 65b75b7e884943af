// Package parts generates the individual body-part meshes of a creature.
// Every part is a tube extruded along a posed joint chain; the named
// generators (Torso, Neck, Tail, Limb) are presets over one shared core.
package parts

import (
	"fmt"

	"creature-forge/internal/mathutil"
	"creature-forge/internal/meshbuf"
	"creature-forge/internal/rig"
	"creature-forge/internal/tube"
)

// CapStyle selects how a tube end is closed.
type CapStyle int

const (
	CapNone  CapStyle = iota // open ring, left for stitching or occlusion
	CapFan                   // single apex vertex, flat or pointed
	CapTaper                 // shrinking ring cascade ending in an apex
)

// Cap configures one tube end.
type Cap struct {
	Style    CapStyle
	Segments int     // taper rings, CapTaper only
	Extent   float64 // apex push past the end ring, in radii
}

// ChainOptions drives the shared chain-tube core.
type ChainOptions struct {
	// Joints names the bone chain, ordered root-to-tip. At least two.
	Joints []string
	// Radii samples the tube radius along the chain. A per-joint array
	// puts one sample at each joint; a longer array tapers more finely.
	Radii           []float64
	Sides           int
	RingsPerSegment int
	// Bias skews ring spacing along the chain. See tube.BiasT.
	Bias float64
	// Transport enables parallel-transport frames instead of the
	// fixed-up heuristic. Use it on chains that bend past vertical.
	Transport bool
	// TStops, when non-nil, overrides uniform ring placement with
	// explicit chain parameters in [0,1]. Must be ascending and cover
	// both endpoints. Bias is ignored when set.
	TStops   []float64
	StartCap Cap
	EndCap   Cap
}

// Chain extrudes a tube along a posed joint chain. Vertices carry radial
// normals, cylindrical UVs, and two-slot skin weights blending between
// the chain bones that bracket each ring; the first and last rings pin
// fully to their end bones so seams with neighbouring parts stay rigid.
func Chain(p *rig.Pose, opts ChainOptions) (*meshbuf.Buffer, error) {
	if len(opts.Joints) < 2 {
		return nil, fmt.Errorf("parts: chain needs at least 2 joints, got %d", len(opts.Joints))
	}
	if len(opts.Radii) < 2 {
		return nil, fmt.Errorf("parts: need at least 2 radius samples, got %d", len(opts.Radii))
	}
	if opts.Sides < 3 {
		return nil, fmt.Errorf("parts: %d sides: %w", opts.Sides, meshbuf.ErrInvalidTopology)
	}

	points, err := p.WorldPositions(opts.Joints)
	if err != nil {
		return nil, err
	}
	bones := make([]int, len(opts.Joints))
	for i, name := range opts.Joints {
		bones[i], err = p.JointIndex(name)
		if err != nil {
			return nil, err
		}
	}

	stops, err := ringStops(opts, len(points))
	if err != nil {
		return nil, err
	}

	entries := make([]tube.RingEntry, len(stops))
	centers := make([]mathutil.Vec3, len(stops))
	segs := len(points) - 1
	for i, t := range stops {
		s := t * float64(segs)
		seg := int(s)
		if seg >= segs {
			seg = segs - 1
		}
		local := s - float64(seg)

		e := tube.RingEntry{
			Center: mathutil.VecLerp(points[seg], points[seg+1], local),
			Radius: radiusAt(opts.Radii, t),
			BoneA:  bones[seg],
			BoneB:  bones[seg+1],
			V:      t,
		}
		switch {
		case i == 0:
			e.BoneB, e.WeightA, e.WeightB = e.BoneA, 1, 0
		case i == len(stops)-1:
			e.BoneA, e.WeightA, e.WeightB = e.BoneB, 1, 0
		default:
			e.WeightA, e.WeightB = 1-local, local
		}
		entries[i] = e
		centers[i] = e.Center
	}

	frames := tube.ChainFrames(centers, opts.Transport)
	for i := range entries {
		entries[i].Frame = frames[i]
	}

	b := &meshbuf.Buffer{}
	prev := -1
	for _, e := range entries {
		start, err := tube.EmitRing(b, e, opts.Sides)
		if err != nil {
			return nil, err
		}
		if prev >= 0 {
			tube.BridgeRings(b, prev, start, opts.Sides)
		}
		prev = start
	}

	first, last := entries[0], entries[len(entries)-1]
	firstStart := b.Ring.Rings[0].Start
	lastStart := b.Ring.Rings[len(b.Ring.Rings)-1].Start
	emitCap(b, opts.StartCap, opts.Sides, firstStart, first, first.Frame.Tangent.Scale(-1), true)
	emitCap(b, opts.EndCap, opts.Sides, lastStart, last, last.Frame.Tangent, false)

	return b, nil
}

func emitCap(b *meshbuf.Buffer, c Cap, sides, ringStart int, e tube.RingEntry, outward mathutil.Vec3, flip bool) {
	if c.Style == CapNone {
		return
	}
	apex := e.Center.Add(outward.Scale(e.Radius * c.Extent))
	bone := e.BoneA
	vEnd := 1.0
	if flip {
		vEnd = 0
	}
	switch c.Style {
	case CapFan:
		tube.FanCap(b, ringStart, sides, apex, outward, vEnd, bone, flip)
	case CapTaper:
		tube.TaperCap(b, ringStart, sides, c.Segments, apex, e.Center, bone, bone, e.V, vEnd, flip)
	}
}

func radiusAt(samples []float64, t float64) float64 {
	s := t * float64(len(samples)-1)
	i := int(s)
	if i >= len(samples)-1 {
		return samples[len(samples)-1]
	}
	return mathutil.Lerp(samples[i], samples[i+1], s-float64(i))
}

func ringStops(opts ChainOptions, n int) ([]float64, error) {
	if opts.TStops != nil {
		if len(opts.TStops) < 2 {
			return nil, fmt.Errorf("parts: need at least 2 ring stops, got %d", len(opts.TStops))
		}
		if opts.TStops[0] != 0 || opts.TStops[len(opts.TStops)-1] != 1 {
			return nil, fmt.Errorf("parts: ring stops must span [0,1]")
		}
		for i := 1; i < len(opts.TStops); i++ {
			if opts.TStops[i] <= opts.TStops[i-1] {
				return nil, fmt.Errorf("parts: ring stops must be strictly ascending")
			}
		}
		return opts.TStops, nil
	}

	rps := opts.RingsPerSegment
	if rps < 1 {
		rps = 1
	}
	total := (n-1)*rps + 1
	stops := make([]float64, total)
	for i := range stops {
		stops[i] = tube.BiasT(float64(i)/float64(total-1), opts.Bias)
	}
	return stops, nil
}
