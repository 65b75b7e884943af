package creature

import (
	"fmt"

	"creature-forge/internal/blend"
	"creature-forge/internal/logging"
	"creature-forge/internal/meshbuf"
	"creature-forge/internal/parts"
	"creature-forge/internal/rig"
)

// AssembleOptions drives one mesh build.
type AssembleOptions struct {
	// Seed selects the shape-variance draw. The same seed and definition
	// always produce byte-identical geometry.
	Seed uint64
	// Rotations poses the rig before sampling; nil builds the rest pose.
	Rotations rig.Rotations
}

// Built is the output of one assembly: the merged skinned mesh and the
// rig it deforms against.
type Built struct {
	Mesh *meshbuf.Buffer
	Rig  *rig.Rig
}

// Assemble builds a creature mesh from its definition: generate every
// part against the posed rig, stitch the flagged appendages into the
// torso, merge everything into one buffer. It is a pure function of
// (definition, seed, rotations); nothing is cached or shared.
func Assemble(def Definition, opts AssembleOptions) (*Built, error) {
	def = def.Variant(opts.Seed)

	r, err := rig.New(def.Joints)
	if err != nil {
		return nil, fmt.Errorf("creature %s: %w", def.Name, err)
	}
	pose := r.Solve(opts.Rotations)

	torso, err := parts.Torso(pose, parts.TorsoOptions{
		Spine:           def.Torso.Spine,
		Radii:           def.Torso.Radii,
		Sides:           def.Torso.Sides,
		RingsPerSegment: def.Torso.RingsPerSegment,
		Bias:            def.Torso.Bias,
		CapSegments:     def.Torso.CapSegments,
		CapExtent:       def.Torso.CapExtent,
	})
	if err != nil {
		return nil, fmt.Errorf("creature %s: torso: %w", def.Name, err)
	}

	var extras []*meshbuf.Buffer
	if def.Head != nil {
		skull, err := parts.Head(pose, parts.HeadOptions{
			Joint:        def.Head.Joint,
			Radius:       def.Head.Radius,
			Subdivisions: def.Head.Subdivisions,
		})
		if err != nil {
			return nil, fmt.Errorf("creature %s: head: %w", def.Name, err)
		}
		extras = append(extras, skull)
	}

	stitchOpts := blend.Options{
		SpanFraction: def.Blend.SpanFraction,
		Clearance:    def.Blend.Clearance,
	}

	attach := func(name string, buf *meshbuf.Buffer, stitch bool) error {
		if !stitch || !def.Blend.Enabled {
			extras = append(extras, buf)
			return nil
		}
		res, err := blend.Stitch(torso, buf, stitchOpts)
		if err != nil {
			return fmt.Errorf("stitch %s: %w", name, err)
		}
		if !res.Stitched {
			logging.Warn("part left unstitched", "creature", def.Name, "part", name,
				"torsoSides", torso.Ring.Sides, "partSides", buf.Ring.Sides)
		}
		torso = res.Host
		extras = append(extras, res.Appendage)
		if res.Bridge != nil {
			extras = append(extras, res.Bridge)
		}
		return nil
	}

	for _, t := range def.Tails {
		buf, err := parts.Tail(pose, parts.TailOptions{
			Joints:          t.Joints,
			Radii:           []float64{t.BaseRadius, t.TipRadius},
			Sides:           t.Sides,
			RingsPerSegment: t.RingsPerSegment,
			Bias:            t.Bias,
		})
		if err != nil {
			return nil, fmt.Errorf("creature %s: tail %s: %w", def.Name, t.Name, err)
		}
		if err := attach(t.Name, buf, t.Stitch); err != nil {
			return nil, fmt.Errorf("creature %s: %w", def.Name, err)
		}
	}

	for _, l := range def.Limbs {
		buf, err := parts.Limb(pose, parts.LimbOptions{
			Joints:          l.Joints,
			Radii:           l.Radii,
			Sides:           l.Sides,
			RingsPerSegment: l.RingsPerSegment,
			TStops:          l.TStops,
		})
		if err != nil {
			return nil, fmt.Errorf("creature %s: limb %s: %w", def.Name, l.Name, err)
		}
		if err := attach(l.Name, buf, l.Stitch); err != nil {
			return nil, fmt.Errorf("creature %s: %w", def.Name, err)
		}
	}

	all := append([]*meshbuf.Buffer{torso}, extras...)
	mesh, err := meshbuf.Merge(all)
	if err != nil {
		return nil, fmt.Errorf("creature %s: merge: %w", def.Name, err)
	}
	return &Built{Mesh: mesh, Rig: r}, nil
}
