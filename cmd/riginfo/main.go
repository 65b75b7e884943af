// Command riginfo prints a creature's joint tree with rest offsets and
// world positions, for debugging definitions.
package main

import (
	"flag"
	"fmt"
	"os"

	"creature-forge/internal/creature"
	"creature-forge/internal/logging"
	"creature-forge/internal/meshbuf"
	"creature-forge/internal/parts"
	"creature-forge/internal/rig"
)

func main() {
	defPath := flag.String("def", "", "species definition JSON (default: built-in elephant)")
	flag.Parse()

	def := creature.Elephant()
	if *defPath != "" {
		var err error
		def, err = creature.LoadDefinition(*defPath)
		if err != nil {
			logging.Fatal("load definition", "err", err)
		}
	}

	r, err := rig.New(def.Joints)
	if err != nil {
		logging.Fatal("build rig", "err", err)
	}
	p := r.Solve(nil)

	fmt.Printf("species: %s  joints: %d\n\n", def.Name, r.JointCount())
	for i := 0; i < r.JointCount(); i++ {
		j := r.Joint(i)
		parent := "-"
		if j.Parent >= 0 {
			parent = r.Joint(j.Parent).Name
		}
		w, _ := p.WorldPosition(j.Name)
		fmt.Printf("%-26s parent=%-26s rest=(%6.2f %6.2f %6.2f) world=(%6.2f %6.2f %6.2f)\n",
			j.Name, parent, j.Rest[0], j.Rest[1], j.Rest[2], w[0], w[1], w[2])
	}

	if err := printParts(def, p); err != nil {
		fmt.Fprintf(os.Stderr, "\n%v\n", err)
		os.Exit(1)
	}
}

// printParts generates every part buffer and prints chain length and
// mesh statistics. A failed part aborts with its error.
func printParts(def creature.Definition, p *rig.Pose) error {
	fmt.Printf("\n%-14s %-7s %9s %9s %10s\n", "part", "joints", "length", "vertices", "triangles")

	b, err := parts.Torso(p, parts.TorsoOptions{
		Spine:           def.Torso.Spine,
		Radii:           def.Torso.Radii,
		Sides:           def.Torso.Sides,
		RingsPerSegment: def.Torso.RingsPerSegment,
		Bias:            def.Torso.Bias,
		CapSegments:     def.Torso.CapSegments,
		CapExtent:       def.Torso.CapExtent,
	})
	if err != nil {
		return fmt.Errorf("torso: %w", err)
	}
	printPart("torso", def.Torso.Spine, p, b)

	if def.Head != nil {
		b, err := parts.Head(p, parts.HeadOptions{
			Joint:        def.Head.Joint,
			Radius:       def.Head.Radius,
			Subdivisions: def.Head.Subdivisions,
		})
		if err != nil {
			return fmt.Errorf("head: %w", err)
		}
		printPart("head", []string{def.Head.Joint}, p, b)
	}

	for _, t := range def.Tails {
		b, err := parts.Tail(p, parts.TailOptions{
			Joints:          t.Joints,
			Radii:           []float64{t.BaseRadius, t.TipRadius},
			Sides:           t.Sides,
			RingsPerSegment: t.RingsPerSegment,
			Bias:            t.Bias,
		})
		if err != nil {
			return fmt.Errorf("tail %s: %w", t.Name, err)
		}
		printPart(t.Name, t.Joints, p, b)
	}
	for _, l := range def.Limbs {
		b, err := parts.Limb(p, parts.LimbOptions{
			Joints:          l.Joints,
			Radii:           l.Radii,
			Sides:           l.Sides,
			RingsPerSegment: l.RingsPerSegment,
			TStops:          l.TStops,
		})
		if err != nil {
			return fmt.Errorf("limb %s: %w", l.Name, err)
		}
		printPart(l.Name, l.Joints, p, b)
	}
	return nil
}

func printPart(name string, joints []string, p *rig.Pose, b *meshbuf.Buffer) {
	pts, _ := p.WorldPositions(joints)
	length := 0.0
	for i := 1; i < len(pts); i++ {
		length += pts[i].Dist(pts[i-1])
	}
	fmt.Printf("%-14s %-7d %9.3f %9d %10d\n",
		name, len(joints), length, b.VertexCount(), b.TriangleCount())
}
