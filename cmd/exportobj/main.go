// Command exportobj assembles a creature and writes it as a Wavefront
// OBJ file for inspection in external tools.
package main

import (
	"flag"

	"creature-forge/internal/creature"
	"creature-forge/internal/logging"
	"creature-forge/internal/objfile"
	"creature-forge/internal/pose"
	"creature-forge/internal/rig"
)

func main() {
	defPath := flag.String("def", "", "species definition JSON (default: built-in elephant)")
	out := flag.String("out", "creature.obj", "output OBJ path")
	seed := flag.Uint64("seed", 1, "shape variance seed")
	gait := flag.String("gait", "rest", "pose: rest, idle, walk, curious")
	phase := flag.Float64("phase", 0, "gait phase/time")
	flag.Parse()

	def := creature.Elephant()
	if *defPath != "" {
		var err error
		def, err = creature.LoadDefinition(*defPath)
		if err != nil {
			logging.Fatal("load definition", "err", err)
		}
	}

	var rotations rig.Rotations
	switch *gait {
	case "rest":
	case "idle":
		rotations = pose.Idle(*phase)
	case "walk":
		rotations = pose.Walk(*phase)
	case "curious":
		rotations = pose.Curious(*phase)
	default:
		logging.Fatal("unknown gait", "gait", *gait)
	}

	built, err := creature.Assemble(def, creature.AssembleOptions{
		Seed:      *seed,
		Rotations: rotations,
	})
	if err != nil {
		logging.Fatal("assemble", "err", err)
	}

	if err := objfile.WriteFile(*out, built.Mesh, def.Name); err != nil {
		logging.Fatal("write obj", "err", err)
	}
	logging.Info("wrote obj", "path", *out,
		"vertices", built.Mesh.VertexCount(), "triangles", built.Mesh.TriangleCount())
}
