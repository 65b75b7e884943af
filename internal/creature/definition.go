// Package creature turns data-driven creature definitions into skinned
// meshes: it owns the definition schema, the built-in species, seeded
// shape variance, and the assembler that runs the part generators and
// stitches the result into one buffer.
package creature

import (
	"encoding/json"
	"fmt"
	"os"

	"creature-forge/internal/rig"
)

// Definition describes one species as plain data: a joint tree plus the
// part recipes that dress it. Species are data files, not code.
type Definition struct {
	Name   string          `json:"name"`
	Joints []rig.JointSpec `json:"joints"`

	Torso Torso  `json:"torso"`
	Head  *Head  `json:"head,omitempty"`
	Tails []Tail `json:"tails,omitempty"`
	Limbs []Limb `json:"limbs,omitempty"`
	Blend Blend  `json:"blend"`

	// Variance maps a part group to its shape-jitter amplitude. A group
	// with amplitude a scales by 1 + (u-0.5)*a for a seeded u in [0,1).
	Variance map[string]float64 `json:"variance,omitempty"`
}

// Torso is the recipe for the main body tube.
type Torso struct {
	Spine           []string  `json:"spine"`
	Radii           []float64 `json:"radii"`
	Sides           int       `json:"sides"`
	RingsPerSegment int       `json:"ringsPerSegment"`
	Bias            float64   `json:"bias,omitempty"`
	CapSegments     int       `json:"capSegments,omitempty"`
	CapExtent       float64   `json:"capExtent,omitempty"`
	Group           string    `json:"group,omitempty"`
}

// Head is the recipe for the skull ball riding the head joint. Species
// without one end the spine on the torso cap alone.
type Head struct {
	Joint        string  `json:"joint"`
	Radius       float64 `json:"radius"`
	Subdivisions int     `json:"subdivisions,omitempty"`
	Group        string  `json:"group,omitempty"`
}

// Tail is the recipe for a thin tapering appendage: tail, trunk, tusk.
type Tail struct {
	Name            string   `json:"name"`
	Joints          []string `json:"joints"`
	BaseRadius      float64  `json:"baseRadius"`
	TipRadius       float64  `json:"tipRadius"`
	Sides           int      `json:"sides"`
	RingsPerSegment int      `json:"ringsPerSegment,omitempty"`
	Bias            float64  `json:"bias,omitempty"`
	Stitch          bool     `json:"stitch,omitempty"`
	Group           string   `json:"group,omitempty"`
}

// Limb is the recipe for a leg, arm, or flap.
type Limb struct {
	Name            string    `json:"name"`
	Joints          []string  `json:"joints"`
	Radii           []float64 `json:"radii"`
	Sides           int       `json:"sides"`
	RingsPerSegment int       `json:"ringsPerSegment,omitempty"`
	TStops          []float64 `json:"tStops,omitempty"`
	Stitch          bool      `json:"stitch,omitempty"`
	Group           string    `json:"group,omitempty"`
}

// Blend configures branch stitching for the whole creature.
type Blend struct {
	Enabled      bool    `json:"enabled"`
	SpanFraction float64 `json:"spanFraction,omitempty"`
	Clearance    float64 `json:"clearance,omitempty"`
}

// LoadDefinition reads a species definition from a JSON file.
func LoadDefinition(path string) (Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Definition{}, fmt.Errorf("creature: read definition: %w", err)
	}
	var def Definition
	if err := json.Unmarshal(data, &def); err != nil {
		return Definition{}, fmt.Errorf("creature: parse definition %s: %w", path, err)
	}
	if err := def.validate(); err != nil {
		return Definition{}, fmt.Errorf("creature: definition %s: %w", path, err)
	}
	return def, nil
}

func (d *Definition) validate() error {
	if d.Name == "" {
		return fmt.Errorf("missing name")
	}
	if len(d.Joints) == 0 {
		return fmt.Errorf("no joints")
	}
	if len(d.Torso.Spine) < 2 {
		return fmt.Errorf("torso spine needs at least 2 joints")
	}
	if d.Head != nil {
		if d.Head.Joint == "" {
			return fmt.Errorf("head needs a joint")
		}
		if d.Head.Radius <= 0 {
			return fmt.Errorf("head radius must be positive")
		}
	}
	for _, t := range d.Tails {
		if len(t.Joints) < 2 {
			return fmt.Errorf("tail %q needs at least 2 joints", t.Name)
		}
	}
	for _, l := range d.Limbs {
		if len(l.Joints) < 2 {
			return fmt.Errorf("limb %q needs at least 2 joints", l.Name)
		}
	}
	return nil
}
