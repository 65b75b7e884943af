package creature

import "creature-forge/internal/rig"

func j(name, parent string, x, y, z float64) rig.JointSpec {
	return rig.JointSpec{Name: name, Parent: parent, Offset: [3]float64{x, y, z}}
}

// Elephant returns the built-in elephant species. The joint offsets and
// part radii put the shoulder at roughly 2.1 units and give the blocky
// low-poly silhouette: a decagonal body barrel, hexagonal trunk and
// legs, pentagonal tusks and tail, square ear flaps.
func Elephant() Definition {
	legRadii := func(hind bool) []float64 {
		if hind {
			return []float64{0.55, 0.5, 0.42, 0.38, 0.44}
		}
		return []float64{0.5, 0.45, 0.4, 0.38, 0.43}
	}
	frontLeg := func(side string) Limb {
		return Limb{
			Name:   "front_" + side + "_leg",
			Joints: []string{"front_" + side + "_collarbone", "front_" + side + "_upper", "front_" + side + "_lower", "front_" + side + "_foot"},
			Radii:  legRadii(false),
			Sides:  6,
			Stitch: true,
			Group:  "legs",
		}
	}
	backLeg := func(side string) Limb {
		return Limb{
			Name:   "back_" + side + "_leg",
			Joints: []string{"back_" + side + "_pelvis", "back_" + side + "_upper", "back_" + side + "_lower", "back_" + side + "_foot"},
			Radii:  legRadii(true),
			Sides:  6,
			Stitch: true,
			Group:  "legs",
		}
	}
	ear := func(side string) Limb {
		return Limb{
			Name:   "ear_" + side,
			Joints: []string{"ear_" + side, "ear_" + side + "_tip"},
			Radii:  []float64{0.65, 0.35},
			Sides:  4,
			Group:  "head",
		}
	}
	tusk := func(side string) Tail {
		return Tail{
			Name:       "tusk_" + side,
			Joints:     []string{"tusk_" + side, "tusk_" + side + "_tip"},
			BaseRadius: 0.12,
			TipRadius:  0.02,
			Sides:      5,
			Group:      "tusks",
		}
	}

	return Definition{
		Name: "elephant",
		Joints: []rig.JointSpec{
			j("root", "", 0, 0, 0),
			j("spine_base", "root", 0, 2.1, 0),
			j("spine_mid", "spine_base", 0, -0.1, 1.1),
			j("spine_neck", "spine_mid", 0, 0.3, 0.9),
			j("head", "spine_neck", 0, -0.1, 0.7),
			j("trunk_base", "head", 0, -0.3, 0.6),
			j("trunk_mid1", "trunk_base", 0, -0.5, 0.1),
			j("trunk_mid2", "trunk_mid1", 0, -0.5, 0),
			j("trunk_tip", "trunk_mid2", 0, -0.4, 0),
			j("tusk_left", "head", 0.3, -0.3, 0.4),
			j("tusk_left_tip", "tusk_left", 0.1, 0.3, 0.5),
			j("tusk_right", "head", -0.3, -0.3, 0.4),
			j("tusk_right_tip", "tusk_right", -0.1, 0.3, 0.5),
			j("ear_left", "head", 0.4, 0.1, -0.2),
			j("ear_left_tip", "ear_left", 0.6, -0.6, -0.1),
			j("ear_right", "head", -0.4, 0.1, -0.2),
			j("ear_right_tip", "ear_right", -0.6, -0.6, -0.1),
			j("tail_base", "spine_base", 0, 0.3, -0.3),
			j("tail_mid", "tail_base", 0, -0.6, -0.2),
			j("tail_tip", "tail_mid", 0, -0.6, 0),
			j("front_left_collarbone", "spine_mid", 0.4, -0.3, 0.3),
			j("front_right_collarbone", "spine_mid", -0.4, -0.3, 0.3),
			j("back_left_pelvis", "spine_base", 0.45, -0.2, 0.1),
			j("back_right_pelvis", "spine_base", -0.45, -0.2, 0.1),
			j("front_left_upper", "front_left_collarbone", 0, -0.8, 0),
			j("front_left_lower", "front_left_upper", 0, -0.8, 0.05),
			j("front_left_foot", "front_left_lower", 0, -0.4, 0.05),
			j("front_right_upper", "front_right_collarbone", 0, -0.8, 0),
			j("front_right_lower", "front_right_upper", 0, -0.8, 0.05),
			j("front_right_foot", "front_right_lower", 0, -0.4, 0.05),
			j("back_left_upper", "back_left_pelvis", 0, -0.8, 0.05),
			j("back_left_lower", "back_left_upper", 0, -0.8, -0.1),
			j("back_left_foot", "back_left_lower", 0, -0.4, 0.1),
			j("back_right_upper", "back_right_pelvis", 0, -0.8, 0.05),
			j("back_right_lower", "back_right_upper", 0, -0.8, -0.1),
			j("back_right_foot", "back_right_lower", 0, -0.4, 0.1),
		},
		Torso: Torso{
			Spine:           []string{"spine_base", "spine_mid", "spine_neck", "head"},
			Radii:           []float64{1.15, 1.35, 1.15, 0.9},
			Sides:           10,
			RingsPerSegment: 2,
			Group:           "head",
		},
		Head: &Head{
			Joint:        "head",
			Radius:       0.95,
			Subdivisions: 1,
			Group:        "head",
		},
		Tails: []Tail{
			{
				Name:            "trunk",
				Joints:          []string{"trunk_base", "trunk_mid1", "trunk_mid2", "trunk_tip"},
				BaseRadius:      0.35,
				TipRadius:       0.1,
				Sides:           6,
				RingsPerSegment: 2,
			},
			{
				Name:       "tail",
				Joints:     []string{"tail_base", "tail_mid", "tail_tip"},
				BaseRadius: 0.15,
				TipRadius:  0.05,
				Sides:      5,
			},
			tusk("left"),
			tusk("right"),
		},
		Limbs: []Limb{
			frontLeg("left"), frontLeg("right"),
			backLeg("left"), backLeg("right"),
			ear("left"), ear("right"),
		},
		Blend: Blend{Enabled: true, SpanFraction: 0.3, Clearance: 0.08},
		Variance: map[string]float64{
			"legs":  0.2,
			"tusks": 0.3,
			"head":  0.15,
		},
	}
}
