// Package pose generates per-frame joint rotations: layered sine waves
// for breathing, head motion, trunk sway, and a four-beat walk cycle.
// Rotations target joints by name; joints a rig does not have are
// silently skipped, so one gait serves related species.
package pose

import (
	"math"

	"creature-forge/internal/mathutil"
	"creature-forge/internal/rig"
)

// Idle returns the resting pose at time t (seconds): slow breathing
// through the spine, small head wander, trunk hanging loose.
func Idle(t float64) rig.Rotations {
	return rig.Rotations{
		"spine_mid": {
			0.03 * math.Sin(t*0.7),
			0,
			0.02 * math.Sin(t*0.5),
		},
		"spine_neck": {
			0.05 + 0.03*math.Sin(t*0.8),
			0.05 * math.Sin(t*0.6),
			0,
		},
		"head": {
			-0.15 + 0.05*math.Sin(t*0.9),
			0.05 * math.Sin(t*0.7),
			0,
		},
		"trunk_base": {0.05 * math.Sin(t*0.9), 0, 0},
		"trunk_mid1": {0.04 * math.Sin(t*0.9+0.4), 0, 0},
		"trunk_mid2": {0.03 * math.Sin(t*0.9+0.8), 0, 0},
		"tail_base":  {0, 0.1 * math.Sin(t*0.8), 0},
		"tail_mid":   {0, 0.08 * math.Sin(t*0.8+0.5), 0},
	}
}

// Curious returns an alert pose: raised head, lifted trunk, flapping
// ears.
func Curious(t float64) rig.Rotations {
	lift := 0.3 + 0.1*math.Sin(t*2.2)
	flap := 0.15 * math.Sin(t*3.0)
	return rig.Rotations{
		"spine_neck": {0.1 + 0.05*math.Sin(t*2.0), 0.1 * math.Sin(t*1.0), 0},
		"head":       {-0.05 + 0.07*math.Sin(t*2.5), 0.08 * math.Sin(t*1.7), 0},
		"trunk_base": {-lift * 0.5, 0, 0},
		"trunk_mid1": {-lift * 0.8, 0, 0},
		"trunk_mid2": {-lift * 0.9, 0, 0},
		"trunk_tip":  {-lift, 0, 0},
		"ear_left":   {0, 0, flap},
		"ear_right":  {0, 0, -flap},
	}
}

// Walk returns the walking pose at the given gait phase (radians).
// Diagonal leg pairs move in antiphase; knees bend only on the
// backswing so feet clear the ground without scuffing.
func Walk(phase float64) rig.Rotations {
	const (
		swingAmpFront = 0.4
		swingAmpBack  = 0.5
		kneeBendFront = 0.7
		kneeBendBack  = 0.9
	)

	rot := rig.Rotations{}
	leg := func(upper, lower string, amp, bend, legPhase float64) {
		swing := math.Sin(legPhase)
		rot[upper] = mathutil.Vec3{amp * swing, 0, 0}
		rot[lower] = mathutil.Vec3{bend * math.Max(0, -swing), 0, 0}
	}

	leg("back_left_upper", "back_left_lower", swingAmpBack, kneeBendBack, phase)
	leg("front_left_upper", "front_left_lower", swingAmpFront, kneeBendFront, phase+0.3)
	leg("back_right_upper", "back_right_lower", swingAmpBack, kneeBendBack, phase+math.Pi)
	leg("front_right_upper", "front_right_lower", swingAmpFront, kneeBendFront, phase+math.Pi+0.3)

	sway := 0.06 * math.Sin(phase)
	rot["spine_mid"] = mathutil.Vec3{0, 0, 0.03 * math.Sin(phase)}
	rot["head"] = mathutil.Vec3{-0.1, 0, 0}
	rot["trunk_base"] = mathutil.Vec3{0.1 * math.Sin(phase*0.5), sway * 0.7, 0}
	rot["trunk_mid1"] = mathutil.Vec3{0.08 * math.Sin(phase*0.5+0.4), sway * 0.5, 0}
	rot["trunk_mid2"] = mathutil.Vec3{0, sway * 0.35, 0}
	rot["trunk_tip"] = mathutil.Vec3{0, sway * 0.2, 0}
	rot["tail_base"] = mathutil.Vec3{0, 0.12 * math.Sin(phase), 0}
	rot["ear_left"] = mathutil.Vec3{0, 0, 0.1 * math.Sin(phase*1.5)}
	rot["ear_right"] = mathutil.Vec3{0, 0, -0.1 * math.Sin(phase*1.5)}
	return rot
}
