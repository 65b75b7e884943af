package pose

import (
	"math"
	"testing"
)

func TestWalkDiagonalAntiphase(t *testing.T) {
	for _, phase := range []float64{0, 0.7, 1.9, 3.5, 5.2} {
		rot := Walk(phase)

		bl := rot["back_left_upper"][0]
		br := rot["back_right_upper"][0]
		if math.Abs(bl+br) > 1e-9 {
			t.Fatalf("phase %g: back legs not in antiphase: %g vs %g", phase, bl, br)
		}

		fl := rot["front_left_upper"][0]
		fr := rot["front_right_upper"][0]
		if math.Abs(fl+fr) > 1e-9 {
			t.Fatalf("phase %g: front legs not in antiphase: %g vs %g", phase, fl, fr)
		}
	}
}

func TestWalkKneeBendsOnBackswingOnly(t *testing.T) {
	for phase := 0.0; phase < 2*math.Pi; phase += 0.1 {
		rot := Walk(phase)
		for _, lower := range []string{
			"back_left_lower", "back_right_lower",
			"front_left_lower", "front_right_lower",
		} {
			if rot[lower][0] < 0 {
				t.Fatalf("phase %g: %s bends backward: %g", phase, lower, rot[lower][0])
			}
		}

		// Knee locks straight while the leg swings forward.
		if rot["back_left_upper"][0] > 1e-9 && rot["back_left_lower"][0] != 0 {
			t.Fatalf("phase %g: knee bent during forward swing", phase)
		}
	}
}

func TestWalkFrontLegLead(t *testing.T) {
	// Front legs run 0.3 rad ahead of the back pair on the same side.
	phase := 1.1
	rot := Walk(phase)
	want := 0.4 * math.Sin(phase+0.3)
	if math.Abs(rot["front_left_upper"][0]-want) > 1e-9 {
		t.Fatalf("front left swing %g, want %g", rot["front_left_upper"][0], want)
	}
}

func TestIdlePeriodicJoints(t *testing.T) {
	rot := Idle(0)
	for _, name := range []string{"spine_mid", "spine_neck", "head", "trunk_base", "tail_base"} {
		if _, ok := rot[name]; !ok {
			t.Fatalf("idle pose missing %s", name)
		}
	}
	// Head carries a constant downward tilt on top of the wander.
	if rot["head"][0] >= 0 {
		t.Fatalf("idle head tilt %g, want negative", rot["head"][0])
	}
}

func TestCuriousEarsMirror(t *testing.T) {
	for _, tt := range []float64{0.3, 1.2, 2.8} {
		rot := Curious(tt)
		if math.Abs(rot["ear_left"][2]+rot["ear_right"][2]) > 1e-9 {
			t.Fatalf("t=%g: ears do not mirror: %g vs %g",
				tt, rot["ear_left"][2], rot["ear_right"][2])
		}
		// Trunk lifts, tip most of all.
		if rot["trunk_tip"][0] >= rot["trunk_base"][0] {
			t.Fatalf("t=%g: trunk tip %g not lifted past base %g",
				tt, rot["trunk_tip"][0], rot["trunk_base"][0])
		}
	}
}
