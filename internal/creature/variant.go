package creature

import (
	"sort"

	"golang.org/x/exp/rand"

	"creature-forge/internal/rig"
)

// Variant returns a copy of the definition with every variance group's
// proportions jittered by a seeded factor. Grouped torso and limb radii
// scale as girth, the skull scales with its group, and grouped tails
// stretch along their chain instead, so tusks vary in reach rather than
// thickness. The same seed always yields the same creature; groups draw
// in sorted name order so adding a group never reshuffles the others'
// factors.
func (d Definition) Variant(seed uint64) Definition {
	if len(d.Variance) == 0 {
		return d
	}

	groups := make([]string, 0, len(d.Variance))
	for g := range d.Variance {
		groups = append(groups, g)
	}
	sort.Strings(groups)

	rng := rand.New(rand.NewSource(seed))
	factors := make(map[string]float64, len(groups))
	for _, g := range groups {
		factors[g] = 1 + (rng.Float64()-0.5)*d.Variance[g]
	}

	out := d
	out.Torso.Radii = scaleEnds(d.Torso.Radii, factor(factors, d.Torso.Group))

	if d.Head != nil {
		h := *d.Head
		h.Radius *= factor(factors, h.Group)
		out.Head = &h
	}

	out.Joints = append([]rig.JointSpec(nil), d.Joints...)
	byName := make(map[string]int, len(out.Joints))
	for i, j := range out.Joints {
		byName[j.Name] = i
	}

	out.Tails = make([]Tail, len(d.Tails))
	for i, t := range d.Tails {
		// Scale the chain offsets past the root so the attachment
		// point stays put while the appendage lengthens.
		f := factor(factors, t.Group)
		if f != 1 {
			for _, name := range t.Joints[1:] {
				if j, ok := byName[name]; ok {
					for k := 0; k < 3; k++ {
						out.Joints[j].Offset[k] *= f
					}
				}
			}
		}
		out.Tails[i] = t
	}

	out.Limbs = make([]Limb, len(d.Limbs))
	for i, l := range d.Limbs {
		f := factor(factors, l.Group)
		l.Radii = scaleAll(l.Radii, f)
		out.Limbs[i] = l
	}
	return out
}

func factor(factors map[string]float64, group string) float64 {
	if f, ok := factors[group]; ok {
		return f
	}
	return 1
}

// scaleEnds jitters only the first and last radius samples, so the body
// barrel's midsection stays put while the rump and head ends vary.
func scaleEnds(radii []float64, f float64) []float64 {
	if f == 1 || len(radii) == 0 {
		return radii
	}
	out := append([]float64(nil), radii...)
	out[0] *= f
	out[len(out)-1] *= f
	return out
}

func scaleAll(radii []float64, f float64) []float64 {
	if f == 1 {
		return radii
	}
	out := make([]float64, len(radii))
	for i, r := range radii {
		out[i] = r * f
	}
	return out
}
