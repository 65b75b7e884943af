package tube

import (
	"creature-forge/internal/mathutil"
	"creature-forge/internal/meshbuf"
)

// FanCap closes a ring with a single apex vertex pinned fully to one
// bone, one triangle per ring edge. flip reverses the winding for caps
// that face backward along the chain.
func FanCap(b *meshbuf.Buffer, ringStart, sides int, apex, normal mathutil.Vec3, v float64, bone int, flip bool) {
	apexIdx := uint32(b.AddVertex(apex, normal.NormalizeOr(mathutil.Vec3{0, 1, 0}), 0.5, v, bone, bone, 1, 0))
	for j := 0; j < sides; j++ {
		a := uint32(ringStart + j)
		c := uint32(ringStart + (j+1)%sides)
		if flip {
			b.AddTriangle(apexIdx, c, a)
		} else {
			b.AddTriangle(apexIdx, a, c)
		}
	}
}

// TaperCap closes a ring with segments shrinking intermediate rings that
// converge on apex, then a final fan. Skin weight blends linearly from
// the rim's bone toward apexBone across the taper. The rim vertices are
// read back from the buffer so the cap inherits whatever shape the rim
// ring actually has.
func TaperCap(b *meshbuf.Buffer, ringStart, sides, segments int, apex mathutil.Vec3, rimCenter mathutil.Vec3, rimBone, apexBone int, vStart, vEnd float64, flip bool) {
	if segments < 1 {
		segments = 1
	}
	rim := make([]mathutil.Vec3, sides)
	for j := 0; j < sides; j++ {
		rim[j] = b.Position(ringStart + j)
	}
	prev := ringStart
	for seg := 1; seg <= segments; seg++ {
		t := float64(seg) / float64(segments+1)
		center := mathutil.VecLerp(rimCenter, apex, t)
		v := mathutil.Lerp(vStart, vEnd, t)
		start := b.VertexCount()
		for j := 0; j < sides; j++ {
			p := mathutil.VecLerp(rim[j], apex, t)
			n := p.Sub(center).NormalizeOr(mathutil.Vec3{0, 1, 0})
			u := float64(j) / float64(sides)
			b.AddVertex(p, n, u, v, rimBone, apexBone, 1-t, t)
		}
		if flip {
			BridgeRings(b, start, prev, sides)
		} else {
			BridgeRings(b, prev, start, sides)
		}
		prev = start
	}
	apexNormal := apex.Sub(rimCenter)
	FanCap(b, prev, sides, apex, apexNormal, vEnd, apexBone, flip)
}
