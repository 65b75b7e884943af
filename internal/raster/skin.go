package raster

import (
	"creature-forge/internal/mathutil"
	"creature-forge/internal/meshbuf"
	"creature-forge/internal/rig"
)

// DeformPositions applies linear-blend skinning to a mesh built against
// the rig's rest pose, returning posed positions. The mesh's own arrays
// stay untouched so one buffer can be posed for many frames.
func DeformPositions(mesh *meshbuf.Buffer, pose *rig.Pose, invBind []mathutil.Mat4) []float64 {
	n := mesh.VertexCount()
	out := make([]float64, n*3)

	// Per-joint skinning matrix: world × inverse bind.
	mats := make([]mathutil.Mat4, len(invBind))
	for i := range mats {
		mats[i] = mathutil.Mat4Mul(pose.WorldMatrix(i), invBind[i])
	}

	for i := 0; i < n; i++ {
		p := mesh.Position(i)
		var acc mathutil.Vec3
		for s := 0; s < 4; s++ {
			w := mesh.SkinWeights[i*4+s]
			if w == 0 {
				continue
			}
			j := int(mesh.SkinIndices[i*4+s])
			acc = acc.Add(mats[j].MulPoint(p).Scale(w))
		}
		out[i*3] = acc[0]
		out[i*3+1] = acc[1]
		out[i*3+2] = acc[2]
	}
	return out
}
