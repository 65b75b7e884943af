package rig

import (
	"creature-forge/internal/mathutil"
)

// Rotations holds per-joint Euler XYZ rotations (radians) keyed by joint
// name. Absent joints keep their rest orientation. Locomotion writes these
// each frame; mesh synthesis only ever reads the solved Pose.
type Rotations map[string]mathutil.Vec3

// Pose is a read-only forward-kinematics snapshot of a rig. Generators
// sample world positions from it and never mutate shared rig state.
type Pose struct {
	rig       *Rig
	world     []mathutil.Mat4
	positions []mathutil.Vec3
}

// Solve runs forward kinematics over the rig with the given rotations and
// returns an immutable pose snapshot. Pass nil for the rest pose.
func (r *Rig) Solve(rot Rotations) *Pose {
	world := make([]mathutil.Mat4, len(r.joints))
	positions := make([]mathutil.Vec3, len(r.joints))

	for i, j := range r.joints {
		local := mathutil.FromMat3Translation(localRotation(rot, j.Name), j.Rest)
		if j.Parent >= 0 {
			world[i] = mathutil.Mat4Mul(world[j.Parent], local)
		} else {
			world[i] = local
		}
		positions[i] = world[i].Translation()
	}

	return &Pose{rig: r, world: world, positions: positions}
}

func localRotation(rot Rotations, name string) mathutil.Mat3 {
	if rot == nil {
		return mathutil.Mat3Identity()
	}
	e, ok := rot[name]
	if !ok {
		return mathutil.Mat3Identity()
	}
	return mathutil.QuatToMat3(mathutil.EulerToQuat(e[0], e[1], e[2]))
}

// Rig returns the rig this pose was solved from.
func (p *Pose) Rig() *Rig {
	return p.rig
}

// WorldPosition returns the world-space position of the named joint.
func (p *Pose) WorldPosition(name string) (mathutil.Vec3, error) {
	i, err := p.rig.Index(name)
	if err != nil {
		return mathutil.Vec3{}, err
	}
	return p.positions[i], nil
}

// WorldPositions resolves a bone-name chain to world positions. Fails with
// MissingJointError on the first absent name.
func (p *Pose) WorldPositions(names []string) ([]mathutil.Vec3, error) {
	out := make([]mathutil.Vec3, len(names))
	for i, n := range names {
		pos, err := p.WorldPosition(n)
		if err != nil {
			return nil, err
		}
		out[i] = pos
	}
	return out, nil
}

// WorldMatrix returns joint i's world transform.
func (p *Pose) WorldMatrix(i int) mathutil.Mat4 {
	return p.world[i]
}

// JointIndex resolves a joint name to its skin index.
func (p *Pose) JointIndex(name string) (int, error) {
	return p.rig.Index(name)
}

// InverseBind returns per-joint inverse rest-pose world matrices, the
// bind side of linear-blend skinning.
func (r *Rig) InverseBind() []mathutil.Mat4 {
	rest := r.Solve(nil)
	out := make([]mathutil.Mat4, len(r.joints))
	for i := range out {
		out[i] = rest.world[i].RigidInverse()
	}
	return out
}
