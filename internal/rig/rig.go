package rig

import (
	"fmt"

	"creature-forge/internal/mathutil"
)

// JointSpec describes one joint as plain data. Skeletons are defined as
// ordered spec arrays (parents before children), not type hierarchies.
type JointSpec struct {
	Name   string     `json:"name"`
	Parent string     `json:"parent,omitempty"` // empty for the root
	Offset [3]float64 `json:"offset"`           // rest offset relative to parent
}

// Joint is one resolved node of a rig tree.
type Joint struct {
	Name   string
	Parent int // index into the rig's joint slice, -1 for the root
	Rest   mathutil.Vec3
}

// Rig is a single-rooted tree of named joints with rest-pose offsets.
// It is immutable after construction; posing produces separate Pose values.
type Rig struct {
	joints []Joint
	byName map[string]int
}

// MissingJointError reports a request for a joint the rig does not contain.
// A missing joint is fatal to a creature build: a partial mesh is useless.
type MissingJointError struct {
	Name string
}

func (e *MissingJointError) Error() string {
	return fmt.Sprintf("rig: missing joint %q", e.Name)
}

// New builds a rig from joint specs. Specs must be ordered parents-first,
// carry unique names, and contain exactly one root (empty parent).
func New(specs []JointSpec) (*Rig, error) {
	if len(specs) == 0 {
		return nil, fmt.Errorf("rig: empty joint spec list")
	}

	r := &Rig{
		joints: make([]Joint, 0, len(specs)),
		byName: make(map[string]int, len(specs)),
	}

	roots := 0
	for i, s := range specs {
		if s.Name == "" {
			return nil, fmt.Errorf("rig: joint %d has no name", i)
		}
		if _, dup := r.byName[s.Name]; dup {
			return nil, fmt.Errorf("rig: duplicate joint name %q", s.Name)
		}

		parent := -1
		if s.Parent == "" {
			roots++
			if roots > 1 {
				return nil, fmt.Errorf("rig: multiple roots (%q and %q)", r.joints[0].Name, s.Name)
			}
		} else {
			p, ok := r.byName[s.Parent]
			if !ok {
				return nil, fmt.Errorf("rig: joint %q: parent %q not defined before it", s.Name, s.Parent)
			}
			parent = p
		}

		r.byName[s.Name] = len(r.joints)
		r.joints = append(r.joints, Joint{
			Name:   s.Name,
			Parent: parent,
			Rest:   mathutil.Vec3{s.Offset[0], s.Offset[1], s.Offset[2]},
		})
	}

	if roots == 0 {
		return nil, fmt.Errorf("rig: no root joint (every joint has a parent)")
	}

	return r, nil
}

// JointCount returns the number of joints.
func (r *Rig) JointCount() int {
	return len(r.joints)
}

// Joint returns the joint at index i.
func (r *Rig) Joint(i int) Joint {
	return r.joints[i]
}

// Index resolves a joint name to its index.
func (r *Rig) Index(name string) (int, error) {
	i, ok := r.byName[name]
	if !ok {
		return 0, &MissingJointError{Name: name}
	}
	return i, nil
}

// Names returns joint names in definition order.
func (r *Rig) Names() []string {
	out := make([]string, len(r.joints))
	for i, j := range r.joints {
		out[i] = j.Name
	}
	return out
}
