// Package camera projects mesh vertices to screen space with an orbit
// camera and automatic framing.
package camera

import (
	"math"

	"creature-forge/internal/mathutil"
)

// Orbit is an orthographic turntable camera: yaw and pitch in radians
// around the subject.
type Orbit struct {
	Yaw   float64
	Pitch float64
}

// Rotation returns the world-to-view rotation.
func (o Orbit) Rotation() mathutil.Mat3 {
	return mathutil.Mat3Mul(mathutil.RotX(o.Pitch), mathutil.RotY(o.Yaw))
}

// Fit describes the framing computed for one set of vertices.
type Fit struct {
	Center mathutil.Vec3 // view-space bounding box center
	Scale  float64       // world units to pixels
}

// FitView computes framing that centers the rotated positions and fills
// the square viewport up to a pixel margin. Positions are xyz-flat.
func FitView(positions []float64, r mathutil.Mat3, size, margin int) Fit {
	min := mathutil.Vec3{math.Inf(1), math.Inf(1), math.Inf(1)}
	max := mathutil.Vec3{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	for i := 0; i+2 < len(positions); i += 3 {
		tv := r.MulVec3(mathutil.Vec3{positions[i], positions[i+1], positions[i+2]})
		for k := 0; k < 3; k++ {
			if tv[k] < min[k] {
				min[k] = tv[k]
			}
			if tv[k] > max[k] {
				max[k] = tv[k]
			}
		}
	}

	center := min.Add(max).Scale(0.5)
	span := math.Max(max[0]-min[0], max[1]-min[1])
	if span < 0.001 {
		span = 0.001
	}
	return Fit{
		Center: center,
		Scale:  float64(size-2*margin) / span,
	}
}

// Project maps xyz-flat positions to screen coordinates plus a depth
// value per vertex. Y flips so world up is screen up; depth grows toward
// the viewer for a greater-than z-test.
func Project(positions []float64, r mathutil.Mat3, fit Fit, size int) (px, py, pz []float64) {
	n := len(positions) / 3
	px = make([]float64, n)
	py = make([]float64, n)
	pz = make([]float64, n)
	half := float64(size) / 2
	for i := 0; i < n; i++ {
		tv := r.MulVec3(mathutil.Vec3{positions[i*3], positions[i*3+1], positions[i*3+2]})
		px[i] = (tv[0]-fit.Center[0])*fit.Scale + half
		py[i] = -(tv[1]-fit.Center[1])*fit.Scale + half
		pz[i] = tv[2] - fit.Center[2]
	}
	return px, py, pz
}
