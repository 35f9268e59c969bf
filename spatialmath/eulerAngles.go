package spatialmath

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
)

// EulerAngles are three angles (in radians) representing the orientation of a rigid object in 3D
// Euclidean space. The angles are Tait-Bryan, applied in Z-Y-X order: yaw about Z, then pitch
// about the new Y, then roll about the new X. This matches the rpy convention used by URDF.
type EulerAngles struct {
	Roll  float64 `json:"roll"`  // rotation about the X axis
	Pitch float64 `json:"pitch"` // rotation about the Y axis
	Yaw   float64 `json:"yaw"`   // rotation about the Z axis
}

// NewEulerAngles creates an empty EulerAngles struct.
func NewEulerAngles() *EulerAngles {
	return &EulerAngles{Roll: 0, Pitch: 0, Yaw: 0}
}

// EulerAngles returns orientation in Euler angle representation.
func (ea *EulerAngles) EulerAngles() *EulerAngles {
	return ea
}

// Quaternion returns orientation in quaternion representation.
func (ea *EulerAngles) Quaternion() quat.Number {
	cy := math.Cos(ea.Yaw / 2)
	sy := math.Sin(ea.Yaw / 2)
	cp := math.Cos(ea.Pitch / 2)
	sp := math.Sin(ea.Pitch / 2)
	cr := math.Cos(ea.Roll / 2)
	sr := math.Sin(ea.Roll / 2)

	return quat.Number{
		Real: cr*cp*cy + sr*sp*sy,
		Imag: sr*cp*cy - cr*sp*sy,
		Jmag: cr*sp*cy + sr*cp*sy,
		Kmag: cr*cp*sy - sr*sp*cy,
	}
}

// RotationMatrix returns the orientation in rotation matrix representation, composing the
// individual axis rotations as Rz * Ry * Rx.
func (ea *EulerAngles) RotationMatrix() *RotationMatrix {
	cy := math.Cos(ea.Yaw)
	sy := math.Sin(ea.Yaw)
	cp := math.Cos(ea.Pitch)
	sp := math.Sin(ea.Pitch)
	cr := math.Cos(ea.Roll)
	sr := math.Sin(ea.Roll)

	return &RotationMatrix{mat: [9]float64{
		cy * cp, cy*sp*sr - sy*cr, cy*sp*cr + sy*sr,
		sy * cp, sy*sp*sr + cy*cr, sy*sp*cr - cy*sr,
		-sp, cp * sr, cp * cr,
	}}
}
