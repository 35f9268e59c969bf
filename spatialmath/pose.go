package spatialmath

import (
	"github.com/golang/geo/r3"
)

// CentimetersToMeters is the scale between the centimeter-based length unit CAD kernels report
// in and SI meters.
const CentimetersToMeters = 0.01

// Pose is a position in meters and an orientation in radians, the SI form of a component
// transform. It is derived from a transform on demand and never stored back.
type Pose struct {
	Point       r3.Vector
	Orientation *EulerAngles
}

// NewZeroPose returns a pose at the origin with no rotation.
func NewZeroPose() Pose {
	return Pose{Orientation: NewEulerAngles()}
}

// NewPoseFromTransform decomposes a transform, given as a rotation matrix plus a translation in
// centimeters, into an SI pose.
func NewPoseFromTransform(rm *RotationMatrix, translation r3.Vector) Pose {
	return Pose{
		Point:       translation.Mul(CentimetersToMeters),
		Orientation: rm.EulerAngles(),
	}
}

// PoseAlmostEqual will return a bool describing whether 2 poses are approximately the same.
func PoseAlmostEqual(p1, p2 Pose) bool {
	return p1.Point.ApproxEqual(p2.Point) && OrientationAlmostEqual(p1.Orientation, p2.Orientation)
}
