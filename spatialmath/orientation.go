package spatialmath

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
)

// Orientation is an interface used to express the different parameterizations of the orientation
// of a rigid object or a frame of reference in 3D Euclidean space.
type Orientation interface {
	Quaternion() quat.Number
	EulerAngles() *EulerAngles
	RotationMatrix() *RotationMatrix
}

// NewZeroOrientation returns an orientatation which signifies no rotation.
func NewZeroOrientation() Orientation {
	return NewEulerAngles()
}

// OrientationAlmostEqual will return a bool describing whether 2 poses have approximately the
// same orientation. A quaternion and its negation represent the same rotation, so both signs
// are accepted.
func OrientationAlmostEqual(o1, o2 Orientation) bool {
	q1 := o1.Quaternion()
	q2 := o2.Quaternion()
	return QuaternionAlmostEqual(q1, q2, 1e-5) || QuaternionAlmostEqual(q1, Flip(q2), 1e-5)
}

// QuaternionAlmostEqual is an equality test for all the float components of a quaternion.
func QuaternionAlmostEqual(q1, q2 quat.Number, tol float64) bool {
	return math.Abs(q1.Real-q2.Real) < tol &&
		math.Abs(q1.Imag-q2.Imag) < tol &&
		math.Abs(q1.Jmag-q2.Jmag) < tol &&
		math.Abs(q1.Kmag-q2.Kmag) < tol
}

// Flip negates all the components of a quaternion, yielding the same rotation.
func Flip(q quat.Number) quat.Number {
	return quat.Number{Real: -q.Real, Imag: -q.Imag, Jmag: -q.Jmag, Kmag: -q.Kmag}
}
