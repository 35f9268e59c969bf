package spatialmath

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/num/quat"
)

// RotationMatrix is a 3x3 matrix in row major order.
// Element indices are laid out as
//
//	m[0] m[1] m[2]
//	m[3] m[4] m[5]
//	m[6] m[7] m[8]
//
// Callers are expected to provide proper rotations (orthonormal, determinant +1); degenerate
// matrices produce meaningless angles.
type RotationMatrix struct {
	mat [9]float64
}

// NewRotationMatrix creates a rotation matrix from a slice of 9 floats in row major order.
func NewRotationMatrix(m []float64) (*RotationMatrix, error) {
	if len(m) != 9 {
		return nil, errors.Errorf("input slice has %d elements, need exactly 9", len(m))
	}
	mat := [9]float64{m[0], m[1], m[2], m[3], m[4], m[5], m[6], m[7], m[8]}
	return &RotationMatrix{mat}, nil
}

// At returns the float corresponding to the element at the given row and column.
func (rm *RotationMatrix) At(row, col int) float64 {
	return rm.mat[3*row+col]
}

// Row returns the a vector with the values of the specified row.
func (rm *RotationMatrix) Row(row int) r3.Vector {
	return r3.Vector{
		X: rm.mat[3*row],
		Y: rm.mat[3*row+1],
		Z: rm.mat[3*row+2],
	}
}

// RotationMatrix returns the orientation in rotation matrix representation.
func (rm *RotationMatrix) RotationMatrix() *RotationMatrix {
	return rm
}

// EulerAngles returns the orientation in Euler angle representation, extracting the angles of
// the Z-Y-X composition in closed form:
//
//	roll  = atan2(m21, m22)
//	pitch = atan2(-m20, sqrt(m21² + m22²))
//	yaw   = atan2(m10, m00)
//
// When pitch approaches ±π/2 both m21 and m22 approach zero and roll (and with it yaw) is
// numerically unstable; no special casing is done for that singularity.
func (rm *RotationMatrix) EulerAngles() *EulerAngles {
	m := rm.mat
	return &EulerAngles{
		Roll:  math.Atan2(m[7], m[8]),
		Pitch: math.Atan2(-m[6], math.Sqrt(m[7]*m[7]+m[8]*m[8])),
		Yaw:   math.Atan2(m[3], m[0]),
	}
}

// Quaternion returns the orientation in quaternion representation.
// See: https://www.euclideanspace.com/maths/geometry/rotations/conversions/matrixToQuaternion/
func (rm *RotationMatrix) Quaternion() quat.Number {
	m := rm.mat
	tr := m[0] + m[4] + m[8]

	var q quat.Number
	switch {
	case tr > 0:
		s := 2 * math.Sqrt(tr+1)
		q = quat.Number{
			Real: 0.25 * s,
			Imag: (m[7] - m[5]) / s,
			Jmag: (m[2] - m[6]) / s,
			Kmag: (m[3] - m[1]) / s,
		}
	case m[0] > m[4] && m[0] > m[8]:
		s := 2 * math.Sqrt(1+m[0]-m[4]-m[8])
		q = quat.Number{
			Real: (m[7] - m[5]) / s,
			Imag: 0.25 * s,
			Jmag: (m[1] + m[3]) / s,
			Kmag: (m[2] + m[6]) / s,
		}
	case m[4] > m[8]:
		s := 2 * math.Sqrt(1+m[4]-m[0]-m[8])
		q = quat.Number{
			Real: (m[2] - m[6]) / s,
			Imag: (m[1] + m[3]) / s,
			Jmag: 0.25 * s,
			Kmag: (m[5] + m[7]) / s,
		}
	default:
		s := 2 * math.Sqrt(1+m[8]-m[0]-m[4])
		q = quat.Number{
			Real: (m[3] - m[1]) / s,
			Imag: (m[2] + m[6]) / s,
			Jmag: (m[5] + m[7]) / s,
			Kmag: 0.25 * s,
		}
	}
	return q
}
