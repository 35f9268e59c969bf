package assembly

import (
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"
)

func TestNewMassProperties(t *testing.T) {
	raw := &RawPhysicalProperties{
		Mass:         2.5,
		CenterOfMass: r3.Vector{X: 100, Y: -50, Z: 0},
		Moments:      [3]float64{10000, 20000, 5000},
		Products:     [3]float64{100, -200, 300},
		Volume:       1e6,
	}
	props := NewMassProperties(raw)
	test.That(t, props.Mass, test.ShouldAlmostEqual, 2.5)
	test.That(t, props.CenterOfMass.X, test.ShouldAlmostEqual, 1.0)
	test.That(t, props.CenterOfMass.Y, test.ShouldAlmostEqual, -0.5)
	test.That(t, props.Ixx, test.ShouldAlmostEqual, 1.0)
	test.That(t, props.Iyy, test.ShouldAlmostEqual, 2.0)
	test.That(t, props.Izz, test.ShouldAlmostEqual, 0.5)
	test.That(t, props.Ixy, test.ShouldAlmostEqual, 0.01)
	test.That(t, props.Ixz, test.ShouldAlmostEqual, -0.02)
	test.That(t, props.Iyz, test.ShouldAlmostEqual, 0.03)
	test.That(t, props.Volume, test.ShouldAlmostEqual, 1.0)
}

func TestDefaultMassProperties(t *testing.T) {
	props := DefaultMassProperties()
	test.That(t, props.Mass, test.ShouldAlmostEqual, 0.1)
	test.That(t, props.CenterOfMass, test.ShouldResemble, r3.Vector{})
	test.That(t, props.Ixx, test.ShouldAlmostEqual, 0.001)
	test.That(t, props.Iyy, test.ShouldAlmostEqual, 0.001)
	test.That(t, props.Izz, test.ShouldAlmostEqual, 0.001)
	test.That(t, props.Ixy, test.ShouldEqual, 0)
	test.That(t, props.Volume, test.ShouldAlmostEqual, 0.001)
}
