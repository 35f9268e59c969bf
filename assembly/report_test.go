package assembly

import (
	"testing"

	"github.com/edaniels/golog"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"go.viam.com/test"

	"go.viam.com/cadexport/spatialmath"
)

type staticOccurrence struct {
	name     string
	rm       *spatialmath.RotationMatrix
	t        r3.Vector
	raw      *RawPhysicalProperties
	fail     error
	failMass error
}

func (o *staticOccurrence) Name() string      { return o.name }
func (o *staticOccurrence) Component() string { return o.name }

func (o *staticOccurrence) Transform() (*spatialmath.RotationMatrix, r3.Vector, error) {
	if o.fail != nil {
		return nil, r3.Vector{}, o.fail
	}
	return o.rm, o.t, nil
}

func (o *staticOccurrence) PhysicalProperties() (*RawPhysicalProperties, error) {
	if o.failMass != nil {
		return nil, o.failMass
	}
	return o.raw, nil
}

func TestExport(t *testing.T) {
	logger := golog.NewTestLogger(t)
	identity, err := spatialmath.NewRotationMatrix([]float64{1, 0, 0, 0, 1, 0, 0, 0, 1})
	test.That(t, err, test.ShouldBeNil)

	occurrences := []Occurrence{
		&staticOccurrence{
			name: "good",
			rm:   identity,
			t:    r3.Vector{X: 100, Y: 200, Z: 300},
			raw: &RawPhysicalProperties{
				Mass:    1,
				Moments: [3]float64{10000, 10000, 10000},
				Volume:  1e6,
			},
		},
		&staticOccurrence{
			name:     "no-mass",
			rm:       identity,
			failMass: errors.New("host could not compute properties"),
		},
		&staticOccurrence{
			name: "broken",
			fail: errors.New("degenerate transform"),
		},
	}

	report := Export("testbot", occurrences, logger)
	test.That(t, report.Name, test.ShouldEqual, "testbot")
	test.That(t, len(report.Components), test.ShouldEqual, 2)
	test.That(t, len(report.Skipped), test.ShouldEqual, 1)

	good := report.Components[0]
	test.That(t, good.Pose.Point.X, test.ShouldAlmostEqual, 1.0)
	test.That(t, good.Pose.Point.Z, test.ShouldAlmostEqual, 3.0)
	test.That(t, good.Mass.Ixx, test.ShouldAlmostEqual, 1.0)
	test.That(t, good.Mass.Volume, test.ShouldAlmostEqual, 1.0)

	// the failing mass lookup falls back to the documented default record
	test.That(t, report.Components[1].Mass, test.ShouldResemble, DefaultMassProperties())

	test.That(t, report.Skipped[0].Name, test.ShouldEqual, "broken")
	test.That(t, report.Err(), test.ShouldNotBeNil)
	test.That(t, report.Err().Error(), test.ShouldContainSubstring, "degenerate transform")
}

func TestExportEmpty(t *testing.T) {
	report := Export("empty", nil, golog.NewTestLogger(t))
	test.That(t, len(report.Components), test.ShouldEqual, 0)
	test.That(t, len(report.Skipped), test.ShouldEqual, 0)
	test.That(t, report.Err(), test.ShouldBeNil)
}
