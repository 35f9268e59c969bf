package assembly

import (
	"github.com/edaniels/golog"
	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"go.viam.com/cadexport/spatialmath"
)

// Component is one successfully exported occurrence: its SI pose relative to the assembly root
// and its SI mass properties.
type Component struct {
	Name string
	Base string
	Pose spatialmath.Pose
	Mass *MassProperties
}

// SkippedComponent records an occurrence dropped from the export and why.
type SkippedComponent struct {
	Name   string
	Reason error
}

// Report is the result of exporting an assembly. Components and Skipped together cover every
// occurrence that was offered; a failure on one occurrence never aborts the rest.
type Report struct {
	Name       string
	Components []Component
	Skipped    []SkippedComponent
}

// Export decomposes every occurrence into a report entry. An occurrence whose transform cannot
// be read is skipped and recorded with its reason; an occurrence whose physical properties
// cannot be read falls back to DefaultMassProperties. Neither case is an error for the batch.
func Export(name string, occurrences []Occurrence, logger golog.Logger) *Report {
	report := &Report{Name: name}
	for _, occ := range occurrences {
		rm, translation, err := occ.Transform()
		if err != nil {
			logger.Errorw("skipping component", "name", occ.Name(), "error", err)
			report.Skipped = append(report.Skipped, SkippedComponent{Name: occ.Name(), Reason: err})
			continue
		}

		mass, err := physicalPropertiesOrDefault(occ)
		if err != nil {
			logger.Debugw("substituting default mass properties", "name", occ.Name(), "error", err)
		}

		report.Components = append(report.Components, Component{
			Name: occ.Name(),
			Base: occ.Component(),
			Pose: spatialmath.NewPoseFromTransform(rm, translation),
			Mass: mass,
		})
	}
	return report
}

func physicalPropertiesOrDefault(occ Occurrence) (*MassProperties, error) {
	raw, err := occ.PhysicalProperties()
	if err != nil {
		return DefaultMassProperties(), err
	}
	return NewMassProperties(raw), nil
}

// Err returns the combined reasons for every skipped component, or nil if nothing was skipped.
func (r *Report) Err() error {
	var err error
	for _, skipped := range r.Skipped {
		err = multierr.Append(err, errors.Wrap(skipped.Reason, skipped.Name))
	}
	return err
}
