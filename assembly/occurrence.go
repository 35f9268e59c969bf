// Package assembly models a CAD assembly as a flat list of component occurrences and exports
// their SI poses and mass properties.
package assembly

import (
	"github.com/golang/geo/r3"

	"go.viam.com/cadexport/spatialmath"
)

// Occurrence is a single instance of a component within an assembly. Implementations wrap
// whatever source provides the assembly data; the exporter depends only on this interface and
// never on a specific CAD SDK. Lengths are in the centimeter-based units CAD kernels use
// internally.
type Occurrence interface {
	// Name returns the occurrence name, unique within the assembly.
	Name() string

	// Component returns the name of the base component this occurrence instantiates.
	Component() string

	// Transform returns the rotation and the translation (in centimeters) of this occurrence
	// relative to the assembly root.
	Transform() (*spatialmath.RotationMatrix, r3.Vector, error)

	// PhysicalProperties returns the raw centimeter-based mass properties of the occurrence's
	// component, or an error if the source cannot compute them.
	PhysicalProperties() (*RawPhysicalProperties, error)
}
