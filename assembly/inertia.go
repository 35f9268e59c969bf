package assembly

import (
	"github.com/golang/geo/r3"
)

// Scale factors between the centimeter-based units CAD kernels report mass data in and SI.
const (
	lengthScale  = 0.01 // cm → m
	volumeScale  = 1e-6 // cm³ → m³
	inertiaScale = 1e-4 // kg·cm² → kg·m²
)

// RawPhysicalProperties holds mass data as reported by a CAD host: mass in kg, center of mass
// in cm, moments and products of inertia in kg·cm², volume in cm³.
type RawPhysicalProperties struct {
	Mass         float64    `json:"mass"`
	CenterOfMass r3.Vector  `json:"center_of_mass"`
	Moments      [3]float64 `json:"moments"`  // Ixx, Iyy, Izz
	Products     [3]float64 `json:"products"` // Ixy, Ixz, Iyz
	Volume       float64    `json:"volume"`
}

// MassProperties are the SI mass data of a component: kg, meters, kg·m², m³.
type MassProperties struct {
	Mass          float64
	CenterOfMass  r3.Vector
	Ixx, Iyy, Izz float64
	Ixy, Ixz, Iyz float64
	Volume        float64
}

// NewMassProperties converts raw centimeter-based mass data to SI.
func NewMassProperties(raw *RawPhysicalProperties) *MassProperties {
	return &MassProperties{
		Mass:         raw.Mass,
		CenterOfMass: raw.CenterOfMass.Mul(lengthScale),
		Ixx:          raw.Moments[0] * inertiaScale,
		Iyy:          raw.Moments[1] * inertiaScale,
		Izz:          raw.Moments[2] * inertiaScale,
		Ixy:          raw.Products[0] * inertiaScale,
		Ixz:          raw.Products[1] * inertiaScale,
		Iyz:          raw.Products[2] * inertiaScale,
		Volume:       raw.Volume * volumeScale,
	}
}

// DefaultMassProperties is the record substituted when a source cannot report physical
// properties for a component. The small positive mass and diagonal inertia keep downstream
// URDF consumers from rejecting the link.
func DefaultMassProperties() *MassProperties {
	return &MassProperties{
		Mass:   0.1,
		Ixx:    0.001,
		Iyy:    0.001,
		Izz:    0.001,
		Volume: 0.001,
	}
}
