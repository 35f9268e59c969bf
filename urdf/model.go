// Package urdf emits Unified Robot Description Format fragments for exported assemblies.
package urdf

import (
	"encoding/xml"
	"fmt"
	"os"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"

	"go.viam.com/cadexport/assembly"
	"go.viam.com/cadexport/spatialmath"
)

// Extension is the file extension associated with URDF files.
const Extension string = "urdf"

const fileOutputPerm = 0o644

// meshFilenamePattern is where downstream consumers are expected to stage exported geometry.
const meshFilenamePattern = "package://robot_meshes/%s.stl"

// ModelConfig represents the supported fields of a Universal Robot Description Format (URDF)
// document built from an assembly export.
type ModelConfig struct {
	XMLName xml.Name `xml:"robot"`
	Name    string   `xml:"name,attr"`
	Links   []link   `xml:"link"`
}

// link is a struct which details the XML used in a URDF link element.
type link struct {
	XMLName   xml.Name   `xml:"link"`
	Name      string     `xml:"name,attr"`
	Inertial  *inertial  `xml:"inertial,omitempty"`
	Visual    *visual    `xml:"visual,omitempty"`
	Collision *collision `xml:"collision,omitempty"`
}

type inertial struct {
	XMLName xml.Name `xml:"inertial"`
	Origin  pose     `xml:"origin"`
	Mass    massElem `xml:"mass"`
	Inertia inertia  `xml:"inertia"`
}

type visual struct {
	XMLName  xml.Name `xml:"visual"`
	Origin   pose     `xml:"origin"`
	Geometry geometry `xml:"geometry"`
}

type collision struct {
	XMLName  xml.Name `xml:"collision"`
	Origin   pose     `xml:"origin"`
	Geometry geometry `xml:"geometry"`
}

// pose is a struct which details the XML used in a URDF origin element. The attributes are kept
// as preformatted strings so the document renders with fixed six-decimal fields.
type pose struct {
	XMLName xml.Name `xml:"origin"`
	XYZ     string   `xml:"xyz,attr"`
	RPY     string   `xml:"rpy,attr"`
}

type massElem struct {
	XMLName xml.Name `xml:"mass"`
	Value   string   `xml:"value,attr"`
}

type inertia struct {
	XMLName xml.Name `xml:"inertia"`
	Ixx     string   `xml:"ixx,attr"`
	Ixy     string   `xml:"ixy,attr"`
	Ixz     string   `xml:"ixz,attr"`
	Iyy     string   `xml:"iyy,attr"`
	Iyz     string   `xml:"iyz,attr"`
	Izz     string   `xml:"izz,attr"`
}

type geometry struct {
	XMLName xml.Name `xml:"geometry"`
	Mesh    *mesh    `xml:"mesh,omitempty"`
}

type mesh struct {
	XMLName  xml.Name `xml:"mesh"`
	Filename string   `xml:"filename,attr"`
}

// NewModelFromReport creates a ModelConfig which can be marshalled into xml and will be a valid
// URDF fragment containing one fully populated link per exported component.
func NewModelFromReport(report *assembly.Report) *ModelConfig {
	links := make([]link, 0, len(report.Components))
	for _, c := range report.Components {
		origin := pose{XYZ: XYZ(c.Pose.Point), RPY: RPY(c.Pose.Orientation)}
		geom := geometry{Mesh: &mesh{Filename: fmt.Sprintf(meshFilenamePattern, c.Name)}}
		links = append(links, link{
			Name: c.Name,
			Inertial: &inertial{
				Origin: pose{XYZ: XYZ(c.Mass.CenterOfMass), RPY: RPY(spatialmath.NewEulerAngles())},
				Mass:   massElem{Value: fixed(c.Mass.Mass)},
				Inertia: inertia{
					Ixx: fixed(c.Mass.Ixx),
					Ixy: fixed(c.Mass.Ixy),
					Ixz: fixed(c.Mass.Ixz),
					Iyy: fixed(c.Mass.Iyy),
					Iyz: fixed(c.Mass.Iyz),
					Izz: fixed(c.Mass.Izz),
				},
			},
			Visual:    &visual{Origin: origin, Geometry: geom},
			Collision: &collision{Origin: origin, Geometry: geom},
		})
	}
	return &ModelConfig{Name: report.Name, Links: links}
}

// MarshalIndent renders the model as an indented XML document.
func (m *ModelConfig) MarshalIndent() ([]byte, error) {
	data, err := xml.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal URDF model")
	}
	return append([]byte(xml.Header), append(data, '\n')...), nil
}

// WriteFile renders the model and writes it to the given path.
func (m *ModelConfig) WriteFile(filename string) error {
	data, err := m.MarshalIndent()
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, fileOutputPerm)
}

// XYZ renders a vector as the space-delimited fixed-point triple URDF attributes use.
func XYZ(v r3.Vector) string {
	return fmt.Sprintf("%.6f %.6f %.6f", v.X, v.Y, v.Z)
}

// RPY renders Euler angles as the space-delimited fixed-point triple URDF attributes use.
func RPY(ea *spatialmath.EulerAngles) string {
	return fmt.Sprintf("%.6f %.6f %.6f", ea.Roll, ea.Pitch, ea.Yaw)
}

// OriginFragment renders the one-line origin element for a pose, for inclusion in text reports.
func OriginFragment(p spatialmath.Pose) string {
	return fmt.Sprintf(`<origin xyz="%s" rpy="%s"/>`, XYZ(p.Point), RPY(p.Orientation))
}

func fixed(f float64) string {
	return fmt.Sprintf("%.6f", f)
}
