package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"go.viam.com/cadexport/assembly"
	"go.viam.com/cadexport/urdf"
)

const fileOutputPerm = 0o644

// ExportAction reads an assembly snapshot and writes the per-component text report.
func ExportAction(c *cli.Context) error {
	report, err := exportSnapshot(c)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	writeTextReport(&buf, report)
	return writeOutput(c, buf.Bytes())
}

// URDFAction reads an assembly snapshot and writes a URDF fragment with one link per component.
func URDFAction(c *cli.Context) error {
	report, err := exportSnapshot(c)
	if err != nil {
		return err
	}
	data, err := urdf.NewModelFromReport(report).MarshalIndent()
	if err != nil {
		return err
	}
	return writeOutput(c, data)
}

// InspectAction summarizes a snapshot: component count plus anything that would be skipped.
func InspectAction(c *cli.Context) error {
	report, err := exportSnapshot(c)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "Assembly: %s\n", report.Name)
	fmt.Fprintf(c.App.Writer, "Components: %d\n", len(report.Components))
	fmt.Fprintf(c.App.Writer, "Skipped: %d\n", len(report.Skipped))
	for _, skipped := range report.Skipped {
		fmt.Fprintf(c.App.Writer, "  %s: %v\n", skipped.Name, skipped.Reason)
	}
	return nil
}

// exportSnapshot loads the snapshot named on the command line and exports it. An unreadable
// snapshot aborts the command; per-component failures do not.
func exportSnapshot(c *cli.Context) (*assembly.Report, error) {
	snapshotPath := c.Args().First()
	if snapshotPath == "" {
		return nil, errors.New("no assembly snapshot given")
	}
	snapshot, err := assembly.ReadSnapshotFile(snapshotPath)
	if err != nil {
		return nil, err
	}
	return assembly.Export(snapshot.Name, snapshot.Occurrences(), appLogger(c)), nil
}

func writeOutput(c *cli.Context, data []byte) error {
	if outPath := c.String(outputFlag); outPath != "" {
		return os.WriteFile(outPath, data, fileOutputPerm)
	}
	_, err := c.App.Writer.Write(data)
	return err
}

func writeTextReport(w io.Writer, report *assembly.Report) {
	if len(report.Components) == 0 {
		fmt.Fprintln(w, "No components found")
		return
	}

	fmt.Fprintf(w, "FOUND %d COMPONENTS:\n\n", len(report.Components))
	fmt.Fprintf(w, "Format: Component (Position in meters, RPY in radians)\n")
	fmt.Fprintf(w, "%s\n\n", strings.Repeat("=", 80))

	for _, comp := range report.Components {
		pose := comp.Pose
		mass := comp.Mass
		fmt.Fprintf(w, "Component: %s\n", comp.Name)
		fmt.Fprintf(w, "Base: %s\n", comp.Base)
		fmt.Fprintf(w, "Position: (%.6f, %.6f, %.6f) m\n", pose.Point.X, pose.Point.Y, pose.Point.Z)
		fmt.Fprintf(w, "RPY: (%.6f, %.6f, %.6f) rad\n",
			pose.Orientation.Roll, pose.Orientation.Pitch, pose.Orientation.Yaw)
		fmt.Fprintf(w, "Mass: %.6f kg\n", mass.Mass)
		fmt.Fprintf(w, "Center of Mass: (%.6f, %.6f, %.6f) m\n",
			mass.CenterOfMass.X, mass.CenterOfMass.Y, mass.CenterOfMass.Z)
		fmt.Fprintf(w, "Inertia: Ixx=%.6f, Iyy=%.6f, Izz=%.6f kg·m²\n", mass.Ixx, mass.Iyy, mass.Izz)
		fmt.Fprintf(w, "URDF Origin: %s\n\n", urdf.OriginFragment(pose))
	}

	if len(report.Skipped) > 0 {
		fmt.Fprintf(w, "SKIPPED %d COMPONENTS:\n", len(report.Skipped))
		for _, skipped := range report.Skipped {
			fmt.Fprintf(w, "  %s: %v\n", skipped.Name, skipped.Reason)
		}
	}
}
