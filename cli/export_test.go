package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"go.viam.com/test"
)

const testSnapshot = `{
	"name": "testbot",
	"components": [
		{
			"name": "base_link:1",
			"component": "base_link",
			"transform": [1, 0, 0, 100, 0, 1, 0, 200, 0, 0, 1, 300, 0, 0, 0, 1],
			"physical": {
				"mass": 1.5,
				"center_of_mass": {"X": 10, "Y": 0, "Z": 0},
				"moments": [10000, 10000, 10000],
				"products": [0, 0, 0],
				"volume": 1e6
			}
		},
		{
			"name": "broken:1",
			"transform": [1, 0, 0]
		}
	]
}`

func writeTestSnapshot(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "assembly.json")
	test.That(t, os.WriteFile(path, []byte(testSnapshot), 0o644), test.ShouldBeNil)
	return path
}

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	err := NewApp(&out, &errOut).Run(append([]string{"cadexport"}, args...))
	return out.String(), err
}

func TestExportCommand(t *testing.T) {
	out, err := runApp(t, "export", writeTestSnapshot(t))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, out, test.ShouldContainSubstring, "FOUND 1 COMPONENTS:")
	test.That(t, out, test.ShouldContainSubstring, "Component: base_link:1")
	test.That(t, out, test.ShouldContainSubstring, "Position: (1.000000, 2.000000, 3.000000) m")
	test.That(t, out, test.ShouldContainSubstring, "Mass: 1.500000 kg")
	test.That(t, out, test.ShouldContainSubstring,
		`URDF Origin: <origin xyz="1.000000 2.000000 3.000000" rpy="0.000000 0.000000 0.000000"/>`)
	test.That(t, out, test.ShouldContainSubstring, "SKIPPED 1 COMPONENTS:")
	test.That(t, out, test.ShouldContainSubstring, "broken:1")
}

func TestURDFCommand(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "testbot.urdf")
	_, err := runApp(t, "urdf", "-o", outPath, writeTestSnapshot(t))
	test.That(t, err, test.ShouldBeNil)

	data, err := os.ReadFile(outPath)
	test.That(t, err, test.ShouldBeNil)
	doc := string(data)
	test.That(t, doc, test.ShouldContainSubstring, `<robot name="testbot">`)
	test.That(t, doc, test.ShouldContainSubstring, `<link name="base_link:1">`)
	test.That(t, doc, test.ShouldContainSubstring, `filename="package://robot_meshes/base_link:1.stl"`)
}

func TestInspectCommand(t *testing.T) {
	out, err := runApp(t, "inspect", writeTestSnapshot(t))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, out, test.ShouldContainSubstring, "Assembly: testbot")
	test.That(t, out, test.ShouldContainSubstring, "Components: 1")
	test.That(t, out, test.ShouldContainSubstring, "Skipped: 1")
}

func TestMissingSnapshot(t *testing.T) {
	_, err := runApp(t, "export")
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "no assembly snapshot")

	_, err = runApp(t, "export", filepath.Join(t.TempDir(), "missing.json"))
	test.That(t, err, test.ShouldNotBeNil)
}
