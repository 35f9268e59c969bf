package assembly

import (
	"encoding/json"
	"os"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"

	"go.viam.com/cadexport/spatialmath"
)

// Snapshot is the on-disk JSON form of an assembly: a name plus every component occurrence with
// its root-relative transform. The transform is a row major homogeneous matrix, either 3x4
// (12 elements) or 4x4 (16 elements), with translation in centimeters.
type Snapshot struct {
	Name       string               `json:"name"`
	Components []*SnapshotComponent `json:"components"`
}

// SnapshotComponent is one occurrence entry in a Snapshot.
type SnapshotComponent struct {
	Name      string                 `json:"name"`
	Component string                 `json:"component,omitempty"`
	Transform []float64              `json:"transform"`
	Physical  *RawPhysicalProperties `json:"physical,omitempty"`
}

// ParseSnapshot reads a Snapshot out of its JSON representation.
func ParseSnapshot(jsonData []byte) (*Snapshot, error) {
	snapshot := &Snapshot{}
	if err := json.Unmarshal(jsonData, snapshot); err != nil {
		return nil, errors.Wrap(err, "failed to parse assembly snapshot")
	}
	return snapshot, nil
}

// ReadSnapshotFile reads and parses the snapshot JSON at the given path.
func ReadSnapshotFile(filename string) (*Snapshot, error) {
	//nolint:gosec
	jsonData, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read assembly snapshot file")
	}
	return ParseSnapshot(jsonData)
}

// Occurrences returns the snapshot components as exportable occurrences.
func (s *Snapshot) Occurrences() []Occurrence {
	occurrences := make([]Occurrence, 0, len(s.Components))
	for _, c := range s.Components {
		occurrences = append(occurrences, &snapshotOccurrence{c})
	}
	return occurrences
}

// snapshotOccurrence adapts a SnapshotComponent to the Occurrence interface.
type snapshotOccurrence struct {
	c *SnapshotComponent
}

func (so *snapshotOccurrence) Name() string {
	return so.c.Name
}

func (so *snapshotOccurrence) Component() string {
	if so.c.Component == "" {
		return so.c.Name
	}
	return so.c.Component
}

func (so *snapshotOccurrence) Transform() (*spatialmath.RotationMatrix, r3.Vector, error) {
	m := so.c.Transform
	if len(m) != 12 && len(m) != 16 {
		return nil, r3.Vector{}, errors.Errorf("transform has %d elements, need 12 or 16", len(m))
	}
	rm, err := spatialmath.NewRotationMatrix([]float64{
		m[0], m[1], m[2],
		m[4], m[5], m[6],
		m[8], m[9], m[10],
	})
	if err != nil {
		return nil, r3.Vector{}, err
	}
	return rm, r3.Vector{X: m[3], Y: m[7], Z: m[11]}, nil
}

func (so *snapshotOccurrence) PhysicalProperties() (*RawPhysicalProperties, error) {
	if so.c.Physical == nil {
		return nil, errors.New("no physical properties recorded for component")
	}
	return so.c.Physical, nil
}
