package harness

import (
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"
)

// Snapshot is the serialized trace compared against golden files.
type Snapshot struct {
	Scenario   string           `json:"scenario"`
	Rejections []TraceRejection `json:"rejections"`
	Seen       []string         `json:"seen"`
	Rejected   []string         `json:"rejected"`
}

// RunWithGolden executes a scenario and compares the trace against a
// golden file under testdata/golden/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
func RunWithGolden(t *testing.T, scenario *Scenario) error {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return err
	}

	snapshot := Snapshot{
		Scenario:   scenario.Name,
		Rejections: result.Rejections,
		Seen:       result.Seen,
		Rejected:   result.Rejected,
	}
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenario.Name, data)

	return nil
}
