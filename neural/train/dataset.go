package train

import (
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/exp/rand"
)

// Dataset holds parallel input rows and scalar targets.
type Dataset struct {
	Inputs  [][]float64 `json:"inputs"`
	Targets []float64   `json:"targets"`
}

// Validate checks that the dataset is non-empty, that inputs and targets are
// parallel, and that every input row has the same width.
func (d *Dataset) Validate() error {
	if len(d.Inputs) == 0 {
		return fmt.Errorf("dataset has no examples")
	}
	if len(d.Inputs) != len(d.Targets) {
		return fmt.Errorf("dataset has %d input rows but %d targets", len(d.Inputs), len(d.Targets))
	}
	width := len(d.Inputs[0])
	if width == 0 {
		return fmt.Errorf("dataset input rows are empty")
	}
	for i, row := range d.Inputs {
		if len(row) != width {
			return fmt.Errorf("input row %d has %d values, expected %d", i, len(row), width)
		}
	}
	return nil
}

// Shuffle permutes examples in place, keeping inputs and targets aligned.
func (d *Dataset) Shuffle(rng *rand.Rand) {
	rng.Shuffle(len(d.Inputs), func(i, j int) {
		d.Inputs[i], d.Inputs[j] = d.Inputs[j], d.Inputs[i]
		d.Targets[i], d.Targets[j] = d.Targets[j], d.Targets[i]
	})
}

// LoadDatasetFromJSON reads and validates a dataset from a JSON file.
func LoadDatasetFromJSON(filePath string) (*Dataset, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset file %s: %w", filePath, err)
	}

	var ds Dataset
	if err := json.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("failed to unmarshal dataset JSON from %s: %w", filePath, err)
	}
	if err := ds.Validate(); err != nil {
		return nil, fmt.Errorf("dataset %s: %w", filePath, err)
	}
	return &ds, nil
}

// ToyDataset returns a small built-in binary classification dataset, handy
// for demos and smoke tests. Targets are in (0, 1) to match the sigmoid
// output of the network.
func ToyDataset() *Dataset {
	return &Dataset{
		Inputs: [][]float64{
			{2, 3, -1},
			{3, -1, 0.5},
			{0.5, 1, 1},
			{1, 1, -1},
		},
		Targets: []float64{1, 0, 0, 1},
	}
}
