package train

import (
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/exp/rand"
)

func TestDatasetValidate(t *testing.T) {
	cases := []struct {
		name string
		ds   Dataset
		ok   bool
	}{
		{"valid", Dataset{Inputs: [][]float64{{1, 2}, {3, 4}}, Targets: []float64{0, 1}}, true},
		{"empty", Dataset{}, false},
		{"count mismatch", Dataset{Inputs: [][]float64{{1}}, Targets: []float64{0, 1}}, false},
		{"empty row", Dataset{Inputs: [][]float64{{}}, Targets: []float64{0}}, false},
		{"ragged rows", Dataset{Inputs: [][]float64{{1, 2}, {3}}, Targets: []float64{0, 1}}, false},
	}
	for _, tc := range cases {
		err := tc.ds.Validate()
		if tc.ok && err != nil {
			t.Errorf("%s: Validate returned error: %v", tc.name, err)
		}
		if !tc.ok && err == nil {
			t.Errorf("%s: Validate did not fail", tc.name)
		}
	}
}

func TestShuffleKeepsPairsAligned(t *testing.T) {
	ds := &Dataset{
		Inputs:  [][]float64{{0}, {1}, {2}, {3}, {4}},
		Targets: []float64{0, 10, 20, 30, 40},
	}
	ds.Shuffle(rand.New(rand.NewSource(3)))

	if len(ds.Inputs) != 5 || len(ds.Targets) != 5 {
		t.Fatalf("shuffle changed dataset size: %d inputs, %d targets", len(ds.Inputs), len(ds.Targets))
	}
	for i, row := range ds.Inputs {
		if ds.Targets[i] != row[0]*10 {
			t.Errorf("row %d: input %v paired with target %v", i, row, ds.Targets[i])
		}
	}
}

func TestLoadDatasetFromJSON(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "good.json")
	if err := os.WriteFile(good, []byte(`{"inputs":[[1,2],[3,4]],"targets":[0,1]}`), 0666); err != nil {
		t.Fatal(err)
	}
	ds, err := LoadDatasetFromJSON(good)
	if err != nil {
		t.Fatalf("LoadDatasetFromJSON returned error: %v", err)
	}
	if len(ds.Inputs) != 2 || ds.Targets[1] != 1 {
		t.Errorf("loaded dataset = %+v", ds)
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte(`{"inputs":[[1,2]],"targets":[0,1]}`), 0666); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadDatasetFromJSON(bad); err == nil {
		t.Error("loading an invalid dataset did not fail")
	}

	if _, err := LoadDatasetFromJSON(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("loading a missing file did not fail")
	}

	garbage := filepath.Join(dir, "garbage.json")
	if err := os.WriteFile(garbage, []byte(`not json`), 0666); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadDatasetFromJSON(garbage); err == nil {
		t.Error("loading malformed JSON did not fail")
	}
}
