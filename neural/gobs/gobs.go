// Package gobs handles saving and loading trained network parameters using
// the gob encoding. Only parameter values and layer sizes are persisted;
// computation graphs are rebuilt from scratch on every forward pass and are
// never serialized.
package gobs

import (
	"encoding/gob"
	"fmt"
	"os"

	"golang.org/x/exp/rand"

	"github.com/golangast/scalargrad/neural/nn"
)

// Checkpoint is the persisted form of an MLP: its layer widths and a flat
// snapshot of every parameter value, in Parameters() order.
type Checkpoint struct {
	Sizes  []int
	Params []float64
}

// SaveModelToGOB writes the model's parameter values to filePath.
func SaveModelToGOB(model *nn.MLP, filePath string) error {
	params := model.Parameters()
	ckpt := Checkpoint{
		Sizes:  model.Sizes,
		Params: make([]float64, len(params)),
	}
	for i, p := range params {
		ckpt.Params[i] = p.Data
	}

	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create checkpoint file %s: %w", filePath, err)
	}
	defer file.Close()

	if err := gob.NewEncoder(file).Encode(ckpt); err != nil {
		return fmt.Errorf("failed to encode checkpoint to %s: %w", filePath, err)
	}
	return nil
}

// LoadModelFromGOB rebuilds an MLP from a checkpoint written by
// SaveModelToGOB.
func LoadModelFromGOB(filePath string) (*nn.MLP, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open checkpoint file %s: %w", filePath, err)
	}
	defer file.Close()

	var ckpt Checkpoint
	if err := gob.NewDecoder(file).Decode(&ckpt); err != nil {
		return nil, fmt.Errorf("failed to decode checkpoint from %s: %w", filePath, err)
	}
	if len(ckpt.Sizes) < 2 {
		return nil, fmt.Errorf("checkpoint %s has invalid sizes %v", filePath, ckpt.Sizes)
	}

	// The freshly initialized weights are immediately overwritten, so the
	// seed is irrelevant.
	model := nn.NewMLP(ckpt.Sizes, rand.New(rand.NewSource(0)))
	params := model.Parameters()
	if len(params) != len(ckpt.Params) {
		return nil, fmt.Errorf("checkpoint %s has %d parameters, network with sizes %v has %d",
			filePath, len(ckpt.Params), ckpt.Sizes, len(params))
	}
	for i, p := range params {
		p.Data = ckpt.Params[i]
	}
	return model, nil
}

// DeleteGobFile removes a checkpoint file.
func DeleteGobFile(filePath string) error {
	if err := os.Remove(filePath); err != nil {
		return fmt.Errorf("failed to delete gob file %s: %w", filePath, err)
	}
	return nil
}
