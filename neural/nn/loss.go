package nn

import (
	"fmt"

	"github.com/golangast/scalargrad/neural/tensor"
)

// MSELoss returns the mean squared error between predictions and targets as
// a single tensor built entirely from graph operations, so calling Backward
// on it differentiates through every prediction.
func MSELoss(preds []*tensor.Tensor, targets []float64) (*tensor.Tensor, error) {
	if len(preds) == 0 {
		return nil, fmt.Errorf("MSELoss requires at least one prediction")
	}
	if len(preds) != len(targets) {
		return nil, fmt.Errorf("mismatched prediction and target counts: %d vs %d", len(preds), len(targets))
	}

	var sum *tensor.Tensor
	for i, p := range preds {
		diff := tensor.Sub(p, tensor.New(targets[i]))
		sq, err := tensor.Pow(diff, 2)
		if err != nil {
			return nil, fmt.Errorf("squaring residual %d: %w", i, err)
		}
		if sum == nil {
			sum = sq
		} else {
			sum = tensor.Add(sum, sq)
		}
	}

	mean, err := tensor.Div(sum, tensor.New(float64(len(preds))))
	if err != nil {
		return nil, fmt.Errorf("averaging %d residuals: %w", len(preds), err)
	}
	return mean, nil
}
