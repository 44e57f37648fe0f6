// Package train drives gradient-descent training of an MLP over a dataset
// of scalar-target examples.
package train

import (
	"fmt"
	"log"

	"github.com/golangast/scalargrad/neural/nn"
	"github.com/golangast/scalargrad/neural/tensor"
)

// Config holds the training hyperparameters.
type Config struct {
	Epochs       int
	LearningRate float64
	// ClipValue bounds per-parameter gradients; <= 0 disables clipping.
	ClipValue float64
	// LogEvery logs the loss every N epochs; 0 disables progress logging.
	LogEvery int
}

// Train runs full-batch gradient descent: each epoch forwards every example,
// builds the mean-squared-error criterion over all predictions, zeroes the
// parameter grads, backpropagates from the loss and steps the optimizer.
// It returns the loss recorded at every epoch.
func Train(model *nn.MLP, ds *Dataset, cfg Config) ([]float64, error) {
	if err := ds.Validate(); err != nil {
		return nil, err
	}
	if got := model.Sizes[len(model.Sizes)-1]; got != 1 {
		return nil, fmt.Errorf("training targets are scalar but network has %d outputs", got)
	}
	if nin := model.Sizes[0]; nin != len(ds.Inputs[0]) {
		return nil, fmt.Errorf("network takes %d inputs but dataset rows have %d", nin, len(ds.Inputs[0]))
	}

	opt := nn.NewSGD(model.Parameters(), cfg.LearningRate, cfg.ClipValue)
	losses := make([]float64, 0, cfg.Epochs)

	for epoch := 0; epoch < cfg.Epochs; epoch++ {
		preds := make([]*tensor.Tensor, len(ds.Inputs))
		for i, row := range ds.Inputs {
			preds[i] = model.Forward(wrap(row))[0]
		}

		loss, err := nn.MSELoss(preds, ds.Targets)
		if err != nil {
			return losses, fmt.Errorf("epoch %d: %w", epoch, err)
		}

		opt.ZeroGrad()
		loss.Backward()
		opt.Step()

		losses = append(losses, loss.Data)
		if cfg.LogEvery > 0 && (epoch%cfg.LogEvery == 0 || epoch == cfg.Epochs-1) {
			log.Printf("epoch %d: loss %.6f", epoch, loss.Data)
		}
	}

	return losses, nil
}

// Predict forwards one input row through the model and returns the scalar
// output value.
func Predict(model *nn.MLP, row []float64) float64 {
	return model.Forward(wrap(row))[0].Data
}

func wrap(row []float64) []*tensor.Tensor {
	ins := make([]*tensor.Tensor, len(row))
	for i, v := range row {
		ins[i] = tensor.New(v)
	}
	return ins
}
