package nn

import (
	"github.com/golangast/scalargrad/neural/tensor"
)

// Optimizer interface defines the contract for optimizers.
type Optimizer interface {
	Step()
	ZeroGrad()
}

// SGD is a plain gradient-descent optimizer over a flat collection of
// parameter tensors.
type SGD struct {
	parameters   []*tensor.Tensor
	learningRate float64
	clipValue    float64
}

// NewSGD creates a gradient-descent optimizer. clipValue <= 0 disables
// gradient clipping.
func NewSGD(parameters []*tensor.Tensor, learningRate, clipValue float64) Optimizer {
	return &SGD{
		parameters:   parameters,
		learningRate: learningRate,
		clipValue:    clipValue,
	}
}

// Step performs a single optimization step, updating each parameter's value
// in place: Data -= learningRate * Grad.
func (o *SGD) Step() {
	for _, p := range o.parameters {
		g := p.Grad
		if o.clipValue > 0 {
			if g > o.clipValue {
				g = o.clipValue
			} else if g < -o.clipValue {
				g = -o.clipValue
			}
		}
		p.Data -= o.learningRate * g
	}
}

// ZeroGrad resets the gradients of all parameters. Call it before each
// backward pass; Backward itself accumulates onto whatever is there.
func (o *SGD) ZeroGrad() {
	for _, p := range o.parameters {
		p.ZeroGrad()
	}
}
