// Package nn builds small feed-forward networks on top of the scalar
// autograd engine in neural/tensor. Neurons, layers and the multi-layer
// perceptron are thin compositions over the engine's operations, so a single
// Backward call on the loss differentiates through all of them.
package nn

import (
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/golangast/scalargrad/neural/tensor"
)

// Neuron holds a fixed-size collection of weight tensors and one bias
// tensor. Its output is sigmoid(sum(w_i * x_i) + b).
type Neuron struct {
	Weights []*tensor.Tensor
	Bias    *tensor.Tensor
}

// NewNeuron creates a neuron with nin inputs. Weights and bias are
// initialized uniformly in [-1, 1) from rng.
func NewNeuron(nin int, rng *rand.Rand) *Neuron {
	weights := make([]*tensor.Tensor, nin)
	for i := range weights {
		weights[i] = tensor.New(rng.Float64()*2 - 1)
	}
	return &Neuron{
		Weights: weights,
		Bias:    tensor.New(rng.Float64()*2 - 1),
	}
}

// Forward computes the neuron's activation for one example. The inputs
// become operands in the computation graph, so gradients reach both the
// weights and the inputs on Backward.
func (n *Neuron) Forward(inputs []*tensor.Tensor) *tensor.Tensor {
	if len(inputs) != len(n.Weights) {
		panic(fmt.Sprintf("neuron with %d weights given %d inputs", len(n.Weights), len(inputs)))
	}
	act := n.Bias
	for i, in := range inputs {
		act = tensor.Add(act, tensor.Mul(n.Weights[i], in))
	}
	return tensor.Sigmoid(act)
}

// Parameters returns the neuron's weights followed by its bias.
func (n *Neuron) Parameters() []*tensor.Tensor {
	params := make([]*tensor.Tensor, 0, len(n.Weights)+1)
	params = append(params, n.Weights...)
	params = append(params, n.Bias)
	return params
}
