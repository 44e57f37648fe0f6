package nn

import (
	"golang.org/x/exp/rand"

	"github.com/golangast/scalargrad/neural/tensor"
)

// Layer is a fixed-size collection of neurons sharing the same input.
type Layer struct {
	Neurons []*Neuron
}

// NewLayer creates a layer of nout neurons, each taking nin inputs.
func NewLayer(nin, nout int, rng *rand.Rand) *Layer {
	neurons := make([]*Neuron, nout)
	for i := range neurons {
		neurons[i] = NewNeuron(nin, rng)
	}
	return &Layer{Neurons: neurons}
}

// Forward feeds the same inputs to every neuron and returns one output per
// neuron.
func (l *Layer) Forward(inputs []*tensor.Tensor) []*tensor.Tensor {
	outputs := make([]*tensor.Tensor, len(l.Neurons))
	for i, n := range l.Neurons {
		outputs[i] = n.Forward(inputs)
	}
	return outputs
}

// Parameters returns the parameters of every neuron in the layer.
func (l *Layer) Parameters() []*tensor.Tensor {
	var params []*tensor.Tensor
	for _, n := range l.Neurons {
		params = append(params, n.Parameters()...)
	}
	return params
}
