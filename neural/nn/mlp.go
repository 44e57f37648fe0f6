package nn

import (
	"golang.org/x/exp/rand"

	"github.com/golangast/scalargrad/neural/tensor"
)

// MLP is a multi-layer perceptron: a sequence of layers where each layer's
// outputs become the next layer's inputs.
type MLP struct {
	// Sizes holds the layer widths, input first: {nin, hidden..., nout}.
	Sizes  []int
	Layers []*Layer
}

// NewMLP creates a network with the given layer widths. sizes[0] is the
// input width; each following entry is the width of one layer.
func NewMLP(sizes []int, rng *rand.Rand) *MLP {
	layers := make([]*Layer, len(sizes)-1)
	for i := range layers {
		layers[i] = NewLayer(sizes[i], sizes[i+1], rng)
	}
	return &MLP{Sizes: sizes, Layers: layers}
}

// Forward threads one example through every layer in order.
func (m *MLP) Forward(inputs []*tensor.Tensor) []*tensor.Tensor {
	outputs := inputs
	for _, l := range m.Layers {
		outputs = l.Forward(outputs)
	}
	return outputs
}

// Parameters returns every weight and bias in the network as a flat list,
// in layer order. The optimizer owns updates to these tensors.
func (m *MLP) Parameters() []*tensor.Tensor {
	var params []*tensor.Tensor
	for _, l := range m.Layers {
		params = append(params, l.Parameters()...)
	}
	return params
}
