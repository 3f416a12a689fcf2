// Package nn provides neural network layers built on the tensor engine.
//
// Layers hold their parameters as owning tensors and implement manual
// backpropagation: Forward retains whatever activations the gradient
// needs, Backward consumes the upstream gradient and accumulates
// parameter gradients for the optimizer.
package nn

import (
	"github.com/flint-ml/flint/internal/tensor"
)

// Layer is the interface implemented by every network layer.
type Layer interface {
	// Forward computes the layer output and retains any state the
	// backward pass needs.
	Forward(input *tensor.Tensor[float64]) *tensor.Tensor[float64]

	// Backward consumes the gradient of the loss with respect to the
	// layer output, accumulates parameter gradients, and returns the
	// gradient with respect to the layer input.
	Backward(grad *tensor.Tensor[float64]) *tensor.Tensor[float64]

	// Parameters returns the layer's trainable parameters, or nil.
	Parameters() []*Parameter
}

// Sequential chains layers so that each layer's output feeds the next
// layer's input.
//
// Example:
//
//	model := nn.NewSequential(
//	    nn.NewDense(src, 784, 128),
//	    nn.NewReLU(),
//	    nn.NewDense(src, 128, 10),
//	)
type Sequential struct {
	layers []Layer
}

// NewSequential creates a sequential container over the given layers.
func NewSequential(layers ...Layer) *Sequential {
	return &Sequential{layers: layers}
}

// Forward runs the input through every layer in order.
func (s *Sequential) Forward(input *tensor.Tensor[float64]) *tensor.Tensor[float64] {
	out := input
	for _, layer := range s.layers {
		out = layer.Forward(out)
	}
	return out
}

// Backward propagates the gradient through every layer in reverse
// order and returns the gradient with respect to the network input.
func (s *Sequential) Backward(grad *tensor.Tensor[float64]) *tensor.Tensor[float64] {
	for i := len(s.layers) - 1; i >= 0; i-- {
		grad = s.layers[i].Backward(grad)
	}
	return grad
}

// Parameters returns the parameters of all layers, in layer order.
func (s *Sequential) Parameters() []*Parameter {
	var params []*Parameter
	for _, layer := range s.layers {
		params = append(params, layer.Parameters()...)
	}
	return params
}

// ZeroGrad clears the gradients of every parameter in the network.
func (s *Sequential) ZeroGrad() {
	for _, p := range s.Parameters() {
		p.ZeroGrad()
	}
}
