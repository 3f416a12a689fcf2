package nn

import (
	"github.com/flint-ml/flint/internal/tensor"
)

// Parameter represents a trainable parameter in a neural network.
//
// Parameters are tensors whose values the optimizer updates during
// training. They typically represent weights and biases of layers.
//
// Example:
//
//	weight := nn.NewParameter("weight", weightTensor)
//
//	// Access the tensor
//	w := weight.Tensor()
//
//	// Get gradient after backward pass
//	grad := weight.Grad()
type Parameter struct {
	name   string
	tensor *tensor.Tensor[float64]
	grad   *tensor.Tensor[float64] // nil until the first backward pass
}

// NewParameter creates a new trainable parameter.
//
// The parameter tensor should be initialized before creating the
// Parameter. The gradient is allocated on the first backward pass.
func NewParameter(name string, t *tensor.Tensor[float64]) *Parameter {
	return &Parameter{
		name:   name,
		tensor: t,
	}
}

// Name returns the parameter name (e.g., "dense1.weight").
func (p *Parameter) Name() string {
	return p.name
}

// Tensor returns the parameter tensor.
func (p *Parameter) Tensor() *tensor.Tensor[float64] {
	return p.tensor
}

// Grad returns the gradient tensor.
//
// Returns nil if no gradient has been accumulated yet.
func (p *Parameter) Grad() *tensor.Tensor[float64] {
	return p.grad
}

// AccumulateGrad adds grad into the parameter's gradient buffer.
//
// The buffer is allocated on first use and summed into on subsequent
// calls, so gradients from multiple backward passes accumulate until
// ZeroGrad is called.
func (p *Parameter) AccumulateGrad(grad *tensor.Tensor[float64]) {
	if p.grad == nil {
		p.grad = grad.Clone()
		return
	}
	if err := p.grad.Add(grad); err != nil {
		panic("nn: gradient shape does not match parameter shape: " + err.Error())
	}
}

// ZeroGrad clears the gradient buffer.
//
// Call this before each training iteration to avoid accumulating
// gradients across iterations.
func (p *Parameter) ZeroGrad() {
	p.grad = nil
}
