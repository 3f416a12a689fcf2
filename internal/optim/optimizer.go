// Package optim provides gradient descent optimizers for network
// parameters.
//
// Optimizers read the gradients accumulated on parameters during the
// backward pass and update the parameter tensors in place.
package optim

import (
	"github.com/flint-ml/flint/internal/nn"
)

// Optimizer is the interface implemented by all optimizers.
type Optimizer interface {
	// Step applies one update to every parameter that has a gradient.
	// Parameters without a gradient are skipped.
	Step()

	// ZeroGrad clears the gradients of all managed parameters.
	ZeroGrad()
}

// zeroGrads clears gradients on a parameter list. Shared by all
// optimizer implementations.
func zeroGrads(params []*nn.Parameter) {
	for _, p := range params {
		p.ZeroGrad()
	}
}
