package optim

import (
	"github.com/flint-ml/flint/internal/nn"
	"github.com/flint-ml/flint/internal/tensor"
)

// SGD implements stochastic gradient descent with optional momentum.
//
// Update rule without momentum:
//
//	param = param - lr * gradient
//
// Update rule with momentum:
//
//	velocity = momentum * velocity + gradient
//	param = param - lr * velocity
//
// Momentum accelerates descent along consistent gradient directions
// and dampens oscillations.
//
// Example:
//
//	optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{
//	    LR:       0.01,
//	    Momentum: 0.9,
//	})
//
//	for epoch := 0; epoch < epochs; epoch++ {
//	    loss, grad, _ := nn.MSELoss(model.Forward(x), y)
//	    optimizer.ZeroGrad()
//	    model.Backward(grad)
//	    optimizer.Step()
//	}
type SGD struct {
	params     []*nn.Parameter
	lr         float64
	momentum   float64
	velocities map[*nn.Parameter]*tensor.Tensor[float64]
}

// SGDConfig holds configuration for the SGD optimizer.
type SGDConfig struct {
	LR       float64 // Learning rate (default: 0.01)
	Momentum float64 // Momentum factor (default: 0, range: [0, 1))
}

// NewSGD creates a new SGD optimizer over the given parameters.
func NewSGD(params []*nn.Parameter, config SGDConfig) *SGD {
	if config.LR == 0 {
		config.LR = 0.01
	}
	return &SGD{
		params:     params,
		lr:         config.LR,
		momentum:   config.Momentum,
		velocities: make(map[*nn.Parameter]*tensor.Tensor[float64]),
	}
}

// Step applies one gradient descent update to every parameter that has
// a gradient. Parameters that did not participate in the backward pass
// are skipped.
func (s *SGD) Step() {
	for _, param := range s.params {
		grad := param.Grad()
		if grad == nil {
			continue
		}

		update := grad
		if s.momentum != 0 {
			v, ok := s.velocities[param]
			if !ok {
				v = tensor.New[float64](grad.Shape())
				s.velocities[param] = v
			}
			v.MulScalar(s.momentum)
			if err := v.Add(grad); err != nil {
				panic("optim: velocity shape mismatch: " + err.Error())
			}
			update = v
		}

		scaled := update.Clone()
		scaled.MulScalar(s.lr)
		if err := param.Tensor().Sub(scaled); err != nil {
			panic("optim: parameter update shape mismatch: " + err.Error())
		}
	}
}

// ZeroGrad clears the gradients of all managed parameters.
func (s *SGD) ZeroGrad() {
	zeroGrads(s.params)
}
