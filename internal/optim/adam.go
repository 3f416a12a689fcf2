package optim

import (
	"math"

	"github.com/flint-ml/flint/internal/nn"
	"github.com/flint-ml/flint/internal/tensor"
)

// Adam implements the Adam optimizer with bias correction.
//
// Update rule:
//
//	m = beta1 * m + (1 - beta1) * grad
//	v = beta2 * v + (1 - beta2) * grad^2
//	m_hat = m / (1 - beta1^t)
//	v_hat = v / (1 - beta2^t)
//	param = param - lr * m_hat / (sqrt(v_hat) + eps)
//
// Adam adapts the learning rate per weight using running estimates of
// the first and second gradient moments.
type Adam struct {
	params []*nn.Parameter
	lr     float64
	beta1  float64
	beta2  float64
	eps    float64
	step   int

	firstMoments  map[*nn.Parameter]*tensor.Tensor[float64]
	secondMoments map[*nn.Parameter]*tensor.Tensor[float64]
}

// AdamConfig holds configuration for the Adam optimizer. Zero fields
// take the conventional defaults.
type AdamConfig struct {
	LR    float64 // Learning rate (default: 0.001)
	Beta1 float64 // First moment decay (default: 0.9)
	Beta2 float64 // Second moment decay (default: 0.999)
	Eps   float64 // Denominator fuzz (default: 1e-8)
}

// NewAdam creates a new Adam optimizer over the given parameters.
func NewAdam(params []*nn.Parameter, config AdamConfig) *Adam {
	if config.LR == 0 {
		config.LR = 0.001
	}
	if config.Beta1 == 0 {
		config.Beta1 = 0.9
	}
	if config.Beta2 == 0 {
		config.Beta2 = 0.999
	}
	if config.Eps == 0 {
		config.Eps = 1e-8
	}
	return &Adam{
		params:        params,
		lr:            config.LR,
		beta1:         config.Beta1,
		beta2:         config.Beta2,
		eps:           config.Eps,
		firstMoments:  make(map[*nn.Parameter]*tensor.Tensor[float64]),
		secondMoments: make(map[*nn.Parameter]*tensor.Tensor[float64]),
	}
}

// Step applies one Adam update to every parameter that has a gradient.
func (a *Adam) Step() {
	a.step++
	correction1 := 1.0 - math.Pow(a.beta1, float64(a.step))
	correction2 := 1.0 - math.Pow(a.beta2, float64(a.step))

	for _, param := range a.params {
		grad := param.Grad()
		if grad == nil {
			continue
		}

		m, ok := a.firstMoments[param]
		if !ok {
			m = tensor.New[float64](grad.Shape())
			a.firstMoments[param] = m
		}
		v, ok := a.secondMoments[param]
		if !ok {
			v = tensor.New[float64](grad.Shape())
			a.secondMoments[param] = v
		}

		mData, vData, gData := m.Data(), v.Data(), grad.Data()
		pData := param.Tensor().Data()
		for i, g := range gData {
			mData[i] = a.beta1*mData[i] + (1-a.beta1)*g
			vData[i] = a.beta2*vData[i] + (1-a.beta2)*g*g

			mHat := mData[i] / correction1
			vHat := vData[i] / correction2
			pData[i] -= a.lr * mHat / (math.Sqrt(vHat) + a.eps)
		}
	}
}

// ZeroGrad clears the gradients of all managed parameters.
func (a *Adam) ZeroGrad() {
	zeroGrads(a.params)
}
