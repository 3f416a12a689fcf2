package nn

import (
	"math"

	"github.com/flint-ml/flint/internal/tensor"
)

// ReLU is a Rectified Linear Unit activation layer.
//
// Applies the element-wise function: f(x) = max(0, x)
//
// ReLU is the most commonly used activation function in deep learning.
// It helps with the vanishing gradient problem and is computationally
// cheap.
type ReLU struct {
	input *tensor.Tensor[float64]
}

// NewReLU creates a new ReLU activation layer.
func NewReLU() *ReLU {
	return &ReLU{}
}

// Forward applies f(x) = max(0, x) element-wise.
func (r *ReLU) Forward(input *tensor.Tensor[float64]) *tensor.Tensor[float64] {
	r.input = input
	return tensor.ApplyTo(input.View(), func(x float64) float64 {
		return math.Max(0, x)
	})
}

// Backward zeroes the upstream gradient wherever the input was negative.
func (r *ReLU) Backward(grad *tensor.Tensor[float64]) *tensor.Tensor[float64] {
	if r.input == nil {
		panic("nn: ReLU.Backward called before Forward")
	}
	out, err := tensor.CombineTo(grad.View(), r.input.View(), func(g, x float64) float64 {
		if x > 0 {
			return g
		}
		return 0
	})
	if err != nil {
		panic("nn: ReLU.Backward shape mismatch: " + err.Error())
	}
	return out
}

// Parameters returns nil; ReLU has no trainable parameters.
func (r *ReLU) Parameters() []*Parameter {
	return nil
}

// Sigmoid is a sigmoid activation layer.
//
// Applies the element-wise function: σ(x) = 1 / (1 + exp(-x))
//
// Sigmoid squashes values to the range (0, 1), making it useful for
// binary classification outputs.
type Sigmoid struct {
	output *tensor.Tensor[float64]
}

// NewSigmoid creates a new Sigmoid activation layer.
func NewSigmoid() *Sigmoid {
	return &Sigmoid{}
}

// Forward applies σ(x) = 1 / (1 + exp(-x)) element-wise.
func (s *Sigmoid) Forward(input *tensor.Tensor[float64]) *tensor.Tensor[float64] {
	s.output = tensor.ApplyTo(input.View(), func(x float64) float64 {
		return 1.0 / (1.0 + math.Exp(-x))
	})
	return s.output
}

// Backward scales the upstream gradient by σ(x)(1-σ(x)), reusing the
// activation computed in Forward.
func (s *Sigmoid) Backward(grad *tensor.Tensor[float64]) *tensor.Tensor[float64] {
	if s.output == nil {
		panic("nn: Sigmoid.Backward called before Forward")
	}
	out, err := tensor.CombineTo(grad.View(), s.output.View(), func(g, y float64) float64 {
		return g * y * (1 - y)
	})
	if err != nil {
		panic("nn: Sigmoid.Backward shape mismatch: " + err.Error())
	}
	return out
}

// Parameters returns nil; Sigmoid has no trainable parameters.
func (s *Sigmoid) Parameters() []*Parameter {
	return nil
}

// Softmax converts each row of logits to a probability distribution.
//
// Uses the max-subtraction trick for numerical stability, so rows with
// large logits do not overflow exp.
//
// Input shape: [batch_size, num_classes]
// Output shape: [batch_size, num_classes], each row sums to 1.
func Softmax(logits *tensor.Tensor[float64]) *tensor.Tensor[float64] {
	s := logits.Shape()
	if s.Rank() != 2 {
		panic("nn: Softmax expects 2D logits [batch, classes]")
	}
	batch, classes := s.Len(0), s.Len(1)

	out := logits.Clone()
	data := out.Data()
	for i := 0; i < batch; i++ {
		row := data[i*classes : (i+1)*classes]

		maxv := math.Inf(-1)
		for _, v := range row {
			maxv = math.Max(maxv, v)
		}
		sum := 0.0
		for j, v := range row {
			row[j] = math.Exp(v - maxv)
			sum += row[j]
		}
		for j := range row {
			row[j] /= sum
		}
	}
	return out
}
