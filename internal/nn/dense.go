package nn

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"

	"github.com/flint-ml/flint/internal/tensor"
)

// Dense implements a fully connected layer.
//
// Performs the transformation: y = x @ W + b
// where:
//   - x is the input tensor with shape [batch_size, in_features]
//   - W is the weight matrix with shape [in_features, out_features]
//   - b is the bias vector with shape [out_features]
//   - y is the output tensor with shape [batch_size, out_features]
//
// Weights are initialized using Xavier/Glorot initialization.
// Biases are initialized to zeros.
//
// Example:
//
//	layer := nn.NewDense(784, 128, src)
//
//	output := layer.Forward(input) // shape: [32, 128] for batch_size=32
type Dense struct {
	inFeatures  int
	outFeatures int
	weight      *Parameter // [in_features, out_features]
	bias        *Parameter // [out_features]

	input *tensor.Tensor[float64] // retained by Forward for the backward pass
}

// NewDense creates a new fully connected layer.
//
// Weights are initialized using the Xavier/Glorot uniform distribution
// drawn from src; biases start at zero.
func NewDense(src rand.Source, inFeatures, outFeatures int) *Dense {
	weight := Xavier(src, inFeatures, outFeatures, tensor.MustShape(inFeatures, outFeatures))
	bias := Zeros(tensor.MustShape(outFeatures))

	return &Dense{
		inFeatures:  inFeatures,
		outFeatures: outFeatures,
		weight:      NewParameter("weight", weight),
		bias:        NewParameter("bias", bias),
	}
}

// matrix wraps a rank-2 tensor's buffer in a gonum matrix without copying.
func matrix(t *tensor.Tensor[float64]) *mat.Dense {
	s := t.Shape()
	return mat.NewDense(s.Len(0), s.Len(1), t.Data())
}

// Forward computes y = x @ W + b.
//
// Input shape: [batch_size, in_features]
// Output shape: [batch_size, out_features]
//
// The input is retained until Backward runs.
func (d *Dense) Forward(input *tensor.Tensor[float64]) *tensor.Tensor[float64] {
	s := input.Shape()
	if s.Rank() != 2 {
		panic(fmt.Sprintf("nn: Dense.Forward expects 2D input [batch, features], got shape %v", s))
	}
	if s.Len(1) != d.inFeatures {
		panic(fmt.Sprintf("nn: Dense.Forward expects input with %d features, got %d", d.inFeatures, s.Len(1)))
	}
	d.input = input

	batch := s.Len(0)
	output := tensor.New[float64](tensor.MustShape(batch, d.outFeatures))
	matrix(output).Mul(matrix(input), matrix(d.weight.Tensor()))

	// Broadcast bias [out_features] across the batch dimension.
	if err := output.Add(d.bias.Tensor()); err != nil {
		panic("nn: Dense bias broadcast failed: " + err.Error())
	}
	return output
}

// Backward propagates the upstream gradient through the layer.
//
// Given dL/dy with shape [batch_size, out_features], it accumulates
//   - dL/dW = x.T @ dL/dy into the weight gradient
//   - dL/db = column sums of dL/dy into the bias gradient
//
// and returns dL/dx = dL/dy @ W.T with shape [batch_size, in_features].
func (d *Dense) Backward(grad *tensor.Tensor[float64]) *tensor.Tensor[float64] {
	if d.input == nil {
		panic("nn: Dense.Backward called before Forward")
	}
	batch := grad.Shape().Len(0)

	gradW := tensor.New[float64](tensor.MustShape(d.inFeatures, d.outFeatures))
	matrix(gradW).Mul(matrix(d.input).T(), matrix(grad))
	d.weight.AccumulateGrad(gradW)

	gradB := tensor.New[float64](tensor.MustShape(d.outFeatures))
	gdata, bdata := grad.Data(), gradB.Data()
	for i := 0; i < batch; i++ {
		for j := 0; j < d.outFeatures; j++ {
			bdata[j] += gdata[i*d.outFeatures+j]
		}
	}
	d.bias.AccumulateGrad(gradB)

	gradX := tensor.New[float64](tensor.MustShape(batch, d.inFeatures))
	matrix(gradX).Mul(matrix(grad), matrix(d.weight.Tensor()).T())
	return gradX
}

// Parameters returns the trainable parameters, [weight, bias].
func (d *Dense) Parameters() []*Parameter {
	return []*Parameter{d.weight, d.bias}
}

// Weight returns the weight parameter.
func (d *Dense) Weight() *Parameter {
	return d.weight
}

// Bias returns the bias parameter.
func (d *Dense) Bias() *Parameter {
	return d.bias
}
