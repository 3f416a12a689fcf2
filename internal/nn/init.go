package nn

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/flint-ml/flint/internal/tensor"
)

// Xavier creates a weight tensor initialized with Xavier (Glorot)
// uniform values.
//
// Values are drawn from U(-bound, bound) with
// bound = sqrt(6 / (fan_in + fan_out)), which keeps the variance of
// activations roughly constant across layers.
//
// Parameters:
//   - src: Random source; pass a seeded source for reproducible runs,
//     or nil for the global source.
//   - fanIn: Number of input units
//   - fanOut: Number of output units
//   - shape: Shape of the weight tensor
//
// Returns a tensor initialized with the Xavier distribution.
func Xavier(src rand.Source, fanIn, fanOut int, shape tensor.Shape) *tensor.Tensor[float64] {
	bound := math.Sqrt(6.0 / float64(fanIn+fanOut))
	dist := distuv.Uniform{Min: -bound, Max: bound, Src: src}

	t := tensor.New[float64](shape)
	data := t.Data()
	for i := range data {
		data[i] = dist.Rand()
	}
	return t
}

// Zeros creates a zero-filled tensor. Commonly used for bias
// initialization.
func Zeros(shape tensor.Shape) *tensor.Tensor[float64] {
	return tensor.New[float64](shape)
}

// Ones creates a tensor filled with ones.
func Ones(shape tensor.Shape) *tensor.Tensor[float64] {
	return tensor.Filled(shape, 1.0)
}
