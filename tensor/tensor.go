// Copyright 2025 The Flint Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public API of the Flint tensor engine.
//
// The package re-exports the core types and operations:
//   - Shape: immutable rank/length/stride descriptor
//   - Tensor[T]: owning N-dimensional array over any numeric scalar type
//   - View[T]: non-owning, stride-described window over a tensor's buffer
//   - The elementwise/reduction operation catalogue with in-place and
//     allocating variants and NumPy-style broadcasting
//
// Example:
//
//	x, _ := tensor.FromSlice([]float64{1, 2, 3, 4}, tensor.MustShape(2, 2))
//	row, _ := tensor.FromSlice([]float64{10, 100}, tensor.MustShape(2))
//	y, _ := x.AddTo(row) // broadcast add: [[11 102] [13 104]]
package tensor

import (
	"math/rand"

	"github.com/flint-ml/flint/internal/tensor"
)

// Scalar is the constraint for supported element types: every built-in
// numeric kind.
type Scalar = tensor.Scalar

// Shape is an immutable descriptor of dimensions: lengths, strides, and
// element count. Rank 0 denotes a scalar with one logical element.
type Shape = tensor.Shape

// Range selects [Start, Start+Len) of one dimension when slicing.
type Range = tensor.Range

// Tensor is an owning N-dimensional array of T.
type Tensor[T Scalar] = tensor.Tensor[T]

// View is a non-owning window over a tensor's buffer. It is valid only
// while its source is.
type View[T Scalar] = tensor.View[T]

// Sentinel errors; match with errors.Is.
var (
	ErrOutOfRange        = tensor.ErrOutOfRange
	ErrIncompatibleShape = tensor.ErrIncompatibleShape
	ErrOverflow          = tensor.ErrOverflow
)

// Shape construction

// NewShape builds a dense row-major shape from explicit dimension lengths.
//
// Example:
//
//	s, err := tensor.NewShape(2, 3, 5) // strides [15 5 1], 30 elements
func NewShape(lengths ...int) (Shape, error) {
	return tensor.NewShape(lengths...)
}

// MustShape is NewShape that panics on error. Intended for literal shapes.
func MustShape(lengths ...int) Shape {
	return tensor.MustShape(lengths...)
}

// BroadcastShapes reconciles two shapes under NumPy-style broadcasting
// rules, or fails with ErrIncompatibleShape.
//
// Example:
//
//	s, err := tensor.BroadcastShapes(
//	    tensor.MustShape(2, 3, 1),
//	    tensor.MustShape(1, 3, 5),
//	) // [2 3 5]
func BroadcastShapes(a, b Shape) (Shape, error) {
	return tensor.BroadcastShapes(a, b)
}

// Tensor construction

// New creates a zero-filled tensor of the given shape.
//
// Example:
//
//	t := tensor.New[float32](tensor.MustShape(2, 3))
func New[T Scalar](shape Shape) *Tensor[T] {
	return tensor.New[T](shape)
}

// Filled creates a tensor with every element set to value.
//
// Example:
//
//	t := tensor.Filled(tensor.MustShape(2, 3), 3.14)
func Filled[T Scalar](shape Shape, value T) *Tensor[T] {
	return tensor.Filled(shape, value)
}

// FromSlice creates a tensor by copying a flat row-major slice.
//
// Example:
//
//	t, err := tensor.FromSlice([]float32{1, 2, 3, 4, 5, 6}, tensor.MustShape(2, 3))
func FromSlice[T Scalar](data []T, shape Shape) (*Tensor[T], error) {
	return tensor.FromSlice(data, shape)
}

// FromRows creates a rank-2 tensor by copying nested row data.
//
// Example:
//
//	t, err := tensor.FromRows([][]float64{{1, 2}, {3, 4}})
func FromRows[T Scalar](rows [][]T) (*Tensor[T], error) {
	return tensor.FromRows(rows)
}

// NewView wraps an existing slice in a view of the given shape without
// copying. The slice must cover the shape's furthest addressed element.
func NewView[T Scalar](data []T, shape Shape) (View[T], error) {
	return tensor.NewView(data, shape)
}

// Iteration primitives

// InitForwardIndex prepares an index vector for forward traversal.
func InitForwardIndex(indices []int) error {
	return tensor.InitForwardIndex(indices)
}

// NextIndex advances an index vector in row-major order, last dimension
// fastest; false means the traversal is exhausted.
func NextIndex(lengths, indices []int) (bool, error) {
	return tensor.NextIndex(lengths, indices)
}

// InitBackwardIndex prepares an index vector for reverse traversal.
func InitBackwardIndex(lengths, indices []int) error {
	return tensor.InitBackwardIndex(lengths, indices)
}

// PrevIndex steps an index vector backwards; false means the traversal is
// exhausted.
func PrevIndex(lengths, indices []int) (bool, error) {
	return tensor.PrevIndex(lengths, indices)
}

// Operation engine

// Accumulate folds op over every element of v in forward traversal order.
//
// Example:
//
//	total := tensor.Accumulate(t.View(), 0.0, func(acc, x float64) float64 {
//	    return acc + x*x
//	})
func Accumulate[T Scalar, A any](v View[T], initial A, op func(A, T) A) A {
	return tensor.Accumulate(v, initial, op)
}

// Apply replaces every element of v with op(element), in place.
func Apply[T Scalar](v View[T], op func(T) T) {
	tensor.Apply(v, op)
}

// ApplyTo applies op(element) into a freshly allocated tensor.
func ApplyTo[T Scalar](v View[T], op func(T) T) *Tensor[T] {
	return tensor.ApplyTo(v, op)
}

// ApplyScalar replaces every element of v with op(element, scalar), in place.
func ApplyScalar[T Scalar](v View[T], scalar T, op func(T, T) T) {
	tensor.ApplyScalar(v, scalar, op)
}

// ApplyScalarTo applies op(element, scalar) into a freshly allocated tensor.
func ApplyScalarTo[T Scalar](v View[T], scalar T, op func(T, T) T) *Tensor[T] {
	return tensor.ApplyScalarTo(v, scalar, op)
}

// Combine writes op(left, right) back into left, broadcasting right onto
// left's fixed shape.
func Combine[T Scalar](left, right View[T], op func(T, T) T) error {
	return tensor.Combine(left, right, op)
}

// CombineTo applies op across the broadcast of both operand shapes into a
// freshly allocated tensor.
func CombineTo[T Scalar](left, right View[T], op func(T, T) T) (*Tensor[T], error) {
	return tensor.CombineTo(left, right, op)
}

// Operation catalogue over views
//
// Every operation also exists as a method on *Tensor; the view forms below
// let callers operate on slices of a tensor directly. The "...To" suffix
// marks the allocating variant; the bare name mutates in place.

// Sum returns the sum of every element of v.
func Sum[T Scalar](v View[T]) T { return tensor.Sum(v) }

// Product returns the product of every element of v.
func Product[T Scalar](v View[T]) T { return tensor.Product(v) }

// Negate negates every element of v in place.
func Negate[T Scalar](v View[T]) { tensor.Negate(v) }

// NegateTo returns a negated copy of v.
func NegateTo[T Scalar](v View[T]) *Tensor[T] { return tensor.NegateTo(v) }

// Add writes left + right into left, broadcasting right onto left's shape.
func Add[T Scalar](left, right View[T]) error { return tensor.Add(left, right) }

// AddTo returns left + right as a new tensor of the broadcast shape.
func AddTo[T Scalar](left, right View[T]) (*Tensor[T], error) { return tensor.AddTo(left, right) }

// Sub writes left - right into left, broadcasting right onto left's shape.
func Sub[T Scalar](left, right View[T]) error { return tensor.Sub(left, right) }

// SubTo returns left - right as a new tensor of the broadcast shape.
func SubTo[T Scalar](left, right View[T]) (*Tensor[T], error) { return tensor.SubTo(left, right) }

// Mul writes left * right into left, broadcasting right onto left's shape.
func Mul[T Scalar](left, right View[T]) error { return tensor.Mul(left, right) }

// MulTo returns left * right as a new tensor of the broadcast shape.
func MulTo[T Scalar](left, right View[T]) (*Tensor[T], error) { return tensor.MulTo(left, right) }

// Div writes left / right into left, broadcasting right onto left's shape.
func Div[T Scalar](left, right View[T]) error { return tensor.Div(left, right) }

// DivTo returns left / right as a new tensor of the broadcast shape.
func DivTo[T Scalar](left, right View[T]) (*Tensor[T], error) { return tensor.DivTo(left, right) }

// Mod writes left % right into left, broadcasting right onto left's shape.
func Mod[T Scalar](left, right View[T]) error { return tensor.Mod(left, right) }

// ModTo returns left % right as a new tensor of the broadcast shape.
func ModTo[T Scalar](left, right View[T]) (*Tensor[T], error) { return tensor.ModTo(left, right) }

// AddScalar adds scalar to every element of v in place.
func AddScalar[T Scalar](v View[T], scalar T) { tensor.AddScalar(v, scalar) }

// AddScalarTo returns a copy of v with scalar added to every element.
func AddScalarTo[T Scalar](v View[T], scalar T) *Tensor[T] { return tensor.AddScalarTo(v, scalar) }

// SubScalar subtracts scalar from every element of v in place.
func SubScalar[T Scalar](v View[T], scalar T) { tensor.SubScalar(v, scalar) }

// SubScalarTo returns a copy of v with scalar subtracted from every element.
func SubScalarTo[T Scalar](v View[T], scalar T) *Tensor[T] { return tensor.SubScalarTo(v, scalar) }

// MulScalar multiplies every element of v by scalar in place.
func MulScalar[T Scalar](v View[T], scalar T) { tensor.MulScalar(v, scalar) }

// MulScalarTo returns a copy of v with every element multiplied by scalar.
func MulScalarTo[T Scalar](v View[T], scalar T) *Tensor[T] { return tensor.MulScalarTo(v, scalar) }

// DivScalar divides every element of v by scalar in place.
func DivScalar[T Scalar](v View[T], scalar T) { tensor.DivScalar(v, scalar) }

// DivScalarTo returns a copy of v with every element divided by scalar.
func DivScalarTo[T Scalar](v View[T], scalar T) *Tensor[T] { return tensor.DivScalarTo(v, scalar) }

// ModScalar reduces every element of v modulo scalar in place.
func ModScalar[T Scalar](v View[T], scalar T) { tensor.ModScalar(v, scalar) }

// ModScalarTo returns a copy of v with every element reduced modulo scalar.
func ModScalarTo[T Scalar](v View[T], scalar T) *Tensor[T] { return tensor.ModScalarTo(v, scalar) }

// Fill sets every element of v to value.
func Fill[T Scalar](v View[T], value T) { tensor.Fill(v, value) }

// Copy writes src's values into dst. The source shape must equal the
// destination's or be broadcastable onto it.
func Copy[T Scalar](dst, src View[T]) error { return tensor.Copy(dst, src) }

// Randomize fills v with uniformly distributed values in [min, max) drawn
// from rng. A nil rng uses a package-shared entropy-seeded source.
func Randomize[T Scalar](v View[T], rng *rand.Rand, min, max T) {
	tensor.Randomize(v, rng, min, max)
}
