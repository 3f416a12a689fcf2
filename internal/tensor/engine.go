package tensor

import "fmt"

// The operation engine: generic drivers that run a user-supplied scalar
// function across one tensor, two tensors, or a tensor and a scalar, with or
// without broadcasting, mutating in place or allocating a result.
//
// All drivers visit elements strictly sequentially in forward traversal
// order (NextIndex order), so accumulation order is deterministic. Rank-0
// shapes are handled as exactly one element at linear index 0, since a
// zero-length index vector cannot carry the traversal sentinel. Operation
// functions are assumed pure; the engine promises nothing about call order
// beyond the traversal order itself.

// Accumulate folds op(accumulator, element) over every element of v in
// forward traversal order, starting from initial, and returns the final
// accumulator. An empty view returns initial unchanged.
func Accumulate[T Scalar, A any](v View[T], initial A, op func(A, T) A) A {
	if v.shape.elems == 0 {
		return initial
	}
	if v.shape.Rank() == 0 {
		return op(initial, v.data[0])
	}

	acc := initial
	indices := make([]int, v.shape.Rank())
	_ = InitForwardIndex(indices)
	for {
		ok, _ := NextIndex(v.shape.lengths, indices)
		if !ok {
			return acc
		}
		acc = op(acc, v.data[v.shape.LinearIndexUnchecked(indices...)])
	}
}

// Apply replaces every element of v with op(element), in place.
func Apply[T Scalar](v View[T], op func(T) T) {
	eachIndex(v.shape, func(i int) {
		v.data[i] = op(v.data[i])
	})
}

// ApplyTo applies op(element) into a freshly allocated tensor of the same
// lengths as v, leaving v untouched.
func ApplyTo[T Scalar](v View[T], op func(T) T) *Tensor[T] {
	out := MustShape(v.shape.lengths...)
	t := New[T](out)
	i := 0
	eachIndex(v.shape, func(src int) {
		t.data[i] = op(v.data[src])
		i++
	})
	return t
}

// ApplyScalar replaces every element of v with op(element, scalar), in place.
func ApplyScalar[T Scalar](v View[T], scalar T, op func(T, T) T) {
	eachIndex(v.shape, func(i int) {
		v.data[i] = op(v.data[i], scalar)
	})
}

// ApplyScalarTo applies op(element, scalar) into a freshly allocated tensor
// of the same lengths as v, leaving v untouched.
func ApplyScalarTo[T Scalar](v View[T], scalar T, op func(T, T) T) *Tensor[T] {
	out := MustShape(v.shape.lengths...)
	t := New[T](out)
	i := 0
	eachIndex(v.shape, func(src int) {
		t.data[i] = op(v.data[src], scalar)
		i++
	})
	return t
}

// Combine writes op(left, right) back into left for every element of left's
// shape. The right shape must be broadcastable to the left one, since the
// left shape is fixed and cannot grow for an in-place write; otherwise the
// call fails with ErrIncompatibleShape.
func Combine[T Scalar](left, right View[T], op func(T, T) T) error {
	if !right.shape.BroadcastableTo(left.shape) {
		return fmt.Errorf("%w: cannot broadcast %v onto fixed shape %v", ErrIncompatibleShape, right.shape, left.shape)
	}

	ls := left.shape
	if ls.elems == 0 {
		return nil
	}
	if ls.Rank() == 0 {
		left.data[0] = op(left.data[0], right.data[0])
		return nil
	}

	indices := make([]int, ls.Rank())
	_ = InitForwardIndex(indices)
	for {
		ok, _ := NextIndex(ls.lengths, indices)
		if !ok {
			return nil
		}
		li := ls.LinearIndexUnchecked(indices...)
		ri := right.shape.BroadcastIndex(indices)
		left.data[li] = op(left.data[li], right.data[ri])
	}
}

// CombineTo broadcasts the two operand shapes, allocates a dense tensor of
// the broadcast shape, and fills it with op(left, right) for every
// broadcast-rank index. Fails with ErrIncompatibleShape when the shapes do
// not broadcast.
func CombineTo[T Scalar](left, right View[T], op func(T, T) T) (*Tensor[T], error) {
	shape, err := BroadcastShapes(left.shape, right.shape)
	if err != nil {
		return nil, err
	}

	t := New[T](shape)
	if shape.elems == 0 {
		return t, nil
	}
	if shape.Rank() == 0 {
		t.data[0] = op(left.data[0], right.data[0])
		return t, nil
	}

	indices := make([]int, shape.Rank())
	_ = InitForwardIndex(indices)
	for i := 0; ; i++ {
		ok, _ := NextIndex(shape.lengths, indices)
		if !ok {
			return t, nil
		}
		li, ri := BroadcastIndices(left.shape, right.shape, indices)
		t.data[i] = op(left.data[li], right.data[ri])
	}
}

// eachIndex walks every linear index of a shape in forward traversal order.
func eachIndex(s Shape, visit func(i int)) {
	if s.elems == 0 {
		return
	}
	if s.Rank() == 0 {
		visit(0)
		return
	}

	indices := make([]int, s.Rank())
	_ = InitForwardIndex(indices)
	for {
		ok, _ := NextIndex(s.lengths, indices)
		if !ok {
			return
		}
		visit(s.LinearIndexUnchecked(indices...))
	}
}
