package tensor

import "fmt"

// Tensor is an owning N-dimensional array: a Shape plus a contiguous backing
// buffer of exactly Shape.Elements() scalars. The buffer's lifetime equals
// the tensor's; mutation happens only through explicit element access, the
// Data slice, or the operation catalogue.
//
// Tensors are not thread-safe; concurrent mutation must be synchronized by
// the caller.
type Tensor[T Scalar] struct {
	shape Shape
	data  []T
}

// New creates a zero-filled tensor of the given shape.
func New[T Scalar](shape Shape) *Tensor[T] {
	return &Tensor[T]{
		shape: shape,
		data:  make([]T, shape.Elements()),
	}
}

// Filled creates a tensor of the given shape with every element set to value.
func Filled[T Scalar](shape Shape, value T) *Tensor[T] {
	t := New[T](shape)
	for i := range t.data {
		t.data[i] = value
	}
	return t
}

// FromSlice creates a tensor by copying a flat slice laid out in row-major
// order. The slice length must equal the shape's element count.
func FromSlice[T Scalar](data []T, shape Shape) (*Tensor[T], error) {
	if len(data) != shape.Elements() {
		return nil, fmt.Errorf("%w: shape %v requires %d elements, got %d",
			ErrIncompatibleShape, shape, shape.Elements(), len(data))
	}
	t := New[T](shape)
	copy(t.data, data)
	return t, nil
}

// FromRows creates a rank-2 tensor by copying nested row data. Every row
// must have the same length.
func FromRows[T Scalar](rows [][]T) (*Tensor[T], error) {
	cols := 0
	if len(rows) > 0 {
		cols = len(rows[0])
	}
	shape, err := NewShape(len(rows), cols)
	if err != nil {
		return nil, err
	}

	t := New[T](shape)
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d elements, want %d", ErrIncompatibleShape, i, len(row), cols)
		}
		copy(t.data[i*cols:], row)
	}
	return t, nil
}

// Shape returns the tensor's shape.
func (t *Tensor[T]) Shape() Shape {
	return t.shape
}

// Rank returns the number of dimensions.
func (t *Tensor[T]) Rank() int {
	return t.shape.Rank()
}

// Elements returns the total number of elements.
func (t *Tensor[T]) Elements() int {
	return t.shape.Elements()
}

// Data returns the backing buffer in row-major order.
// Modifications through the returned slice modify the tensor.
func (t *Tensor[T]) Data() []T {
	return t.data
}

// Clone returns a deep copy: value-equal but storage-independent, so
// mutating the clone never affects the original.
func (t *Tensor[T]) Clone() *Tensor[T] {
	c := New[T](t.shape)
	copy(c.data, t.data)
	return c
}

// At returns the element at the given multi-index. Indices shorter than the
// rank address the trailing dimensions. Panics on an out-of-range index.
func (t *Tensor[T]) At(indices ...int) T {
	i, err := t.shape.LinearIndex(indices...)
	if err != nil {
		panic(err)
	}
	return t.data[i]
}

// Set stores value at the given multi-index. Panics on an out-of-range index.
func (t *Tensor[T]) Set(value T, indices ...int) {
	i, err := t.shape.LinearIndex(indices...)
	if err != nil {
		panic(err)
	}
	t.data[i] = value
}

// AtLinear returns the element at a flat row-major offset.
func (t *Tensor[T]) AtLinear(i int) T {
	return t.data[i]
}

// SetLinear stores value at a flat row-major offset.
func (t *Tensor[T]) SetLinear(i int, value T) {
	t.data[i] = value
}

// Item returns the value of a single-element tensor (rank 0 or all lengths
// 1). Panics otherwise.
func (t *Tensor[T]) Item() T {
	if t.shape.Elements() != 1 {
		panic(fmt.Sprintf("Item: tensor of shape %v has %d elements, want 1", t.shape, t.shape.Elements()))
	}
	return t.data[0]
}

// View returns a non-owning window over the whole tensor.
func (t *Tensor[T]) View() View[T] {
	return View[T]{shape: t.shape, data: t.data}
}

// Slice carves a view over a window of the tensor without copying: one Range
// per leading dimension, uncovered dimensions keep their full range. The
// view reuses the tensor's strides and is only valid while the tensor is.
func (t *Tensor[T]) Slice(ranges ...Range) (View[T], error) {
	return t.View().Slice(ranges...)
}

// String returns a short description like "Tensor[2 3]".
func (t *Tensor[T]) String() string {
	return fmt.Sprintf("Tensor%v", t.shape)
}
