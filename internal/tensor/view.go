package tensor

import "fmt"

// View is a non-owning window over someone else's buffer, described by a
// Shape and a starting position. The shape's strides address the underlying
// slice, so a view produced by slicing may be non-dense. A view never
// outlives its source: it is only valid while the buffer it points into is,
// which Go's garbage collector guarantees for views over live tensors.
//
// Overlapping views share their source buffer; concurrent writes through
// them race exactly as concurrent writes through overlapping slices would.
type View[T Scalar] struct {
	shape Shape
	data  []T // window origin at data[0]
}

// NewView wraps an existing slice in a view of the given shape. The slice
// must be long enough to hold the shape's furthest addressed element.
func NewView[T Scalar](data []T, shape Shape) (View[T], error) {
	if span := shape.span(); span > len(data) {
		return View[T]{}, fmt.Errorf("%w: shape %v spans %d elements, buffer holds %d",
			ErrOutOfRange, shape, span, len(data))
	}
	return View[T]{shape: shape, data: data}, nil
}

// span returns the number of buffer positions the shape addresses: one past
// the largest linear index, 0 for an empty shape.
func (s Shape) span() int {
	if s.elems == 0 {
		return 0
	}
	last := 0
	for d := range s.lengths {
		last += (s.lengths[d] - 1) * s.strides[d]
	}
	return last + 1
}

// Shape returns the view's shape.
func (v View[T]) Shape() Shape {
	return v.shape
}

// Rank returns the number of dimensions.
func (v View[T]) Rank() int {
	return v.shape.Rank()
}

// Elements returns the total number of elements.
func (v View[T]) Elements() int {
	return v.shape.Elements()
}

// Data returns the underlying buffer starting at the view's origin. For a
// non-dense view the slice also covers positions between the view's
// elements; index through the shape's strides to stay inside the window.
func (v View[T]) Data() []T {
	return v.data
}

// At returns the element at the given multi-index. Indices shorter than the
// rank address the trailing dimensions. Panics on an out-of-range index.
func (v View[T]) At(indices ...int) T {
	i, err := v.checkedIndex(indices)
	if err != nil {
		panic(err)
	}
	return v.data[i]
}

// Set stores value at the given multi-index. Panics on an out-of-range index.
func (v View[T]) Set(value T, indices ...int) {
	i, err := v.checkedIndex(indices)
	if err != nil {
		panic(err)
	}
	v.data[i] = value
}

// checkedIndex validates each index against its dimension length, then maps
// through the view's strides. The element-count bound of Shape.LinearIndex
// does not apply here: a non-dense view legitimately addresses positions
// beyond its own element count.
func (v View[T]) checkedIndex(indices []int) (int, error) {
	s := v.shape
	if len(indices) > len(s.lengths) {
		return 0, fmt.Errorf("%w: %d indices for shape %v of rank %d", ErrOutOfRange, len(indices), s, len(s.lengths))
	}
	base := len(s.lengths) - len(indices)
	offset := 0
	for i, idx := range indices {
		d := base + i
		if idx < 0 || idx >= s.lengths[d] {
			return 0, fmt.Errorf("%w: index %d out of bounds for dimension %d (length %d)", ErrOutOfRange, idx, d, s.lengths[d])
		}
		offset += idx * s.strides[d]
	}
	return offset, nil
}

// Slice carves a narrower view over the same buffer: one Range per leading
// dimension, uncovered dimensions keep their full range. No data is copied;
// the result reuses this view's strides with a shifted origin.
func (v View[T]) Slice(ranges ...Range) (View[T], error) {
	sub, offset, err := v.shape.SubShape(ranges...)
	if err != nil {
		return View[T]{}, err
	}

	data := v.data
	if offset < len(data) {
		data = data[offset:]
	} else {
		data = nil // empty window at or past the buffer end
	}
	return View[T]{shape: sub, data: data}, nil
}

// Clone materializes the view into a fresh dense owning tensor of the same
// shape, visiting elements in forward traversal order.
func (v View[T]) Clone() *Tensor[T] {
	out, err := NewShape(v.shape.lengths...)
	if err != nil {
		panic(err) // lengths came from a valid shape
	}
	t := New[T](out)

	if v.shape.elems == 0 {
		return t
	}
	if v.shape.Rank() == 0 {
		t.data[0] = v.data[0]
		return t
	}

	indices := make([]int, v.shape.Rank())
	_ = InitForwardIndex(indices)
	for i := 0; ; i++ {
		ok, _ := NextIndex(v.shape.lengths, indices)
		if !ok {
			break
		}
		t.data[i] = v.data[v.shape.LinearIndexUnchecked(indices...)]
	}
	return t
}

// String returns a short description like "View[2 3]".
func (v View[T]) String() string {
	return fmt.Sprintf("View%v", v.shape)
}
