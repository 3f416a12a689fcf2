package tensor

import (
	"fmt"
	"math"
	"strings"
)

// Shape is an immutable descriptor of a tensor's dimensions: per-dimension
// lengths, per-dimension strides, and the total element count.
//
// Rank 0 denotes a scalar with exactly one logical element and empty
// lengths/strides. Strides are stored independently of lengths: a Shape
// derived by SubShape keeps its parent's strides and may describe a
// non-dense window over the parent's buffer.
type Shape struct {
	lengths []int
	strides []int
	elems   int
}

// NewShape builds a dense row-major shape from explicit dimension lengths.
// The last dimension varies fastest; strides are the right-to-left running
// product of the lengths. If any length is 0, the element count is 0 and
// every stride is 0, so degenerate shapes never feed garbage downstream.
//
// Fails with ErrOutOfRange on a negative length and ErrOverflow if the
// element count does not fit in an int.
func NewShape(lengths ...int) (Shape, error) {
	if len(lengths) == 0 {
		return Shape{elems: 1}, nil // Scalar
	}

	elems := 1
	for d, n := range lengths {
		if n < 0 {
			return Shape{}, fmt.Errorf("%w: negative length %d at dimension %d", ErrOutOfRange, n, d)
		}
		if n != 0 && elems > math.MaxInt/n {
			return Shape{}, fmt.Errorf("%w: element count of shape %v exceeds int range", ErrOverflow, lengths)
		}
		elems *= n
	}

	strides := make([]int, len(lengths))
	if elems > 0 {
		strides[len(lengths)-1] = 1
		for d := len(lengths) - 2; d >= 0; d-- {
			strides[d] = strides[d+1] * lengths[d+1]
		}
	}

	return Shape{
		lengths: append([]int(nil), lengths...),
		strides: strides,
		elems:   elems,
	}, nil
}

// MustShape is NewShape that panics on error. Intended for literal shapes.
func MustShape(lengths ...int) Shape {
	s, err := NewShape(lengths...)
	if err != nil {
		panic(err)
	}
	return s
}

// Rank returns the number of dimensions; 0 for a scalar.
func (s Shape) Rank() int {
	return len(s.lengths)
}

// Elements returns the total number of logical elements: the product of the
// lengths, 1 for a scalar, 0 if any length is 0.
func (s Shape) Elements() int {
	return s.elems
}

// Len returns the length of dimension d.
func (s Shape) Len(d int) int {
	return s.lengths[d]
}

// Stride returns the stride of dimension d.
func (s Shape) Stride(d int) int {
	return s.strides[d]
}

// Lengths returns a copy of the per-dimension lengths.
func (s Shape) Lengths() []int {
	return append([]int(nil), s.lengths...)
}

// Strides returns a copy of the per-dimension strides.
func (s Shape) Strides() []int {
	return append([]int(nil), s.strides...)
}

// Equal reports whether two shapes have the same rank and identical lengths.
// Strides are irrelevant to equality.
func (s Shape) Equal(other Shape) bool {
	if len(s.lengths) != len(other.lengths) {
		return false
	}
	for d := range s.lengths {
		if s.lengths[d] != other.lengths[d] {
			return false
		}
	}
	return true
}

// String returns a human-readable form like "[2 3 5]"; "scalar" for rank 0.
func (s Shape) String() string {
	if len(s.lengths) == 0 {
		return "scalar"
	}
	parts := make([]string, len(s.lengths))
	for d, n := range s.lengths {
		parts[d] = fmt.Sprint(n)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// LinearIndex maps a multi-index to the flat offset into the backing buffer.
//
// The index vector may be shorter than the rank; it then addresses the
// trailing dimensions only, with implicit leading zeros. Each index is
// validated against its dimension length and the final offset against the
// element count; violations fail with ErrOutOfRange.
func (s Shape) LinearIndex(indices ...int) (int, error) {
	if len(indices) > len(s.lengths) {
		return 0, fmt.Errorf("%w: %d indices for shape %v of rank %d", ErrOutOfRange, len(indices), s, len(s.lengths))
	}

	offset := 0
	base := len(s.lengths) - len(indices)
	for i, idx := range indices {
		d := base + i
		if idx < 0 || idx >= s.lengths[d] {
			return 0, fmt.Errorf("%w: index %d out of bounds for dimension %d (length %d)", ErrOutOfRange, idx, d, s.lengths[d])
		}
		offset += idx * s.strides[d]
	}
	if offset >= s.elems && s.elems > 0 && s.isDense() {
		return 0, fmt.Errorf("%w: linear index %d exceeds element count %d", ErrOutOfRange, offset, s.elems)
	}
	return offset, nil
}

// LinearIndexUnchecked is LinearIndex without bounds validation. Used on hot
// paths after iteration has already been bounded by the shape's lengths.
func (s Shape) LinearIndexUnchecked(indices ...int) int {
	offset := 0
	base := len(s.lengths) - len(indices)
	for i, idx := range indices {
		offset += idx * s.strides[base+i]
	}
	return offset
}

// isDense reports whether the strides are the canonical row-major strides
// for the lengths.
func (s Shape) isDense() bool {
	if s.elems == 0 {
		return true
	}
	expect := 1
	for d := len(s.lengths) - 1; d >= 0; d-- {
		if s.strides[d] != expect {
			return false
		}
		expect *= s.lengths[d]
	}
	return true
}

// Range selects [Start, Start+Len) of one dimension when slicing.
type Range struct {
	Start int
	Len   int
}

// FullRange covers an entire dimension of length n.
func FullRange(n int) Range {
	return Range{Start: 0, Len: n}
}

// SubShape derives the shape of a window over this shape's buffer, plus the
// linear offset of the window's first element.
//
// One range applies per leading dimension; dimensions not covered default to
// their full range. Strides are reused from the parent, not recomputed, so
// the sub-shape may be non-dense. Fails with ErrOutOfRange when no ranges
// are given, more ranges than rank, or a range escapes its dimension.
func (s Shape) SubShape(ranges ...Range) (Shape, int, error) {
	if len(ranges) == 0 {
		return Shape{}, 0, fmt.Errorf("%w: SubShape requires at least one range", ErrOutOfRange)
	}
	if len(ranges) > len(s.lengths) {
		return Shape{}, 0, fmt.Errorf("%w: %d ranges for shape %v of rank %d", ErrOutOfRange, len(ranges), s, len(s.lengths))
	}

	lengths := make([]int, len(s.lengths))
	offset := 0
	for d := range s.lengths {
		r := FullRange(s.lengths[d])
		if d < len(ranges) {
			r = ranges[d]
		}
		if r.Start < 0 || r.Len < 0 || r.Start+r.Len > s.lengths[d] {
			return Shape{}, 0, fmt.Errorf("%w: range [%d, %d) out of bounds for dimension %d (length %d)",
				ErrOutOfRange, r.Start, r.Start+r.Len, d, s.lengths[d])
		}
		lengths[d] = r.Len
		offset += r.Start * s.strides[d]
	}

	elems := 1
	for _, n := range lengths {
		elems *= n
	}

	strides := append([]int(nil), s.strides...)
	if elems == 0 {
		for d := range strides {
			strides[d] = 0
		}
	}

	return Shape{lengths: lengths, strides: strides, elems: elems}, offset, nil
}
