package tensor

import "fmt"

// BroadcastShapes reconciles two shapes under NumPy-style broadcasting.
//
// Shapes align by trailing dimension; the shorter one is implicitly
// left-padded with length-1 dimensions. An aligned pair (a, b) is compatible
// iff a == b, a == 1, or b == 1, and the result length is max(a, b). The
// result carries fresh dense strides for the broadcast rank, never strides
// borrowed from either input.
//
// Fails with ErrIncompatibleShape naming both operands on the first
// incompatible pair, and with ErrOverflow if the result element count does
// not fit in an int.
func BroadcastShapes(a, b Shape) (Shape, error) {
	rank := max(len(a.lengths), len(b.lengths))
	lengths := make([]int, rank)

	for i := 0; i < rank; i++ {
		ad, bd := 1, 1
		if d := len(a.lengths) - 1 - i; d >= 0 {
			ad = a.lengths[d]
		}
		if d := len(b.lengths) - 1 - i; d >= 0 {
			bd = b.lengths[d]
		}

		switch {
		case ad == bd:
			lengths[rank-1-i] = ad
		case ad == 1:
			lengths[rank-1-i] = bd
		case bd == 1:
			lengths[rank-1-i] = ad
		default:
			return Shape{}, fmt.Errorf("%w: cannot broadcast %v with %v (dimension %d: %d vs %d)",
				ErrIncompatibleShape, a, b, rank-1-i, ad, bd)
		}
	}

	result, err := NewShape(lengths...)
	if err != nil {
		return Shape{}, fmt.Errorf("broadcast of %v with %v: %w", a, b, err)
	}
	return result, nil
}

// BroadcastableTo reports whether s can broadcast onto a fixed target shape.
// This is the directional check for in-place operations: the target cannot
// grow, so s must not exceed the target's rank and every aligned dimension
// of s must equal the target's or be 1.
func (s Shape) BroadcastableTo(target Shape) bool {
	if len(s.lengths) > len(target.lengths) {
		return false
	}
	for i := 0; i < len(s.lengths); i++ {
		sd := s.lengths[len(s.lengths)-1-i]
		td := target.lengths[len(target.lengths)-1-i]
		if sd != td && sd != 1 {
			return false
		}
	}
	return true
}

// BroadcastIndex maps a multi-index over a broadcast rank back to this
// shape's own linear index. Dimensions where this shape has length 1, or
// which it lacks entirely, contribute a zero stride. The cost is O(rank) per
// element, which is the per-step price of every broadcasted operation.
//
// The index vector must cover at least this shape's rank.
func (s Shape) BroadcastIndex(indices []int) int {
	offset := 0
	for i := 0; i < len(s.lengths); i++ {
		d := len(s.lengths) - 1 - i
		if s.lengths[d] == 1 {
			continue
		}
		offset += indices[len(indices)-1-i] * s.strides[d]
	}
	return offset
}

// BroadcastIndices resolves a broadcast-rank multi-index into each operand's
// own linear index, applying the zero-stride rule of BroadcastIndex to both.
func BroadcastIndices(a, b Shape, indices []int) (int, int) {
	return a.BroadcastIndex(indices), b.BroadcastIndex(indices)
}
