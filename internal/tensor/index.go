package tensor

import "fmt"

// Index vectors are mutable []int slices of length at most the rank of the
// shape being traversed. A vector shorter than the rank addresses the
// trailing dimensions only, mirroring Shape.LinearIndex.
//
// Rank-0 shapes bypass this machinery entirely: a zero-length vector cannot
// carry the before-first sentinel, so every engine driver special-cases a
// scalar as one element at linear index 0.

// InitForwardIndex prepares an index vector for forward traversal: all but
// the last slot become 0 and the last slot becomes -1, a before-first
// sentinel. The first NextIndex call then yields the first real index.
// Fails with ErrOutOfRange on an empty vector.
func InitForwardIndex(indices []int) error {
	if len(indices) == 0 {
		return fmt.Errorf("%w: cannot initialize an empty index vector", ErrOutOfRange)
	}
	for i := range indices {
		indices[i] = 0
	}
	indices[len(indices)-1] = -1
	return nil
}

// NextIndex advances an index vector to the next position in row-major order
// (last dimension fastest): an odometer increment with carry. It returns
// false once the carry propagates past the first slot, i.e. the traversal is
// exhausted.
//
// The vector may be shorter than lengths; it then walks the trailing
// len(indices) dimensions. A zero-length traversed dimension means there is
// nothing to visit, so the traversal is exhausted from the start. Fails with
// ErrOutOfRange if the vector is longer than lengths. Every elementwise and
// reduction driver in the engine traverses through this single primitive, so
// it defines the canonical visitation order callers may rely on for
// deterministic accumulation.
func NextIndex(lengths, indices []int) (bool, error) {
	if len(indices) > len(lengths) {
		return false, fmt.Errorf("%w: index vector of length %d exceeds %d dimensions", ErrOutOfRange, len(indices), len(lengths))
	}

	base := len(lengths) - len(indices)
	for i := range indices {
		if lengths[base+i] == 0 {
			return false, nil
		}
	}
	for i := len(indices) - 1; i >= 0; i-- {
		indices[i]++
		if indices[i] < lengths[base+i] {
			return true, nil
		}
		indices[i] = 0
	}
	return false, nil
}

// InitBackwardIndex prepares an index vector for reverse traversal: all but
// the last slot become their dimension's last valid index and the last slot
// becomes its length, an after-last sentinel. The first PrevIndex call then
// yields the last real index, or exhaustion right away when a traversed
// dimension has length 0. Fails with ErrOutOfRange on an empty vector or one
// longer than lengths.
func InitBackwardIndex(lengths, indices []int) error {
	if len(indices) == 0 {
		return fmt.Errorf("%w: cannot initialize an empty index vector", ErrOutOfRange)
	}
	if len(indices) > len(lengths) {
		return fmt.Errorf("%w: index vector of length %d exceeds %d dimensions", ErrOutOfRange, len(indices), len(lengths))
	}

	base := len(lengths) - len(indices)
	for i := range indices {
		indices[i] = lengths[base+i] - 1
	}
	indices[len(indices)-1] = lengths[len(lengths)-1]
	return nil
}

// PrevIndex is the mirror image of NextIndex: an odometer decrement, last
// dimension fastest, wrapping a slot to length-1 on borrow. Returns false
// once the borrow propagates past the first slot, or immediately when a
// traversed dimension has length 0.
func PrevIndex(lengths, indices []int) (bool, error) {
	if len(indices) > len(lengths) {
		return false, fmt.Errorf("%w: index vector of length %d exceeds %d dimensions", ErrOutOfRange, len(indices), len(lengths))
	}

	base := len(lengths) - len(indices)
	for i := range indices {
		if lengths[base+i] == 0 {
			return false, nil
		}
	}
	for i := len(indices) - 1; i >= 0; i-- {
		indices[i]--
		if indices[i] >= 0 {
			return true, nil
		}
		indices[i] = lengths[base+i] - 1
	}
	return false, nil
}
