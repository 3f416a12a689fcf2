package tensor

import "errors"

// Sentinel errors returned by the engine. Callers match them with errors.Is;
// the wrapped message carries the offending operands.
var (
	// ErrOutOfRange reports an index, length, or range argument outside its
	// documented bound.
	ErrOutOfRange = errors.New("out of range")

	// ErrIncompatibleShape reports two shapes that cannot be reconciled for
	// the requested operation.
	ErrIncompatibleShape = errors.New("incompatible shapes")

	// ErrOverflow reports an element-count or index computation that would
	// overflow the int range.
	ErrOverflow = errors.New("integer overflow")
)
