// Package tensor implements the core N-dimensional tensor engine for the
// Flint framework: shapes, stride-based views, broadcasting, and generic
// elementwise/reduction drivers.
package tensor

import "math"

// Scalar is a constraint for supported tensor element types.
// It covers every built-in numeric kind; arithmetic follows the kind's own
// semantics (integer division truncates, floats follow IEEE 754).
//
// The tilde terms admit defined types (`type Celsius float64`), but the
// modulo operations dispatch on the built-in kinds at runtime and panic for
// anything else. Instantiate Mod-using code with built-in types, or convert
// at the boundary.
type Scalar interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// modulo computes a % b for any Scalar kind.
// Integer kinds use the native % operator (sign follows the dividend, as in
// Go); float kinds use math.Mod.
func modulo[T Scalar](a, b T) T {
	switch x := any(a).(type) {
	case float32:
		return any(float32(math.Mod(float64(x), float64(any(b).(float32))))).(T)
	case float64:
		return any(math.Mod(x, any(b).(float64))).(T)
	case int:
		return any(x % any(b).(int)).(T)
	case int8:
		return any(x % any(b).(int8)).(T)
	case int16:
		return any(x % any(b).(int16)).(T)
	case int32:
		return any(x % any(b).(int32)).(T)
	case int64:
		return any(x % any(b).(int64)).(T)
	case uint:
		return any(x % any(b).(uint)).(T)
	case uint8:
		return any(x % any(b).(uint8)).(T)
	case uint16:
		return any(x % any(b).(uint16)).(T)
	case uint32:
		return any(x % any(b).(uint32)).(T)
	case uint64:
		return any(x % any(b).(uint64)).(T)
	default:
		panic("modulo: unsupported element type")
	}
}
