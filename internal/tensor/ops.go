package tensor

import (
	"math/rand"
	"time"
)

// The fixed operation catalogue, built on the engine drivers. Every
// operation exists for views (the engine form) and for owning tensors (thin
// adapters over a full view). The "...To" suffix marks the allocating
// variant; the bare name mutates in place.

// View catalogue

// Sum folds addition over every element, seeded with the additive identity.
func Sum[T Scalar](v View[T]) T {
	return Accumulate(v, T(0), func(acc, x T) T { return acc + x })
}

// Product folds multiplication over every element, seeded with the
// multiplicative identity.
func Product[T Scalar](v View[T]) T {
	return Accumulate(v, T(1), func(acc, x T) T { return acc * x })
}

// Negate replaces every element with its negation, in place.
func Negate[T Scalar](v View[T]) {
	Apply(v, func(x T) T { return -x })
}

// NegateTo returns a new tensor holding the negation of every element.
func NegateTo[T Scalar](v View[T]) *Tensor[T] {
	return ApplyTo(v, func(x T) T { return -x })
}

// Add writes left + right into left, broadcasting right onto left's shape.
func Add[T Scalar](left, right View[T]) error {
	return Combine(left, right, func(l, r T) T { return l + r })
}

// AddTo returns left + right as a new tensor of the broadcast shape.
func AddTo[T Scalar](left, right View[T]) (*Tensor[T], error) {
	return CombineTo(left, right, func(l, r T) T { return l + r })
}

// Sub writes left - right into left, broadcasting right onto left's shape.
func Sub[T Scalar](left, right View[T]) error {
	return Combine(left, right, func(l, r T) T { return l - r })
}

// SubTo returns left - right as a new tensor of the broadcast shape.
func SubTo[T Scalar](left, right View[T]) (*Tensor[T], error) {
	return CombineTo(left, right, func(l, r T) T { return l - r })
}

// Mul writes left * right into left, broadcasting right onto left's shape.
func Mul[T Scalar](left, right View[T]) error {
	return Combine(left, right, func(l, r T) T { return l * r })
}

// MulTo returns left * right as a new tensor of the broadcast shape.
func MulTo[T Scalar](left, right View[T]) (*Tensor[T], error) {
	return CombineTo(left, right, func(l, r T) T { return l * r })
}

// Div writes left / right into left, broadcasting right onto left's shape.
// Integer division truncates; float division follows IEEE semantics.
func Div[T Scalar](left, right View[T]) error {
	return Combine(left, right, func(l, r T) T { return l / r })
}

// DivTo returns left / right as a new tensor of the broadcast shape.
func DivTo[T Scalar](left, right View[T]) (*Tensor[T], error) {
	return CombineTo(left, right, func(l, r T) T { return l / r })
}

// Mod writes left % right into left, broadcasting right onto left's shape.
// The sign convention follows the element kind (Go's % for integers,
// math.Mod for floats).
func Mod[T Scalar](left, right View[T]) error {
	return Combine(left, right, modulo[T])
}

// ModTo returns left % right as a new tensor of the broadcast shape.
func ModTo[T Scalar](left, right View[T]) (*Tensor[T], error) {
	return CombineTo(left, right, modulo[T])
}

// AddScalar adds scalar to every element, in place.
func AddScalar[T Scalar](v View[T], scalar T) {
	ApplyScalar(v, scalar, func(x, s T) T { return x + s })
}

// AddScalarTo returns a new tensor with scalar added to every element.
func AddScalarTo[T Scalar](v View[T], scalar T) *Tensor[T] {
	return ApplyScalarTo(v, scalar, func(x, s T) T { return x + s })
}

// SubScalar subtracts scalar from every element, in place.
func SubScalar[T Scalar](v View[T], scalar T) {
	ApplyScalar(v, scalar, func(x, s T) T { return x - s })
}

// SubScalarTo returns a new tensor with scalar subtracted from every element.
func SubScalarTo[T Scalar](v View[T], scalar T) *Tensor[T] {
	return ApplyScalarTo(v, scalar, func(x, s T) T { return x - s })
}

// MulScalar multiplies every element by scalar, in place.
func MulScalar[T Scalar](v View[T], scalar T) {
	ApplyScalar(v, scalar, func(x, s T) T { return x * s })
}

// MulScalarTo returns a new tensor with every element multiplied by scalar.
func MulScalarTo[T Scalar](v View[T], scalar T) *Tensor[T] {
	return ApplyScalarTo(v, scalar, func(x, s T) T { return x * s })
}

// DivScalar divides every element by scalar, in place.
func DivScalar[T Scalar](v View[T], scalar T) {
	ApplyScalar(v, scalar, func(x, s T) T { return x / s })
}

// DivScalarTo returns a new tensor with every element divided by scalar.
func DivScalarTo[T Scalar](v View[T], scalar T) *Tensor[T] {
	return ApplyScalarTo(v, scalar, func(x, s T) T { return x / s })
}

// ModScalar replaces every element with element % scalar, in place.
func ModScalar[T Scalar](v View[T], scalar T) {
	ApplyScalar(v, scalar, modulo[T])
}

// ModScalarTo returns a new tensor with every element reduced modulo scalar.
func ModScalarTo[T Scalar](v View[T], scalar T) *Tensor[T] {
	return ApplyScalarTo(v, scalar, modulo[T])
}

// Fill sets every element to value.
func Fill[T Scalar](v View[T], value T) {
	ApplyScalar(v, value, func(_, s T) T { return s })
}

// Copy writes src's values into dst. The source shape must equal the
// destination's or be broadcastable onto it.
func Copy[T Scalar](dst, src View[T]) error {
	return Combine(dst, src, func(_, s T) T { return s })
}

// globalRand backs the convenience form of Randomize. Seeded from the clock
// at startup; reproducible runs pass their own source instead.
var globalRand = rand.New(rand.NewSource(time.Now().UnixNano())) //nolint:gosec // not security-critical

// Randomize fills v with uniformly distributed values in [min, max) drawn
// from rng. A nil rng uses a package-shared entropy-seeded source; callers
// needing reproducibility seed their own rand.Rand.
func Randomize[T Scalar](v View[T], rng *rand.Rand, min, max T) {
	if rng == nil {
		rng = globalRand
	}
	span := float64(max - min)
	Apply(v, func(_ T) T {
		return min + T(rng.Float64()*span)
	})
}

// Tensor adapters: each takes a full view of the tensor and delegates.

// Sum returns the sum of every element.
func (t *Tensor[T]) Sum() T { return Sum(t.View()) }

// Product returns the product of every element.
func (t *Tensor[T]) Product() T { return Product(t.View()) }

// Negate negates every element in place.
func (t *Tensor[T]) Negate() { Negate(t.View()) }

// NegateTo returns a negated copy.
func (t *Tensor[T]) NegateTo() *Tensor[T] { return NegateTo(t.View()) }

// Add accumulates other into t, broadcasting other onto t's shape.
func (t *Tensor[T]) Add(other *Tensor[T]) error { return Add(t.View(), other.View()) }

// AddTo returns t + other as a new tensor of the broadcast shape.
func (t *Tensor[T]) AddTo(other *Tensor[T]) (*Tensor[T], error) {
	return AddTo(t.View(), other.View())
}

// Sub subtracts other from t, broadcasting other onto t's shape.
func (t *Tensor[T]) Sub(other *Tensor[T]) error { return Sub(t.View(), other.View()) }

// SubTo returns t - other as a new tensor of the broadcast shape.
func (t *Tensor[T]) SubTo(other *Tensor[T]) (*Tensor[T], error) {
	return SubTo(t.View(), other.View())
}

// Mul multiplies t by other elementwise, broadcasting other onto t's shape.
func (t *Tensor[T]) Mul(other *Tensor[T]) error { return Mul(t.View(), other.View()) }

// MulTo returns t * other as a new tensor of the broadcast shape.
func (t *Tensor[T]) MulTo(other *Tensor[T]) (*Tensor[T], error) {
	return MulTo(t.View(), other.View())
}

// Div divides t by other elementwise, broadcasting other onto t's shape.
func (t *Tensor[T]) Div(other *Tensor[T]) error { return Div(t.View(), other.View()) }

// DivTo returns t / other as a new tensor of the broadcast shape.
func (t *Tensor[T]) DivTo(other *Tensor[T]) (*Tensor[T], error) {
	return DivTo(t.View(), other.View())
}

// Mod reduces t modulo other elementwise, broadcasting other onto t's shape.
func (t *Tensor[T]) Mod(other *Tensor[T]) error { return Mod(t.View(), other.View()) }

// ModTo returns t % other as a new tensor of the broadcast shape.
func (t *Tensor[T]) ModTo(other *Tensor[T]) (*Tensor[T], error) {
	return ModTo(t.View(), other.View())
}

// AddScalar adds scalar to every element in place.
func (t *Tensor[T]) AddScalar(scalar T) { AddScalar(t.View(), scalar) }

// AddScalarTo returns a copy with scalar added to every element.
func (t *Tensor[T]) AddScalarTo(scalar T) *Tensor[T] { return AddScalarTo(t.View(), scalar) }

// SubScalar subtracts scalar from every element in place.
func (t *Tensor[T]) SubScalar(scalar T) { SubScalar(t.View(), scalar) }

// SubScalarTo returns a copy with scalar subtracted from every element.
func (t *Tensor[T]) SubScalarTo(scalar T) *Tensor[T] { return SubScalarTo(t.View(), scalar) }

// MulScalar multiplies every element by scalar in place.
func (t *Tensor[T]) MulScalar(scalar T) { MulScalar(t.View(), scalar) }

// MulScalarTo returns a copy with every element multiplied by scalar.
func (t *Tensor[T]) MulScalarTo(scalar T) *Tensor[T] { return MulScalarTo(t.View(), scalar) }

// DivScalar divides every element by scalar in place.
func (t *Tensor[T]) DivScalar(scalar T) { DivScalar(t.View(), scalar) }

// DivScalarTo returns a copy with every element divided by scalar.
func (t *Tensor[T]) DivScalarTo(scalar T) *Tensor[T] { return DivScalarTo(t.View(), scalar) }

// ModScalar reduces every element modulo scalar in place.
func (t *Tensor[T]) ModScalar(scalar T) { ModScalar(t.View(), scalar) }

// ModScalarTo returns a copy with every element reduced modulo scalar.
func (t *Tensor[T]) ModScalarTo(scalar T) *Tensor[T] { return ModScalarTo(t.View(), scalar) }

// Fill sets every element to value.
func (t *Tensor[T]) Fill(value T) { Fill(t.View(), value) }

// CopyFrom writes src's values into t. The source shape must equal t's or
// be broadcastable onto it.
func (t *Tensor[T]) CopyFrom(src *Tensor[T]) error { return Copy(t.View(), src.View()) }

// Randomize fills t with uniformly distributed values in [min, max).
func (t *Tensor[T]) Randomize(rng *rand.Rand, min, max T) { Randomize(t.View(), rng, min, max) }
