package gear

import (
	"errors"
	"math"

	"golang.org/x/exp/constraints"
)

// ErrOverflow is returned by weighted strategies when a computed distance
// would reach or exceed the gear's configured infinity value.
var ErrOverflow = errors.New("gear: weight overflow (distance reached or exceeded infinity)")

// Number is the constraint satisfied by every weight type this module
// supports. Restricting W to Go's built-in numeric kinds lets the
// traversal engines use native +, -, < and <= instead of an operator-
// overload interface, which Go generics cannot express.
//
// A true arbitrary-precision "Decimal-like" weight (one of the gear
// variants spec.md §4.3 lists) is not supported: Number admits only Go's
// built-in integer and floating-point kinds.
type Number interface {
	constraints.Integer | constraints.Float
}

// WeightPolicy supplies the zero value, the infinity sentinel and the
// overflow test for a weight type W. It is the sole source of "zero" and
// "infinity" for every strategy that uses it (spec.md §4.1).
type WeightPolicy[W Number] struct {
	// zero is returned by Zero(). For every Number type the Go zero value
	// (0) is the correct additive identity, so this is rarely customised.
	zero W

	// infinity is returned by Infinity() and used by Overflowed.
	infinity W
}

// Zero returns the additive identity for W.
func (p WeightPolicy[W]) Zero() W { return p.zero }

// Infinity returns the designated "unreachable" sentinel for W.
func (p WeightPolicy[W]) Infinity() W { return p.infinity }

// Overflowed reports whether d has reached or exceeded Infinity(). Callers
// must check this before writing any newly computed distance (spec.md's
// overflow invariant: "for any computed d' = d + w, if d' >= infinity the
// strategy must fail before writing d'"). It also reports true for d below
// Zero(): with non-negative weights, a negative sum can only come from a
// fixed-width integer addition that wrapped around past the maximum.
func (p WeightPolicy[W]) Overflowed(d W) bool {
	return d >= p.infinity || d < p.zero
}

// NewNumberPolicy builds a WeightPolicy for W using Go's zero value as
// "zero" and the given sentinel as "infinity". Use this for fixed-width
// integer weights (the "C-int sized" gear variant), where the natural
// "maximum representable value" is usually the right sentinel.
func NewNumberPolicy[W Number](infinity W) WeightPolicy[W] {
	return WeightPolicy[W]{infinity: infinity}
}

// Float64Policy returns the weight policy for float64 weights, using the
// IEEE-754 positive infinity as the sentinel (the "Python-float-equivalent"
// and "C-double" gear variants coincide in Go, since both map to float64).
func Float64Policy() WeightPolicy[float64] {
	return WeightPolicy[float64]{infinity: math.Inf(1)}
}

// Float32Policy returns the weight policy for float32 weights, using
// IEEE-754 positive infinity as the sentinel.
func Float32Policy() WeightPolicy[float32] {
	return WeightPolicy[float32]{infinity: float32(math.Inf(1))}
}

// IntPolicy returns the weight policy for platform int weights, using
// math.MaxInt as the infinity sentinel.
func IntPolicy() WeightPolicy[int] {
	return WeightPolicy[int]{infinity: math.MaxInt}
}

// Int64Policy returns the weight policy for int64 weights, using
// math.MaxInt64 as the infinity sentinel.
func Int64Policy() WeightPolicy[int64] {
	return WeightPolicy[int64]{infinity: math.MaxInt64}
}

// Int32Policy returns the weight policy for int32 weights, using
// math.MaxInt32 as the infinity sentinel (the "C-int sized" variant).
func Int32Policy() WeightPolicy[int32] {
	return WeightPolicy[int32]{infinity: math.MaxInt32}
}
