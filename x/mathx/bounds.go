package mathx

import "golang.org/x/exp/constraints"

// Between reports lo <= v && v <= hi (order-insensitive).
func Between[T constraints.Ordered](v, lo, hi T) bool {
	if hi < lo {
		lo, hi = hi, lo
	}
	return v >= lo && v <= hi
}

// InRange reports whether i is a valid index into a sequence of length n.
func InRange[T constraints.Integer](i, n T) bool {
	return i >= 0 && i < n
}

// FitsBits reports whether v can be represented in the low n bits.
func FitsBits[T constraints.Unsigned](v T, n uint) bool {
	return v>>n == 0
}
