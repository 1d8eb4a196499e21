// Package numeric provides overflow-checked arithmetic over generic unsigned
// integer types. Ledger modules use these helpers instead of raw operators so
// that overflow and underflow surface as explicit failures rather than wrapped
// values.
package numeric

import "golang.org/x/exp/constraints"

// Unsigned constrains the integer kinds usable as balances, nonces, and block
// numbers. Unsigned types give every module the same zero value, total
// ordering, and copy semantics for free.
type Unsigned interface {
	constraints.Unsigned
}

// CheckedAdd returns a+b and reports whether the sum fits in T.
func CheckedAdd[T Unsigned](a, b T) (T, bool) {
	sum := a + b
	if sum < a {
		return 0, false
	}
	return sum, true
}

// CheckedSub returns a-b and reports whether the difference is non-negative.
func CheckedSub[T Unsigned](a, b T) (T, bool) {
	if b > a {
		return 0, false
	}
	return a - b, true
}

// CheckedMul returns a*b and reports whether the product fits in T.
func CheckedMul[T Unsigned](a, b T) (T, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	product := a * b
	if product/a != b {
		return 0, false
	}
	return product, true
}

// SaturatingAdd returns a+b, clamping at the maximum value of T on overflow.
func SaturatingAdd[T Unsigned](a, b T) T {
	if sum, ok := CheckedAdd(a, b); ok {
		return sum
	}
	return MaxValue[T]()
}

// MaxValue returns the largest value representable by T.
func MaxValue[T Unsigned]() T {
	var zero T
	return zero - 1
}
