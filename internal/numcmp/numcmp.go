package numcmp

// Package numcmp compares numbers held in different native representations
// (uint64, int64, float64) exactly. Integer pairs are never routed through
// float64: above 2^53 adjacent integers collapse to the same float and the
// ordering silently flips.
//
// Every function returns (c, ok) where c is -1, 0 or +1 for a<b, a==b, a>b.
// ok is false only when a float operand is NaN, which is unordered.

import "math"

const (
	two63 = 0x1p63
	two64 = 0x1p64
)

// UU compares two unsigned integers.
func UU(a, b uint64) (int, bool) {
	switch {
	case a < b:
		return -1, true
	case a > b:
		return 1, true
	}
	return 0, true
}

// II compares two signed integers.
func II(a, b int64) (int, bool) {
	switch {
	case a < b:
		return -1, true
	case a > b:
		return 1, true
	}
	return 0, true
}

// FF compares two floats.
func FF(a, b float64) (int, bool) {
	if math.IsNaN(a) || math.IsNaN(b) {
		return 0, false
	}
	switch {
	case a < b:
		return -1, true
	case a > b:
		return 1, true
	}
	return 0, true
}

// UI compares an unsigned integer with a signed one.
func UI(a uint64, b int64) (int, bool) {
	if b < 0 {
		return 1, true
	}
	return UU(a, uint64(b))
}

// IU compares a signed integer with an unsigned one.
func IU(a int64, b uint64) (int, bool) {
	c, ok := UI(b, a)
	return -c, ok
}

// UF compares an unsigned integer with a float.
func UF(a uint64, b float64) (int, bool) {
	if math.IsNaN(b) {
		return 0, false
	}
	if b < 0 {
		return 1, true
	}
	if b >= two64 {
		return -1, true
	}
	// b is in [0, 2^64): its integral part converts to uint64 without loss.
	t := math.Trunc(b)
	if c, _ := UU(a, uint64(t)); c != 0 {
		return c, true
	}
	return fracSign(b, t), true
}

// FU compares a float with an unsigned integer.
func FU(a float64, b uint64) (int, bool) {
	c, ok := UF(b, a)
	return -c, ok
}

// IF compares a signed integer with a float.
func IF(a int64, b float64) (int, bool) {
	if math.IsNaN(b) {
		return 0, false
	}
	if b >= two63 {
		return -1, true
	}
	if b < -two63 {
		return 1, true
	}
	// b is in [-2^63, 2^63): its integral part converts to int64 without loss.
	t := math.Trunc(b)
	if c, _ := II(a, int64(t)); c != 0 {
		return c, true
	}
	return fracSign(b, t), true
}

// FI compares a float with a signed integer.
func FI(a float64, b int64) (int, bool) {
	c, ok := IF(b, a)
	return -c, ok
}

// fracSign orders an integer equal to trunc(f) against f itself.
func fracSign(f, trunc float64) int {
	switch {
	case f > trunc:
		return -1
	case f < trunc:
		return 1
	}
	return 0
}
