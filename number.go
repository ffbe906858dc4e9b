package jskema

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"

	"github.com/reoring/jskema/internal/numcmp"
)

// NumberKind records the native representation a number was supplied in.
type NumberKind uint8

const (
	NumberUint  NumberKind = iota // Non-negative integer fitting uint64.
	NumberInt                     // Negative integer fitting int64.
	NumberFloat                   // Everything else.
)

func (k NumberKind) String() string {
	switch k {
	case NumberUint:
		return "uint"
	case NumberInt:
		return "int"
	default:
		return "float"
	}
}

// Number is a tagged numeric value. The tag is chosen by preference:
// unsigned if the value is a non-negative integer, signed if it is a negative
// integer, float otherwise. Comparisons between tags are exact.
type Number struct {
	kind NumberKind
	u    uint64
	i    int64
	f    float64
}

// ErrNotANumber is returned by ParseNumber for text that is not numeric.
var ErrNotANumber = errors.New("jskema: not a number")

// Uint returns an unsigned Number.
func Uint(u uint64) Number { return Number{kind: NumberUint, u: u} }

// Int returns a Number for i, stored unsigned when i is non-negative.
func Int(i int64) Number {
	if i >= 0 {
		return Uint(uint64(i))
	}
	return Number{kind: NumberInt, i: i}
}

// Float returns a float Number. Integral floats keep the float tag: 1.0 in a
// schema stays a float literal.
func Float(f float64) Number { return Number{kind: NumberFloat, f: f} }

// ParseNumber classifies numeric text the way a JSON parser would: integers
// that fit 64 bits stay integers, anything else becomes a float.
func ParseNumber(s string) (Number, error) {
	if u, err := strconv.ParseUint(s, 10, 64); err == nil {
		return Uint(u), nil
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return Int(i), nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		var ne *strconv.NumError
		if errors.As(err, &ne) && errors.Is(ne.Err, strconv.ErrRange) {
			return Float(f), nil
		}
		return Number{}, ErrNotANumber
	}
	return Float(f), nil
}

// NumberOf reports whether v is a number of the value model and returns it.
// Booleans are never numbers.
func NumberOf(v any) (Number, bool) {
	switch n := v.(type) {
	case uint64:
		return Uint(n), true
	case int64:
		return Int(n), true
	case float64:
		return Float(n), true
	case int:
		return Int(int64(n)), true
	case int8:
		return Int(int64(n)), true
	case int16:
		return Int(int64(n)), true
	case int32:
		return Int(int64(n)), true
	case uint:
		return Uint(uint64(n)), true
	case uint8:
		return Uint(uint64(n)), true
	case uint16:
		return Uint(uint64(n)), true
	case uint32:
		return Uint(uint64(n)), true
	case float32:
		return Float(float64(n)), true
	case json.Number:
		num, err := ParseNumber(string(n))
		return num, err == nil
	case Number:
		return n, true
	}
	return Number{}, false
}

// Kind returns the representation tag.
func (n Number) Kind() NumberKind { return n.kind }

// Uint64 returns the value when it is tagged unsigned.
func (n Number) Uint64() (uint64, bool) { return n.u, n.kind == NumberUint }

// Int64 returns the value when it is an integer fitting int64.
func (n Number) Int64() (int64, bool) {
	switch n.kind {
	case NumberInt:
		return n.i, true
	case NumberUint:
		return int64(n.u), n.u <= math.MaxInt64
	}
	return 0, false
}

// IsInteger reports whether the value has no fractional part.
func (n Number) IsInteger() bool {
	if n.kind != NumberFloat {
		return true
	}
	return !math.IsInf(n.f, 0) && n.f == math.Trunc(n.f)
}

// Cmp compares n with m exactly. ok is false when either side is NaN.
func (n Number) Cmp(m Number) (c int, ok bool) {
	switch n.kind {
	case NumberUint:
		switch m.kind {
		case NumberUint:
			return numcmp.UU(n.u, m.u)
		case NumberInt:
			return numcmp.UI(n.u, m.i)
		default:
			return numcmp.UF(n.u, m.f)
		}
	case NumberInt:
		switch m.kind {
		case NumberUint:
			return numcmp.IU(n.i, m.u)
		case NumberInt:
			return numcmp.II(n.i, m.i)
		default:
			return numcmp.IF(n.i, m.f)
		}
	default:
		switch m.kind {
		case NumberUint:
			return numcmp.FU(n.f, m.u)
		case NumberInt:
			return numcmp.FI(n.f, m.i)
		default:
			return numcmp.FF(n.f, m.f)
		}
	}
}

// Equal reports numeric equality across representations (1 == 1.0).
func (n Number) Equal(m Number) bool {
	c, ok := n.Cmp(m)
	return ok && c == 0
}

// String renders the number in its native representation.
func (n Number) String() string {
	switch n.kind {
	case NumberUint:
		return strconv.FormatUint(n.u, 10)
	case NumberInt:
		return strconv.FormatInt(n.i, 10)
	}
	return strconv.FormatFloat(n.f, 'g', -1, 64)
}

// MarshalJSON renders the number without routing integers through float64.
func (n Number) MarshalJSON() ([]byte, error) {
	if n.kind == NumberFloat && (math.IsNaN(n.f) || math.IsInf(n.f, 0)) {
		return nil, errors.New("jskema: cannot marshal non-finite number")
	}
	return []byte(n.String()), nil
}

// Value returns the number as a plain Go value of its native type.
func (n Number) Value() any {
	switch n.kind {
	case NumberUint:
		return n.u
	case NumberInt:
		return n.i
	}
	return n.f
}
