package equation

import (
	"math/big"
	"strconv"
)

// Solution is an exact rational value. The zero value is 0.
type Solution struct {
	val *big.Rat
}

// Int returns the Solution for n.
func Int(n int64) Solution {
	return Solution{val: new(big.Rat).SetInt64(n)}
}

// Frac returns the Solution p/q. q must be non-zero.
func Frac(p, q int64) Solution {
	if q == 0 {
		panic("equation: zero denominator")
	}
	return Solution{val: new(big.Rat).SetFrac64(p, q)}
}

func (s Solution) rat() *big.Rat {
	if s.val == nil {
		return new(big.Rat)
	}
	return s.val
}

// Rat returns a copy of the underlying rational.
func (s Solution) Rat() *big.Rat {
	return new(big.Rat).Set(s.rat())
}

// IsInteger reports whether the value has no fractional part.
func (s Solution) IsInteger() bool {
	return s.rat().IsInt()
}

// Float64 returns the nearest float64.
func (s Solution) Float64() float64 {
	f, _ := s.rat().Float64()
	return f
}

// Equal reports exact numeric equality.
func (s Solution) Equal(o Solution) bool {
	return s.rat().Cmp(o.rat()) == 0
}

// String renders integers without a decimal point and fractions in their
// shortest decimal form, e.g. "3", "2.5", "0.3333333333333333".
func (s Solution) String() string {
	r := s.rat()
	if r.IsInt() {
		return r.Num().String()
	}
	return strconv.FormatFloat(s.Float64(), 'f', -1, 64)
}

// Fraction renders the value as "p/q", or "p" for integers.
func (s Solution) Fraction() string {
	r := s.rat()
	if r.IsInt() {
		return r.Num().String()
	}
	return r.String()
}

// MarshalJSON encodes integers as JSON integers and fractions as floats.
func (s Solution) MarshalJSON() ([]byte, error) {
	return []byte(s.String()), nil
}
