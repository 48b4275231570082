// Package equation parses and solves first-degree equations of the form
// ax + b = c, and checks guesses against their solutions.
package equation

import (
	"fmt"
	"math/big"
	"regexp"
	"strings"
	"unicode"
)

// equationRe matches a whitespace-stripped equation. Groups: a-sign, a-digits,
// b-sign, b-digits, c-sign, c-digits.
var equationRe = regexp.MustCompile(`^(-?)(\d*)x(?:([+-])(\d+))?=(-?)(\d+)$`)

// Sign is the sign marker captured in front of a term.
type Sign int

const (
	Implicit Sign = iota // no sign written
	Positive             // explicit "+"
	Negative             // explicit "-"
)

func (s Sign) String() string {
	switch s {
	case Positive:
		return "+"
	case Negative:
		return "-"
	default:
		return ""
	}
}

func signOf(s string) Sign {
	switch s {
	case "+":
		return Positive
	case "-":
		return Negative
	default:
		return Implicit
	}
}

// term is one captured coefficient before resolution.
type term struct {
	sign    Sign
	digits  string
	present bool
}

// termRule gives the value of a term when parts of it are missing.
type termRule struct {
	absent   int64 // value when the term was not written at all
	noDigits int64 // magnitude when a sign (or nothing) is written without digits
}

var (
	ruleA = termRule{absent: 1, noDigits: 1}
	ruleB = termRule{absent: 0, noDigits: 1}
	ruleC = termRule{absent: 0, noDigits: 0}
)

// resolve turns a captured term into its integer value. Digit runs of any
// length are accepted.
func (r termRule) resolve(t term) (*big.Int, error) {
	if !t.present {
		return big.NewInt(r.absent), nil
	}
	mag := big.NewInt(r.noDigits)
	if t.digits != "" {
		if _, ok := mag.SetString(t.digits, 10); !ok {
			return nil, fmt.Errorf("not a decimal digit run: %q", t.digits)
		}
	}
	if t.sign == Negative {
		mag.Neg(mag)
	}
	return mag, nil
}

// Coefficients are the integers a, b and c of ax + b = c.
type Coefficients struct {
	A *big.Int
	B *big.Int
	C *big.Int
}

// NewCoefficients builds Coefficients from int64 values.
func NewCoefficients(a, b, c int64) Coefficients {
	return Coefficients{A: big.NewInt(a), B: big.NewInt(b), C: big.NewInt(c)}
}

// Equal reports whether all three coefficients match.
func (c Coefficients) Equal(o Coefficients) bool {
	return cmpInt(c.A, o.A) && cmpInt(c.B, o.B) && cmpInt(c.C, o.C)
}

func cmpInt(x, y *big.Int) bool {
	if x == nil || y == nil {
		return x == y
	}
	return x.Cmp(y) == 0
}

// String renders the canonical form, e.g. "2x + 3 = 7" or "1x + 0 = 5".
func (c Coefficients) String() string {
	return fmt.Sprintf("%sx + %s = %s", c.A, c.B, c.C)
}

// Result is a successfully solved equation.
type Result struct {
	Coefficients Coefficients
	Solution     Solution
	Description  string
}

// Normalize removes every whitespace rune from raw.
func Normalize(raw string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, raw)
}

// Parse extracts the coefficients of raw without checking a != 0.
func Parse(raw string) (Coefficients, error) {
	m := equationRe.FindStringSubmatch(Normalize(raw))
	if m == nil {
		return Coefficients{}, invalidFormat(raw)
	}

	terms := [3]term{
		{sign: signOf(m[1]), digits: m[2], present: true},
		{sign: signOf(m[3]), digits: m[4], present: m[3] != ""},
		{sign: signOf(m[5]), digits: m[6], present: true},
	}
	rules := [3]termRule{ruleA, ruleB, ruleC}

	var vals [3]*big.Int
	for i := range terms {
		v, err := rules[i].resolve(terms[i])
		if err != nil {
			return Coefficients{}, invalidFormat(raw)
		}
		vals[i] = v
	}

	return Coefficients{A: vals[0], B: vals[1], C: vals[2]}, nil
}

// Solve computes (c - b) / a exactly. c must come from Parse or
// NewCoefficients.
func Solve(c Coefficients) (Solution, error) {
	if c.A == nil || c.A.Sign() == 0 {
		return Solution{}, degenerate(c.String())
	}
	num := new(big.Int).Sub(c.C, c.B)
	return Solution{val: new(big.Rat).SetFrac(num, c.A)}, nil
}

// ParseAndSolve parses raw and solves it. It has no side effects.
func ParseAndSolve(raw string) (*Result, error) {
	coeffs, err := Parse(raw)
	if err != nil {
		return nil, err
	}
	if coeffs.A.Sign() == 0 {
		return nil, degenerate(raw)
	}
	sol, err := Solve(coeffs)
	if err != nil {
		return nil, err
	}
	return &Result{
		Coefficients: coeffs,
		Solution:     sol,
		Description:  "Equation: " + coeffs.String(),
	}, nil
}
