package equation

import (
	"fmt"
	"math/big"
	"regexp"
	"strconv"
	"strings"
)

// GuessMode controls which guess inputs ParseGuess accepts.
type GuessMode int

const (
	// GuessInteger accepts whole numbers only, like a number field with step 1.
	GuessInteger GuessMode = iota
	// GuessExact also accepts decimals ("2.5") and fractions ("5/2").
	GuessExact
)

var (
	integerGuessRe = regexp.MustCompile(`^[+-]?\d+$`)
	exactGuessRe   = regexp.MustCompile(`^[+-]?(\d+(\.\d+)?|\d+/\d+)$`)
)

// ParseGuess converts user input into a Solution according to mode.
func ParseGuess(raw string, mode GuessMode) (Solution, error) {
	s := strings.TrimSpace(raw)

	switch mode {
	case GuessInteger:
		if !integerGuessRe.MatchString(s) {
			return Solution{}, fmt.Errorf("%w: %q is not a whole number", ErrInvalidGuess, raw)
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return Solution{}, fmt.Errorf("%w: %q is out of range", ErrInvalidGuess, raw)
		}
		return Int(n), nil

	case GuessExact:
		if !exactGuessRe.MatchString(s) {
			return Solution{}, fmt.Errorf("%w: %q is not a number", ErrInvalidGuess, raw)
		}
		r, ok := exactRat(s)
		if !ok {
			return Solution{}, fmt.Errorf("%w: %q has a zero denominator", ErrInvalidGuess, raw)
		}
		return Solution{val: r}, nil
	}

	return Solution{}, fmt.Errorf("%w: unknown guess mode %d", ErrInvalidGuess, mode)
}

// exactRat converts a string already matched by exactGuessRe. All digit runs
// are read in base 10 so leading zeros never switch to octal.
func exactRat(s string) (*big.Rat, bool) {
	neg := false
	switch {
	case strings.HasPrefix(s, "-"):
		neg = true
		s = s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}

	var num, den *big.Int
	if i := strings.IndexByte(s, '/'); i >= 0 {
		num, _ = new(big.Int).SetString(s[:i], 10)
		den, _ = new(big.Int).SetString(s[i+1:], 10)
	} else {
		intPart, frac, _ := strings.Cut(s, ".")
		num, _ = new(big.Int).SetString(intPart+frac, 10)
		den = new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(len(frac))), nil)
	}
	if den.Sign() == 0 {
		return nil, false
	}
	if neg {
		num.Neg(num)
	}
	return new(big.Rat).SetFrac(num, den), true
}

// CheckGuess reports whether guess equals stored exactly. No tolerance is
// applied, so a fractional solution never matches a whole-number guess.
func CheckGuess(stored, guess Solution) bool {
	return stored.Equal(guess)
}
