package equation

import (
	"errors"
	"fmt"
)

// Kind classifies a parse or solve failure.
type Kind int

const (
	// InvalidFormat means the input does not match ax + b = c.
	InvalidFormat Kind = iota + 1
	// DegenerateEquation means the input matched but a == 0.
	DegenerateEquation
)

func (k Kind) String() string {
	switch k {
	case InvalidFormat:
		return "invalid_format"
	case DegenerateEquation:
		return "degenerate_equation"
	default:
		return "unknown"
	}
}

// Sentinel errors for errors.Is checks against *Error values.
var (
	ErrInvalidFormat      = errors.New("invalid format, use: ax + b = c")
	ErrDegenerateEquation = errors.New("not a first-degree equation (a cannot be 0)")
	ErrInvalidGuess       = errors.New("invalid guess")
)

// Error is the tagged failure returned by Parse, Solve and ParseAndSolve.
type Error struct {
	Kind    Kind
	Input   string
	Message string
}

func (e *Error) Error() string {
	if e.Input == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %q", e.Message, e.Input)
}

// Is reports whether target is the sentinel for e.Kind.
func (e *Error) Is(target error) bool {
	switch e.Kind {
	case InvalidFormat:
		return target == ErrInvalidFormat
	case DegenerateEquation:
		return target == ErrDegenerateEquation
	}
	return false
}

func invalidFormat(input string) *Error {
	return &Error{Kind: InvalidFormat, Input: input, Message: ErrInvalidFormat.Error()}
}

func degenerate(input string) *Error {
	return &Error{Kind: DegenerateEquation, Input: input, Message: ErrDegenerateEquation.Error()}
}

// KindOf returns the Kind carried by err, or 0 if err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
