package ui

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/eqtutor/eqtutor/internal/equation"
	"github.com/eqtutor/eqtutor/internal/session"
)

func TestResult_Plain(t *testing.T) {
	var buf bytes.Buffer
	p := NewPlainPrinter(&buf)

	res, err := equation.ParseAndSolve("2x + 3 = 7")
	if err != nil {
		t.Fatal(err)
	}
	p.Result(res)

	want := "[OK] Equation: 2x + 3 = 7\nSolution: x = 2\n"
	if buf.String() != want {
		t.Errorf("Result output = %q, want %q", buf.String(), want)
	}
}

func TestResult_FractionShowsExactForm(t *testing.T) {
	var buf bytes.Buffer
	res, err := equation.ParseAndSolve("3x=1")
	if err != nil {
		t.Fatal(err)
	}
	NewPlainPrinter(&buf).Result(res)

	out := buf.String()
	if !strings.Contains(out, "Solution: x = 0.3333333333333333") {
		t.Errorf("missing decimal solution in %q", out)
	}
	if !strings.Contains(out, "(exactly 1/3)") {
		t.Errorf("missing exact form in %q", out)
	}
}

func TestFailure_Plain(t *testing.T) {
	var buf bytes.Buffer
	_, err := equation.ParseAndSolve("0x=5")
	NewPlainPrinter(&buf).Failure(err)

	want := "[ERROR] Not a first-degree equation (a cannot be 0)\n"
	if buf.String() != want {
		t.Errorf("Failure output = %q, want %q", buf.String(), want)
	}
}

func TestFailureText_WrappedAndPlainErrors(t *testing.T) {
	_, perr := equation.ParseAndSolve("nope")
	wrapped := fmt.Errorf("solving: %w", perr)
	if got, want := FailureText(wrapped), "Invalid format, use: ax + b = c"; got != want {
		t.Errorf("FailureText = %q, want %q", got, want)
	}
	if got, want := FailureText(session.ErrNoActiveEquation), "No equation has been solved yet"; got != want {
		t.Errorf("FailureText = %q, want %q", got, want)
	}
}

func TestVerdict_Plain(t *testing.T) {
	var buf bytes.Buffer
	p := NewPlainPrinter(&buf)

	p.Verdict(session.Verdict{Correct: true, Expected: equation.Int(4)}, "Perfect!")
	p.Verdict(session.Verdict{Correct: false, Expected: equation.Frac(5, 2)}, "ignored")

	want := "[CORRECT] Correct! You solved the equation!\nPerfect!\n" +
		"[ERROR] Incorrect. The correct solution is x = 2.5\n"
	if buf.String() != want {
		t.Errorf("Verdict output = %q, want %q", buf.String(), want)
	}
}

func TestLogWarning_Plain(t *testing.T) {
	var buf bytes.Buffer
	p := NewPlainPrinter(&buf)

	p.LogWarning(nil)
	if buf.Len() != 0 {
		t.Fatalf("nil error printed %q", buf.String())
	}

	p.LogWarning(fmt.Errorf("permission denied"))
	want := "[WARN] Warning: failed to write event log: permission denied\n"
	if buf.String() != want {
		t.Errorf("LogWarning output = %q, want %q", buf.String(), want)
	}
}
