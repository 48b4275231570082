// Package ui provides terminal output for the non-interactive commands.
// This file renders solve results and guess verdicts, with ANSI colour on a
// TTY and plain tags otherwise.
package ui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/eqtutor/eqtutor/internal/equation"
	"github.com/eqtutor/eqtutor/internal/session"
)

// Printer writes results to w.
type Printer struct {
	w     io.Writer
	isTTY bool
}

// NewPrinter creates a Printer for stdout, colouring output on a TTY.
func NewPrinter() *Printer {
	return &Printer{
		w:     os.Stdout,
		isTTY: term.IsTerminal(int(os.Stdout.Fd())),
	}
}

// NewPlainPrinter creates a Printer that never emits escape codes.
func NewPlainPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Result prints a solved equation.
func (p *Printer) Result(res *equation.Result) {
	fmt.Fprintf(p.w, "%s %s\n", p.icon(iconOK), res.Description)
	fmt.Fprintf(p.w, "%s\n", p.bold(fmt.Sprintf("Solution: x = %s", res.Solution)))
	if !res.Solution.IsInteger() {
		fmt.Fprintf(p.w, "%s\n", p.dim(fmt.Sprintf("(exactly %s)", res.Solution.Fraction())))
	}
}

// Failure prints a solve or verify failure.
func (p *Printer) Failure(err error) {
	fmt.Fprintf(p.w, "%s %s\n", p.icon(iconFail), FailureText(err))
}

// Verdict prints the outcome of a guess. message is shown only when the
// guess is correct.
func (p *Printer) Verdict(v session.Verdict, message string) {
	if v.Correct {
		fmt.Fprintf(p.w, "%s Correct! You solved the equation!\n", p.icon(iconParty))
		if message != "" {
			fmt.Fprintln(p.w, message)
		}
		return
	}
	fmt.Fprintf(p.w, "%s %s\n", p.icon(iconFail), IncorrectText(v.Expected))
}

// LogWarning reports a failed event-log write. A nil err prints nothing.
func (p *Printer) LogWarning(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(p.w, "%s %s\n", p.icon(iconWarn), LogWarningText(err))
}

// LogWarningText is the user-facing text for a failed event-log write.
func LogWarningText(err error) string {
	return fmt.Sprintf("Warning: failed to write event log: %v", err)
}

// FailureText is the user-facing text for err.
func FailureText(err error) string {
	var e *equation.Error
	if errors.As(err, &e) {
		return capitalize(e.Message)
	}
	return capitalize(err.Error())
}

// IncorrectText is shown after a wrong guess.
func IncorrectText(expected equation.Solution) string {
	return fmt.Sprintf("Incorrect. The correct solution is x = %s", expected)
}

type icon int

const (
	iconOK icon = iota
	iconFail
	iconParty
	iconWarn
)

func (p *Printer) icon(i icon) string {
	if !p.isTTY {
		switch i {
		case iconOK:
			return "[OK]"
		case iconParty:
			return "[CORRECT]"
		case iconWarn:
			return "[WARN]"
		default:
			return "[ERROR]"
		}
	}
	switch i {
	case iconOK:
		return "\033[32m✅\033[0m"
	case iconParty:
		return "\U0001F389"
	case iconWarn:
		return "\033[33m⚠\033[0m"
	default:
		return "\033[31m❌\033[0m"
	}
}

func (p *Printer) bold(s string) string {
	if !p.isTTY {
		return s
	}
	return "\033[1m" + s + "\033[0m"
}

func (p *Printer) dim(s string) string {
	if !p.isTTY {
		return s
	}
	return "\033[90m" + s + "\033[0m"
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
