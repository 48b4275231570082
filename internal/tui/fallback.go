// Package tui implements the terminal user interface using Bubble Tea.
package tui

import (
	"errors"
	"fmt"

	"github.com/eqtutor/eqtutor/internal/log"
	"github.com/eqtutor/eqtutor/internal/session"
	"github.com/eqtutor/eqtutor/internal/ui"
)

// ErrEquationRequired is returned when an equation is required but not provided.
var ErrEquationRequired = errors.New("equation required in non-interactive mode")

const shellName = "fallback"

// FallbackRunner solves a single equation when no terminal is attached.
type FallbackRunner struct {
	logger  log.Appender
	printer *ui.Printer
}

// NewFallbackRunner creates a new FallbackRunner.
func NewFallbackRunner(logger log.Appender, printer *ui.Printer) *FallbackRunner {
	if logger == nil {
		logger = log.Nop{}
	}
	return &FallbackRunner{
		logger:  logger,
		printer: printer,
	}
}

// Run solves raw and prints the result, or returns the failure.
func (f *FallbackRunner) Run(raw string) error {
	if raw == "" {
		return ErrEquationRequired
	}

	sess := session.New()
	res, err := sess.Resolve(raw)
	if err != nil {
		f.printer.LogWarning(f.logger.Append(log.Rejected(shellName, sess.ID, raw, err)))
		f.printer.Failure(err)
		return fmt.Errorf("solving %q: %w", raw, err)
	}

	f.printer.LogWarning(f.logger.Append(log.Solved(shellName, sess.ID, raw, res)))
	f.printer.Result(res)
	return nil
}
