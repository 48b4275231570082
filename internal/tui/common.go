// Package tui implements the terminal user interface using Bubble Tea.
package tui

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

// Common key binding constants.
const (
	KeyCtrlC = "ctrl+c"
	KeyEnter = "enter"
	KeyEsc   = "esc"
)

// IsTTY returns true if stdout is connected to a terminal.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// Run starts the TUI program with the given model.
// If stdout is a TTY, it runs in alternate screen mode.
// Otherwise, it delegates to runFallback, which writes guidance to out.
func Run(m tea.Model, out io.Writer) error {
	if IsTTY() {
		p := tea.NewProgram(m, tea.WithAltScreen())
		_, err := p.Run()
		return err
	}
	return runFallback(m, out)
}

// runFallback handles non-TTY execution by pointing at the CLI commands.
func runFallback(_ tea.Model, out io.Writer) error {
	fmt.Fprintln(out, "Non-TTY environment detected.")
	fmt.Fprintln(out, "Please use 'eqtutor solve <equation>' or 'eqtutor check <equation> <guess>' instead.")
	return nil
}
