// Package tui implements the terminal user interface using Bubble Tea.
package tui

import (
	"github.com/eqtutor/eqtutor/internal/celebrate"
	"github.com/eqtutor/eqtutor/internal/config"
	"github.com/eqtutor/eqtutor/internal/equation"
	"github.com/eqtutor/eqtutor/internal/log"
	"github.com/eqtutor/eqtutor/internal/session"
)

// ViewState represents the current state of the TUI.
type ViewState int

const (
	StateEquation ViewState = iota // waiting for an equation
	StateGuess                     // equation solved, waiting for a guess
)

// StatusKind selects how a status line is styled.
type StatusKind int

const (
	StatusNone StatusKind = iota
	StatusSuccess
	StatusInfo
	StatusWarning
	StatusError
)

// StatusLine is one line of feedback shown under the inputs.
type StatusLine struct {
	Kind StatusKind
	Text string
}

// Model holds the application state shared by the views.
type Model struct {
	State ViewState

	Cfg         *config.Config
	ProjectRoot string
	Logger      log.Appender

	// Session is the "last solution" slot.
	Session   *session.Session
	GuessMode equation.GuessMode
	Picker    *celebrate.Picker

	// Feedback
	Status      []StatusLine
	Celebration string

	// Terminal dimensions
	Width  int
	Height int

	// Ctrl+C confirmation state
	CtrlCPending bool
}

// NewModel creates a new Model with the given configuration. A nil logger
// discards events.
func NewModel(cfg *config.Config, projectRoot string, logger log.Appender) *Model {
	if logger == nil {
		logger = log.Nop{}
	}
	mode := equation.GuessInteger
	if cfg.Guess.AllowFractions {
		mode = equation.GuessExact
	}

	return &Model{
		State:       StateEquation,
		Cfg:         cfg,
		ProjectRoot: projectRoot,
		Logger:      logger,
		Session:     session.New(),
		GuessMode:   mode,
		Picker:      celebrate.NewPicker(cfg.Celebration.Messages, nil),
		Width:       80,
		Height:      24,
	}
}

// SetStatus replaces the feedback lines.
func (m *Model) SetStatus(lines ...StatusLine) {
	m.Status = lines
}

// RenderStatus renders the feedback lines with their styles.
func (m *Model) RenderStatus() string {
	out := ""
	for i, l := range m.Status {
		if i > 0 {
			out += "\n"
		}
		switch l.Kind {
		case StatusSuccess:
			out += SuccessStyle.Render("✅ " + l.Text)
		case StatusInfo:
			out += InfoStyle.Render(l.Text)
		case StatusWarning:
			out += WarningStyle.Render("⚠️  " + l.Text)
		case StatusError:
			out += ErrorStyle.Render("❌ " + l.Text)
		default:
			out += l.Text
		}
	}
	return out
}
