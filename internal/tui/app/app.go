// Package app provides the main TUI application that wires all views together.
package app

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/eqtutor/eqtutor/internal/config"
	"github.com/eqtutor/eqtutor/internal/equation"
	"github.com/eqtutor/eqtutor/internal/log"
	"github.com/eqtutor/eqtutor/internal/session"
	"github.com/eqtutor/eqtutor/internal/tui"
	"github.com/eqtutor/eqtutor/internal/tui/views"
	"github.com/eqtutor/eqtutor/internal/ui"
)

const shellName = "tui"

// App is the main TUI application that wires all views together.
type App struct {
	model *tui.Model

	equationView views.EquationModel
	guessView    views.GuessModel
	help         help.Model
}

// New creates a new App with the given configuration.
func New(cfg *config.Config, projectRoot string, logger log.Appender) *App {
	model := tui.NewModel(cfg, projectRoot, logger)

	return &App{
		model:        model,
		equationView: views.NewEquationModel(model.Width),
		help:         help.New(),
	}
}

// Model exposes the shared state, mainly for tests.
func (a *App) Model() *tui.Model {
	return a.model
}

// Init returns the initial command for the TUI.
func (a *App) Init() tea.Cmd {
	return a.equationView.Init()
}

// Update handles messages and updates the application state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.model.Width = msg.Width
		a.model.Height = msg.Height
		a.help.Width = msg.Width
		var cmd tea.Cmd
		a.equationView, cmd = a.equationView.Update(msg)
		if a.model.State == tui.StateGuess {
			var gcmd tea.Cmd
			a.guessView, gcmd = a.guessView.Update(msg)
			cmd = tea.Batch(cmd, gcmd)
		}
		return a, cmd

	case tea.KeyMsg:
		if key.Matches(msg, tui.DefaultKeyMap.CtrlC) {
			if a.model.CtrlCPending {
				// Second press within timeout - exit
				return a, tea.Quit
			}
			a.model.CtrlCPending = true
			return a, tea.Tick(time.Second, func(time.Time) tea.Msg {
				return tui.CtrlCResetMsg{}
			})
		}

	case tui.CtrlCResetMsg:
		a.model.CtrlCPending = false
		return a, nil

	case views.SubmitEquationMsg:
		return a.resolve(msg.Raw)

	case views.SubmitGuessMsg:
		return a.verify(msg.Raw)

	case views.NewEquationMsg:
		return a.transitionToEquation()
	}

	switch a.model.State {
	case tui.StateEquation:
		var cmd tea.Cmd
		a.equationView, cmd = a.equationView.Update(msg)
		return a, cmd

	case tui.StateGuess:
		var cmd tea.Cmd
		a.guessView, cmd = a.guessView.Update(msg)
		return a, cmd
	}

	return a, nil
}

// resolve handles a submitted equation.
func (a *App) resolve(raw string) (tea.Model, tea.Cmd) {
	sess := a.model.Session
	a.model.Celebration = ""

	res, err := sess.Resolve(raw)
	switch {
	case errors.Is(err, session.ErrEmptyEquation):
		// Blank input leaves any active equation in place.
		a.model.SetStatus(tui.StatusLine{Kind: tui.StatusWarning, Text: "Please enter an equation."})
		return a, nil

	case err != nil:
		warn := a.appendLog(log.Rejected(shellName, sess.ID, raw, err))
		a.model.SetStatus(append([]tui.StatusLine{{Kind: tui.StatusError, Text: ui.FailureText(err)}}, warn...)...)
		a.model.State = tui.StateEquation
		return a, a.equationView.Focus()
	}

	warn := a.appendLog(log.Solved(shellName, sess.ID, raw, res))
	a.model.SetStatus(append([]tui.StatusLine{
		{Kind: tui.StatusSuccess, Text: res.Description},
		{Kind: tui.StatusInfo, Text: fmt.Sprintf("Solution: x = %s", res.Solution)},
	}, warn...)...)
	return a, a.transitionToGuess()
}

// verify handles a submitted guess.
func (a *App) verify(raw string) (tea.Model, tea.Cmd) {
	sess := a.model.Session
	keep := a.solvedStatus()

	guess, err := equation.ParseGuess(raw, a.model.GuessMode)
	if err != nil {
		a.model.Celebration = ""
		a.model.SetStatus(append(keep, tui.StatusLine{Kind: tui.StatusError, Text: ui.FailureText(err)})...)
		return a, nil
	}

	v, err := sess.Verify(guess)
	if err != nil {
		// The guess view is only reachable after a successful resolve.
		a.model.SetStatus(tui.StatusLine{Kind: tui.StatusError, Text: ui.FailureText(err)})
		return a.transitionToEquation()
	}
	warn := a.appendLog(log.Checked(shellName, sess.ID, v))

	if v.Correct {
		msg := a.model.Picker.Message()
		keep = append(keep,
			tui.StatusLine{Kind: tui.StatusSuccess, Text: "🎉 Correct! You solved the equation!"},
			tui.StatusLine{Kind: tui.StatusSuccess, Text: msg},
		)
		a.model.SetStatus(append(keep, warn...)...)
		a.model.Celebration = a.model.Picker.Balloons(a.model.Cfg.Celebration.Balloons, a.contentWidth())
		return a, nil
	}

	a.model.Celebration = ""
	keep = append(keep, tui.StatusLine{Kind: tui.StatusError, Text: ui.IncorrectText(v.Expected)})
	a.model.SetStatus(append(keep, warn...)...)
	return a, nil
}

// appendLog writes e to the event log and returns a warning line if the
// write failed.
func (a *App) appendLog(e log.LogEvent) []tui.StatusLine {
	if err := a.model.Logger.Append(e); err != nil {
		return []tui.StatusLine{{Kind: tui.StatusWarning, Text: ui.LogWarningText(err)}}
	}
	return nil
}

// solvedStatus returns the description and solution lines of the active
// equation, which stay on screen while the user guesses.
func (a *App) solvedStatus() []tui.StatusLine {
	if len(a.model.Status) < 2 {
		return nil
	}
	return append([]tui.StatusLine(nil), a.model.Status[:2]...)
}

func (a *App) transitionToGuess() tea.Cmd {
	a.model.State = tui.StateGuess
	a.equationView.Blur()
	a.guessView = views.NewGuessModel(a.model.GuessMode, a.model.Width)
	return a.guessView.Init()
}

func (a *App) transitionToEquation() (tea.Model, tea.Cmd) {
	a.model.State = tui.StateEquation
	a.model.Celebration = ""
	a.equationView = views.NewEquationModel(a.model.Width)
	return a, a.equationView.Init()
}

func (a *App) contentWidth() int {
	w := a.model.Width - 8
	if w < 10 {
		w = 10
	}
	return w
}

// View renders the current application state.
func (a *App) View() string {
	var b strings.Builder

	b.WriteString(a.equationView.View())

	if status := a.model.RenderStatus(); status != "" {
		b.WriteString("\n\n")
		b.WriteString(status)
	}

	if a.model.State == tui.StateGuess {
		b.WriteString("\n\n")
		b.WriteString(strings.Repeat("─", a.contentWidth()))
		b.WriteString("\n")
		b.WriteString(a.guessView.View())
	}

	if a.model.Celebration != "" {
		b.WriteString("\n\n")
		b.WriteString(a.model.Celebration)
	}

	b.WriteString("\n\n")
	if a.model.CtrlCPending {
		b.WriteString(tui.WarningStyle.Render("Press Ctrl+C again to exit"))
	} else {
		b.WriteString(a.help.View(tui.DefaultKeyMap))
	}

	boxed := tui.BoxStyle.
		Width(a.model.Width - 4).
		Render(b.String())

	return lipgloss.Place(
		a.model.Width,
		a.model.Height,
		lipgloss.Center,
		lipgloss.Top,
		boxed,
	)
}
