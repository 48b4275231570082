package app

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/eqtutor/eqtutor/internal/config"
	"github.com/eqtutor/eqtutor/internal/log"
	"github.com/eqtutor/eqtutor/internal/tui"
	"github.com/eqtutor/eqtutor/internal/tui/views"
)

func newTestApp(t *testing.T, cfg *config.Config) (*App, *log.Logger) {
	t.Helper()
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	logger, err := log.NewLogger(t.TempDir())
	if err != nil {
		t.Fatalf("NewLogger failed: %v", err)
	}
	a := New(cfg, t.TempDir(), logger)
	a.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return a, logger
}

func typeText(a *App, s string) {
	a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

// press sends a key and feeds back the view message it produces, the way
// the Bubble Tea runtime would.
func press(t *testing.T, a *App, k tea.KeyType) {
	t.Helper()
	_, cmd := a.Update(tea.KeyMsg{Type: k})
	if cmd == nil {
		return
	}
	switch msg := cmd().(type) {
	case views.SubmitEquationMsg, views.SubmitGuessMsg, views.NewEquationMsg:
		a.Update(msg)
	}
}

func statusText(a *App) string {
	var parts []string
	for _, l := range a.Model().Status {
		parts = append(parts, l.Text)
	}
	return strings.Join(parts, "\n")
}

func TestResolveMovesToGuess(t *testing.T) {
	a, logger := newTestApp(t, nil)

	typeText(a, "2x + 3 = 7")
	press(t, a, tea.KeyEnter)

	m := a.Model()
	if m.State != tui.StateGuess {
		t.Fatalf("State = %v, want StateGuess", m.State)
	}
	if !m.Session.Snapshot().Active {
		t.Error("session should be active")
	}
	got := statusText(a)
	if !strings.Contains(got, "Equation: 2x + 3 = 7") || !strings.Contains(got, "Solution: x = 2") {
		t.Errorf("status = %q", got)
	}

	events, err := logger.ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(events) != 1 || events[0].Event != log.EventEquationSolved || events[0].Shell != "tui" {
		t.Errorf("events = %+v", events)
	}
}

func TestResolveInvalidStaysOnEquation(t *testing.T) {
	a, logger := newTestApp(t, nil)

	typeText(a, "2x + 3 == 7")
	press(t, a, tea.KeyEnter)

	m := a.Model()
	if m.State != tui.StateEquation {
		t.Fatalf("State = %v, want StateEquation", m.State)
	}
	if len(m.Status) != 1 || m.Status[0].Kind != tui.StatusError {
		t.Fatalf("Status = %+v", m.Status)
	}
	if !strings.Contains(m.Status[0].Text, "Invalid format, use: ax + b = c") {
		t.Errorf("status = %q", m.Status[0].Text)
	}

	events, _ := logger.ReadAll()
	if len(events) != 1 || events[0].Kind != "invalid_format" {
		t.Errorf("events = %+v", events)
	}
}

func TestResolveDegenerate(t *testing.T) {
	a, _ := newTestApp(t, nil)

	typeText(a, "0x=5")
	press(t, a, tea.KeyEnter)

	if got := statusText(a); !strings.Contains(got, "Not a first-degree equation") {
		t.Errorf("status = %q", got)
	}
	if a.Model().Session.Snapshot().Active {
		t.Error("session should be inactive")
	}
}

func TestResolveEmptyWarns(t *testing.T) {
	a, logger := newTestApp(t, nil)

	press(t, a, tea.KeyEnter)

	m := a.Model()
	if len(m.Status) != 1 || m.Status[0].Kind != tui.StatusWarning {
		t.Errorf("Status = %+v, want a single warning", m.Status)
	}
	if events, _ := logger.ReadAll(); len(events) != 0 {
		t.Errorf("blank input should not be logged, got %+v", events)
	}
}

func TestCorrectGuessCelebrates(t *testing.T) {
	a, logger := newTestApp(t, nil)

	typeText(a, "-x - 5 = 10")
	press(t, a, tea.KeyEnter)
	typeText(a, "-15")
	press(t, a, tea.KeyEnter)

	m := a.Model()
	got := statusText(a)
	if !strings.Contains(got, "Correct! You solved the equation!") {
		t.Errorf("status = %q", got)
	}
	if !strings.Contains(got, "Equation: -1x + -5 = 10") {
		t.Errorf("solved equation should stay visible, status = %q", got)
	}
	if m.Celebration == "" {
		t.Error("expected balloons after a correct guess")
	}
	if !m.Session.Snapshot().Solved {
		t.Error("session should be marked solved")
	}

	events, _ := logger.ReadAll()
	if len(events) != 2 || events[1].Event != log.EventGuessChecked || events[1].Correct == nil || !*events[1].Correct {
		t.Errorf("events = %+v", events)
	}
}

func TestWrongGuessShowsSolution(t *testing.T) {
	a, _ := newTestApp(t, nil)

	typeText(a, "2x+3=7")
	press(t, a, tea.KeyEnter)
	typeText(a, "5")
	press(t, a, tea.KeyEnter)

	if got := statusText(a); !strings.Contains(got, "Incorrect. The correct solution is x = 2") {
		t.Errorf("status = %q", got)
	}
	if a.Model().Celebration != "" {
		t.Error("no balloons for a wrong guess")
	}
	if a.Model().State != tui.StateGuess {
		t.Error("a wrong guess should allow another try")
	}
}

func TestFractionalSolutionWithIntegerGuesses(t *testing.T) {
	a, _ := newTestApp(t, nil)

	typeText(a, "2x=5")
	press(t, a, tea.KeyEnter)
	if got := statusText(a); !strings.Contains(got, "Solution: x = 2.5") {
		t.Fatalf("status = %q", got)
	}

	typeText(a, "2")
	press(t, a, tea.KeyEnter)
	if got := statusText(a); !strings.Contains(got, "Incorrect. The correct solution is x = 2.5") {
		t.Errorf("status = %q", got)
	}
}

func TestFractionalGuessAllowedByConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Guess.AllowFractions = true
	a, _ := newTestApp(t, cfg)

	typeText(a, "2x=5")
	press(t, a, tea.KeyEnter)
	typeText(a, "5/2")
	press(t, a, tea.KeyEnter)

	if got := statusText(a); !strings.Contains(got, "Correct!") {
		t.Errorf("status = %q", got)
	}
}

func TestInvalidGuessKeepsSolvedLines(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Guess.AllowFractions = true
	a, _ := newTestApp(t, cfg)

	typeText(a, "3x=9")
	press(t, a, tea.KeyEnter)
	typeText(a, "abc")
	press(t, a, tea.KeyEnter)

	m := a.Model()
	if len(m.Status) != 3 || m.Status[2].Kind != tui.StatusError {
		t.Fatalf("Status = %+v", m.Status)
	}
	if !strings.Contains(m.Status[2].Text, "Invalid guess") {
		t.Errorf("status = %q", m.Status[2].Text)
	}
}

func TestEscapeReturnsToEquation(t *testing.T) {
	a, _ := newTestApp(t, nil)

	typeText(a, "3x=9")
	press(t, a, tea.KeyEnter)
	press(t, a, tea.KeyEsc)

	if a.Model().State != tui.StateEquation {
		t.Errorf("State = %v, want StateEquation", a.Model().State)
	}

	typeText(a, "x=1")
	press(t, a, tea.KeyEnter)
	if a.Model().State != tui.StateGuess {
		t.Errorf("State = %v, want StateGuess after a second equation", a.Model().State)
	}
}

type failingLogger struct{}

func (failingLogger) Append(log.LogEvent) error { return errors.New("disk full") }

func TestLogFailureShowsWarning(t *testing.T) {
	a := New(config.DefaultConfig(), t.TempDir(), failingLogger{})
	a.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	typeText(a, "3x=9")
	press(t, a, tea.KeyEnter)

	m := a.Model()
	if m.State != tui.StateGuess {
		t.Fatalf("State = %v, want StateGuess", m.State)
	}
	last := m.Status[len(m.Status)-1]
	if last.Kind != tui.StatusWarning || !strings.Contains(last.Text, "failed to write event log: disk full") {
		t.Errorf("Status = %+v", m.Status)
	}

	typeText(a, "3")
	press(t, a, tea.KeyEnter)
	got := statusText(a)
	if !strings.Contains(got, "Correct!") || !strings.Contains(got, "disk full") {
		t.Errorf("status = %q", got)
	}
}

func TestCtrlCTwiceQuits(t *testing.T) {
	a, _ := newTestApp(t, nil)

	_, cmd := a.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if !a.Model().CtrlCPending {
		t.Fatal("first Ctrl+C should set pending")
	}
	if cmd == nil {
		t.Fatal("first Ctrl+C should schedule a reset")
	}

	_, cmd = a.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("second Ctrl+C should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("second Ctrl+C did not return tea.Quit")
	}
}

func TestCtrlCResets(t *testing.T) {
	a, _ := newTestApp(t, nil)

	a.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	a.Update(tui.CtrlCResetMsg{})
	if a.Model().CtrlCPending {
		t.Error("CtrlCResetMsg should clear pending")
	}
}

func TestView(t *testing.T) {
	a, _ := newTestApp(t, nil)
	if v := a.View(); !strings.Contains(v, "First-Degree Equation Solver") {
		t.Errorf("View missing title:\n%s", v)
	}

	typeText(a, "3x=9")
	press(t, a, tea.KeyEnter)
	if v := a.View(); !strings.Contains(v, "Check your answer") {
		t.Errorf("View missing guess section:\n%s", v)
	}
}
