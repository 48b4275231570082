package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/eqtutor/eqtutor/internal/equation"
	"github.com/eqtutor/eqtutor/internal/tui"
)

// SubmitGuessMsg is sent when the user presses Enter on the guess input.
type SubmitGuessMsg struct {
	Raw string
}

// NewEquationMsg is sent when the user leaves the guess view to enter
// another equation.
type NewEquationMsg struct{}

// GuessModel is the view model for the "check your answer" input.
type GuessModel struct {
	textInput textinput.Model
	mode      equation.GuessMode
	width     int
}

// NewGuessModel creates a focused guess input for the given mode.
func NewGuessModel(mode equation.GuessMode, width int) GuessModel {
	ti := textinput.New()
	ti.Prompt = "x = "
	ti.Placeholder = "0"
	ti.CharLimit = 40
	ti.Width = width - 10
	if mode == equation.GuessInteger {
		ti.Validate = wholeNumberPrefix
	}
	ti.Focus()

	return GuessModel{
		textInput: ti,
		mode:      mode,
		width:     width,
	}
}

// wholeNumberPrefix flags input that can never become a whole number.
func wholeNumberPrefix(s string) error {
	for i, r := range s {
		if r >= '0' && r <= '9' {
			continue
		}
		if i == 0 && (r == '-' || r == '+') {
			continue
		}
		return equation.ErrInvalidGuess
	}
	return nil
}

// Init returns the initial command for the guess view.
func (m GuessModel) Init() tea.Cmd {
	return textinput.Blink
}

// Value returns the current input text.
func (m GuessModel) Value() string {
	return m.textInput.Value()
}

// Update handles messages for the guess view.
func (m GuessModel) Update(msg tea.Msg) (GuessModel, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, tui.DefaultKeyMap.Enter):
			value := m.textInput.Value()
			return m, func() tea.Msg {
				return SubmitGuessMsg{Raw: value}
			}
		case key.Matches(msg, tui.DefaultKeyMap.Escape):
			return m, func() tea.Msg {
				return NewEquationMsg{}
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.textInput.Width = msg.Width - 10
		return m, nil
	}

	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

// View renders the guess view.
func (m GuessModel) View() string {
	var b strings.Builder

	b.WriteString(tui.SubtitleStyle.Render("Check your answer"))
	b.WriteString("\n")
	prompt := "What do you think x is?"
	if m.mode == equation.GuessExact {
		prompt += tui.DimStyle.Render(" (decimals like 2.5 or fractions like 5/2 are fine)")
	}
	b.WriteString(prompt)
	b.WriteString("\n\n")
	b.WriteString(m.textInput.View())
	if m.textInput.Err != nil {
		b.WriteString("\n")
		b.WriteString(tui.WarningStyle.Render("Whole numbers only"))
	}

	return b.String()
}
