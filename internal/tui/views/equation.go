// Package views provides TUI view components for the eqtutor application.
package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/eqtutor/eqtutor/internal/equation"
	"github.com/eqtutor/eqtutor/internal/tui"
)

// SubmitEquationMsg is sent when the user presses Enter on the equation input.
type SubmitEquationMsg struct {
	Raw string
}

// EquationModel is the view model for the equation input.
type EquationModel struct {
	textInput textinput.Model
	width     int
}

// NewEquationModel creates a focused equation input.
func NewEquationModel(width int) EquationModel {
	ti := textinput.New()
	ti.Placeholder = "2x + 3 = 7"
	ti.Prompt = "Equation: "
	ti.CharLimit = 200
	ti.Width = width - 10 // Account for padding/borders
	ti.Focus()

	return EquationModel{
		textInput: ti,
		width:     width,
	}
}

// Init returns the initial command for the equation view.
func (m EquationModel) Init() tea.Cmd {
	return textinput.Blink
}

// Value returns the current input text.
func (m EquationModel) Value() string {
	return m.textInput.Value()
}

// Focus focuses the input.
func (m *EquationModel) Focus() tea.Cmd {
	return m.textInput.Focus()
}

// Blur removes focus from the input.
func (m *EquationModel) Blur() {
	m.textInput.Blur()
}

// Focused reports whether the input has focus.
func (m EquationModel) Focused() bool {
	return m.textInput.Focused()
}

// Update handles messages for the equation view.
func (m EquationModel) Update(msg tea.Msg) (EquationModel, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, tui.DefaultKeyMap.Enter) && m.textInput.Focused() {
			value := m.textInput.Value()
			return m, func() tea.Msg {
				return SubmitEquationMsg{Raw: value}
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

// View renders the equation view.
func (m EquationModel) View() string {
	var b strings.Builder

	b.WriteString(tui.TitleStyle.Render("🧮 First-Degree Equation Solver"))
	b.WriteString("\n\n")
	b.WriteString("Solves equations of the form ")
	b.WriteString(tui.SubtitleStyle.Render("ax + b = c"))
	b.WriteString("\n\n")
	b.WriteString(m.textInput.View())
	b.WriteString("\n\n")
	b.WriteString(tui.DimStyle.Render("Examples: " + strings.Join(equation.Examples, "   ")))

	return b.String()
}
