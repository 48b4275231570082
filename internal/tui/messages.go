// Package tui implements the terminal user interface using Bubble Tea.
package tui

// CtrlCResetMsg clears the pending Ctrl+C confirmation after its timeout.
type CtrlCResetMsg struct{}
