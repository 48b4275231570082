package log

import (
	"github.com/eqtutor/eqtutor/internal/equation"
	"github.com/eqtutor/eqtutor/internal/session"
)

// Solved builds the event for a successfully solved equation.
func Solved(shell, sessionID, raw string, res *equation.Result) LogEvent {
	return LogEvent{
		Event:       EventEquationSolved,
		Shell:       shell,
		SessionID:   sessionID,
		Equation:    raw,
		Description: res.Description,
		Solution:    res.Solution.String(),
	}
}

// Rejected builds the event for an equation that failed to parse or solve.
func Rejected(shell, sessionID, raw string, err error) LogEvent {
	ev := LogEvent{
		Event:     EventEquationRejected,
		Shell:     shell,
		SessionID: sessionID,
		Equation:  raw,
		Error:     err.Error(),
	}
	if k := equation.KindOf(err); k != 0 {
		ev.Kind = k.String()
	}
	return ev
}

// Checked builds the event for a verified guess.
func Checked(shell, sessionID string, v session.Verdict) LogEvent {
	return LogEvent{
		Event:     EventGuessChecked,
		Shell:     shell,
		SessionID: sessionID,
		Solution:  v.Expected.String(),
		Guess:     v.Guess.String(),
		Correct:   Bool(v.Correct),
		Attempt:   v.Attempts,
	}
}
