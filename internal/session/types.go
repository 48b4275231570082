// Package session holds the state a presentation shell keeps between
// solving an equation and checking a guess against it.
package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/eqtutor/eqtutor/internal/equation"
)

var (
	// ErrEmptyEquation is returned by Resolve for an empty string. The
	// session is left unchanged. Whitespace-only input is parsed and fails.
	ErrEmptyEquation = errors.New("please enter an equation")

	// ErrNoActiveEquation is returned by Verify when the most recent
	// Resolve did not succeed.
	ErrNoActiveEquation = errors.New("no equation has been solved yet")
)

// Session is the "last solution" slot of one user.
type Session struct {
	mu sync.Mutex

	ID          string
	Equation    string
	Description string
	Solution    equation.Solution
	Active      bool
	Attempts    int
	Solved      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Verdict is the outcome of one Verify call.
type Verdict struct {
	Correct  bool
	Expected equation.Solution
	Guess    equation.Solution
	Attempts int
}

// Snapshot is a copy of a Session's fields, safe to read without locking.
type Snapshot struct {
	ID          string
	Equation    string
	Description string
	Solution    equation.Solution
	Active      bool
	Attempts    int
	Solved      bool
	UpdatedAt   time.Time
}

// New creates an empty, inactive session with a fresh ID.
func New() *Session {
	now := time.Now().UTC()
	return &Session{
		ID:        uuid.NewString(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Resolve parses and solves raw, replacing the active solution on success
// and clearing it on failure.
func (s *Session) Resolve(raw string) (*equation.Result, error) {
	if raw == "" {
		return nil, ErrEmptyEquation
	}

	res, err := equation.ParseAndSolve(raw)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.UpdatedAt = time.Now().UTC()
	s.Attempts = 0
	s.Solved = false

	if err != nil {
		s.Active = false
		s.Equation = ""
		s.Description = ""
		s.Solution = equation.Solution{}
		return nil, err
	}

	s.Active = true
	s.Equation = raw
	s.Description = res.Description
	s.Solution = res.Solution
	return res, nil
}

// Verify compares guess against the active solution.
func (s *Session) Verify(guess equation.Solution) (Verdict, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.Active {
		return Verdict{}, ErrNoActiveEquation
	}

	s.Attempts++
	s.UpdatedAt = time.Now().UTC()
	correct := equation.CheckGuess(s.Solution, guess)
	if correct {
		s.Solved = true
	}

	return Verdict{
		Correct:  correct,
		Expected: s.Solution,
		Guess:    guess,
		Attempts: s.Attempts,
	}, nil
}

// Snapshot returns a copy of the session's current state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Snapshot{
		ID:          s.ID,
		Equation:    s.Equation,
		Description: s.Description,
		Solution:    s.Solution,
		Active:      s.Active,
		Attempts:    s.Attempts,
		Solved:      s.Solved,
		UpdatedAt:   s.UpdatedAt,
	}
}
