package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/eqtutor/eqtutor/internal/equation"
	"github.com/eqtutor/eqtutor/internal/log"
	"github.com/eqtutor/eqtutor/internal/session"
	"github.com/eqtutor/eqtutor/internal/ui"
)

// SolveRequest is the body of POST /api/solve.
type SolveRequest struct {
	Equation string `json:"equation"`
}

// SolveResponse is returned by a successful solve.
type SolveResponse struct {
	SessionID   string            `json:"session_id"`
	Description string            `json:"description"`
	Solution    equation.Solution `json:"solution"`
	Integer     bool              `json:"integer"`
	Fraction    string            `json:"fraction"`
}

// VerifyRequest is the body of POST /api/verify.
type VerifyRequest struct {
	Guess string `json:"guess"`
}

// VerifyResponse is returned for every checked guess, right or wrong.
type VerifyResponse struct {
	Correct  bool              `json:"correct"`
	Solution equation.Solution `json:"solution"`
	Attempts int               `json:"attempts"`
	Message  string            `json:"message,omitempty"`
}

// ErrorResponse is returned when an equation cannot be solved.
type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

// RegisterRoutes registers the equation routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Get("/examples", h.Examples)
		r.Post("/solve", h.Solve)
		r.Post("/verify", h.Verify)
	})
}

// Examples lists equations the parser accepts.
func (h *Handler) Examples(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusOK, map[string][]string{"examples": equation.Examples})
}

// Solve parses and solves an equation, storing the solution in the caller's
// session. A new session is created when the request carries none.
func (h *Handler) Solve(w http.ResponseWriter, r *http.Request) {
	var req SolveRequest
	if err := decode(w, r, &req); err != nil {
		Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sess := h.store.GetOrCreate(r.Header.Get(SessionHeader))
	w.Header().Set(SessionHeader, sess.ID)

	res, err := sess.Resolve(req.Equation)
	if err != nil {
		if !errors.Is(err, session.ErrEmptyEquation) {
			h.appendLog(log.Rejected(shellName, sess.ID, req.Equation, err))
		}
		resp := ErrorResponse{Error: ui.FailureText(err)}
		if k := equation.KindOf(err); k != 0 {
			resp.Kind = k.String()
		}
		JSON(w, http.StatusBadRequest, resp)
		return
	}
	h.appendLog(log.Solved(shellName, sess.ID, req.Equation, res))

	JSON(w, http.StatusOK, SolveResponse{
		SessionID:   sess.ID,
		Description: res.Description,
		Solution:    res.Solution,
		Integer:     res.Solution.IsInteger(),
		Fraction:    res.Solution.Fraction(),
	})
}

// Verify checks a guess against the session's last solved equation.
func (h *Handler) Verify(w http.ResponseWriter, r *http.Request) {
	id := r.Header.Get(SessionHeader)
	if id == "" {
		Error(w, http.StatusBadRequest, "missing "+SessionHeader+" header")
		return
	}
	sess, ok := h.store.Get(id)
	if !ok {
		Error(w, http.StatusNotFound, "session not found")
		return
	}

	var req VerifyRequest
	if err := decode(w, r, &req); err != nil {
		Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	guess, err := equation.ParseGuess(req.Guess, h.mode)
	if err != nil {
		Error(w, http.StatusBadRequest, ui.FailureText(err))
		return
	}

	v, err := sess.Verify(guess)
	if errors.Is(err, session.ErrNoActiveEquation) {
		Error(w, http.StatusConflict, ui.FailureText(err))
		return
	}
	if err != nil {
		slog.Error("Failed to verify guess", "session_id", id, "error", err)
		Error(w, http.StatusInternalServerError, "internal error")
		return
	}
	h.appendLog(log.Checked(shellName, sess.ID, v))

	resp := VerifyResponse{
		Correct:  v.Correct,
		Solution: v.Expected,
		Attempts: v.Attempts,
	}
	if v.Correct {
		resp.Message = h.picker.Message()
	}
	JSON(w, http.StatusOK, resp)
}

func (h *Handler) appendLog(e log.LogEvent) {
	if err := h.logger.Append(e); err != nil {
		slog.Warn("Failed to write event log", "event", e.Event, "error", err)
	}
}
