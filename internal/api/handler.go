// Package api provides HTTP handlers for the eqtutor API.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/eqtutor/eqtutor/internal/celebrate"
	"github.com/eqtutor/eqtutor/internal/equation"
	"github.com/eqtutor/eqtutor/internal/log"
	"github.com/eqtutor/eqtutor/internal/session"
)

// SessionHeader carries the session ID between solve and verify calls.
const SessionHeader = "X-Session-ID"

const (
	shellName    = "http"
	maxBodyBytes = 4 << 10
)

// Handler provides the equation endpoints and their shared state.
type Handler struct {
	store  *session.Store
	logger log.Appender
	picker *celebrate.Picker
	mode   equation.GuessMode
}

// NewHandler creates a Handler. A nil logger disables event logging.
func NewHandler(store *session.Store, logger log.Appender, picker *celebrate.Picker, mode equation.GuessMode) *Handler {
	if logger == nil {
		logger = log.Nop{}
	}
	return &Handler{
		store:  store,
		logger: logger,
		picker: picker,
		mode:   mode,
	}
}

// JSON writes a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, `{"error": "failed to encode response"}`, http.StatusInternalServerError)
	}
}

// Error writes a JSON error response.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"error": message})
}

// decode reads a size-limited JSON body into v.
func decode(w http.ResponseWriter, r *http.Request, v interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	return json.NewDecoder(r.Body).Decode(v)
}
