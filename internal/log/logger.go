// Package log provides structured event logging.
// This file appends JSON events to log.jsonl.
package log

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Event type constants.
const (
	EventEquationSolved   = "equation_solved"
	EventEquationRejected = "equation_rejected"
	EventGuessChecked     = "guess_checked"
)

// LogEvent represents a single structured event written to the log.
type LogEvent struct {
	Time        time.Time `json:"time"`
	Event       string    `json:"event"`
	Shell       string    `json:"shell,omitempty"` // "tui", "cli", "fallback", "http"
	SessionID   string    `json:"session,omitempty"`
	Equation    string    `json:"equation,omitempty"`
	Description string    `json:"description,omitempty"`
	Solution    string    `json:"solution,omitempty"`
	Guess       string    `json:"guess,omitempty"`
	Correct     *bool     `json:"correct,omitempty"`
	Attempt     int       `json:"attempt,omitempty"`
	Kind        string    `json:"kind,omitempty"`
	Error       string    `json:"error,omitempty"`
}

// Appender is implemented by *Logger and Nop.
type Appender interface {
	Append(event LogEvent) error
}

// Logger writes append-only JSONL events to a log file.
type Logger struct {
	path string
	mu   sync.Mutex
}

// NewLogger creates a Logger that writes to .eqtutor/log.jsonl inside dir.
// Creates the .eqtutor/ directory if it does not already exist.
// Does not truncate an existing log file.
func NewLogger(dir string) (*Logger, error) {
	logDir := filepath.Join(dir, ".eqtutor")
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("create .eqtutor directory: %w", err)
	}

	return &Logger{
		path: filepath.Join(logDir, "log.jsonl"),
	}, nil
}

// Path returns the log file location.
func (l *Logger) Path() string {
	return l.path
}

// Append writes a single LogEvent as one JSON line to the log file.
// If event.Time is the zero value, it is automatically set to time.Now().UTC().
// Thread-safe via mutex.
func (l *Logger) Append(event LogEvent) error {
	if event.Time.IsZero() {
		event.Time = time.Now().UTC()
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal log event: %w", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("write log event: %w", err)
	}

	return nil
}

// ReadAll reads and parses all events from the log file.
// Returns an empty slice (not an error) if the file does not exist.
func (l *Logger) ReadAll() ([]LogEvent, error) {
	f, err := os.Open(l.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []LogEvent{}, nil
		}
		return nil, fmt.Errorf("open log file: %w", err)
	}
	defer f.Close()

	var events []LogEvent
	scanner := bufio.NewScanner(f)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var event LogEvent
		if err := json.Unmarshal(line, &event); err != nil {
			return nil, fmt.Errorf("parse log line %d: %w", lineNum, err)
		}
		events = append(events, event)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log file: %w", err)
	}

	return events, nil
}

// Nop discards every event.
type Nop struct{}

// Append does nothing.
func (Nop) Append(LogEvent) error { return nil }

// Bool returns a pointer to b, for LogEvent.Correct.
func Bool(b bool) *bool { return &b }
