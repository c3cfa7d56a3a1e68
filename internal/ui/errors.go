package ui

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
)

// ErrorTracker owns the application log file and counts error records.
// The terminal belongs to the UI, so everything is logged to a file and the
// status bar only shows how many errors were written.
type ErrorTracker struct {
	errorCount int
	logFile    *os.File
	logger     *slog.Logger
	mu         sync.RWMutex
}

// NewErrorTracker creates a tracker logging to path at the given level
func NewErrorTracker(path string, level slog.Level) (*ErrorTracker, error) {
	logFile, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}

	e := &ErrorTracker{logFile: logFile}
	e.logger = slog.New(&countingHandler{
		Handler: slog.NewTextHandler(logFile, &slog.HandlerOptions{Level: level}),
		tracker: e,
	})

	return e, nil
}

// Logger returns the logger that feeds this tracker
func (e *ErrorTracker) Logger() *slog.Logger {
	return e.logger
}

// HasErrors returns true if any errors have been logged
func (e *ErrorTracker) HasErrors() bool {
	return e.ErrorCount() > 0
}

// ErrorCount returns the number of errors logged
func (e *ErrorTracker) ErrorCount() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.errorCount
}

// Close closes the log file
func (e *ErrorTracker) Close() error {
	if e.logFile != nil {
		return e.logFile.Close()
	}
	return nil
}

func (e *ErrorTracker) recordError() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.errorCount++
}

// countingHandler forwards records and counts those at error level
type countingHandler struct {
	slog.Handler
	tracker *ErrorTracker
}

func (h *countingHandler) Handle(ctx context.Context, r slog.Record) error {
	if r.Level >= slog.LevelError {
		h.tracker.recordError()
	}
	return h.Handler.Handle(ctx, r)
}

func (h *countingHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &countingHandler{Handler: h.Handler.WithAttrs(attrs), tracker: h.tracker}
}

func (h *countingHandler) WithGroup(name string) slog.Handler {
	return &countingHandler{Handler: h.Handler.WithGroup(name), tracker: h.tracker}
}
