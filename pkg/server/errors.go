package server

import (
	"errors"
	"fmt"
)

// Sentinel errors for common session and server error conditions.
var (
	// ErrSessionClosed is returned when an operation is attempted on a closed session.
	ErrSessionClosed = errors.New("server: session closed")

	// ErrMaxSessionsReached is returned when the maximum number of sessions is reached.
	ErrMaxSessionsReached = errors.New("server: max sessions reached")

	// ErrEventQueueFull is returned when the event queue is full and an event is dropped.
	ErrEventQueueFull = errors.New("server: event queue full")

	// ErrServerClosed is returned when a session is requested after shutdown began.
	ErrServerClosed = errors.New("server: shutting down")
)

// SessionError wraps an error with session context for debugging.
type SessionError struct {
	SessionID string
	Op        string // Operation that failed
	Err       error  // Underlying error
}

// Error returns the error message with session context.
func (e *SessionError) Error() string {
	if e.SessionID == "" {
		return fmt.Sprintf("server: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("server: session %s: %s: %v", e.SessionID, e.Op, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As.
func (e *SessionError) Unwrap() error {
	return e.Err
}

// HandlerError wraps a panic raised while handling a UI event.
type HandlerError struct {
	SessionID string
	EventType string
	Panic     any
	Stack     []byte
}

// Error returns the error message.
func (e *HandlerError) Error() string {
	return fmt.Sprintf("server: handler panic in session %s, event %s: %v",
		e.SessionID, e.EventType, e.Panic)
}
