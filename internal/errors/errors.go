// Package errors provides domain-specific error types for hellotcp.
//
// NetworkError records which step of an exchange failed and against
// which address.  Nothing in hellotcp retries; the retryable flag only
// shows up in log lines so an operator can tell a transient OS error
// from a permanent one.
package errors

import (
	"errors"
	"fmt"
	"io"
	"net"
)

// ── Sentinel errors ──────────────────────────────────────────────────

var (
	// ErrInvalidSelection is returned when the startup prompt receives
	// anything other than a server or client choice.
	ErrInvalidSelection = errors.New("invalid selection")
	// ErrNoInput is returned when standard input closes before the
	// operator answered a prompt.
	ErrNoInput = errors.New("no operator input")
)

// ── Structured error types ───────────────────────────────────────────

// NetworkError represents a failure in a network operation.
type NetworkError struct {
	Op        string // operation: "dial", "listen", "accept", "write", "read"
	Addr      string // network address involved
	Err       error  // underlying error
	Retryable bool   // whether the condition looked transient
}

func (e *NetworkError) Error() string {
	s := fmt.Sprintf("%s %s: %v", e.Op, e.Addr, e.Err)
	if e.Retryable {
		s += " (retryable)"
	}
	return s
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ConfigError represents an invalid configuration value.
type ConfigError struct {
	Field   string      // config field name
	Value   interface{} // the invalid value (nil if missing)
	Message string      // human-readable explanation
	Hint    string      // suggestion for the user (optional)
}

func (e *ConfigError) Error() string {
	msg := fmt.Sprintf("config: --%s", e.Field)
	if e.Value != nil {
		msg += fmt.Sprintf("=%v", e.Value)
	}
	msg += ": " + e.Message
	if e.Hint != "" {
		msg += "\n  hint: " + e.Hint
	}
	return msg
}

// ── Constructors ─────────────────────────────────────────────────────

// Wrap creates a NetworkError, automatically detecting retryability
// from the underlying error.
func Wrap(op, addr string, err error) *NetworkError {
	return &NetworkError{
		Op:        op,
		Addr:      addr,
		Err:       err,
		Retryable: classifyRetryable(err),
	}
}

// ── Classification helpers ───────────────────────────────────────────

// IsClosed reports whether err means the peer or the local side closed
// the connection, as opposed to a genuine I/O failure.
func IsClosed(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, io.EOF) || errors.Is(err, net.ErrClosed) || errors.Is(err, io.ErrClosedPipe) {
		return true
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return errors.Is(opErr.Err, net.ErrClosed)
	}
	return false
}

// classifyRetryable reports whether the OS flagged a socket error as
// temporary (EAGAIN, ECONNABORTED and the like).
func classifyRetryable(err error) bool {
	if err == nil {
		return false
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return opErr.Temporary() //nolint:staticcheck // Temporary is deprecated but still useful
	}
	return false
}

// Is is [errors.Is], so callers matching the sentinels above need only
// this package.
func Is(err, target error) bool { return errors.Is(err, target) }
