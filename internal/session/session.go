// Package session represents one accepted connection's lifecycle:
// the connection itself, a correlation ID for log lines, and the
// shared logger and counters it reports to.
package session

import (
	"net"

	"github.com/google/uuid"

	"hellotcp/internal/metrics"
	"hellotcp/util"
)

// Session is owned by exactly one handler for the lifetime of its
// connection.
type Session struct {
	ID      string
	Conn    net.Conn
	Logger  *util.Logger
	Metrics *metrics.Collector // may be nil
}

// New creates a Session bound to conn with a fresh random ID.
func New(conn net.Conn, logger *util.Logger, m *metrics.Collector) *Session {
	return &Session{
		ID:      uuid.NewString(),
		Conn:    conn,
		Logger:  logger,
		Metrics: m,
	}
}

// ShortID returns the first block of the ID, enough to tell
// concurrent connections apart in logs.
func (s *Session) ShortID() string {
	if len(s.ID) < 8 {
		return s.ID
	}
	return s.ID[:8]
}
