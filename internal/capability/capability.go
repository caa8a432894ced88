// Package capability defines what happens over an accepted
// connection.  A Capability operates on a Session rather than a raw
// net.Conn, which keeps it testable and decoupled from the accept
// loop.
package capability

import (
	"context"

	"hellotcp/internal/session"
)

// Capability handles a single connection.
type Capability interface {
	// Handle runs against the given session and returns when its
	// exchange is over.  It does not close the connection; the caller
	// owns that.
	Handle(ctx context.Context, sess *session.Session) error
}
