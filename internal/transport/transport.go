// Package transport provides the connection-establishment abstraction
// used by the interactive client.  Each client iteration dials a fresh
// connection through a Dialer; what is sent over it is the client
// loop's business.
package transport

import (
	"context"
	"net"
)

// Dialer opens outbound network connections.
type Dialer interface {
	// Dial establishes a connection to the given network address.
	Dial(ctx context.Context, network, address string) (net.Conn, error)

	// Close releases any long-lived resources held by the dialer.
	// Stateless dialers return nil.
	Close() error
}
