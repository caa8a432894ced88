package transport

import (
	"context"
	"net"
	"time"

	herrors "hellotcp/internal/errors"
)

// TCPDialer establishes plain TCP connections.  A zero Timeout leaves
// the dial bounded only by the context and the OS.
type TCPDialer struct {
	Timeout time.Duration
}

// Dial connects to address over TCP.
func (d *TCPDialer) Dial(ctx context.Context, network, address string) (net.Conn, error) {
	dialer := net.Dialer{Timeout: d.Timeout}
	conn, err := dialer.DialContext(ctx, network, address)
	if err != nil {
		return nil, herrors.Wrap("dial", address, err)
	}
	return conn, nil
}

// Close is a no-op for stateless TCP dialers.
func (d *TCPDialer) Close() error { return nil }
