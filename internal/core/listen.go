package core

import (
	"context"
	"net"

	"hellotcp/internal/capability"
	herrors "hellotcp/internal/errors"
	"hellotcp/internal/metrics"
	"hellotcp/internal/session"
	"hellotcp/util"
)

// ListenMode binds Address and spawns one goroutine per accepted
// connection, each running Capability once.
//
// A failed bind or a failed accept ends Run with an error; there is no
// distinction between transient and permanent accept failures.
// Cancelling ctx closes the listener and Run returns nil.  Handlers
// already in flight are left to finish on their own.
type ListenMode struct {
	Address    string
	Capability capability.Capability
	Logger     *util.Logger
	Metrics    *metrics.Collector // may be nil
}

// Run starts listening and dispatches accepted connections to the
// capability.
func (m *ListenMode) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", m.Address)
	if err != nil {
		return herrors.Wrap("listen", m.Address, err)
	}
	defer ln.Close()

	m.Logger.Info("server running on %s", ln.Addr())

	// Shut the listener down when the context expires.
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			ln.Close()
		case <-stop:
		}
	}()

	defer func() {
		m.Logger.Verbose("listener stopped; stats: %s", m.Metrics.JSON())
	}()

	for {
		conn, err := ln.Accept()
		if err != nil {
			select {
			case <-ctx.Done():
				return nil
			default:
				return herrors.Wrap("accept", m.Address, err)
			}
		}

		m.Logger.Info("new connection from %s", conn.RemoteAddr())
		m.Metrics.ConnectionOpened()

		go m.serveConn(ctx, conn)
	}
}

// serveConn owns conn until the capability returns.  Errors stay here;
// they never reach the accept loop.
func (m *ListenMode) serveConn(ctx context.Context, conn net.Conn) {
	defer m.Metrics.ConnectionClosed()
	defer conn.Close()

	sess := session.New(conn, m.Logger, m.Metrics)
	m.Logger.Debug("[%s] session for %s", sess.ShortID(), conn.RemoteAddr())

	if err := m.Capability.Handle(ctx, sess); err != nil {
		m.Metrics.RecordError(err.Error())
		m.Logger.Error("[%s] %v", sess.ShortID(), err)
	}
}
