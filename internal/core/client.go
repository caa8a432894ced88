package core

import (
	"context"
	"fmt"
	"io"
	"os"

	herrors "hellotcp/internal/errors"
	"hellotcp/internal/transport"
	"hellotcp/internal/wire"
	"hellotcp/util"
)

// ClientMode reads one line of operator input per iteration, sends it
// over a fresh connection, and prints the single reply it gets back.
// Connections are never reused.
type ClientMode struct {
	Dialer  transport.Dialer
	Address string
	Logger  *util.Logger

	// Stdin/Stdout default to os.Stdin/os.Stdout when nil.
	// Override in tests for deterministic I/O.
	Stdin  io.Reader
	Stdout io.Writer
}

func (m *ClientMode) stdin() io.Reader {
	if m.Stdin != nil {
		return m.Stdin
	}
	return os.Stdin
}

func (m *ClientMode) stdout() io.Writer {
	if m.Stdout != nil {
		return m.Stdout
	}
	return os.Stdout
}

// Run loops until the operator's input ends or ctx is cancelled, both
// of which return nil.  Any connect, send or receive failure ends the
// loop with that error.
func (m *ClientMode) Run(ctx context.Context) error {
	defer m.Dialer.Close()

	in := asBufio(m.stdin())
	for {
		m.Logger.Info(messagePrompt)

		line, err := readLine(ctx, in)
		switch {
		case herrors.Is(err, herrors.ErrNoInput):
			m.Logger.Verbose("operator input closed")
			return nil
		case ctx.Err() != nil:
			return nil
		case err != nil:
			return fmt.Errorf("read operator input: %w", err)
		}

		if err := m.exchange(ctx, line); err != nil {
			return err
		}
	}
}

// exchange performs one connect/send/receive round trip.
func (m *ClientMode) exchange(ctx context.Context, msg string) error {
	out := m.stdout()

	conn, err := m.Dialer.Dial(ctx, "tcp", m.Address)
	if err != nil {
		return err
	}
	defer conn.Close()
	fmt.Fprintln(out, "Connected to the server")

	if _, err := io.WriteString(conn, wire.FormatRequest(msg)); err != nil {
		return herrors.Wrap("write", m.Address, err)
	}
	fmt.Fprintln(out, "Sent request to server")

	buf := util.GetBuf()
	defer util.PutBuf(buf)

	// A server that closes without replying yields an empty response,
	// not an error.
	n, err := conn.Read(*buf)
	if err != nil && err != io.EOF {
		return herrors.Wrap("read", m.Address, err)
	}
	fmt.Fprintf(out, "Received response: %s\n", wire.Decode((*buf)[:n]))
	return nil
}
