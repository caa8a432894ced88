package capability

import (
	"context"

	herrors "hellotcp/internal/errors"
	"hellotcp/internal/session"
	"hellotcp/internal/wire"
	"hellotcp/util"
)

// Greeter performs exactly one read on the connection and, if the peer
// sent anything, writes back wire.Reply.  It never reads a second time.
type Greeter struct{}

// Handle runs the single read/reply exchange.  A peer that closes
// without sending is a normal completion and gets no write.
func (g *Greeter) Handle(_ context.Context, sess *session.Session) error {
	buf := util.GetBuf()
	defer util.PutBuf(buf)

	addr := sess.Conn.RemoteAddr().String()

	n, err := sess.Conn.Read(*buf)
	switch {
	case err != nil && !herrors.IsClosed(err):
		return herrors.Wrap("read", addr, err)
	case n == 0:
		sess.Logger.Verbose("[%s] %s closed without sending", sess.ShortID(), addr)
		sess.Metrics.EmptyRequest()
		return nil
	}
	sess.Metrics.BytesReceived(int64(n))

	sess.Logger.Info("[%s] received request: %s", sess.ShortID(), wire.Decode((*buf)[:n]))

	written, err := sess.Conn.Write([]byte(wire.Reply))
	sess.Metrics.BytesSent(int64(written))
	if err != nil {
		return herrors.Wrap("write", addr, err)
	}

	sess.Metrics.ReplySent()
	sess.Logger.Info("[%s] sent response to client", sess.ShortID())
	return nil
}
