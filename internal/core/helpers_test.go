package core

import (
	"bytes"
	"context"
	"net"
	"sync"
	"testing"
	"time"

	"hellotcp/internal/capability"
	"hellotcp/internal/metrics"
	"hellotcp/util"
)

// syncBuffer is a bytes.Buffer safe for the concurrent writes a shared
// logger receives from handler goroutines.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func testLogger(out *syncBuffer) *util.Logger {
	l := util.NewLogger(3)
	l.SetOutput(out)
	l.SetTimestamps(false)
	return l
}

// startListener runs a ListenMode on a free loopback port and waits
// until it accepts connections.
func startListener(t *testing.T, capab capability.Capability) (*ListenMode, string, *syncBuffer) {
	t.Helper()

	port, err := util.FindFreePort()
	if err != nil {
		t.Fatal(err)
	}
	addr := util.FormatAddr("127.0.0.1", port)

	logs := &syncBuffer{}
	mode := &ListenMode{
		Address:    addr,
		Capability: capab,
		Logger:     testLogger(logs),
		Metrics:    metrics.New(),
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- mode.Run(ctx) }()

	t.Cleanup(func() {
		cancel()
		select {
		case <-done:
		case <-time.After(3 * time.Second):
			t.Error("listener did not shut down in time")
		}
	})

	waitForListener(t, addr)
	eventually(t, "readiness probe handled", func() bool {
		return mode.Metrics.TotalConnections() == 1 && mode.Metrics.ActiveConnections() == 0
	})
	return mode, addr, logs
}

func waitForListener(t *testing.T, addr string) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		conn, err := net.DialTimeout("tcp", addr, 100*time.Millisecond)
		if err == nil {
			// Half-close so the probe counts as an empty request.
			conn.(*net.TCPConn).CloseWrite() //nolint:errcheck
			conn.Close()
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatalf("listener on %s never came up", addr)
}

// eventually polls cond until it holds or the deadline passes.
func eventually(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", what)
}
