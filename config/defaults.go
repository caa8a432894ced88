package config

// ── Default values ───────────────────────────────────────────────────

const (
	// DefaultAddress is the loopback endpoint the listener binds and the
	// client dials.
	DefaultAddress = "127.0.0.1:3000"

	// DefaultLogFile receives a copy of every log line.
	DefaultLogFile = "output.log"

	// DefaultVerbosity prints INF and above.
	DefaultVerbosity = 1
)
