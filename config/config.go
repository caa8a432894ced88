// Package config defines the runtime configuration for hellotcp and
// the server/client mode choice made once at startup.
package config

import (
	"fmt"
	"strings"

	herrors "hellotcp/internal/errors"
	"hellotcp/util"
)

// Mode is the operator's startup choice.
type Mode int

const (
	// ModeUnset means the operator is asked interactively.
	ModeUnset Mode = iota
	// ModeServer runs the listener loop.
	ModeServer
	// ModeClient runs the interactive client loop.
	ModeClient
)

func (m Mode) String() string {
	switch m {
	case ModeServer:
		return "server"
	case ModeClient:
		return "client"
	default:
		return "unset"
	}
}

// ParseMode accepts the prompt answers "1" and "2" as well as the
// names "server" and "client".  Surrounding whitespace is ignored.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "server":
		return ModeServer, nil
	case "2", "client":
		return ModeClient, nil
	default:
		return ModeUnset, fmt.Errorf("%w: %q", herrors.ErrInvalidSelection, s)
	}
}

// Config holds every tuneable for a single hellotcp process.
type Config struct {
	Mode    Mode
	Address string // fixed endpoint; see DefaultAddress
	LogFile string // "" disables the file sink
	Verbose int
}

// Default returns a Config populated from defaults.go.
func Default() *Config {
	return &Config{
		Address: DefaultAddress,
		LogFile: DefaultLogFile,
		Verbose: DefaultVerbosity,
	}
}

// Validate checks that the configuration is internally consistent.
func (c *Config) Validate() error {
	if c.Address == "" {
		return &herrors.ConfigError{
			Field:   "address",
			Message: "endpoint is required",
		}
	}
	if _, _, err := util.SplitAddr(c.Address); err != nil {
		return &herrors.ConfigError{
			Field:   "address",
			Value:   c.Address,
			Message: err.Error(),
			Hint:    "use host:port, e.g. " + DefaultAddress,
		}
	}
	if c.Verbose < 0 {
		return &herrors.ConfigError{
			Field:   "verbose",
			Value:   c.Verbose,
			Message: "must not be negative",
		}
	}
	if c.Mode < ModeUnset || c.Mode > ModeClient {
		return &herrors.ConfigError{
			Field:   "mode",
			Value:   int(c.Mode),
			Message: "unknown mode",
			Hint:    "use 1 (server) or 2 (client)",
		}
	}
	return nil
}
