package core

import (
	"fmt"
	"io"

	"hellotcp/config"
	"hellotcp/internal/capability"
	herrors "hellotcp/internal/errors"
	"hellotcp/internal/metrics"
	"hellotcp/internal/transport"
	"hellotcp/util"
)

// Build constructs the Mode chosen in cfg.  stdin and stdout are only
// used by the client; nil means the process's own.
func Build(cfg *config.Config, logger *util.Logger, stdin io.Reader, stdout io.Writer) (Mode, error) {
	switch cfg.Mode {
	case config.ModeServer:
		return buildListen(cfg, logger), nil
	case config.ModeClient:
		return buildClient(cfg, logger, stdin, stdout), nil
	default:
		return nil, fmt.Errorf("mode %s: %w", cfg.Mode, herrors.ErrInvalidSelection)
	}
}

// ── mode builders ────────────────────────────────────────────────────

func buildListen(cfg *config.Config, logger *util.Logger) Mode {
	return &ListenMode{
		Address:    cfg.Address,
		Capability: &capability.Greeter{},
		Logger:     logger,
		Metrics:    metrics.New(),
	}
}

func buildClient(cfg *config.Config, logger *util.Logger, stdin io.Reader, stdout io.Writer) Mode {
	return &ClientMode{
		Dialer:  &transport.TCPDialer{},
		Address: cfg.Address,
		Logger:  logger,
		Stdin:   stdin,
		Stdout:  stdout,
	}
}
