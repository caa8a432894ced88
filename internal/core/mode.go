// Package core composes transports and capabilities into the two
// operational modes, server and client, and resolves which one runs.
//
// Architecture layers (bottom → top):
//
//	wire, transport  →  session, capability  →  core  →  cmd (CLI)
//
// The two modes share no state.  Exactly one of them runs per process,
// chosen once at startup.
package core

import "context"

// Mode represents a complete operational mode of hellotcp.  Each mode
// owns its full lifecycle from connection establishment to teardown.
type Mode interface {
	Run(ctx context.Context) error
}
