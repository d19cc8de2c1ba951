package server

import "context"

// Server defines the lifecycle of the transport servers managed by this
// package.
type Server interface {
	// RunServer serves until a stop signal arrives, then shuts down.
	RunServer()

	// Run serves until ctx is cancelled or the listener fails. A clean
	// shutdown returns nil.
	Run(ctx context.Context) error

	// Shutdown gracefully stops the server.
	Shutdown()
}
