package server

import "context"

// Server defines the lifecycle contract of the servers managed by this
// package.
//
// Implementations block in [RunServer] until ctx is cancelled, a stop
// signal arrives or [Shutdown] is called.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer(ctx context.Context) error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()

	// Addr returns the address the server listens on.
	Addr() string
}
