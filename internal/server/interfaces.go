package server

import "context"

// Server defines the lifecycle contract of the bundle publisher.
//
// Implementations block in [RunServer] until a termination signal arrives
// and release resources in [Shutdown].
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer()

	// Run serves until ctx is done or a component fails.
	Run(ctx context.Context) error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
