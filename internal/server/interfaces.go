// Package server owns the HTTP transport lifecycle on the server side:
// startup, signal-driven graceful shutdown, and the push hub's run loop.
package server

// Server defines the lifecycle contract for the transport server.
//
// Implementations are expected to block in [RunServer] until shutdown is
// requested and to release resources in [Shutdown].
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer()

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
