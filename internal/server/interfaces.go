package server

import "context"

// Server defines the common lifecycle contract for transport servers managed
// by this package.
//
// Implementations block in Run until the server stops and release their
// resources in Shutdown.
type Server interface {
	// Run starts serving requests and blocks until the server stops.
	// A stop caused by Shutdown is not an error.
	Run(ctx context.Context) error

	// Shutdown gracefully stops the server, giving in-flight requests until
	// ctx is done to complete.
	Shutdown(ctx context.Context) error
}
