// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// running multiple workers in a unified way.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
// Run blocks until ctx is done or the worker fails.
type Worker interface {
	Run(ctx context.Context) error
}

// BackendProbe reports whether the storage backend is reachable.
type BackendProbe interface {
	Ping(ctx context.Context) error
}

// StatusReporter receives the outcome of every probe.
type StatusReporter interface {
	SetServing(serving bool)
}
