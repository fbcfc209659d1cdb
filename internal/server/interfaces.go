package server

import "context"

// Server defines the lifecycle contract of the redirect listener.
type Server interface {
	// Start binds the listen address and serves in the background until ctx
	// is cancelled or Stop is called. Bind errors are returned directly.
	Start(ctx context.Context) error

	// Stop gracefully shuts the server down. Safe to call more than once.
	Stop()

	// Addr returns the bound address, or "" before Start.
	Addr() string
}
