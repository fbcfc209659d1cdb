// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that starts and
// stops several workers as one.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Start must not block: long-running work goes to a goroutine that ends when
// ctx is cancelled or Stop is called.
type Worker interface {
	Start(ctx context.Context) error
	Stop()
}
