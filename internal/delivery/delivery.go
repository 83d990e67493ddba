// Package delivery defines the serving surfaces started by the entrypoints.
package delivery

import "context"

// Delivery is a long-running server managed by the application lifecycle.
type Delivery interface {
	// Serve blocks until the server stops or fails.
	Serve(ctx context.Context) error
}
