// Package delivery defines the entry points that expose the use cases.
package delivery

import "context"

// Delivery is a long-running server started by the application.
// Serve blocks until the server stops; a graceful shutdown returns nil.
type Delivery interface {
	Serve(ctx context.Context) error
}
