// Package delivery defines the contract every transport surface satisfies.
package delivery

import "context"

// Delivery is a long-running request surface (HTTP server, worker, ...).
// Serve blocks until the surface stops or fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
