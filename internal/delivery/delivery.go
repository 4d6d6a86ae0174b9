// Package delivery defines the transport-facing contracts of the application.
package delivery

import "context"

// Delivery is a transport surface (HTTP server) managed by the fx lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
