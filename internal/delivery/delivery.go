// Package delivery defines the inbound transport abstraction.
package delivery

import "context"

// Delivery is a transport serving the application until the context or the
// listener stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
