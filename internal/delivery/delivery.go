// Package delivery defines the contract shared by every inbound transport.
package delivery

import "context"

// Delivery is a long-running inbound server (HTTP today, queue consumers later).
type Delivery interface {
	Serve(ctx context.Context) error
}
