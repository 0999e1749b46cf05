// Package delivery defines the contract shared by every inbound transport.
package delivery

import "context"

// Delivery is a transport that serves until it is stopped through its lifecycle hook.
type Delivery interface {
	Serve(ctx context.Context) error
}
