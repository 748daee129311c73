// Package delivery defines the contract every transport entrypoint satisfies.
package delivery

import "context"

// Delivery is a server that accepts external traffic. Implementations are
// collected into the fx "deliveries" group and started together.
type Delivery interface {
	Serve(ctx context.Context) error
}
