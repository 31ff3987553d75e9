// Package delivery defines the contract every transport server fulfills.
package delivery

import "context"

// Delivery is a runnable server. Serve blocks until the server stops or
// fails; shutdown happens through the Fx lifecycle, not through Serve.
type Delivery interface {
	Serve(ctx context.Context) error
}
