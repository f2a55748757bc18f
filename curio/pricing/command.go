package pricing

import (
	"context"

	"github.com/curiodex/curio/curio/stores"
)

// Command asks for one full reconciliation sweep over a platform's wishlist.
type Command struct {
	Platform stores.Platform
}

// Dispatcher is the seam between triggers (scheduler, admin endpoint) and the
// reconciler. Send blocks until the sweep finishes.
type Dispatcher interface {
	Send(ctx context.Context, cmd Command) error
}
