// Package service implements the storefront state containers: the
// product catalog, the auth session, the cart ledger, the wishlist
// set, the order store and the checkout orchestrator. Every store is
// constructed once at startup and injected where needed; mutations
// write through to the persisted snapshot store.
package service

import (
	"context"
	"time"
)

// wait blocks for the simulated latency around login and checkout
// submission. It carries no retry semantics, only context cancelation.
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
