// Package ports defines the contracts between the application core and
// infrastructure: repositories, the unit of work, image storage and the
// real-time event transport. Adapters implement these interfaces, enabling
// dependency inversion and testability.
package ports

import (
	"context"
	"time"

	"laundromart/internal/core/domain/model/kernel"
	"laundromart/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Delete removes an order permanently. The pending-only rule for
	// customer deletes is the caller's concern.
	Delete(ctx context.Context, id kernel.UUID) error

	// ClaimPending atomically assigns a pending, unclaimed order to the
	// rider: a single conditional write that only succeeds while the order
	// is still pending with no rider set. Exactly one of several concurrent
	// callers wins; the others receive an already-claimed error. Returns
	// the claimed order on success.
	ClaimPending(ctx context.Context, orderID kernel.UUID, riderID kernel.UUID) (*order.Order, error)

	// CountOccupying counts the orders currently occupying one of the
	// shop's machines (statuses at_shop, washing, drying).
	CountOccupying(ctx context.Context, shopID kernel.UUID) (int, error)

	// GetAllPending retrieves the unclaimed order pool riders pick from,
	// oldest first.
	GetAllPending(ctx context.Context) ([]*order.Order, error)

	// GetAllByCustomer retrieves a customer's orders, newest first.
	GetAllByCustomer(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error)

	// GetActiveByRider retrieves the rider's claimed, non-terminal orders.
	GetActiveByRider(ctx context.Context, riderID kernel.UUID) ([]*order.Order, error)

	// GetAllByShop retrieves the non-terminal orders bound to a shop,
	// oldest first. This is the shop's work queue.
	GetAllByShop(ctx context.Context, shopID kernel.UUID) ([]*order.Order, error)

	// DeleteTerminalBefore removes terminal orders (completed, cancelled)
	// whose completedAt is before the cutoff. Returns the number of orders
	// removed. Used by the retention sweep.
	DeleteTerminalBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
