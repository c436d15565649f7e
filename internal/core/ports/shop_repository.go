package ports

import (
	"context"

	"laundromart/internal/core/domain/model/kernel"
	"laundromart/internal/core/domain/model/shop"
)

// ShopRepository defines the persistence contract for shop aggregates.
// The orchestrator treats shops as near read-only: it reads capacity
// configuration and approval state, and only admins mutate them.
type ShopRepository interface {
	// Add persists a new shop aggregate to storage.
	Add(ctx context.Context, aggregate *shop.Shop) error

	// Update persists changes to an existing shop aggregate.
	Update(ctx context.Context, aggregate *shop.Shop) error

	// Get retrieves a shop aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*shop.Shop, error)

	// GetAllApproved retrieves the shops riders may route orders to.
	GetAllApproved(ctx context.Context) ([]*shop.Shop, error)
}
