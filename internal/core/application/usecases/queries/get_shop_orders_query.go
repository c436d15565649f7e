package queries

import (
	"errors"

	"laundromart/internal/core/domain/model/kernel"
	"laundromart/internal/pkg/guard"
)

var ErrGetShopOrdersQueryIsNotConstructed = errors.New(
	"GetShopOrdersQuery must be created via NewGetShopOrdersQuery constructor",
)

// GetShopOrdersQuery retrieves the non-terminal orders routed to a shop.
// Backs the employee work queue screen.
type GetShopOrdersQuery struct {
	shopID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetShopOrdersQuery creates a query for a shop's order queue.
func NewGetShopOrdersQuery(shopID kernel.UUID) (GetShopOrdersQuery, error) {
	if err := shopID.Validate(); err != nil {
		return GetShopOrdersQuery{}, err
	}
	return GetShopOrdersQuery{
		shopID: shopID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShopOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetShopOrdersQueryIsNotConstructed)
}

// ShopID returns the shop whose order queue is requested.
func (q GetShopOrdersQuery) ShopID() kernel.UUID {
	return q.shopID
}
