package queries

import (
	"errors"

	"laundromart/internal/core/domain/model/kernel"
	"laundromart/internal/pkg/guard"
)

var ErrGetShopCapacityQueryIsNotConstructed = errors.New(
	"GetShopCapacityQuery must be created via NewGetShopCapacityQuery constructor",
)

// GetShopCapacityQuery retrieves a shop's washing machine usage snapshot.
type GetShopCapacityQuery struct {
	shopID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetShopCapacityQuery creates a query for a shop's machine capacity.
func NewGetShopCapacityQuery(shopID kernel.UUID) (GetShopCapacityQuery, error) {
	if err := shopID.Validate(); err != nil {
		return GetShopCapacityQuery{}, err
	}
	return GetShopCapacityQuery{
		shopID: shopID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShopCapacityQuery) Validate() error {
	return q.guard.Validate(ErrGetShopCapacityQueryIsNotConstructed)
}

// ShopID returns the shop whose capacity is requested.
func (q GetShopCapacityQuery) ShopID() kernel.UUID {
	return q.shopID
}
