package queries

import (
	"errors"

	"laundromart/internal/core/domain/model/kernel"
	"laundromart/internal/pkg/guard"
)

var ErrGetRiderOrdersQueryIsNotConstructed = errors.New(
	"GetRiderOrdersQuery must be created via NewGetRiderOrdersQuery constructor",
)

// GetRiderOrdersQuery retrieves the orders a rider currently carries,
// excluding completed and cancelled ones.
type GetRiderOrdersQuery struct {
	riderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetRiderOrdersQuery creates a query for a rider's active orders.
func NewGetRiderOrdersQuery(riderID kernel.UUID) (GetRiderOrdersQuery, error) {
	if err := riderID.Validate(); err != nil {
		return GetRiderOrdersQuery{}, err
	}
	return GetRiderOrdersQuery{
		riderID: riderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRiderOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetRiderOrdersQueryIsNotConstructed)
}

// RiderID returns the rider whose active orders are requested.
func (q GetRiderOrdersQuery) RiderID() kernel.UUID {
	return q.riderID
}
