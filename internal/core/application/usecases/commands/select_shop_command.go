package commands

import (
	"errors"

	"laundromart/internal/core/domain/model/kernel"
	"laundromart/internal/pkg/guard"
)

var ErrSelectShopCommandIsNotConstructed = errors.New(
	"SelectShopCommand must be created via NewSelectShopCommand constructor",
)

// SelectShopCommand represents a rider choosing (or clearing) the target
// shop for a claimed order before handover. A nil shop identifier clears
// the current selection.
type SelectShopCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	riderID kernel.UUID
	shopID  *kernel.UUID

	guard guard.ConstructorGuard
}

// NewSelectShopCommand creates a command to select a shop for an order.
func NewSelectShopCommand(orderID, riderID kernel.UUID, shopID *kernel.UUID) (SelectShopCommand, error) {
	cmd := SelectShopCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(orderID.Validate(), riderID.Validate()); err != nil {
		return SelectShopCommand{}, err
	}
	if shopID != nil {
		if err := shopID.Validate(); err != nil {
			return SelectShopCommand{}, err
		}
		id := *shopID
		cmd.shopID = &id
	}
	cmd.orderID = orderID
	cmd.riderID = riderID

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SelectShopCommand) Validate() error {
	return c.guard.Validate(ErrSelectShopCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being routed.
func (c SelectShopCommand) OrderID() kernel.UUID {
	return c.orderID
}

// RiderID returns the acting rider's identifier.
func (c SelectShopCommand) RiderID() kernel.UUID {
	return c.riderID
}

// ShopID returns the chosen shop, nil to clear the selection.
func (c SelectShopCommand) ShopID() *kernel.UUID {
	if c.shopID == nil {
		return nil
	}
	id := *c.shopID
	return &id
}
