package commands

import (
	"errors"

	"laundromart/internal/core/domain/model/kernel"
	"laundromart/internal/core/domain/model/order"
	"laundromart/internal/core/domain/services"
	"laundromart/internal/pkg/guard"
)

var ErrAdvanceOrderCommandIsNotConstructed = errors.New(
	"AdvanceOrderCommand must be created via NewAdvanceOrderCommand constructor",
)

// AdvanceOrderCommand is the generic lifecycle transition request: an
// actor asks to move an order to a target status. Claiming (accept) and
// cancellation have their own commands; everything in between goes
// through here.
//
// ShopID is only meaningful for handover (target at_shop) and overrides
// the order's previously selected shop.
type AdvanceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   services.Actor
	to      order.Status
	shopID  *kernel.UUID

	guard guard.ConstructorGuard
}

// NewAdvanceOrderCommand creates a command to advance an order's status.
func NewAdvanceOrderCommand(
	orderID kernel.UUID,
	actor services.Actor,
	to order.Status,
	shopID *kernel.UUID,
) (AdvanceOrderCommand, error) {
	cmd := AdvanceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderID.Validate(),
		actor.ID.Validate(),
		actor.Role.Validate(),
		to.Validate(),
	); err != nil {
		return AdvanceOrderCommand{}, err
	}
	if shopID != nil {
		if err := shopID.Validate(); err != nil {
			return AdvanceOrderCommand{}, err
		}
		id := *shopID
		cmd.shopID = &id
	}
	cmd.orderID = orderID
	cmd.actor = actor
	cmd.to = to

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceOrderCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to advance.
func (c AdvanceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the caller requesting the transition.
func (c AdvanceOrderCommand) Actor() services.Actor {
	return c.actor
}

// To returns the requested target status.
func (c AdvanceOrderCommand) To() order.Status {
	return c.to
}

// ShopID returns the handover target shop, nil to use the order's
// selected shop.
func (c AdvanceOrderCommand) ShopID() *kernel.UUID {
	if c.shopID == nil {
		return nil
	}
	id := *c.shopID
	return &id
}
