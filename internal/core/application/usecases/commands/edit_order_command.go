package commands

import (
	"errors"

	"laundromart/internal/core/domain/model/kernel"
	"laundromart/internal/core/domain/model/order"
	"laundromart/internal/core/domain/services"
	"laundromart/internal/pkg/guard"
)

var ErrEditOrderCommandIsNotConstructed = errors.New(
	"EditOrderCommand must be created via NewEditOrderCommand constructor",
)

// DetailsPatch carries a partial order edit: nil fields keep their current
// value, set fields replace it. Images replace the whole reference list
// when present.
type DetailsPatch struct {
	ProductName        *string
	ContactPhone       *string
	Description        *string
	Images             *[]string
	LaundryType        *order.LaundryType
	WeightCategory     *order.WeightCategory
	ServiceTimeMinutes *int
	Pickup             *order.Pickup
	Delivery           *order.Delivery
}

// Apply merges the patch over the given details and returns the result.
func (p DetailsPatch) Apply(details order.Details) order.Details {
	if p.ProductName != nil {
		details.ProductName = *p.ProductName
	}
	if p.ContactPhone != nil {
		details.ContactPhone = *p.ContactPhone
	}
	if p.Description != nil {
		details.Description = *p.Description
	}
	if p.Images != nil {
		details.Images = *p.Images
	}
	if p.LaundryType != nil {
		details.LaundryType = *p.LaundryType
	}
	if p.WeightCategory != nil {
		details.WeightCategory = *p.WeightCategory
	}
	if p.ServiceTimeMinutes != nil {
		details.ServiceTimeMinutes = *p.ServiceTimeMinutes
	}
	if p.Pickup != nil {
		details.Pickup = *p.Pickup
	}
	if p.Delivery != nil {
		details.Delivery = p.Delivery
	}
	return details
}

// EditOrderCommand represents a request to edit a pending order. Only the
// supplied fields are replaced; the price is recomputed from the merged
// result.
type EditOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   services.Actor
	patch   DetailsPatch

	guard guard.ConstructorGuard
}

// NewEditOrderCommand creates a command to edit a pending order.
func NewEditOrderCommand(orderID kernel.UUID, actor services.Actor, patch DetailsPatch) (EditOrderCommand, error) {
	cmd := EditOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActor(actor),
	); err != nil {
		return EditOrderCommand{}, err
	}
	cmd.patch = patch

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c EditOrderCommand) Validate() error {
	return c.guard.Validate(ErrEditOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to edit.
func (c EditOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the caller requesting the edit.
func (c EditOrderCommand) Actor() services.Actor {
	return c.actor
}

// Patch returns the partial edit to apply.
func (c EditOrderCommand) Patch() DetailsPatch {
	return c.patch
}

func (c *EditOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *EditOrderCommand) setActor(actor services.Actor) error {
	if err := errors.Join(actor.ID.Validate(), actor.Role.Validate()); err != nil {
		return err
	}
	c.actor = actor
	return nil
}
