package commands

import (
	"context"
	"time"

	"laundromart/internal/core/domain/model/kernel"
	"laundromart/internal/core/domain/model/order"
	"laundromart/internal/core/domain/services"
	"laundromart/internal/core/ports"
	"laundromart/internal/pkg/errs"

	"go.uber.org/zap"
)

// EditOrderCommandHandler handles pending-order edits. The merged details
// are re-validated, the price recomputed, and image references dropped by
// the edit are released from storage after the write commits.
//
// Only the owning customer or an admin may edit, and only while the order
// is pending.
type EditOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	pricing    services.PricingCalculator
	images     ports.ImageStore
	notifier   OrderNotifier
	logger     *zap.Logger
}

// NewEditOrderCommandHandler creates a handler for order edits.
func NewEditOrderCommandHandler(
	uowFactory OrderUoWFactory,
	pricing services.PricingCalculator,
	images ports.ImageStore,
	notifier OrderNotifier,
	logger *zap.Logger,
) EditOrderCommandHandler {
	return EditOrderCommandHandler{
		uowFactory: uowFactory,
		pricing:    pricing,
		images:     images,
		notifier:   notifier,
		logger:     logger,
	}
}

// Handle processes the edit command. Returns the updated order.
func (h *EditOrderCommandHandler) Handle(ctx context.Context, cmd EditOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	aggregate, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = requireOwnerOrAdmin(cmd.Actor(), aggregate.CustomerID(), "edit order"); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	merged := cmd.Patch().Apply(aggregate.Details())
	if err = merged.Pickup.ValidateLeadTime(now); err != nil {
		return nil, err
	}

	removed, err := aggregate.UpdateDetails(merged, h.pricing.CalculateFor(merged))
	if err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.releaseImages(ctx, removed)
	h.notifier.OrderUpdated(aggregate)
	return aggregate, nil
}

func (h *EditOrderCommandHandler) releaseImages(ctx context.Context, refs []string) {
	if len(refs) == 0 {
		return
	}
	if err := h.images.Remove(ctx, refs); err != nil {
		h.logger.Warn("failed to release order images",
			zap.Strings("refs", refs), zap.Error(err))
	}
}

// requireOwnerOrAdmin checks that the actor is the order's owning customer
// or an admin.
func requireOwnerOrAdmin(actor services.Actor, customerID kernel.UUID, action string) error {
	if actor.Role == kernel.RoleAdmin {
		return nil
	}
	if actor.Role == kernel.RoleCustomer && actor.ID.IsEqual(customerID) {
		return nil
	}
	return errs.NewForbiddenError(actor.Role.String(), action)
}
