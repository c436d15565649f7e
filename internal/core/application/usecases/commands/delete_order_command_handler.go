package commands

import (
	"context"

	"laundromart/internal/core/domain/model/order"
	"laundromart/internal/core/ports"

	"go.uber.org/zap"
)

// DeleteOrderCommandHandler handles permanent removal of pending orders.
// The owning customer or an admin may delete; the stored images are
// released after the delete commits. Deletion does not fan out: the order
// never reached another actor while pending.
type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	images     ports.ImageStore
	logger     *zap.Logger
}

// NewDeleteOrderCommandHandler creates a handler for order deletion.
func NewDeleteOrderCommandHandler(
	uowFactory OrderUoWFactory,
	images ports.ImageStore,
	logger *zap.Logger,
) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
		images:     images,
		logger:     logger,
	}
}

// Handle processes the delete command.
func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	aggregate, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = requireOwnerOrAdmin(cmd.Actor(), aggregate.CustomerID(), "delete order"); err != nil {
		return err
	}
	if aggregate.Status() != order.StatusPending {
		return order.ErrOrderNotEditable
	}

	images := aggregate.Images()
	if err = repo.Delete(ctx, aggregate.ID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if len(images) > 0 {
		if err = h.images.Remove(ctx, images); err != nil {
			h.logger.Warn("failed to release images of deleted order",
				zap.String("order_id", aggregate.ID().String()), zap.Error(err))
		}
	}
	return nil
}
