package commands

import (
	"context"
	"time"

	"laundromart/internal/core/domain/model/kernel"
	"laundromart/internal/core/domain/model/order"
	"laundromart/internal/core/domain/services"
	"laundromart/internal/core/ports"

	"go.uber.org/zap"
)

// CancelOrderCommandHandler handles both flavors of cancellation.
//
// A rider cancelling a claimed order does not kill the customer's order:
// the claim is released and the order returns to pending for other riders.
// A customer or admin cancels finally: the order becomes terminal, gets
// its completedAt stamp, and its images are released.
//
// Either way the same reachability rule applies: cancellation is possible
// only before the laundry reaches a shop.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	validator  services.TransitionValidator
	images     ports.ImageStore
	notifier   OrderNotifier
	logger     *zap.Logger
}

// NewCancelOrderCommandHandler creates a handler for cancellations.
func NewCancelOrderCommandHandler(
	uowFactory OrderUoWFactory,
	images ports.ImageStore,
	notifier OrderNotifier,
	logger *zap.Logger,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		validator:  services.NewTransitionValidator(),
		images:     images,
		notifier:   notifier,
		logger:     logger,
	}
}

// Handle processes the cancellation. Returns the updated order: pending
// again after a rider release, cancelled after a final cancel.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (*order.Order, error) {
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

	if err = h.validator.Validate(cmd.Actor(), aggregate, order.StatusCancelled); err != nil {
		return nil, err
	}

	var released []string
	if cmd.Actor().Role == kernel.RoleRider {
		err = aggregate.ReleaseToPending()
	} else {
		released, err = aggregate.Cancel(time.Now().UTC())
	}
	if err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if len(released) > 0 {
		if err = h.images.Remove(ctx, released); err != nil {
			h.logger.Warn("failed to release images of cancelled order",
				zap.String("order_id", aggregate.ID().String()), zap.Error(err))
		}
	}

	h.notifier.OrderUpdated(aggregate)
	return aggregate, nil
}
