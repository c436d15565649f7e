package commands

import (
	"context"
	"errors"
	"time"

	"laundromart/internal/core/domain/model/order"
	"laundromart/internal/core/domain/services"
	"laundromart/internal/core/ports"
	"laundromart/internal/pkg/errs"

	"go.uber.org/zap"
)

// AdvanceOrderCommandHandler is the lifecycle orchestrator for all
// transitions between claim and terminal state. Every request runs the
// same pipeline: role/ownership validation, capacity gating for moves onto
// shop machines, the aggregate mutation, the store write, and the
// real-time fan-out. Validation and gating run strictly before the write,
// so a failed request leaves no partial state.
type AdvanceOrderCommandHandler struct {
	uowFactory UoWFactory
	validator  services.TransitionValidator
	gate       services.CapacityGate
	images     ports.ImageStore
	notifier   OrderNotifier
	logger     *zap.Logger
}

// NewAdvanceOrderCommandHandler creates the generic transition handler.
func NewAdvanceOrderCommandHandler(
	uowFactory UoWFactory,
	images ports.ImageStore,
	notifier OrderNotifier,
	logger *zap.Logger,
) AdvanceOrderCommandHandler {
	return AdvanceOrderCommandHandler{
		uowFactory: uowFactory,
		validator:  services.NewTransitionValidator(),
		gate:       services.NewCapacityGate(),
		images:     images,
		notifier:   notifier,
		logger:     logger,
	}
}

// Handle processes the transition request. Returns the updated order.
func (h *AdvanceOrderCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	switch cmd.To() {
	case order.StatusAssigned:
		return nil, errs.NewValueIsInvalidErrorWithCause("toStatus",
			errors.New("claims go through the accept operation"))
	case order.StatusCancelled:
		return nil, errs.NewValueIsInvalidErrorWithCause("toStatus",
			errors.New("cancellations go through the cancel operation"))
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

	if err = h.validator.Validate(cmd.Actor(), aggregate, cmd.To()); err != nil {
		return nil, err
	}

	released, err := h.apply(ctx, uow, aggregate, cmd)
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
			h.logger.Warn("failed to release images of completed order",
				zap.String("order_id", aggregate.ID().String()), zap.Error(err))
		}
	}

	h.notifier.OrderUpdated(aggregate)
	return aggregate, nil
}

// apply performs the aggregate mutation for the requested target status.
// Returns image references released by a terminal transition.
func (h *AdvanceOrderCommandHandler) apply(
	ctx context.Context,
	uow UoW,
	aggregate *order.Order,
	cmd AdvanceOrderCommand,
) ([]string, error) {
	now := time.Now().UTC()

	switch cmd.To() {
	case order.StatusPickedUp:
		return nil, aggregate.MarkPickedUp()

	case order.StatusAtShop:
		return nil, h.handOver(ctx, uow, aggregate, cmd)

	case order.StatusWashing:
		// the washing stage exists only for wash orders; dry orders go
		// straight to drying
		if aggregate.Details().LaundryType == order.LaundryTypeDry {
			return nil, errs.NewInvalidTransitionError(
				aggregate.Status().String(), order.StatusWashing.String())
		}
		return nil, aggregate.StartProcessing(cmd.Actor().ID, now)

	case order.StatusDrying:
		if aggregate.Status() == order.StatusAtShop {
			if aggregate.Details().LaundryType != order.LaundryTypeDry {
				return nil, errs.NewInvalidTransitionError(
					aggregate.Status().String(), order.StatusDrying.String())
			}
			return nil, aggregate.StartProcessing(cmd.Actor().ID, now)
		}
		return nil, aggregate.FinishWashing()

	case order.StatusLaundryDone:
		return nil, aggregate.FinishDrying(now)

	case order.StatusOutForDelivery:
		return nil, aggregate.StartDelivery()

	case order.StatusCompleted:
		return aggregate.CompleteDelivery(now)

	default:
		return nil, errs.NewInvalidTransitionError(
			aggregate.Status().String(), cmd.To().String())
	}
}

// handOver routes the order onto a shop machine: the target is either the
// explicit shop in the command or the order's earlier selection, and must
// pass approval and capacity checks.
func (h *AdvanceOrderCommandHandler) handOver(
	ctx context.Context,
	uow UoW,
	aggregate *order.Order,
	cmd AdvanceOrderCommand,
) error {
	targetShop := cmd.ShopID()
	if targetShop == nil {
		targetShop = aggregate.ShopID()
	}
	if targetShop == nil {
		return errs.NewValueIsRequiredError("shopId")
	}

	stats, err := shopCapacity(ctx, uow, *targetShop)
	if err != nil {
		return err
	}
	if err = h.gate.Check(aggregate, *targetShop, stats); err != nil {
		return err
	}

	return aggregate.HandOverTo(*targetShop)
}
