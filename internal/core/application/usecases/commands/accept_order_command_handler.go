package commands

import (
	"context"

	"laundromart/internal/core/domain/model/order"
)

// AcceptOrderCommandHandler handles the race-safe rider claim.
//
// The claim is a single conditional store write that succeeds only while
// the order is still pending with no rider set. There is no
// read-validate-write window: when several riders race for the same order
// the store picks exactly one winner and every other claim fails with an
// already-claimed error.
type AcceptOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   OrderNotifier
}

// NewAcceptOrderCommandHandler creates a handler for rider claims.
func NewAcceptOrderCommandHandler(uowFactory OrderUoWFactory, notifier OrderNotifier) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the claim. Returns the claimed order on success, an
// already-claimed error when another rider won the race.
func (h *AcceptOrderCommandHandler) Handle(ctx context.Context, cmd AcceptOrderCommand) (*order.Order, error) {
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

	aggregate, err := uow.OrderRepository().ClaimPending(ctx, cmd.OrderID(), cmd.RiderID())
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.notifier.OrderUpdated(aggregate)
	return aggregate, nil
}
