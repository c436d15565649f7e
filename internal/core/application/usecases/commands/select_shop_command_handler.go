package commands

import (
	"context"
	"errors"

	"laundromart/internal/core/domain/model/kernel"
	"laundromart/internal/core/domain/model/order"
	"laundromart/internal/core/domain/services"
	"laundromart/internal/pkg/errs"
)

// SelectShopCommandHandler handles pre-handover shop routing. The shop
// must be admin-approved, and for priority orders it must have a free
// machine at selection time. Scheduled orders may select a full shop and
// queue.
type SelectShopCommandHandler struct {
	uowFactory UoWFactory
	gate       services.CapacityGate
	notifier   OrderNotifier
}

// NewSelectShopCommandHandler creates a handler for shop selection.
func NewSelectShopCommandHandler(uowFactory UoWFactory, notifier OrderNotifier) SelectShopCommandHandler {
	return SelectShopCommandHandler{
		uowFactory: uowFactory,
		gate:       services.NewCapacityGate(),
		notifier:   notifier,
	}
}

// Handle processes the shop selection. Returns the updated order.
func (h *SelectShopCommandHandler) Handle(ctx context.Context, cmd SelectShopCommand) (*order.Order, error) {
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

	riderID := aggregate.RiderID()
	if riderID == nil || !riderID.IsEqual(cmd.RiderID()) {
		return nil, errs.NewForbiddenError(kernel.RoleRider.String(), "select shop for order")
	}

	if shopID := cmd.ShopID(); shopID != nil {
		stats, statsErr := shopCapacity(ctx, uow, *shopID)
		if statsErr != nil {
			return nil, statsErr
		}
		if err = h.gate.Check(aggregate, *shopID, stats); err != nil {
			return nil, err
		}
	}

	if err = aggregate.SelectShop(cmd.ShopID()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.notifier.OrderUpdated(aggregate)
	return aggregate, nil
}

// shopCapacity loads a shop, requires it to be approved, and derives its
// current machine stats from the occupying-order count.
func shopCapacity(ctx context.Context, uow UoW, shopID kernel.UUID) (services.MachineStats, error) {
	target, err := uow.ShopRepository().Get(ctx, shopID)
	if err != nil {
		return services.MachineStats{}, err
	}
	if !target.IsApproved() {
		return services.MachineStats{}, errs.NewValueIsInvalidErrorWithCause("shopId",
			errors.New("shop is not approved"))
	}

	inUse, err := uow.OrderRepository().CountOccupying(ctx, shopID)
	if err != nil {
		return services.MachineStats{}, err
	}
	return services.NewMachineStats(target.TotalWashingMachines(), inUse), nil
}
