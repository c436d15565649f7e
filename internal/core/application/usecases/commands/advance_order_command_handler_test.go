package commands_test

import (
	"errors"
	"testing"
	"time"

	"laundromart/internal/core/application/usecases/commands"
	"laundromart/internal/core/domain/model/kernel"
	"laundromart/internal/core/domain/model/order"
	"laundromart/internal/core/domain/model/shop"
	"laundromart/internal/core/domain/services"
	"laundromart/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func approvedShop(t *testing.T, id kernel.UUID, machines int) *shop.Shop {
	t.Helper()
	location, err := kernel.NewGeoPoint(13.7563, 100.5018)
	require.NoError(t, err)
	s, err := shop.NewShop(id, kernel.NewUUID(), shop.Profile{Name: "Suds & Duds"},
		location, machines, shop.ApprovalApproved, time.Now().UTC())
	require.NoError(t, err)
	return s
}

// advanceFixture wires a handler around a single stored order.
type advanceFixture struct {
	orderRepo *MockOrderRepository
	shopRepo  *MockShopRepository
	uow       *MockUoW
	factory   *MockUoWFactory
	notifier  *stubNotifier
	images    *stubImageStore
	handler   commands.AdvanceOrderCommandHandler
}

func newAdvanceFixture(t *testing.T, stored *order.Order) *advanceFixture {
	t.Helper()
	f := &advanceFixture{
		orderRepo: new(MockOrderRepository),
		shopRepo:  new(MockShopRepository),
		uow:       new(MockUoW),
		factory:   new(MockUoWFactory),
		notifier:  &stubNotifier{},
		images:    &stubImageStore{},
	}

	f.uow.On("Begin", mock.Anything).Return(nil).Maybe()
	f.uow.On("Rollback", mock.Anything).Return(nil).Maybe()
	f.uow.On("Commit", mock.Anything).Return(nil).Maybe()
	f.uow.On("OrderRepository").Return(f.orderRepo).Maybe()
	f.uow.On("ShopRepository").Return(f.shopRepo).Maybe()
	f.factory.On("Create").Return(f.uow).Maybe()

	f.orderRepo.On("Get", mock.Anything, stored.ID()).Return(stored, nil).Maybe()
	f.orderRepo.On("Update", mock.Anything, stored).Return(nil).Maybe()

	f.handler = commands.NewAdvanceOrderCommandHandler(f.factory, f.images, f.notifier, testLogger())
	return f
}

func TestAdvanceOrderCommandHandler_Handle_PickUp(t *testing.T) {
	riderID := kernel.NewUUID()
	stored := pendingOrder(t, kernel.NewUUID())
	require.NoError(t, stored.Assign(riderID))

	f := newAdvanceFixture(t, stored)
	actor := services.Actor{ID: riderID, Role: kernel.RoleRider}
	cmd, err := commands.NewAdvanceOrderCommand(stored.ID(), actor, order.StatusPickedUp, nil)
	require.NoError(t, err)

	got, err := f.handler.Handle(t.Context(), cmd)
	require.NoError(t, err)
	assert.Equal(t, order.StatusPickedUp, got.Status())
	assert.Len(t, f.notifier.updated, 1)
}

func TestAdvanceOrderCommandHandler_Handle_ForbiddenActor(t *testing.T) {
	riderID := kernel.NewUUID()
	stored := pendingOrder(t, kernel.NewUUID())
	require.NoError(t, stored.Assign(riderID))

	f := newAdvanceFixture(t, stored)
	otherRider := services.Actor{ID: kernel.NewUUID(), Role: kernel.RoleRider}
	cmd, err := commands.NewAdvanceOrderCommand(stored.ID(), otherRider, order.StatusPickedUp, nil)
	require.NoError(t, err)

	_, err = f.handler.Handle(t.Context(), cmd)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrForbidden))
	assert.Empty(t, f.notifier.updated)
	f.orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestAdvanceOrderCommandHandler_Handle_HandOver(t *testing.T) {
	shopID := kernel.NewUUID()
	riderID := kernel.NewUUID()

	prepare := func(t *testing.T) *order.Order {
		stored := pendingOrder(t, kernel.NewUUID())
		require.NoError(t, stored.Assign(riderID))
		require.NoError(t, stored.MarkPickedUp())
		return stored
	}

	actor := services.Actor{ID: riderID, Role: kernel.RoleRider}

	t.Run("passes the gate with a free machine", func(t *testing.T) {
		stored := prepare(t)
		f := newAdvanceFixture(t, stored)
		f.shopRepo.On("Get", mock.Anything, shopID).Return(approvedShop(t, shopID, 4), nil).Once()
		f.orderRepo.On("CountOccupying", mock.Anything, shopID).Return(3, nil).Once()

		cmd, err := commands.NewAdvanceOrderCommand(stored.ID(), actor, order.StatusAtShop, &shopID)
		require.NoError(t, err)

		got, err := f.handler.Handle(t.Context(), cmd)
		require.NoError(t, err)
		assert.Equal(t, order.StatusAtShop, got.Status())
		require.NotNil(t, got.ShopID())
		assert.True(t, got.ShopID().IsEqual(shopID))
	})

	t.Run("priority order rejected by a full shop", func(t *testing.T) {
		stored := prepare(t)
		f := newAdvanceFixture(t, stored)
		f.shopRepo.On("Get", mock.Anything, shopID).Return(approvedShop(t, shopID, 2), nil).Once()
		f.orderRepo.On("CountOccupying", mock.Anything, shopID).Return(2, nil).Once()

		cmd, err := commands.NewAdvanceOrderCommand(stored.ID(), actor, order.StatusAtShop, &shopID)
		require.NoError(t, err)

		_, err = f.handler.Handle(t.Context(), cmd)
		require.Error(t, err)
		assert.True(t, errors.Is(err, errs.ErrCapacityExceeded))
		assert.Equal(t, order.StatusPickedUp, stored.Status())
		f.orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("scheduled order queues past a full shop", func(t *testing.T) {
		at := time.Now().UTC().Add(3 * time.Hour)
		details := testDetails(t)
		details.Pickup = testPickup(t, order.PickupSchedule, &at)
		stored, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), details,
			decimal.NewFromInt(130), time.Now().UTC())
		require.NoError(t, err)
		require.NoError(t, stored.Assign(riderID))
		require.NoError(t, stored.MarkPickedUp())

		f := newAdvanceFixture(t, stored)
		f.shopRepo.On("Get", mock.Anything, shopID).Return(approvedShop(t, shopID, 2), nil).Once()
		f.orderRepo.On("CountOccupying", mock.Anything, shopID).Return(2, nil).Once()

		cmd, err := commands.NewAdvanceOrderCommand(stored.ID(), actor, order.StatusAtShop, &shopID)
		require.NoError(t, err)

		got, err := f.handler.Handle(t.Context(), cmd)
		require.NoError(t, err)
		assert.Equal(t, order.StatusAtShop, got.Status())
	})

	t.Run("missing shop selection is rejected", func(t *testing.T) {
		stored := prepare(t)
		f := newAdvanceFixture(t, stored)

		cmd, err := commands.NewAdvanceOrderCommand(stored.ID(), actor, order.StatusAtShop, nil)
		require.NoError(t, err)

		_, err = f.handler.Handle(t.Context(), cmd)
		require.Error(t, err)
		assert.True(t, errors.Is(err, errs.ErrValueIsRequired))
	})
}

func TestAdvanceOrderCommandHandler_Handle_ShopStages(t *testing.T) {
	shopID := kernel.NewUUID()
	riderID := kernel.NewUUID()
	employee := services.Actor{ID: kernel.NewUUID(), Role: kernel.RoleEmployee, ShopID: &shopID}

	atShopOrder := func(t *testing.T, laundryType order.LaundryType) *order.Order {
		details := testDetails(t)
		details.LaundryType = laundryType
		stored, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), details,
			decimal.NewFromInt(150), time.Now().UTC())
		require.NoError(t, err)
		require.NoError(t, stored.Assign(riderID))
		require.NoError(t, stored.MarkPickedUp())
		require.NoError(t, stored.HandOverTo(shopID))
		return stored
	}

	t.Run("employee starts washing a wash order", func(t *testing.T) {
		stored := atShopOrder(t, order.LaundryTypeWash)
		f := newAdvanceFixture(t, stored)

		cmd, err := commands.NewAdvanceOrderCommand(stored.ID(), employee, order.StatusWashing, nil)
		require.NoError(t, err)

		got, err := f.handler.Handle(t.Context(), cmd)
		require.NoError(t, err)
		assert.Equal(t, order.StatusWashing, got.Status())
		require.NotNil(t, got.EmployeeID())
		assert.True(t, got.EmployeeID().IsEqual(employee.ID))
		assert.NotNil(t, got.WashingStartedAt())
	})

	t.Run("dry order cannot enter washing", func(t *testing.T) {
		stored := atShopOrder(t, order.LaundryTypeDry)
		f := newAdvanceFixture(t, stored)

		cmd, err := commands.NewAdvanceOrderCommand(stored.ID(), employee, order.StatusWashing, nil)
		require.NoError(t, err)

		_, err = f.handler.Handle(t.Context(), cmd)
		require.Error(t, err)
		assert.True(t, errors.Is(err, errs.ErrInvalidTransition))
	})

	t.Run("dry order goes straight to drying", func(t *testing.T) {
		stored := atShopOrder(t, order.LaundryTypeDry)
		f := newAdvanceFixture(t, stored)

		cmd, err := commands.NewAdvanceOrderCommand(stored.ID(), employee, order.StatusDrying, nil)
		require.NoError(t, err)

		got, err := f.handler.Handle(t.Context(), cmd)
		require.NoError(t, err)
		assert.Equal(t, order.StatusDrying, got.Status())
	})

	t.Run("wash order cannot skip washing", func(t *testing.T) {
		stored := atShopOrder(t, order.LaundryTypeWash)
		f := newAdvanceFixture(t, stored)

		cmd, err := commands.NewAdvanceOrderCommand(stored.ID(), employee, order.StatusDrying, nil)
		require.NoError(t, err)

		_, err = f.handler.Handle(t.Context(), cmd)
		require.Error(t, err)
		assert.True(t, errors.Is(err, errs.ErrInvalidTransition))
	})
}

func TestAdvanceOrderCommandHandler_Handle_CompleteReleasesImages(t *testing.T) {
	shopID := kernel.NewUUID()
	riderID := kernel.NewUUID()
	stored := pendingOrder(t, kernel.NewUUID())
	require.NoError(t, stored.Assign(riderID))
	require.NoError(t, stored.MarkPickedUp())
	require.NoError(t, stored.HandOverTo(shopID))
	require.NoError(t, stored.StartProcessing(kernel.NewUUID(), time.Now().UTC()))
	require.NoError(t, stored.FinishWashing())
	require.NoError(t, stored.FinishDrying(time.Now().UTC()))
	require.NoError(t, stored.StartDelivery())

	f := newAdvanceFixture(t, stored)
	actor := services.Actor{ID: riderID, Role: kernel.RoleRider}
	cmd, err := commands.NewAdvanceOrderCommand(stored.ID(), actor, order.StatusCompleted, nil)
	require.NoError(t, err)

	got, err := f.handler.Handle(t.Context(), cmd)
	require.NoError(t, err)
	assert.Equal(t, order.StatusCompleted, got.Status())
	assert.NotNil(t, got.CompletedAt())
	require.Len(t, f.images.removed, 1)
	assert.Equal(t, []string{"orders/a.jpg"}, f.images.removed[0])
}

func TestAdvanceOrderCommandHandler_Handle_ReservedTargets(t *testing.T) {
	stored := pendingOrder(t, kernel.NewUUID())
	f := newAdvanceFixture(t, stored)
	actor := services.Actor{ID: kernel.NewUUID(), Role: kernel.RoleRider}

	for _, to := range []order.Status{order.StatusAssigned, order.StatusCancelled} {
		cmd, err := commands.NewAdvanceOrderCommand(stored.ID(), actor, to, nil)
		require.NoError(t, err)

		_, err = f.handler.Handle(t.Context(), cmd)
		require.Error(t, err, to.String())
		assert.True(t, errors.Is(err, errs.ErrValueIsInvalid))
	}
	f.factory.AssertNotCalled(t, "Create")
}
