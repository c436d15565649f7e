package commands_test

import (
	"errors"
	"testing"
	"time"

	"laundromart/internal/core/application/usecases/commands"
	"laundromart/internal/core/domain/model/kernel"
	"laundromart/internal/core/domain/model/order"
	"laundromart/internal/core/domain/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(customerID, testDetails(t))
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()
	notifier := &stubNotifier{}

	h := commands.NewCreateOrderCommandHandler(factory, services.NewPricingCalculator(), notifier)
	created, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.Equal(t, order.StatusPending, created.Status())
	assert.True(t, created.CustomerID().IsEqual(customerID))
	// wash s, one unit, immediate pickup
	assert.True(t, created.TotalPrice().Equal(decimal.NewFromInt(150)),
		"got %s", created.TotalPrice())
	assert.Len(t, notifier.updated, 1)

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	factory := new(MockOrderUoWFactory)
	h := commands.NewCreateOrderCommandHandler(factory, services.NewPricingCalculator(), &stubNotifier{})

	_, err := h.Handle(t.Context(), commands.CreateOrderCommand{})
	require.Error(t, err)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateOrderCommandHandler_Handle_ScheduledLeadTime(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()

	t.Run("under one hour is rejected before the store", func(t *testing.T) {
		at := time.Now().UTC().Add(10 * time.Minute)
		details := testDetails(t)
		details.Pickup = testPickup(t, order.PickupSchedule, &at)

		cmd, err := commands.NewCreateOrderCommand(customerID, details)
		require.NoError(t, err)

		factory := new(MockOrderUoWFactory)
		notifier := &stubNotifier{}
		h := commands.NewCreateOrderCommandHandler(factory, services.NewPricingCalculator(), notifier)

		_, err = h.Handle(ctx, cmd)
		require.Error(t, err)
		assert.Empty(t, notifier.updated)
		factory.AssertNotCalled(t, "Create")
	})

	t.Run("comfortably in the future passes", func(t *testing.T) {
		at := time.Now().UTC().Add(3 * time.Hour)
		details := testDetails(t)
		details.Pickup = testPickup(t, order.PickupSchedule, &at)

		cmd, err := commands.NewCreateOrderCommand(customerID, details)
		require.NoError(t, err)

		repo := new(MockOrderRepository)
		uow := new(MockUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("OrderRepository").Return(repo).Once()
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once()
		uow.On("Commit", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		factory := new(MockOrderUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewCreateOrderCommandHandler(factory, services.NewPricingCalculator(), &stubNotifier{})
		created, err := h.Handle(ctx, cmd)
		require.NoError(t, err)
		// no immediate-pickup surcharge on scheduled orders
		assert.True(t, created.TotalPrice().Equal(decimal.NewFromInt(130)),
			"got %s", created.TotalPrice())
	})
}

func TestCreateOrderCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), testDetails(t))
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	repo.On("Add", mock.Anything, mock.Anything).Return(errors.New("insert failed")).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()
	notifier := &stubNotifier{}

	h := commands.NewCreateOrderCommandHandler(factory, services.NewPricingCalculator(), notifier)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.Empty(t, notifier.updated)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
