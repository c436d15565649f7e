package services

import (
	"errors"
	"testing"
	"time"

	"laundromart/internal/core/domain/model/kernel"
	"laundromart/internal/core/domain/model/order"
	"laundromart/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type orderFixture struct {
	customerID kernel.UUID
	riderID    kernel.UUID
	shopID     kernel.UUID
	employeeID kernel.UUID
}

func newOrderFixture() orderFixture {
	return orderFixture{
		customerID: kernel.NewUUID(),
		riderID:    kernel.NewUUID(),
		shopID:     kernel.NewUUID(),
		employeeID: kernel.NewUUID(),
	}
}

// orderAt rehydrates an order in the given status with the fixture's
// participants filled in as far as the status implies.
func (f orderFixture) orderAt(t *testing.T, status order.Status) *order.Order {
	t.Helper()

	location, err := kernel.NewGeoPoint(13.7563, 100.5018)
	require.NoError(t, err)
	pickup, err := order.NewPickup(location, "12 Sukhumvit Rd", order.PickupNow, nil)
	require.NoError(t, err)

	details := order.Details{
		ProductName:        "Bed linen",
		ContactPhone:       "0812345678",
		LaundryType:        order.LaundryTypeWash,
		WeightCategory:     order.WeightMedium,
		ServiceTimeMinutes: 50,
		Pickup:             pickup,
	}

	var riderID, shopID, employeeID *kernel.UUID
	if status != order.StatusPending && status != order.StatusCancelled {
		riderID = &f.riderID
	}
	switch status {
	case order.StatusAtShop, order.StatusWashing, order.StatusDrying,
		order.StatusLaundryDone, order.StatusOutForDelivery, order.StatusCompleted:
		shopID = &f.shopID
	}
	switch status {
	case order.StatusWashing, order.StatusDrying, order.StatusLaundryDone,
		order.StatusOutForDelivery, order.StatusCompleted:
		employeeID = &f.employeeID
	}

	o, err := order.RestoreOrder(kernel.NewUUID(), f.customerID,
		riderID, shopID, employeeID,
		details, decimal.NewFromInt(250), status,
		time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC), nil, nil, nil)
	require.NoError(t, err)
	return o
}

func (f orderFixture) customer() Actor {
	return Actor{ID: f.customerID, Role: kernel.RoleCustomer}
}

func (f orderFixture) assignedRider() Actor {
	return Actor{ID: f.riderID, Role: kernel.RoleRider}
}

func (f orderFixture) otherRider() Actor {
	return Actor{ID: kernel.NewUUID(), Role: kernel.RoleRider}
}

func (f orderFixture) employee() Actor {
	return Actor{ID: f.employeeID, Role: kernel.RoleEmployee, ShopID: &f.shopID}
}

func (f orderFixture) admin() Actor {
	return Actor{ID: kernel.NewUUID(), Role: kernel.RoleAdmin}
}

func TestTransitionValidator_AllowedTransitions(t *testing.T) {
	validator := NewTransitionValidator()
	f := newOrderFixture()

	tests := []struct {
		name  string
		from  order.Status
		to    order.Status
		actor Actor
	}{
		{"any rider claims pending", order.StatusPending, order.StatusAssigned, f.otherRider()},
		{"assigned rider picks up", order.StatusAssigned, order.StatusPickedUp, f.assignedRider()},
		{"assigned rider hands over", order.StatusPickedUp, order.StatusAtShop, f.assignedRider()},
		{"shop employee starts washing", order.StatusAtShop, order.StatusWashing, f.employee()},
		{"shop employee starts drying", order.StatusAtShop, order.StatusDrying, f.employee()},
		{"admin starts washing", order.StatusAtShop, order.StatusWashing, f.admin()},
		{"shop employee finishes washing", order.StatusWashing, order.StatusDrying, f.employee()},
		{"shop employee finishes drying", order.StatusDrying, order.StatusLaundryDone, f.employee()},
		{"assigned rider starts delivery", order.StatusLaundryDone, order.StatusOutForDelivery, f.assignedRider()},
		{"assigned rider completes", order.StatusOutForDelivery, order.StatusCompleted, f.assignedRider()},
		{"customer cancels pending", order.StatusPending, order.StatusCancelled, f.customer()},
		{"admin cancels pending", order.StatusPending, order.StatusCancelled, f.admin()},
		{"customer cancels assigned", order.StatusAssigned, order.StatusCancelled, f.customer()},
		{"assigned rider cancels assigned", order.StatusAssigned, order.StatusCancelled, f.assignedRider()},
		{"assigned rider cancels picked up", order.StatusPickedUp, order.StatusCancelled, f.assignedRider()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := f.orderAt(t, tt.from)
			assert.NoError(t, validator.Validate(tt.actor, o, tt.to))
		})
	}
}

func TestTransitionValidator_ForbiddenActors(t *testing.T) {
	validator := NewTransitionValidator()
	f := newOrderFixture()

	otherShop := kernel.NewUUID()

	tests := []struct {
		name  string
		from  order.Status
		to    order.Status
		actor Actor
	}{
		{"customer cannot claim", order.StatusPending, order.StatusAssigned, f.customer()},
		{"other rider cannot pick up", order.StatusAssigned, order.StatusPickedUp, f.otherRider()},
		{"other rider cannot hand over", order.StatusPickedUp, order.StatusAtShop, f.otherRider()},
		{"customer cannot start washing", order.StatusAtShop, order.StatusWashing, f.customer()},
		{"rider cannot start washing", order.StatusAtShop, order.StatusWashing, f.assignedRider()},
		{
			"employee of another shop cannot start washing",
			order.StatusAtShop, order.StatusWashing,
			Actor{ID: kernel.NewUUID(), Role: kernel.RoleEmployee, ShopID: &otherShop},
		},
		{"employee cannot start delivery", order.StatusLaundryDone, order.StatusOutForDelivery, f.employee()},
		{"other rider cannot complete", order.StatusOutForDelivery, order.StatusCompleted, f.otherRider()},
		{"other customer cannot cancel", order.StatusPending, order.StatusCancelled,
			Actor{ID: kernel.NewUUID(), Role: kernel.RoleCustomer}},
		{"rider cannot cancel pending", order.StatusPending, order.StatusCancelled, f.otherRider()},
		{"employee cannot cancel", order.StatusAssigned, order.StatusCancelled, f.employee()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := f.orderAt(t, tt.from)
			err := validator.Validate(tt.actor, o, tt.to)
			require.Error(t, err)
			assert.True(t, errors.Is(err, errs.ErrForbidden), "got %v", err)
		})
	}
}

func TestTransitionValidator_TransitionClosure(t *testing.T) {
	validator := NewTransitionValidator()
	f := newOrderFixture()

	inTable := func(from, to order.Status) bool {
		_, ok := transitionRules()[transition{from: from, to: to}]
		return ok
	}

	actors := []Actor{f.customer(), f.assignedRider(), f.otherRider(), f.employee(), f.admin()}

	for _, from := range order.AllStatuses() {
		for _, to := range order.AllStatuses() {
			if inTable(from, to) {
				continue
			}
			o := f.orderAt(t, from)
			for _, actor := range actors {
				err := validator.Validate(actor, o, to)
				require.Error(t, err, "%s -> %s must be rejected for %s", from, to, actor.Role)
				assert.True(t, errors.Is(err, errs.ErrInvalidTransition),
					"%s -> %s for %s: got %v", from, to, actor.Role, err)
			}
		}
	}
}

func TestTransitionValidator_TableMatchesStateMachine(t *testing.T) {
	// Every role-gated transition must also be legal in the status state
	// machine, otherwise the validator would allow what the aggregate
	// rejects.
	for tr := range transitionRules() {
		assert.True(t, tr.from.CanTransitionTo(tr.to), "%s -> %s", tr.from, tr.to)
	}
}
