package services

import (
	"fmt"

	"laundromart/internal/core/domain/model/kernel"
	"laundromart/internal/core/domain/model/order"
	"laundromart/internal/pkg/errs"
)

// Actor identifies the caller of a lifecycle operation: who they are, what
// role they act in, and (for shop employees) which shop they belong to.
type Actor struct {
	ID     kernel.UUID
	Role   kernel.Role
	ShopID *kernel.UUID
}

// relation is a bitmask of actor-order relationships that may perform a
// transition.
type relation uint8

const (
	// anyRider: any caller with the rider role, regardless of assignment.
	anyRider relation = 1 << iota
	// assignedRider: the rider currently holding the order's claim.
	assignedRider
	// owningCustomer: the customer who created the order.
	owningCustomer
	// shopEmployee: an employee of the shop the order was handed to.
	shopEmployee
	// adminRole: any caller with the admin role.
	adminRole
)

type transition struct {
	from order.Status
	to   order.Status
}

// transitionRules is the single source of truth for who may move an order
// between statuses. A (from, to) pair absent from this table is an invalid
// transition for every actor; a present pair is allowed only for actors
// matching one of its relations.
func transitionRules() map[transition]relation {
	return map[transition]relation{
		{order.StatusPending, order.StatusAssigned}:          anyRider,
		{order.StatusAssigned, order.StatusPickedUp}:         assignedRider,
		{order.StatusPickedUp, order.StatusAtShop}:           assignedRider,
		{order.StatusAtShop, order.StatusWashing}:            shopEmployee | adminRole,
		{order.StatusAtShop, order.StatusDrying}:             shopEmployee | adminRole,
		{order.StatusWashing, order.StatusDrying}:            shopEmployee | adminRole,
		{order.StatusDrying, order.StatusLaundryDone}:        shopEmployee | adminRole,
		{order.StatusLaundryDone, order.StatusOutForDelivery}: assignedRider,
		{order.StatusOutForDelivery, order.StatusCompleted}:  assignedRider,
		{order.StatusPending, order.StatusCancelled}:         owningCustomer | adminRole,
		{order.StatusAssigned, order.StatusCancelled}:        owningCustomer | assignedRider | adminRole,
		{order.StatusPickedUp, order.StatusCancelled}:        owningCustomer | assignedRider | adminRole,
	}
}

// TransitionValidator is a domain service gating every status change by
// the acting caller's role and relationship to the order.
//
// It answers a single question: may this actor move this order to that
// status right now. The decision is table-driven; there are no
// per-operation role checks anywhere else in the system. Preconditions
// beyond role and ownership (machine capacity, laundry type routing) are
// enforced by the capacity gate and the aggregate respectively.
type TransitionValidator struct{}

// NewTransitionValidator creates a new TransitionValidator instance.
func NewTransitionValidator() TransitionValidator {
	return TransitionValidator{}
}

// Validate checks whether the actor may transition the order to the target
// status.
//
// Returns:
//   - an invalid-transition error naming the (from, to) pair when the pair
//     is not in the lifecycle table at all
//   - a forbidden error when the pair is valid but the actor lacks the
//     required role or relationship
//   - nil when the transition is allowed
func (v TransitionValidator) Validate(actor Actor, o *order.Order, to order.Status) error {
	if err := o.Validate(); err != nil {
		return err
	}

	from := o.Status()
	allowed, ok := transitionRules()[transition{from: from, to: to}]
	if !ok {
		return errs.NewInvalidTransitionError(from.String(), to.String())
	}

	if v.relations(actor, o)&allowed == 0 {
		return errs.NewForbiddenError(actor.Role.String(),
			fmt.Sprintf("move order from %s to %s", from, to))
	}
	return nil
}

// relations computes the actor's relationship bitmask for the given order.
func (v TransitionValidator) relations(actor Actor, o *order.Order) relation {
	var r relation

	switch actor.Role {
	case kernel.RoleAdmin:
		r |= adminRole
	case kernel.RoleRider:
		r |= anyRider
		if riderID := o.RiderID(); riderID != nil && riderID.IsEqual(actor.ID) {
			r |= assignedRider
		}
	case kernel.RoleCustomer:
		if o.CustomerID().IsEqual(actor.ID) {
			r |= owningCustomer
		}
	case kernel.RoleEmployee:
		shopID := o.ShopID()
		if shopID != nil && actor.ShopID != nil && shopID.IsEqual(*actor.ShopID) {
			r |= shopEmployee
		}
	}

	return r
}
