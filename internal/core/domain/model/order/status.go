package order

import (
	"laundromart/internal/pkg/errs"
)

// Status represents the lifecycle state of a laundry order.
// It implements a state machine with defined transitions so orders follow
// the correct business workflow:
//
//	pending -> assigned -> picked_up -> at_shop -> washing -> drying -> laundry_done -> out_for_delivery -> completed
//	                                            \________________/^
//	                                       (dry-only orders skip washing)
//
// cancelled is reachable from pending, assigned and picked_up only; once an
// order has been handed to a shop, the pipeline must run to completion.
// No forward state may be skipped.
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending is the initial status: the order awaits a rider.
	// Pending is the only status in which an order may be edited or deleted.
	StatusPending

	// StatusAssigned indicates a rider has claimed the order.
	StatusAssigned

	// StatusPickedUp indicates the rider has collected the laundry from
	// the customer.
	StatusPickedUp

	// StatusAtShop indicates the rider has handed the order to a shop.
	// The order occupies a washing machine from here until laundry_done.
	StatusAtShop

	// StatusWashing indicates a shop employee has started the wash cycle.
	StatusWashing

	// StatusDrying indicates the order is in the drying stage.
	StatusDrying

	// StatusLaundryDone indicates the shop has finished processing and the
	// order awaits return delivery. The machine is released.
	StatusLaundryDone

	// StatusOutForDelivery indicates the rider is returning the laundry.
	StatusOutForDelivery

	// StatusCompleted indicates the laundry was delivered back. Terminal.
	StatusCompleted

	// StatusCancelled indicates the order was cancelled before reaching a
	// shop. Terminal.
	StatusCancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:        "unknown",
		StatusPending:        "pending",
		StatusAssigned:       "assigned",
		StatusPickedUp:       "picked_up",
		StatusAtShop:         "at_shop",
		StatusWashing:        "washing",
		StatusDrying:         "drying",
		StatusLaundryDone:    "laundry_done",
		StatusOutForDelivery: "out_for_delivery",
		StatusCompleted:      "completed",
		StatusCancelled:      "cancelled",
	}
}

// nextStatuses is the complete forward-transition table. Any (from, to)
// pair not listed here is rejected; terminal states list nothing.
func nextStatuses() map[Status][]Status {
	return map[Status][]Status{
		StatusPending:        {StatusAssigned, StatusCancelled},
		StatusAssigned:       {StatusPickedUp, StatusCancelled},
		StatusPickedUp:       {StatusAtShop, StatusCancelled},
		StatusAtShop:         {StatusWashing, StatusDrying},
		StatusWashing:        {StatusDrying},
		StatusDrying:         {StatusLaundryDone},
		StatusLaundryDone:    {StatusOutForDelivery},
		StatusOutForDelivery: {StatusCompleted},
		StatusCompleted:      {},
		StatusCancelled:      {},
	}
}

// StatusFromString parses a status from its wire/persistence representation.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if status != StatusUnknown && str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidError("status " + s)
}

// AllStatuses returns every valid lifecycle status in forward order.
// Useful for exhaustive transition-closure checks.
func AllStatuses() []Status {
	return []Status{
		StatusPending, StatusAssigned, StatusPickedUp, StatusAtShop,
		StatusWashing, StatusDrying, StatusLaundryDone, StatusOutForDelivery,
		StatusCompleted, StatusCancelled,
	}
}

// OccupyingStatuses returns the statuses during which an order occupies one
// of its shop's washing machines. The capacity gate counts orders in these
// statuses.
func OccupyingStatuses() []Status {
	return []Status{StatusAtShop, StatusWashing, StatusDrying}
}

// Validate checks if the Status value is one of the defined lifecycle states.
func (s Status) Validate() error {
	if s == StatusUnknown {
		return errs.NewValueIsInvalidError("status is not defined")
	}
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidError("status is not defined")
	}
	return nil
}

// String returns the wire representation of the status.
// Implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status accepts no further transitions.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// OccupiesMachine reports whether an order in this status is occupying a
// washing machine at its shop.
func (s Status) OccupiesMachine() bool {
	return s == StatusAtShop || s == StatusWashing || s == StatusDrying
}

// CanTransitionTo reports whether the (s, to) pair is in the transition table.
func (s Status) CanTransitionTo(to Status) bool {
	for _, next := range nextStatuses()[s] {
		if next == to {
			return true
		}
	}
	return false
}

// Next transitions to the requested status.
//
// Returns:
//   - (to, nil) when the (s, to) pair is in the transition table
//   - (StatusUnknown, *errs.InvalidTransitionError) naming the attempted
//     pair otherwise, including any attempt to leave a terminal state
func (s Status) Next(to Status) (Status, error) {
	if err := to.Validate(); err != nil {
		return StatusUnknown, err
	}
	if !s.CanTransitionTo(to) {
		return StatusUnknown, errs.NewInvalidTransitionError(s.String(), to.String())
	}
	return to, nil
}
