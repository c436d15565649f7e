package order

import (
	"errors"
	"time"

	"laundromart/internal/core/domain/model/kernel"
	"laundromart/internal/pkg/errs"
	"laundromart/internal/pkg/guard"
)

// MinScheduleLead is the minimum lead time required for a scheduled pickup.
// The guard is enforced at the order boundary (creation and edit), not by
// the state machine itself.
const MinScheduleLead = time.Hour

// ErrPickupIsNotConstructed is returned when a Pickup was not created via
// the NewPickup constructor.
var ErrPickupIsNotConstructed = errors.New("Pickup must be created via NewPickup constructor")

// Pickup describes where, how and when an order's laundry is collected.
// It is an immutable value object: a geographic point with a free-text
// address, plus either an immediate ("now") or scheduled pickup. Scheduled
// pickups must carry a pickup time; "now" pickups must not.
type Pickup struct { //nolint:recvcheck //using for validation
	location   kernel.GeoPoint
	address    string
	pickupType PickupType
	at         *time.Time

	guard guard.ConstructorGuard
}

// NewPickup creates a validated Pickup.
//
// Business rules:
//   - location must be a constructed GeoPoint
//   - pickupType must be valid
//   - a scheduled pickup requires a pickup time; an immediate one forbids it
//
// The 1-hour minimum lead is validated separately via ValidateLeadTime so
// that rehydrated historical orders do not fail restoration once their
// pickup time has passed.
func NewPickup(location kernel.GeoPoint, address string, pickupType PickupType, at *time.Time) (Pickup, error) {
	pickup := Pickup{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		pickup.setLocation(location),
		pickup.setType(pickupType),
	); err != nil {
		return Pickup{}, err
	}

	if pickupType == PickupSchedule && at == nil {
		return Pickup{}, errs.NewValueIsRequiredError("pickupAt")
	}
	if pickupType == PickupNow && at != nil {
		return Pickup{}, errs.NewValueIsInvalidErrorWithCause("pickupAt",
			errors.New("immediate pickup must not carry a pickup time"))
	}
	if at != nil {
		t := *at
		pickup.at = &t
	}
	pickup.address = address

	return pickup, nil
}

// Validate ensures the Pickup was created through the constructor.
func (p Pickup) Validate() error {
	return p.guard.Validate(ErrPickupIsNotConstructed)
}

// ValidateLeadTime enforces the scheduling invariant at the order boundary:
// a scheduled pickup must be at least MinScheduleLead in the future at the
// given reference time. Immediate pickups always pass.
func (p Pickup) ValidateLeadTime(now time.Time) error {
	if p.pickupType != PickupSchedule {
		return nil
	}
	if p.at == nil {
		return errs.NewValueIsRequiredError("pickupAt")
	}
	if p.at.Before(now.Add(MinScheduleLead)) {
		return errs.NewValueIsInvalidErrorWithCause("pickupAt",
			errors.New("scheduled pickup must be at least 1 hour from now"))
	}
	return nil
}

// Location returns the pickup coordinates.
func (p Pickup) Location() kernel.GeoPoint {
	return p.location
}

// Address returns the free-text pickup address.
func (p Pickup) Address() string {
	return p.address
}

// Type returns the pickup type.
func (p Pickup) Type() PickupType {
	return p.pickupType
}

// At returns the scheduled pickup time, nil for immediate pickups.
func (p Pickup) At() *time.Time {
	if p.at == nil {
		return nil
	}
	t := *p.at
	return &t
}

// IsPriority reports whether the pickup makes this a priority order.
// Priority orders are strictly gated by current machine availability.
func (p Pickup) IsPriority() bool {
	return p.pickupType == PickupNow
}

func (p *Pickup) setLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}
	p.location = location
	return nil
}

func (p *Pickup) setType(pickupType PickupType) error {
	if err := pickupType.Validate(); err != nil {
		return err
	}
	p.pickupType = pickupType
	return nil
}

// Delivery describes the optional drop-off destination for the finished
// laundry. Orders without a Delivery are returned to the pickup location.
type Delivery struct {
	location kernel.GeoPoint
	address  string
}

// NewDelivery creates a validated Delivery destination.
func NewDelivery(location kernel.GeoPoint, address string) (Delivery, error) {
	if err := location.Validate(); err != nil {
		return Delivery{}, err
	}
	return Delivery{location: location, address: address}, nil
}

// Location returns the delivery coordinates.
func (d Delivery) Location() kernel.GeoPoint {
	return d.location
}

// Address returns the free-text delivery address.
func (d Delivery) Address() string {
	return d.address
}
