package order

import (
	"errors"
	"time"

	"laundromart/internal/core/domain/model/kernel"
	"laundromart/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder. This ensures all orders are
	// properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrOrderNotEditable is returned when an edit or delete is attempted on
	// an order that has already left the pending status.
	ErrOrderNotEditable = errors.New("order may be edited or deleted only while pending")
)

// Details carries the customer-supplied attributes of an order: what to
// wash, how to reach the customer, and where to pick up and deliver.
// It is the payload of both order creation and pending-order edits.
type Details struct {
	ProductName        string
	ContactPhone       string
	Description        string
	Images             []string
	LaundryType        LaundryType
	WeightCategory     WeightCategory
	ServiceTimeMinutes int
	Pickup             Pickup
	Delivery           *Delivery
}

func (d Details) validate() error {
	if d.ProductName == "" {
		return errs.NewValueIsRequiredError("productName")
	}
	return errors.Join(
		d.LaundryType.Validate(),
		d.WeightCategory.Validate(),
		d.Pickup.Validate(),
	)
}

// Order is the aggregate root of the laundry order lifecycle. It tracks a
// single customer job from request through rider transport and shop
// processing to final delivery.
//
// Order maintains these invariants:
//   - riderID is set for every status from assigned onward
//   - shopID is set for every status from at_shop onward
//   - employeeID is set for every status from washing/drying onward
//   - totalPrice is derived from (laundryType, weightCategory,
//     serviceTimeMinutes, pickupType) and frozen once work begins
//   - the order may be edited or deleted only while pending
//   - terminal statuses (completed, cancelled) accept no further mutation
//   - lifecycle timestamps are set exactly once by their transition
//
// All state changes go through the transition methods below; the methods
// enforce the status state machine, while role and ownership gating is the
// transition validator's concern.
type Order struct {
	id         kernel.UUID
	customerID kernel.UUID

	// riderID is the claiming rider (nil while pending)
	riderID *kernel.UUID
	// shopID is the serving shop (nil until selected/handed over)
	shopID *kernel.UUID
	// employeeID is the shop employee processing the order (nil until washing/drying starts)
	employeeID *kernel.UUID

	details    Details
	totalPrice decimal.Decimal
	status     Status

	createdAt          time.Time
	washingStartedAt   *time.Time
	washingCompletedAt *time.Time
	completedAt        *time.Time

	isConstructed bool
}

// NewOrder creates a new pending Order with validation. This is the only
// way to create a fresh order; RestoreOrder rehydrates persisted ones.
//
// The service duration in details is normalized (absent or non-positive
// values become the default unit). The total price is computed by the
// pricing calculator and supplied by the caller; the aggregate only stores
// the derived amount.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	details Details,
	totalPrice decimal.Decimal,
	createdAt time.Time,
) (*Order, error) {
	if err := errors.Join(id.Validate(), customerID.Validate(), details.validate()); err != nil {
		return nil, err
	}

	details.ServiceTimeMinutes = NormalizeServiceTime(details.ServiceTimeMinutes)
	details.Images = copyImages(details.Images)

	return &Order{
		id:            id,
		customerID:    customerID,
		details:       details,
		totalPrice:    totalPrice,
		status:        StatusPending,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// RestoreOrder reconstructs an Order from persistence, preserving its full
// lifecycle state including assignments and timestamps. The restored order
// behaves identically to one that reached the same state through domain
// operations.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	riderID, shopID, employeeID *kernel.UUID,
	details Details,
	totalPrice decimal.Decimal,
	status Status,
	createdAt time.Time,
	washingStartedAt, washingCompletedAt, completedAt *time.Time,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		customerID.Validate(),
		details.validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if status != StatusPending && status != StatusCancelled && riderID == nil {
		return nil, errs.NewValueIsRequiredError("riderId")
	}

	details.ServiceTimeMinutes = NormalizeServiceTime(details.ServiceTimeMinutes)
	details.Images = copyImages(details.Images)

	return &Order{
		id:                 id,
		customerID:         customerID,
		riderID:            copyID(riderID),
		shopID:             copyID(shopID),
		employeeID:         copyID(employeeID),
		details:            details,
		totalPrice:         totalPrice,
		status:             status,
		createdAt:          createdAt,
		washingStartedAt:   copyTime(washingStartedAt),
		washingCompletedAt: copyTime(washingCompletedAt),
		completedAt:        copyTime(completedAt),
		isConstructed:      true,
	}, nil
}

// Validate ensures the Order instance was properly constructed through a
// constructor. Call when reconstructing orders from external sources.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the owning customer's identifier. Immutable.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// RiderID returns the claiming rider's identifier, nil while unassigned.
func (o *Order) RiderID() *kernel.UUID {
	return copyID(o.riderID)
}

// ShopID returns the serving shop's identifier, nil until selected.
func (o *Order) ShopID() *kernel.UUID {
	return copyID(o.shopID)
}

// EmployeeID returns the processing employee's identifier, nil until
// washing or drying starts.
func (o *Order) EmployeeID() *kernel.UUID {
	return copyID(o.employeeID)
}

// Details returns the customer-supplied order attributes.
func (o *Order) Details() Details {
	d := o.details
	d.Images = copyImages(d.Images)
	return d
}

// Images returns the stored image references.
func (o *Order) Images() []string {
	return copyImages(o.details.Images)
}

// TotalPrice returns the derived order price.
func (o *Order) TotalPrice() decimal.Decimal {
	return o.totalPrice
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the creation time.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// WashingStartedAt returns when shop processing began, nil before that.
func (o *Order) WashingStartedAt() *time.Time {
	return copyTime(o.washingStartedAt)
}

// WashingCompletedAt returns when shop processing finished, nil before that.
func (o *Order) WashingCompletedAt() *time.Time {
	return copyTime(o.washingCompletedAt)
}

// CompletedAt returns when the order reached a terminal state, nil before.
func (o *Order) CompletedAt() *time.Time {
	return copyTime(o.completedAt)
}

// UpdateDetails replaces the order's customer-supplied attributes and the
// derived price. Allowed only while the order is pending; afterwards the
// price is frozen and the attributes immutable.
//
// Returns the image references that are no longer part of the order so the
// caller can release them from storage.
func (o *Order) UpdateDetails(details Details, totalPrice decimal.Decimal) ([]string, error) {
	if o.status != StatusPending {
		return nil, ErrOrderNotEditable
	}
	if err := details.validate(); err != nil {
		return nil, err
	}

	removed := removedImages(o.details.Images, details.Images)

	details.ServiceTimeMinutes = NormalizeServiceTime(details.ServiceTimeMinutes)
	details.Images = copyImages(details.Images)
	o.details = details
	o.totalPrice = totalPrice

	return removed, nil
}

// Assign claims the order for a rider, transitioning pending -> assigned.
//
// This in-memory transition backs validation and tests; under concurrent
// riders the claim must be performed as the store's atomic conditional
// update, which enforces the same precondition (pending and unassigned).
func (o *Order) Assign(riderID kernel.UUID) error {
	if err := riderID.Validate(); err != nil {
		return err
	}
	if o.riderID != nil {
		return errs.NewOrderAlreadyClaimedError(o.id.String())
	}

	newStatus, err := o.status.Next(StatusAssigned)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.riderID = &riderID
	return nil
}

// MarkPickedUp records that the rider collected the laundry from the
// customer, transitioning assigned -> picked_up.
func (o *Order) MarkPickedUp() error {
	newStatus, err := o.status.Next(StatusPickedUp)
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// SelectShop sets or clears the order's target shop before handover.
// Allowed only while the order is assigned or picked up; after handover the
// shop is fixed. Capacity gating for priority orders is the caller's
// concern (the gate needs store access).
func (o *Order) SelectShop(shopID *kernel.UUID) error {
	if o.status != StatusAssigned && o.status != StatusPickedUp {
		return errs.NewValueIsInvalidErrorWithCause("status",
			errors.New("shop selection is allowed only before handover"))
	}
	if shopID != nil {
		if err := shopID.Validate(); err != nil {
			return err
		}
	}
	o.shopID = copyID(shopID)
	return nil
}

// HandOverTo transfers custody of the laundry to a shop, transitioning
// picked_up -> at_shop. From here the order occupies one of the shop's
// machines until processing finishes.
func (o *Order) HandOverTo(shopID kernel.UUID) error {
	if err := shopID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Next(StatusAtShop)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.shopID = &shopID
	return nil
}

// StartProcessing begins shop processing, transitioning at_shop -> washing
// for wash orders and at_shop -> drying for dry-only orders. Records the
// processing employee and stamps washingStartedAt exactly once.
func (o *Order) StartProcessing(employeeID kernel.UUID, now time.Time) error {
	if err := employeeID.Validate(); err != nil {
		return err
	}

	target := StatusWashing
	if o.details.LaundryType == LaundryTypeDry {
		target = StatusDrying
	}

	newStatus, err := o.status.Next(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.employeeID = &employeeID
	if o.washingStartedAt == nil {
		t := now
		o.washingStartedAt = &t
	}
	return nil
}

// FinishWashing moves a wash order from washing to drying.
// Dry-only orders never pass through washing and are rejected here.
func (o *Order) FinishWashing() error {
	if o.details.LaundryType == LaundryTypeDry {
		return errs.NewInvalidTransitionError(o.status.String(), StatusDrying.String())
	}

	newStatus, err := o.status.Next(StatusDrying)
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// FinishDrying completes shop processing, transitioning drying ->
// laundry_done and stamping washingCompletedAt. The machine is released.
func (o *Order) FinishDrying(now time.Time) error {
	newStatus, err := o.status.Next(StatusLaundryDone)
	if err != nil {
		return err
	}

	o.status = newStatus
	if o.washingCompletedAt == nil {
		t := now
		o.washingCompletedAt = &t
	}
	return nil
}

// StartDelivery begins the return trip, transitioning laundry_done ->
// out_for_delivery.
func (o *Order) StartDelivery() error {
	newStatus, err := o.status.Next(StatusOutForDelivery)
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// CompleteDelivery finishes the order, transitioning out_for_delivery ->
// completed. Stamps completedAt and drops the image references, returning
// them so the caller can release the stored objects.
func (o *Order) CompleteDelivery(now time.Time) ([]string, error) {
	newStatus, err := o.status.Next(StatusCompleted)
	if err != nil {
		return nil, err
	}

	o.status = newStatus
	if o.completedAt == nil {
		t := now
		o.completedAt = &t
	}
	return o.dropImages(), nil
}

// Cancel finally cancels the order. Reachable from pending, assigned and
// picked_up only; once laundry is at a shop the pipeline must complete.
// Stamps completedAt and drops the image references, returning them so the
// caller can release the stored objects.
func (o *Order) Cancel(now time.Time) ([]string, error) {
	newStatus, err := o.status.Next(StatusCancelled)
	if err != nil {
		return nil, err
	}

	o.status = newStatus
	if o.completedAt == nil {
		t := now
		o.completedAt = &t
	}
	return o.dropImages(), nil
}

// ReleaseToPending is the rider's cancellation: instead of finally
// cancelling the customer's order, the claim is released and the order
// returns to the pending pool for other riders. Allowed while assigned or
// picked up.
func (o *Order) ReleaseToPending() error {
	if o.status != StatusAssigned && o.status != StatusPickedUp {
		return errs.NewInvalidTransitionError(o.status.String(), StatusPending.String())
	}

	o.status = StatusPending
	o.riderID = nil
	return nil
}

// dropImages empties the stored references and returns the removed ones.
func (o *Order) dropImages() []string {
	released := o.details.Images
	o.details.Images = nil
	return released
}

func removedImages(previous, next []string) []string {
	kept := make(map[string]struct{}, len(next))
	for _, img := range next {
		kept[img] = struct{}{}
	}

	var removed []string
	for _, img := range previous {
		if _, ok := kept[img]; !ok {
			removed = append(removed, img)
		}
	}
	return removed
}

func copyImages(images []string) []string {
	if len(images) == 0 {
		return nil
	}
	out := make([]string, len(images))
	copy(out, images)
	return out
}

func copyID(id *kernel.UUID) *kernel.UUID {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
