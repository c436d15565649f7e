// Package order implements the Order aggregate for the laundry delivery
// domain.
//
// The order is the central entity in the system, tracking a customer's
// laundry job from request through rider transport and shop processing to
// final delivery. The package contains:
//
//   - Order: the aggregate root managing lifecycle state, participant
//     assignments (rider, shop, employee) and lifecycle timestamps
//   - Status: the lifecycle state machine with explicit valid transitions
//   - Details, Pickup, Delivery: value objects for the customer-supplied
//     order attributes
//   - LaundryType, WeightCategory, PickupType: enumerations controlling
//     processing flow and pricing
//
// Key business rules enforced by this package:
//   - Status transitions follow the defined lifecycle; invalid jumps are
//     rejected
//   - Orders may be edited or deleted only while pending
//   - A rider claim requires a pending, unassigned order
//   - Dry-only orders skip the washing stage (at_shop -> drying)
//   - Cancellation is possible only before the laundry reaches a shop
//   - Terminal orders stamp completedAt once and release their images
package order
