// Package services contains stateless domain services for the order
// lifecycle: rules that span more than one aggregate or need inputs the
// aggregates do not carry.
//
//   - PricingCalculator derives an order's total price deterministically
//     from its attributes
//   - TransitionValidator gates every status change by the caller's role
//     and relationship to the order, driven by a single transition table
//   - CapacityGate decides whether an order may be routed to a shop given
//     the shop's current washing-machine load
//
// All services are pure: they read their inputs and return a decision,
// never touching storage or transport themselves.
package services
