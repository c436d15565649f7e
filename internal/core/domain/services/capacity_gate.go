package services

import (
	"laundromart/internal/core/domain/model/kernel"
	"laundromart/internal/core/domain/model/order"
	"laundromart/internal/core/domain/model/shop"
	"laundromart/internal/pkg/errs"
)

// MachineStats is the derived capacity snapshot for a shop.
type MachineStats struct {
	// Total is the shop's configured machine count (at least 1).
	Total int
	// InUse is the number of orders currently occupying a machine
	// (statuses at_shop, washing, drying).
	InUse int
	// Available is max(0, Total - InUse).
	Available int
}

// NewMachineStats derives a capacity snapshot from a shop's configured
// machine count and the current occupying-order count. A non-positive
// configured total falls back to the default pool size; Available never
// goes negative even when in-flight orders exceed a shrunk pool.
func NewMachineStats(configuredTotal, inUse int) MachineStats {
	total := configuredTotal
	if total < 1 {
		total = shop.DefaultTotalWashingMachines
	}
	if inUse < 0 {
		inUse = 0
	}

	available := total - inUse
	if available < 0 {
		available = 0
	}

	return MachineStats{Total: total, InUse: inUse, Available: available}
}

// HasAvailable reports whether at least one machine is free.
func (s MachineStats) HasAvailable() bool {
	return s.Available > 0
}

// CapacityGate is a domain service deciding whether an order may be routed
// to a shop given the shop's current machine load.
//
// The gate applies only to transitions that add load to a shop (handover
// and pre-handover shop selection). Policy: a priority order (immediate
// pickup) requires a free machine right now; scheduled orders always pass
// and queue at the shop instead.
//
// The check is a read-then-decide snapshot, not a reservation: two riders
// racing for the last machine may both pass. The shop absorbs the overflow,
// matching how a physical queue behaves.
type CapacityGate struct{}

// NewCapacityGate creates a new CapacityGate instance.
func NewCapacityGate() CapacityGate {
	return CapacityGate{}
}

// Check decides whether the order may be routed to the shop with the given
// capacity snapshot. Returns a capacity-exceeded error for priority orders
// when no machine is free, nil otherwise.
func (g CapacityGate) Check(o *order.Order, shopID kernel.UUID, stats MachineStats) error {
	if err := o.Validate(); err != nil {
		return err
	}

	if !o.Details().Pickup.IsPriority() {
		return nil
	}
	if !stats.HasAvailable() {
		return errs.NewCapacityExceededError(shopID.String())
	}
	return nil
}
