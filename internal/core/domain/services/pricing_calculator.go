package services

import (
	"laundromart/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// Pricing constants in the marketplace currency.
var (
	washUnitSmall  = decimal.NewFromInt(60)
	washUnitMedium = decimal.NewFromInt(80)
	washUnitLarge  = decimal.NewFromInt(120)

	dryUnitPrice = decimal.NewFromInt(20)
	deliveryFee  = decimal.NewFromInt(50)
	pickupNowFee = decimal.NewFromInt(20)

	serviceTimeUnit = decimal.NewFromInt(order.DefaultServiceTimeMinutes)
)

// PricingCalculator is a domain service deriving an order's total price
// from its attributes. Pricing is deterministic: the same inputs always
// yield the same total, and clients never supply a price of their own.
//
// The total is composed of:
//   - wash price: per 50-minute unit, rate by weight category
//     (zero for dry-only orders)
//   - dry price: per 50-minute unit at a flat rate
//   - delivery fee: flat
//   - pickup surcharge: flat, immediate pickups only
//
// The result is rounded to two decimal places.
type PricingCalculator struct{}

// NewPricingCalculator creates a new PricingCalculator instance.
func NewPricingCalculator() PricingCalculator {
	return PricingCalculator{}
}

// Calculate derives the total price for the given order attributes.
// The service duration is normalized before use, so absent or non-positive
// durations price as a single unit.
func (c PricingCalculator) Calculate(
	laundryType order.LaundryType,
	weightCategory order.WeightCategory,
	serviceTimeMinutes int,
	pickupType order.PickupType,
) decimal.Decimal {
	units := decimal.NewFromInt(int64(order.NormalizeServiceTime(serviceTimeMinutes))).
		Div(serviceTimeUnit)

	total := units.Mul(dryUnitPrice)
	if laundryType != order.LaundryTypeDry {
		total = total.Add(units.Mul(washUnitPrice(weightCategory)))
	}

	total = total.Add(deliveryFee)
	if pickupType == order.PickupNow {
		total = total.Add(pickupNowFee)
	}

	return total.Round(2)
}

// CalculateFor derives the total price from an order's details.
func (c PricingCalculator) CalculateFor(details order.Details) decimal.Decimal {
	return c.Calculate(
		details.LaundryType,
		details.WeightCategory,
		details.ServiceTimeMinutes,
		details.Pickup.Type(),
	)
}

// washUnitPrice returns the per-unit wash rate for a weight category.
// Out-of-domain values fall back to the smallest tier.
func washUnitPrice(weightCategory order.WeightCategory) decimal.Decimal {
	switch weightCategory {
	case order.WeightMedium:
		return washUnitMedium
	case order.WeightLarge:
		return washUnitLarge
	default:
		return washUnitSmall
	}
}
