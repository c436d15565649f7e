package order

import (
	"fmt"

	"laundromart/internal/pkg/errs"
)

// DefaultServiceTimeMinutes is the service duration assumed when a caller
// supplies no duration or a non-positive one. Pricing is computed per
// 50-minute unit, so this is exactly one unit.
const DefaultServiceTimeMinutes = 50

// LaundryType distinguishes a full wash cycle from a dry-only order.
// Dry-only orders skip the washing stage entirely and carry no wash price.
type LaundryType int

const (
	// LaundryTypeUnknown represents an invalid or undefined laundry type.
	LaundryTypeUnknown LaundryType = iota

	// LaundryTypeWash is a full cycle: washing followed by drying.
	LaundryTypeWash

	// LaundryTypeDry is a dry-only order: at the shop it goes straight to drying.
	LaundryTypeDry
)

func getLaundryTypeStrings() map[LaundryType]string {
	return map[LaundryType]string{
		LaundryTypeUnknown: "unknown",
		LaundryTypeWash:    "wash",
		LaundryTypeDry:     "dry",
	}
}

// LaundryTypeFromString parses a laundry type from its wire representation.
func LaundryTypeFromString(s string) (LaundryType, error) {
	switch s {
	case "wash":
		return LaundryTypeWash, nil
	case "dry":
		return LaundryTypeDry, nil
	default:
		return LaundryTypeUnknown, errs.NewValueIsInvalidErrorWithCause("laundryType",
			fmt.Errorf("%q is not a valid laundry type", s))
	}
}

// Validate checks if the LaundryType value is valid.
func (t LaundryType) Validate() error {
	if t != LaundryTypeWash && t != LaundryTypeDry {
		return errs.NewValueIsInvalidErrorWithCause("laundryType",
			fmt.Errorf("%d is not a valid laundry type", int(t)))
	}
	return nil
}

// String returns the wire representation of the laundry type.
func (t LaundryType) String() string {
	if str, ok := getLaundryTypeStrings()[t]; ok {
		return str
	}
	return "unknown"
}

// WeightCategory buckets an order's load size. It selects the per-unit wash
// price; out-of-domain values fall back to the smallest tier.
type WeightCategory int

const (
	// WeightCategoryUnknown represents an invalid or undefined weight category.
	WeightCategoryUnknown WeightCategory = iota

	// WeightSmall is a load up to roughly 6 kg.
	WeightSmall

	// WeightMedium is a load of roughly 6-10 kg.
	WeightMedium

	// WeightLarge is a load of roughly 10-20 kg.
	WeightLarge
)

func getWeightCategoryStrings() map[WeightCategory]string {
	return map[WeightCategory]string{
		WeightCategoryUnknown: "unknown",
		WeightSmall:           "s",
		WeightMedium:          "m",
		WeightLarge:           "l",
	}
}

// WeightCategoryFromString parses a weight category from its wire
// representation. The legacy range aliases used by older clients are
// accepted alongside the single-letter forms.
func WeightCategoryFromString(s string) (WeightCategory, error) {
	switch s {
	case "s", "0-6":
		return WeightSmall, nil
	case "m", "6-10":
		return WeightMedium, nil
	case "l", "10-20":
		return WeightLarge, nil
	default:
		return WeightCategoryUnknown, errs.NewValueIsInvalidErrorWithCause("weightCategory",
			fmt.Errorf("%q is not a valid weight category", s))
	}
}

// Validate checks if the WeightCategory value is valid.
func (c WeightCategory) Validate() error {
	if c != WeightSmall && c != WeightMedium && c != WeightLarge {
		return errs.NewValueIsInvalidErrorWithCause("weightCategory",
			fmt.Errorf("%d is not a valid weight category", int(c)))
	}
	return nil
}

// String returns the wire representation of the weight category.
func (c WeightCategory) String() string {
	if str, ok := getWeightCategoryStrings()[c]; ok {
		return str
	}
	return "unknown"
}

// PickupType distinguishes immediate pickups from scheduled ones.
// A "now" pickup is a priority order: it carries a surcharge and may only be
// routed to a shop with a free machine. Scheduled pickups queue instead.
type PickupType int

const (
	// PickupTypeUnknown represents an invalid or undefined pickup type.
	PickupTypeUnknown PickupType = iota

	// PickupNow requests immediate pickup (priority order).
	PickupNow

	// PickupSchedule requests pickup at a future time, at least one hour out.
	PickupSchedule
)

func getPickupTypeStrings() map[PickupType]string {
	return map[PickupType]string{
		PickupTypeUnknown: "unknown",
		PickupNow:         "now",
		PickupSchedule:    "schedule",
	}
}

// PickupTypeFromString parses a pickup type from its wire representation.
func PickupTypeFromString(s string) (PickupType, error) {
	switch s {
	case "now":
		return PickupNow, nil
	case "schedule":
		return PickupSchedule, nil
	default:
		return PickupTypeUnknown, errs.NewValueIsInvalidErrorWithCause("pickupType",
			fmt.Errorf("%q is not a valid pickup type", s))
	}
}

// Validate checks if the PickupType value is valid.
func (t PickupType) Validate() error {
	if t != PickupNow && t != PickupSchedule {
		return errs.NewValueIsInvalidErrorWithCause("pickupType",
			fmt.Errorf("%d is not a valid pickup type", int(t)))
	}
	return nil
}

// String returns the wire representation of the pickup type.
func (t PickupType) String() string {
	if str, ok := getPickupTypeStrings()[t]; ok {
		return str
	}
	return "unknown"
}

// NormalizeServiceTime maps absent or non-positive service durations to the
// default single pricing unit.
func NormalizeServiceTime(minutes int) int {
	if minutes <= 0 {
		return DefaultServiceTimeMinutes
	}
	return minutes
}
