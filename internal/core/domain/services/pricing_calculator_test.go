package services

import (
	"testing"

	"laundromart/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPricingCalculator_Calculate(t *testing.T) {
	calc := NewPricingCalculator()

	tests := []struct {
		name           string
		laundryType    order.LaundryType
		weightCategory order.WeightCategory
		serviceTime    int
		pickupType     order.PickupType
		expected       string
	}{
		{
			// 60 wash + 20 dry + 50 delivery + 20 surcharge
			name:           "small wash, one unit, immediate",
			laundryType:    order.LaundryTypeWash,
			weightCategory: order.WeightSmall,
			serviceTime:    50,
			pickupType:     order.PickupNow,
			expected:       "150",
		},
		{
			// 2 units dry (40) + 50 delivery, no surcharge
			name:           "dry only, two units, scheduled",
			laundryType:    order.LaundryTypeDry,
			weightCategory: order.WeightMedium,
			serviceTime:    100,
			pickupType:     order.PickupSchedule,
			expected:       "90",
		},
		{
			// 2 * (80 + 20) + 50
			name:           "medium wash, two units, scheduled",
			laundryType:    order.LaundryTypeWash,
			weightCategory: order.WeightMedium,
			serviceTime:    100,
			pickupType:     order.PickupSchedule,
			expected:       "250",
		},
		{
			// 1.5 * (120 + 20) + 50 + 20
			name:           "large wash, fractional units, immediate",
			laundryType:    order.LaundryTypeWash,
			weightCategory: order.WeightLarge,
			serviceTime:    75,
			pickupType:     order.PickupNow,
			expected:       "280",
		},
		{
			// zero duration prices as a single unit
			name:           "unset duration falls back to one unit",
			laundryType:    order.LaundryTypeWash,
			weightCategory: order.WeightSmall,
			serviceTime:    0,
			pickupType:     order.PickupSchedule,
			expected:       "130",
		},
		{
			// unknown weight falls back to the smallest tier
			name:           "out-of-domain weight uses smallest tier",
			laundryType:    order.LaundryTypeWash,
			weightCategory: order.WeightCategoryUnknown,
			serviceTime:    50,
			pickupType:     order.PickupSchedule,
			expected:       "130",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total := calc.Calculate(tt.laundryType, tt.weightCategory, tt.serviceTime, tt.pickupType)
			assert.True(t, total.Equal(decimal.RequireFromString(tt.expected)),
				"expected %s, got %s", tt.expected, total)
		})
	}
}

func TestPricingCalculator_Deterministic(t *testing.T) {
	calc := NewPricingCalculator()

	first := calc.Calculate(order.LaundryTypeWash, order.WeightMedium, 130, order.PickupNow)
	second := calc.Calculate(order.LaundryTypeWash, order.WeightMedium, 130, order.PickupNow)
	assert.True(t, first.Equal(second))
}
