package eventing

import (
	"time"

	"laundromart/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderEvent is the wire snapshot of an order carried by order:update
// events. Field names match what connected clients render directly.
type OrderEvent struct {
	ID         string  `json:"id"`
	CustomerID string  `json:"customerId"`
	RiderID    *string `json:"riderId"`
	ShopID     *string `json:"shopId"`
	EmployeeID *string `json:"employeeId"`

	ProductName        string   `json:"productName"`
	Description        string   `json:"description,omitempty"`
	ContactPhone       string   `json:"contactPhone"`
	Images             []string `json:"images"`
	LaundryType        string   `json:"laundryType"`
	WeightCategory     string   `json:"weightCategory"`
	ServiceTimeMinutes int      `json:"serviceTimeMinutes"`

	PickupType      string     `json:"pickupType"`
	PickupAt        *time.Time `json:"pickupAt"`
	PickupAddress   string     `json:"pickupAddress"`
	PickupLatitude  float64    `json:"pickupLatitude"`
	PickupLongitude float64    `json:"pickupLongitude"`
	DeliveryAddress *string    `json:"deliveryAddress"`

	TotalPrice decimal.Decimal `json:"totalPrice"`
	Status     string          `json:"status"`

	CreatedAt          time.Time  `json:"createdAt"`
	WashingStartedAt   *time.Time `json:"washingStartedAt"`
	WashingCompletedAt *time.Time `json:"washingCompletedAt"`
	CompletedAt        *time.Time `json:"completedAt"`
}

// NewOrderEvent builds the event snapshot for an order.
func NewOrderEvent(o *order.Order) OrderEvent {
	details := o.Details()

	event := OrderEvent{
		ID:                 o.ID().String(),
		CustomerID:         o.CustomerID().String(),
		ProductName:        details.ProductName,
		Description:        details.Description,
		ContactPhone:       details.ContactPhone,
		Images:             details.Images,
		LaundryType:        details.LaundryType.String(),
		WeightCategory:     details.WeightCategory.String(),
		ServiceTimeMinutes: details.ServiceTimeMinutes,
		PickupType:         details.Pickup.Type().String(),
		PickupAt:           details.Pickup.At(),
		PickupAddress:      details.Pickup.Address(),
		PickupLatitude:     details.Pickup.Location().Latitude(),
		PickupLongitude:    details.Pickup.Location().Longitude(),
		TotalPrice:         o.TotalPrice(),
		Status:             o.Status().String(),
		CreatedAt:          o.CreatedAt(),
		WashingStartedAt:   o.WashingStartedAt(),
		WashingCompletedAt: o.WashingCompletedAt(),
		CompletedAt:        o.CompletedAt(),
	}

	if riderID := o.RiderID(); riderID != nil {
		s := riderID.String()
		event.RiderID = &s
	}
	if shopID := o.ShopID(); shopID != nil {
		s := shopID.String()
		event.ShopID = &s
	}
	if employeeID := o.EmployeeID(); employeeID != nil {
		s := employeeID.String()
		event.EmployeeID = &s
	}
	if details.Delivery != nil {
		addr := details.Delivery.Address()
		event.DeliveryAddress = &addr
	}

	return event
}
